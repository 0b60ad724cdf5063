package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/uncleben006/invoice-agent/internal/config"
	invHnd "github.com/uncleben006/invoice-agent/internal/invoice/handler"
	invSvc "github.com/uncleben006/invoice-agent/internal/invoice/service"
	"github.com/uncleben006/invoice-agent/internal/middleware"
	ocrHnd "github.com/uncleben006/invoice-agent/internal/ocr/handler"
	ocrSvc "github.com/uncleben006/invoice-agent/internal/ocr/service"
	prodHnd "github.com/uncleben006/invoice-agent/internal/product/handler"
	prodSvc "github.com/uncleben006/invoice-agent/internal/product/service"
	"github.com/uncleben006/invoice-agent/server/http/handlers"
)

// Services are constructed in main and injected here; handlers hold no
// package-level state.
type Services struct {
	Products *prodSvc.Service
	OCR      *ocrSvc.Service
	Invoices *invSvc.Service
}

func NewRouter(cfg config.Config, logger zerolog.Logger, svcs Services) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", prodHnd.List(svcs.Products, logger))
			r.Post("/check", prodHnd.Check(svcs.Products, logger))
			r.Post("/reload", prodHnd.Reload(svcs.Products, logger))
		})

		r.Route("/ocr", func(r chi.Router) {
			r.Post("/text", ocrHnd.Text(svcs.OCR, logger))
			r.Post("/batch", ocrHnd.Batch(svcs.OCR, logger))
		})

		r.Route("/v1/invoices", func(r chi.Router) {
			r.Get("/", invHnd.List(svcs.Invoices))
			r.Get("/{id}", invHnd.Get(svcs.Invoices))
			r.Post("/", invHnd.Create(svcs.Invoices, logger))
		})
	})

	return r
}
