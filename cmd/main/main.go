package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "net/http/pprof"

	"github.com/uncleben006/invoice-agent/internal/config"
	invSvc "github.com/uncleben006/invoice-agent/internal/invoice/service"
	ocrSvc "github.com/uncleben006/invoice-agent/internal/ocr/service"
	prodSvc "github.com/uncleben006/invoice-agent/internal/product/service"
	serverhttp "github.com/uncleben006/invoice-agent/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	// a missing credentials file degrades OCR only; the catalog and
	// invoice endpoints still come up
	annotator, err := ocrSvc.NewVisionAnnotator(context.Background(), cfg.VisionCredentialsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("vision client unavailable, ocr endpoints disabled")
		annotator = nil
	}

	svcs := serverhttp.Services{
		Products: prodSvc.New(cfg.CatalogPath, cfg.CatalogIDCol, cfg.CatalogNameCol, logger),
		OCR: ocrSvc.New(
			annotator,
			time.Duration(cfg.DownloadTimeoutSec)*time.Second,
			int64(cfg.MaxDownloadMB)*1024*1024,
			logger,
		),
		Invoices: invSvc.New(),
	}
	defer func() { _ = svcs.OCR.Close() }()

	r := serverhttp.NewRouter(cfg, logger, svcs)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
