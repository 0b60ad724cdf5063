package service

import (
	"errors"
	"sync"

	"github.com/uncleben006/invoice-agent/internal/invoice/model"
)

// ErrNotFound is returned when no invoice has the requested id.
var ErrNotFound = errors.New("invoice not found")

// Service is an in-memory invoice store. Persistence is deliberately out of
// scope; the store exists so the API surface can be exercised end to end.
type Service struct {
	mu       sync.RWMutex
	invoices []model.Invoice
	nextID   int
}

func New() *Service {
	return &Service{
		invoices: []model.Invoice{
			{ID: 1, Number: "AB-12345678", Date: "2025-04-01", Amount: 1000},
			{ID: 2, Number: "AB-87654321", Date: "2025-03-25", Amount: 500},
		},
		nextID: 3,
	}
}

func (s *Service) List() []model.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Service) GetByID(id int) (model.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return model.Invoice{}, ErrNotFound
}

func (s *Service) Create(req model.CreateRequest) model.Invoice {
	amount := 0.0
	for _, item := range req.Items {
		amount += item.Total()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	inv := model.Invoice{
		ID:     s.nextID,
		Number: req.Number,
		Date:   req.Date,
		Amount: amount,
		Items:  req.Items,
	}
	s.nextID++
	s.invoices = append(s.invoices, inv)
	return inv
}
