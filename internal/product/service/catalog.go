package service

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/uncleben006/invoice-agent/internal/fileio"
	"github.com/uncleben006/invoice-agent/internal/product/model"
)

var (
	// ErrCatalogNotFound is returned when the catalog file does not exist.
	ErrCatalogNotFound = errors.New("catalog file not found")

	// ErrCatalogFormat is returned when the header row does not match the
	// expected shape (at least 4 columns, id and name labels in place).
	ErrCatalogFormat = errors.New("catalog header format invalid")
)

// Catalog is an immutable snapshot of the product list. Once built it is
// only ever read, so concurrent lookups need no locking.
type Catalog struct {
	Records []model.Record
	Stats   model.LoadStats

	byID   map[string]model.Record
	byName map[string]model.Record
}

func (c *Catalog) ByID(id string) (model.Record, bool) {
	r, ok := c.byID[id]
	return r, ok
}

func (c *Catalog) ByName(name string) (model.Record, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// Service owns the catalog lifecycle: lazy load on first use, explicit
// reload on demand. A new catalog is installed as a single pointer swap,
// so in-flight readers see either the old snapshot or the new one.
type Service struct {
	path      string
	idLabel   string
	nameLabel string
	log       zerolog.Logger

	mu  sync.Mutex // serializes loads
	cat atomic.Pointer[Catalog]
}

func New(path, idLabel, nameLabel string, logger zerolog.Logger) *Service {
	return &Service{
		path:      path,
		idLabel:   idLabel,
		nameLabel: nameLabel,
		log:       logger,
	}
}

// Catalog returns the current snapshot, loading the file on first use.
func (s *Service) Catalog() (*Catalog, error) {
	if c := s.cat.Load(); c != nil {
		return c, nil
	}
	return s.Reload()
}

// GetAll returns every record of the (lazily loaded) catalog.
func (s *Service) GetAll() ([]model.Record, error) {
	c, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	return c.Records, nil
}

// Reload reads the catalog file and atomically replaces the current snapshot.
// On failure the previous snapshot (if any) stays installed.
func (s *Service) Reload() (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCatalogNotFound, s.path)
		}
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	rows, err := fileio.ReadRows(f, s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	c, err := s.build(rows)
	if err != nil {
		return nil, err
	}

	s.cat.Store(c)
	s.log.Info().
		Str("path", s.path).
		Int("loaded", c.Stats.Loaded).
		Int("skipped", c.Stats.Skipped).
		Int("duplicates", c.Stats.Duplicates).
		Msg("catalog loaded")
	return c, nil
}

func (s *Service) build(rows [][]string) (*Catalog, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrCatalogFormat)
	}

	header := rows[0]
	if len(header) < 4 ||
		!strings.Contains(header[0], s.idLabel) ||
		!strings.Contains(header[1], s.nameLabel) {
		return nil, fmt.Errorf("%w: header %v", ErrCatalogFormat, header)
	}

	c := &Catalog{
		byID:   make(map[string]model.Record),
		byName: make(map[string]model.Record),
	}
	for _, row := range rows[1:] {
		if len(row) < 4 {
			c.Stats.Skipped++
			continue
		}
		rec := model.Record{
			ID:       row[0],
			Name:     row[1],
			Unit:     row[2],
			Currency: row[3],
		}
		if _, dup := c.byName[rec.Name]; dup {
			// last row wins, matching the upstream data feed
			c.Stats.Duplicates++
		}
		c.Records = append(c.Records, rec)
		c.byID[rec.ID] = rec
		c.byName[rec.Name] = rec
	}
	c.Stats.Loaded = len(c.Records)

	if c.Stats.Duplicates > 0 {
		s.log.Warn().Int("duplicates", c.Stats.Duplicates).Msg("catalog has duplicate names, keeping last")
	}
	return c, nil
}
