package service

import (
	"context"
	"sync"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/domain/ports"
	"github.com/RafaLima14028/CoinFlow/internal/metrics"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

// CatalogService populates the currency catalog once and serves it for the
// rest of the session. A failed population leaves the catalog empty; the
// next read attempt may repopulate.
type CatalogService struct {
	rates   ports.RateProvider
	log     *logger.Logger
	metrics *metrics.Metrics

	mu      sync.RWMutex
	catalog model.CurrencyCatalog
}

func NewCatalogService(rates ports.RateProvider, log *logger.Logger, m *metrics.Metrics) *CatalogService {
	return &CatalogService{
		rates:   rates,
		log:     log,
		metrics: m,
	}
}

func (s *CatalogService) Populate(ctx context.Context) error {
	s.metrics.CatalogLoadsTotal.Inc()

	catalog, err := s.rates.ListCurrencies(ctx)
	if err != nil {
		s.log.Error("Failed to populate currency catalog", "error", err)
		return err
	}

	s.mu.Lock()
	s.catalog = catalog
	s.mu.Unlock()

	s.log.Info("Currency catalog populated", "currencies", len(catalog))
	return nil
}

// Catalog returns the populated catalog. Callers must treat it as
// immutable; it is shared for the session.
func (s *CatalogService) Catalog() model.CurrencyCatalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

func (s *CatalogService) Populated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.catalog) > 0
}
