package service

import (
	"context"
	"sync"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/domain/ports"
	"github.com/RafaLima14028/CoinFlow/internal/metrics"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

// PreferencesService holds the session's theme and keeps the durable store
// in sync: read once at startup, written on every change.
type PreferencesService struct {
	store        ports.PreferenceStore
	log          *logger.Logger
	metrics      *metrics.Metrics
	defaultTheme model.Theme

	mu      sync.RWMutex
	current model.Theme
}

func NewPreferencesService(store ports.PreferenceStore, defaultTheme model.Theme, log *logger.Logger, m *metrics.Metrics) *PreferencesService {
	if !defaultTheme.IsValid() {
		defaultTheme = model.ThemeLight
	}
	return &PreferencesService{
		store:        store,
		log:          log,
		metrics:      m,
		defaultTheme: defaultTheme,
		current:      defaultTheme,
	}
}

// Load reads the persisted theme. Fallback chain: stored value, configured
// default, light. Load itself writes nothing.
func (s *PreferencesService) Load(ctx context.Context) model.Theme {
	theme := s.defaultTheme

	value, found, err := s.store.Get(ctx, ports.ThemeKey)
	if err != nil {
		s.log.Error("Failed to read persisted theme", "error", err)
	} else if found {
		if stored := model.Theme(value); stored.IsValid() {
			theme = stored
		} else {
			s.log.Error("Ignoring invalid persisted theme", "value", value)
		}
	}

	s.mu.Lock()
	s.current = theme
	s.mu.Unlock()

	s.log.Info("Theme loaded", "theme", theme.String())
	return theme
}

func (s *PreferencesService) Theme() model.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *PreferencesService) SetTheme(ctx context.Context, theme model.Theme) error {
	if err := s.store.Set(ctx, ports.ThemeKey, theme.String()); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = theme
	s.mu.Unlock()

	s.metrics.ThemeChangesTotal.Inc()
	s.log.Info("Theme changed", "theme", theme.String())
	return nil
}

func (s *PreferencesService) Toggle(ctx context.Context) (model.Theme, error) {
	next := s.Theme().Toggled()
	if err := s.SetTheme(ctx, next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}
