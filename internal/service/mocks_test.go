package service

import (
	"context"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/metrics"
)

// Metrics register on the default prometheus registry, so the test binary
// shares one instance across all tests in this package.
var testMetrics = metrics.NewMetrics()

type MockRateProvider struct {
	ListCurrenciesFunc func(ctx context.Context) (model.CurrencyCatalog, error)
	LatestRateFunc     func(ctx context.Context, pair model.CurrencyPair) (*model.RateQuote, error)
	DailyHistoryFunc   func(ctx context.Context, pair model.CurrencyPair, days int) (model.HistorySeries, error)

	LatestRateCalls   int
	DailyHistoryCalls int
}

func (m *MockRateProvider) ListCurrencies(ctx context.Context) (model.CurrencyCatalog, error) {
	return m.ListCurrenciesFunc(ctx)
}

func (m *MockRateProvider) LatestRate(ctx context.Context, pair model.CurrencyPair) (*model.RateQuote, error) {
	m.LatestRateCalls++
	return m.LatestRateFunc(ctx, pair)
}

func (m *MockRateProvider) DailyHistory(ctx context.Context, pair model.CurrencyPair, days int) (model.HistorySeries, error) {
	m.DailyHistoryCalls++
	return m.DailyHistoryFunc(ctx, pair, days)
}

// MockChartRenderer records lifecycle calls in order.
type MockChartRenderer struct {
	Events []string
	Live   bool
}

func (m *MockChartRenderer) Create(label string, labels []string, points []float64, theme model.Theme) {
	if m.Live {
		// mirrors the real renderer: creating replaces the previous instance
		m.Events = append(m.Events, "dispose")
	}
	m.Events = append(m.Events, "create")
	m.Live = true
}

func (m *MockChartRenderer) Restyle(theme model.Theme) {
	m.Events = append(m.Events, "restyle")
}

func (m *MockChartRenderer) Dispose() {
	if m.Live {
		m.Events = append(m.Events, "dispose")
	}
	m.Live = false
}

func (m *MockChartRenderer) Config() (any, bool) {
	if !m.Live {
		return nil, false
	}
	return "chart", true
}

type MockPreferenceStore struct {
	Values map[string]string
	Err    error
}

func (m *MockPreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	if m.Err != nil {
		return "", false, m.Err
	}
	value, ok := m.Values[key]
	return value, ok, nil
}

func (m *MockPreferenceStore) Set(ctx context.Context, key, value string) error {
	if m.Err != nil {
		return m.Err
	}
	if m.Values == nil {
		m.Values = make(map[string]string)
	}
	m.Values[key] = value
	return nil
}

func (m *MockPreferenceStore) Close() error {
	return nil
}
