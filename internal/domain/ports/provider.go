package ports

import (
	"context"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
)

// RateProvider is the remote currency-rate feed. Implementations perform no
// caching and no retries; every failure surfaces as a typed error.
type RateProvider interface {
	ListCurrencies(ctx context.Context) (model.CurrencyCatalog, error)
	LatestRate(ctx context.Context, pair model.CurrencyPair) (*model.RateQuote, error)
	DailyHistory(ctx context.Context, pair model.CurrencyPair, days int) (model.HistorySeries, error)
}
