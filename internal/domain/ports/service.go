package ports

import (
	"context"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
)

type ConversionService interface {
	Convert(ctx context.Context, request model.ConversionRequest) model.ConversionResult
}

type HistoryService interface {
	Refresh(ctx context.Context, pair model.CurrencyPair, days int, theme model.Theme) model.HistoryView
	Restyle(theme model.Theme) model.HistoryView
	Clear()
}

type CatalogService interface {
	Populate(ctx context.Context) error
	Catalog() model.CurrencyCatalog
	Populated() bool
}

type PreferencesService interface {
	Load(ctx context.Context) model.Theme
	Theme() model.Theme
	SetTheme(ctx context.Context, theme model.Theme) error
	Toggle(ctx context.Context) (model.Theme, error)
}
