package service

import (
	"errors"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
)

// userMessage maps a rate-feed failure to the stable text the widget shows
// in the result or chart region. Wrapped detail (status codes, transport
// errors) stays in the logs; the user sees only the sentinel's message.
func userMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrCatalogUnavailable):
		return model.ErrCatalogUnavailable.Error()
	case errors.Is(err, model.ErrPairUnsupported):
		return model.ErrPairUnsupported.Error()
	case errors.Is(err, model.ErrRateMissing):
		return model.ErrRateMissing.Error()
	case errors.Is(err, model.ErrHistoryUnavailable):
		return model.ErrHistoryUnavailable.Error()
	default:
		return "the exchange service is temporarily unavailable"
	}
}
