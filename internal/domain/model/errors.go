package model

import "errors"

// Failure taxonomy of the rate feed. The messages double as the
// user-visible text the widget renders in the result and chart regions,
// so they are phrased for the user, not for operators; wrapped detail
// (status codes, transport errors) stays in the logs.
var (
	ErrCatalogUnavailable = errors.New("could not load the currency list")
	ErrPairUnsupported    = errors.New("the selected conversion is not supported by the exchange API")
	ErrRateMissing        = errors.New("could not read the exchange rate for the selected currencies")
	ErrHistoryUnavailable = errors.New("price history is not available for this currency pair")
)
