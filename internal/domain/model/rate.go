package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type CurrencyPair struct {
	From Currency `json:"from"`
	To   Currency `json:"to"`
}

func (p CurrencyPair) String() string {
	return fmt.Sprintf("%s-%s", p.From, p.To)
}

// Key is the concatenated form the rate API uses to key its /last payload.
func (p CurrencyPair) Key() string {
	return fmt.Sprintf("%s%s", p.From, p.To)
}

func (p CurrencyPair) Identical() bool {
	return p.From == p.To
}

// RateQuote is a single point-in-time exchange rate reading. It is produced
// per request and discarded after use; quotes are never cached.
type RateQuote struct {
	Pair     CurrencyPair    `json:"pair"`
	Bid      decimal.Decimal `json:"bid"`
	FromName string          `json:"from_name"`
	ToName   string          `json:"to_name"`
	QuotedAt time.Time       `json:"quoted_at"`
}

type HistoryPoint struct {
	Timestamp time.Time       `json:"timestamp"`
	Bid       decimal.Decimal `json:"bid"`
}

// HistorySeries is an ordered sequence of history points. The rate API
// delivers it most-recent-first; charting consumes it oldest-first.
type HistorySeries []HistoryPoint

// Chronological returns a copy of the series in oldest-first order.
func (s HistorySeries) Chronological() HistorySeries {
	out := make(HistorySeries, len(s))
	for i, p := range s {
		out[len(s)-1-i] = p
	}
	return out
}

// ConversionRequest is built fresh from the widget's form state on every
// convert action.
type ConversionRequest struct {
	Amount decimal.Decimal `json:"amount"`
	From   Currency        `json:"from"`
	To     Currency        `json:"to"`
}

type ConversionStatus string

const (
	ConversionOK            ConversionStatus = "ok"
	ConversionInvalidAmount ConversionStatus = "invalid_amount"
	ConversionIdentical     ConversionStatus = "identical_currencies"
	ConversionFailed        ConversionStatus = "failed"
)

// ConversionResult is an outcome value: every failure path of the
// conversion engine is represented here rather than as an error, so the
// UI boundary always has something to render.
type ConversionResult struct {
	Status     ConversionStatus `json:"status"`
	SourceLine string           `json:"source_line,omitempty"`
	ResultLine string           `json:"result_line,omitempty"`
	RateLine   string           `json:"rate_line,omitempty"`
	LastUpdate string           `json:"last_update,omitempty"`
	Message    string           `json:"message,omitempty"`

	// ClearChart signals that any previously rendered chart is now
	// inconsistent with the result region and must be disposed.
	ClearChart bool `json:"clear_chart"`
}
