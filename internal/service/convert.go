package service

import (
	"context"
	"fmt"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/domain/ports"
	"github.com/RafaLima14028/CoinFlow/internal/metrics"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

const quoteDisplayLayout = "02/01/2006 15:04:05"

// ConversionService validates a conversion request, fetches the current
// bid rate and formats the result lines the widget displays. It never
// returns an error: every failure path is an outcome value.
type ConversionService struct {
	rates   ports.RateProvider
	log     *logger.Logger
	metrics *metrics.Metrics
}

func NewConversionService(rates ports.RateProvider, log *logger.Logger, m *metrics.Metrics) *ConversionService {
	return &ConversionService{
		rates:   rates,
		log:     log,
		metrics: m,
	}
}

func (s *ConversionService) Convert(ctx context.Context, request model.ConversionRequest) model.ConversionResult {
	if request.Amount.Sign() <= 0 {
		s.metrics.ConversionsTotal.WithLabelValues(string(model.ConversionInvalidAmount)).Inc()
		return model.ConversionResult{
			Status:  model.ConversionInvalidAmount,
			Message: "please enter a valid amount",
		}
	}

	if request.From == request.To {
		s.metrics.ConversionsTotal.WithLabelValues(string(model.ConversionIdentical)).Inc()
		return model.ConversionResult{
			Status:     model.ConversionIdentical,
			Message:    fmt.Sprintf("1 %s = 1 %s, the amount stays the same", request.From, request.To),
			ClearChart: true,
		}
	}

	pair := model.CurrencyPair{From: request.From, To: request.To}
	quote, err := s.rates.LatestRate(ctx, pair)
	if err != nil {
		s.log.Error("Failed to fetch latest rate", "error", err, "pair", pair.String())
		s.metrics.ConversionsTotal.WithLabelValues(string(model.ConversionFailed)).Inc()
		return model.ConversionResult{
			Status:     model.ConversionFailed,
			Message:    userMessage(err),
			ClearChart: true,
		}
	}

	// Round half away from zero at 2 decimal places; the unit rate keeps
	// 4 places the way the widget's rate line always has.
	converted := request.Amount.Mul(quote.Bid).Round(2)

	s.metrics.ConversionsTotal.WithLabelValues(string(model.ConversionOK)).Inc()
	return model.ConversionResult{
		Status:     model.ConversionOK,
		SourceLine: fmt.Sprintf("%s %s (%s)", request.Amount, quote.FromName, request.From),
		ResultLine: fmt.Sprintf("%s %s (%s)", converted.StringFixed(2), quote.ToName, request.To),
		RateLine:   fmt.Sprintf("1 %s = %s %s", request.From, quote.Bid.StringFixed(4), request.To),
		LastUpdate: quote.QuotedAt.Format(quoteDisplayLayout),
	}
}
