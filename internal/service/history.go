package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/domain/ports"
	"github.com/RafaLima14028/CoinFlow/internal/metrics"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

const historyLabelLayout = "02/01"

// HistoryService orchestrates the price history chart: fetch the daily
// series, put it in chronological order and hand it to the chart renderer,
// which holds the single live chart instance. Its phase moves
// Idle -> Loading -> (Success | Error) -> Idle.
type HistoryService struct {
	rates   ports.RateProvider
	chart   ports.ChartRenderer
	log     *logger.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	seq     uint64
	phase   model.HistoryPhase
	message string
}

func NewHistoryService(rates ports.RateProvider, chart ports.ChartRenderer, log *logger.Logger, m *metrics.Metrics) *HistoryService {
	return &HistoryService{
		rates:   rates,
		chart:   chart,
		log:     log,
		metrics: m,
		phase:   model.HistoryIdle,
	}
}

// Refresh fetches the daily history for the pair and replaces the live
// chart. Callers only invoke it for distinct currency pairs. Each refresh
// carries a sequence number; a completion that is no longer the latest
// issued is discarded, so a slow stale fetch never overwrites newer state.
func (s *HistoryService) Refresh(ctx context.Context, pair model.CurrencyPair, days int, theme model.Theme) model.HistoryView {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.phase = model.HistoryLoading
	s.message = ""
	s.mu.Unlock()

	series, err := s.rates.DailyHistory(ctx, pair, days)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.log.Debug("Discarding superseded history refresh", "pair", pair.String(), "seq", seq)
		s.metrics.HistoryRefreshTotal.WithLabelValues("superseded").Inc()
		return s.view()
	}

	if err != nil {
		s.log.Error("Failed to fetch daily history", "error", err, "pair", pair.String(), "days", days)
		s.metrics.HistoryRefreshTotal.WithLabelValues("error").Inc()
		s.chart.Dispose()
		s.phase = model.HistoryError
		s.message = userMessage(err)
		return s.view()
	}

	chronological := series.Chronological()
	labels := make([]string, len(chronological))
	points := make([]float64, len(chronological))
	for i, p := range chronological {
		labels[i] = p.Timestamp.Format(historyLabelLayout)
		points[i] = p.Bid.InexactFloat64()
	}

	s.chart.Create(fmt.Sprintf("%s to %s", pair.From, pair.To), labels, points, theme)
	s.metrics.HistoryRefreshTotal.WithLabelValues("success").Inc()
	s.phase = model.HistorySuccess
	return s.view()
}

// Restyle recolors the live chart for the new theme without refetching.
func (s *HistoryService) Restyle(theme model.Theme) model.HistoryView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chart.Restyle(theme)
	return s.view()
}

// Clear disposes the live chart. The conversion engine signals it whenever
// the result region no longer matches the chart (identity pair, failures).
func (s *HistoryService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chart.Dispose()
	s.phase = model.HistoryIdle
	s.message = ""
}

func (s *HistoryService) currentView() model.HistoryView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

// view must be called with the mutex held.
func (s *HistoryService) view() model.HistoryView {
	v := model.HistoryView{Phase: s.phase, Message: s.message}
	if cfg, ok := s.chart.Config(); ok {
		v.Chart = cfg
	}
	return v
}
