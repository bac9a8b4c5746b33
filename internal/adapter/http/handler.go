package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RafaLima14028/CoinFlow/internal/config"
	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/internal/domain/ports"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

// The widget's amount input never submits more than this many characters;
// longer strings are truncated here as well so both sides agree.
const maxAmountLength = 20

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type Handler struct {
	converter   ports.ConversionService
	history     ports.HistoryService
	catalog     ports.CatalogService
	preferences ports.PreferencesService
	cfg         *config.Config
	log         *logger.Logger
}

func NewHandler(
	converter ports.ConversionService,
	history ports.HistoryService,
	catalog ports.CatalogService,
	preferences ports.PreferencesService,
	cfg *config.Config,
	log *logger.Logger,
) *Handler {
	return &Handler{
		converter:   converter,
		history:     history,
		catalog:     catalog,
		preferences: preferences,
		cfg:         cfg,
		log:         log,
	}
}

// GetCurrenciesHandler serves the currency catalog plus the widget's
// default pair. An empty catalog (startup fetch failed) is retried here so
// a transient feed outage does not leave the selectors empty forever.
func (h *Handler) GetCurrenciesHandler(w http.ResponseWriter, r *http.Request) {
	if !h.catalog.Populated() {
		if err := h.catalog.Populate(r.Context()); err != nil {
			h.handleServiceError(w, err)
			return
		}
	}

	h.sendSuccessResponse(w, map[string]interface{}{
		"currencies":   h.catalog.Catalog(),
		"default_from": h.cfg.Widget.DefaultFrom,
		"default_to":   h.cfg.Widget.DefaultTo,
	})
}

// ConvertCurrencyHandler runs the conversion engine. The engine never
// fails: validation problems and feed failures come back as outcome values
// the widget renders in the result region, so this endpoint answers 200
// for all of them. When the outcome signals it, the live chart is cleared.
func (h *Handler) ConvertCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.currencyPair(w, r)
	if !ok {
		return
	}

	amountStr := r.URL.Query().Get("amount")
	// The cap counts characters, not bytes, so a multibyte rune at the
	// boundary is dropped whole rather than split.
	if runes := []rune(amountStr); len(runes) > maxAmountLength {
		amountStr = string(runes[:maxAmountLength])
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		amount = decimal.Zero // absent or unparseable: the engine reports InvalidAmount
	}

	result := h.converter.Convert(r.Context(), model.ConversionRequest{
		Amount: amount,
		From:   from,
		To:     to,
	})

	if result.ClearChart {
		h.history.Clear()
	}

	h.sendSuccessResponse(w, result)
}

// GetHistoryHandler refreshes the price history chart for the pair and the
// selected time window. Identical currencies have no history; the widget
// never asks for one, so that request shape is a client error.
func (h *Handler) GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.currencyPair(w, r)
	if !ok {
		return
	}

	if from == to {
		h.sendErrorResponse(w, http.StatusBadRequest, "select two different currencies to see a price history")
		return
	}

	days := h.cfg.Widget.DefaultWindow
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid days parameter")
			return
		}
		days = parsed
	}
	if !h.cfg.AllowsWindow(days) {
		h.sendErrorResponse(w, http.StatusBadRequest, "unsupported time range")
		return
	}

	pair := model.CurrencyPair{From: from, To: to}
	view := h.history.Refresh(r.Context(), pair, days, h.preferences.Theme())

	h.sendSuccessResponse(w, view)
}

func (h *Handler) ThemeHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.sendSuccessResponse(w, map[string]string{"theme": h.preferences.Theme().String()})
	case http.MethodPut, http.MethodPost:
		h.updateTheme(w, r)
	default:
		h.sendErrorResponse(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// updateTheme sets or toggles the persisted theme and restyles the live
// chart in place; no data is refetched on a theme change.
func (h *Handler) updateTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if r.Body != nil {
		// An empty or absent body means toggle.
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	var theme model.Theme
	var err error
	if body.Theme == "" {
		theme, err = h.preferences.Toggle(r.Context())
	} else {
		theme = model.Theme(body.Theme)
		if !theme.IsValid() {
			h.sendErrorResponse(w, http.StatusBadRequest, "theme must be light or dark")
			return
		}
		err = h.preferences.SetTheme(r.Context(), theme)
	}
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	view := h.history.Restyle(theme)

	h.sendSuccessResponse(w, map[string]interface{}{
		"theme": theme.String(),
		"chart": view.Chart,
	})
}

// currencyPair reads and validates the from/to query parameters. Codes are
// normalized to uppercase; once the catalog is populated, unknown codes are
// rejected before any network call.
func (h *Handler) currencyPair(w http.ResponseWriter, r *http.Request) (model.Currency, model.Currency, bool) {
	from := model.Currency(strings.ToUpper(r.URL.Query().Get("from")))
	to := model.Currency(strings.ToUpper(r.URL.Query().Get("to")))

	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return "", "", false
	}
	if !from.IsValid() || !to.IsValid() {
		h.sendErrorResponse(w, http.StatusBadRequest, "currency codes must be alphabetic")
		return "", "", false
	}
	if h.catalog.Populated() {
		catalog := h.catalog.Catalog()
		if !catalog.Has(from) || !catalog.Has(to) {
			h.sendErrorResponse(w, http.StatusBadRequest, "unknown currency code")
			return "", "", false
		}
	}

	return from, to, true
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	response := Response{
		Success: true,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := Response{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	switch {
	case errors.Is(err, model.ErrCatalogUnavailable):
		statusCode = http.StatusServiceUnavailable
		errorMessage = model.ErrCatalogUnavailable.Error()
	case errors.Is(err, model.ErrPairUnsupported):
		statusCode = http.StatusBadGateway
		errorMessage = model.ErrPairUnsupported.Error()
	case errors.Is(err, model.ErrRateMissing):
		statusCode = http.StatusBadGateway
		errorMessage = model.ErrRateMissing.Error()
	case errors.Is(err, model.ErrHistoryUnavailable):
		statusCode = http.StatusBadGateway
		errorMessage = model.ErrHistoryUnavailable.Error()
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendErrorResponse(w, statusCode, errorMessage)
}
