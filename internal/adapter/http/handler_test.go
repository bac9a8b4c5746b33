package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RafaLima14028/CoinFlow/internal/config"
	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

type MockConversionService struct {
	ConvertFunc func(ctx context.Context, request model.ConversionRequest) model.ConversionResult
	LastRequest model.ConversionRequest
}

func (m *MockConversionService) Convert(ctx context.Context, request model.ConversionRequest) model.ConversionResult {
	m.LastRequest = request
	if m.ConvertFunc != nil {
		return m.ConvertFunc(ctx, request)
	}
	return model.ConversionResult{Status: model.ConversionOK}
}

type MockHistoryService struct {
	RefreshFunc  func(ctx context.Context, pair model.CurrencyPair, days int, theme model.Theme) model.HistoryView
	RestyleFunc  func(theme model.Theme) model.HistoryView
	ClearCalls   int
	RefreshCalls int
}

func (m *MockHistoryService) Refresh(ctx context.Context, pair model.CurrencyPair, days int, theme model.Theme) model.HistoryView {
	m.RefreshCalls++
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, pair, days, theme)
	}
	return model.HistoryView{Phase: model.HistorySuccess}
}

func (m *MockHistoryService) Restyle(theme model.Theme) model.HistoryView {
	if m.RestyleFunc != nil {
		return m.RestyleFunc(theme)
	}
	return model.HistoryView{Phase: model.HistorySuccess}
}

func (m *MockHistoryService) Clear() {
	m.ClearCalls++
}

type MockCatalogService struct {
	CatalogValue model.CurrencyCatalog
	PopulateFunc func(ctx context.Context) error
}

func (m *MockCatalogService) Populate(ctx context.Context) error {
	if m.PopulateFunc != nil {
		return m.PopulateFunc(ctx)
	}
	return nil
}

func (m *MockCatalogService) Catalog() model.CurrencyCatalog {
	return m.CatalogValue
}

func (m *MockCatalogService) Populated() bool {
	return len(m.CatalogValue) > 0
}

type MockPreferencesService struct {
	Current model.Theme
}

func (m *MockPreferencesService) Load(ctx context.Context) model.Theme { return m.Current }
func (m *MockPreferencesService) Theme() model.Theme                   { return m.Current }

func (m *MockPreferencesService) SetTheme(ctx context.Context, theme model.Theme) error {
	m.Current = theme
	return nil
}

func (m *MockPreferencesService) Toggle(ctx context.Context) (model.Theme, error) {
	m.Current = m.Current.Toggled()
	return m.Current, nil
}

type handlerFixture struct {
	handler     *Handler
	converter   *MockConversionService
	history     *MockHistoryService
	catalog     *MockCatalogService
	preferences *MockPreferencesService
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	f := &handlerFixture{
		converter: &MockConversionService{},
		history:   &MockHistoryService{},
		catalog: &MockCatalogService{
			CatalogValue: model.CurrencyCatalog{
				"USD": "Dólar Americano",
				"BRL": "Real Brasileiro",
				"EUR": "Euro",
			},
		},
		preferences: &MockPreferencesService{Current: model.ThemeLight},
	}
	f.handler = NewHandler(f.converter, f.history, f.catalog, f.preferences, cfg, logger.NewLogger("debug"))
	return f
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestConvertCurrencyHandler_MissingParams(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?amount=10", nil)
	rec := httptest.NewRecorder()

	f.handler.ConvertCurrencyHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
}

func TestConvertCurrencyHandler_UnknownCurrency(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?from=USD&to=ZZZ&amount=10", nil)
	rec := httptest.NewRecorder()

	f.handler.ConvertCurrencyHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConvertCurrencyHandler_Success(t *testing.T) {
	f := newFixture(t)
	f.converter.ConvertFunc = func(ctx context.Context, request model.ConversionRequest) model.ConversionResult {
		return model.ConversionResult{
			Status:     model.ConversionOK,
			ResultLine: "54.32 Real Brasileiro (BRL)",
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?from=usd&to=brl&amount=10", nil)
	rec := httptest.NewRecorder()

	f.handler.ConvertCurrencyHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)

	// Codes are normalized to uppercase before hitting the engine.
	assert.Equal(t, model.Currency("USD"), f.converter.LastRequest.From)
	assert.Equal(t, model.Currency("BRL"), f.converter.LastRequest.To)
	assert.Equal(t, "10", f.converter.LastRequest.Amount.String())
	assert.Zero(t, f.history.ClearCalls)
}

func TestConvertCurrencyHandler_OutcomeClearsChart(t *testing.T) {
	f := newFixture(t)
	f.converter.ConvertFunc = func(ctx context.Context, request model.ConversionRequest) model.ConversionResult {
		return model.ConversionResult{
			Status:     model.ConversionFailed,
			Message:    "boom",
			ClearChart: true,
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?from=USD&to=BRL&amount=10", nil)
	rec := httptest.NewRecorder()

	f.handler.ConvertCurrencyHandler(rec, req)

	// Failure outcomes are values for the widget to render, not HTTP errors.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, f.history.ClearCalls)
}

func TestConvertCurrencyHandler_TruncatesLongAmount(t *testing.T) {
	f := newFixture(t)

	long := strings.Repeat("1", 25)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?from=USD&to=BRL&amount="+long, nil)
	rec := httptest.NewRecorder()

	f.handler.ConvertCurrencyHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, strings.Repeat("1", 20), f.converter.LastRequest.Amount.String())
}

func TestConvertCurrencyHandler_TruncatesLongAmountByRunes(t *testing.T) {
	f := newFixture(t)

	// 21 characters, the last one multibyte: the cap must drop the whole
	// trailing rune, leaving a parseable 20-character amount.
	long := url.QueryEscape("111111111111111111.5½")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/convert?from=USD&to=BRL&amount="+long, nil)
	rec := httptest.NewRecorder()

	f.handler.ConvertCurrencyHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "111111111111111111.5", f.converter.LastRequest.Amount.String())
}

func TestGetHistoryHandler_IdenticalCurrencies(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?from=USD&to=USD", nil)
	rec := httptest.NewRecorder()

	f.handler.GetHistoryHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.history.RefreshCalls)
}

func TestGetHistoryHandler_UnsupportedWindow(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?from=USD&to=BRL&days=11", nil)
	rec := httptest.NewRecorder()

	f.handler.GetHistoryHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, f.history.RefreshCalls)
}

func TestGetHistoryHandler_DefaultWindow(t *testing.T) {
	f := newFixture(t)

	var gotDays int
	var gotTheme model.Theme
	f.history.RefreshFunc = func(ctx context.Context, pair model.CurrencyPair, days int, theme model.Theme) model.HistoryView {
		gotDays = days
		gotTheme = theme
		return model.HistoryView{Phase: model.HistorySuccess, Chart: "chart"}
	}
	f.preferences.Current = model.ThemeDark

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history?from=USD&to=BRL", nil)
	rec := httptest.NewRecorder()

	f.handler.GetHistoryHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, gotDays)
	assert.Equal(t, model.ThemeDark, gotTheme)
}

func TestThemeHandler_Get(t *testing.T) {
	f := newFixture(t)
	f.preferences.Current = model.ThemeDark

	req := httptest.NewRequest(http.MethodGet, "/api/v1/theme", nil)
	rec := httptest.NewRecorder()

	f.handler.ThemeHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "dark", data["theme"])
}

func TestThemeHandler_PutTogglesWithoutBody(t *testing.T) {
	f := newFixture(t)
	f.preferences.Current = model.ThemeLight

	req := httptest.NewRequest(http.MethodPut, "/api/v1/theme", nil)
	rec := httptest.NewRecorder()

	f.handler.ThemeHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ThemeDark, f.preferences.Current)
}

func TestThemeHandler_PutExplicitTheme(t *testing.T) {
	f := newFixture(t)

	restyled := model.Theme("")
	f.history.RestyleFunc = func(theme model.Theme) model.HistoryView {
		restyled = theme
		return model.HistoryView{Phase: model.HistorySuccess}
	}

	req := httptest.NewRequest(http.MethodPut, "/api/v1/theme", strings.NewReader(`{"theme":"dark"}`))
	rec := httptest.NewRecorder()

	f.handler.ThemeHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.ThemeDark, f.preferences.Current)
	assert.Equal(t, model.ThemeDark, restyled)
}

func TestThemeHandler_InvalidTheme(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/theme", strings.NewReader(`{"theme":"sepia"}`))
	rec := httptest.NewRecorder()

	f.handler.ThemeHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, model.ThemeLight, f.preferences.Current)
}

func TestGetCurrenciesHandler(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	rec := httptest.NewRecorder()

	f.handler.GetCurrenciesHandler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	currencies := data["currencies"].(map[string]interface{})
	assert.Len(t, currencies, 3)
	assert.Equal(t, "USD", data["default_from"])
	assert.Equal(t, "BRL", data["default_to"])
}
