package awesomeapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/RafaLima14028/CoinFlow/internal/domain/model"
	"github.com/RafaLima14028/CoinFlow/pkg/logger"
)

const quoteTimeLayout = "2006-01-02 15:04:05"

// The feed reports create_date in São Paulo time. The zone has kept a
// fixed -03 offset since Brazil abolished DST in 2019, so the fixed zone
// stands in when the host has no tzdata.
var quoteLocation = func() *time.Location {
	if loc, err := time.LoadLocation("America/Sao_Paulo"); err == nil {
		return loc
	}
	return time.FixedZone("-03", -3*60*60)
}()

// Client talks to the economia.awesomeapi.com.br currency feed. It keeps no
// state: no caching, no retries, every call re-fetches and every failure is
// surfaced to the caller wrapped in one of the model sentinel errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	return body, resp.StatusCode, nil
}

// ListCurrencies fetches the currency catalog from /available/uniq. Only
// string-valued entries with a well-formed code survive; the feed mixes
// metadata into the same object.
func (c *Client) ListCurrencies(ctx context.Context) (model.CurrencyCatalog, error) {
	body, status, err := c.get(ctx, "/available/uniq")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCatalogUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", model.ErrCatalogUnavailable, status)
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return nil, fmt.Errorf("%w: unexpected payload", model.ErrCatalogUnavailable)
	}

	catalog := make(model.CurrencyCatalog)
	parsed.ForEach(func(key, value gjson.Result) bool {
		code := model.Currency(key.String())
		if value.Type == gjson.String && code.IsValid() {
			catalog[code] = value.String()
		}
		return true
	})

	c.log.Debug("Fetched currency catalog", "currencies", len(catalog))
	return catalog, nil
}

// LatestRate fetches the current bid for the ordered pair from
// /last/{FROM}-{TO}. The payload is an object keyed by the concatenated
// codes; a successful response without that key means the feed returned a
// partial or malformed quote.
func (c *Client) LatestRate(ctx context.Context, pair model.CurrencyPair) (*model.RateQuote, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("/last/%s", pair))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrPairUnsupported, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", model.ErrPairUnsupported, status)
	}

	info := gjson.GetBytes(body, pair.Key())
	if !info.Exists() {
		return nil, fmt.Errorf("%w: no %s entry", model.ErrRateMissing, pair.Key())
	}

	bid, err := decimal.NewFromString(info.Get("bid").String())
	if err != nil {
		return nil, fmt.Errorf("%w: bad bid %q", model.ErrRateMissing, info.Get("bid").String())
	}

	// The combined name field reads "FullFrom/FullTo".
	fromName, toName := splitName(info.Get("name").String(), pair)

	quotedAt, err := time.ParseInLocation(quoteTimeLayout, info.Get("create_date").String(), quoteLocation)
	if err != nil {
		c.log.Debug("Unparseable create_date, using current time", "create_date", info.Get("create_date").String(), "error", err)
		quotedAt = time.Now()
	}

	return &model.RateQuote{
		Pair:     pair,
		Bid:      bid,
		FromName: fromName,
		ToName:   toName,
		QuotedAt: quotedAt,
	}, nil
}

// DailyHistory fetches the last N daily quotes for the pair from
// /daily/{FROM}-{TO}/{N}. The feed signals unknown pairs with an object
// payload carrying a status marker instead of an HTTP error.
func (c *Client) DailyHistory(ctx context.Context, pair model.CurrencyPair, days int) (model.HistorySeries, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("/daily/%s/%d", pair, days))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrHistoryUnavailable, err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", model.ErrHistoryUnavailable, status)
	}

	parsed := gjson.ParseBytes(body)
	if parsed.IsObject() && parsed.Get("status").Exists() {
		return nil, fmt.Errorf("%w: feed status %s", model.ErrHistoryUnavailable, parsed.Get("status").String())
	}
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: unexpected payload", model.ErrHistoryUnavailable)
	}

	var series model.HistorySeries
	for _, item := range parsed.Array() {
		ts, err := strconv.ParseInt(item.Get("timestamp").String(), 10, 64)
		if err != nil {
			continue
		}
		bid, err := decimal.NewFromString(item.Get("bid").String())
		if err != nil {
			continue
		}
		series = append(series, model.HistoryPoint{
			Timestamp: time.Unix(ts, 0),
			Bid:       bid,
		})
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("%w: empty series", model.ErrHistoryUnavailable)
	}

	c.log.Debug("Fetched daily history", "pair", pair.String(), "days", days, "points", len(series))
	return series, nil
}

func splitName(name string, pair model.CurrencyPair) (string, string) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) == 2 && parts[0] != "" && parts[1] != "" {
		return parts[0], parts[1]
	}
	return pair.From.String(), pair.To.String()
}
