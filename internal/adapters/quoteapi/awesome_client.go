package quoteapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/fx_quote_app/internal/apperrors"
	"github.com/SscSPs/fx_quote_app/internal/core/domain"
	"github.com/SscSPs/fx_quote_app/internal/core/ports/clients"
	"github.com/SscSPs/fx_quote_app/internal/metrics"
	"github.com/SscSPs/fx_quote_app/internal/middleware"
	"github.com/shopspring/decimal"
)

const (
	// DefaultBaseURL is the public AwesomeAPI endpoint.
	DefaultBaseURL = "https://economia.awesomeapi.com.br/"
	// DefaultTimeout bounds a single outbound quote request.
	DefaultTimeout = 5 * time.Second

	usdBRLPath = "json/last/USD-BRL"
	usdBRLKey  = "USDBRL"

	// maxBodyBytes caps how much of the provider response is read.
	maxBodyBytes = 1 << 20
)

// awesomeQuote mirrors one entry of the provider payload. All numeric fields
// arrive as strings.
type awesomeQuote struct {
	Code       string `json:"code"`
	CodeIn     string `json:"codein"`
	Name       string `json:"name"`
	High       string `json:"high"`
	Low        string `json:"low"`
	VarBid     string `json:"varBid"`
	PctChange  string `json:"pctChange"`
	Bid        string `json:"bid"`
	Ask        string `json:"ask"`
	Timestamp  string `json:"timestamp"`
	CreateDate string `json:"create_date"`
}

// AwesomeClient implements clients.QuoteClient against economia.awesomeapi.com.br.
type AwesomeClient struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// Option configures an AwesomeClient.
type Option func(*AwesomeClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(a *AwesomeClient) {
		a.httpClient = c
	}
}

// WithClock overrides the clock used when the provider omits a timestamp.
func WithClock(now func() time.Time) Option {
	return func(a *AwesomeClient) {
		a.now = now
	}
}

// NewAwesomeClient creates a quote client. An empty baseURL falls back to
// DefaultBaseURL and a non-positive timeout to DefaultTimeout.
func NewAwesomeClient(baseURL string, timeout time.Duration, opts ...Option) *AwesomeClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &AwesomeClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ clients.QuoteClient = (*AwesomeClient)(nil)

// FetchUSDBRLQuote performs one GET against the provider and parses the bid.
// Every failure is reported as apperrors.ErrQuoteUnavailable.
func (c *AwesomeClient) FetchUSDBRLQuote(ctx context.Context) (domain.Quote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	start := time.Now()

	quote, err := c.fetch(ctx)
	metrics.QuoteFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.QuoteFetchTotal.WithLabelValues(metrics.ResultError).Inc()
		logger.Warn("Failed to fetch USD-BRL quote", slog.String("error", err.Error()))
		return domain.Quote{}, err
	}

	metrics.QuoteFetchTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	logger.Debug("Fetched USD-BRL quote",
		slog.String("rate", quote.Rate.String()),
		slog.Time("observed_at", quote.ObservedAt),
	)
	return quote, nil
}

func (c *AwesomeClient) fetch(ctx context.Context) (domain.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+usdBRLPath, nil)
	if err != nil {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("failed to build quote request", err)
	}
	req.Header.Add("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("quote request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError(
			fmt.Sprintf("quote provider answered with status %d", res.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("failed to read quote response", err)
	}

	return c.parse(body)
}

func (c *AwesomeClient) parse(body []byte) (domain.Quote, error) {
	var payload map[string]*awesomeQuote
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("malformed quote response", err)
	}

	entry, ok := payload[usdBRLKey]
	if !ok || entry == nil {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("quote response has no "+usdBRLKey+" entry", nil)
	}

	bid := strings.TrimSpace(entry.Bid)
	if bid == "" {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("quote response has no bid", nil)
	}

	rate, err := decimal.NewFromString(bid)
	if err != nil {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("quote bid is not a decimal", err)
	}
	if !rate.IsPositive() {
		return domain.Quote{}, apperrors.NewQuoteUnavailableError("quote bid must be positive, got "+bid, nil)
	}

	return domain.Quote{Rate: rate, ObservedAt: c.observedAt(entry.Timestamp)}, nil
}

// observedAt uses the provider's unix timestamp when present and falls back to the local clock.
func (c *AwesomeClient) observedAt(ts string) time.Time {
	if secs, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64); err == nil && secs > 0 {
		return time.Unix(secs, 0).UTC()
	}
	return c.now().UTC()
}
