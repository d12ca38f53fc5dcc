// Package bankrate fetches the official USD to ILS rate published by the Bank of Israel.
package bankrate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/saragoldblat100/br-sales/internal/core/domain"
	"github.com/saragoldblat100/br-sales/internal/core/ports/gateways"
	"github.com/shopspring/decimal"
)

// lastUpdate is sent without a zone offset on some responses.
var lastUpdateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"}

// maxBodyBytes caps the response we are willing to read.
const maxBodyBytes = 1 << 20

type exchangeRateResponse struct {
	Key                 string          `json:"key"`
	CurrentExchangeRate decimal.Decimal `json:"currentExchangeRate"`
	Unit                int             `json:"unit"`
	LastUpdate          string          `json:"lastUpdate"`
}

// BOIClient is a gateways.BankRateSource backed by the Bank of Israel public API.
type BOIClient struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

var _ gateways.BankRateSource = (*BOIClient)(nil)

// ClientOption configures a BOIClient.
type ClientOption func(*BOIClient)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(b *BOIClient) {
		b.httpClient = c
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *slog.Logger) ClientOption {
	return func(b *BOIClient) {
		b.logger = l
	}
}

// NewBOIClient creates a client for the given exchange rate endpoint.
// The timeout applies to each request on top of any context deadline.
func NewBOIClient(url string, timeout time.Duration, options ...ClientOption) *BOIClient {
	c := &BOIClient{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		logger:     slog.Default(),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// FetchUSDRate returns the latest published USD rate in ILS per dollar.
func (c *BOIClient) FetchUSDRate(ctx context.Context) (*domain.BankRateQuote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build bank rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bank rate request failed: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Bank rate response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("bank rate request returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload exchangeRateResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode bank rate response: %w", err)
	}

	rate := payload.CurrentExchangeRate
	if payload.Unit > 1 {
		rate = rate.Div(decimal.NewFromInt(int64(payload.Unit)))
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("bank returned a non-positive rate %s", payload.CurrentExchangeRate.String())
	}

	return &domain.BankRateQuote{
		Rate:        rate,
		PublishedAt: parseLastUpdate(payload.LastUpdate, start),
		Source:      domain.RateSourceBankOfIsrael,
	}, nil
}

func parseLastUpdate(s string, fallback time.Time) time.Time {
	for _, layout := range lastUpdateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return fallback
}
