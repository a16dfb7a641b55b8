// Package minfraud is a client for a transaction fraud-scoring web service.
// It validates and normalizes transaction records on the client side,
// submits them over HTTPS with Basic authentication, and classifies every
// response into either a typed result model or a typed *Error.
//
// The preparation pipeline (validation, email canonicalization, payload
// construction) is pure and reentrant; a single Client may be used from any
// number of goroutines concurrently.
package minfraud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tjfontaine/minfraud-go/internal/request"
	"github.com/tjfontaine/minfraud-go/internal/validate"
	"github.com/tjfontaine/minfraud-go/pkg/record"
)

const (
	defaultHost    = "minfraud.maxmind.com"
	defaultTimeout = 60 * time.Second

	userAgent = "minfraud-go/1.0"
)

// ClientOption configures the client.
type ClientOption func(*Client)

// WithHost sets the service host, e.g. the sandbox host instead of
// production.
func WithHost(host string) ClientOption {
	return func(c *Client) {
		c.host = host
	}
}

// WithHTTPClient sets a custom HTTP client. The caller keeps ownership:
// Close will not touch it, and the per-call timeout option is ignored in
// favor of the supplied client's own configuration.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each network round trip. Exceeding it surfaces as a
// KindTransport error; no retry is attempted.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLocales sets the locale preference list used to pick the language of
// localized response fields.
func WithLocales(locales ...string) ClientOption {
	return func(c *Client) {
		c.locales = locales
	}
}

// WithProxy routes requests through an HTTP proxy.
func WithProxy(proxy *url.URL) ClientOption {
	return func(c *Client) {
		c.proxy = proxy
	}
}

// WithEmailHashing replaces a plain email address with the deterministic
// digest of its canonical form before submission. The email domain is still
// sent in plaintext.
func WithEmailHashing() ClientOption {
	return func(c *Client) {
		c.hashEmail = true
	}
}

// WithoutValidation disables client-side validation of records before
// submission, leaving the server as the only schema check.
func WithoutValidation() ClientOption {
	return func(c *Client) {
		c.validate = false
	}
}

// WithLogger sets the logger for request-level debug logging. The default
// discards everything.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// Client talks to the fraud-scoring web service. Construct it with
// NewClient and release it with Close.
type Client struct {
	accountID  string
	licenseKey string
	host       string
	locales    []string
	timeout    time.Duration
	proxy      *url.URL
	hashEmail  bool
	validate   bool
	logger     *slog.Logger

	httpClient    *http.Client
	ownsTransport bool

	scoreURI    string
	insightsURI string
	factorsURI  string
	reportURI   string
}

// NewClient creates a client authenticating with the given account ID and
// license key.
func NewClient(accountID int, licenseKey string, opts ...ClientOption) *Client {
	c := &Client{
		accountID:  strconv.Itoa(accountID),
		licenseKey: licenseKey,
		host:       defaultHost,
		locales:    []string{"en"},
		timeout:    defaultTimeout,
		validate:   true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
		if c.proxy != nil {
			transport.Proxy = http.ProxyURL(c.proxy)
		}
		c.httpClient = &http.Client{
			Timeout:   c.timeout,
			Transport: otelhttp.NewTransport(transport),
		}
		c.ownsTransport = true
	}

	base := "https://" + c.host + "/minfraud/v2.0"
	c.scoreURI = base + "/score"
	c.insightsURI = base + "/insights"
	c.factorsURI = base + "/factors"
	c.reportURI = base + "/transactions/report"

	return c
}

// Score submits a transaction to the score endpoint.
func (c *Client) Score(ctx context.Context, tx *record.Transaction) (*Score, error) {
	var out Score
	if err := c.submitTransaction(ctx, c.scoreURI, tx, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Insights submits a transaction to the detailed-insights endpoint.
func (c *Client) Insights(ctx context.Context, tx *record.Transaction) (*Insights, error) {
	var out Insights
	if err := c.submitTransaction(ctx, c.insightsURI, tx, &out); err != nil {
		return nil, err
	}
	out.IPAddress.setLocales(c.locales)
	return &out, nil
}

// Factors submits a transaction to the factors endpoint.
func (c *Client) Factors(ctx context.Context, tx *record.Transaction) (*Factors, error) {
	var out Factors
	if err := c.submitTransaction(ctx, c.factorsURI, tx, &out); err != nil {
		return nil, err
	}
	out.IPAddress.setLocales(c.locales)
	return &out, nil
}

// ReportTransaction reports the outcome of a previously scored transaction.
// A successful report has no body; the service acknowledges it with 204.
func (c *Client) ReportTransaction(ctx context.Context, r *record.Report) error {
	if c.validate {
		if err := validate.Report(r); err != nil {
			return asValidationError(err)
		}
	}

	status, _, body, err := c.post(ctx, c.reportURI, request.Report(r))
	if err != nil {
		return transportError(c.reportURI, err)
	}
	if status == http.StatusNoContent {
		return nil
	}
	return classifyError(status, body)
}

// Close releases the client's network resources. Only the transport the
// client created itself is touched; a caller-supplied HTTP client is left
// alone.
func (c *Client) Close() {
	if c.ownsTransport {
		c.httpClient.CloseIdleConnections()
	}
}

func (c *Client) submitTransaction(ctx context.Context, uri string, tx *record.Transaction, out any) error {
	if c.validate {
		if err := validate.Transaction(tx); err != nil {
			return asValidationError(err)
		}
	}

	payload := request.Transaction(tx, c.hashEmail)

	status, contentType, body, err := c.post(ctx, uri, payload)
	if err != nil {
		return transportError(uri, err)
	}
	if status != http.StatusOK {
		return classifyError(status, body)
	}
	if cerr := decodeSuccess(contentType, body, out); cerr != nil {
		return cerr
	}
	return nil
}

func (c *Client) post(ctx context.Context, uri string, payload any) (int, string, []byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return 0, "", nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(reqBody))
	if err != nil {
		return 0, "", nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.SetBasicAuth(c.accountID, c.licenseKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, "", nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request complete",
		slog.String("uri", uri),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	return resp.StatusCode, resp.Header.Get("Content-Type"), respBody, nil
}

func asValidationError(err error) *Error {
	var verr *record.ValidationError
	if errors.As(err, &verr) {
		return validationError(verr)
	}
	return &Error{Kind: KindValidation, Message: err.Error()}
}
