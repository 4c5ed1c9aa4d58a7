package yahoo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	drepo "QuoteBridge/internal/domain/repository"
	xhttp "QuoteBridge/pkg/http"
)

// Client fetches chart payloads from the Yahoo Finance v8 chart API.
type Client struct {
	baseURL   string
	userAgent string
	http      *xhttp.Client
}

// New creates a chart QuoteSource against the given base URL. insecure
// disables TLS certificate verification, which Yahoo endpoints need in some
// development setups.
func New(baseURL, userAgent string, timeout time.Duration, insecure bool) drepo.QuoteSource {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		http: xhttp.NewClient(
			xhttp.WithTimeout(timeout),
			xhttp.WithInsecureTLS(insecure),
		),
	}
}

// FetchChart requests the chart for symbol at the given interval and range
// and returns the raw response bytes. The payload is not reparsed; callers
// relay it verbatim.
func (c *Client) FetchChart(ctx context.Context, symbol, interval, period string) ([]byte, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=%s&range=%s",
		c.baseURL, url.PathEscape(symbol), url.QueryEscape(interval), url.QueryEscape(period))

	resp, err := c.http.SendRequest(ctx, &xhttp.RequestOptions{
		Method: http.MethodGet,
		URL:    u,
		Headers: map[string]string{
			"User-Agent": c.userAgent,
		},
	})
	if err != nil {
		return nil, classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, xhttp.ConnectionError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, xhttp.UpstreamError(resp.StatusCode, reasonPhrase(resp))
	}

	return body, nil
}

// classify maps an outbound failure onto the proxy error taxonomy: transport
// failures become connection errors, anything else a generic server error.
func classify(err error) *xhttp.AppError {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		cause := uerr.Err
		if cause == nil {
			cause = uerr
		}
		return xhttp.ConnectionError(cause)
	}
	return xhttp.InternalErrorf("Server Error: %v", err).WithError(err)
}

// reasonPhrase extracts the upstream reason for relaying in error messages.
func reasonPhrase(resp *http.Response) string {
	if s := http.StatusText(resp.StatusCode); s != "" {
		return s
	}
	return resp.Status
}
