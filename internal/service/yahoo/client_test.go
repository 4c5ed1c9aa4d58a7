package yahoo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	xhttp "QuoteBridge/pkg/http"
)

const testUA = "Mozilla/5.0 test"

func TestFetchChartBuildsUpstreamURL(t *testing.T) {
	var gotPath, gotQuery, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(`{"chart":{"result":[]}}`))
	}))
	defer ts.Close()

	c := New(ts.URL, testUA, 5*time.Second, false)
	body, err := c.FetchChart(context.Background(), "AAPL", "15m", "5d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v8/finance/chart/AAPL" {
		t.Fatalf("path: got %s", gotPath)
	}
	if !strings.Contains(gotQuery, "interval=15m") || !strings.Contains(gotQuery, "range=5d") {
		t.Fatalf("query: got %s", gotQuery)
	}
	if gotUA != testUA {
		t.Fatalf("user agent: got %s", gotUA)
	}
	if string(body) != `{"chart":{"result":[]}}` {
		t.Fatalf("body not relayed verbatim: %s", body)
	}
}

func TestFetchChartRelaysUpstreamStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such symbol", http.StatusNotFound)
	}))
	defer ts.Close()

	c := New(ts.URL, testUA, 5*time.Second, false)
	_, err := c.FetchChart(context.Background(), "NOPE", "5m", "1d")
	if err == nil {
		t.Fatalf("expected error")
	}
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Status != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", appErr.Status)
	}
	if !strings.Contains(appErr.Message, "API Error") {
		t.Fatalf("message: got %q", appErr.Message)
	}
}

func TestFetchChartConnectionFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening anymore

	c := New(ts.URL, testUA, time.Second, false)
	_, err := c.FetchChart(context.Background(), "AAPL", "5m", "1d")
	if err == nil {
		t.Fatalf("expected error")
	}
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Status != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", appErr.Status)
	}
	if !strings.Contains(appErr.Message, "Connection Error") {
		t.Fatalf("message: got %q", appErr.Message)
	}
}

func TestFetchChartTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer ts.Close()

	c := New(ts.URL, testUA, 50*time.Millisecond, false)
	_, err := c.FetchChart(context.Background(), "AAPL", "5m", "1d")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	var appErr *xhttp.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Status != http.StatusInternalServerError {
		t.Fatalf("status: got %d, want 500", appErr.Status)
	}
	if !strings.Contains(appErr.Message, "Connection Error") {
		t.Fatalf("message: got %q", appErr.Message)
	}
}

func TestFetchChartEscapesSymbol(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(ts.URL, testUA, 5*time.Second, false)
	if _, err := c.FetchChart(context.Background(), "^GSPC", "5m", "1d"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/v8/finance/chart/%5EGSPC" {
		t.Fatalf("path: got %s", gotPath)
	}
}
