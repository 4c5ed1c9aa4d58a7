package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newCORSEcho() *echo.Echo {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	e.GET("/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/fail", func(c echo.Context) error {
		return c.String(http.StatusBadGateway, "fail")
	})
	return e
}

func assertCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()
	if got := h.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("allow-origin: got %q", got)
	}
	if got := h.Get("Access-Control-Allow-Methods"); got != "GET, POST, OPTIONS" {
		t.Fatalf("allow-methods: got %q", got)
	}
	if got := h.Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Fatalf("allow-headers: got %q", got)
	}
}

func TestCORSHeadersOnSuccess(t *testing.T) {
	e := newCORSEcho()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	assertCORSHeaders(t, rec.Header())
}

func TestCORSHeadersOnError(t *testing.T) {
	e := newCORSEcho()
	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: got %d", rec.Code)
	}
	assertCORSHeaders(t, rec.Header())
}

func TestCORSHeadersOnUnroutedPath(t *testing.T) {
	e := newCORSEcho()
	req := httptest.NewRequest(http.MethodGet, "/no/such/route", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assertCORSHeaders(t, rec.Header())
}

func TestOptionsAnyPathReturns200Empty(t *testing.T) {
	e := newCORSEcho()
	for _, path := range []string{"/ok", "/api/quote/AAPL", "/anything/at/all"} {
		req := httptest.NewRequest(http.MethodOptions, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status got %d, want 200", path, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("%s: body not empty: %s", path, rec.Body.String())
		}
		assertCORSHeaders(t, rec.Header())
	}
}
