package usecase

import (
	"context"
	"testing"

	"QuoteBridge/pkg/config"
)

type stubSource struct {
	symbol   string
	interval string
	period   string
	payload  []byte
	err      error
}

func (s *stubSource) FetchChart(_ context.Context, symbol, interval, period string) ([]byte, error) {
	s.symbol = symbol
	s.interval = interval
	s.period = period
	return s.payload, s.err
}

func newProxy(src *stubSource) *QuoteProxy {
	return NewQuoteProxy(src, nil, config.DefaultIntervals, "1d", "1d")
}

func TestIntervalTable(t *testing.T) {
	p := newProxy(&stubSource{})
	cases := map[string]string{
		"1d":  "5m",
		"5d":  "15m",
		"1mo": "1d",
		"3mo": "1d",
		"6mo": "1d",
		"1y":  "1wk",
	}
	for period, want := range cases {
		if got := p.Interval(period); got != want {
			t.Fatalf("period %s: got interval %s, want %s", period, got, want)
		}
	}
}

func TestIntervalUnknownPeriodDefaults(t *testing.T) {
	p := newProxy(&stubSource{})
	if got := p.Interval("2y"); got != "1d" {
		t.Fatalf("unknown period: got %s, want 1d", got)
	}
	if got := p.Interval(""); got != "1d" {
		t.Fatalf("empty period: got %s, want 1d", got)
	}
}

func TestFetchDefaultsPeriod(t *testing.T) {
	src := &stubSource{payload: []byte(`{}`)}
	p := newProxy(src)

	if _, err := p.Fetch(context.Background(), "AAPL", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.period != "1d" {
		t.Fatalf("period: got %s, want 1d", src.period)
	}
	if src.interval != "5m" {
		t.Fatalf("interval: got %s, want 5m", src.interval)
	}
	if src.symbol != "AAPL" {
		t.Fatalf("symbol: got %s, want AAPL", src.symbol)
	}
}

func TestFetchMapsPeriodToInterval(t *testing.T) {
	src := &stubSource{payload: []byte(`{"chart":{}}`)}
	p := newProxy(src)

	body, err := p.Fetch(context.Background(), "AAPL", "5d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.interval != "15m" || src.period != "5d" {
		t.Fatalf("got interval=%s period=%s, want 15m/5d", src.interval, src.period)
	}
	if string(body) != `{"chart":{}}` {
		t.Fatalf("payload not relayed verbatim: %s", body)
	}
}

func TestFetchIntervalTableIsCopied(t *testing.T) {
	table := map[string]string{"1d": "5m"}
	p := NewQuoteProxy(&stubSource{payload: []byte(`{}`)}, nil, table, "1d", "1d")

	table["1d"] = "mutated"
	if got := p.Interval("1d"); got != "5m" {
		t.Fatalf("table not copied: got %s", got)
	}
}
