package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	drepo "QuoteBridge/internal/domain/repository"
	xhttp "QuoteBridge/pkg/http"
)

// QuoteProxy translates an inbound quote request into an upstream chart
// request and relays the payload. The period→interval table is copied at
// construction and never mutated afterwards.
type QuoteProxy struct {
	source          drepo.QuoteSource
	metrics         drepo.Metrics
	intervals       map[string]string
	defaultPeriod   string
	defaultInterval string
}

// NewQuoteProxy creates the proxy use case with an injected interval table.
func NewQuoteProxy(
	source drepo.QuoteSource,
	metrics drepo.Metrics,
	intervals map[string]string,
	defaultPeriod, defaultInterval string,
) *QuoteProxy {
	table := make(map[string]string, len(intervals))
	for k, v := range intervals {
		table[k] = v
	}
	return &QuoteProxy{
		source:          source,
		metrics:         metrics,
		intervals:       table,
		defaultPeriod:   defaultPeriod,
		defaultInterval: defaultInterval,
	}
}

// Interval resolves the chart interval for a period. Unknown periods fall
// back to the default interval rather than being rejected.
func (p *QuoteProxy) Interval(period string) string {
	if iv, ok := p.intervals[period]; ok {
		return iv
	}
	return p.defaultInterval
}

// Fetch resolves the interval for period and pulls the raw chart payload
// for symbol from the upstream source. An empty period takes the default.
func (p *QuoteProxy) Fetch(ctx context.Context, symbol, period string) ([]byte, error) {
	if period == "" {
		period = p.defaultPeriod
	}
	interval := p.Interval(period)

	start := time.Now()
	payload, err := p.source.FetchChart(ctx, symbol, interval, period)
	if p.metrics != nil {
		p.metrics.RecordUpstreamLatency(interval, time.Since(start).Seconds())
		p.metrics.RecordProxied(statusClass(err))
		if err != nil {
			p.metrics.RecordError(errorKind(err))
		}
	}
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func statusClass(err error) string {
	if err == nil {
		return "2xx"
	}
	var appErr *xhttp.AppError
	if errors.As(err, &appErr) {
		return strconv.Itoa(appErr.Status/100) + "xx"
	}
	return "5xx"
}

func errorKind(err error) string {
	var appErr *xhttp.AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "ERR_INTERNAL"
}
