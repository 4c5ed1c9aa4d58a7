package repository

import "context"

// QuoteSource fetches a raw chart payload for a symbol from the upstream
// market-data provider. The payload is relayed to callers unmodified.
type QuoteSource interface {
	FetchChart(ctx context.Context, symbol, interval, period string) ([]byte, error)
}

// Metrics records proxy observability events.
type Metrics interface {
	RecordProxied(statusClass string)
	RecordError(kind string)
	RecordUpstreamLatency(interval string, seconds float64)
}
