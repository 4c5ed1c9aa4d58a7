package di

import (
	"fmt"

	"QuoteBridge/internal/domain/repository"
	"QuoteBridge/internal/handler/api"
	"QuoteBridge/internal/service/yahoo"
	"QuoteBridge/internal/usecase"
	"QuoteBridge/pkg/config"
	xhttp "QuoteBridge/pkg/http"
	applogger "QuoteBridge/pkg/logger"
	"QuoteBridge/pkg/metrics"
	"QuoteBridge/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideQuoteSource creates the upstream Yahoo chart client.
func ProvideQuoteSource(cfg *config.Config) repository.QuoteSource {
	return yahoo.New(
		cfg.Upstream.BaseURL,
		cfg.Upstream.UserAgent,
		cfg.Upstream.Timeout,
		cfg.Upstream.InsecureTLS,
	)
}

// ProvideQuoteProxy creates the quote proxy use case with the interval table
// injected from config.
func ProvideQuoteProxy(cfg *config.Config, source repository.QuoteSource, m repository.Metrics) *usecase.QuoteProxy {
	return usecase.NewQuoteProxy(
		source,
		m,
		cfg.Upstream.Intervals,
		cfg.Upstream.DefaultPeriod,
		cfg.Upstream.DefaultInterval,
	)
}

// ProvideQuoteHandler creates the Echo handler for quote routes.
func ProvideQuoteHandler(l *applogger.Logger, proxy *usecase.QuoteProxy) xhttp.Handler {
	return api.NewQuoteEchoHandler(l, proxy)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
