package api

import (
	"net/http"

	"QuoteBridge/internal/domain/models"
	"QuoteBridge/internal/usecase"
	xhttp "QuoteBridge/pkg/http"
	xlogger "QuoteBridge/pkg/logger"

	"github.com/labstack/echo/v4"
)

// QuoteEchoHandler exposes the quote proxy over Echo.
type QuoteEchoHandler struct {
	logger *xlogger.Logger
	proxy  *usecase.QuoteProxy
}

func NewQuoteEchoHandler(logger *xlogger.Logger, proxy *usecase.QuoteProxy) *QuoteEchoHandler {
	return &QuoteEchoHandler{logger: logger, proxy: proxy}
}

func (h *QuoteEchoHandler) RegisterRoutes(e *echo.Echo) {
	// Wildcard so empty and otherwise malformed symbols still reach the
	// handler and are forwarded as-is.
	e.GET("/api/quote/*", h.Quote)
}

// Quote proxies a chart request upstream and relays the payload verbatim.
func (h *QuoteEchoHandler) Quote(c echo.Context) error {
	symbol := c.Param("*")

	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	payload, err := h.proxy.Fetch(c.Request().Context(), symbol, req.Period)
	if err != nil {
		h.logger.Error("quote proxy error",
			xlogger.String("symbol", symbol),
			xlogger.String("period", req.Period),
			xlogger.Error(err),
		)
		return xhttp.AppErrorResponse(c, err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, payload)
}
