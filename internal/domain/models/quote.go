package models

// QuoteRequest carries the caller-supplied query parameters of a quote
// request. The symbol travels in the path and is bound separately; it is
// deliberately unvalidated and forwarded as-is.
type QuoteRequest struct {
	Period string `query:"period" default:"1d"`
}
