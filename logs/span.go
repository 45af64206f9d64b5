package logs

// Span identifies one program run in log records and errors.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}
