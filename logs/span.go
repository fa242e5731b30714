package logs

// Span identifies one logical operation in log output.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
