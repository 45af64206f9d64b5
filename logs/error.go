package logs

import (
	"context"
	"fmt"
)

type spanError struct {
	err  error
	span Span
}

func (s spanError) Error() string {
	return fmt.Sprintf("%s (run %s)", s.err.Error(), s.span)
}

func (s spanError) Unwrap() error {
	return s.err
}

// WrapSpan attaches the run span in ctx to err. The original error stays
// reachable with errors.Is and errors.As.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return spanError{
		err:  err,
		span: v.(Span),
	}
}

func SpanOf(ctx context.Context) Span {
	if v := ctx.Value(SpanKey); v != nil {
		return v.(Span)
	}
	return ""
}
