package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Warn("test", "hello", "world!")
	})
}

func TestLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden")
		logger.Warn("shown")
		if strings.Contains(buf.String(), "hidden") {
			t.Fatalf("got %s", buf.String())
		}
		if !strings.Contains(buf.String(), "msg=shown") {
			t.Fatalf("got %s", buf.String())
		}

		ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
		logger.With("foo", "bar").WarnContext(ctx, "with span")
		if !strings.Contains(buf.String(), "foo=bar run=abc") {
			t.Fatalf("got %s", buf.String())
		}
	})
}

func TestToJournalKey(t *testing.T) {
	if key := toJournalKey("low_ops.count"); key != "LOW_OPS_COUNT" {
		t.Fatalf("got %s", key)
	}
}

func setDebug(t *testing.T) {
	prev := level.Level()
	level.Set(slog.LevelDebug)
	t.Cleanup(func() {
		level.Set(prev)
	})
}
