package log

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInto_From_RoundTrip(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := Into(context.Background(), l)

	require.Same(t, l, From(ctx))
}

func TestFrom_FallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), From(context.Background()))

	// nil-логгер в контексте тоже не должен утекать вызывающему.
	ctx := Into(context.Background(), nil)
	require.Same(t, slog.Default(), From(ctx))
}
