package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPI(t *testing.T) {
	rec := NewRecorder()
	scoped := NewScopedAPI("quotes", rec)

	scoped.ReportBroken("client.fetch-page", "boom")
	scoped.ReportWarning("client.parse", 1)
	scoped.ReportCount("search.pages", 3)

	broken := rec.Reports(REPORT_BROKEN)
	require.Len(t, broken, 1)
	require.Equal(t, "quotes: client.fetch-page", broken[0].ID)
	require.Equal(t, []any{"boom"}, broken[0].Params)

	warnings := rec.Reports(REPORT_WARNING)
	require.Len(t, warnings, 1)
	require.Equal(t, "quotes: client.parse", warnings[0].ID)

	count, ok := rec.Count("quotes: search.pages")
	require.True(t, ok)
	require.Equal(t, int64(3), count)

	_, ok = rec.Count("missing")
	require.False(t, ok)
}

func TestScopedAPIRequiresNamespace(t *testing.T) {
	require.Panics(t, func() { NewScopedAPI("", NewRecorder()) })
	require.Panics(t, func() { NewScopedAPI("quotes", nil) })
}

func TestSlogAPI(t *testing.T) {
	buff := bytes.NewBuffer(nil)
	logger := slog.New(slog.NewTextHandler(buff, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tel := NewSlogAPI(logger)

	tel.ReportBroken("client.fetch-page", "timeout")
	out := buff.String()
	require.Contains(t, out, "broken component")
	require.Contains(t, out, "id=client.fetch-page")
	require.Contains(t, out, "params.0=timeout")
}

func TestSetupOtelDisabled(t *testing.T) {
	o, err := SetupOtel(context.Background(), "test", OtlpConfig{})
	require.NoError(t, err)
	require.NoError(t, o.Shutdown(context.Background()))
}
