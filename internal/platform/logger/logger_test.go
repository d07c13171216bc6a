package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocontacts/contacts-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel slog.Level
	}{
		{name: "debug level", logLevel: "debug", wantLevel: slog.LevelDebug},
		{name: "info level", logLevel: "info", wantLevel: slog.LevelInfo},
		{name: "warn level", logLevel: "warn", wantLevel: slog.LevelWarn},
		{name: "error level", logLevel: "error", wantLevel: slog.LevelError},
		{name: "mixed case", logLevel: "DEBUG", wantLevel: slog.LevelDebug},
		{name: "unknown level falls back to info", logLevel: "verbose", wantLevel: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.wantLevel))
			assert.False(t, log.Enabled(ctx, tt.wantLevel-1))
		})
	}
}

func TestSetupInstallsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	log, err := Setup(config.ServerConfig{LogLevel: "warn"})
	require.NoError(t, err)
	assert.Same(t, log, slog.Default())
}

func TestFromContext(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	ctx := context.Background()
	assert.Same(t, slog.Default(), FromContext(ctx), "falls back to default logger")

	attached := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = WithLogger(ctx, attached)
	assert.Same(t, attached, FromContext(ctx))
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	got := FromContextOrDefault(context.Background(), def)
	assert.Same(t, def, got)

	attached := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), attached)
	assert.Same(t, attached, FromContextOrDefault(ctx, def))

	assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
}
