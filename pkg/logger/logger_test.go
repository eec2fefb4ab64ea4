package logger_test

import (
	"context"
	"testing"
	"userlookup/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantLevel   zapcore.Level
	}{
		{
			name:        "development defaults to debug",
			environment: logger.DevelopmentEnvironment,
			wantLevel:   zap.DebugLevel,
		},
		{
			name:        "production defaults to info",
			environment: logger.ProductionEnvironment,
			wantLevel:   zap.InfoLevel,
		},
		{
			name:        "level override",
			environment: logger.ProductionEnvironment,
			level:       "warn",
			wantLevel:   zap.WarnLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, logger.Setup(tt.environment, tt.level))

			l := logger.Get(context.Background())
			require.NotNil(t, l)
			require.Equal(t, tt.wantLevel, l.Level())
		})
	}
}

func TestSetup_InvalidLevel(t *testing.T) {
	require.Error(t, logger.Setup(logger.DevelopmentEnvironment, "loud"))
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	customLogger := zap.NewExample()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))
	logger.Info(ctx, "hello")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, "abc", entries[0].ContextMap()["request_id"])
}

func TestIsDebug(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, infoLogger)))
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zap.DebugLevel, zap.InfoLevel, zap.WarnLevel, zap.ErrorLevel}, levels)
}
