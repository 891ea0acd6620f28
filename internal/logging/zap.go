package logging

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Mode selects the zap preset used by New.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
)

// ZapLogger adapts a zap.SugaredLogger to Logger.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger wraps an already configured zap logger.
func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *ZapLogger {
	return NewZapLogger(zap.NewNop())
}

// New builds a zap logger writing to stderr. Unknown or empty levels fall
// back to info.
func New(mode Mode, level string) (*ZapLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if mode == ModeProduction {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return NewZapLogger(l), nil
}

func (z *ZapLogger) forContext(ctx context.Context) *zap.SugaredLogger {
	if id, ok := RequestIDFrom(ctx); ok {
		return z.l.With(RequestIDKey, id)
	}
	return z.l
}

func (z *ZapLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.forContext(ctx).Debugw(msg, args...)
}

func (z *ZapLogger) Info(ctx context.Context, msg string, args ...any) {
	z.forContext(ctx).Infow(msg, args...)
}

func (z *ZapLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.forContext(ctx).Warnw(msg, args...)
}

func (z *ZapLogger) Error(ctx context.Context, msg string, args ...any) {
	z.forContext(ctx).Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}

// Sync flushes buffered entries.
func (z *ZapLogger) Sync() error {
	return z.l.Sync()
}
