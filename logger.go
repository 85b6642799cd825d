package simkernel

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured, key-value logging interface the Simulator uses
// for operational concerns (currently the start and finish of each run). It
// intentionally mirrors the shape of common structured loggers (slog, zap,
// logrus) so embedding applications can plug in their own.
//
// Logger is distinct from the simulated-time trace sink (see
// Simulator.Tracef and RunConfig.TraceWriter):
// Logger records things an operator cares about; the trace sink records the
// simulated narrative of the run itself.
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Warn(msg string, args ...any)
	Debug(msg string, args ...any)
}

// zapLogger adapts *zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds the kernel's default Logger on top of zap, configured
// for human-readable console output at zap's development default (debug)
// level.
func NewZapLogger() Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := cfg.Build()
	if err != nil {
		// zap construction only fails on bad config; ours is static.
		panic(err)
	}
	return &zapLogger{sugar: logger.Sugar()}
}

// NewZapLoggerAt builds a zap-backed Logger writing to the given stream at
// the requested level ("debug", "info", "warn", "error").
func NewZapLoggerAt(w *os.File, level string) Logger {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), lvl)
	return &zapLogger{sugar: zap.New(core).Sugar()}
}

func (z *zapLogger) Info(msg string, args ...any)  { z.sugar.Infow(msg, args...) }
func (z *zapLogger) Error(msg string, args ...any) { z.sugar.Errorw(msg, args...) }
func (z *zapLogger) Warn(msg string, args ...any)  { z.sugar.Warnw(msg, args...) }
func (z *zapLogger) Debug(msg string, args ...any) { z.sugar.Debugw(msg, args...) }

// NopLogger discards everything. Useful in tests and for embedders who only
// want the trace sink.
type NopLogger struct{}

func (NopLogger) Info(string, ...any)  {}
func (NopLogger) Error(string, ...any) {}
func (NopLogger) Warn(string, ...any)  {}
func (NopLogger) Debug(string, ...any) {}
