package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerCtxKeyType struct{}

var loggerCtxKey = loggerCtxKeyType{}

// createLogger builds a logger writing to w. Debug mode or an interactive
// terminal switches to the console encoder; debug also forces the debug level.
func createLogger(debug bool, logLevel string, w io.Writer, interactive bool) (logger *zap.Logger, level zap.AtomicLevel, err error) {
	level, err = zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, zap.NewAtomicLevel(), fmt.Errorf("invalid log level %s: %w", logLevel, err)
	}

	var encoder zapcore.Encoder
	var opts []zap.Option
	switch {
	case debug:
		level.SetLevel(zapcore.DebugLevel)
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		opts = append(opts, zap.Development(), zap.AddCaller())
	case interactive:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), level)
	logger = zap.New(core, opts...).Named("emitter")

	return logger, level, nil
}

func withLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

func tryLogger(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(loggerCtxKey).(*zap.Logger)
	if !ok {
		return nil
	}
	return logger
}

// getLogger returns the context logger, or a no-op logger when none was set.
func getLogger(ctx context.Context) *zap.Logger {
	if logger := tryLogger(ctx); logger != nil {
		return logger
	}
	return zap.NewNop()
}
