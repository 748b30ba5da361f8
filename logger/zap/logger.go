package zap

import (
	"github.com/pwnedgod/hexa/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger adapts l. Arguments are joined the way fmt.Sprint does.
func NewLogger(l *zap.Logger) logger.Logger {
	return l.Sugar()
}

// NewProductionLogger builds a JSON logger at the given level ("debug", "info", ...).
func NewProductionLogger(level string) (logger.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewLogger(l), nil
}
