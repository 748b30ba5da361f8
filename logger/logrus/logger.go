package logrus

import (
	"github.com/pwnedgod/hexa/logger"
	"github.com/sirupsen/logrus"
)

func NewLogger(l *logrus.Logger) logger.Logger {
	return l
}

// NewTextLogger builds a text logger at the given level ("debug", "info", ...).
func NewTextLogger(level string) (logger.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return NewLogger(l), nil
}
