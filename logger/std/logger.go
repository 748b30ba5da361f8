package std

import (
	"fmt"
	"io"
	"os"

	"github.com/pwnedgod/hexa/logger"
)

type stdLogger struct {
	out   io.Writer
	err   io.Writer
	debug bool
}

// NewLogger writes info and debug lines to stdout and errors to stderr.
func NewLogger() logger.Logger {
	return NewLoggerWithWriters(os.Stdout, os.Stderr, true)
}

func NewLoggerWithWriters(out io.Writer, err io.Writer, debug bool) logger.Logger {
	return &stdLogger{
		out:   out,
		err:   err,
		debug: debug,
	}
}

func (l stdLogger) Info(args ...any) {
	fmt.Fprintln(l.out, args...)
}

func (l stdLogger) Debug(args ...any) {
	if l.debug {
		fmt.Fprintln(l.out, args...)
	}
}

func (l stdLogger) Error(args ...any) {
	fmt.Fprintln(l.err, args...)
}
