package std_test

import (
	"bytes"
	"testing"

	"github.com/pwnedgod/hexa/logger/std"
	"github.com/stretchr/testify/assert"
)

func TestWriters(t *testing.T) {
	var out, errOut bytes.Buffer

	l := std.NewLoggerWithWriters(&out, &errOut, false)
	l.Info("stored", "demo###123abc")
	l.Debug("hidden")
	l.Error("failed", 1)

	assert.Equal(t, "stored demo###123abc\n", out.String())
	assert.Equal(t, "failed 1\n", errOut.String())

	out.Reset()
	std.NewLoggerWithWriters(&out, &errOut, true).Debug("shown")
	assert.Equal(t, "shown\n", out.String())
}
