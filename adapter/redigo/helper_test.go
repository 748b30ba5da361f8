package redigo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatExpirationArgs(t *testing.T) {
	assert.Equal(t, []any{}, formatExpirationArgs(0))
	assert.Equal(t, []any{"EX", int64(600)}, formatExpirationArgs(10*time.Minute))
	assert.Equal(t, []any{"PX", int64(1500)}, formatExpirationArgs(1500*time.Millisecond))
	assert.Equal(t, []any{"PX", int64(100)}, formatExpirationArgs(100*time.Millisecond))
	assert.Equal(t, []any{"PX", int64(1)}, formatExpirationArgs(time.Microsecond))
}
