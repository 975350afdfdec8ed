package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	assert.Equal(t, int64(1000), ToCents(10.00))
	assert.Equal(t, int64(1234), ToCents(12.34))
	assert.Equal(t, int64(101), ToCents(1.01))
	assert.Equal(t, int64(0), ToCents(0))

	// Half-away-from-zero rounding
	assert.Equal(t, int64(1), ToCents(0.005))
	assert.Equal(t, int64(-1), ToCents(-0.005))
	assert.Equal(t, int64(10000), ToCents(99.999))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "20.00", Format(2000))
	assert.Equal(t, "0.50", Format(50))
	assert.Equal(t, "1.01", Format(101))
	assert.Equal(t, "0.00", Format(0))
}

func TestFormatWhole(t *testing.T) {
	assert.Equal(t, "20", FormatWhole(2000))
	assert.Equal(t, "0", FormatWhole(49))
	assert.Equal(t, "1", FormatWhole(101))
}
