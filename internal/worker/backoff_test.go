//go:build unit

package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond

	testCases := []struct {
		attempt int
		min     time.Duration
	}{
		{attempt: -1, min: base},
		{attempt: 0, min: base},
		{attempt: 1, min: 2 * base},
		{attempt: 3, min: 8 * base},
	}

	for _, tc := range testCases {
		got := calculateBackoff(tc.attempt, base)
		assert.GreaterOrEqual(t, got, tc.min)
		assert.LessOrEqual(t, got, tc.min+tc.min/5)
	}

	assert.LessOrEqual(t, calculateBackoff(40, base), maxBackoff+maxBackoff/5)
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Zero(t, cryptoRandInt63n(0))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
