package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicNonZeroID(t *testing.T) {
	gen, err := MonotonicNonZeroID()
	assert.NoError(t, err)
	prev := uint64(0)
	for i := 0; i < 1000; i++ {
		n := gen.Number()
		assert.Greater(t, n, prev)
		prev = n
	}
	assert.NotEmpty(t, gen.Str())
}
