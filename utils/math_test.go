package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, 2.5, Max(2.5, -1.0))
	assert.Equal(t, 2.5, Max(-1.0, 2.5))
}

func TestUtils_Clamp(t *testing.T) {
	testCases := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{1.7, 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, Clamp(tc.in, 0, 1), "clamp(%v)", tc.in)
	}
}
