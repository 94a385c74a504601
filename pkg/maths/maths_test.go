package maths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, Min(1, 2))
	assert.Equal(t, 1, Min(2, 1))
	assert.Equal(t, 2, Max(1, 2))
	assert.Equal(t, 2, Max(2, 1))
	assert.Equal(t, "a", Min("b", "a"))
	assert.InDelta(t, 0.5, Max(float32(0.25), float32(0.5)), 0.0001)
}

func TestMin3(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Min3(0, 1, 2))
	assert.Equal(t, 0, Min3(1, 0, 2))
	assert.Equal(t, 0, Min3(2, 1, 0))
	assert.Equal(t, 3, Min3(3, 3, 3))
}
