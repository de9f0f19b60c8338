package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectNormalize(t *testing.T) {
	assert.Equal(t, R(10, 20, 30, 40), R(10, 20, 30, 40).Normalize())
	assert.Equal(t, R(0, 20, 10, 40), R(10, 20, -10, 40).Normalize())
	assert.Equal(t, R(10, 0, 30, 20), R(10, 20, 30, -20).Normalize())
}

func TestRectContains(t *testing.T) {
	r := R(0, 0, 10, 10)
	assert.True(t, r.Contains(Pt(0, 0)))
	assert.True(t, r.Contains(Pt(9.5, 9.5)))
	assert.False(t, r.Contains(Pt(10, 5)))
	assert.False(t, r.Contains(Pt(-1, 5)))

	flipped := R(10, 10, -10, -10)
	assert.True(t, flipped.Contains(Pt(5, 5)))
}

func TestRectHelpers(t *testing.T) {
	assert.True(t, R(1, 1, 0, 5).Empty())
	assert.False(t, R(1, 1, -2, 5).Empty())
	assert.Equal(t, Pt(15, 25), R(10, 20, 10, 10).Center())
	assert.Equal(t, R(1, 2, 3, 4), RectInts(1, 2, 3, 4))
	assert.Equal(t, R(1.5, 2, 3, 4), RectFloat64(1.5, 2, 3, 4))
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
}
