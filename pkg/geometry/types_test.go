package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromEdges(t *testing.T) {
	r := RectFromEdges(2, 3, 7, 5)
	assert.Equal(t, RectInt{X: 2, Y: 3, Width: 5, Height: 2}, r)
	assert.Equal(t, 7, r.Right())
	assert.Equal(t, 5, r.Bottom())
	assert.Equal(t, 10, r.Area())

	inverted := RectFromEdges(5, 5, 1, 1)
	assert.True(t, inverted.Empty())
	assert.Equal(t, 0, inverted.Area())
}

func TestRectIntContains(t *testing.T) {
	r := NewRectInt(0, 0, 4, 4)
	assert.True(t, r.Contains(PointInt{X: 0, Y: 0}))
	assert.True(t, r.Contains(PointInt{X: 3, Y: 3}))
	assert.False(t, r.Contains(PointInt{X: 4, Y: 3}), "right edge is exclusive")
	assert.False(t, r.Contains(PointInt{X: -1, Y: 0}))
}

func TestRectIntExpandIntersect(t *testing.T) {
	grid := NewRectInt(0, 0, 10, 10)

	tests := []struct {
		name string
		in   RectInt
		want RectInt
	}{
		{"interior", NewRectInt(3, 3, 2, 2), NewRectInt(2, 2, 4, 4)},
		{"touching top-left", NewRectInt(0, 0, 2, 2), NewRectInt(0, 0, 3, 3)},
		{"touching bottom-right", NewRectInt(8, 8, 2, 2), NewRectInt(7, 7, 3, 3)},
		{"whole grid", grid, grid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Expand(1).Intersect(grid))
		})
	}

	assert.Equal(t, RectInt{}, NewRectInt(0, 0, 2, 2).Intersect(NewRectInt(5, 5, 2, 2)))
}

func TestRectIntCentered(t *testing.T) {
	outer := NewRectInt(0, 0, 1024, 500)
	assert.Equal(t, NewRectInt(387, 0, 250, 500), outer.Centered(250, 500))
	assert.Equal(t, NewRectInt(387, 125, 250, 250), outer.Centered(250, 250))
}
