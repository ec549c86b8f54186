package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollideDispatch(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Shape
		expected bool
	}{
		{"points", Vec(1, 1), Vec(1, 1), true},
		{"point in circle", Vec(1, 1), Circle{Center: Vec(0, 0), Radius: 2}, true},
		{"point outside rectangle", Vec(9, 9), Rect(0, 0, 2, 2), false},
		{"crossing lines", Line{Base: Vec(0, 0), Direction: Vec(1, 0)}, Line{Base: Vec(0, 0), Direction: Vec(0, 1)}, true},
		{"parallel lines", Line{Base: Vec(0, 0), Direction: Vec(1, 0)}, Line{Base: Vec(0, 1), Direction: Vec(1, 0)}, false},
		{"segments", Segment{Point1: Vec(0, 0), Point2: Vec(2, 2)}, Segment{Point1: Vec(0, 2), Point2: Vec(2, 0)}, true},
		{"circles", Circle{Center: Vec(0, 0), Radius: 1}, Circle{Center: Vec(3, 0), Radius: 1}, false},
		{"rectangles", Rect(0, 0, 2, 2), Rect(1, 1, 2, 2), true},
		{
			"rectangle and oriented",
			Rect(1, -2, 1, 1),
			OrientedRectangle{Center: Vec(0, 0), HalfExtent: Vec(3, 0.5), Rotation: 45},
			false,
		},
		{
			"oriented",
			OrientedRectangle{Center: Vec(0, 0), HalfExtent: Vec(2, 1), Rotation: 45},
			OrientedRectangle{Center: Vec(2, 0), HalfExtent: Vec(1, 1)},
			true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, err := Collide(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, hit)

			hit, err = Collide(tc.b, tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, hit, "reversed")
		})
	}
}

func TestCollideUnsupported(t *testing.T) {
	_, err := Collide(Circle{Radius: 1}, Rect(0, 0, 1, 1))
	require.ErrorIs(t, err, ErrUnsupportedPair)
	assert.Contains(t, err.Error(), "circle/rectangle")

	_, err = Collide(Segment{}, Line{Direction: Vec(1, 0)})
	assert.ErrorIs(t, err, ErrUnsupportedPair)
}

func TestKind(t *testing.T) {
	assert.Equal(t, "point", Kind(Zero))
	assert.Equal(t, "line", Kind(Line{}))
	assert.Equal(t, "segment", Kind(Segment{}))
	assert.Equal(t, "circle", Kind(Circle{}))
	assert.Equal(t, "rectangle", Kind(Rectangle{}))
	assert.Equal(t, "oriented", Kind(OrientedRectangle{}))
	assert.Equal(t, "unknown", Kind(nil))
}
