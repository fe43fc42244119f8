package geometry

import (
	"math"
	"testing"

	calc "Quarry/internal/calc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectangleArea(t *testing.T) {
	res, err := Calculate(Input{Shape: ShapeRectangle, LengthFt: 12, WidthFt: 10})
	require.NoError(t, err)
	assert.Equal(t, 120.0, res.AreaSqFt)

	// Commutative in its two arguments.
	swapped, err := Calculate(Input{Shape: ShapeRectangle, LengthFt: 10, WidthFt: 12})
	require.NoError(t, err)
	assert.Equal(t, res.AreaSqFt, swapped.AreaSqFt)
}

func TestCircleArea(t *testing.T) {
	res, err := Calculate(Input{Shape: ShapeCircle, RadiusFt: 5})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi*25, res.AreaSqFt, 1e-9)

	// Monotonically increasing in radius.
	bigger, err := Calculate(Input{Shape: ShapeCircle, RadiusFt: 5.1})
	require.NoError(t, err)
	assert.Greater(t, bigger.AreaSqFt, res.AreaSqFt)
}

func TestTriangleArea(t *testing.T) {
	res, err := Calculate(Input{Shape: ShapeTriangle, BaseFt: 8, HeightFt: 6})
	require.NoError(t, err)
	assert.Equal(t, 24.0, res.AreaSqFt)
}

func TestRejectsMissingAndNegativeDimensions(t *testing.T) {
	bad := []Input{
		{Shape: ShapeRectangle, LengthFt: 12},                  // width missing
		{Shape: ShapeRectangle, LengthFt: -12, WidthFt: 10},    // negative
		{Shape: ShapeCircle},                                   // radius missing
		{Shape: ShapeCircle, RadiusFt: -1},                     // negative
		{Shape: ShapeTriangle, BaseFt: 8},                      // height missing
		{Shape: ShapeTriangle, BaseFt: 8, HeightFt: math.NaN()}, // NaN
		{Shape: "hexagon", LengthFt: 1, WidthFt: 1},            // unknown shape
	}
	for _, in := range bad {
		_, err := Calculate(in)
		assert.ErrorIs(t, err, calc.ErrInvalidInput, "input %+v", in)
	}
}
