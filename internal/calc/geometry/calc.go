package geometry

import (
	"fmt"
	"math"

	calc "Quarry/internal/calc"
)

type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeCircle    Shape = "circle"
	ShapeTriangle  Shape = "triangle"
)

type Input struct {
	Shape    Shape   `json:"shape"`
	LengthFt float64 `json:"length_ft"`
	WidthFt  float64 `json:"width_ft"`
	RadiusFt float64 `json:"radius_ft"`
	BaseFt   float64 `json:"base_ft"`
	HeightFt float64 `json:"height_ft"`
}

type Result struct {
	Shape    Shape   `json:"shape"`
	AreaSqFt float64 `json:"area_sq_ft"`
}

// RectangleArea is length times width in square feet.
func RectangleArea(lengthFt, widthFt float64) float64 {
	return lengthFt * widthFt
}

// CircleArea is pi r squared in square feet.
func CircleArea(radiusFt float64) float64 {
	return math.Pi * radiusFt * radiusFt
}

// TriangleArea is half base times height in square feet.
func TriangleArea(baseFt, heightFt float64) float64 {
	return baseFt * heightFt / 2.0
}

// Calculate computes the plane area for the selected shape. Every
// dimension the shape requires must be a finite positive number;
// otherwise no area is produced.
func Calculate(in Input) (Result, error) {
	switch in.Shape {
	case ShapeRectangle:
		if !positive(in.LengthFt) || !positive(in.WidthFt) {
			return Result{}, calc.ErrInvalidInput
		}
		return Result{Shape: in.Shape, AreaSqFt: RectangleArea(in.LengthFt, in.WidthFt)}, nil
	case ShapeCircle:
		if !positive(in.RadiusFt) {
			return Result{}, calc.ErrInvalidInput
		}
		return Result{Shape: in.Shape, AreaSqFt: CircleArea(in.RadiusFt)}, nil
	case ShapeTriangle:
		if !positive(in.BaseFt) || !positive(in.HeightFt) {
			return Result{}, calc.ErrInvalidInput
		}
		return Result{Shape: in.Shape, AreaSqFt: TriangleArea(in.BaseFt, in.HeightFt)}, nil
	default:
		return Result{}, fmt.Errorf("%w: shape %q", calc.ErrInvalidInput, in.Shape)
	}
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
