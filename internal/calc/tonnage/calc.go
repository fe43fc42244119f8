package tonnage

import (
	"math"

	calc "Quarry/internal/calc"
	"Quarry/internal/catalog"
)

// safetyMargin pads the raw tonnage so the customer never under-orders.
// The recommendation is rounded up to a tenth of a ton.
const safetyMargin = 1.10

type Input struct {
	AreaSqFt    float64 `json:"area_sq_ft"`
	DepthInches float64 `json:"depth_inches"`
	Material    string  `json:"material"`
}

type Result struct {
	CubicFeet            float64 `json:"cubic_feet"`
	CubicYards           float64 `json:"cubic_yards"`
	Tons                 float64 `json:"tons"`
	RecommendedOrderTons float64 `json:"recommended_order_tons"`
	MaterialName         string  `json:"material_name"`
}

// Calculate converts a covered area at a given depth into bulk material
// volume and weight for the selected material class.
func Calculate(in Input) (Result, error) {
	if in.AreaSqFt <= 0 || in.DepthInches <= 0 {
		return Result{}, calc.ErrInvalidInput
	}
	mat, err := catalog.Material(in.Material)
	if err != nil {
		return Result{}, err
	}

	depthFt := in.DepthInches / 12.0
	cubicFeet := in.AreaSqFt * depthFt
	cubicYards := cubicFeet / 27.0
	tons := cubicYards * mat.TonsPerCubicYard
	recommended := math.Ceil(tons*safetyMargin*10.0) / 10.0

	return Result{
		CubicFeet:            cubicFeet,
		CubicYards:           cubicYards,
		Tons:                 tons,
		RecommendedOrderTons: recommended,
		MaterialName:         mat.DisplayName,
	}, nil
}
