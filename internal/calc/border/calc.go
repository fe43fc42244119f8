package border

import (
	"math"

	calc "Quarry/internal/calc"
	"Quarry/internal/catalog"
)

type Input struct {
	LinearFeet float64 `json:"linear_feet"`
	Size       string  `json:"size"`
	Style      string  `json:"style"`
}

type Result struct {
	LinearInches     float64 `json:"linear_inches"`
	UnitRepeatInches float64 `json:"unit_repeat_inches"`
	TotalPavers      int     `json:"total_pavers"`
	StyleName        string  `json:"style_name"`
}

// Calculate counts pavers along a single-row border run. A sailor course
// repeats by the paver's length, a soldier course by its width. No waste
// factor is applied: a single row has no pattern cuts, which is a
// documented limitation rather than an oversight.
func Calculate(in Input) (Result, error) {
	if in.LinearFeet <= 0 {
		return Result{}, calc.ErrInvalidInput
	}
	size, err := catalog.Paver(in.Size)
	if err != nil {
		return Result{}, err
	}
	style, err := catalog.Border(in.Style)
	if err != nil {
		return Result{}, err
	}

	linearInches := in.LinearFeet * 12.0
	repeat := size.WidthInches
	if style.OrientationUsesLength {
		repeat = size.LengthInches
	}

	return Result{
		LinearInches:     linearInches,
		UnitRepeatInches: repeat,
		TotalPavers:      int(math.Ceil(linearInches / repeat)),
		StyleName:        style.DisplayName,
	}, nil
}
