package pattern

import (
	"fmt"
	"math"

	calc "Quarry/internal/calc"
	"Quarry/internal/catalog"
)

type Mode string

const (
	ModePaver Mode = "paver"
	ModeTile  Mode = "tile"
)

// T-pattern fixed mix: three quarters of the area in 6x9 pavers, the rest
// in 6x6.
const (
	tPatternLargeShare = 0.75
	tPatternSmallShare = 0.25
	tPatternLargeSize  = "6x9"
	tPatternSmallSize  = "6x6"
)

type Input struct {
	Mode     Mode    `json:"mode"`
	AreaSqFt float64 `json:"area_sq_ft"`
	Pattern  string  `json:"pattern"`
	// Size selects the paver or tile unit. Ignored for the composite
	// T-pattern, which prescribes its own mix.
	Size string `json:"size"`
}

// SizeCount is one line of the composite breakdown: how much of the area
// a size covers and what it takes to cover it.
type SizeCount struct {
	Size     string  `json:"size"`
	AreaSqFt float64 `json:"area_sq_ft"`
	Units    int     `json:"units"`
	Pallets  int     `json:"pallets"`
}

type Result struct {
	PatternName      string      `json:"pattern_name"`
	BaseUnits        int         `json:"base_units"`
	WastePercent     float64     `json:"waste_percent"`
	WasteUnits       int         `json:"waste_units"`
	RecommendedUnits int         `json:"recommended_units"`
	Pallets          int         `json:"pallets,omitempty"`
	Breakdown        []SizeCount `json:"breakdown,omitempty"`
}

// Calculate turns an area and a laying pattern into unit and pallet
// counts. Units and pallets always round up; partial pieces cannot be
// purchased. Waste is applied to the base count after any composite
// sub-areas have been summed.
func Calculate(in Input) (Result, error) {
	if in.AreaSqFt <= 0 {
		return Result{}, calc.ErrInvalidInput
	}
	pat, err := catalog.Pattern(in.Pattern)
	if err != nil {
		return Result{}, err
	}

	switch in.Mode {
	case ModePaver:
		if pat.Composite {
			return composite(in.AreaSqFt, pat)
		}
		return paver(in, pat)
	case ModeTile:
		if pat.Composite {
			return Result{}, fmt.Errorf("%w: pattern %q is paver-only", calc.ErrInvalidInput, pat.Key)
		}
		return tile(in, pat)
	default:
		return Result{}, fmt.Errorf("%w: mode %q", calc.ErrInvalidInput, in.Mode)
	}
}

func paver(in Input, pat catalog.LayingPattern) (Result, error) {
	size, err := catalog.Paver(in.Size)
	if err != nil {
		return Result{}, err
	}
	base := ceilInt(in.AreaSqFt / size.AreaSqFtPerUnit())
	pallets := ceilInt(in.AreaSqFt / size.PalletCoverageSqFt)
	waste := wasteUnits(base, pat.WastePercent)
	return Result{
		PatternName:      pat.DisplayName,
		BaseUnits:        base,
		WastePercent:     pat.WastePercent,
		WasteUnits:       waste,
		RecommendedUnits: base + waste,
		Pallets:          pallets,
	}, nil
}

func tile(in Input, pat catalog.LayingPattern) (Result, error) {
	size, err := catalog.Tile(in.Size)
	if err != nil {
		return Result{}, err
	}
	base := ceilInt(in.AreaSqFt / size.AreaSqFtPerUnit())
	waste := wasteUnits(base, pat.WastePercent)
	return Result{
		PatternName:      pat.DisplayName,
		BaseUnits:        base,
		WastePercent:     pat.WastePercent,
		WasteUnits:       waste,
		RecommendedUnits: base + waste,
	}, nil
}

// composite handles the T-pattern. Each sub-area is counted against its
// own size's coverage figures, the sub-counts are summed, and the pattern
// waste is applied once to the summed base count.
func composite(areaSqFt float64, pat catalog.LayingPattern) (Result, error) {
	shares := []struct {
		size  string
		share float64
	}{
		{tPatternLargeSize, tPatternLargeShare},
		{tPatternSmallSize, tPatternSmallShare},
	}

	var (
		breakdown  []SizeCount
		baseTotal  int
		palletsSum int
	)
	for _, s := range shares {
		size, err := catalog.Paver(s.size)
		if err != nil {
			return Result{}, err
		}
		subArea := areaSqFt * s.share
		units := ceilInt(subArea / size.AreaSqFtPerUnit())
		pallets := ceilInt(subArea / size.PalletCoverageSqFt)
		baseTotal += units
		palletsSum += pallets
		breakdown = append(breakdown, SizeCount{
			Size:     s.size,
			AreaSqFt: subArea,
			Units:    units,
			Pallets:  pallets,
		})
	}

	waste := wasteUnits(baseTotal, pat.WastePercent)
	return Result{
		PatternName:      pat.DisplayName,
		BaseUnits:        baseTotal,
		WastePercent:     pat.WastePercent,
		WasteUnits:       waste,
		RecommendedUnits: baseTotal + waste,
		Pallets:          palletsSum,
		Breakdown:        breakdown,
	}, nil
}

func wasteUnits(base int, percent float64) int {
	return ceilInt(float64(base) * percent / 100.0)
}

func ceilInt(v float64) int {
	return int(math.Ceil(v))
}
