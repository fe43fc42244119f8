package catalog

// PaverSize describes a stocked paver unit. Pallet coverage is the square
// footage one shipping pallet of that size covers.
type PaverSize struct {
	Key                string  `json:"key"`
	WidthInches        float64 `json:"width_inches"`
	LengthInches       float64 `json:"length_inches"`
	PalletCoverageSqFt float64 `json:"pallet_coverage_sq_ft"`
}

// AreaSqFtPerUnit is the face area of a single paver in square feet.
func (p PaverSize) AreaSqFtPerUnit() float64 {
	return p.WidthInches * p.LengthInches / 144.0
}

// TileSize describes a stocked tile unit. Tiles are not sold by pallet.
type TileSize struct {
	Key          string  `json:"key"`
	WidthInches  float64 `json:"width_inches"`
	LengthInches float64 `json:"length_inches"`
}

// AreaSqFtPerUnit is the face area of a single tile in square feet.
func (t TileSize) AreaSqFtPerUnit() float64 {
	return t.WidthInches * t.LengthInches / 144.0
}

var paverSizes = []PaverSize{
	{Key: "4x8", WidthInches: 4, LengthInches: 8, PalletCoverageSqFt: 145},
	{Key: "6x6", WidthInches: 6, LengthInches: 6, PalletCoverageSqFt: 120},
	{Key: "6x9", WidthInches: 6, LengthInches: 9, PalletCoverageSqFt: 130},
	{Key: "12x12", WidthInches: 12, LengthInches: 12, PalletCoverageSqFt: 144},
}

var tileSizes = []TileSize{
	{Key: "12x12", WidthInches: 12, LengthInches: 12},
	{Key: "12x24", WidthInches: 12, LengthInches: 24},
	{Key: "16x16", WidthInches: 16, LengthInches: 16},
	{Key: "24x24", WidthInches: 24, LengthInches: 24},
}

// Paver returns the paver size entry for key.
func Paver(key string) (PaverSize, error) {
	for _, p := range paverSizes {
		if p.Key == key {
			return p, nil
		}
	}
	return PaverSize{}, unknown("paver size", key)
}

// Tile returns the tile size entry for key.
func Tile(key string) (TileSize, error) {
	for _, t := range tileSizes {
		if t.Key == key {
			return t, nil
		}
	}
	return TileSize{}, unknown("tile size", key)
}

// Pavers returns the full paver size table in display order.
func Pavers() []PaverSize {
	return append([]PaverSize(nil), paverSizes...)
}

// Tiles returns the full tile size table in display order.
func Tiles() []TileSize {
	return append([]TileSize(nil), tileSizes...)
}
