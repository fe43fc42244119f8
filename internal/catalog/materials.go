package catalog

// MaterialDensity maps a bulk material class to the weight of one cubic
// yard in US tons. Used by the tonnage calculator for volume-to-weight
// conversion.
type MaterialDensity struct {
	Key              string  `json:"key"`
	DisplayName      string  `json:"display_name"`
	TonsPerCubicYard float64 `json:"tons_per_cubic_yard"`
}

var materials = []MaterialDensity{
	{Key: "fines", DisplayName: "Crushed Fines", TonsPerCubicYard: 1.4},
	{Key: "gravel", DisplayName: "Gravel (3/4\")", TonsPerCubicYard: 1.35},
	{Key: "river-rock", DisplayName: "River Rock", TonsPerCubicYard: 1.3},
	{Key: "sand", DisplayName: "Masonry Sand", TonsPerCubicYard: 1.35},
	{Key: "decomposed-granite", DisplayName: "Decomposed Granite", TonsPerCubicYard: 1.4},
	{Key: "topsoil", DisplayName: "Screened Topsoil", TonsPerCubicYard: 1.1},
	{Key: "mulch", DisplayName: "Hardwood Mulch", TonsPerCubicYard: 0.4},
	{Key: "rip-rap", DisplayName: "Rip Rap", TonsPerCubicYard: 1.5},
}

// Material returns the density entry for key.
func Material(key string) (MaterialDensity, error) {
	for _, m := range materials {
		if m.Key == key {
			return m, nil
		}
	}
	return MaterialDensity{}, unknown("material", key)
}

// Materials returns the full density table in display order.
func Materials() []MaterialDensity {
	return append([]MaterialDensity(nil), materials...)
}
