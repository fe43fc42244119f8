package catalog

// ProjectType carries the labor pricing baseline for the contractor
// estimate tool: a per-square-foot base rate scaled by a project-specific
// multiplier.
type ProjectType struct {
	Key             string  `json:"key"`
	DisplayName     string  `json:"display_name"`
	BaseRatePerSqFt float64 `json:"base_rate_per_sq_ft"`
	LaborMultiplier float64 `json:"labor_multiplier"`
	Description     string  `json:"description"`
}

// AdditionalService is an optional add-on line item billed per square foot
// of area, per linear foot of perimeter, or as a flat charge.
type AdditionalService struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"display_name"`
	Rate        float64 `json:"rate"`
	UnitBasis   string  `json:"unit_basis"` // "area", "linear" or "flat"
}

// Unit basis values for AdditionalService.
const (
	BasisArea   = "area"
	BasisLinear = "linear"
	BasisFlat   = "flat"
)

var projectTypes = []ProjectType{
	{Key: "patio", DisplayName: "Patio", BaseRatePerSqFt: 2.50, LaborMultiplier: 1.0,
		Description: "Standard paver patio on prepared base."},
	{Key: "walkway", DisplayName: "Walkway", BaseRatePerSqFt: 2.75, LaborMultiplier: 1.1,
		Description: "Narrow runs, more edge cutting per square foot."},
	{Key: "driveway", DisplayName: "Driveway", BaseRatePerSqFt: 3.50, LaborMultiplier: 1.3,
		Description: "Thicker base and vehicular-rated pavers."},
	{Key: "pool-deck", DisplayName: "Pool Deck", BaseRatePerSqFt: 4.00, LaborMultiplier: 1.4,
		Description: "Coping and drainage detail work."},
	{Key: "retaining-wall", DisplayName: "Retaining Wall", BaseRatePerSqFt: 5.00, LaborMultiplier: 1.5,
		Description: "Priced per face square foot of wall."},
}

var services = []AdditionalService{
	{Key: "excavation", DisplayName: "Excavation", Rate: 1.50, UnitBasis: BasisArea},
	{Key: "base-prep", DisplayName: "Base Preparation", Rate: 2.00, UnitBasis: BasisArea},
	{Key: "polymeric-sand", DisplayName: "Polymeric Sand", Rate: 0.75, UnitBasis: BasisArea},
	{Key: "sealing", DisplayName: "Sealing", Rate: 1.25, UnitBasis: BasisArea},
	{Key: "edge-restraint", DisplayName: "Edge Restraint", Rate: 3.25, UnitBasis: BasisLinear},
	{Key: "delivery", DisplayName: "Delivery", Rate: 150.00, UnitBasis: BasisFlat},
}

// Project returns the project type entry for key.
func Project(key string) (ProjectType, error) {
	for _, p := range projectTypes {
		if p.Key == key {
			return p, nil
		}
	}
	return ProjectType{}, unknown("project type", key)
}

// Service returns the additional service entry for key.
func Service(key string) (AdditionalService, error) {
	for _, s := range services {
		if s.Key == key {
			return s, nil
		}
	}
	return AdditionalService{}, unknown("service", key)
}

// Projects returns the full project type table in display order.
func Projects() []ProjectType {
	return append([]ProjectType(nil), projectTypes...)
}

// Services returns the full additional service table in display order.
func Services() []AdditionalService {
	return append([]AdditionalService(nil), services...)
}
