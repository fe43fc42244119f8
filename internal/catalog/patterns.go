package catalog

// LayingPattern describes a paver or tile laying pattern and the cutting
// waste it incurs. Composite marks the T-pattern, which prescribes its own
// fixed mix of paver sizes instead of a caller-chosen one.
type LayingPattern struct {
	Key          string  `json:"key"`
	DisplayName  string  `json:"display_name"`
	WastePercent float64 `json:"waste_percent"`
	Description  string  `json:"description"`
	Composite    bool    `json:"composite,omitempty"`
}

// TPatternKey is the one composite pattern in the table: a fixed 75/25
// split across 6x9 and 6x6 pavers.
const TPatternKey = "t-pattern"

var patterns = []LayingPattern{
	{Key: "stack-bond", DisplayName: "Stack Bond", WastePercent: 3,
		Description: "Units aligned in a straight grid."},
	{Key: "running-bond", DisplayName: "Running Bond", WastePercent: 5,
		Description: "Each course offset by half a unit."},
	{Key: "basketweave", DisplayName: "Basketweave", WastePercent: 5,
		Description: "Pairs of units alternating direction."},
	{Key: "herringbone-90", DisplayName: "Herringbone 90°", WastePercent: 10,
		Description: "Zig-zag courses at right angles."},
	{Key: "herringbone-45", DisplayName: "Herringbone 45°", WastePercent: 15,
		Description: "Zig-zag courses on the diagonal; highest cut waste."},
	{Key: TPatternKey, DisplayName: "T-Pattern", WastePercent: 10, Composite: true,
		Description: "Fixed mix: 75% 6x9 and 25% 6x6 pavers."},
}

// Pattern returns the laying pattern entry for key.
func Pattern(key string) (LayingPattern, error) {
	for _, p := range patterns {
		if p.Key == key {
			return p, nil
		}
	}
	return LayingPattern{}, unknown("pattern", key)
}

// Patterns returns the full pattern table in display order.
func Patterns() []LayingPattern {
	return append([]LayingPattern(nil), patterns...)
}
