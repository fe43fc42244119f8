package catalog

// BorderStyle is a border course orientation. Sailor lays the paver's long
// edge along the border line, soldier the short edge, so the repeat unit
// along the run differs.
type BorderStyle struct {
	Key                   string `json:"key"`
	DisplayName           string `json:"display_name"`
	OrientationUsesLength bool   `json:"orientation_uses_length"`
}

var borderStyles = []BorderStyle{
	{Key: "sailor", DisplayName: "Sailor Course", OrientationUsesLength: true},
	{Key: "soldier", DisplayName: "Soldier Course", OrientationUsesLength: false},
}

// Border returns the border style entry for key.
func Border(key string) (BorderStyle, error) {
	for _, b := range borderStyles {
		if b.Key == key {
			return b, nil
		}
	}
	return BorderStyle{}, unknown("border style", key)
}

// Borders returns both border styles.
func Borders() []BorderStyle {
	return append([]BorderStyle(nil), borderStyles...)
}
