package catalog

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

type listing struct {
	Materials    []MaterialDensity   `json:"materials"`
	PaverSizes   []PaverSize         `json:"paver_sizes"`
	TileSizes    []TileSize          `json:"tile_sizes"`
	Patterns     []LayingPattern     `json:"patterns"`
	BorderStyles []BorderStyle       `json:"border_styles"`
	ProjectTypes []ProjectType       `json:"project_types"`
	Services     []AdditionalService `json:"services"`
}

// Get serves the full reference catalog so clients can populate their
// selector widgets from one request.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(listing{
		Materials:    Materials(),
		PaverSizes:   Pavers(),
		TileSizes:    Tiles(),
		Patterns:     Patterns(),
		BorderStyles: Borders(),
		ProjectTypes: Projects(),
		Services:     Services(),
	})
}
