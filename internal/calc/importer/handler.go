package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	tonnage "Quarry/internal/calc/tonnage"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type TonnageImportResult struct {
	Count   int              `json:"count"`
	Results []tonnage.Result `json:"results"`
}

// Tonnage imports a spreadsheet of material zones and runs the tonnage
// calculator per row. Rows that fail to parse or calculate are skipped,
// matching how reps clean up customer-supplied sheets.
func (h *Handler) Tonnage(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []tonnage.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseTonnageRow(rows[i])
		if err != nil {
			continue
		}
		res, err := tonnage.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(TonnageImportResult{Count: len(results), Results: results})
}

// expected columns: area_sq_ft, depth_inches, material
func parseTonnageRow(row []string) (tonnage.Input, error) {
	if len(row) < 3 {
		return tonnage.Input{}, fmt.Errorf("bad row")
	}
	area, err := toFloat(row[0])
	if err != nil {
		return tonnage.Input{}, err
	}
	depth, err := toFloat(row[1])
	if err != nil {
		return tonnage.Input{}, err
	}
	return tonnage.Input{
		AreaSqFt:    area,
		DepthInches: depth,
		Material:    row[2],
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
