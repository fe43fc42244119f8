package quote

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"Quarry/internal/auth"
	"Quarry/internal/calc/estimate"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	CompanyName  string         `json:"company_name"`
	PreparedFor  string         `json:"prepared_for"`
	ProjectLabel string         `json:"project_label"`
	Notes        string         `json:"notes"`
	Estimate     estimate.Input `json:"estimate"`
}

type Handler struct {
	Config estimate.Config
}

// Generate renders a printable quote PDF for a contractor: branding
// header, the estimate breakdown, optional notes. The same contractor
// gate as the estimate endpoint applies.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := estimate.Calculate(ident.AccountType, input.Estimate, h.Config)
	if err != nil {
		if errors.Is(err, estimate.ErrContractorOnly) {
			http.Error(w, "Contractor account required", http.StatusForbidden)
			return
		}
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	title := input.CompanyName
	if title == "" {
		title = "Project Quote"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Prepared for: %s", input.PreparedFor))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s (%s)", input.ProjectLabel, res.ProjectTypeName))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Estimate Breakdown")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	line := func(label, amount string) {
		pdf.Cell(120, 6, label)
		pdf.CellFormat(40, 6, amount, "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	line("Materials", "$"+res.MaterialCost.StringFixed(2))
	line("Labor", "$"+res.LaborCost.StringFixed(2))
	for _, svc := range res.ServiceLines {
		line(svc.Name, "$"+svc.Cost.StringFixed(2))
	}
	line("Subtotal", "$"+res.Subtotal.StringFixed(2))
	line("Tax", "$"+res.Tax.StringFixed(2))
	pdf.SetFont("Helvetica", "B", 11)
	line("Total", "$"+res.Total.StringFixed(2))

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"quote.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Quote generation error", http.StatusInternalServerError)
		return
	}
}
