package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/authority"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/geometry"
)

type Input struct {
	Project  string               `json:"project"`
	Author   string               `json:"author"`
	Title    string               `json:"title"`
	Notes    string               `json:"notes"`
	Geometry geometry.Input       `json:"geometry"`
	Table    authority.TableInput `json:"table"`
}

type Handler struct{}

// Generate renders the comparison table and geometry summary as a PDF
// attachment.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Pressure Balance Report"
	}

	table, err := authority.Table(input.Table)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	geo, err := geometry.Calculate(input.Geometry)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	reportID := uuid.New()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Geometry")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Rod area: %.2f mm2    Body area: %.2f mm2", geo.RodAreaMM2, geo.BodyAreaMM2))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Body pressure: %.2f bar    Delta vs baseline: %.2f bar", geo.BodyPressureBar, geo.DeltaBar))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Force / velocity table")
	pdf.Ln(8)

	headers := []string{"Mode", "V (m/s)", "Adj-only (N)", "Full (N)", "Adj %", "Zeta target (N)"}
	widths := []float64{28, 24, 32, 32, 24, 36}
	pdf.SetFont("Helvetica", "B", 9)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		pdf.CellFormat(widths[0], 6, row.Mode, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, fmt.Sprintf("%.2f", row.VelocityMPS), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 6, fmt.Sprintf("%.1f", row.AdjForceN), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 6, fmt.Sprintf("%.1f", row.FullForceN), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 6, fmt.Sprintf("%.1f", row.AdjPercent), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[5], 6, fmt.Sprintf("%.1f", row.ZetaTargetForceN), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.Cell(0, 4, fmt.Sprintf("Report %s. Decision-support output, provided as is.", reportID))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pressure-balance-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
