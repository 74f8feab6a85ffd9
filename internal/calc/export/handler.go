package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/authority"
)

// Column layout shared by the CSV and xlsx exports. Row order and numeric
// precision follow the table; only the percentage gets display rounding.
var header = []string{"Mode", "Velocity (m/s)", "Adj-only (N)", "Full (N)", "Adj %", "ζ target F (N)"}

type Handler struct{}

func (h *Handler) CSV(w http.ResponseWriter, r *http.Request) {
	var input authority.TableInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	table, err := authority.Table(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pressure-balance.csv\"")

	cw := csv.NewWriter(w)
	_ = cw.Write(header)
	for _, row := range table.Rows {
		_ = cw.Write([]string{
			row.Mode,
			strconv.FormatFloat(row.VelocityMPS, 'f', -1, 64),
			strconv.FormatFloat(row.AdjForceN, 'f', -1, 64),
			strconv.FormatFloat(row.FullForceN, 'f', -1, 64),
			fmt.Sprintf("%.1f", row.AdjPercent),
			strconv.FormatFloat(row.ZetaTargetForceN, 'f', -1, 64),
		})
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Printf("CSV export write error: %v", err)
	}
}

func (h *Handler) XLSX(w http.ResponseWriter, r *http.Request) {
	var input authority.TableInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	table, err := authority.Table(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	cells := make([]interface{}, len(header))
	for i, hd := range header {
		cells[i] = hd
	}
	_ = f.SetSheetRow(sheet, "A1", &cells)

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			http.Error(w, "Export error", http.StatusInternalServerError)
			return
		}
		_ = f.SetSheetRow(sheet, cell, &[]interface{}{
			row.Mode,
			row.VelocityMPS,
			row.AdjForceN,
			row.FullForceN,
			row.AdjPercent,
			row.ZetaTargetForceN,
		})
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"pressure-balance.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
