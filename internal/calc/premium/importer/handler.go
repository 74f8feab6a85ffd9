package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/authority"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

type Handler struct{}

type SamplesImportResult struct {
	Count            int            `json:"count"`
	AdjPoints        []interp.Point `json:"adj_points"`
	FullPoints       []interp.Point `json:"full_points"`
	PeakAuthorityPct float64        `json:"peak_authority_pct"`
}

// Samples imports a dyno sheet (velocity, adj-only force, full force per
// row, header in row 1) and returns the parsed sample sets with the peak
// authority figure.
func (h *Handler) Samples(w http.ResponseWriter, r *http.Request) {
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

	var adj, full []interp.Point
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		v, adjF, fullF, err := parseSampleRow(row)
		if err != nil {
			continue
		}
		adj = append(adj, interp.Point{VelocityMPS: v, ForceN: adjF})
		full = append(full, interp.Point{VelocityMPS: v, ForceN: fullF})
	}
	if len(adj) == 0 {
		http.Error(w, "No usable rows", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SamplesImportResult{
		Count:            len(adj),
		AdjPoints:        adj,
		FullPoints:       full,
		PeakAuthorityPct: authority.Peak(adj, full),
	})
}

func parseSampleRow(row []string) (v, adjF, fullF float64, err error) {
	if v, err = toFloat(row[0]); err != nil {
		return 0, 0, 0, err
	}
	if adjF, err = toFloat(row[1]); err != nil {
		return 0, 0, 0, err
	}
	if fullF, err = toFloat(row[2]); err != nil {
		return 0, 0, 0, err
	}
	if v < 0 {
		return 0, 0, 0, fmt.Errorf("bad row")
	}
	return v, adjF, fullF, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
