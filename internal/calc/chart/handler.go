package chart

import (
	"encoding/json"
	"net/http"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/damping"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/fit"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

type Input struct {
	Title            string         `json:"title"`
	Model            fit.Model      `json:"model"`
	AdjPoints        []interp.Point `json:"adj_points"`
	FullPoints       []interp.Point `json:"full_points"`
	Zeta             float64        `json:"zeta"`
	SpringRateNPerMM float64        `json:"spring_rate_n_per_mm"`
	MassKG           float64        `json:"mass_kg"`
}

type Handler struct{}

// PNG renders the fitted adj-only and full curves of one direction, plus the
// single-DOF damping target as a reference line.
func (h *Handler) PNG(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Force vs Velocity"
	}

	res, err := fit.Calculate(fit.Input{
		Model:      input.Model,
		AdjPoints:  input.AdjPoints,
		FullPoints: input.FullPoints,
	})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	adjX, adjY := split(res.AdjDense)
	fullX, fullY := split(res.FullDense)

	series := []gochart.Series{
		gochart.ContinuousSeries{Name: "Adj-only", XValues: adjX, YValues: adjY},
		gochart.ContinuousSeries{Name: "Full", XValues: fullX, YValues: fullY},
	}
	if input.Zeta > 0 && input.SpringRateNPerMM > 0 && input.MassKG > 0 {
		targetY := make([]float64, len(fullX))
		for i, v := range fullX {
			targetY[i] = damping.TargetForce(input.Zeta, input.SpringRateNPerMM, input.MassKG, v)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    "Zeta target",
			XValues: fullX,
			YValues: targetY,
			Style:   gochart.Style{StrokeDashArray: []float64{4.0, 4.0}},
		})
	}

	graph := gochart.Chart{
		Title:  input.Title,
		XAxis:  gochart.XAxis{Name: "Velocity (m/s)"},
		YAxis:  gochart.YAxis{Name: "Force (N)"},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	w.Header().Set("Content-Type", "image/png")
	if err := graph.Render(gochart.PNG, w); err != nil {
		http.Error(w, "Chart rendering error", http.StatusInternalServerError)
		return
	}
}

func split(points []interp.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.VelocityMPS
		ys[i] = p.ForceN
	}
	return xs, ys
}
