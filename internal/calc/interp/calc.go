package interp

import (
	"fmt"
	"sort"
)

// Point is one dyno sample: damper shaft velocity against measured force.
type Point struct {
	VelocityMPS float64 `json:"velocity_mps"`
	ForceN      float64 `json:"force_n"`
}

// Force evaluates the sampled force curve at velocity v by piecewise linear
// interpolation. The points need not arrive sorted. Queries outside the
// sampled range return the boundary force (flat extrapolation), queries at a
// sample velocity return that sample's force exactly. An empty set yields 0.
func Force(v float64, points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	pts := make([]Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool { return pts[i].VelocityMPS < pts[j].VelocityMPS })

	if v <= pts[0].VelocityMPS {
		return pts[0].ForceN
	}
	last := pts[len(pts)-1]
	if v >= last.VelocityMPS {
		return last.ForceN
	}
	for i := 1; i < len(pts); i++ {
		if v < pts[i].VelocityMPS {
			x0, y0 := pts[i-1].VelocityMPS, pts[i-1].ForceN
			x1, y1 := pts[i].VelocityMPS, pts[i].ForceN
			if x1 == x0 {
				return y0
			}
			t := (v - x0) / (x1 - x0)
			return y0*(1-t) + y1*t
		}
	}
	return last.ForceN
}

type Input struct {
	Points     []Point   `json:"points"`
	QueriesMPS []float64 `json:"queries_mps"`
}

type Result struct {
	ForcesN []float64 `json:"forces_n"`
	Notes   string    `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Points) == 0 || len(in.QueriesMPS) == 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	forces := make([]float64, len(in.QueriesMPS))
	for i, v := range in.QueriesMPS {
		forces[i] = Force(v, in.Points)
	}
	return Result{
		ForcesN: forces,
		Notes:   "Piecewise linear, flat extrapolation outside sampled range.",
	}, nil
}
