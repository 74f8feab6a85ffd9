package fit

import (
	"fmt"

	"github.com/SeanJxie/polygo"
	"github.com/openacid/slimarray/polyfit"
	"gonum.org/v1/gonum/floats"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

// Model selects the target polynomial degree for a fit.
type Model string

const (
	ModelLinear    Model = "linear"
	ModelQuadratic Model = "quadratic"
	ModelCubic     Model = "cubic"
)

func (m Model) degree() (int, bool) {
	switch m {
	case ModelLinear:
		return 1, true
	case ModelQuadratic:
		return 2, true
	case ModelCubic:
		return 3, true
	}
	return 0, false
}

// Curve is a fitted force/velocity polynomial. Coefficients are stored lowest
// order first, the way polyfit solves them.
type Curve struct {
	Coeffs     []float64 `json:"coeffs"`
	DegreeUsed int       `json:"degree_used"`

	poly *polygo.RealPolynomial
}

// FitCurve fits a least-squares polynomial of the model's degree to the
// sample points. The degree is capped at distinct-velocity-count − 1, so a
// fit never carries more free parameters than independent velocities; with
// the cap active the solution interpolates the samples exactly. A single
// distinct velocity resolves to degree 0, a constant equal to the mean force.
func FitCurve(points []interp.Point, model Model) (*Curve, error) {
	deg, ok := model.degree()
	if !ok {
		return nil, fmt.Errorf("unknown model %q", model)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("invalid input")
	}

	if k := distinctVelocities(points); k <= deg {
		deg = k - 1
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.VelocityMPS
		ys[i] = p.ForceN
	}

	f := polyfit.NewFit(xs, ys, deg)
	coeffs := f.Solve()
	poly, err := polygo.NewRealPolynomial(coeffs)
	if err != nil {
		return nil, err
	}
	return &Curve{Coeffs: coeffs, DegreeUsed: deg, poly: poly}, nil
}

func distinctVelocities(points []interp.Point) int {
	seen := make(map[float64]struct{}, len(points))
	for _, p := range points {
		seen[p.VelocityMPS] = struct{}{}
	}
	return len(seen)
}

// At evaluates the fitted polynomial at velocity v.
func (c *Curve) At(v float64) float64 {
	return c.poly.At(v)
}

// EvaluateDense samples the curve on n evenly spaced velocities from vMin to
// vMax inclusive. A degenerate range collapses to a single point.
func (c *Curve) EvaluateDense(vMin, vMax float64, n int) []interp.Point {
	if n <= 1 || vMin == vMax {
		return []interp.Point{{VelocityMPS: vMin, ForceN: c.At(vMin)}}
	}
	grid := make([]float64, n)
	floats.Span(grid, vMin, vMax)
	out := make([]interp.Point, n)
	for i, v := range grid {
		out[i] = interp.Point{VelocityMPS: v, ForceN: c.At(v)}
	}
	return out
}

// DefaultDensePoints matches the dense grid the charts sample.
const DefaultDensePoints = 200

type Input struct {
	Model       Model          `json:"model"`
	AdjPoints   []interp.Point `json:"adj_points"`
	FullPoints  []interp.Point `json:"full_points"`
	DensePoints int            `json:"dense_points"`
}

type Result struct {
	AdjDegreeUsed  int            `json:"adj_degree_used"`
	FullDegreeUsed int            `json:"full_degree_used"`
	AdjCoeffs      []float64      `json:"adj_coeffs"`
	FullCoeffs     []float64      `json:"full_coeffs"`
	AdjDense       []interp.Point `json:"adj_dense"`
	FullDense      []interp.Point `json:"full_dense"`
}

// Calculate fits both force channels of one direction and evaluates them on
// a dense velocity grid spanning each channel's own sampled range.
func Calculate(in Input) (Result, error) {
	if len(in.AdjPoints) == 0 || len(in.FullPoints) == 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.DensePoints <= 0 {
		in.DensePoints = DefaultDensePoints
	}

	adj, err := FitCurve(in.AdjPoints, in.Model)
	if err != nil {
		return Result{}, err
	}
	full, err := FitCurve(in.FullPoints, in.Model)
	if err != nil {
		return Result{}, err
	}

	adjMin, adjMax := velocityRange(in.AdjPoints)
	fullMin, fullMax := velocityRange(in.FullPoints)

	return Result{
		AdjDegreeUsed:  adj.DegreeUsed,
		FullDegreeUsed: full.DegreeUsed,
		AdjCoeffs:      adj.Coeffs,
		FullCoeffs:     full.Coeffs,
		AdjDense:       adj.EvaluateDense(adjMin, adjMax, in.DensePoints),
		FullDense:      full.EvaluateDense(fullMin, fullMax, in.DensePoints),
	}, nil
}

func velocityRange(points []interp.Point) (min, max float64) {
	min, max = points[0].VelocityMPS, points[0].VelocityMPS
	for _, p := range points[1:] {
		if p.VelocityMPS < min {
			min = p.VelocityMPS
		}
		if p.VelocityMPS > max {
			max = p.VelocityMPS
		}
	}
	return min, max
}
