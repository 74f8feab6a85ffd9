package fit

import (
	"math"
	"testing"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

var adjSamples = []interp.Point{
	{VelocityMPS: 0.1, ForceN: 300},
	{VelocityMPS: 1.0, ForceN: 800},
	{VelocityMPS: 2.5, ForceN: 1400},
}

func approx(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestDegreeCapping(t *testing.T) {
	cases := []struct {
		model Model
		want  int
	}{
		{ModelLinear, 1},
		{ModelQuadratic, 2},
		{ModelCubic, 2}, // 3 distinct velocities cap a cubic to degree 2
	}
	for _, c := range cases {
		curve, err := FitCurve(adjSamples, c.model)
		if err != nil {
			t.Fatal(err)
		}
		if curve.DegreeUsed != c.want {
			t.Fatalf("%s: degree %d, want %d", c.model, curve.DegreeUsed, c.want)
		}
	}
}

func TestDegreeCappingWithDuplicates(t *testing.T) {
	pts := append([]interp.Point{{VelocityMPS: 1.0, ForceN: 810}}, adjSamples...)
	// 4 samples but still 3 distinct velocities
	curve, err := FitCurve(pts, ModelCubic)
	if err != nil {
		t.Fatal(err)
	}
	if curve.DegreeUsed != 2 {
		t.Fatalf("degree %d, want 2", curve.DegreeUsed)
	}
}

func TestExactInterpolationCollapse(t *testing.T) {
	// degree 2 with 3 distinct velocities is exactly determined
	curve, err := FitCurve(adjSamples, ModelQuadratic)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range adjSamples {
		approx(t, curve.At(p.VelocityMPS), p.ForceN, 1e-3)
	}
}

func TestConstantFitFromSingleVelocity(t *testing.T) {
	pts := []interp.Point{
		{VelocityMPS: 0.5, ForceN: 300},
		{VelocityMPS: 0.5, ForceN: 500},
		{VelocityMPS: 0.5, ForceN: 700},
	}
	curve, err := FitCurve(pts, ModelCubic)
	if err != nil {
		t.Fatal(err)
	}
	if curve.DegreeUsed != 0 {
		t.Fatalf("degree %d, want 0", curve.DegreeUsed)
	}
	for _, v := range []float64{0, 0.5, 3} {
		approx(t, curve.At(v), 500, 1e-6) // mean of the forces
	}
}

func TestUnknownModel(t *testing.T) {
	if _, err := FitCurve(adjSamples, Model("quartic")); err == nil {
		t.Fatal("expected error for unknown model")
	}
}

func TestEvaluateDense(t *testing.T) {
	curve, err := FitCurve(adjSamples, ModelQuadratic)
	if err != nil {
		t.Fatal(err)
	}
	dense := curve.EvaluateDense(0.1, 2.5, DefaultDensePoints)
	if len(dense) != DefaultDensePoints {
		t.Fatalf("len %d, want %d", len(dense), DefaultDensePoints)
	}
	approx(t, dense[0].VelocityMPS, 0.1, 1e-12)
	approx(t, dense[len(dense)-1].VelocityMPS, 2.5, 1e-12)
	for i := 1; i < len(dense); i++ {
		if dense[i].VelocityMPS <= dense[i-1].VelocityMPS {
			t.Fatal("dense grid not strictly ascending")
		}
	}
}

func TestEvaluateDenseDegenerateRange(t *testing.T) {
	curve, err := FitCurve(adjSamples, ModelLinear)
	if err != nil {
		t.Fatal(err)
	}
	dense := curve.EvaluateDense(1.0, 1.0, DefaultDensePoints)
	if len(dense) != 1 {
		t.Fatalf("len %d, want 1", len(dense))
	}
	approx(t, dense[0].ForceN, curve.At(1.0), 1e-12)
}

func TestCalculate(t *testing.T) {
	full := []interp.Point{
		{VelocityMPS: 0.1, ForceN: 1400},
		{VelocityMPS: 1.0, ForceN: 2600},
		{VelocityMPS: 2.5, ForceN: 4000},
	}
	res, err := Calculate(Input{Model: ModelQuadratic, AdjPoints: adjSamples, FullPoints: full})
	if err != nil {
		t.Fatal(err)
	}
	if res.AdjDegreeUsed != 2 || res.FullDegreeUsed != 2 {
		t.Fatalf("degrees %d/%d, want 2/2", res.AdjDegreeUsed, res.FullDegreeUsed)
	}
	if len(res.AdjDense) != DefaultDensePoints || len(res.FullDense) != DefaultDensePoints {
		t.Fatal("dense grids must default to 200 points")
	}
	if len(res.AdjCoeffs) != 3 {
		t.Fatalf("quadratic must carry 3 coefficients, got %d", len(res.AdjCoeffs))
	}
}
