package geometry

import (
	"math"
	"testing"
)

func approx(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestAreaKnownDiameters(t *testing.T) {
	// rod 10 mm and body 46 mm, the app's default damper
	approx(t, Area(10), 78.5398, 1e-3)
	approx(t, Area(46), 1661.9025, 1e-3)
}

func TestAreaMonotonic(t *testing.T) {
	diameters := []float64{1, 2, 10, 46, 80}
	for i := 1; i < len(diameters); i++ {
		if Area(diameters[i-1]) >= Area(diameters[i]) {
			t.Fatalf("area not monotonic between d=%v and d=%v", diameters[i-1], diameters[i])
		}
	}
}

func TestAreaInvalidDiameter(t *testing.T) {
	if Area(0) != 0 {
		t.Fatalf("Area(0) = %v, want 0", Area(0))
	}
	if Area(-5) != 0 {
		t.Fatalf("Area(-5) = %v, want 0", Area(-5))
	}
}

func TestPressureUnitConversion(t *testing.T) {
	// 1 N/mm² is 1 MPa, i.e. 10 bar
	approx(t, PressureBar(100, 100), 10.0, 1e-9)
	// 1661.9 N on the 46 mm body area is almost exactly 1 N/mm²
	approx(t, PressureBar(1661.9, Area(46)), 10.0, 1e-3)
}

func TestPressureLinearInForce(t *testing.T) {
	area := Area(46)
	approx(t, PressureBar(2000, area), 2*PressureBar(1000, area), 1e-9)
}

func TestPressureZeroArea(t *testing.T) {
	if PressureBar(1000, 0) != 0 {
		t.Fatal("zero area must yield zero pressure")
	}
	if PressureBar(1000, -3) != 0 {
		t.Fatal("negative area must yield zero pressure")
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		RodDiameterMM:  10,
		BodyDiameterMM: 46,
		ForceN:         1661.9,
		BaselineBar:    10,
	})
	if err != nil {
		t.Fatal(err)
	}
	approx(t, res.RodAreaMM2, 78.5398, 1e-3)
	approx(t, res.BodyAreaMM2, 1661.9025, 1e-3)
	approx(t, res.BodyPressureBar, 10.0, 1e-3)
	approx(t, res.DeltaBar, 0.0, 1e-3)
}

func TestCalculateInvalidGeometry(t *testing.T) {
	if _, err := Calculate(Input{RodDiameterMM: 0, BodyDiameterMM: 46}); err == nil {
		t.Fatal("expected error for zero rod diameter")
	}
}
