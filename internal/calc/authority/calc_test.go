package authority

import (
	"math"
	"testing"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

var (
	adjSamples = []interp.Point{
		{VelocityMPS: 0.1, ForceN: 300},
		{VelocityMPS: 1.0, ForceN: 800},
		{VelocityMPS: 2.5, ForceN: 1400},
	}
	fullSamples = []interp.Point{
		{VelocityMPS: 0.1, ForceN: 1400},
		{VelocityMPS: 1.0, ForceN: 2600},
		{VelocityMPS: 2.5, ForceN: 4000},
	}
)

func approx(t *testing.T, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (tol %v)", got, want, tol)
	}
}

func TestAtReference(t *testing.T) {
	// 100·800/2600 ≈ 30.77 %
	approx(t, AtReference(1.0, adjSamples, fullSamples), 100.0*800.0/2600.0, 1e-9)
}

func TestAtReferenceZeroDenominator(t *testing.T) {
	dead := []interp.Point{{VelocityMPS: 1.0, ForceN: 0}}
	if got := AtReference(1.0, adjSamples, dead); got != 0 {
		t.Fatalf("got %v, want 0 for non-positive full force", got)
	}
}

func TestPeak(t *testing.T) {
	// pointwise ratios: 21.43, 30.77, 35.0
	approx(t, Peak(adjSamples, fullSamples), 35.0, 1e-9)
}

func TestPeakSkipsDeadPairs(t *testing.T) {
	full := []interp.Point{
		{VelocityMPS: 0.1, ForceN: 0},
		{VelocityMPS: 1.0, ForceN: 2600},
	}
	approx(t, Peak(adjSamples[:2], full), 100.0*800.0/2600.0, 1e-9)

	allDead := []interp.Point{{VelocityMPS: 0.1, ForceN: 0}, {VelocityMPS: 1.0, ForceN: -5}}
	if got := Peak(adjSamples[:2], allDead); got != 0 {
		t.Fatalf("got %v, want 0 when no valid pair remains", got)
	}
}

func TestTable(t *testing.T) {
	res, err := Table(TableInput{
		Mode:             "compression",
		AdjPoints:        adjSamples,
		FullPoints:       fullSamples,
		Zeta:             0.7,
		SpringRateNPerMM: 100,
		MassKG:           100,
		VMaxMPS:          2.5,
		VStepMPS:         0.5,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Rows) != 5 {
		t.Fatalf("rows %d, want 5", len(res.Rows))
	}
	if res.Rows[0].VelocityMPS != 0.5 {
		t.Fatalf("first row v=%v; v=0 must be excluded", res.Rows[0].VelocityMPS)
	}
	for i := 1; i < len(res.Rows); i++ {
		if res.Rows[i].VelocityMPS <= res.Rows[i-1].VelocityMPS {
			t.Fatal("rows not ascending in velocity")
		}
	}
	last := res.Rows[4]
	approx(t, last.VelocityMPS, 2.5, 1e-9)
	approx(t, last.AdjForceN, 1400, 1e-9)
	approx(t, last.FullForceN, 4000, 1e-9)
	approx(t, last.AdjPercent, 35.0, 1e-9)
	if last.ZetaTargetForceN <= 0 {
		t.Fatal("zeta target must be positive for positive parameters")
	}
	if last.Mode != "compression" {
		t.Fatalf("mode %q", last.Mode)
	}
}

func TestTableInvalidGrid(t *testing.T) {
	_, err := Table(TableInput{AdjPoints: adjSamples, FullPoints: fullSamples, VMaxMPS: 0, VStepMPS: 0.5})
	if err == nil {
		t.Fatal("expected error for non-positive v_max")
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		VRefMPS:        1.0,
		AdjPoints:      adjSamples,
		FullPoints:     fullSamples,
		RodDiameterMM:  10,
		BodyDiameterMM: 46,
	})
	if err != nil {
		t.Fatal(err)
	}
	approx(t, res.AuthorityPct, 100.0*800.0/2600.0, 1e-9)
	approx(t, res.PeakAuthorityPct, 35.0, 1e-9)
	approx(t, res.AdjForceN, 800, 1e-9)
	approx(t, res.FullForceN, 2600, 1e-9)
	if res.RodPressureBar <= 0 || res.BodyPressureBar <= 0 {
		t.Fatal("pressures must be positive for positive forces and areas")
	}
	// adj force on the small rod area runs far higher pressure than full on body
	if res.RodPressureBar <= res.BodyPressureBar {
		t.Fatal("rod pressure should exceed body pressure here")
	}
}
