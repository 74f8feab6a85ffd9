package damping

import (
	"math"
	"testing"
)

func TestTargetForceKnownValue(t *testing.T) {
	// k = 100 N/mm = 1e5 N/m, m = 100 kg: c_crit = 2·√(1e7) ≈ 6324.555
	got := TargetForce(0.7, 100, 100, 1.0)
	if math.Abs(got-4427.19) > 0.01 {
		t.Fatalf("got %v, want ≈4427.19", got)
	}
}

func TestTargetForceLinearInVelocity(t *testing.T) {
	f1 := TargetForce(0.7, 60, 120, 0.5)
	f2 := TargetForce(0.7, 60, 120, 1.0)
	if math.Abs(f2-2*f1) > 1e-9 {
		t.Fatalf("target force must be linear in velocity: %v vs 2·%v", f2, f1)
	}
}

func TestTargetForceDefensiveZero(t *testing.T) {
	if TargetForce(0.7, 0, 100, 1) != 0 {
		t.Fatal("zero spring rate must yield 0")
	}
	if TargetForce(0.7, 100, -1, 1) != 0 {
		t.Fatal("negative mass must yield 0")
	}
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		Zeta:             0.7,
		SpringRateNPerMM: 100,
		MassKG:           100,
		VelocitiesMPS:    []float64{0.5, 1.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.CCritNSPerM-6324.555) > 0.01 {
		t.Fatalf("c_crit = %v, want ≈6324.555", res.CCritNSPerM)
	}
	if math.Abs(res.CNSPerM-0.7*res.CCritNSPerM) > 1e-9 {
		t.Fatal("c must equal zeta·c_crit")
	}
	if len(res.TargetForcesN) != 2 {
		t.Fatalf("forces len %d, want 2", len(res.TargetForcesN))
	}
	if math.Abs(res.TargetForcesN[1]-2*res.TargetForcesN[0]) > 1e-9 {
		t.Fatal("forces must scale with velocity")
	}
}

func TestCalculateInvalid(t *testing.T) {
	if _, err := Calculate(Input{Zeta: 0.7, SpringRateNPerMM: 0, MassKG: 100}); err == nil {
		t.Fatal("expected error for zero spring rate")
	}
}
