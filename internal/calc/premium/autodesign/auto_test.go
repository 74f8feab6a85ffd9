package autodesign

import (
	"math"
	"testing"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/damping"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

func TestZetaRoundTrip(t *testing.T) {
	// a damper that exactly delivers the ζ=0.7 target must measure back as 0.7
	const (
		zeta = 0.7
		rate = 60.0
		mass = 120.0
		vRef = 1.0
	)
	force := damping.TargetForce(zeta, rate, mass, vRef)
	res, err := Zeta(ZetaAutoInput{
		FullPoints:       []interp.Point{{VelocityMPS: vRef, ForceN: force}},
		SpringRateNPerMM: rate,
		MassKG:           mass,
		VRefMPS:          vRef,
	})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.EffectiveZeta-zeta) > 1e-9 {
		t.Fatalf("zeta %v, want %v", res.EffectiveZeta, zeta)
	}
	if math.Abs(res.ForceAtRefN-force) > 1e-9 {
		t.Fatalf("force %v, want %v", res.ForceAtRefN, force)
	}
}

func TestZetaInvalid(t *testing.T) {
	pts := []interp.Point{{VelocityMPS: 1, ForceN: 1000}}
	if _, err := Zeta(ZetaAutoInput{FullPoints: pts, SpringRateNPerMM: 0, MassKG: 100, VRefMPS: 1}); err == nil {
		t.Fatal("expected error for zero spring rate")
	}
	if _, err := Zeta(ZetaAutoInput{FullPoints: nil, SpringRateNPerMM: 60, MassKG: 100, VRefMPS: 1}); err == nil {
		t.Fatal("expected error for empty sample set")
	}
	if _, err := Zeta(ZetaAutoInput{FullPoints: pts, SpringRateNPerMM: 60, MassKG: 100, VRefMPS: 0}); err == nil {
		t.Fatal("expected error for zero reference velocity")
	}
}
