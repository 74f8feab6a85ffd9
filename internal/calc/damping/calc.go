package damping

import (
	"fmt"
	"math"
)

// TargetForce returns the damper force a single degree of freedom model asks
// for at the given shaft velocity: F = ζ · 2√(k·m) · v, with the spring rate
// given in N/mm and converted to N/m. Non-positive rate or mass yields 0.
// This is a baseline reference only, not a measured quantity.
func TargetForce(zeta, springRateNPerMM, massKG, velocityMPS float64) float64 {
	if springRateNPerMM <= 0 || massKG <= 0 {
		return 0
	}
	k := springRateNPerMM * 1000.0
	cCrit := 2.0 * math.Sqrt(k*massKG)
	return zeta * cCrit * velocityMPS
}

type Input struct {
	Zeta             float64   `json:"zeta"`
	SpringRateNPerMM float64   `json:"spring_rate_n_per_mm"`
	MassKG           float64   `json:"mass_kg"`
	VelocitiesMPS    []float64 `json:"velocities_mps"`
}

type Result struct {
	CCritNSPerM   float64   `json:"c_crit_ns_per_m"`
	CNSPerM       float64   `json:"c_ns_per_m"`
	TargetForcesN []float64 `json:"target_forces_n"`
	Notes         string    `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.SpringRateNPerMM <= 0 || in.MassKG <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	k := in.SpringRateNPerMM * 1000.0
	cCrit := 2.0 * math.Sqrt(k*in.MassKG)
	forces := make([]float64, len(in.VelocitiesMPS))
	for i, v := range in.VelocitiesMPS {
		forces[i] = in.Zeta * cCrit * v
	}
	return Result{
		CCritNSPerM:   cCrit,
		CNSPerM:       in.Zeta * cCrit,
		TargetForcesN: forces,
		Notes:         "Single-DOF damping target (sprung corner mass, linear damper).",
	}, nil
}
