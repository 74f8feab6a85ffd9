package autodesign

import (
	"fmt"
	"math"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

type ZetaAutoInput struct {
	FullPoints       []interp.Point `json:"full_points"`
	SpringRateNPerMM float64        `json:"spring_rate_n_per_mm"`
	MassKG           float64        `json:"mass_kg"`
	VRefMPS          float64        `json:"v_ref_mps"`
}

type ZetaAutoResult struct {
	ForceAtRefN   float64 `json:"force_at_ref_n"`
	CCritNSPerM   float64 `json:"c_crit_ns_per_m"`
	EffectiveZeta float64 `json:"effective_zeta"`
	Notes         string  `json:"notes"`
}

// Zeta back-computes the effective damping ratio the measured full channel
// delivers at the reference velocity: ζ = F / (2√(k·m) · v).
func Zeta(in ZetaAutoInput) (ZetaAutoResult, error) {
	if len(in.FullPoints) == 0 || in.SpringRateNPerMM <= 0 || in.MassKG <= 0 || in.VRefMPS <= 0 {
		return ZetaAutoResult{}, fmt.Errorf("invalid input")
	}

	k := in.SpringRateNPerMM * 1000.0
	cCrit := 2.0 * math.Sqrt(k*in.MassKG)
	force := interp.Force(in.VRefMPS, in.FullPoints)

	return ZetaAutoResult{
		ForceAtRefN:   force,
		CCritNSPerM:   cCrit,
		EffectiveZeta: force / (cCrit * in.VRefMPS),
		Notes:         "Effective single-DOF damping ratio from the measured full channel.",
	}, nil
}
