package authority

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/damping"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/geometry"
	"github.com/Mountainraceshop/pressure-balance-app/internal/calc/interp"
)

// AtReference interpolates both channels at the reference velocity and
// returns 100·adj/full. A full-channel force ≤ 0 yields 0, never a fault.
func AtReference(vRef float64, adj, full []interp.Point) float64 {
	fullF := interp.Force(vRef, full)
	if fullF <= 0 {
		return 0
	}
	return 100.0 * interp.Force(vRef, adj) / fullF
}

// Peak returns the maximum pointwise 100·adj/full ratio across the raw
// sample pairs, matched by index. Pairs whose full force is ≤ 0 are skipped;
// if nothing remains the result is 0.
func Peak(adj, full []interp.Point) float64 {
	n := len(adj)
	if len(full) < n {
		n = len(full)
	}
	var ratios []float64
	for i := 0; i < n; i++ {
		if full[i].ForceN <= 0 {
			continue
		}
		ratios = append(ratios, 100.0*adj[i].ForceN/full[i].ForceN)
	}
	if len(ratios) == 0 {
		return 0
	}
	return floats.Max(ratios)
}

// Row is one line of the comparison table the charts and exports consume.
type Row struct {
	Mode             string  `json:"mode"`
	VelocityMPS      float64 `json:"velocity_mps"`
	AdjForceN        float64 `json:"adj_force_n"`
	FullForceN       float64 `json:"full_force_n"`
	AdjPercent       float64 `json:"adj_percent"`
	ZetaTargetForceN float64 `json:"zeta_target_force_n"`
}

type TableInput struct {
	Mode             string         `json:"mode"`
	AdjPoints        []interp.Point `json:"adj_points"`
	FullPoints       []interp.Point `json:"full_points"`
	Zeta             float64        `json:"zeta"`
	SpringRateNPerMM float64        `json:"spring_rate_n_per_mm"`
	MassKG           float64        `json:"mass_kg"`
	VMaxMPS          float64        `json:"v_max_mps"`
	VStepMPS         float64        `json:"v_step_mps"`
}

type TableResult struct {
	Rows []Row `json:"rows"`
}

// Table builds the velocity grid 0 < v ≤ v_max at v_step and emits one row
// per grid velocity, ascending. v = 0 is excluded; a zero-velocity row
// carries no force information.
func Table(in TableInput) (TableResult, error) {
	if len(in.AdjPoints) == 0 || len(in.FullPoints) == 0 {
		return TableResult{}, fmt.Errorf("invalid input")
	}
	if in.VMaxMPS <= 0 || in.VStepMPS <= 0 {
		return TableResult{}, fmt.Errorf("invalid input")
	}
	if in.Mode == "" {
		in.Mode = "compression"
	}

	n := int(math.Floor(in.VMaxMPS/in.VStepMPS + 1e-9))
	rows := make([]Row, 0, n)
	for i := 1; i <= n; i++ {
		v := float64(i) * in.VStepMPS
		adjF := interp.Force(v, in.AdjPoints)
		fullF := interp.Force(v, in.FullPoints)
		pct := 0.0
		if fullF > 0 {
			pct = 100.0 * adjF / fullF
		}
		rows = append(rows, Row{
			Mode:             in.Mode,
			VelocityMPS:      v,
			AdjForceN:        adjF,
			FullForceN:       fullF,
			AdjPercent:       pct,
			ZetaTargetForceN: damping.TargetForce(in.Zeta, in.SpringRateNPerMM, in.MassKG, v),
		})
	}
	return TableResult{Rows: rows}, nil
}

type Input struct {
	VRefMPS        float64        `json:"v_ref_mps"`
	AdjPoints      []interp.Point `json:"adj_points"`
	FullPoints     []interp.Point `json:"full_points"`
	RodDiameterMM  float64        `json:"rod_diameter_mm"`
	BodyDiameterMM float64        `json:"body_diameter_mm"`
}

type Result struct {
	AdjForceN        float64 `json:"adj_force_n"`
	FullForceN       float64 `json:"full_force_n"`
	AuthorityPct     float64 `json:"authority_pct"`
	PeakAuthorityPct float64 `json:"peak_authority_pct"`
	RodPressureBar   float64 `json:"rod_pressure_bar"`
	BodyPressureBar  float64 `json:"body_pressure_bar"`
	Notes            string  `json:"notes"`
}

// Calculate summarises one direction at the reference velocity. Both
// authority definitions are reported side by side: the interpolated ratio at
// v_ref and the peak pointwise ratio over the raw samples.
func Calculate(in Input) (Result, error) {
	if len(in.AdjPoints) == 0 || len(in.FullPoints) == 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	adjF := interp.Force(in.VRefMPS, in.AdjPoints)
	fullF := interp.Force(in.VRefMPS, in.FullPoints)

	return Result{
		AdjForceN:        adjF,
		FullForceN:       fullF,
		AuthorityPct:     AtReference(in.VRefMPS, in.AdjPoints, in.FullPoints),
		PeakAuthorityPct: Peak(in.AdjPoints, in.FullPoints),
		RodPressureBar:   geometry.PressureBar(adjF, geometry.Area(in.RodDiameterMM)),
		BodyPressureBar:  geometry.PressureBar(fullF, geometry.Area(in.BodyDiameterMM)),
		Notes:            "Adjuster authority at v_ref and peak over raw samples; pressures from rod/body areas.",
	}, nil
}
