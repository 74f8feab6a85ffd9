package geometry

import (
	"fmt"
	"math"
)

// Area returns the circular cross-section area in mm² for a diameter in mm.
// Non-positive diameters yield 0; the form layer keeps real geometry out of
// this branch with min-value constraints.
func Area(diameterMM float64) float64 {
	if diameterMM <= 0 {
		return 0
	}
	r := diameterMM / 2.0
	return math.Pi * r * r
}

// PressureBar converts a force in N acting on an area in mm² to bar.
// A non-positive area yields 0 instead of a fault.
func PressureBar(forceN, areaMM2 float64) float64 {
	if areaMM2 <= 0 {
		return 0
	}
	pa := forceN / (areaMM2 * 1e-6)
	return pa / 1e5
}

type Input struct {
	RodDiameterMM  float64 `json:"rod_diameter_mm"`
	BodyDiameterMM float64 `json:"body_diameter_mm"`
	ForceN         float64 `json:"force_n"`
	BaselineBar    float64 `json:"baseline_bar"`
}

type Result struct {
	RodAreaMM2      float64 `json:"rod_area_mm2"`
	BodyAreaMM2     float64 `json:"body_area_mm2"`
	RodPressureBar  float64 `json:"rod_pressure_bar"`
	BodyPressureBar float64 `json:"body_pressure_bar"`
	DeltaBar        float64 `json:"delta_bar"`
	Notes           string  `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.RodDiameterMM <= 0 || in.BodyDiameterMM <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}

	rodArea := Area(in.RodDiameterMM)
	bodyArea := Area(in.BodyDiameterMM)
	bodyBar := PressureBar(in.ForceN, bodyArea)

	return Result{
		RodAreaMM2:      rodArea,
		BodyAreaMM2:     bodyArea,
		RodPressureBar:  PressureBar(in.ForceN, rodArea),
		BodyPressureBar: bodyBar,
		DeltaBar:        bodyBar - in.BaselineBar,
		Notes:           "Pressure = Force / Area; delta is body pressure above baseline P1.",
	}, nil
}
