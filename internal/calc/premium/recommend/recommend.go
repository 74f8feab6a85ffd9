package recommend

import "fmt"

type AuthorityBandInput struct {
	AuthorityPct float64 `json:"authority_pct"`
	BandMinPct   float64 `json:"band_min_pct"`
	BandMaxPct   float64 `json:"band_max_pct"`
}

type AuthorityBandResult struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// AuthorityBand checks an adjuster authority figure against the target band.
// Default band 15–20 %: below it the clickers barely act, above it the
// adjuster carries too much of the total damping.
func AuthorityBand(in AuthorityBandInput) (AuthorityBandResult, error) {
	if in.AuthorityPct < 0 {
		return AuthorityBandResult{}, fmt.Errorf("invalid input")
	}
	if in.BandMinPct <= 0 {
		in.BandMinPct = 15
	}
	if in.BandMaxPct <= 0 {
		in.BandMaxPct = 20
	}
	if in.BandMaxPct < in.BandMinPct {
		return AuthorityBandResult{}, fmt.Errorf("invalid input")
	}

	switch {
	case in.AuthorityPct < in.BandMinPct:
		return AuthorityBandResult{
			Status: "below",
			Notes:  fmt.Sprintf("Adjuster below %.0f%% authority will have little to no real effect.", in.BandMinPct),
		}, nil
	case in.AuthorityPct > in.BandMaxPct:
		return AuthorityBandResult{
			Status: "above",
			Notes:  fmt.Sprintf("Above %.0f%% the adjuster is doing too much of the job.", in.BandMaxPct),
		}, nil
	default:
		return AuthorityBandResult{
			Status: "within",
			Notes:  "Authority inside the target band.",
		}, nil
	}
}
