package recommend

import "testing"

func TestAuthorityBandDefaults(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{10, "below"},
		{15, "within"},
		{17.5, "within"},
		{20, "within"},
		{30.8, "above"},
	}
	for _, c := range cases {
		res, err := AuthorityBand(AuthorityBandInput{AuthorityPct: c.pct})
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != c.want {
			t.Fatalf("%v%%: status %q, want %q", c.pct, res.Status, c.want)
		}
	}
}

func TestAuthorityBandCustomBand(t *testing.T) {
	res, err := AuthorityBand(AuthorityBandInput{AuthorityPct: 25, BandMinPct: 20, BandMaxPct: 30})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != "within" {
		t.Fatalf("status %q, want within", res.Status)
	}
}

func TestAuthorityBandInvalid(t *testing.T) {
	if _, err := AuthorityBand(AuthorityBandInput{AuthorityPct: -1}); err == nil {
		t.Fatal("expected error for negative authority")
	}
	if _, err := AuthorityBand(AuthorityBandInput{AuthorityPct: 10, BandMinPct: 20, BandMaxPct: 15}); err == nil {
		t.Fatal("expected error for inverted band")
	}
}
