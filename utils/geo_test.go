package utils

import (
	"math"
	"testing"
)

func TestDMSToDD(t *testing.T) {
	cases := []struct {
		deg, min, sec float64
		hemi          string
		want          float64
	}{
		{6, 30, 0, "N", 6.5},
		{6, 30, 0, "S", -6.5},
		{120, 15, 36, "E", 120.26},
		{120, 15, 36, "W", -120.26},
		{0, 0, 0, "", 0},
	}
	for _, c := range cases {
		got := DMSToDD(c.deg, c.min, c.sec, c.hemi)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("DMSToDD(%v, %v, %v, %q) = %v, want %v",
				c.deg, c.min, c.sec, c.hemi, got, c.want)
		}
	}
}

func TestPlotcode(t *testing.T) {
	if got := Plotcode("ke", 12); got != "KE 12" {
		t.Errorf("Plotcode = %q, want \"KE 12\"", got)
	}
	if got := Plotcode(" CI ", 3); got != "CI 3" {
		t.Errorf("Plotcode = %q, want \"CI 3\"", got)
	}
}
