package spectral

import (
	"math"
	"testing"
)

func TestListSensors(t *testing.T) {
	sensors := ListSensors()
	found := false
	for _, s := range sensors {
		if s == "Sentinel2" {
			found = true
		}
	}
	if !found {
		t.Errorf("sensors = %v, want Sentinel2 included", sensors)
	}
}

func TestGetCollection(t *testing.T) {
	c, err := GetCollection("Sentinel2")
	if err != nil {
		t.Fatalf("GetCollection failed: %v", err)
	}
	if c.Collection != "COPERNICUS/S2_SR" {
		t.Errorf("collection = %q, want COPERNICUS/S2_SR", c.Collection)
	}
	if len(c.BandNames) != len(c.BandCenters) || len(c.BandNames) != len(c.BandWidths) {
		t.Errorf("band table lengths mismatch: names %d centers %d widths %d",
			len(c.BandNames), len(c.BandCenters), len(c.BandWidths))
	}

	if _, err := GetCollection("NoSuchSensor"); err == nil {
		t.Error("expected error for unknown sensor, got nil")
	}
}

func TestGetScaler(t *testing.T) {
	scale, err := GetScaler("Sentinel2")
	if err != nil {
		t.Fatalf("GetScaler failed: %v", err)
	}
	if scale != 0.0001 {
		t.Errorf("scale = %v, want 0.0001", scale)
	}
}

func TestGetBands(t *testing.T) {
	bands, err := GetBands("Sentinel2")
	if err != nil {
		t.Fatalf("GetBands failed: %v", err)
	}
	found := false
	for _, b := range bands {
		if b == "B8" {
			found = true
		}
	}
	if !found {
		t.Errorf("bands = %v, want B8 included", bands)
	}
}

func TestGetBandIndices(t *testing.T) {
	indices, err := GetBandIndices([]string{"B8", "B2"}, "Sentinel2")
	if err != nil {
		t.Fatalf("GetBandIndices failed: %v", err)
	}
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 6 {
		t.Errorf("indices = %v, want [0 6]", indices)
	}

	// 不认识的波段名被忽略
	indices, err = GetBandIndices([]string{"B99"}, "Sentinel2")
	if err != nil {
		t.Fatalf("GetBandIndices failed: %v", err)
	}
	if len(indices) != 0 {
		t.Errorf("indices = %v, want empty", indices)
	}
}

func TestSensorResampler(t *testing.T) {
	src := ASDBandCenters()
	spectrum := make([]float64, len(src))
	for i := range spectrum {
		spectrum[i] = 0.4
	}

	r, err := SensorResampler(src, "Sentinel2", nil)
	if err != nil {
		t.Fatalf("SensorResampler failed: %v", err)
	}
	out, err := r.Resample(spectrum)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if len(out) != 10 {
		t.Errorf("resampled bands = %d, want 10", len(out))
	}
	for i, v := range out {
		if math.Abs(v-0.4) > 1e-9 {
			t.Errorf("band %d = %v, want 0.4", i, v)
		}
	}

	r, err = SensorResampler(src, "Sentinel2", []int{0, 2})
	if err != nil {
		t.Fatalf("SensorResampler with subset failed: %v", err)
	}
	if len(r.DstCenters) != 2 {
		t.Errorf("subset bands = %d, want 2", len(r.DstCenters))
	}

	if _, err := SensorResampler(src, "Sentinel2", []int{99}); err == nil {
		t.Error("expected error for out-of-range band index, got nil")
	}
	if _, err := SensorResampler(src, "NoSuchSensor", nil); err == nil {
		t.Error("expected error for unknown sensor, got nil")
	}
}
