package spectral

import (
	"math"
	"testing"
)

func TestResample_Constant(t *testing.T) {
	// 常数光谱重采样后仍为常数
	src := ASDBandCenters()
	spectrum := make([]float64, len(src))
	for i := range spectrum {
		spectrum[i] = 0.5
	}

	r, err := NewBandResampler(src, []float64{560, 860, 1600}, nil, []float64{60, 30, 90})
	if err != nil {
		t.Fatalf("NewBandResampler failed: %v", err)
	}
	out, err := r.Resample(spectrum)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	for i, v := range out {
		if math.Abs(v-0.5) > 1e-9 {
			t.Errorf("band %d = %v, want 0.5", i, v)
		}
	}
}

func TestResample_WeightsCentered(t *testing.T) {
	// 峰值光谱的响应应集中在目标波段中心附近
	src := ASDBandCenters()
	peak := make([]float64, len(src))
	for i, c := range src {
		if c == 860 {
			peak[i] = 1.0
		}
	}

	r, err := NewBandResampler(src, []float64{860, 1600}, nil, []float64{30, 90})
	if err != nil {
		t.Fatalf("NewBandResampler failed: %v", err)
	}
	out, err := r.Resample(peak)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if out[0] <= 0 {
		t.Errorf("response at peak band = %v, want > 0", out[0])
	}
	if out[1] != 0 {
		t.Errorf("response at distant band = %v, want 0", out[1])
	}
}

func TestResample_NoCoverage(t *testing.T) {
	// 源网格覆盖不到的目标波段输出NaN
	src := ASDBandCenters()
	spectrum := make([]float64, len(src))

	r, err := NewBandResampler(src, []float64{5000}, nil, []float64{20})
	if err != nil {
		t.Fatalf("NewBandResampler failed: %v", err)
	}
	out, err := r.Resample(spectrum)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if !math.IsNaN(out[0]) {
		t.Errorf("uncovered band = %v, want NaN", out[0])
	}
}

func TestResample_SkipsNaN(t *testing.T) {
	// 源数据中的NaN跳过并按剩余权重重新归一
	src := ASDBandCenters()
	spectrum := make([]float64, len(src))
	for i := range spectrum {
		spectrum[i] = 0.5
	}
	for i, c := range src {
		if c == 560 {
			spectrum[i] = math.NaN()
		}
	}

	r, err := NewBandResampler(src, []float64{560}, nil, []float64{60})
	if err != nil {
		t.Fatalf("NewBandResampler failed: %v", err)
	}
	out, err := r.Resample(spectrum)
	if err != nil {
		t.Fatalf("Resample failed: %v", err)
	}
	if math.Abs(out[0]-0.5) > 1e-9 {
		t.Errorf("resampled with NaN source = %v, want 0.5", out[0])
	}
}

func TestResample_LengthMismatch(t *testing.T) {
	r, err := NewBandResampler(ASDBandCenters(), []float64{560}, nil, []float64{60})
	if err != nil {
		t.Fatalf("NewBandResampler failed: %v", err)
	}
	if _, err := r.Resample([]float64{0.1, 0.2}); err == nil {
		t.Error("expected error for mismatched spectrum length, got nil")
	}
}

func TestResampleLibrary(t *testing.T) {
	lib := NewASDLibrary(3)
	for _, row := range lib.Spectra {
		for i := range row {
			row[i] = 0.25
		}
	}
	r, err := NewBandResampler(lib.BandCenters, []float64{560, 1600}, nil, []float64{60, 90})
	if err != nil {
		t.Fatalf("NewBandResampler failed: %v", err)
	}
	out, err := r.ResampleLibrary(lib)
	if err != nil {
		t.Fatalf("ResampleLibrary failed: %v", err)
	}
	if out.Count() != 3 {
		t.Errorf("resampled count = %d, want 3", out.Count())
	}
	if len(out.BandCenters) != 2 {
		t.Errorf("resampled bands = %d, want 2", len(out.BandCenters))
	}
	if math.Abs(out.Spectra[2][1]-0.25) > 1e-9 {
		t.Errorf("resampled value = %v, want 0.25", out.Spectra[2][1])
	}
}

func TestInferFWHM(t *testing.T) {
	fwhm := inferFWHM([]float64{400, 410, 430})
	want := []float64{10, 15, 20}
	for i := range want {
		if fwhm[i] != want[i] {
			t.Errorf("fwhm[%d] = %v, want %v", i, fwhm[i], want[i])
		}
	}
}

func TestNewBandResampler_Invalid(t *testing.T) {
	if _, err := NewBandResampler([]float64{400}, []float64{560}, nil, nil); err == nil {
		t.Error("expected error for single source band, got nil")
	}
	if _, err := NewBandResampler([]float64{400, 500}, nil, nil, nil); err == nil {
		t.Error("expected error for no target bands, got nil")
	}
	if _, err := NewBandResampler([]float64{400, 500}, []float64{450}, []float64{10}, nil); err == nil {
		t.Error("expected error for mismatched source fwhm, got nil")
	}
}
