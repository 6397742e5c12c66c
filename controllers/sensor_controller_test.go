package controllers

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go-soilspec/spectral"
)

// newSensorRouter 注册不依赖数据库的传感器路由
func newSensorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	c := NewSensorController(nil)
	r := gin.New()
	r.GET("/sensors", c.GetSensors)
	r.GET("/sensors/collection", c.GetSensorCollection)
	r.GET("/sensors/bands", c.GetSensorBands)
	r.POST("/spectra/resample", c.ResampleSpectra)
	return r
}

func TestGetSensors(t *testing.T) {
	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sensors", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Code int      `json:"code"`
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"Landsat8", "MODIS", "Sentinel2"}
	if len(resp.Data) != len(want) {
		t.Fatalf("sensors = %v, want %v", resp.Data, want)
	}
	for i, s := range want {
		if resp.Data[i] != s {
			t.Errorf("sensors[%d] = %q, want %q", i, resp.Data[i], s)
		}
	}
}

func TestGetSensorBands(t *testing.T) {
	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sensors/bands?sensor=Sentinel2", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Data []string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 10 {
		t.Errorf("len(bands) = %d, want 10", len(resp.Data))
	}
	if resp.Data[6] != "B8" {
		t.Errorf("bands[6] = %q, want B8", resp.Data[6])
	}
}

func TestGetSensorBandsUnknownSensor(t *testing.T) {
	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sensors/bands?sensor=ASTER", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestGetSensorCollection(t *testing.T) {
	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/sensors/collection?sensor=Landsat8", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Data spectral.Collection `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Collection != "LANDSAT/LC08/C01/T1_SR" {
		t.Errorf("collection = %q, want LANDSAT/LC08/C01/T1_SR", resp.Data.Collection)
	}
	if resp.Data.Scale != 0.0001 {
		t.Errorf("scale = %v, want 0.0001", resp.Data.Scale)
	}
	if len(resp.Data.BandNames) != 7 {
		t.Errorf("len(bandNames) = %d, want 7", len(resp.Data.BandNames))
	}
}

func TestResampleSpectra(t *testing.T) {
	// 常数光谱重采样后各波段仍为常数
	spectrum := make([]float64, spectral.ASDBandCount)
	for i := range spectrum {
		spectrum[i] = 0.5
	}
	body, _ := json.Marshal(ResampleRequest{
		Sensor:  "Landsat8",
		Spectra: [][]float64{spectrum},
	})

	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/spectra/resample", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Sensor      string      `json:"sensor"`
			BandCenters []float64   `json:"bandCenters"`
			Spectra     [][]float64 `json:"spectra"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Spectra) != 1 {
		t.Fatalf("len(spectra) = %d, want 1", len(resp.Data.Spectra))
	}
	if len(resp.Data.Spectra[0]) != 7 {
		t.Fatalf("len(spectra[0]) = %d, want 7", len(resp.Data.Spectra[0]))
	}
	for i, v := range resp.Data.Spectra[0] {
		if math.Abs(v-0.5) > 1e-6 {
			t.Errorf("spectra[0][%d] = %v, want 0.5", i, v)
		}
	}
}

func TestResampleSpectraBandSubset(t *testing.T) {
	spectrum := make([]float64, spectral.ASDBandCount)
	for i := range spectrum {
		spectrum[i] = 0.2
	}
	body, _ := json.Marshal(ResampleRequest{
		Sensor:  "Sentinel2",
		Bands:   []string{"B8", "B4"},
		Spectra: [][]float64{spectrum},
	})

	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/spectra/resample", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			BandCenters []float64   `json:"bandCenters"`
			Spectra     [][]float64 `json:"spectra"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// B4与B8按下标升序输出
	wantCenters := []float64{665, 842}
	if len(resp.Data.BandCenters) != len(wantCenters) {
		t.Fatalf("bandCenters = %v, want %v", resp.Data.BandCenters, wantCenters)
	}
	for i, c := range wantCenters {
		if resp.Data.BandCenters[i] != c {
			t.Errorf("bandCenters[%d] = %v, want %v", i, resp.Data.BandCenters[i], c)
		}
	}
}

func TestResampleSpectraUnknownBandsOnly(t *testing.T) {
	// 全部波段名都不认识时必须报错, 不能退化成全部波段
	spectrum := make([]float64, spectral.ASDBandCount)
	body, _ := json.Marshal(ResampleRequest{
		Sensor:  "Sentinel2",
		Bands:   []string{"B99"},
		Spectra: [][]float64{spectrum},
	})

	r := newSensorRouter()
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/spectra/resample", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestBandIndicesUnknownOnly(t *testing.T) {
	if _, err := bandIndices([]string{"B99", "B100"}, "Sentinel2"); err == nil {
		t.Error("expected error for all-unknown band names, got nil")
	}
	// 不请求波段仍然返回nil表示全部
	indices, err := bandIndices(nil, "Sentinel2")
	if err != nil {
		t.Fatalf("bandIndices(nil) failed: %v", err)
	}
	if indices != nil {
		t.Errorf("indices = %v, want nil", indices)
	}
}

func TestResampleSpectraBadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing sensor", `{"spectra":[[0.1,0.2]]}`},
		{"unknown sensor", `{"sensor":"ASTER","spectra":[[0.1,0.2]]}`},
		{"wrong spectrum length", `{"sensor":"Landsat8","spectra":[[0.1,0.2,0.3]]}`},
	}

	r := newSensorRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/spectra/resample", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}
