package spectral

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ASD参考波长网格: 350-2500nm, 10nm间隔, 共216个波段
const (
	ASDMinWavelength  = 350.0
	ASDMaxWavelength  = 2500.0
	ASDWavelengthStep = 10.0
	ASDBandCount      = 216
)

// 水汽吸收波段范围(nm), 反射率数据在这些区间内不可靠
var waterBands = [2][2]float64{
	{1350.0, 1460.0},
	{1790.0, 1960.0},
}

// Library 光谱库, 保存一组同一波长网格下的反射率光谱
type Library struct {
	Names       []string    `json:"names"`
	BandCenters []float64   `json:"bandCenters"`
	BandUnit    string      `json:"bandUnit"`
	Spectra     [][]float64 `json:"spectra"`
}

// ASDBandCenters 返回ASD参考网格的波段中心波长
func ASDBandCenters() []float64 {
	centers := make([]float64, ASDBandCount)
	for i := range centers {
		centers[i] = ASDMinWavelength + float64(i)*ASDWavelengthStep
	}
	return centers
}

// NewLibrary 创建一个指定条数的空光谱库
func NewLibrary(nSpectra int, bandCenters []float64) *Library {
	lib := &Library{
		Names:       make([]string, nSpectra),
		BandCenters: bandCenters,
		BandUnit:    "Nanometers",
		Spectra:     make([][]float64, nSpectra),
	}
	for i := range lib.Spectra {
		lib.Names[i] = fmt.Sprintf("Spectrum %d", i)
		lib.Spectra[i] = make([]float64, len(bandCenters))
	}
	return lib
}

// NewASDLibrary 创建一个ASD参考网格的空光谱库
func NewASDLibrary(nSpectra int) *Library {
	return NewLibrary(nSpectra, ASDBandCenters())
}

// SameGrid 判断两个波长网格是否一致
func SameGrid(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Count 返回光谱条数
func (l *Library) Count() int {
	return len(l.Spectra)
}

// Append 向光谱库追加一条光谱
func (l *Library) Append(name string, reflectance []float64) error {
	if len(reflectance) != len(l.BandCenters) {
		return fmt.Errorf("spectrum length %d does not match library bands %d",
			len(reflectance), len(l.BandCenters))
	}
	l.Names = append(l.Names, name)
	l.Spectra = append(l.Spectra, reflectance)
	return nil
}

// RemoveWaterBands 将水汽吸收波段的反射率置为0或NaN
func (l *Library) RemoveWaterBands(setNaN bool) {
	val := 0.0
	if setNaN {
		val = math.NaN()
	}
	for _, wb := range waterBands {
		lo, hi := wb[0], wb[1]
		if strings.EqualFold(l.BandUnit, "Micrometers") {
			lo /= 1000.0
			hi /= 1000.0
		}
		for i, c := range l.BandCenters {
			if c > lo && c < hi {
				for _, row := range l.Spectra {
					row[i] = val
				}
			}
		}
	}
}

// ShortwaveBands 返回严格落在短波范围(350-2500nm)开区间内的波段下标
func (l *Library) ShortwaveBands() []int {
	lo, hi := ASDMinWavelength, ASDMaxWavelength
	if strings.EqualFold(l.BandUnit, "Micrometers") {
		lo /= 1000.0
		hi /= 1000.0
	}
	var inds []int
	for i, c := range l.BandCenters {
		if c > lo && c < hi {
			inds = append(inds, i)
		}
	}
	return inds
}

// BrightnessNormalize 对指定波段下标做亮度归一化(行向量除以L2范数)
// inds为nil时使用全部波段
func (l *Library) BrightnessNormalize(inds []int) {
	if inds == nil {
		inds = make([]int, len(l.BandCenters))
		for i := range inds {
			inds[i] = i
		}
	}
	for r, row := range l.Spectra {
		sub := make([]float64, len(inds))
		var sum float64
		for j, i := range inds {
			sub[j] = row[i]
			sum += row[i] * row[i]
		}
		norm := math.Sqrt(sum)
		if norm > 0 {
			for j := range sub {
				sub[j] /= norm
			}
		}
		l.Spectra[r] = sub
	}
	centers := make([]float64, len(inds))
	for j, i := range inds {
		centers[j] = l.BandCenters[i]
	}
	l.BandCenters = centers
}

// ReadCSV 读取宽表格式的光谱CSV
// 表头为 name 列加波长列, 每行一条光谱
// 微米单位自动转为纳米, 百分比反射率自动缩放到0-1
func ReadCSV(r io.Reader) (*Library, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %v", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("csv header needs a name column and at least one wavelength column")
	}

	centers := make([]float64, 0, len(header)-1)
	for _, h := range header[1:] {
		wl, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid wavelength column %q: %v", h, err)
		}
		centers = append(centers, wl)
	}
	for i := 1; i < len(centers); i++ {
		if centers[i] <= centers[i-1] {
			return nil, fmt.Errorf("wavelength columns must increase: %v before %v",
				centers[i-1], centers[i])
		}
	}

	// 微米转纳米
	unit := "Nanometers"
	if centers[len(centers)-1] < 100 {
		for i := range centers {
			centers[i] *= 1000.0
		}
	}

	lib := &Library{BandCenters: centers, BandUnit: unit}
	maxRefl := 0.0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %v", err)
		}
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %q has %d columns, want %d", rec[0], len(rec), len(header))
		}
		row := make([]float64, len(centers))
		for i, field := range rec[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				row[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %q: invalid reflectance %q: %v", rec[0], field, err)
			}
			row[i] = v
			if !math.IsNaN(v) && v > maxRefl {
				maxRefl = v
			}
		}
		lib.Names = append(lib.Names, strings.TrimSpace(rec[0]))
		lib.Spectra = append(lib.Spectra, row)
	}
	if len(lib.Spectra) == 0 {
		return nil, fmt.Errorf("csv contains no spectra")
	}

	// 百分比反射率缩放到0-1
	if maxRefl > 1.5 {
		for _, row := range lib.Spectra {
			for i := range row {
				row[i] /= 100.0
			}
		}
	}

	return lib, nil
}
