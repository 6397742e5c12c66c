package spectral

import (
	"fmt"
	"math"
)

// 高斯响应函数的截断距离(以FWHM为单位), 超出后权重视为0
const responseCutoff = 2.0

// BandResampler 波段重采样器
// 把源波长网格上的光谱卷积到目标传感器的波段中心/带宽上
// 每个目标波段按FWHM建模为高斯响应函数, 对源波段区间积分得到权重
type BandResampler struct {
	SrcCenters []float64
	DstCenters []float64
	weights    [][]float64
}

// NewBandResampler 创建重采样器
// srcFWHM或dstFWHM为nil时按相邻波段间距推算
func NewBandResampler(srcCenters, dstCenters, srcFWHM, dstFWHM []float64) (*BandResampler, error) {
	if len(srcCenters) < 2 {
		return nil, fmt.Errorf("need at least 2 source bands, got %d", len(srcCenters))
	}
	if len(dstCenters) == 0 {
		return nil, fmt.Errorf("no target bands given")
	}
	if srcFWHM == nil {
		srcFWHM = inferFWHM(srcCenters)
	}
	if dstFWHM == nil {
		dstFWHM = inferFWHM(dstCenters)
	}
	if len(srcFWHM) != len(srcCenters) {
		return nil, fmt.Errorf("source fwhm length %d does not match centers %d",
			len(srcFWHM), len(srcCenters))
	}
	if len(dstFWHM) != len(dstCenters) {
		return nil, fmt.Errorf("target fwhm length %d does not match centers %d",
			len(dstFWHM), len(dstCenters))
	}

	r := &BandResampler{
		SrcCenters: srcCenters,
		DstCenters: dstCenters,
		weights:    make([][]float64, len(dstCenters)),
	}
	for j, dc := range dstCenters {
		sigma := dstFWHM[j] / (2.0 * math.Sqrt(2.0*math.Log(2.0)))
		w := make([]float64, len(srcCenters))
		var sum float64
		for i, sc := range srcCenters {
			if math.Abs(sc-dc) > responseCutoff*dstFWHM[j] {
				continue
			}
			// 源波段区间上的高斯积分
			a := sc - srcFWHM[i]/2.0
			b := sc + srcFWHM[i]/2.0
			w[i] = gaussIntegral(a, b, dc, sigma)
			sum += w[i]
		}
		if sum > 0 {
			for i := range w {
				w[i] /= sum
			}
			r.weights[j] = w
		} else {
			// 没有源波段覆盖该目标波段
			r.weights[j] = nil
		}
	}
	return r, nil
}

// Resample 对单条光谱做重采样
// 无覆盖的目标波段输出NaN, 源数据中的NaN按剩余权重重新归一
func (r *BandResampler) Resample(spectrum []float64) ([]float64, error) {
	if len(spectrum) != len(r.SrcCenters) {
		return nil, fmt.Errorf("spectrum length %d does not match source bands %d",
			len(spectrum), len(r.SrcCenters))
	}
	out := make([]float64, len(r.DstCenters))
	for j, w := range r.weights {
		if w == nil {
			out[j] = math.NaN()
			continue
		}
		var sum, wsum float64
		for i, v := range spectrum {
			if w[i] == 0 || math.IsNaN(v) {
				continue
			}
			sum += w[i] * v
			wsum += w[i]
		}
		if wsum == 0 {
			out[j] = math.NaN()
		} else {
			out[j] = sum / wsum
		}
	}
	return out, nil
}

// ResampleLibrary 对整个光谱库做重采样, 返回新库
func (r *BandResampler) ResampleLibrary(lib *Library) (*Library, error) {
	out := &Library{
		Names:       append([]string(nil), lib.Names...),
		BandCenters: append([]float64(nil), r.DstCenters...),
		BandUnit:    lib.BandUnit,
		Spectra:     make([][]float64, len(lib.Spectra)),
	}
	for i, row := range lib.Spectra {
		resampled, err := r.Resample(row)
		if err != nil {
			return nil, fmt.Errorf("spectrum %q: %v", lib.Names[i], err)
		}
		out.Spectra[i] = resampled
	}
	return out, nil
}

// inferFWHM 按相邻波段中心间距推算FWHM
func inferFWHM(centers []float64) []float64 {
	fwhm := make([]float64, len(centers))
	for i := range centers {
		switch {
		case len(centers) == 1:
			fwhm[i] = 10.0
		case i == 0:
			fwhm[i] = centers[1] - centers[0]
		case i == len(centers)-1:
			fwhm[i] = centers[i] - centers[i-1]
		default:
			fwhm[i] = (centers[i+1] - centers[i-1]) / 2.0
		}
	}
	return fwhm
}

// gaussIntegral 计算均值dc标准差sigma的高斯函数在[a,b]上的积分
func gaussIntegral(a, b, dc, sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	den := sigma * math.Sqrt2
	return 0.5 * (math.Erf((b-dc)/den) - math.Erf((a-dc)/den))
}
