package spectral

import (
	"fmt"
	"math/rand"
)

// 光谱分类标签的层级数 (LEVEL_1到LEVEL_4)
const ClassLevels = 4

// Metadata 光谱的分类元数据, 与光谱库的行一一对应
type Metadata struct {
	Name   string              `json:"name"`
	Levels [ClassLevels]string `json:"levels"`
	Lat    float64             `json:"lat"`
	Lon    float64             `json:"lon"`
	Source string              `json:"source"`
	Notes  string              `json:"notes"`
}

// ListTypes 返回某一分类层级下的全部类别
func ListTypes(meta []Metadata, level int) ([]string, error) {
	if level < 1 || level > ClassLevels {
		return nil, fmt.Errorf("level must be 1-%d, got %d", ClassLevels, level)
	}
	seen := make(map[string]bool)
	var types []string
	for _, m := range meta {
		v := m.Levels[level-1]
		if v != "" && !seen[v] {
			seen[v] = true
			types = append(types, v)
		}
	}
	return types, nil
}

// TypeLevel 返回类别所在的分类层级, 未找到时返回0
func TypeLevel(meta []Metadata, class string) int {
	for level := 1; level <= ClassLevels; level++ {
		types, _ := ListTypes(meta, level)
		for _, t := range types {
			if t == class {
				return level
			}
		}
	}
	return 0
}

// SelectSpectra 从光谱库中选取指定类别的端元并重采样到传感器波段
// n>0时随机抽取n条, n=0返回全部
// bands为nil时使用传感器全部波段
func SelectSpectra(lib *Library, meta []Metadata, class, sensor string, n int, bands []int) ([][]float64, error) {
	if len(meta) != lib.Count() {
		return nil, fmt.Errorf("metadata rows %d do not match library spectra %d",
			len(meta), lib.Count())
	}
	level := TypeLevel(meta, class)
	if level == 0 {
		return nil, fmt.Errorf("unknown spectra class %q, valid values from ListTypes()", class)
	}

	resampler, err := SensorResampler(lib.BandCenters, sensor, bands)
	if err != nil {
		return nil, err
	}

	var selected [][]float64
	for i, m := range meta {
		if m.Levels[level-1] == class {
			selected = append(selected, lib.Spectra[i])
		}
	}

	// 随机抽样, 与原始库行为一致允许重复抽取
	if n > 0 {
		sampled := make([][]float64, n)
		for i := range sampled {
			sampled[i] = selected[rand.Intn(len(selected))]
		}
		selected = sampled
	}

	out := make([][]float64, len(selected))
	for i, row := range selected {
		resampled, err := resampler.Resample(row)
		if err != nil {
			return nil, err
		}
		out[i] = resampled
	}
	return out, nil
}
