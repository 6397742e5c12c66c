package spectral

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed data/collections.json
var collectionsJSON []byte

// Collection 传感器影像集参数
type Collection struct {
	Collection       string    `json:"collection"`
	Scale            float64   `json:"scale"`
	BandNames        []string  `json:"band_names"`
	BandDescriptions []string  `json:"band_descriptions"`
	BandCenters      []float64 `json:"band_centers"`
	BandWidths       []float64 `json:"band_widths"`
}

var collections map[string]Collection

func init() {
	if err := json.Unmarshal(collectionsJSON, &collections); err != nil {
		panic(fmt.Sprintf("failed to parse embedded collections manifest: %v", err))
	}
}

// ListSensors 返回支持的传感器名称列表
func ListSensors() []string {
	sensors := make([]string, 0, len(collections))
	for name := range collections {
		sensors = append(sensors, name)
	}
	sort.Strings(sensors)
	return sensors
}

// GetCollection 返回指定传感器的影像集参数
func GetCollection(sensor string) (Collection, error) {
	c, ok := collections[sensor]
	if !ok {
		return Collection{}, fmt.Errorf("unknown sensor %q, valid values from ListSensors()", sensor)
	}
	return c, nil
}

// GetScaler 返回传感器数据转0-1反射率的缩放系数
func GetScaler(sensor string) (float64, error) {
	c, err := GetCollection(sensor)
	if err != nil {
		return 0, err
	}
	return c.Scale, nil
}

// GetBands 返回传感器的波段名称列表
func GetBands(sensor string) ([]string, error) {
	c, err := GetCollection(sensor)
	if err != nil {
		return nil, err
	}
	return c.BandNames, nil
}

// GetBandIndices 把波段名称列表换算为0起始的波段下标, 结果升序
// 不认识的波段名被忽略
func GetBandIndices(bands []string, sensor string) ([]int, error) {
	c, err := GetCollection(sensor)
	if err != nil {
		return nil, err
	}
	var indices []int
	for _, band := range bands {
		for i, name := range c.BandNames {
			if name == band {
				indices = append(indices, i)
				break
			}
		}
	}
	sort.Ints(indices)
	return indices, nil
}

// SensorResampler 创建从给定源网格到指定传感器波段的重采样器
// bands为nil时使用传感器全部波段
func SensorResampler(srcCenters []float64, sensor string, bands []int) (*BandResampler, error) {
	c, err := GetCollection(sensor)
	if err != nil {
		return nil, err
	}
	if bands == nil {
		bands = make([]int, len(c.BandNames))
		for i := range bands {
			bands[i] = i
		}
	}
	centers := make([]float64, len(bands))
	widths := make([]float64, len(bands))
	for j, i := range bands {
		if i < 0 || i >= len(c.BandCenters) {
			return nil, fmt.Errorf("band index %d out of range for sensor %q", i, sensor)
		}
		centers[j] = c.BandCenters[i]
		widths[j] = c.BandWidths[i]
	}
	return NewBandResampler(srcCenters, centers, nil, widths)
}
