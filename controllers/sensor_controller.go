package controllers

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"go-soilspec/spectral"
	"go-soilspec/utils"
)

// SensorController 处理传感器参数与端元重采样相关的请求
type SensorController struct {
	DB *sql.DB
}

// NewSensorController 创建一个新的SensorController实例
func NewSensorController(db *sql.DB) *SensorController {
	return &SensorController{DB: db}
}

// GetSensors 获取支持的传感器列表
func (c *SensorController) GetSensors(ctx *gin.Context) {
	utils.Success(ctx, spectral.ListSensors())
}

// GetSensorCollection 获取传感器的影像集参数
func (c *SensorController) GetSensorCollection(ctx *gin.Context) {
	sensor := ctx.Query("sensor")
	collection, err := spectral.GetCollection(sensor)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	utils.Success(ctx, collection)
}

// GetSensorBands 获取传感器的波段名称列表
func (c *SensorController) GetSensorBands(ctx *gin.Context) {
	sensor := ctx.Query("sensor")
	bands, err := spectral.GetBands(sensor)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	utils.Success(ctx, bands)
}

// ResampleRequest 重采样请求
// Spectra为ASD参考网格(350-2500nm, 10nm)上的反射率
// Bands可选, 按波段名限定输出波段
type ResampleRequest struct {
	Sensor  string      `json:"sensor" binding:"required"`
	Bands   []string    `json:"bands"`
	Spectra [][]float64 `json:"spectra" binding:"required"`
}

// ResampleSpectra 把提交的光谱重采样到传感器波段
func (c *SensorController) ResampleSpectra(ctx *gin.Context) {
	var req ResampleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	bands, err := bandIndices(req.Bands, req.Sensor)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	resampler, err := spectral.SensorResampler(spectral.ASDBandCenters(), req.Sensor, bands)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	resampled := make([][]float64, len(req.Spectra))
	for i, spectrum := range req.Spectra {
		out, err := resampler.Resample(spectrum)
		if err != nil {
			utils.BadRequest(ctx, err.Error())
			return
		}
		resampled[i] = out
	}

	utils.Success(ctx, gin.H{
		"sensor":      req.Sensor,
		"bandCenters": resampler.DstCenters,
		"spectra":     resampled,
	})
}

// GetEndmembers 按分类选取端元光谱并重采样到传感器波段
// 查询参数: class传感器类别, sensor传感器名, n随机抽样条数(0为全部), bands波段名逗号分隔
func (c *SensorController) GetEndmembers(ctx *gin.Context) {
	class := ctx.Query("class")
	sensor := ctx.Query("sensor")
	if class == "" || sensor == "" {
		utils.BadRequest(ctx, "class和sensor不能为空")
		return
	}
	n, _ := strconv.Atoi(ctx.DefaultQuery("n", "0"))

	bands, err := bandIndices(splitBands(ctx.Query("bands")), sensor)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	lib, meta, err := loadSpectraLibrary(c.DB, "")
	if err != nil {
		utils.InternalServerError(ctx, "查询光谱库失败")
		return
	}
	if lib.Count() == 0 {
		utils.NotFound(ctx, "光谱库为空")
		return
	}

	endmembers, err := spectral.SelectSpectra(lib, meta, class, sensor, n, bands)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	utils.Success(ctx, gin.H{
		"class":      class,
		"sensor":     sensor,
		"endmembers": endmembers,
	})
}

// UnmixPrepareRequest 解混载荷准备请求
// Classes为空时使用默认的五类端元
type UnmixPrepareRequest struct {
	Sensor  string   `json:"sensor" binding:"required"`
	N       int      `json:"n"`
	Bands   []string `json:"bands"`
	Classes []string `json:"classes"`
}

// 默认端元类别, 与参考库的LEVEL_2标签对应
var defaultUnmixClasses = []string{"vegetation", "npv", "bare", "burn", "urban"}

// PrepareUnmix 组装提交给外部解混平台的端元载荷
// 每类端元重采样到传感器波段后按类别分组返回, 解混计算本身由外部平台完成
func (c *SensorController) PrepareUnmix(ctx *gin.Context) {
	var req UnmixPrepareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if req.N <= 0 {
		req.N = 30
	}
	classes := req.Classes
	if len(classes) == 0 {
		classes = defaultUnmixClasses
	}

	collection, err := spectral.GetCollection(req.Sensor)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	bands, err := bandIndices(req.Bands, req.Sensor)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	bandNames := collection.BandNames
	if bands != nil {
		bandNames = make([]string, len(bands))
		for i, b := range bands {
			bandNames[i] = collection.BandNames[b]
		}
	}

	lib, meta, err := loadSpectraLibrary(c.DB, "")
	if err != nil {
		utils.InternalServerError(ctx, "查询光谱库失败")
		return
	}
	if lib.Count() == 0 {
		utils.NotFound(ctx, "光谱库为空")
		return
	}

	endmembers := make(map[string][][]float64, len(classes))
	for _, class := range classes {
		selected, err := spectral.SelectSpectra(lib, meta, class, req.Sensor, req.N, bands)
		if err != nil {
			utils.BadRequest(ctx, err.Error())
			return
		}
		endmembers[class] = selected
	}

	utils.Success(ctx, gin.H{
		"sensor":     req.Sensor,
		"collection": collection.Collection,
		"scale":      collection.Scale,
		"bandNames":  bandNames,
		"endmembers": endmembers,
	})
}

// bandIndices 波段名列表换算为下标, names为空时返回nil表示全部波段
// 请求了波段但没有一个匹配时报错, 不能退化成全部波段
func bandIndices(names []string, sensor string) ([]int, error) {
	if len(names) == 0 {
		return nil, nil
	}
	indices, err := spectral.GetBandIndices(names, sensor)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("no bands of sensor %q match the requested names %v", sensor, names)
	}
	return indices, nil
}

// splitBands 拆分逗号分隔的波段名参数
func splitBands(s string) []string {
	if s == "" {
		return nil
	}
	var names []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
