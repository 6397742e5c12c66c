package controllers

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"go-soilspec/models"
	"go-soilspec/spectral"
	"go-soilspec/utils"
)

// SpectraController 处理光谱库相关的请求
type SpectraController struct {
	DB *sql.DB
}

// NewSpectraController 创建一个新的SpectraController实例
func NewSpectraController(db *sql.DB) *SpectraController {
	return &SpectraController{DB: db}
}

const spectraColumns = `batch_labid, iso, profile_id, lat, lon,
	level_1, level_2, level_3, level_4, source, notes, refl, created_at`

// UploadSpectra 上传宽表CSV光谱文件
// 表单字段: file为CSV文件, level1-level4与source为整批的分类标签
// 波长网格与ASD参考网格不一致时先重采样到参考网格再入库
func (c *SpectraController) UploadSpectra(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		utils.BadRequest(ctx, "缺少光谱CSV文件")
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}
	defer f.Close()

	lib, err := spectral.ReadCSV(f)
	if err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	// 统一到参考网格
	asd := spectral.ASDBandCenters()
	if !spectral.SameGrid(lib.BandCenters, asd) {
		resampler, err := spectral.NewBandResampler(lib.BandCenters, asd, nil, nil)
		if err != nil {
			utils.BadRequest(ctx, err.Error())
			return
		}
		lib, err = resampler.ResampleLibrary(lib)
		if err != nil {
			utils.BadRequest(ctx, err.Error())
			return
		}
	}

	levels := [4]string{
		ctx.PostForm("level1"), ctx.PostForm("level2"),
		ctx.PostForm("level3"), ctx.PostForm("level4"),
	}
	source := ctx.PostForm("source")
	notes := ctx.PostForm("notes")

	// 开始事务
	tx, err := c.DB.Begin()
	if err != nil {
		utils.InternalServerError(ctx, "事务开始失败")
		return
	}

	stmt, err := tx.Prepare(`
		INSERT INTO soil_spectra (batch_labid, level_1, level_2, level_3, level_4, source, notes, refl)
		VALUES (?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			level_1=VALUES(level_1), level_2=VALUES(level_2),
			level_3=VALUES(level_3), level_4=VALUES(level_4),
			source=VALUES(source), notes=VALUES(notes), refl=VALUES(refl)
	`)
	if err != nil {
		tx.Rollback()
		utils.InternalServerError(ctx, err.Error())
		return
	}
	defer stmt.Close()

	for i, name := range lib.Names {
		reflJSON, err := json.Marshal(lib.Spectra[i])
		if err != nil {
			tx.Rollback()
			utils.InternalServerError(ctx, err.Error())
			return
		}
		if _, err := stmt.Exec(name, levels[0], levels[1], levels[2], levels[3],
			source, notes, reflJSON); err != nil {
			tx.Rollback()
			utils.InternalServerError(ctx, err.Error())
			return
		}
	}

	if err := tx.Commit(); err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Created(ctx, gin.H{
		"imported": lib.Count(),
		"bands":    len(lib.BandCenters),
	})
}

// GetSpectraRecords 获取光谱记录列表
func (c *SpectraController) GetSpectraRecords(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	class := ctx.Query("class")
	iso := ctx.Query("iso")

	query := "SELECT id, " + spectraColumns + " FROM soil_spectra WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM soil_spectra WHERE 1=1"
	var queryParams []interface{}

	if class != "" {
		cond := " AND (level_1 = ? OR level_2 = ? OR level_3 = ? OR level_4 = ?)"
		query += cond
		countQuery += cond
		queryParams = append(queryParams, class, class, class, class)
	}
	if iso != "" {
		query += " AND iso = ?"
		countQuery += " AND iso = ?"
		queryParams = append(queryParams, iso)
	}

	var totalCount int
	if err := c.DB.QueryRow(countQuery, queryParams...).Scan(&totalCount); err != nil {
		utils.InternalServerError(ctx, "获取总记录数失败")
		return
	}

	query += " ORDER BY batch_labid LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.SpectrumRecord
	for rows.Next() {
		record, err := scanSpectrum(rows)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.SuccessWithPagination(ctx, records, totalCount, page, pageSize)
}

// GetSpectrum 按化验批号获取单条光谱记录
func (c *SpectraController) GetSpectrum(ctx *gin.Context) {
	batchLabid := ctx.Query("batchLabid")
	if batchLabid == "" {
		utils.BadRequest(ctx, "batchLabid不能为空")
		return
	}

	row := c.DB.QueryRow(
		"SELECT id, "+spectraColumns+" FROM soil_spectra WHERE batch_labid = ?",
		batchLabid,
	)
	record, err := scanSpectrum(row)
	if err != nil {
		if err == sql.ErrNoRows {
			utils.NotFound(ctx, "记录不存在")
		} else {
			utils.InternalServerError(ctx, err.Error())
		}
		return
	}

	utils.Success(ctx, record)
}

// CreateSampleCode 发放化验批次编码并绑定剖面
func (c *SpectraController) CreateSampleCode(ctx *gin.Context) {
	userID := ctx.GetInt("userID")
	var req models.CreateSampleCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	code, err := utils.GenerateSampleCode()
	if err != nil {
		utils.InternalServerError(ctx, "生成编码失败")
		return
	}

	now := time.Now()
	_, err = c.DB.Exec(`
		INSERT INTO sample_codes (code, iso, profile_id, bound_at, description, created_by)
		VALUES (?,?,?,?,?,?)
	`, code, nullString(req.ISO), nullInt(req.ProfileID), now, nullString(req.Description), userID)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Created(ctx, gin.H{"code": code})
}

// GetSampleCodes 获取当前用户发放的批次编码列表
func (c *SpectraController) GetSampleCodes(ctx *gin.Context) {
	userID := ctx.GetInt("userID")

	rows, err := c.DB.Query(`
		SELECT id, code, iso, profile_id, bound_at, description, created_by, is_active, created_at, updated_at
		FROM sample_codes WHERE created_by = ? ORDER BY created_at DESC
	`, userID)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.SampleCode
	for rows.Next() {
		var record models.SampleCode
		if err := rows.Scan(&record.ID, &record.Code, &record.ISO, &record.ProfileID,
			&record.BoundAt, &record.Description, &record.CreatedBy,
			&record.IsActive, &record.CreatedAt, &record.UpdatedAt); err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.Success(ctx, records)
}

// scanSpectrum 从查询结果读出一条光谱记录并解码反射率数组
func scanSpectrum(s scanner) (models.SpectrumRecord, error) {
	var record models.SpectrumRecord
	var reflJSON []byte
	err := s.Scan(&record.ID, &record.BatchLabid, &record.ISO, &record.ProfileID,
		&record.Lat, &record.Lon,
		&record.Level1, &record.Level2, &record.Level3, &record.Level4,
		&record.Source, &record.Notes, &reflJSON, &record.CreatedAt)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(reflJSON, &record.Refl); err != nil {
		return record, err
	}
	return record, nil
}

// loadSpectraLibrary 把光谱表整体读入内存光谱库, class不为空时按分类过滤
func loadSpectraLibrary(db *sql.DB, class string) (*spectral.Library, []spectral.Metadata, error) {
	query := "SELECT " + spectraColumns + " FROM soil_spectra"
	var queryParams []interface{}
	if class != "" {
		query += " WHERE level_1 = ? OR level_2 = ? OR level_3 = ? OR level_4 = ?"
		queryParams = append(queryParams, class, class, class, class)
	}
	query += " ORDER BY batch_labid"

	rows, err := db.Query(query, queryParams...)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	lib := spectral.NewASDLibrary(0)
	var meta []spectral.Metadata
	for rows.Next() {
		var record models.SpectrumRecord
		var reflJSON []byte
		if err := rows.Scan(&record.BatchLabid, &record.ISO, &record.ProfileID,
			&record.Lat, &record.Lon,
			&record.Level1, &record.Level2, &record.Level3, &record.Level4,
			&record.Source, &record.Notes, &reflJSON, &record.CreatedAt); err != nil {
			return nil, nil, err
		}
		var refl []float64
		if err := json.Unmarshal(reflJSON, &refl); err != nil {
			return nil, nil, err
		}
		if err := lib.Append(record.BatchLabid, refl); err != nil {
			return nil, nil, err
		}
		m := spectral.Metadata{
			Name:   record.BatchLabid,
			Levels: [4]string{record.Level1, record.Level2, record.Level3, record.Level4},
			Source: record.Source,
		}
		if record.Lat != nil {
			m.Lat = *record.Lat
		}
		if record.Lon != nil {
			m.Lon = *record.Lon
		}
		meta = append(meta, m)
	}
	return lib, meta, rows.Err()
}

// nullString 空串转NULL
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullInt 零值转NULL
func nullInt(n int) interface{} {
	if n == 0 {
		return nil
	}
	return n
}
