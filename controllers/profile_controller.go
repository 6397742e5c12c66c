package controllers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-soilspec/models"
	"go-soilspec/utils"
)

// ProfileController 处理土壤剖面相关的请求
type ProfileController struct {
	DB *sql.DB
}

// NewProfileController 创建一个新的ProfileController实例
func NewProfileController(db *sql.DB) *ProfileController {
	return &ProfileController{DB: db}
}

const profileColumns = `iso, profile_id, plotcode, lat, lon, altitude, landform, drainage,
	soil_depth, wrb_rg, wrb_q1, wrb_q2, fao_88, fao_74, usgg, ussg, ustx,
	local_name, remarks, edit_date, verified`

// SaveProfile 保存剖面记录, 按(iso, profile_id)幂等
func (c *ProfileController) SaveProfile(ctx *gin.Context) {
	var record models.SoilProfile
	if err := ctx.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if record.ISO == "" || record.ProfileID <= 0 {
		utils.BadRequest(ctx, "iso和profileId不能为空")
		return
	}
	record.Plotcode = utils.Plotcode(record.ISO, record.ProfileID)

	// 导入数据允许重放, 冲突时覆盖旧行
	query := `
		INSERT INTO soil_profiles (` + profileColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			plotcode=VALUES(plotcode), lat=VALUES(lat), lon=VALUES(lon),
			altitude=VALUES(altitude), landform=VALUES(landform), drainage=VALUES(drainage),
			soil_depth=VALUES(soil_depth), wrb_rg=VALUES(wrb_rg), wrb_q1=VALUES(wrb_q1),
			wrb_q2=VALUES(wrb_q2), fao_88=VALUES(fao_88), fao_74=VALUES(fao_74),
			usgg=VALUES(usgg), ussg=VALUES(ussg), ustx=VALUES(ustx),
			local_name=VALUES(local_name), remarks=VALUES(remarks),
			edit_date=VALUES(edit_date), verified=VALUES(verified)
	`
	_, err := c.DB.Exec(query,
		record.ISO, record.ProfileID, record.Plotcode, record.Lat, record.Lon,
		record.Altitude, record.Landform, record.Drainage, record.SoilDepth,
		record.WRBGroup, record.WRBQualifier1, record.WRBQualifier2,
		record.FAO88, record.FAO74, record.USGreatGrp, record.USSubGrp, record.USTexture,
		record.LocalName, record.Remarks, record.EditDate, record.Verified,
	)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Success(ctx, record)
}

// GetProfiles 获取剖面记录列表
func (c *ProfileController) GetProfiles(ctx *gin.Context) {
	// 获取查询参数
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	iso := ctx.Query("iso")
	wrbGroup := ctx.Query("wrbGroup")

	// 构建基础查询
	query := "SELECT id, " + profileColumns + " FROM soil_profiles WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM soil_profiles WHERE 1=1"
	var queryParams []interface{}

	// 添加筛选条件
	if iso != "" {
		query += " AND iso = ?"
		countQuery += " AND iso = ?"
		queryParams = append(queryParams, iso)
	}
	if wrbGroup != "" {
		query += " AND wrb_rg = ?"
		countQuery += " AND wrb_rg = ?"
		queryParams = append(queryParams, wrbGroup)
	}

	// 获取总记录数
	var totalCount int
	if err := c.DB.QueryRow(countQuery, queryParams...).Scan(&totalCount); err != nil {
		utils.InternalServerError(ctx, "获取总记录数失败")
		return
	}

	// 添加排序和分页
	query += " ORDER BY iso, profile_id LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.SoilProfile
	for rows.Next() {
		record, err := scanProfile(rows)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.SuccessWithPagination(ctx, records, totalCount, page, pageSize)
}

// GetProfile 获取单个剖面记录
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	iso := ctx.Query("iso")
	profileID, err := strconv.Atoi(ctx.Query("profileId"))
	if iso == "" || err != nil {
		utils.BadRequest(ctx, "无效的iso或profileId")
		return
	}

	row := c.DB.QueryRow(
		"SELECT id, "+profileColumns+" FROM soil_profiles WHERE iso = ? AND profile_id = ?",
		iso, profileID,
	)
	record, err := scanProfile(row)
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

// scanner 兼容*sql.Row与*sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanProfile 从查询结果读出一条剖面记录
func scanProfile(s scanner) (models.SoilProfile, error) {
	var record models.SoilProfile
	err := s.Scan(
		&record.ID, &record.ISO, &record.ProfileID, &record.Plotcode,
		&record.Lat, &record.Lon, &record.Altitude, &record.Landform,
		&record.Drainage, &record.SoilDepth,
		&record.WRBGroup, &record.WRBQualifier1, &record.WRBQualifier2,
		&record.FAO88, &record.FAO74, &record.USGreatGrp, &record.USSubGrp,
		&record.USTexture, &record.LocalName, &record.Remarks,
		&record.EditDate, &record.Verified,
	)
	return record, err
}
