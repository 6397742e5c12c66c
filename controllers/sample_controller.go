package controllers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-soilspec/models"
	"go-soilspec/utils"
)

// SampleController 处理层位化验记录相关的请求
type SampleController struct {
	DB *sql.DB
}

// NewSampleController 创建一个新的SampleController实例
func NewSampleController(db *sql.DB) *SampleController {
	return &SampleController{DB: db}
}

const chemicalColumns = `iso, profile_id, horizon, top_depth, bot_depth, sampleno,
	phh2o, phkcl, phcacl2, caco3, caso4, orgc, orgn, cn_ratio,
	ca, mg, na, k, sum_cations, exacid, exal,
	cecsoil, cecclay, ecec, base_sat, esp, ec,
	remarks, edit_date, verified`

const physicalColumns = `iso, profile_id, horizon, top_depth, bot_depth, sampleno,
	sand, silt, clay, bulk_density, water_pf0, water_pf2, water_pf42,
	remarks, edit_date, verified`

// SaveChemicalRecord 保存化学性质记录, 按(iso, profile_id, horizon)幂等
func (c *SampleController) SaveChemicalRecord(ctx *gin.Context) {
	var record models.ChemicalProperties
	if err := ctx.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if record.ISO == "" || record.ProfileID <= 0 || record.Horizon <= 0 {
		utils.BadRequest(ctx, "iso、profileId和horizon不能为空")
		return
	}
	if record.BotDepth < record.TopDepth {
		utils.BadRequest(ctx, "层位深度区间无效")
		return
	}

	query := `
		INSERT INTO chemical_properties (` + chemicalColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			top_depth=VALUES(top_depth), bot_depth=VALUES(bot_depth), sampleno=VALUES(sampleno),
			phh2o=VALUES(phh2o), phkcl=VALUES(phkcl), phcacl2=VALUES(phcacl2),
			caco3=VALUES(caco3), caso4=VALUES(caso4), orgc=VALUES(orgc), orgn=VALUES(orgn),
			cn_ratio=VALUES(cn_ratio), ca=VALUES(ca), mg=VALUES(mg), na=VALUES(na), k=VALUES(k),
			sum_cations=VALUES(sum_cations), exacid=VALUES(exacid), exal=VALUES(exal),
			cecsoil=VALUES(cecsoil), cecclay=VALUES(cecclay), ecec=VALUES(ecec),
			base_sat=VALUES(base_sat), esp=VALUES(esp), ec=VALUES(ec),
			remarks=VALUES(remarks), edit_date=VALUES(edit_date), verified=VALUES(verified)
	`
	_, err := c.DB.Exec(query,
		record.ISO, record.ProfileID, record.Horizon, record.TopDepth, record.BotDepth,
		record.SampleNo,
		record.PHH2O, record.PHKCl, record.PHCaCl2, record.CaCO3, record.CaSO4,
		record.OrgC, record.OrgN, record.CNRatio,
		record.Ca, record.Mg, record.Na, record.K, record.SumCations,
		record.ExAcid, record.ExAl,
		record.CECSoil, record.CECClay, record.ECEC, record.BaseSat, record.ESP, record.EC,
		record.Remarks, record.EditDate, record.Verified,
	)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Success(ctx, record)
}

// GetChemicalRecords 获取化学性质记录列表
func (c *SampleController) GetChemicalRecords(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	iso := ctx.Query("iso")
	profileID := ctx.Query("profileId")

	query := "SELECT id, " + chemicalColumns + " FROM chemical_properties WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM chemical_properties WHERE 1=1"
	var queryParams []interface{}

	if iso != "" {
		query += " AND iso = ?"
		countQuery += " AND iso = ?"
		queryParams = append(queryParams, iso)
	}
	if profileID != "" {
		query += " AND profile_id = ?"
		countQuery += " AND profile_id = ?"
		queryParams = append(queryParams, profileID)
	}

	var totalCount int
	if err := c.DB.QueryRow(countQuery, queryParams...).Scan(&totalCount); err != nil {
		utils.InternalServerError(ctx, "获取总记录数失败")
		return
	}

	query += " ORDER BY iso, profile_id, horizon LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.ChemicalProperties
	for rows.Next() {
		record, err := scanChemical(rows)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.SuccessWithPagination(ctx, records, totalCount, page, pageSize)
}

// GetChemicalRecord 按化验样品号获取单条化学性质记录
func (c *SampleController) GetChemicalRecord(ctx *gin.Context) {
	sampleno := ctx.Query("sampleno")
	if sampleno == "" {
		utils.BadRequest(ctx, "sampleno不能为空")
		return
	}

	row := c.DB.QueryRow(
		"SELECT id, "+chemicalColumns+" FROM chemical_properties WHERE sampleno = ?",
		sampleno,
	)
	record, err := scanChemical(row)
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

// SavePhysicalRecord 保存物理性质记录, 键结构与化学记录一致
func (c *SampleController) SavePhysicalRecord(ctx *gin.Context) {
	var record models.PhysicalProperties
	if err := ctx.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if record.ISO == "" || record.ProfileID <= 0 || record.Horizon <= 0 {
		utils.BadRequest(ctx, "iso、profileId和horizon不能为空")
		return
	}
	if record.BotDepth < record.TopDepth {
		utils.BadRequest(ctx, "层位深度区间无效")
		return
	}

	query := `
		INSERT INTO physical_properties (` + physicalColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			top_depth=VALUES(top_depth), bot_depth=VALUES(bot_depth), sampleno=VALUES(sampleno),
			sand=VALUES(sand), silt=VALUES(silt), clay=VALUES(clay),
			bulk_density=VALUES(bulk_density), water_pf0=VALUES(water_pf0),
			water_pf2=VALUES(water_pf2), water_pf42=VALUES(water_pf42),
			remarks=VALUES(remarks), edit_date=VALUES(edit_date), verified=VALUES(verified)
	`
	_, err := c.DB.Exec(query,
		record.ISO, record.ProfileID, record.Horizon, record.TopDepth, record.BotDepth,
		record.SampleNo,
		record.Sand, record.Silt, record.Clay, record.BulkDensity,
		record.WaterPF0, record.WaterPF2, record.WaterPF42,
		record.Remarks, record.EditDate, record.Verified,
	)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Success(ctx, record)
}

// GetPhysicalRecords 获取物理性质记录列表
func (c *SampleController) GetPhysicalRecords(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	iso := ctx.Query("iso")
	profileID := ctx.Query("profileId")

	query := "SELECT id, " + physicalColumns + " FROM physical_properties WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM physical_properties WHERE 1=1"
	var queryParams []interface{}

	if iso != "" {
		query += " AND iso = ?"
		countQuery += " AND iso = ?"
		queryParams = append(queryParams, iso)
	}
	if profileID != "" {
		query += " AND profile_id = ?"
		countQuery += " AND profile_id = ?"
		queryParams = append(queryParams, profileID)
	}

	var totalCount int
	if err := c.DB.QueryRow(countQuery, queryParams...).Scan(&totalCount); err != nil {
		utils.InternalServerError(ctx, "获取总记录数失败")
		return
	}

	query += " ORDER BY iso, profile_id, horizon LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.PhysicalProperties
	for rows.Next() {
		record, err := scanPhysical(rows)
		if err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.SuccessWithPagination(ctx, records, totalCount, page, pageSize)
}

// GetPhysicalRecord 按化验样品号获取单条物理性质记录
func (c *SampleController) GetPhysicalRecord(ctx *gin.Context) {
	sampleno := ctx.Query("sampleno")
	if sampleno == "" {
		utils.BadRequest(ctx, "sampleno不能为空")
		return
	}

	row := c.DB.QueryRow(
		"SELECT id, "+physicalColumns+" FROM physical_properties WHERE sampleno = ?",
		sampleno,
	)
	record, err := scanPhysical(row)
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

// scanChemical 从查询结果读出一条化学性质记录
func scanChemical(s scanner) (models.ChemicalProperties, error) {
	var record models.ChemicalProperties
	err := s.Scan(
		&record.ID, &record.ISO, &record.ProfileID, &record.Horizon,
		&record.TopDepth, &record.BotDepth, &record.SampleNo,
		&record.PHH2O, &record.PHKCl, &record.PHCaCl2, &record.CaCO3, &record.CaSO4,
		&record.OrgC, &record.OrgN, &record.CNRatio,
		&record.Ca, &record.Mg, &record.Na, &record.K, &record.SumCations,
		&record.ExAcid, &record.ExAl,
		&record.CECSoil, &record.CECClay, &record.ECEC, &record.BaseSat, &record.ESP, &record.EC,
		&record.Remarks, &record.EditDate, &record.Verified,
	)
	return record, err
}

// scanPhysical 从查询结果读出一条物理性质记录
func scanPhysical(s scanner) (models.PhysicalProperties, error) {
	var record models.PhysicalProperties
	err := s.Scan(
		&record.ID, &record.ISO, &record.ProfileID, &record.Horizon,
		&record.TopDepth, &record.BotDepth, &record.SampleNo,
		&record.Sand, &record.Silt, &record.Clay, &record.BulkDensity,
		&record.WaterPF0, &record.WaterPF2, &record.WaterPF42,
		&record.Remarks, &record.EditDate, &record.Verified,
	)
	return record, err
}
