package controllers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-soilspec/models"
	"go-soilspec/utils"
)

// ClimateController 处理气象站与气候统计相关的请求
type ClimateController struct {
	DB *sql.DB
}

// NewClimateController 创建一个新的ClimateController实例
func NewClimateController(db *sql.DB) *ClimateController {
	return &ClimateController{DB: db}
}

// SaveStation 保存气象站记录, 按(iso, station_id)幂等
func (c *ClimateController) SaveStation(ctx *gin.Context) {
	var record models.ClimateStation
	if err := ctx.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if record.ISO == "" || record.StationID <= 0 {
		utils.BadRequest(ctx, "iso和stationId不能为空")
		return
	}

	_, err := c.DB.Exec(`
		INSERT INTO climate_stations (iso, station_id, wmo_code, name, lat, lon, altitude, edit_date)
		VALUES (?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			wmo_code=VALUES(wmo_code), name=VALUES(name), lat=VALUES(lat),
			lon=VALUES(lon), altitude=VALUES(altitude), edit_date=VALUES(edit_date)
	`, record.ISO, record.StationID, record.WMOCode, record.Name,
		record.Lat, record.Lon, record.Altitude, record.EditDate)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Success(ctx, record)
}

// GetStations 获取气象站列表
func (c *ClimateController) GetStations(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	iso := ctx.Query("iso")

	query := "SELECT id, iso, station_id, wmo_code, name, lat, lon, altitude, edit_date FROM climate_stations WHERE 1=1"
	countQuery := "SELECT COUNT(*) FROM climate_stations WHERE 1=1"
	var queryParams []interface{}

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

	query += " ORDER BY iso, station_id LIMIT ? OFFSET ?"
	queryParams = append(queryParams, pageSize, (page-1)*pageSize)

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.ClimateStation
	for rows.Next() {
		var record models.ClimateStation
		if err := rows.Scan(&record.ID, &record.ISO, &record.StationID,
			&record.WMOCode, &record.Name, &record.Lat, &record.Lon,
			&record.Altitude, &record.EditDate); err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.SuccessWithPagination(ctx, records, totalCount, page, pageSize)
}

const climateDataColumns = `iso, station_id, stat_type, nrecord, annual,
	jan, feb, mar, apr, may, jun, jul, aug, sep, oct, nov, dec, edit_date`

// SaveClimateData 保存气候统计记录, 按(iso, station_id, stat_type)幂等
func (c *ClimateController) SaveClimateData(ctx *gin.Context) {
	var record models.ClimateData
	if err := ctx.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if record.ISO == "" || record.StationID <= 0 || record.StatType == "" {
		utils.BadRequest(ctx, "iso、stationId和statType不能为空")
		return
	}

	query := `
		INSERT INTO climate_data (` + climateDataColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			nrecord=VALUES(nrecord), annual=VALUES(annual),
			jan=VALUES(jan), feb=VALUES(feb), mar=VALUES(mar), apr=VALUES(apr),
			may=VALUES(may), jun=VALUES(jun), jul=VALUES(jul), aug=VALUES(aug),
			sep=VALUES(sep), oct=VALUES(oct), nov=VALUES(nov), dec=VALUES(dec),
			edit_date=VALUES(edit_date)
	`
	_, err := c.DB.Exec(query,
		record.ISO, record.StationID, record.StatType, record.NRecord, record.Annual,
		record.Jan, record.Feb, record.Mar, record.Apr, record.May, record.Jun,
		record.Jul, record.Aug, record.Sep, record.Oct, record.Nov, record.Dec,
		record.EditDate,
	)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Success(ctx, record)
}

// GetClimateData 获取某气象站的气候统计记录
func (c *ClimateController) GetClimateData(ctx *gin.Context) {
	iso := ctx.Query("iso")
	stationID, err := strconv.Atoi(ctx.Query("stationId"))
	if iso == "" || err != nil {
		utils.BadRequest(ctx, "无效的iso或stationId")
		return
	}
	statType := ctx.Query("statType")

	query := "SELECT id, " + climateDataColumns + " FROM climate_data WHERE iso = ? AND station_id = ?"
	queryParams := []interface{}{iso, stationID}
	if statType != "" {
		query += " AND stat_type = ?"
		queryParams = append(queryParams, statType)
	}
	query += " ORDER BY stat_type"

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.ClimateData
	for rows.Next() {
		var record models.ClimateData
		if err := rows.Scan(&record.ID, &record.ISO, &record.StationID,
			&record.StatType, &record.NRecord, &record.Annual,
			&record.Jan, &record.Feb, &record.Mar, &record.Apr,
			&record.May, &record.Jun, &record.Jul, &record.Aug,
			&record.Sep, &record.Oct, &record.Nov, &record.Dec,
			&record.EditDate); err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.Success(ctx, records)
}
