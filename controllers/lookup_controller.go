package controllers

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"go-soilspec/models"
	"go-soilspec/utils"
)

// LookupController 处理枚举编码字典相关的请求
type LookupController struct {
	DB *sql.DB
}

// NewLookupController 创建一个新的LookupController实例
func NewLookupController(db *sql.DB) *LookupController {
	return &LookupController{DB: db}
}

// SaveAttributeKey 保存编码定义, 按(attribute, value)幂等
func (c *LookupController) SaveAttributeKey(ctx *gin.Context) {
	var record models.AttributeKey
	if err := ctx.ShouldBindJSON(&record); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}
	if record.Attribute == "" || record.Value == "" {
		utils.BadRequest(ctx, "attribute和value不能为空")
		return
	}

	_, err := c.DB.Exec(`
		INSERT INTO attribute_keys (attribute, value, description, ord)
		VALUES (?,?,?,?)
		ON DUPLICATE KEY UPDATE description=VALUES(description), ord=VALUES(ord)
	`, record.Attribute, record.Value, record.Description, record.Ord)
	if err != nil {
		utils.InternalServerError(ctx, err.Error())
		return
	}

	utils.Success(ctx, record)
}

// GetAttributeKeys 获取某个分类字段的编码定义列表
func (c *LookupController) GetAttributeKeys(ctx *gin.Context) {
	attribute := ctx.Query("attribute")

	query := "SELECT id, attribute, value, description, ord FROM attribute_keys"
	var queryParams []interface{}
	if attribute != "" {
		query += " WHERE attribute = ?"
		queryParams = append(queryParams, attribute)
	}
	query += " ORDER BY attribute, ord, value"

	rows, err := c.DB.Query(query, queryParams...)
	if err != nil {
		utils.InternalServerError(ctx, "查询记录失败")
		return
	}
	defer rows.Close()

	var records []models.AttributeKey
	for rows.Next() {
		var record models.AttributeKey
		if err := rows.Scan(&record.ID, &record.Attribute, &record.Value,
			&record.Description, &record.Ord); err != nil {
			utils.InternalServerError(ctx, err.Error())
			return
		}
		records = append(records, record)
	}

	utils.Success(ctx, records)
}
