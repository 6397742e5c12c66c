package models

import (
	"time"
)

// SampleCode 化验批次编码模型
// 编码发放后绑定到某个剖面, 用作光谱化验样品的标签
type SampleCode struct {
	ID          int        `db:"id" json:"id"`
	Code        string     `db:"code" json:"code"`
	ISO         *string    `db:"iso" json:"iso"`
	ProfileID   *int       `db:"profile_id" json:"profile_id"`
	BoundAt     *time.Time `db:"bound_at" json:"bound_at"`
	Description *string    `db:"description" json:"description"`
	CreatedBy   *int       `db:"created_by" json:"created_by"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// CreateSampleCodeRequest 创建批次编码请求
type CreateSampleCodeRequest struct {
	ISO         string `json:"iso"`
	ProfileID   int    `json:"profile_id"`
	Description string `json:"description"`
}

// TableName 设置表名
func (SampleCode) TableName() string {
	return "sample_codes"
}
