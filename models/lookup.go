package models

// AttributeKey 枚举编码字典模型
// 描述各记录表中分类字段的取值含义, 如排水等级或质地编码
type AttributeKey struct {
	ID          int    `db:"id" json:"id"`
	Attribute   string `db:"attribute" json:"attribute"`
	Value       string `db:"value" json:"value"`
	Description string `db:"description" json:"description"`
	Ord         int    `db:"ord" json:"ord"`
}

// TableName 设置表名
func (AttributeKey) TableName() string {
	return "attribute_keys"
}
