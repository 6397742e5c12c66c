package models

// SpectrumRecord 光谱记录模型
// 反射率为350-2500nm每10nm一个值, 共216个, 存为JSON数组列
// BatchLabid 唯一标识一条化验光谱
type SpectrumRecord struct {
	ID         int       `db:"id" json:"id"`
	BatchLabid string    `db:"batch_labid" json:"batchLabid"`
	ISO        *string   `db:"iso" json:"iso"`
	ProfileID  *int      `db:"profile_id" json:"profileId"`
	Lat        *float64  `db:"lat" json:"lat"`
	Lon        *float64  `db:"lon" json:"lon"`
	Level1     string    `db:"level_1" json:"level1"`
	Level2     string    `db:"level_2" json:"level2"`
	Level3     string    `db:"level_3" json:"level3"`
	Level4     string    `db:"level_4" json:"level4"`
	Source     string    `db:"source" json:"source"`
	Notes      *string   `db:"notes" json:"notes"`
	Refl       []float64 `db:"refl" json:"refl"`
	CreatedAt  string    `db:"created_at" json:"createdAt"`
}

// TableName 设置表名
func (SpectrumRecord) TableName() string {
	return "soil_spectra"
}
