package models

// SoilProfile 土壤剖面模型, 含采样点描述与分类信息
// (iso, profile_id) 唯一标识一个剖面
type SoilProfile struct {
	ID        int     `db:"id" json:"id"`
	ISO       string  `db:"iso" json:"iso"`
	ProfileID int     `db:"profile_id" json:"profileId"`
	Plotcode  string  `db:"plotcode" json:"plotcode"`
	Lat       float64 `db:"lat" json:"lat"`
	Lon       float64 `db:"lon" json:"lon"`
	Altitude  *int    `db:"altitude" json:"altitude"`
	Landform  *string `db:"landform" json:"landform"`
	Drainage  *string `db:"drainage" json:"drainage"`
	SoilDepth *int    `db:"soil_depth" json:"soilDepth"`

	// WRB分类: 参照土类与限定词
	WRBGroup      *string `db:"wrb_rg" json:"wrbGroup"`
	WRBQualifier1 *string `db:"wrb_q1" json:"wrbQualifier1"`
	WRBQualifier2 *string `db:"wrb_q2" json:"wrbQualifier2"`

	// FAO与USDA分类
	FAO88      *string `db:"fao_88" json:"fao88"`
	FAO74      *string `db:"fao_74" json:"fao74"`
	USGreatGrp *string `db:"usgg" json:"usGreatGroup"`
	USSubGrp   *string `db:"ussg" json:"usSubGroup"`
	USTexture  *string `db:"ustx" json:"usTexture"`
	LocalName  *string `db:"local_name" json:"localName"`

	Remarks  *string `db:"remarks" json:"remarks"`
	EditDate *string `db:"edit_date" json:"editDate"`
	Verified bool    `db:"verified" json:"verified"`
}

// TableName 设置表名
func (SoilProfile) TableName() string {
	return "soil_profiles"
}
