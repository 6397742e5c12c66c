package models

// 化验测量值字段统一用*float64: 原始数据库中大量缺测,
// 且生成的旧表结构未声明数值精度, 入库时一律按DOUBLE处理

// ChemicalProperties 土壤化学性质记录
// (iso, profile_id, horizon) 标识剖面内一个深度层, sampleno标识化验样品
type ChemicalProperties struct {
	ID        int    `db:"id" json:"id"`
	ISO       string `db:"iso" json:"iso"`
	ProfileID int    `db:"profile_id" json:"profileId"`
	Horizon   int    `db:"horizon" json:"horizon"`
	TopDepth  int    `db:"top_depth" json:"topDepth"`
	BotDepth  int    `db:"bot_depth" json:"botDepth"`
	SampleNo  string `db:"sampleno" json:"sampleno"`

	PHH2O      *float64 `db:"phh2o" json:"phh2o"`
	PHKCl      *float64 `db:"phkcl" json:"phkcl"`
	PHCaCl2    *float64 `db:"phcacl2" json:"phcacl2"`
	CaCO3      *float64 `db:"caco3" json:"caco3"`
	CaSO4      *float64 `db:"caso4" json:"caso4"`
	OrgC       *float64 `db:"orgc" json:"orgc"`
	OrgN       *float64 `db:"orgn" json:"orgn"`
	CNRatio    *float64 `db:"cn_ratio" json:"cnRatio"`
	Ca         *float64 `db:"ca" json:"ca"`
	Mg         *float64 `db:"mg" json:"mg"`
	Na         *float64 `db:"na" json:"na"`
	K          *float64 `db:"k" json:"k"`
	SumCations *float64 `db:"sum_cations" json:"sumCations"`
	ExAcid     *float64 `db:"exacid" json:"exacid"`
	ExAl       *float64 `db:"exal" json:"exal"`
	CECSoil    *float64 `db:"cecsoil" json:"cecsoil"`
	CECClay    *float64 `db:"cecclay" json:"cecclay"`
	ECEC       *float64 `db:"ecec" json:"ecec"`
	BaseSat    *float64 `db:"base_sat" json:"baseSat"`
	ESP        *float64 `db:"esp" json:"esp"`
	EC         *float64 `db:"ec" json:"ec"`

	Remarks  *string `db:"remarks" json:"remarks"`
	EditDate *string `db:"edit_date" json:"editDate"`
	Verified bool    `db:"verified" json:"verified"`
}

// TableName 设置表名
func (ChemicalProperties) TableName() string {
	return "chemical_properties"
}

// PhysicalProperties 土壤物理性质记录, 键结构与化学记录一致
type PhysicalProperties struct {
	ID        int    `db:"id" json:"id"`
	ISO       string `db:"iso" json:"iso"`
	ProfileID int    `db:"profile_id" json:"profileId"`
	Horizon   int    `db:"horizon" json:"horizon"`
	TopDepth  int    `db:"top_depth" json:"topDepth"`
	BotDepth  int    `db:"bot_depth" json:"botDepth"`
	SampleNo  string `db:"sampleno" json:"sampleno"`

	Sand        *float64 `db:"sand" json:"sand"`
	Silt        *float64 `db:"silt" json:"silt"`
	Clay        *float64 `db:"clay" json:"clay"`
	BulkDensity *float64 `db:"bulk_density" json:"bulkDensity"`
	WaterPF0    *float64 `db:"water_pf0" json:"waterPf0"`
	WaterPF2    *float64 `db:"water_pf2" json:"waterPf2"`
	WaterPF42   *float64 `db:"water_pf42" json:"waterPf42"`

	Remarks  *string `db:"remarks" json:"remarks"`
	EditDate *string `db:"edit_date" json:"editDate"`
	Verified bool    `db:"verified" json:"verified"`
}

// TableName 设置表名
func (PhysicalProperties) TableName() string {
	return "physical_properties"
}
