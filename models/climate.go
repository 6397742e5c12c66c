package models

// ClimateStation 气象站模型
type ClimateStation struct {
	ID        int     `db:"id" json:"id"`
	ISO       string  `db:"iso" json:"iso"`
	StationID int     `db:"station_id" json:"stationId"`
	WMOCode   *string `db:"wmo_code" json:"wmoCode"`
	Name      string  `db:"name" json:"name"`
	Lat       float64 `db:"lat" json:"lat"`
	Lon       float64 `db:"lon" json:"lon"`
	Altitude  *int    `db:"altitude" json:"altitude"`
	EditDate  *string `db:"edit_date" json:"editDate"`
}

// TableName 设置表名
func (ClimateStation) TableName() string {
	return "climate_stations"
}

// ClimateData 气象站统计记录, 按统计类型存年值与12个月值
// StatType 如 "precipitation", "temperature"
type ClimateData struct {
	ID        int      `db:"id" json:"id"`
	ISO       string   `db:"iso" json:"iso"`
	StationID int      `db:"station_id" json:"stationId"`
	StatType  string   `db:"stat_type" json:"statType"`
	NRecord   *int     `db:"nrecord" json:"nrecord"`
	Annual    *float64 `db:"annual" json:"annual"`
	Jan       *float64 `db:"jan" json:"jan"`
	Feb       *float64 `db:"feb" json:"feb"`
	Mar       *float64 `db:"mar" json:"mar"`
	Apr       *float64 `db:"apr" json:"apr"`
	May       *float64 `db:"may" json:"may"`
	Jun       *float64 `db:"jun" json:"jun"`
	Jul       *float64 `db:"jul" json:"jul"`
	Aug       *float64 `db:"aug" json:"aug"`
	Sep       *float64 `db:"sep" json:"sep"`
	Oct       *float64 `db:"oct" json:"oct"`
	Nov       *float64 `db:"nov" json:"nov"`
	Dec       *float64 `db:"dec" json:"dec"`
	EditDate  *string  `db:"edit_date" json:"editDate"`
}

// TableName 设置表名
func (ClimateData) TableName() string {
	return "climate_data"
}
