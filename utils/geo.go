package utils

import (
	"strconv"
	"strings"
)

// DMSToDD 度分秒转十进制度
// hemisphere为S或W时结果取负
func DMSToDD(deg, min, sec float64, hemisphere string) float64 {
	dd := deg + min/60.0 + sec/3600.0
	switch strings.ToUpper(strings.TrimSpace(hemisphere)) {
	case "S", "W":
		dd = -dd
	}
	return dd
}

// Plotcode 拼接剖面编号, 与原始数据库的Plotcode列格式一致
func Plotcode(iso string, profileID int) string {
	return strings.ToUpper(strings.TrimSpace(iso)) + " " + strconv.Itoa(profileID)
}
