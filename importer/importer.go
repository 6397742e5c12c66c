// 原始数据导入工具
// 读取站点描述CSV与光谱CSV, 按剖面编号合并后写入数据库
// 用法: importer -config config.yaml -sites site-description.csv -spectra spectra.csv
package main

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"

	"go-soilspec/config"
	"go-soilspec/spectral"
	"go-soilspec/utils"
)

// siteRecord 站点描述CSV的一行
type siteRecord struct {
	ISO       string
	ProfileID int
	Lat       float64
	Lon       float64
}

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	sitesPath := flag.String("sites", "", "站点描述CSV路径")
	spectraPath := flag.String("spectra", "", "光谱CSV路径")
	flag.Parse()

	if *sitesPath == "" || *spectraPath == "" {
		log.Fatal("usage: importer -sites site-description.csv -spectra spectra.csv")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := config.ConnectDB(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	sites, err := readSites(*sitesPath)
	if err != nil {
		log.Fatalf("Failed to read site descriptions: %v", err)
	}
	log.Printf("Read %d site descriptions", len(sites))

	imported, err := importProfiles(db, sites)
	if err != nil {
		log.Fatalf("Failed to import profiles: %v", err)
	}
	log.Printf("Imported %d profiles", imported)

	imported, err = importSpectra(db, *spectraPath, sites)
	if err != nil {
		log.Fatalf("Failed to import spectra: %v", err)
	}
	log.Printf("Imported %d spectra", imported)
}

// readSites 解析站点描述CSV, 度分秒坐标转为十进制度
// 缺测的分量按0处理, 南纬西经取负
func readSites(path string) (map[string]siteRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %v", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"ISO", "ID"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %s", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	numField := func(rec []string, name string) float64 {
		v, err := strconv.ParseFloat(field(rec, name), 64)
		if err != nil {
			return 0
		}
		return v
	}

	sites := make(map[string]siteRecord)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		iso := field(rec, "ISO")
		id, err := strconv.Atoi(field(rec, "ID"))
		if iso == "" || err != nil {
			continue
		}
		site := siteRecord{
			ISO:       iso,
			ProfileID: id,
			Lat: utils.DMSToDD(numField(rec, "LATD"), numField(rec, "LATM"),
				numField(rec, "LATS"), field(rec, "LATNS")),
			Lon: utils.DMSToDD(numField(rec, "LOND"), numField(rec, "LONM"),
				numField(rec, "LONS"), field(rec, "LONEW")),
		}
		sites[utils.Plotcode(iso, id)] = site
	}
	return sites, nil
}

// importProfiles 把站点记录写入剖面表, 重放安全
func importProfiles(db *sql.DB, sites map[string]siteRecord) (int, error) {
	stmt, err := db.Prepare(`
		INSERT INTO soil_profiles (iso, profile_id, plotcode, lat, lon)
		VALUES (?,?,?,?,?)
		ON DUPLICATE KEY UPDATE lat=VALUES(lat), lon=VALUES(lon)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for plotcode, site := range sites {
		if _, err := stmt.Exec(site.ISO, site.ProfileID, plotcode, site.Lat, site.Lon); err != nil {
			return count, fmt.Errorf("profile %s: %v", plotcode, err)
		}
		count++
	}
	return count, nil
}

// importSpectra 解析光谱CSV并入库
// 前两列为Plotcode与Batch_Labid, 其余为波长列
// 波长网格与参考网格不一致时重采样, 站点坐标从站点表带入
func importSpectra(db *sql.DB, path string, sites map[string]siteRecord) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %v", err)
	}
	if len(header) < 3 {
		return 0, fmt.Errorf("spectra csv needs Plotcode, Batch_Labid and wavelength columns")
	}

	centers := make([]float64, 0, len(header)-2)
	for _, h := range header[2:] {
		wl, err := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid wavelength column %q: %v", h, err)
		}
		centers = append(centers, wl)
	}

	// 网格不一致时准备重采样器
	asd := spectral.ASDBandCenters()
	var resampler *spectral.BandResampler
	if !spectral.SameGrid(centers, asd) {
		resampler, err = spectral.NewBandResampler(centers, asd, nil, nil)
		if err != nil {
			return 0, err
		}
	}

	stmt, err := db.Prepare(`
		INSERT INTO soil_spectra (batch_labid, iso, profile_id, lat, lon,
			level_1, level_2, level_3, level_4, source, notes, refl)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			iso=VALUES(iso), profile_id=VALUES(profile_id),
			lat=VALUES(lat), lon=VALUES(lon), refl=VALUES(refl)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}
		plotcode := strings.TrimSpace(rec[0])
		labid := strings.TrimSpace(rec[1])
		if labid == "" {
			continue
		}

		refl := make([]float64, len(centers))
		for i, field := range rec[2:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return count, fmt.Errorf("spectrum %s: invalid reflectance %q", labid, field)
			}
			refl[i] = v
		}
		if resampler != nil {
			if refl, err = resampler.Resample(refl); err != nil {
				return count, fmt.Errorf("spectrum %s: %v", labid, err)
			}
		}
		reflJSON, err := json.Marshal(refl)
		if err != nil {
			return count, err
		}

		// 站点缺失时坐标留空
		var iso, lat, lon, profileID interface{}
		if site, ok := sites[plotcode]; ok {
			iso, profileID = site.ISO, site.ProfileID
			lat, lon = site.Lat, site.Lon
		}

		_, err = stmt.Exec(labid, iso, profileID, lat, lon,
			"pervious", "bare", "soil", "measured", "asd",
			"icraf-isric-soil-database", reflJSON)
		if err != nil {
			return count, fmt.Errorf("spectrum %s: %v", labid, err)
		}
		count++
	}
	return count, nil
}
