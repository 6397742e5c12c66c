package config

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/go-sql-driver/mysql"
)

var (
	DB   *sql.DB
	once sync.Once
)

// ConnectDB 连接数据库
func ConnectDB(dsn string) (*sql.DB, error) {
	return sql.Open("mysql", dsn)
}

// InitDB 初始化数据库连接
func InitDB(cfg *Config) {
	once.Do(func() {
		var err error
		DB, err = ConnectDB(cfg.DSN())
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err = DB.Ping(); err != nil {
			log.Fatalf("Failed to ping database: %v", err)
		}

		// 自动迁移数据库
		if err = autoMigrate(DB); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}

		log.Println("Database connected and migrated successfully")
	})
}

// autoMigrate 自动迁移数据库
func autoMigrate(db *sql.DB) error {
	// 创建 migrations 表用于跟踪迁移状态
	if err := createMigrationsTable(db); err != nil {
		return fmt.Errorf("failed to create migrations table: %v", err)
	}

	// 运行所有迁移
	migrations := getMigrations()
	for _, migration := range migrations {
		if err := runMigrationIfNotExists(db, migration); err != nil {
			return fmt.Errorf("failed to run migration %s: %v", migration.Name, err)
		}
	}

	return nil
}

// Migration 迁移结构
type Migration struct {
	Name string
	SQL  string
}

// createMigrationsTable 创建迁移表
func createMigrationsTable(db *sql.DB) error {
	createSQL := `
	CREATE TABLE IF NOT EXISTS migrations (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)
	`
	_, err := db.Exec(createSQL)
	return err
}

// getMigrations 获取所有迁移
func getMigrations() []Migration {
	return []Migration{
		{
			Name: "001_create_users_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INT AUTO_INCREMENT PRIMARY KEY,
				username VARCHAR(255) UNIQUE,
				password VARCHAR(255),
				role INT DEFAULT 0,
				status VARCHAR(20) DEFAULT 'active',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				INDEX idx_username (username)
			)
			`,
		},
		{
			Name: "002_create_soil_profiles_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS soil_profiles (
				id INT AUTO_INCREMENT PRIMARY KEY,
				iso VARCHAR(3) NOT NULL,
				profile_id INT NOT NULL,
				plotcode VARCHAR(16) NOT NULL,
				lat DOUBLE,
				lon DOUBLE,
				altitude INT,
				landform VARCHAR(64),
				drainage VARCHAR(8),
				soil_depth INT,
				wrb_rg VARCHAR(32),
				wrb_q1 VARCHAR(32),
				wrb_q2 VARCHAR(32),
				fao_88 VARCHAR(32),
				fao_74 VARCHAR(32),
				usgg VARCHAR(64),
				ussg VARCHAR(64),
				ustx VARCHAR(32),
				local_name VARCHAR(128),
				remarks TEXT,
				edit_date VARCHAR(32),
				verified BOOLEAN DEFAULT FALSE,
				UNIQUE KEY uk_iso_profile (iso, profile_id),
				INDEX idx_plotcode (plotcode),
				INDEX idx_wrb_rg (wrb_rg)
			)
			`,
		},
		{
			Name: "003_create_chemical_properties_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS chemical_properties (
				id INT AUTO_INCREMENT PRIMARY KEY,
				iso VARCHAR(3) NOT NULL,
				profile_id INT NOT NULL,
				horizon INT NOT NULL,
				top_depth INT,
				bot_depth INT,
				sampleno VARCHAR(32),
				phh2o DOUBLE,
				phkcl DOUBLE,
				phcacl2 DOUBLE,
				caco3 DOUBLE,
				caso4 DOUBLE,
				orgc DOUBLE,
				orgn DOUBLE,
				cn_ratio DOUBLE,
				ca DOUBLE,
				mg DOUBLE,
				na DOUBLE,
				k DOUBLE,
				sum_cations DOUBLE,
				exacid DOUBLE,
				exal DOUBLE,
				cecsoil DOUBLE,
				cecclay DOUBLE,
				ecec DOUBLE,
				base_sat DOUBLE,
				esp DOUBLE,
				ec DOUBLE,
				remarks TEXT,
				edit_date VARCHAR(32),
				verified BOOLEAN DEFAULT FALSE,
				UNIQUE KEY uk_iso_profile_hori (iso, profile_id, horizon),
				INDEX idx_sampleno (sampleno)
			)
			`,
		},
		{
			Name: "004_create_physical_properties_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS physical_properties (
				id INT AUTO_INCREMENT PRIMARY KEY,
				iso VARCHAR(3) NOT NULL,
				profile_id INT NOT NULL,
				horizon INT NOT NULL,
				top_depth INT,
				bot_depth INT,
				sampleno VARCHAR(32),
				sand DOUBLE,
				silt DOUBLE,
				clay DOUBLE,
				bulk_density DOUBLE,
				water_pf0 DOUBLE,
				water_pf2 DOUBLE,
				water_pf42 DOUBLE,
				remarks TEXT,
				edit_date VARCHAR(32),
				verified BOOLEAN DEFAULT FALSE,
				UNIQUE KEY uk_iso_profile_hori (iso, profile_id, horizon),
				INDEX idx_sampleno (sampleno)
			)
			`,
		},
		{
			Name: "005_create_attribute_keys_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS attribute_keys (
				id INT AUTO_INCREMENT PRIMARY KEY,
				attribute VARCHAR(64) NOT NULL,
				value VARCHAR(64) NOT NULL,
				description VARCHAR(255),
				ord INT DEFAULT 0,
				UNIQUE KEY uk_attribute_value (attribute, value),
				INDEX idx_attribute (attribute)
			)
			`,
		},
		{
			Name: "006_create_climate_stations_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS climate_stations (
				id INT AUTO_INCREMENT PRIMARY KEY,
				iso VARCHAR(3) NOT NULL,
				station_id INT NOT NULL,
				wmo_code VARCHAR(16),
				name VARCHAR(128),
				lat DOUBLE,
				lon DOUBLE,
				altitude INT,
				edit_date VARCHAR(32),
				UNIQUE KEY uk_iso_station (iso, station_id)
			)
			`,
		},
		{
			Name: "007_create_climate_data_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS climate_data (
				id INT AUTO_INCREMENT PRIMARY KEY,
				iso VARCHAR(3) NOT NULL,
				station_id INT NOT NULL,
				stat_type VARCHAR(32) NOT NULL,
				nrecord INT,
				annual DOUBLE,
				jan DOUBLE, feb DOUBLE, mar DOUBLE, apr DOUBLE,
				may DOUBLE, jun DOUBLE, jul DOUBLE, aug DOUBLE,
				sep DOUBLE, oct DOUBLE, nov DOUBLE, dec DOUBLE,
				edit_date VARCHAR(32),
				UNIQUE KEY uk_iso_station_type (iso, station_id, stat_type)
			)
			`,
		},
		{
			Name: "008_create_soil_spectra_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS soil_spectra (
				id INT AUTO_INCREMENT PRIMARY KEY,
				batch_labid VARCHAR(64) NOT NULL UNIQUE,
				iso VARCHAR(3),
				profile_id INT,
				lat DOUBLE,
				lon DOUBLE,
				level_1 VARCHAR(32) DEFAULT '',
				level_2 VARCHAR(32) DEFAULT '',
				level_3 VARCHAR(32) DEFAULT '',
				level_4 VARCHAR(32) DEFAULT '',
				source VARCHAR(32) DEFAULT '',
				notes VARCHAR(255),
				refl JSON NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_levels (level_1, level_2, level_3, level_4),
				INDEX idx_iso_profile (iso, profile_id)
			)
			`,
		},
		{
			Name: "009_create_sample_codes_table",
			SQL: `
			CREATE TABLE IF NOT EXISTS sample_codes (
				id INT AUTO_INCREMENT PRIMARY KEY,
				code VARCHAR(255) NOT NULL UNIQUE,
				iso VARCHAR(3),
				profile_id INT,
				bound_at TIMESTAMP NULL,
				description TEXT,
				created_by INT,
				is_active BOOLEAN DEFAULT TRUE,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
				INDEX idx_code (code),
				FOREIGN KEY (created_by) REFERENCES users(id) ON DELETE SET NULL
			)
			`,
		},
	}
}

// runMigrationIfNotExists 如果迁移不存在则运行
func runMigrationIfNotExists(db *sql.DB, migration Migration) error {
	// 检查迁移是否已执行
	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", migration.Name).Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		log.Printf("Migration %s already executed, skipping", migration.Name)
		return nil
	}

	// 执行迁移
	log.Printf("Running migration: %s", migration.Name)
	if _, err := db.Exec(migration.SQL); err != nil {
		return err
	}

	// 记录迁移已执行
	_, err = db.Exec("INSERT INTO migrations (name) VALUES (?)", migration.Name)
	return err
}
