package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 服务配置
type Config struct {
	// Listen HTTP监听地址 (默认 :8080)
	Listen string `yaml:"listen"`

	// JWTSecret 签发与校验token的密钥
	JWTSecret string `yaml:"jwt_secret"`

	// 数据库连接信息
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHostname string `yaml:"db_hostname"`
	DBName     string `yaml:"db_name"`
}

func (c *Config) defaults() {
	if c.Listen == "" {
		c.Listen = ":8080"
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "soilspec_secret_key"
	}
	if c.DBUsername == "" {
		c.DBUsername = "root"
	}
	if c.DBPassword == "" {
		c.DBPassword = "root"
	}
	if c.DBHostname == "" {
		c.DBHostname = "127.0.0.1:3306"
	}
	if c.DBName == "" {
		c.DBName = "soilspec"
	}
}

// DSN 返回MySQL连接串
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4",
		c.DBUsername, c.DBPassword, c.DBHostname, c.DBName)
}

// Load 加载配置文件, path为空或文件不存在时用环境变量和默认值
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	// 环境变量覆盖文件内容
	if v := os.Getenv("SOILSPEC_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("SOILSPEC_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("SOILSPEC_DB_USERNAME"); v != "" {
		cfg.DBUsername = v
	}
	if v := os.Getenv("SOILSPEC_DB_PASSWORD"); v != "" {
		cfg.DBPassword = v
	}
	if v := os.Getenv("SOILSPEC_DB_HOSTNAME"); v != "" {
		cfg.DBHostname = v
	}
	if v := os.Getenv("SOILSPEC_DB_NAME"); v != "" {
		cfg.DBName = v
	}

	cfg.defaults()
	return cfg, nil
}
