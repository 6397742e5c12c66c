package main

import (
	"flag"
	"log"

	"go-soilspec/config"
	"go-soilspec/middleware"
	"go-soilspec/routes"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	// 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	middleware.SetJWTSecret(cfg.JWTSecret)

	// 初始化数据库连接
	config.InitDB(cfg)

	// 设置路由
	r := routes.SetupRouter(config.DB)

	// 启动服务器
	if err := r.Run(cfg.Listen); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
