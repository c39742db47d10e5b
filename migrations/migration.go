package main

import (
	"log"

	"recipe-app/config"
	"recipe-app/infra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// トークンブラックリスト用のSQLiteデータベースのマイグレーション
	tokenDB, err := infra.SetupTokenDB(cfg.TokenDBPath)
	if err != nil {
		log.Fatalf("Failed to connect to token blacklist database: %v", err)
	}
	if err := infra.MigrateTokenDB(tokenDB); err != nil {
		log.Fatalf("Failed to migrate token blacklist database: %v", err)
	}
	log.Println("Migration completed")
}
