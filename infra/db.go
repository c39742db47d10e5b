package infra

import (
	"fmt"
	"log"

	"recipe-app/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const memoryDSN = ":memory:"

func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}

// SetupDB DB_NAMEが設定されている場合はPostgreSQL、それ以外はSQLiteに接続する
func SetupDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Printf("Setup postgres database: host=%s dbname=%s port=%s", cfg.DBHost, cfg.DBName, cfg.DBPort)
		return db, nil
	}

	db, err := OpenSQLite(cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	log.Printf("Setup sqlite database: %s", cfg.SQLitePath)
	return db, nil
}

// SetupTokenDB トークンブラックリスト用のSQLiteデータベース接続を設定
func SetupTokenDB(path string) (*gorm.DB, error) {
	db, err := OpenSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("connect token blacklist database: %w", err)
	}
	log.Printf("Setup token blacklist sqlite database: %s", path)
	return db, nil
}

// OpenSQLite opens a SQLite database. An empty path or ":memory:" gives a
// private in-memory database pinned to a single connection, since every new
// connection to ":memory:" would see an empty schema.
func OpenSQLite(path string) (*gorm.DB, error) {
	if path == "" {
		path = memoryDSN
	}

	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect sqlite %s: %w", path, err)
	}

	if path == memoryDSN {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
