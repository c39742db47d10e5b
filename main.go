package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-app/config"
	"recipe-app/infra"
	"recipe-app/repositories"
	"recipe-app/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireSecret(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	tokenDB, err := infra.SetupTokenDB(cfg.TokenDBPath)
	if err != nil {
		log.Fatalf("Failed to connect to token blacklist database: %v", err)
	}

	if cfg.AutoMigrate {
		if err := infra.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		if err := infra.MigrateTokenDB(tokenDB); err != nil {
			log.Fatalf("Failed to migrate token blacklist database: %v", err)
		}
	}

	// 期限切れのブラックリストエントリは起動時に掃除する
	removed, err := repositories.NewTokenRepository(tokenDB).CleanExpiredTokens(context.Background())
	if err != nil {
		log.Printf("Failed to clean expired tokens: %v", err)
	} else if removed > 0 {
		log.Printf("Removed %d expired blacklisted tokens", removed)
	}

	r := routes.SetupRouter(cfg, db, tokenDB)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s (%s environment)", cfg.Port, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}
