package main

import (
	"context"
	"flag"
	"log"

	"recipe-app/config"
	"recipe-app/infra"
	"recipe-app/repositories"
	"recipe-app/services"
)

func main() {
	email := flag.String("email", "", "superuser email address")
	password := flag.String("password", "", "superuser password")
	flag.Parse()

	if *password == "" {
		log.Fatal("-password is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := infra.SetupDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	userRepository := repositories.NewUserRepository(db)
	userService := services.NewUserService(userRepository, services.NewBcryptHasher(cfg.BcryptCost))
	user, err := userService.CreateSuperuser(ctx, *email, *password)
	if err != nil {
		log.Fatalf("Failed to create superuser: %v", err)
	}

	count, err := userRepository.CountUsers(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	log.Printf("Superuser created: id=%d email=%s (%d users total)", user.ID, user.Email, count)
}
