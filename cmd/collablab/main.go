package main

import (
	"github.com/collablab-dev/collablab/db"
	"github.com/collablab-dev/collablab/internal/auth"
	"github.com/collablab-dev/collablab/internal/config"
	"github.com/collablab-dev/collablab/internal/documents"
	"github.com/collablab-dev/collablab/internal/logutils"
	"github.com/collablab-dev/collablab/internal/repository"
	"github.com/collablab-dev/collablab/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logutils.Log.Info("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		logutils.Log.Fatalf("Failed to load configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		logutils.Log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		logutils.Log.Fatalf("Failed to migrate database: %v", err)
	}

	docs, err := documents.NewStore(cfg.UploadDir)

	if err != nil {
		logutils.Log.Fatalf("Failed to prepare upload directory: %v", err)
	}

	r := router.New(router.Deps{
		DB:       conn,
		Tokens:   auth.NewTokenService(cfg.JWTSecret),
		Users:    repository.NewUserStore(conn),
		Projects: repository.NewProjectStore(conn),
		Saved:    repository.NewSavedStore(conn),
		Requests: repository.NewRequestStore(conn, docs),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		logutils.Log.Fatalf("Failed to start server: %v", err)
	}
}
