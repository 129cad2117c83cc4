package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/tnqbao/gau-drive-service/config"
	"github.com/tnqbao/gau-drive-service/http/controller"
	routes "github.com/tnqbao/gau-drive-service/http/route"
	"github.com/tnqbao/gau-drive-service/infra"
	"github.com/tnqbao/gau-drive-service/repository"
	"github.com/tnqbao/gau-drive-service/service"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Cannot load .env file, using environment variables instead")
	}

	cfg := config.NewConfig()
	infraClient := infra.InitInfra(cfg)
	defer infraClient.Logger.Shutdown(context.Background())

	repo := repository.InitRepository(infraClient)

	svc := service.New(
		repo.FolderRepo,
		repo.DocumentRepo,
		infraClient.Storage,
		infraClient.Redis,
		infraClient.Produce.CleanupService,
		infraClient.Logger,
		time.Duration(cfg.EnvConfig.Storage.PresignedURLExpire)*time.Second,
	)

	ctrl := controller.NewController(cfg, infraClient, svc)

	router := routes.SetupRouter(ctrl)
	if err := router.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
