package main

import (
	"log"

	"flatfinder/internal/auth"
	"flatfinder/internal/blobstore/file"
	"flatfinder/internal/config"
	"flatfinder/internal/db"
	"flatfinder/internal/logging"
	"flatfinder/internal/service"
	"flatfinder/internal/store"
	"flatfinder/internal/web"
)

func main() {
	cfg := config.Load()

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer cleanup()

	var propertyService *service.PropertyService
	switch cfg.StorageBackend {
	case "local":
		blobs, err := file.NewStore(cfg.DataPath)
		if err != nil {
			logger.Error("failed to initialize blob store", "error", err)
			return
		}
		logger.Info("using local blob storage", "path", cfg.DataPath)
		propertyService = service.NewPropertyService(store.NewLocalStore(blobs), logger)
	default:
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			return
		}
		defer func() {
			if err := database.Close(); err != nil {
				logger.Error("failed to close database", "error", err)
			}
		}()
		logger.Info("using sqlite storage", "path", cfg.DBPath)
		propertyService = service.NewPropertyService(store.NewPropertyStore(database), logger)
	}

	var authn auth.Authenticator
	switch cfg.AuthMode {
	case "header":
		logger.Info("trusting proxy auth header", "header", cfg.AuthHeader)
		authn = auth.Header{Name: cfg.AuthHeader}
	default:
		authn = auth.Static{ID: cfg.AuthUser}
	}

	server := web.NewServer(propertyService, authn, logger)

	if err := server.ListenAndServe(cfg.ListenAddr); err != nil {
		logger.Error("server error", "error", err)
	}
}
