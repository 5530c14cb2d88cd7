// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-catalog-keeper/internal/adapter"
	"github.com/MKhiriev/go-catalog-keeper/internal/config"
	"github.com/MKhiriev/go-catalog-keeper/internal/handler"
	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/internal/server"
	"github.com/MKhiriev/go-catalog-keeper/internal/service"
	"github.com/MKhiriev/go-catalog-keeper/internal/store"
	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/shopspring/decimal"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const connectTimeout = 10 * time.Second

func main() {
	printBuildInfo()

	// prices are written as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.NewLogger("go-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.AutoMigrate {
		if err = db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
	}

	objects, err := adapter.NewObjectStorage(cfg.Storage.Objects, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating object storage client")
	}

	services, err := service.NewServices(
		store.NewStorages(db, log),
		objects,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		*cfg,
		log,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if cfg.App.MasterEmail != "" {
		ctx, cancel = context.WithTimeout(log.WithContext(context.Background()), connectTimeout)
		_, err = services.AuthService.EnsureMasterAccount(ctx, cfg.App.MasterEmail, cfg.App.MasterPassword)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("error preparing master account")
		}
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = models.BuildInfoNotAvailable
	}

	if buildDate == "" {
		buildDate = models.BuildInfoNotAvailable
	}

	if buildCommit == "" {
		buildCommit = models.BuildInfoNotAvailable
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
