package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-config-sets/internal/config"
	"github.com/MKhiriev/go-config-sets/internal/handler"
	"github.com/MKhiriev/go-config-sets/internal/logger"
	"github.com/MKhiriev/go-config-sets/internal/server"
	"github.com/MKhiriev/go-config-sets/internal/service"
	"github.com/MKhiriev/go-config-sets/internal/store"
	"github.com/MKhiriev/go-config-sets/internal/workers"
	"github.com/MKhiriev/go-config-sets/models"
)

const cmdIssueToken = "issue-token"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	args := os.Args[1:]
	issueToken, subject := false, ""
	if len(args) > 0 && args[0] == cmdIssueToken {
		issueToken, args = true, args[1:]
		if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
			subject, args = args[0], args[1:]
		}
	}

	log := logger.NewLogger("config-sets-server")
	cfg, err := config.GetStructuredConfig(args)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if issueToken {
		if err = printToken(ctx, services.AuthService, subject); err != nil {
			log.Fatal().Err(err).Msg("error issuing token")
		}
		return
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	address := server.ListenAddress(ctx, cfg.Server, services.UISettingsService)
	srv, err := server.NewServer(handlers, workers.NewWorkers(storages, cfg.Workers, log), address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}

func printToken(ctx context.Context, auth service.AuthService, subject string) error {
	if subject == "" {
		subject = "admin"
	}

	token, err := auth.CreateToken(ctx, subject)
	if err != nil {
		return err
	}
	fmt.Println(token.String())
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
