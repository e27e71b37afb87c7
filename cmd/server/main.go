package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-secure-api/internal/config"
	"github.com/MKhiriev/go-secure-api/internal/handler"
	"github.com/MKhiriev/go-secure-api/internal/logger"
	"github.com/MKhiriev/go-secure-api/internal/payment"
	"github.com/MKhiriev/go-secure-api/internal/secrets"
	"github.com/MKhiriev/go-secure-api/internal/server"
	"github.com/MKhiriev/go-secure-api/internal/service"
	"github.com/MKhiriev/go-secure-api/internal/store"
	"github.com/MKhiriev/go-secure-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-secure-api")
	log.Info().Object("build", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)).Msg("starting")

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// never log cfg as a whole: it holds the secrets
	log.Info().Msgf("Environment: %s", cfg.App.Env)

	secretStore, err := secrets.New(cfg.Secrets.DBPassword, cfg.Secrets.APIKey, cfg.Secrets.SigningKey)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading secrets")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, secretStore, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	gateway := payment.NewStubGateway(secretStore.SigningKey(), cfg.App.TokenIssuer, log)

	services, err := service.NewServices(storages, gateway, secretStore, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
		storages.Close()
		os.Exit(1)
	}
}
