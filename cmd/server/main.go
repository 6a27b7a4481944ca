package main

import (
	"fmt"

	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/config"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/extension"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/handler"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/logger"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/resolver"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/server"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/service"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/watcher"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/internal/workers"
	"github.com/educational-technology-collective/etc-jupyterlab-telemetry-library/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	extensionName, err := cfg.ExtensionName()
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.App.PackageJSONPath).Msg("error reading extension name")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	dirs, err := cfg.ConfigDirs()
	if err != nil {
		log.Fatal().Err(err).Msg("error computing config search path")
	}
	order, err := resolver.ParseOrder(cfg.Search.Order)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid search order")
	}

	log.Info().
		Str("extension", extensionName).
		Strs("dirs", dirs).
		Str("order", string(order)).
		Str("load_mode", cfg.Search.LoadMode).
		Msg("configuration search prepared")

	services, err := service.NewServices(cfg, resolver.New(order, log), dirs, extensionName, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	background := workers.NewWorkers()
	if cfg.Search.LoadMode == config.LoadOnChange {
		w, err := watcher.New(dirs, resolver.FileName(extensionName), log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating config watcher")
		}
		w.Add(services.ConfigService)
		background.Add(w)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, extension.RouteNamespace(extensionName), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
