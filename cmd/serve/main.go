// Package classification MCE Cluster Generator Service.
//
// Generates MCE cluster descriptors from compact generation requests
//
// Terms Of Service:
//
// there are no TOS at this moment, use at your own risk we take no responsibility
//
//	Version: 1.0.0
//	License: TODO
//	Contact: https://github.com/mce-sre/cluster-generator
//
//	Consumes:
//	  - application/json
//
//	Produces:
//	  - application/json
//
// swagger:meta
package main

import (
	stdlog "log"
	"log/slog"
	"os"

	"github.com/mce-sre/cluster-generator/internal/handler"
	"github.com/mce-sre/cluster-generator/internal/log"
	"github.com/mce-sre/cluster-generator/internal/server"
	"github.com/mce-sre/cluster-generator/pkg/cluster"
	"github.com/mce-sre/cluster-generator/pkg/config"
	"github.com/mce-sre/cluster-generator/pkg/storage"
)

func main() {
	if err := run(); err != nil {
		stdlog.Fatal(err)
	}
}

func run() error {
	cfg := config.New()

	logger := slog.New(log.New(slog.NewJSONHandler(os.Stdout, nil)))
	slog.SetDefault(logger)

	if err := handler.RegisterValidation(); err != nil {
		return err
	}

	db, err := storage.NewDatabase(cfg.Postgresql, logger)
	if err != nil {
		return err
	}

	catalog := cluster.DefaultCatalog()
	mirrors := cluster.NewMirrorStore(catalog, cfg.MirrorSourcesDir)
	clusterRepository := cluster.NewRepository(db)
	clusterService := cluster.NewService(catalog, mirrors, clusterRepository)
	clusterHandler := cluster.NewHandler(catalog, clusterService)

	r := server.GetEngine(logger, cfg.BasePath, clusterHandler)
	return r.Run()
}
