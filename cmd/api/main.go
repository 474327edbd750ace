package main

import (
	"context"
	"fmt"
	"os"

	"sidecar-srv/config"
	configML "sidecar-srv/config/ml"
	_ "sidecar-srv/docs" // Import swagger docs
	"sidecar-srv/internal/httpserver"
	"sidecar-srv/pkg/log"
	pkgml "sidecar-srv/pkg/ml"

	"golang.org/x/sync/errgroup"
)

// @title       ML Inference Sidecar API
// @description Local ML compute for embedding, reranking, and entity extraction.
// @version     1
// @BasePath    /
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// 3. Load models. All three load in parallel and any failure aborts
	// startup before the listener opens: the service must never serve with a
	// partially initialized model set.
	var (
		embedder     *pkgml.Embedder
		crossEncoder *pkgml.CrossEncoder
		tagger       *pkgml.Tagger
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		logger.Infof(ctx, "Loading embedding model %s on %s...", cfg.ML.EmbeddingModel, cfg.ML.Device)
		embedder, err = configML.ConnectEmbedder(cfg.ML)
		return err
	})
	g.Go(func() error {
		var err error
		logger.Infof(ctx, "Loading reranker model %s on %s...", cfg.ML.RerankerModel, cfg.ML.Device)
		crossEncoder, err = configML.ConnectCrossEncoder(cfg.ML)
		return err
	})
	g.Go(func() error {
		var err error
		logger.Infof(ctx, "Loading NER model %s on %s...", cfg.ML.NERModel, cfg.ML.Device)
		tagger, err = configML.ConnectTagger(cfg.ML)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Failed to load models: %v", err)
		os.Exit(1)
	}
	defer configML.Disconnect()

	logger.Infof(ctx, "Models loaded (embedding dimension=%d) - ready to serve", embedder.Dim())

	// 4. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Config:      cfg,

		Embedder:     embedder,
		CrossEncoder: crossEncoder,
		Tagger:       tagger,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	if err := httpServer.Run(); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}
}
