package ml

import (
	"sync"

	"sidecar-srv/config"
	pkgml "sidecar-srv/pkg/ml"
)

var (
	embedderInstance     *pkgml.Embedder
	crossEncoderInstance *pkgml.CrossEncoder
	taggerInstance       *pkgml.Tagger
	mu                   sync.Mutex
)

func wrapperOptions(cfg config.MLConfig) []pkgml.Option {
	return []pkgml.Option{
		pkgml.WithDevice(cfg.Device),
		pkgml.WithQuiet(cfg.Quiet),
	}
}

// ConnectEmbedder loads the embedding model once and returns the shared
// instance on later calls.
func ConnectEmbedder(cfg config.MLConfig) (*pkgml.Embedder, error) {
	mu.Lock()
	defer mu.Unlock()

	if embedderInstance != nil {
		return embedderInstance, nil
	}

	if cfg.LibPath != "" {
		pkgml.SetLibraryPath(cfg.LibPath)
	}
	instance, err := pkgml.NewEmbedder(cfg.EmbeddingModel, wrapperOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	embedderInstance = instance
	return embedderInstance, nil
}

// ConnectCrossEncoder loads the reranker model once and returns the shared
// instance on later calls.
func ConnectCrossEncoder(cfg config.MLConfig) (*pkgml.CrossEncoder, error) {
	mu.Lock()
	defer mu.Unlock()

	if crossEncoderInstance != nil {
		return crossEncoderInstance, nil
	}

	if cfg.LibPath != "" {
		pkgml.SetLibraryPath(cfg.LibPath)
	}
	instance, err := pkgml.NewCrossEncoder(cfg.RerankerModel, wrapperOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	crossEncoderInstance = instance
	return crossEncoderInstance, nil
}

// ConnectTagger loads the NER model once and returns the shared instance on
// later calls.
func ConnectTagger(cfg config.MLConfig) (*pkgml.Tagger, error) {
	mu.Lock()
	defer mu.Unlock()

	if taggerInstance != nil {
		return taggerInstance, nil
	}

	if cfg.LibPath != "" {
		pkgml.SetLibraryPath(cfg.LibPath)
	}
	instance, err := pkgml.NewTagger(cfg.NERModel, wrapperOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	taggerInstance = instance
	return taggerInstance, nil
}

// Disconnect releases every loaded model. Called on shutdown.
func Disconnect() {
	mu.Lock()
	defer mu.Unlock()

	if embedderInstance != nil {
		_ = embedderInstance.Close()
		embedderInstance = nil
	}
	if crossEncoderInstance != nil {
		_ = crossEncoderInstance.Close()
		crossEncoderInstance = nil
	}
	if taggerInstance != nil {
		_ = taggerInstance.Close()
		taggerInstance = nil
	}
}
