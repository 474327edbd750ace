package httpserver

import (
	"errors"

	"sidecar-srv/config"
	"sidecar-srv/pkg/log"
	pkgml "sidecar-srv/pkg/ml"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	config      *config.Config

	// Model wrappers, loaded before the server starts accepting traffic
	embedder     *pkgml.Embedder
	crossEncoder *pkgml.CrossEncoder
	tagger       *pkgml.Tagger
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Config      *config.Config

	// Model wrappers
	Embedder     *pkgml.Embedder
	CrossEncoder *pkgml.CrossEncoder
	Tagger       *pkgml.Tagger
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		config:      cfg.Config,

		// Model wrappers
		embedder:     cfg.Embedder,
		crossEncoder: cfg.CrossEncoder,
		tagger:       cfg.Tagger,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("config is required")
	}

	// Model wrappers: the server must never start with a partially
	// initialized model set.
	if srv.embedder == nil {
		return errors.New("embedder is required")
	}
	if srv.crossEncoder == nil {
		return errors.New("crossEncoder is required")
	}
	if srv.tagger == nil {
		return errors.New("tagger is required")
	}

	return nil
}
