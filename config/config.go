package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// ML - local inference models
	ML MLConfig

	// Internal - service-to-service authentication (optional)
	InternalConfig InternalConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// MLConfig selects the models and compute device for the inference runtime.
type MLConfig struct {
	EmbeddingModel string
	RerankerModel  string
	NERModel       string
	Device         string // "cpu" or "gpu"
	LibPath        string // optional path to the mlrt shared library
	Quiet          bool
}

// InternalConfig is the configuration for internal service authentication.
type InternalConfig struct {
	// ServiceKeys maps caller service names to their shared keys. Leave empty
	// to disable ServiceAuth entirely.
	ServiceKeys map[string]string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("sidecar-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/sidecar/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The original deployment contract names these env vars without a
	// prefix; keep honoring both spellings.
	_ = viper.BindEnv("ml.embedding_model", "ML_EMBEDDING_MODEL", "EMBEDDING_MODEL")
	_ = viper.BindEnv("ml.reranker_model", "ML_RERANKER_MODEL", "RERANKER_MODEL")
	_ = viper.BindEnv("ml.ner_model", "ML_NER_MODEL", "NER_MODEL")
	_ = viper.BindEnv("ml.device", "ML_DEVICE", "DEVICE")
	_ = viper.BindEnv("ml.lib_path", "ML_LIB_PATH", "MLRT_LIBRARY")

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// ML
	cfg.ML.EmbeddingModel = viper.GetString("ml.embedding_model")
	cfg.ML.RerankerModel = viper.GetString("ml.reranker_model")
	cfg.ML.NERModel = viper.GetString("ml.ner_model")
	cfg.ML.Device = viper.GetString("ml.device")
	cfg.ML.LibPath = viper.GetString("ml.lib_path")
	cfg.ML.Quiet = viper.GetBool("ml.quiet")

	// Internal service keys
	serviceKeys := make(map[string]string)
	if viper.IsSet("internal.service_keys") {
		for service, key := range viper.GetStringMapString("internal.service_keys") {
			serviceKeys[service] = key
		}
	}
	cfg.InternalConfig.ServiceKeys = serviceKeys

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8000)
	viper.SetDefault("http_server.mode", "release")

	// Logger
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)

	// ML - model defaults mirror the reference deployment
	viper.SetDefault("ml.embedding_model", "bge-large-en-v1.5")
	viper.SetDefault("ml.reranker_model", "ms-marco-minilm-l12-v2")
	viper.SetDefault("ml.ner_model", "bert-base-ner")
	viper.SetDefault("ml.device", "cpu")
	viper.SetDefault("ml.quiet", true)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port == 0 {
		return fmt.Errorf("http_server.port is required")
	}
	if cfg.ML.EmbeddingModel == "" {
		return fmt.Errorf("ml.embedding_model is required")
	}
	if cfg.ML.RerankerModel == "" {
		return fmt.Errorf("ml.reranker_model is required")
	}
	if cfg.ML.NERModel == "" {
		return fmt.Errorf("ml.ner_model is required")
	}
	if cfg.ML.Device != "cpu" && cfg.ML.Device != "gpu" {
		return fmt.Errorf("ml.device must be cpu or gpu, got %q", cfg.ML.Device)
	}
	return nil
}
