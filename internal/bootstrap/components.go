// Package bootstrap wires service components from configuration.
package bootstrap

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/niticheck/classifier/internal/api"
	"github.com/niticheck/classifier/internal/classifier"
	"github.com/niticheck/classifier/internal/config"
	"github.com/niticheck/classifier/internal/corpus"
	"github.com/niticheck/classifier/internal/database"
	"github.com/niticheck/classifier/internal/extract"
	"github.com/niticheck/classifier/internal/logger"
	"github.com/niticheck/classifier/internal/processor"
	"github.com/niticheck/classifier/internal/searchclient"
	"github.com/niticheck/classifier/internal/telemetry"
)

// HTTPComponents holds everything the HTTP server needs.
type HTTPComponents struct {
	DB        *sqlx.DB
	Corpus    *corpus.Corpus
	Handler   *api.Handler
	Server    *api.Server
	Telemetry *telemetry.Provider
}

// LoadConfig loads configuration from CONFIG_PATH or config.yml.
func LoadConfig() (*config.Config, error) {
	return config.Load(config.GetConfigPath("config.yml"))
}

// CreateLogger builds the service logger from configuration.
func CreateLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development || cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// NewHTTPComponents creates all components for the HTTP server.
func NewHTTPComponents(cfg *config.Config, log logger.Logger) (*HTTPComponents, error) {
	tp := telemetry.NewProvider()

	ranker := corpus.New()
	log.Info("Reference corpus loaded",
		logger.Int("examples", ranker.Size()),
		logger.Strings("languages", ranker.Languages()),
	)

	engine := classifier.New(ranker, log, tp, classifier.Config{
		Version:    cfg.Service.Version,
		LatencyMin: cfg.Classifier.LatencyMin,
		LatencyMax: cfg.Classifier.LatencyMax,
	})
	batch := processor.New(engine, cfg.Classifier.Concurrency, log, tp)

	db, err := database.NewSQLiteConnection(database.Config{
		Path:           cfg.Database.Path,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}
	historyRepo := database.NewAnalysisHistoryRepository(db)

	search, err := setupSearch(cfg, log, tp)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	handler := api.NewHandler(api.HandlerConfig{
		Classifier:     engine,
		Batch:          batch,
		Corpus:         ranker,
		HistoryRepo:    historyRepo,
		Extractor:      extract.New(cfg.Server.MaxUploadBytes),
		Search:         search,
		Telemetry:      tp,
		Logger:         log,
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
	})

	server := api.NewServer(api.ServerConfig{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		Debug:          cfg.Service.Debug,
	}, log, func(router *gin.Engine) {
		api.SetupRoutes(router, handler, tp)
	})

	return &HTTPComponents{
		DB:        db,
		Corpus:    ranker,
		Handler:   handler,
		Server:    server,
		Telemetry: tp,
	}, nil
}

// setupSearch builds the advanced search client when enabled. A missing API
// key with search enabled is a configuration error; disabled search returns
// a nil client.
func setupSearch(cfg *config.Config, log logger.Logger, tp *telemetry.Provider) (*searchclient.Client, error) {
	if !cfg.Search.Enabled {
		return nil, nil
	}

	client, err := searchclient.New(searchclient.Config{
		APIKey:            cfg.Search.APIKey,
		Model:             cfg.Search.Model,
		MaxTokens:         cfg.Search.MaxTokens,
		Timeout:           cfg.Search.Timeout,
		RequestsPerMinute: cfg.Search.RequestsPerMinute,
		Burst:             cfg.Search.Burst,
	}, log, tp)
	if err != nil {
		if errors.Is(err, searchclient.ErrDisabled) {
			return nil, fmt.Errorf("search enabled but ANTHROPIC_API_KEY is not set")
		}
		return nil, fmt.Errorf("setup search client: %w", err)
	}

	log.Info("Advanced search enabled", logger.String("model", cfg.Search.Model))
	return client, nil
}
