package app

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/football-scores/external/bbcsport"
	"github.com/riskibarqy/football-scores/internal/config"
	"github.com/riskibarqy/football-scores/internal/domain/league"
	"github.com/riskibarqy/football-scores/internal/interfaces/httpapi"
	"github.com/riskibarqy/football-scores/internal/observability"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/riskibarqy/football-scores/internal/usecase"
)

// NewScoresService wires the BBC Sport client and extractor into the
// pipeline. metrics may be nil.
func NewScoresService(cfg config.Config, logger *logging.Logger, metrics *observability.Metrics) *usecase.ScoresService {
	if logger == nil {
		logger = logging.Default()
	}
	registry := league.Default()

	clientCfg := bbcsport.ClientConfig{
		BaseURL:        cfg.BBCBaseURL,
		UserAgent:      cfg.BBCUserAgent,
		Timeout:        cfg.BBCTimeout,
		MaxBodyBytes:   cfg.BBCMaxBodyBytes,
		Location:       cfg.ScoresLocation,
		Logger:         logger.Named("bbcsport"),
		CircuitBreaker: cfg.BBCCircuitBreaker(),
	}
	var observer usecase.ExtractionObserver
	if metrics != nil {
		clientCfg.Observer = metrics
		observer = metrics
	}

	client := bbcsport.NewClient(clientCfg)
	extractor := bbcsport.NewExtractor(bbcsport.ExtractorConfig{
		Registry: registry,
		Location: cfg.ScoresLocation,
		Logger:   logger.Named("extract"),
	})

	return usecase.NewScoresService(
		registry,
		client,
		extractor,
		observer,
		usecase.ScoresServiceConfig{TableWorkers: cfg.ScoresTableWorkers},
		logger.Named("scores"),
	)
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	metrics := observability.NewMetrics()
	scoresSvc := NewScoresService(cfg, logger, metrics)

	routerCfg := httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	}
	if cfg.MetricsEnabled {
		routerCfg.MetricsHandler = metrics.Handler()
	}

	handler := httpapi.NewHandler(scoresSvc, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger, routerCfg)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
