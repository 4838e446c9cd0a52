package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/riskibarqy/football-scores/internal/platform/resilience"
)

// Config stores runtime configuration for the API server and the CLI.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	LogLevel           logging.Level

	BBCBaseURL               string
	BBCTimeout               time.Duration
	BBCMaxBodyBytes          int64
	BBCUserAgent             string
	BBCCircuitEnabled        bool
	BBCCircuitFailureCount   int
	BBCCircuitOpenTimeout    time.Duration
	BBCCircuitHalfOpenMaxReq int
	ScoresTimezone           string
	ScoresLocation           *time.Location
	ScoresRefreshInterval    time.Duration
	ScoresTableWorkers       int

	MetricsEnabled             bool
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

// BBCCircuitBreaker returns the breaker settings guarding the BBC Sport client.
func (c Config) BBCCircuitBreaker() resilience.BreakerConfig {
	return resilience.BreakerConfig{
		Enabled:          c.BBCCircuitEnabled,
		FailureThreshold: c.BBCCircuitFailureCount,
		OpenTimeout:      c.BBCCircuitOpenTimeout,
		HalfOpenMaxReq:   c.BBCCircuitHalfOpenMaxReq,
	}
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsPositiveDuration("HTTP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("HTTP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	bbcBaseURL := strings.TrimRight(strings.TrimSpace(getEnv("BBC_BASE_URL", "https://www.bbc.co.uk/sport/football")), "/")
	if !strings.HasPrefix(bbcBaseURL, "http://") && !strings.HasPrefix(bbcBaseURL, "https://") {
		return Config{}, fmt.Errorf("BBC_BASE_URL must be an http(s) URL, got %q", bbcBaseURL)
	}
	bbcTimeout, err := getEnvAsPositiveDuration("BBC_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	bbcMaxBodyBytes, err := getEnvAsInt("BBC_MAX_BODY_BYTES", 8<<20)
	if err != nil {
		return Config{}, fmt.Errorf("parse BBC_MAX_BODY_BYTES: %w", err)
	}
	if bbcMaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("BBC_MAX_BODY_BYTES must be > 0")
	}
	bbcCircuitEnabled, err := strconv.ParseBool(getEnv("BBC_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BBC_CIRCUIT_ENABLED: %w", err)
	}
	bbcCircuitFailureCount, err := getEnvAsInt("BBC_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse BBC_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if bbcCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("BBC_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	bbcCircuitOpenTimeout, err := getEnvAsPositiveDuration("BBC_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	bbcCircuitHalfOpenMaxReq, err := getEnvAsInt("BBC_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse BBC_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if bbcCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("BBC_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	timezone := strings.TrimSpace(getEnv("SCORES_TIMEZONE", "Europe/London"))
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORES_TIMEZONE: %w", err)
	}
	refreshInterval, err := getEnvAsPositiveDuration("SCORES_REFRESH_INTERVAL", "30s")
	if err != nil {
		return Config{}, err
	}
	tableWorkers, err := getEnvAsInt("SCORES_TABLE_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SCORES_TABLE_WORKERS: %w", err)
	}
	if tableWorkers < 1 {
		return Config{}, fmt.Errorf("SCORES_TABLE_WORKERS must be >= 1")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("SERVICE_NAME", "football-scores"),
		ServiceVersion:             getEnv("SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		LogLevel:                   parseLogLevel(getEnv("LOG_LEVEL", "info")),
		BBCBaseURL:                 bbcBaseURL,
		BBCTimeout:                 bbcTimeout,
		BBCMaxBodyBytes:            int64(bbcMaxBodyBytes),
		BBCUserAgent:               strings.TrimSpace(getEnv("BBC_USER_AGENT", "")),
		BBCCircuitEnabled:          bbcCircuitEnabled,
		BBCCircuitFailureCount:     bbcCircuitFailureCount,
		BBCCircuitOpenTimeout:      bbcCircuitOpenTimeout,
		BBCCircuitHalfOpenMaxReq:   bbcCircuitHalfOpenMaxReq,
		ScoresTimezone:             timezone,
		ScoresLocation:             location,
		ScoresRefreshInterval:      refreshInterval,
		ScoresTableWorkers:         tableWorkers,
		MetricsEnabled:             metricsEnabled,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
