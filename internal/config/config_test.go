package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("BBC_BASE_URL", "")
	t.Setenv("SCORES_TIMEZONE", "")
	t.Setenv("SCORES_TABLE_WORKERS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.BBCBaseURL != "https://www.bbc.co.uk/sport/football" {
		t.Fatalf("unexpected BBC base URL: %q", cfg.BBCBaseURL)
	}
	if cfg.ScoresLocation == nil || cfg.ScoresLocation.String() != "Europe/London" {
		t.Fatalf("unexpected scores location: %v", cfg.ScoresLocation)
	}
	if cfg.ScoresTableWorkers != 4 {
		t.Fatalf("unexpected table workers: %d", cfg.ScoresTableWorkers)
	}
	if cfg.ScoresRefreshInterval != 30*time.Second {
		t.Fatalf("unexpected refresh interval: %s", cfg.ScoresRefreshInterval)
	}
	if cfg.ServiceName != "football-scores" {
		t.Fatalf("unexpected service name: %q", cfg.ServiceName)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BBCClientConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("trailing slash trimmed", func(t *testing.T) {
		t.Setenv("BBC_BASE_URL", "http://localhost:9999/sport/football/")
		t.Setenv("BBC_TIMEOUT", "3s")
		t.Setenv("BBC_CIRCUIT_FAILURE_COUNT", "5")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.BBCBaseURL != "http://localhost:9999/sport/football" {
			t.Fatalf("unexpected BBC base URL: %q", cfg.BBCBaseURL)
		}
		if cfg.BBCTimeout != 3*time.Second {
			t.Fatalf("unexpected BBC timeout: %s", cfg.BBCTimeout)
		}
		breaker := cfg.BBCCircuitBreaker()
		if !breaker.Enabled || breaker.FailureThreshold != 5 {
			t.Fatalf("unexpected breaker config: %+v", breaker)
		}
	})

	t.Run("non http base url", func(t *testing.T) {
		t.Setenv("BBC_BASE_URL", "ftp://bbc.co.uk")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for non-http BBC_BASE_URL")
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Setenv("BBC_TIMEOUT", "soon")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid BBC_TIMEOUT")
		}
	})

	t.Run("zero body limit", func(t *testing.T) {
		t.Setenv("BBC_MAX_BODY_BYTES", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for BBC_MAX_BODY_BYTES=0")
		}
	})
}

func TestLoad_ScoresConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("unknown timezone", func(t *testing.T) {
		t.Setenv("SCORES_TIMEZONE", "Mars/Olympus")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown SCORES_TIMEZONE")
		}
	})

	t.Run("zero workers", func(t *testing.T) {
		t.Setenv("SCORES_TABLE_WORKERS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for SCORES_TABLE_WORKERS=0")
		}
	})

	t.Run("negative refresh interval", func(t *testing.T) {
		t.Setenv("SCORES_REFRESH_INTERVAL", "-5s")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for negative SCORES_REFRESH_INTERVAL")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SERVICE_NAME", "football-scores-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-scores-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"":        "info",
		"chatty":  "info",
	}
	for input, want := range cases {
		if got := parseLogLevel(input).String(); got != want {
			t.Fatalf("parseLogLevel(%q)=%s, want %s", input, got, want)
		}
	}
}
