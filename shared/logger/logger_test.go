package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"tavola/config"
	"tavola/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func restoreLogger(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restoreLogger(t)

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}
}

func TestNew(t *testing.T) {
	restoreLogger(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	t.Run("production writes json", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.Env = "production"
		cfg.App.Name = "tavola"

		var buf bytes.Buffer
		l := logger.New(&buf, cfg)
		l.Info().Str("id", "BK0A1B2C3D4E5F").Msg("booking created")

		var line map[string]any
		if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
			t.Fatalf("expected a json line, got %q: %v", buf.String(), err)
		}

		if line["service"] != "tavola" || line["id"] != "BK0A1B2C3D4E5F" || line["message"] != "booking created" {
			t.Errorf("unexpected fields %v", line)
		}
	})

	t.Run("development writes console text", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.Env = "development"

		var buf bytes.Buffer
		l := logger.New(&buf, cfg)
		l.Warn().Msg("storage unavailable")

		if json.Valid(buf.Bytes()) {
			t.Errorf("expected console output, got json %q", buf.String())
		}

		if !bytes.Contains(buf.Bytes(), []byte("storage unavailable")) {
			t.Errorf("expected message in output, got %q", buf.String())
		}
	})
}

func TestErrorWithStack(t *testing.T) {
	restoreLogger(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("failed to save snapshot"))

	if !bytes.Contains(buf.Bytes(), []byte("failed to save snapshot")) {
		t.Errorf("expected error in output, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected zerolog.Level
	}{
		{logLevel: "trace", expected: zerolog.TraceLevel},
		{logLevel: "debug", expected: zerolog.DebugLevel},
		{logLevel: "info", expected: zerolog.InfoLevel},
		{logLevel: "warn", expected: zerolog.WarnLevel},
		{logLevel: "error", expected: zerolog.ErrorLevel},
		{logLevel: "disabled", expected: zerolog.Disabled},
		{logLevel: "loud", expected: zerolog.TraceLevel},
		{logLevel: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run("level "+tt.logLevel, func(t *testing.T) {
			restoreLogger(t)

			var buf bytes.Buffer
			log.Logger = zerolog.New(&buf)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expected {
				t.Errorf("expected global level %s, got %s", tt.expected, zerolog.GlobalLevel())
			}
		})
	}
}

func TestComponent(t *testing.T) {
	restoreLogger(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	componentLogger := logger.Component("booking-store")
	componentLogger.Warn().Msg("storage unavailable")

	if !bytes.Contains(buf.Bytes(), []byte(`"component":"booking-store"`)) {
		t.Errorf("expected component field in output, got %s", buf.String())
	}
}
