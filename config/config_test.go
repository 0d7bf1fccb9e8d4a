// Copyright (c) 2025 Darren Soothill
// Licensed under the MIT License

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soothill/smart-house/home"
	apperrors "github.com/soothill/smart-house/pkg/errors"
	"github.com/soothill/smart-house/pkg/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantErr   bool
		wantField string
	}{
		{
			name: "valid config",
			config: Config{
				Logging: LoggingConfig{Level: "info"},
				Report:  ReportConfig{RoomOrder: "name"},
			},
		},
		{
			name: "valid insertion order",
			config: Config{
				Logging: LoggingConfig{Level: "debug"},
				Report:  ReportConfig{RoomOrder: "insertion"},
			},
		},
		{
			name: "invalid log level",
			config: Config{
				Logging: LoggingConfig{Level: "verbose"},
				Report:  ReportConfig{RoomOrder: "name"},
			},
			wantErr:   true,
			wantField: "logging.level",
		},
		{
			name: "missing log level",
			config: Config{
				Report: ReportConfig{RoomOrder: "name"},
			},
			wantErr:   true,
			wantField: "logging.level",
		},
		{
			name: "invalid room order",
			config: Config{
				Logging: LoggingConfig{Level: "info"},
				Report:  ReportConfig{RoomOrder: "random"},
			},
			wantErr:   true,
			wantField: "report.room_order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var cfgErr *apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Validate() error = %T, want *ConfigError", err)
			}
			if cfgErr.Field != tt.wantField {
				t.Errorf("ConfigError.Field = %q, want %q", cfgErr.Field, tt.wantField)
			}
			if !errors.Is(err, apperrors.ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidate_MessageListsChoices(t *testing.T) {
	cfg := Config{
		Logging: LoggingConfig{Level: "info"},
		Report:  ReportConfig{RoomOrder: "random"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	if !strings.Contains(err.Error(), "name, insertion") {
		t.Errorf("Validate() error = %q, want allowed values listed", err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Report.RoomOrder != "name" {
		t.Errorf("Expected default room order 'name', got %s", cfg.Report.RoomOrder)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() config should be valid: %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "logging: [unclosed\n")

	_, err := Load(path)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_ROOM_ORDER", "")
	path := writeConfig(t, `
logging:
  level: debug
report:
  room_order: insertion
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Report.RoomOrder != "insertion" {
		t.Errorf("Expected room order 'insertion', got %s", cfg.Report.RoomOrder)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: info
report:
  room_order: name
`)

	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("REPORT_ROOM_ORDER", "insertion")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("Expected log level from env 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Report.RoomOrder != "insertion" {
		t.Errorf("Expected room order from env 'insertion', got %s", cfg.Report.RoomOrder)
	}
}

func TestLoad_InvalidEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, "logging:\n  level: info\n")

	t.Setenv("REPORT_ROOM_ORDER", "by-size")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected error for invalid REPORT_ROOM_ORDER")
	}
	if !apperrors.IsConfigError(err) {
		t.Errorf("Expected ConfigError, got %T: %v", err, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_ROOM_ORDER", "")
	path := writeConfig(t, "{}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Report.RoomOrder != "name" {
		t.Errorf("Expected default room order 'name', got %s", cfg.Report.RoomOrder)
	}
}

func TestLoad_NormalizesCase(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("REPORT_ROOM_ORDER", "")
	path := writeConfig(t, `
logging:
  level: " DEBUG "
report:
  room_order: Insertion
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Report.RoomOrder != "insertion" {
		t.Errorf("Load() = %+v, want normalized values", cfg)
	}
}

func TestReportConfig_HouseOptions(t *testing.T) {
	tests := []struct {
		order   string
		want    []string
		wantErr bool
	}{
		{order: "name", want: []string{"Attic", "Zen Room"}},
		{order: "insertion", want: []string{"Zen Room", "Attic"}},
		{order: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.order, func(t *testing.T) {
			opts, err := ReportConfig{RoomOrder: tt.order}.HouseOptions()
			if (err != nil) != tt.wantErr {
				t.Fatalf("HouseOptions() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			house := home.NewHouse("H", opts...)
			for _, name := range []string{"Zen Room", "Attic"} {
				if err := house.AddRoom(home.NewRoom(name)); err != nil {
					t.Fatalf("AddRoom(%q) error = %v", name, err)
				}
			}

			report := house.CreateReport(nil)
			first := strings.Index(report, "Room: "+tt.want[0])
			second := strings.Index(report, "Room: "+tt.want[1])
			if first < 0 || second < 0 || first > second {
				t.Errorf("report rooms not in %v order:\n%s", tt.want, report)
			}
		})
	}
}

func TestInitLogging(t *testing.T) {
	defer logger.Reset()

	cfg := Default()
	cfg.Logging.Level = "error"
	cfg.InitLogging()

	if got := logger.Get().GetLevel().String(); got != "error" {
		t.Errorf("logger level = %s, want error", got)
	}
}
