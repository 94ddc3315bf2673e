package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Config is read from ~/.scrawl.yaml and then overridden from the
// environment.
type Config struct {
	DataDir         string  `yaml:"data_dir" validate:"required"`
	ExportDir       string  `yaml:"export_dir"`
	LogLevel        string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFile         string  `yaml:"log_file"`
	SystemClipboard bool    `yaml:"system_clipboard"`
	Confirmations   bool    `yaml:"confirmations"`
	CellPixels      int     `yaml:"cell_pixels" validate:"min=1,max=16"`
	ExportPadding   float64 `yaml:"export_padding" validate:"gte=0"`
}

func defaultConfig() *Config {
	dataDir := ".scrawl"
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".local", "share", "scrawl")
	}
	return &Config{
		DataDir:       dataDir,
		LogLevel:      "info",
		Confirmations: true,
		CellPixels:    defaultCellPixels,
		ExportPadding: defaultExportPadding,
	}
}

// configPath honours SCRAWL_CONFIG, falling back to ~/.scrawl.yaml.
func configPath() string {
	if p := os.Getenv("SCRAWL_CONFIG"); p != "" {
		return expandHome(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scrawl.yaml"
	}
	return filepath.Join(home, ".scrawl.yaml")
}

// loadConfig merges the file at path over the defaults. A missing file is
// not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	config.DataDir = getEnv("SCRAWL_DATA_DIR", config.DataDir)
	config.ExportDir = getEnv("SCRAWL_EXPORT_DIR", config.ExportDir)
	config.LogLevel = strings.ToLower(getEnv("SCRAWL_LOG_LEVEL", config.LogLevel))
	config.LogFile = getEnv("SCRAWL_LOG_FILE", config.LogFile)
	config.SystemClipboard = getEnvBool("SCRAWL_SYSTEM_CLIPBOARD", config.SystemClipboard)

	config.DataDir = absPath(expandHome(config.DataDir))
	if config.ExportDir != "" {
		config.ExportDir = absPath(expandHome(config.ExportDir))
	}
	if config.LogFile != "" {
		config.LogFile = absPath(expandHome(config.LogFile))
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// GetExportPath places filename in the export directory, creating it if
// needed. Without an export directory the file lands in the working
// directory.
func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDir == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir %s: %w", c.ExportDir, err)
	}
	return filepath.Join(c.ExportDir, filename), nil
}

// newLogger writes JSON logs to the configured file. The terminal belongs
// to the UI, so without a log file nothing is logged.
func newLogger(c *Config) (*zap.Logger, error) {
	if c.LogFile == "" {
		return zap.NewNop(), nil
	}
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{c.LogFile}
	zc.ErrorOutputPaths = []string{c.LogFile}
	return zc.Build()
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func expandHome(p string) string {
	if !strings.HasPrefix(p, "~") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
