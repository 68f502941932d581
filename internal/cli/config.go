package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/okdaichi/metro/observability"
	"gopkg.in/yaml.v3"
)

type config struct {
	NetworkFile   string
	Router        string
	LogLevel      slog.Level
	LogFormat     string
	Observability observability.Config
}

const (
	defaultConfigFile  = "configs/config.metro.yaml"
	defaultNetworkFile = "delhi-metro.yaml"
	defaultService     = "metro"
)

// Environment variables read after .env files are loaded.
const (
	envConfig   = "METRO_CONFIG"
	envLogLevel = "METRO_LOG_LEVEL"
)

// loadEnv loads .env from the working directory into the process
// environment. Variables already set win. A missing file is fine.
func loadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// configPath returns the config file to use: the -config flag if given,
// then $METRO_CONFIG, then the default.
func configPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(envConfig); env != "" {
		return env
	}
	return defaultConfigFile
}

func loadConfig(filename string) (*config, error) {
	type yamlConfig struct {
		Network struct {
			File   string `yaml:"file"`
			Router string `yaml:"router"`
		} `yaml:"network"`
		Log struct {
			Level  string `yaml:"level"`
			Format string `yaml:"format"`
		} `yaml:"log"`
		Observability struct {
			Service     string `yaml:"service"`
			MetricsFile string `yaml:"metrics_file"`
			TraceAddr   string `yaml:"trace_addr"`
			LogAddr     string `yaml:"log_addr"`
		} `yaml:"observability"`
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	var ymlCfg yamlConfig
	if err := yaml.NewDecoder(file).Decode(&ymlCfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Set defaults
	if ymlCfg.Network.File == "" {
		ymlCfg.Network.File = defaultNetworkFile
	}
	if ymlCfg.Log.Format == "" {
		ymlCfg.Log.Format = "text"
	}
	if ymlCfg.Observability.Service == "" {
		ymlCfg.Observability.Service = defaultService
	}
	if env := os.Getenv(envLogLevel); env != "" {
		ymlCfg.Log.Level = env
	}

	level, err := parseLevel(ymlCfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if ymlCfg.Log.Format != "text" && ymlCfg.Log.Format != "json" {
		return nil, fmt.Errorf("invalid log format %q (want text or json)", ymlCfg.Log.Format)
	}

	// A relative network file is relative to the config file.
	networkFile := ymlCfg.Network.File
	if !filepath.IsAbs(networkFile) {
		networkFile = filepath.Join(filepath.Dir(filename), networkFile)
	}

	return &config{
		NetworkFile: networkFile,
		Router:      ymlCfg.Network.Router,
		LogLevel:    level,
		LogFormat:   ymlCfg.Log.Format,
		Observability: observability.Config{
			Service:     ymlCfg.Observability.Service,
			TraceAddr:   ymlCfg.Observability.TraceAddr,
			LogAddr:     ymlCfg.Observability.LogAddr,
			Metrics:     ymlCfg.Observability.MetricsFile != "",
			MetricsFile: ymlCfg.Observability.MetricsFile,
		},
	}, nil
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
