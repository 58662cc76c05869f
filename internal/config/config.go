package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gocolumns/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete library configuration
type Config struct {
	Loader LoaderConfig
	Log    LogConfig
}

// LoaderConfig holds the rules applied when reading a table from disk
type LoaderConfig struct {
	MissingSentinels []string
	NumericThreshold float64
	TrimSpace        bool
	SheetName        string // xlsx only; empty selects the first sheet
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// defaultSentinels mirrors coercer.DefaultMissingSentinels; config sits below
// the adapters and does not import them.
var defaultSentinels = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None", "n/a",
	"nan", "null",
}

// Default returns the configuration used when no environment is set
func Default() *Config {
	sentinels := make([]string, len(defaultSentinels))
	copy(sentinels, defaultSentinels)
	return &Config{
		Loader: LoaderConfig{
			MissingSentinels: sentinels,
			NumericThreshold: 0.8,
			TrimSpace:        true,
		},
		Log: LogConfig{Level: "INFO"},
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := Default()

	loader, err := loadLoaderConfig(config.Loader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load loader configuration")
	}
	config.Loader = *loader
	config.Log = LogConfig{Level: getEnvOrDefault("LOG_LEVEL", config.Log.Level)}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// LoadWithEnvFile applies the given .env files (default ".env") before Load.
// Variables already set in the environment win; missing files are ignored.
func LoadWithEnvFile(paths ...string) (*Config, error) {
	if err := godotenv.Load(paths...); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "failed to read env file")
	}
	return Load()
}

func loadLoaderConfig(defaults LoaderConfig) (*LoaderConfig, error) {
	threshold := defaults.NumericThreshold
	if raw := os.Getenv("GOCOLUMNS_NUMERIC_THRESHOLD"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.ConfigInvalidf("GOCOLUMNS_NUMERIC_THRESHOLD must be a number, got %q", raw)
		}
		threshold = v
	}

	sentinels := defaults.MissingSentinels
	if raw, ok := os.LookupEnv("GOCOLUMNS_NA_VALUES"); ok {
		custom := splitList(raw)
		if getEnvBoolOrDefault("GOCOLUMNS_KEEP_DEFAULT_NA", true) {
			sentinels = append(append([]string{}, sentinels...), custom...)
		} else {
			sentinels = custom
		}
	}

	return &LoaderConfig{
		MissingSentinels: sentinels,
		NumericThreshold: threshold,
		TrimSpace:        getEnvBoolOrDefault("GOCOLUMNS_TRIM_SPACE", defaults.TrimSpace),
		SheetName:        getEnvOrDefault("GOCOLUMNS_XLSX_SHEET", defaults.SheetName),
	}, nil
}

func validateConfig(config *Config) error {
	t := config.Loader.NumericThreshold
	if t <= 0 || t > 1 {
		return errors.ConfigInvalidf("numeric threshold must be in (0, 1], got %v", t)
	}
	switch strings.ToUpper(config.Log.Level) {
	case "ERROR", "WARN", "INFO", "DEBUG", "TRACE":
	default:
		return errors.ConfigInvalidf("unknown LOG_LEVEL %q", config.Log.Level)
	}
	return nil
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
