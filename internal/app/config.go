package app

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/specialistvlad/pwchain/internal/options"
	"github.com/specialistvlad/pwchain/internal/wordstore"
)

// EnvPrefix is the prefix of every environment variable read by LoadEnvDefaults.
const EnvPrefix = "PWCHAIN_"

var (
	// ErrInvalidConfig is returned by NewConfig for rejected configurations.
	ErrInvalidConfig = errors.New("invalid configuration")

	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"text", "json"}
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Length options.PasswordLength `env:"LENGTH" envDefault:"r"`
	Count  int                    `env:"COUNT" envDefault:"1"`

	RecipePath string `env:"RECIPE"`   // hcl file or directory, empty for the built-in recipe
	WordsDB    string `env:"WORDS_DB"` // bbolt file with extra word lists

	// ImportWords is a "list=path" pair. The file is imported into WordsDB
	// before generating.
	ImportWords string

	// Seed makes the run reproducible when set.
	Seed *uint64 `env:"SEED"`

	// ListStrategies prints the available strategies instead of generating.
	ListStrategies bool

	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	var errs []string

	if cfg.Count < 1 {
		errs = append(errs, fmt.Sprintf("count must be at least 1, got %d", cfg.Count))
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if !slices.Contains(logLevels, cfg.LogLevel) {
		errs = append(errs, fmt.Sprintf("log-level must be one of %s, got %q", strings.Join(logLevels, ", "), cfg.LogLevel))
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if !slices.Contains(logFormats, cfg.LogFormat) {
		errs = append(errs, fmt.Sprintf("log-format must be one of %s, got %q", strings.Join(logFormats, ", "), cfg.LogFormat))
	}

	if cfg.ImportWords != "" {
		if _, _, err := cfg.WordImport(); err != nil {
			errs = append(errs, err.Error())
		}
		if cfg.WordsDB == "" {
			errs = append(errs, "import-words requires words-db")
		}
	}

	if _, err := cfg.Length.MarshalText(); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w:\n- %s", ErrInvalidConfig, strings.Join(errs, "\n- "))
	}
	return &cfg, nil
}

// WordImport splits ImportWords into the list name and the file path.
func (c *Config) WordImport() (list, path string, err error) {
	list, path, ok := strings.Cut(c.ImportWords, "=")
	if !ok || path == "" {
		return "", "", fmt.Errorf("import-words must look like name=path, got %q", c.ImportWords)
	}
	if err := wordstore.ValidateName(list); err != nil {
		return "", "", err
	}
	return list, path, nil
}

// LoadEnvDefaults reads the optional dotenv files (".env" when none are
// given) and then parses the PWCHAIN_* environment variables. Missing
// dotenv files are ignored. The result is meant as flag defaults and is not
// validated.
func LoadEnvDefaults(dotenvFiles ...string) (Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, file := range dotenvFiles {
		// godotenv.Load never overrides variables that are already set.
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return parseEnv(env.ToMap(os.Environ()))
}

// parseEnv parses a Config from the given environment.
func parseEnv(environ map[string]string) (Config, error) {
	var cfg Config
	err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environ,
	})
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
