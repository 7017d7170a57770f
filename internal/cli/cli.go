package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/specialistvlad/pwchain/internal/app"
	"github.com/specialistvlad/pwchain/internal/options"
)

// Exit codes used by ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments on top of the defaults found in the
// environment. It returns a populated Config, a boolean indicating if the
// program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	defaults, err := app.LoadEnvDefaults()
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	return parse(args, output, defaults)
}

func parse(args []string, output io.Writer, defaults app.Config) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pwchain", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
pwchain - composes passwords from an ordered chain of strategies.

Usage:
  pwchain [options] [RECIPE_PATH]

Arguments:
  RECIPE_PATH
    Path to a single .hcl recipe or a directory of .hcl files.
    The built-in recipe is used when omitted.

Environment:
  Every option marked (env) defaults to %s<NAME>, e.g. %sLENGTH=l.
  A .env file in the working directory is read as well.

Options:
`, app.EnvPrefix, app.EnvPrefix)
		flagSet.PrintDefaults()
	}

	cfg := defaults
	lengthUsage := fmt.Sprintf("Password length category: %s (env LENGTH).", strings.Join(options.Variants(), ", "))
	flagSet.TextVar(&cfg.Length, "length", cfg.Length, lengthUsage)
	flagSet.TextVar(&cfg.Length, "l", cfg.Length, "Password length category (shorthand).")
	flagSet.IntVar(&cfg.Count, "count", cfg.Count, "Number of passwords to generate (env COUNT).")
	flagSet.IntVar(&cfg.Count, "n", cfg.Count, "Number of passwords to generate (shorthand).")
	flagSet.StringVar(&cfg.RecipePath, "recipe", cfg.RecipePath, "Path to the recipe file or directory (env RECIPE).")
	flagSet.StringVar(&cfg.WordsDB, "words-db", cfg.WordsDB, "Path to a bbolt database with extra word lists (env WORDS_DB).")
	flagSet.StringVar(&cfg.ImportWords, "import-words", "", "Import a word list before generating, as name=path. Requires -words-db.")
	flagSet.Func("seed", "Seed for reproducible output (env SEED). Do not use for real passwords.", func(s string) error {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errors.New("must be an unsigned integer")
		}
		cfg.Seed = &seed
		return nil
	})
	flagSet.BoolVar(&cfg.ListStrategies, "list", false, "List the available strategies and word lists, then exit.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error' (env LOG_LEVEL).")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log output format. Options: 'text' or 'json' (env LOG_FORMAT).")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	switch flagSet.NArg() {
	case 0:
	case 1:
		if isSet(flagSet, "recipe") {
			return nil, false, &ExitError{Code: ExitUsage, Message: "recipe given both as -recipe and as an argument"}
		}
		cfg.RecipePath = flagSet.Arg(0)
	default:
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("too many arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Recipe path determined.", "path", cfg.RecipePath)

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "length", config.Length, "count", config.Count)
	return config, false, nil
}

// isSet reports whether the named flag was given on the command line.
func isSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
