package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/genling/pkg/genling"
	"github.com/dmitrymomot/genling/pkg/langdef"
	"github.com/dmitrymomot/genling/pkg/logger"
)

// Config holds the environment defaults for the command flags.
type Config struct {
	File      string `env:"GENLING_FILE"`
	Count     int    `env:"GENLING_COUNT" envDefault:"10"`
	Seed      int64  `env:"GENLING_SEED"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

type runIDKey struct{}

var errNoFile = errors.New("no language definition given: use --file or GENLING_FILE")

func newApp(cfg Config) *cli.App {
	return &cli.App{
		Name:  "genling",
		Usage: "generate words for a constructed language",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "YAML language definition",
				Value:   cfg.File,
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "number of words to print",
				Value:   cfg.Count,
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "seed for reproducible output, 0 for a random seed",
				Value: cfg.Seed,
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, cfg)
		},
	}
}

func run(c *cli.Context, cfg Config) error {
	format := logger.Format(cfg.LogFormat)
	switch format {
	case "", logger.FormatJSON, logger.FormatText:
	default:
		return cli.Exit(fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", format, logger.FormatJSON, logger.FormatText), 2)
	}

	runID := uuid.NewString()
	ctx := context.WithValue(c.Context, runIDKey{}, runID)

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, "genling"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(format),
		logger.WithOutput(c.App.ErrWriter),
		logger.WithContextValue("run_id", runIDKey{}),
	)

	file := c.String("file")
	if file == "" {
		return cli.Exit(errNoFile, 2)
	}
	count := c.Int("count")
	if count < 0 {
		return cli.Exit(fmt.Errorf("count must not be negative, got %d", count), 2)
	}

	var src genling.Source = genling.DefaultSource()
	if seed := c.Int64("seed"); seed != 0 {
		src = genling.NewSource(seed)
	}

	lang, err := langdef.LoadFile(file, langdef.WithSource(src), langdef.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "failed to load language", slog.String("file", file), logger.Error(err))
		return cli.Exit(err, 1)
	}

	for i := range count {
		word, err := lang.Generate()
		if err != nil {
			log.ErrorContext(ctx, "generation failed", logger.Count(i), logger.Error(err))
			return cli.Exit(err, 1)
		}
		fmt.Fprintln(c.App.Writer, word)
	}

	log.InfoContext(ctx, "words generated",
		slog.String("language", lang.Name),
		logger.Count(count),
	)
	return nil
}
