package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/config"
	dbPostgres "github.com/kailas-cloud/earlyhelp/internal/db/postgres"
	logpkg "github.com/kailas-cloud/earlyhelp/internal/logger"
	contentrepo "github.com/kailas-cloud/earlyhelp/internal/repository/content"
	"github.com/kailas-cloud/earlyhelp/internal/version"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "seed",
		Usage:   "Manage the Early Help content database",
		Version: version.String(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "env",
				Aliases: []string{"e"},
				Usage:   "Config environment (reads config/<env>.yaml)",
				EnvVars: []string{"ENV"},
				Value:   "local",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create or update the content schema",
				Action: migrateCommand,
			},
			{
				Name:   "load",
				Usage:  "Upsert categories, entries, glossary items and contacts from a YAML file",
				Action: loadCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the YAML content file",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "workers",
						Aliases: []string{"w"},
						Usage:   "Number of concurrent upserts",
						Value:   8,
					},
					&cli.BoolFlag{
						Name:  "migrate",
						Usage: "Run schema migrations before loading",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "Validate the file without touching the database",
					},
				},
			},
		},
	}
}

func migrateCommand(c *cli.Context) error {
	ctx := context.Background()
	env := c.String("env")

	pool, logger, err := connect(ctx, env)
	if err != nil {
		return err
	}
	defer pool.Close()
	defer func() { _ = logger.Sync() }()

	if err := dbPostgres.Migrate(ctx, pool); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	fmt.Fprintln(c.App.Writer, "schema up to date")
	return nil
}

func loadCommand(c *cli.Context) error {
	workers := c.Int("workers")
	if workers <= 0 {
		return fmt.Errorf("workers must be greater than 0")
	}

	f, err := os.Open(c.String("file"))
	if err != nil {
		return fmt.Errorf("open content file: %w", err)
	}
	defer f.Close()

	parsed, err := parseContent(f)
	if err != nil {
		return fmt.Errorf("invalid content file: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "parsed %d categories, %d entries, %d glossary items, %d contacts\n",
		len(parsed.categories), len(parsed.entries), len(parsed.glossary), len(parsed.contacts))

	if c.Bool("dry-run") {
		return nil
	}

	ctx := context.Background()
	pool, logger, err := connect(ctx, c.String("env"))
	if err != nil {
		return err
	}
	defer pool.Close()
	defer func() { _ = logger.Sync() }()

	if c.Bool("migrate") {
		if err := dbPostgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	l, err := newLoader(workers, sinks{
		categories: contentrepo.NewCategories(pool),
		entries:    contentrepo.NewEntries(pool),
		glossary:   contentrepo.NewGlossary(pool),
		contacts:   contentrepo.NewContacts(pool),
	}, logger)
	if err != nil {
		return err
	}
	defer l.Release()

	start := time.Now()
	loadErr := l.Load(ctx, parsed)
	fmt.Fprintf(c.App.Writer, "created %d, updated %d, failed %d in %s\n",
		l.stats.created.Load(), l.stats.updated.Load(), l.stats.failed.Load(),
		time.Since(start).Round(time.Millisecond))
	return loadErr
}

// connect loads config for env and opens the content database.
func connect(ctx context.Context, env string) (*pgxpool.Pool, *zap.Logger, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger: %w", err)
	}
	pool, err := dbPostgres.NewPool(ctx, dbPostgres.Config{
		Host:     cfg.Postgres.Host,
		Port:     strconv.Itoa(cfg.Postgres.Port),
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
		DBName:   cfg.Postgres.DBName,
		SSLMode:  cfg.Postgres.SSLMode,
		MaxConns: cfg.Postgres.MaxConns,
	}, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	return pool, logger, nil
}
