// Copyright 2026 Sourcehire Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/sourcehire/candidex"
	"github.com/sourcehire/candidex/ai"
	"github.com/sourcehire/candidex/config"
	"github.com/sourcehire/candidex/core"
	"github.com/sourcehire/candidex/ingestion"
	"github.com/sourcehire/candidex/reindex"
	"github.com/sourcehire/candidex/search"
)

func main() {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "candidex",
		Usage: "Semantic search over stored candidate resumes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML configuration file",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "Path to data directory (overrides config)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "ingest",
				Usage:     "Ingest candidates from a JSON payload file",
				ArgsUsage: "<payloads.json>",
				Action:    ingestCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Worker pool size for embedding (0 = derived from CPU count)",
					},
				},
			},
			{
				Name:      "search",
				Usage:     "Rank stored candidates against a free-text query",
				ArgsUsage: "<query text>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "location",
						Usage: "Require and boost candidates whose location contains this value",
					},
					&cli.Float64Flag{
						Name:  "experience",
						Usage: "Boost candidates with at least this many years of experience",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "stats",
						Usage: "Print per-query pipeline counters",
					},
				},
			},
			{
				Name:   "verify",
				Usage:  "Check the vector index against the record store",
				Action: verifyCommand,
			},
			{
				Name:   "clear",
				Usage:  "Remove all candidates and empty the index",
				Action: clearCommand,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "yes",
						Usage: "Skip the confirmation prompt",
					},
				},
			},
			{
				Name:   "reindex",
				Usage:  "Rebuild the vector index from stored records",
				Action: reindexCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to process in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
				},
			},
			{
				Name:   "persist",
				Usage:  "Write the current index snapshot to disk",
				Action: persistCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the effective configuration from the config file
// and command-line overrides, and installs the logger.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if db := c.String("db"); db != "" {
		cfg.Storage.DataDir = db
		cfg.Storage.SnapshotPath = db + "/index.snapshot"
	}
	if level := c.String("log-level"); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}

	if err := setupLogger(cfg.Logging.Level); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func setupLogger(levelStr string) error {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

func openEngine(cfg config.Config, opts ...candidex.EngineOption) (*candidex.Engine, error) {
	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(cfg.Embedding.Host),
		ai.WithEmbeddingModel(cfg.Embedding.Model),
		ai.WithRequestTimeout(time.Duration(cfg.Embedding.RequestTimeoutSec)*time.Second),
	)

	opts = append([]candidex.EngineOption{
		candidex.WithAIConfig(aiConfig),
		candidex.WithSnapshotPath(cfg.Storage.SnapshotPath),
	}, opts...)

	return candidex.NewEngine(cfg.Storage.DataDir, opts...)
}

func ingestCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one payload file argument")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to read payload file: %w", err)
	}

	var payloads []*ingestion.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return fmt.Errorf("failed to parse payload file: %w", err)
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	var pipelineOpts []ingestion.Option
	poolSize := c.Int("pool-size")
	if poolSize == 0 {
		poolSize = cfg.Ingestion.PoolSize
	}
	if poolSize > 0 {
		pipelineOpts = append(pipelineOpts, ingestion.WithPoolSize(poolSize))
	}

	pipeline, err := engine.NewIngestionPipeline(pipelineOpts...)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	report, err := pipeline.Ingest(context.Background(), payloads)
	if err != nil {
		return fmt.Errorf("ingestion failed: %w", err)
	}

	fmt.Printf("Ingested %d candidates (%d updated, %d failed)\n",
		report.Ingested, report.Updated, report.Failed)
	return nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected a query text argument")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	searcher, err := engine.NewSearcher(search.WithOverfetchFactor(cfg.Search.OverfetchFactor))
	if err != nil {
		return err
	}

	ctx := context.Background()
	query := &core.Query{
		Text:            strings.Join(c.Args().Slice(), " "),
		Location:        c.String("location"),
		ExperienceYears: float32(c.Float64("experience")),
		Limit:           c.Int("limit"),
	}

	results, stats, err := searcher.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	fmt.Printf("Found %d hits\n", len(results))
	for _, hit := range results {
		record, err := engine.Repository().GetCandidate(ctx, hit.CandidateID)
		name := "<missing>"
		location := ""
		if err == nil {
			name = record.Name
			location = core.ParseContact(record.ContactJSON).Location
		}
		fmt.Printf("%d: %s (%d) [%.3f -> %.3f] %s\n",
			hit.Rank, name, hit.CandidateID, hit.BaseSimilarity, hit.BoostedScore, location)
	}

	if c.Bool("stats") {
		fmt.Printf("Considered: %d, excluded by location: %d, resolution failures: %d\n",
			stats.TotalConsidered, stats.ExcludedByLocation, stats.ResolutionFailures)
	}
	return nil
}

func verifyCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	report, err := engine.Lifecycle().Verify(context.Background())
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Printf("Vectors: %d, records: %d\n", report.VectorCount, report.RecordCount)
	if report.Clean() {
		fmt.Println("Index and record store are consistent")
		return nil
	}

	if len(report.OrphanedVectors) > 0 {
		fmt.Printf("Orphaned vectors (no record): %v\n", report.OrphanedVectors)
	}
	if len(report.OrphanedRecords) > 0 {
		fmt.Printf("Orphaned records (not indexed): %v\n", report.OrphanedRecords)
	}
	fmt.Println("Run 'candidex reindex' to rebuild the index from the record store")
	return nil
}

func clearCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	if !c.Bool("yes") {
		fmt.Printf("This removes ALL candidates from %s. Type 'yes' to continue: ", cfg.Storage.DataDir)
		var answer string
		fmt.Scanln(&answer)
		if answer != "yes" {
			fmt.Println("Aborted")
			return nil
		}
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	if err := engine.Clear(context.Background()); err != nil {
		return fmt.Errorf("clear failed: %w", err)
	}

	fmt.Println("All candidates removed")
	return nil
}

func reindexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// The snapshot is about to be replaced; don't bother loading it.
	engine, err := openEngine(cfg, candidex.WithoutSnapshotLoad())
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	reindexConfig := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
	}
	if reindexConfig.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if reindexConfig.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if reindexConfig.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reindexer := engine.NewReindexer(reindexConfig, os.Stderr)

	fmt.Fprintf(os.Stderr, "Database: %s\n", cfg.Storage.DataDir)
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", cfg.Embedding.Host)
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", cfg.Embedding.Model)
	fmt.Fprintln(os.Stderr)

	if err := reindexer.Run(context.Background()); err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	// Engine.Close persists the rebuilt index.
	return nil
}

func persistCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	engine, err := openEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	if err := engine.Lifecycle().Persist(context.Background()); err != nil {
		return fmt.Errorf("persist failed: %w", err)
	}

	fmt.Printf("Index snapshot written to %s\n", cfg.Storage.SnapshotPath)
	return nil
}
