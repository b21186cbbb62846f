// Command seeder populates the catalog with the curated starter ideas.
// It is idempotent at the catalog level only in the sense that re-running
// against a seeded database fails on duplicate ids; run it once per
// environment, after migrations.
//
// Requires the same configuration as the server (DATABASE_DSN at minimum).
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres"
	idearepo "github.com/buildhub-dev/buildhub-backend/internal/adapter/postgres/idea"
	"github.com/buildhub-dev/buildhub-backend/internal/app"
	"github.com/buildhub-dev/buildhub-backend/internal/config"
	"github.com/buildhub-dev/buildhub-backend/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := idearepo.New(pool)

	ideas := starterCatalog()
	teasers := 0
	for i := range ideas {
		if ideas[i].IsTeaser {
			teasers++
		}
	}
	if teasers != 1 {
		logger.Error("starter catalog must contain exactly one teaser", slog.Int("teasers", teasers))
		os.Exit(1)
	}

	for i := range ideas {
		if err := repo.Create(ctx, &ideas[i]); err != nil {
			logger.Error("seed idea",
				slog.String("title", ideas[i].Title),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	logger.Info("catalog seeded", slog.Int("ideas", len(ideas)))
}

func ptr(s string) *string { return &s }

func starterCatalog() []domain.Idea {
	return []domain.Idea{
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e01"),
			Title:       "Personal Finance Tracker",
			Summary:     "Track income, expenses, and budgets with monthly breakdowns.",
			Description: "A classic CRUD application that teaches data modeling, aggregation queries, and charting. Start with manual entry, then add CSV import from bank statements.",
			BuildGuide:  ptr("1. Model accounts, categories, and transactions.\n2. Build the transaction ledger with running balances.\n3. Add monthly budget targets and variance reporting.\n4. Import CSV statements with a mapping step.\n5. Render category breakdowns as charts."),
			Category:    domain.CategoryWeb,
			Difficulty:  domain.DifficultyBeginner,
			Tools:       []string{"go", "postgres", "htmx"},
			Tags:        []string{"crud", "charts", "csv"},
			FreeTier:    true,
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e02"),
			Title:       "Markdown Blog Engine",
			Summary:     "File-based blog that renders markdown posts with tags and RSS.",
			Description: "Parse a directory of markdown files into a navigable site. Covers parsing, templating, and caching rendered output.",
			BuildGuide:  ptr("1. Walk the content directory and parse front matter.\n2. Render markdown to HTML and cache by file mtime.\n3. Add tag pages and an RSS feed.\n4. Ship a single static binary."),
			Category:    domain.CategoryWeb,
			Difficulty:  domain.DifficultyBeginner,
			Tools:       []string{"go", "markdown"},
			Tags:        []string{"static-site", "parsing"},
			FreeTier:    true,
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e03"),
			Title:       "Build Your Own Redis",
			Summary:     "An in-memory key-value store speaking the RESP protocol.",
			Description: "Implement a server that real Redis clients can talk to: strings, expiry, and a handful of data structures. A deep dive into protocol parsing, event loops, and concurrent data structures.",
			BuildGuide:  ptr("1. Implement a RESP protocol reader/writer.\n2. Serve GET/SET/DEL over TCP with one goroutine per connection.\n3. Add key expiry with a lazy plus periodic sweep.\n4. Add lists and hashes.\n5. Benchmark against redis-benchmark and profile the hot paths."),
			Category:    domain.CategorySystems,
			Difficulty:  domain.DifficultyAdvanced,
			Tools:       []string{"go"},
			Tags:        []string{"networking", "protocols", "concurrency"},
			IsTeaser:    true,
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e04"),
			Title:       "Distributed Task Queue",
			Summary:     "Workers pulling jobs from a shared queue with retries and dead-lettering.",
			Description: "Producers enqueue jobs, a pool of workers executes them with at-least-once semantics. Teaches visibility timeouts, idempotency, and backpressure.",
			BuildGuide:  ptr("1. Design the job table with status and visibility timeout.\n2. Implement claim-with-SKIP-LOCKED polling.\n3. Add exponential backoff retries and a dead-letter state.\n4. Expose queue depth and per-state gauges.\n5. Chaos-test by killing workers mid-job."),
			Category:    domain.CategorySystems,
			Difficulty:  domain.DifficultyAdvanced,
			Tools:       []string{"go", "postgres"},
			Tags:        []string{"queues", "reliability"},
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e05"),
			Title:       "Realtime Multiplayer Snake",
			Summary:     "Browser snake game with a server-authoritative game loop over WebSockets.",
			Description: "Multiple players share one board; the server ticks the world and broadcasts diffs. Covers game loops, state synchronization, and latency compensation.",
			BuildGuide:  ptr("1. Build the single-player game loop server-side.\n2. Broadcast board diffs over WebSockets.\n3. Handle join/leave and input buffering.\n4. Interpolate movement client-side to hide latency."),
			Category:    domain.CategoryGame,
			Difficulty:  domain.DifficultyIntermediate,
			Tools:       []string{"go", "websockets", "typescript"},
			Tags:        []string{"realtime", "games"},
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e06"),
			Title:       "Log Aggregation Pipeline",
			Summary:     "Ship, parse, and query logs from multiple services in one place.",
			Description: "Collect structured logs from several producers, normalize them, and make them searchable. Covers ingestion backpressure, schema design for append-heavy data, and retention.",
			BuildGuide:  ptr("1. Define an ingestion endpoint with batching.\n2. Normalize fields and partition by day.\n3. Build a query API with time-range and field filters.\n4. Add retention-based pruning."),
			Category:    domain.CategoryDevOps,
			Difficulty:  domain.DifficultyIntermediate,
			Tools:       []string{"go", "postgres", "grafana"},
			Tags:        []string{"observability", "ingestion"},
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e07"),
			Title:       "Flashcard Study App",
			Summary:     "Spaced-repetition flashcards with decks, reviews, and streaks.",
			Description: "Implement the SM-2 scheduling algorithm behind a simple deck/review UI. A compact project that still has real algorithmic depth.",
			BuildGuide:  ptr("1. Model decks, cards, and review history.\n2. Implement SM-2 interval scheduling.\n3. Build the daily review queue.\n4. Track streaks and retention stats."),
			Category:    domain.CategoryMobile,
			Difficulty:  domain.DifficultyBeginner,
			Tools:       []string{"go", "sqlite", "react-native"},
			Tags:        []string{"algorithms", "education"},
			FreeTier:    true,
		},
		{
			ID:          uuid.MustParse("0b6f9d52-7a1e-4c0a-9f3e-1d2a8c4b5e08"),
			Title:       "Semantic Search Over Your Notes",
			Summary:     "Embed personal notes and answer questions against them.",
			Description: "Chunk documents, compute embeddings, store vectors, and retrieve by similarity. The standard retrieval-augmented pipeline at personal scale.",
			BuildGuide:  ptr("1. Chunk markdown notes with overlap.\n2. Compute and store embeddings with pgvector.\n3. Implement top-k similarity search.\n4. Feed retrieved chunks into a completion prompt.\n5. Evaluate with a held-out question set."),
			Category:    domain.CategoryAI,
			Difficulty:  domain.DifficultyIntermediate,
			Tools:       []string{"go", "postgres", "pgvector"},
			Tags:        []string{"embeddings", "search"},
		},
	}
}
