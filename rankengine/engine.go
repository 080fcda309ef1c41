package rankengine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pumppro/rankengine/internal/domain/activity"
	"github.com/pumppro/rankengine/internal/domain/awards"
	"github.com/pumppro/rankengine/internal/domain/badges"
	"github.com/pumppro/rankengine/internal/domain/leaderboard"
	"github.com/pumppro/rankengine/internal/domain/stats"
	"github.com/pumppro/rankengine/internal/domain/sweep"
	"github.com/pumppro/rankengine/internal/gateways/database"
	"github.com/pumppro/rankengine/internal/gateways/database/repositories"
	"github.com/pumppro/rankengine/internal/gateways/spaces"
)

// Stores is the persistence an Engine runs on.
type Stores struct {
	Activity    activity.Store
	Catalog     badges.Catalog
	Awards      awards.Store
	Leaderboard leaderboard.Source
}

type Engine struct {
	Cfg       Config
	DB        *database.DB
	Stats     stats.Service
	Ledger    awards.Service
	Catalog   badges.Catalog
	Sweeper   *sweep.Orchestrator
	Ranker    *leaderboard.Ranker
	Profiles  *leaderboard.ProfileCache
	Publisher *spaces.Publisher
}

// Open connects to PostgreSQL and builds an Engine over it.
func Open(ctx context.Context, cfg Config) (*Engine, error) {
	start := time.Now()
	db, err := database.New(ctx, database.DBConfig{
		Host:       cfg.DB.Host,
		Port:       cfg.DB.Port,
		User:       cfg.DB.User,
		Password:   cfg.DB.Password,
		Database:   cfg.DB.Database,
		PoolSize:   cfg.DB.PoolSize,
		LogQueries: cfg.Log.Level <= slog.LevelDebug,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Database connected successfully",
		slog.String("type", "db"),
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(start)))

	bunDB := db.BunDB()
	e, err := New(cfg, Stores{
		Activity:    repositories.NewActivityRepository(bunDB),
		Catalog:     repositories.NewBadgeRepository(bunDB),
		Awards:      repositories.NewAwardRepository(bunDB),
		Leaderboard: repositories.NewLeaderboardRepository(bunDB),
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	e.DB = db

	if cfg.Spaces.Enabled() {
		e.Publisher, err = spaces.NewPublisher(ctx, cfg.Spaces.Key, cfg.Spaces.Secret, cfg.Spaces.Region, cfg.Spaces.Bucket, cfg.Spaces.Prefix)
		if err != nil {
			db.Close()
			return nil, err
		}
	}
	return e, nil
}

// New wires the engine components over the given stores.
func New(cfg Config, stores Stores) (*Engine, error) {
	loc, err := cfg.Engine.Location()
	if err != nil {
		return nil, err
	}

	profiles, err := leaderboard.NewProfileCache(stores.Leaderboard, cfg.Engine.ProfileCacheSize, cfg.Engine.ProfileCacheTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to create profile cache: %w", err)
	}

	statsService := stats.NewService(stores.Activity, loc)
	ledger := awards.NewLedger(stores.Awards)
	evaluator := badges.NewEvaluator(slog.Default())

	return &Engine{
		Cfg:     cfg,
		Stats:   statsService,
		Ledger:  ledger,
		Catalog: stores.Catalog,
		Sweeper: sweep.NewOrchestrator(
			stores.Activity,
			statsService,
			ledger,
			stores.Catalog,
			evaluator,
			cfg.Engine.SweepWorkers,
		),
		Ranker: leaderboard.NewRanker(stores.Leaderboard, profiles, leaderboard.Options{
			DefaultLimit: cfg.Engine.DefaultLimit,
			MaxLimit:     cfg.Engine.MaxLimit,
			Location:     loc,
		}),
		Profiles: profiles,
	}, nil
}

func (e *Engine) Close() {
	if e.DB != nil {
		e.DB.Close()
	}
}
