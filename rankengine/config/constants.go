package config

import "time"

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	StatsQueryTimeout   = 10 * time.Second
	RankingQueryTimeout = 30 * time.Second
	SchemaInitTimeout   = 2 * time.Minute
	PublishTimeout      = 30 * time.Second
	NetworkDialTimeout  = 5 * time.Second

	// Connection retry
	DefaultMaxRetries    = 3
	DefaultRetryInterval = time.Second
)

// Engine Constants
const (
	// Leaderboard pagination
	DefaultPageSize = 50
	MaxPageSize     = 100

	// Profile cache
	ProfileCacheSize       = 5000
	ProfileCacheExpiration = 5 * time.Minute

	// Sweep
	DefaultSweepWorkers = 4
	SweepTimeout        = 30 * time.Minute
)
