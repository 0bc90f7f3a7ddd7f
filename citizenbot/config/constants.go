package config

import "time"

// Application-wide constants organized by domain

// UI and Display Constants
const (
	// Pagination
	LeaderboardPageSize = 10
	BadgesPerPage       = 7
	MaxLeaderboardSize  = 100
	RecentEventsShown   = 5

	// Colors
	ErrorColor   = 0xFF0000
	SuccessColor = 0x00FF00
	InfoColor    = 0x0099FF
	WarningColor = 0xFFAA00

	// Discord UI Colors
	EmbedDefaultColor = 0x2B2D31
	LevelUpColor      = 0xFFD700

	// Progress bar
	ProgressBarLength = 12
	ProgressFilled    = "▰"
	ProgressEmpty     = "▱"
)

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout     = 30 * time.Second
	BatchQueryTimeout       = 30 * time.Second
	CommandExecutionTimeout = 10 * time.Second
	SlowCommandThreshold    = 2 * time.Second
	ImageRenderTimeout      = 30 * time.Second
	SnapshotUploadTimeout   = 2 * time.Minute

	// Cache settings
	DefaultStatsCacheSize = 5000
	DefaultLeaderboardTTL = 2 * time.Minute
	DefaultPostCooldown   = 60 * time.Second
	PostCooldownCacheSize = 10000

	// Batch processing
	DefaultImportWorkers = 8
	ImportBatchSize      = 500
	MaxSaveRetries       = 3
)

// Snapshot export
const (
	DefaultSnapshotSchedule = "@every 6h"
	DBHealthSchedule        = "@every 5m"
	DefaultSnapshotPrefix   = "leaderboards"
	SnapshotLatestName      = "latest.json"
)
