package models

import (
	"time"

	"github.com/uptrace/bun"
)

// PointEvent is one row of the append-only award ledger.
type PointEvent struct {
	bun.BaseModel `bun:"table:point_events,alias:pe"`

	ID           int64         `bun:"id,pk,autoincrement"`
	DiscordID    string        `bun:"discord_id,notnull"`
	Action       string        `bun:"action,notnull"`
	BasePoints   int64         `bun:"base_points,notnull,default:0"`
	ActionPoints int64         `bun:"action_points,notnull,default:0"`
	BadgePoints  int64         `bun:"badge_points,notnull,default:0"`
	Badges       []string      `bun:"badges,type:jsonb"`
	TotalAfter   int64         `bun:"total_after,notnull"`
	LevelAfter   int           `bun:"level_after,notnull"`
	Counter      ActivityField `bun:"counter,nullzero"`
	CounterDelta int64         `bun:"counter_delta,notnull,default:0"`
	CreatedAt    time.Time     `bun:"created_at,notnull,default:current_timestamp"`
}
