package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Citizen struct {
	bun.BaseModel `bun:"table:citizens,alias:c"`

	ID             int64     `bun:"id,pk,autoincrement"`
	DiscordID      string    `bun:"discord_id,notnull,unique"`
	Username       string    `bun:"username,notnull"`
	WalletAddress  string    `bun:"wallet_address"`
	TokenID        int64     `bun:"token_id,notnull,default:0"`
	HasCitizenship bool      `bun:"has_citizenship,notnull,default:false"`
	JoinedAt       time.Time `bun:"joined_at,notnull"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
