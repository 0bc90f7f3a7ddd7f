package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LegacyCitizen is a document of the platform's citizens collection.
type LegacyCitizen struct {
	ObjectID       primitive.ObjectID `bson:"_id"`
	DiscordID      string             `bson:"discordId"`
	Username       string             `bson:"username"`
	WalletAddress  string             `bson:"walletAddress"`
	TokenID        int64              `bson:"tokenId"`
	HasCitizenship bool               `bson:"hasCitizenship"`
	JoinDate       time.Time          `bson:"joinDate"`
	Stats          *LegacyStats       `bson:"stats,omitempty"`
}

type LegacyStats struct {
	TotalPoints float64       `bson:"totalPoints"`
	Badges      []LegacyBadge `bson:"badges"`
	Streaks     LegacyStreaks `bson:"streaks"`
	LastVisit   time.Time     `bson:"lastVisit"`
}

type LegacyBadge struct {
	ID       string    `bson:"id"`
	EarnedAt time.Time `bson:"earnedAt"`
}

type LegacyStreaks struct {
	Voting           float64 `bson:"voting"`
	DailyVisit       float64 `bson:"dailyVisit"`
	ProposalCreation float64 `bson:"proposalCreation"`
}

// LegacyActivity is a document of the activity collection, keyed by discordId.
type LegacyActivity struct {
	DiscordID        string  `bson:"discordId"`
	VotesCast        float64 `bson:"votesCast"`
	ProposalsCreated float64 `bson:"proposalsCreated"`
	PostsCount       float64 `bson:"postsCount"`
	CommentsCount    float64 `bson:"commentsCount"`
	HelpfulComments  float64 `bson:"helpfulComments"`
	EventsOrganized  float64 `bson:"eventsOrganized"`
	Followers        float64 `bson:"followers"`
	Referrals        float64 `bson:"referrals"`
}

// ImportReport counts what a run did.
type ImportReport struct {
	Read     int64
	Imported int64
	Skipped  int64
	Failed   int64
	Badges   int64
	Started  time.Time
	Finished time.Time
}
