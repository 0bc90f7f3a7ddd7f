package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

// ObjectPutter is the part of the S3 client the exporter needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// LeaderboardSource is satisfied by ScoringService.
type LeaderboardSource interface {
	FullLeaderboard(ctx context.Context) ([]gamification.LeaderboardEntry, error)
}

// NewSpacesClient builds an S3 client for a DigitalOcean Spaces region.
func NewSpacesClient(ctx context.Context, key, secret, region string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(key, secret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load Spaces config: %w", err)
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.digitaloceanspaces.com", region))
	}), nil
}

type Snapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []SnapshotEntry `json:"entries"`
}

type SnapshotEntry struct {
	Position    int    `json:"position"`
	Marker      string `json:"marker,omitempty"`
	DiscordID   string `json:"discord_id"`
	Username    string `json:"username"`
	TotalPoints int64  `json:"total_points"`
	Level       int    `json:"level"`
	Rank        string `json:"rank"`
	Badges      int    `json:"badges"`
}

// SnapshotExporter publishes the leaderboard as JSON, once under a timestamped key and once
// as latest.json.
type SnapshotExporter struct {
	client ObjectPutter
	source LeaderboardSource
	bucket string
	prefix string
	size   int
	now    func() time.Time
}

func NewSnapshotExporter(client ObjectPutter, source LeaderboardSource, bucket, prefix string, size int) *SnapshotExporter {
	return &SnapshotExporter{
		client: client,
		source: source,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		size:   size,
		now:    time.Now,
	}
}

func BuildSnapshot(entries []gamification.LeaderboardEntry, now time.Time) Snapshot {
	snap := Snapshot{
		GeneratedAt: now.UTC(),
		Entries:     make([]SnapshotEntry, 0, len(entries)),
	}
	for _, e := range entries {
		snap.Entries = append(snap.Entries, SnapshotEntry{
			Position:    e.Position,
			Marker:      e.Marker,
			DiscordID:   e.UserID,
			Username:    e.Username,
			TotalPoints: e.TotalPoints,
			Level:       e.Level,
			Rank:        e.Rank,
			Badges:      e.BadgeCount,
		})
	}
	return snap
}

// Export uploads the current leaderboard and returns the timestamped key.
func (e *SnapshotExporter) Export(ctx context.Context) (string, error) {
	start := e.now()

	entries, err := e.source.FullLeaderboard(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load leaderboard: %w", err)
	}
	if e.size > 0 && len(entries) > e.size {
		entries = entries[:e.size]
	}

	body, err := json.Marshal(BuildSnapshot(entries, start))
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, config.SnapshotUploadTimeout)
	defer cancel()

	key := path.Join(e.prefix, start.UTC().Format("20060102T150405Z")+".json")
	for _, k := range []string{key, path.Join(e.prefix, config.SnapshotLatestName)} {
		if err := e.put(ctx, k, body); err != nil {
			return "", err
		}
	}

	slog.Info("Leaderboard snapshot exported",
		slog.String("type", "sys"),
		slog.String("key", key),
		slog.Int("entries", len(entries)),
		slog.Duration("took", time.Since(start)))
	return key, nil
}

func (e *SnapshotExporter) put(ctx context.Context, key string, body []byte) error {
	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}
