package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

type recordingPutter struct {
	mu      sync.Mutex
	objects map[string][]byte
	inputs  []*s3.PutObjectInput
	err     error
}

func (p *recordingPutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if p.err != nil {
		return nil, p.err
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.objects == nil {
		p.objects = make(map[string][]byte)
	}
	p.objects[aws.ToString(in.Key)] = body
	p.inputs = append(p.inputs, in)
	return &s3.PutObjectOutput{}, nil
}

type staticLeaderboard struct {
	entries []gamification.LeaderboardEntry
}

func (s *staticLeaderboard) FullLeaderboard(context.Context) ([]gamification.LeaderboardEntry, error) {
	return s.entries, nil
}

func sampleEntries() []gamification.LeaderboardEntry {
	return gamification.CalculateLeaderboard([]gamification.Standing{
		{UserID: "1", Username: "ada", TotalPoints: 1500, Level: 3, Rank: "Active Citizen", BadgeCount: 4},
		{UserID: "2", Username: "bob", TotalPoints: 300, Level: 1, Rank: "Candidate Citizen", BadgeCount: 1},
	})
}

func TestSnapshotExporter_Export(t *testing.T) {
	putter := &recordingPutter{}
	source := &staticLeaderboard{entries: sampleEntries()}

	exporter := NewSnapshotExporter(putter, source, "citizens", "/leaderboards/", 50)
	exporter.now = func() time.Time { return time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC) }

	key, err := exporter.Export(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "leaderboards/20250601T120000Z.json", key)
	require.Len(t, putter.inputs, 2)
	assert.Contains(t, putter.objects, "leaderboards/latest.json")

	for _, in := range putter.inputs {
		assert.Equal(t, "citizens", aws.ToString(in.Bucket))
		assert.Equal(t, "application/json", aws.ToString(in.ContentType))
		assert.Equal(t, types.ObjectCannedACLPublicRead, in.ACL)
	}

	var snap Snapshot
	require.NoError(t, json.Unmarshal(putter.objects[key], &snap))
	require.Len(t, snap.Entries, 2)
	assert.Equal(t, "ada", snap.Entries[0].Username)
	assert.Equal(t, "🥇", snap.Entries[0].Marker)
	assert.Equal(t, 1, snap.Entries[0].Position)
	assert.Equal(t, 4, snap.Entries[0].Badges)
	assert.Equal(t, putter.objects[key], putter.objects["leaderboards/latest.json"])
}

func TestSnapshotExporter_Export_TrimsToSize(t *testing.T) {
	putter := &recordingPutter{}
	exporter := NewSnapshotExporter(putter, &staticLeaderboard{entries: sampleEntries()}, "citizens", "lb", 1)

	key, err := exporter.Export(context.Background())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(putter.objects[key], &snap))
	require.Len(t, snap.Entries, 1)
	assert.Equal(t, "ada", snap.Entries[0].Username)
}

func TestSnapshotExporter_UploadError(t *testing.T) {
	putter := &recordingPutter{err: errors.New("access denied")}
	exporter := NewSnapshotExporter(putter, &staticLeaderboard{}, "citizens", "lb", 10)

	_, err := exporter.Export(context.Background())
	assert.ErrorContains(t, err, "access denied")
}

func TestBuildSnapshot_Empty(t *testing.T) {
	now := time.Date(2025, time.June, 1, 14, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	snap := BuildSnapshot(nil, now)

	assert.NotNil(t, snap.Entries)
	assert.Equal(t, time.UTC, snap.GeneratedAt.Location())

	body, err := json.Marshal(snap)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"entries":[]`)
}
