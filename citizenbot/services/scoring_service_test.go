package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories/mock"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

var fixedNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	citizens *mock.MockCitizenRepository
	stats    *mock.MockStatsRepository
	activity *mock.MockActivityRepository
	events   *mock.MockPointEventRepository
	svc      *ScoringService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		citizens: mock.NewMockCitizenRepository(ctrl),
		stats:    mock.NewMockStatsRepository(ctrl),
		activity: mock.NewMockActivityRepository(ctrl),
		events:   mock.NewMockPointEventRepository(ctrl),
	}

	clock := func() time.Time { return fixedNow }
	engine := gamification.NewEngine(gamification.DefaultCatalog(), nil, gamification.WithClock(clock))
	f.svc = NewScoringService(f.citizens, f.stats, f.activity, f.events, engine, ScoringOptions{})
	f.svc.now = clock
	return f
}

func newCitizen(discordID string) *models.Citizen {
	return &models.Citizen{
		ID:        1,
		DiscordID: discordID,
		Username:  "ada",
		JoinedAt:  fixedNow.Add(-10 * 24 * time.Hour),
	}
}

func newStatsRow(discordID string) *models.CitizenStats {
	row := models.NewCitizenStats(discordID, "ada")
	row.ID = 1
	return row
}

func notFound(id string) error {
	return &repositories.NotFoundError{Entity: "citizen", ID: id}
}

func TestScoringService_RecordAction(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").
		Return(&models.CitizenActivity{DiscordID: "1", VotesCast: 9}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newStatsRow("1"), nil)

	var saved *models.CitizenStats
	var event *models.PointEvent
	f.stats.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *models.CitizenStats, e *models.PointEvent) error {
			saved, event = s, e
			return nil
		})

	award, err := f.svc.RecordAction(ctx, "1", gamification.ActionVote)
	require.NoError(t, err)

	assert.Equal(t, int64(10), award.Outcome.ActionPoints)
	assert.Equal(t, int64(200), award.Outcome.BadgePoints)
	require.Len(t, award.Outcome.NewBadges, 1)
	assert.Equal(t, "active-voter", award.Outcome.NewBadges[0].ID)

	require.NotNil(t, saved)
	assert.Equal(t, int64(210), saved.TotalPoints)
	assert.Equal(t, 1, saved.Streaks.Voting)
	assert.Equal(t, []models.BadgeRecord{{ID: "active-voter", EarnedAt: fixedNow}}, saved.Badges)

	require.NotNil(t, event)
	assert.Equal(t, "vote", event.Action)
	assert.Equal(t, []string{"active-voter"}, event.Badges)
	assert.Equal(t, int64(210), event.TotalAfter)
	assert.Equal(t, models.FieldVotesCast, event.Counter)
	assert.Equal(t, int64(1), event.CounterDelta)
}

func TestScoringService_RecordAction_RetriesOnConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").
		Return(&models.CitizenActivity{DiscordID: "1"}, nil)

	stale := newStatsRow("1")
	fresh := newStatsRow("1")
	fresh.TotalPoints = 100
	fresh.Version = 1
	gomock.InOrder(
		f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(stale, nil),
		f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(fmt.Errorf("save 1: %w", repositories.ErrVersionConflict)),
		f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(fresh, nil),
		f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	award, err := f.svc.RecordAction(ctx, "1", gamification.ActionPost)
	require.NoError(t, err)
	assert.Equal(t, int64(120), award.Stats.TotalPoints)
}

func TestScoringService_RecordAction_GivesUp(t *testing.T) {
	f := newFixture(t)

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1"}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").
		DoAndReturn(func(context.Context, string) (*models.CitizenStats, error) { return newStatsRow("1"), nil }).
		Times(3)
	f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(repositories.ErrVersionConflict).
		Times(3)

	_, err := f.svc.RecordAction(context.Background(), "1", gamification.ActionComment)
	assert.ErrorIs(t, err, repositories.ErrVersionConflict)
}

func TestScoringService_RecordAction_SaveErrorLeavesCounter(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	dbErr := &repositories.RepositoryError{Operation: "save", Entity: "citizen_stats", Err: context.DeadlineExceeded}

	// The counter only moves inside Save, so a failed Save commits nothing and a retry
	// bumps it by one again rather than twice.
	var deltas []int64
	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil).Times(2)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").
		DoAndReturn(func(context.Context, string) (*models.CitizenActivity, error) {
			return &models.CitizenActivity{DiscordID: "1", VotesCast: 4}, nil
		}).
		Times(2)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").
		DoAndReturn(func(context.Context, string) (*models.CitizenStats, error) { return newStatsRow("1"), nil }).
		AnyTimes()
	gomock.InOrder(
		f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.CitizenStats, e *models.PointEvent) error {
				deltas = append(deltas, e.CounterDelta)
				return dbErr
			}),
		f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *models.CitizenStats, e *models.PointEvent) error {
				assert.Equal(t, models.FieldVotesCast, e.Counter)
				deltas = append(deltas, e.CounterDelta)
				return nil
			}),
	)

	_, err := f.svc.RecordAction(ctx, "1", gamification.ActionVote)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	award, err := f.svc.RecordAction(ctx, "1", gamification.ActionVote)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1}, deltas)
	assert.Equal(t, int64(10), award.Stats.TotalPoints)
}

func TestScoringService_RecordAction_NotRegistered(t *testing.T) {
	f := newFixture(t)
	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "404").Return(nil, notFound("404"))

	_, err := f.svc.RecordAction(context.Background(), "404", gamification.ActionVote)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestScoringService_CheckIn(t *testing.T) {
	tests := []struct {
		name       string
		lastVisit  time.Time
		streak     int
		wantStreak int
		wantErr    error
	}{
		{
			name:       "First visit",
			wantStreak: 1,
		},
		{
			name:       "Next day",
			lastVisit:  fixedNow.Add(-24 * time.Hour),
			streak:     4,
			wantStreak: 5,
		},
		{
			name:       "Missed a day",
			lastVisit:  fixedNow.Add(-72 * time.Hour),
			streak:     9,
			wantStreak: 1,
		},
		{
			name:      "Same day",
			lastVisit: fixedNow.Add(-time.Hour),
			streak:    3,
			wantErr:   ErrCooldown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			row := newStatsRow("1")
			row.LastVisitAt = tt.lastVisit
			row.Streaks.DailyVisit = tt.streak

			f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
			f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1"}, nil)
			f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(row, nil)
			if tt.wantErr == nil {
				f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			award, err := f.svc.CheckIn(context.Background(), "1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStreak, award.Stats.Streaks.DailyVisit)
			assert.Equal(t, fixedNow, award.Stats.LastVisitAt)
			assert.Equal(t, int64(0), award.Outcome.ActionPoints)
			assert.Equal(t, EventCheckIn, award.Event.Action)
		})
	}
}

func TestScoringService_GrantCitizenship(t *testing.T) {
	f := newFixture(t)

	var updated *models.Citizen
	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.citizens.EXPECT().GetByTokenID(gomock.Any(), int64(5)).Return(nil, notFound("5"))
	f.citizens.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Citizen) error {
			updated = c
			return nil
		})
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1"}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newStatsRow("1"), nil)
	f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	award, err := f.svc.GrantCitizenship(context.Background(), "1", 5)
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.True(t, updated.HasCitizenship)
	assert.Equal(t, int64(5), updated.TokenID)

	ids := make([]string, 0, len(award.Outcome.NewBadges))
	for _, b := range award.Outcome.NewBadges {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []string{"first-citizen", "early-adopter", "world-citizen"}, ids)
	assert.Equal(t, int64(1600), award.Stats.TotalPoints)
	assert.Equal(t, 3, award.Stats.Level)
	assert.True(t, award.Outcome.LeveledUp)
}

func TestScoringService_GrantCitizenship_TokenTaken(t *testing.T) {
	f := newFixture(t)

	other := newCitizen("2")
	other.TokenID = 5
	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.citizens.EXPECT().GetByTokenID(gomock.Any(), int64(5)).Return(other, nil)

	_, err := f.svc.GrantCitizenship(context.Background(), "1", 5)
	assert.ErrorIs(t, err, ErrTokenTaken)
}

func TestScoringService_GrantCitizenship_InvalidToken(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.GrantCitizenship(context.Background(), "1", 0)
	assert.Error(t, err)
}

func TestScoringService_AdjustActivity(t *testing.T) {
	f := newFixture(t)

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1"}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newStatsRow("1"), nil)

	var event *models.PointEvent
	f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.CitizenStats, e *models.PointEvent) error {
			event = e
			return nil
		})

	award, err := f.svc.AdjustActivity(context.Background(), "1", gamification.CounterFollowers, 1000)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, models.FieldFollowers, event.Counter)
	assert.Equal(t, int64(1000), event.CounterDelta)
	require.Len(t, award.Outcome.NewBadges, 1)
	assert.Equal(t, "influencer", award.Outcome.NewBadges[0].ID)
	assert.Equal(t, int64(800), award.Stats.TotalPoints)
	assert.Equal(t, 2, award.Stats.Level)
}

func TestScoringService_Register(t *testing.T) {
	t.Run("New citizen", func(t *testing.T) {
		f := newFixture(t)
		f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(nil, notFound("1"))
		f.citizens.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.stats.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.activity.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		citizen, err := f.svc.Register(context.Background(), "1", "ada", "")
		require.NoError(t, err)
		assert.Equal(t, "ada", citizen.Username)
		assert.Equal(t, fixedNow, citizen.JoinedAt)
	})

	t.Run("Already registered", func(t *testing.T) {
		f := newFixture(t)
		f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)

		_, err := f.svc.Register(context.Background(), "1", "ada", "")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})

	t.Run("Lost race", func(t *testing.T) {
		f := newFixture(t)
		f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(nil, notFound("1"))
		f.citizens.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&repositories.ConflictError{Entity: "citizen", Field: "discord_id", Value: "1"})

		_, err := f.svc.Register(context.Background(), "1", "ada", "")
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
	})
}

func TestScoringService_AdjustActivity_SaveErrorLeavesCounter(t *testing.T) {
	f := newFixture(t)

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1", Followers: 3}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newStatsRow("1"), nil)
	f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&repositories.RepositoryError{Operation: "save", Entity: "citizen_stats", Err: context.Canceled})

	_, err := f.svc.AdjustActivity(context.Background(), "1", gamification.CounterFollowers, -5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScoringService_RecordPost_Cooldown(t *testing.T) {
	f := newFixture(t)

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil).Times(3)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1"}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newStatsRow("1"), nil)
	f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.RecordPost(context.Background(), "1")
	require.NoError(t, err)

	_, err = f.svc.RecordPost(context.Background(), "1")
	assert.ErrorIs(t, err, ErrCooldown)
}

func TestScoringService_RecordPost_NotRegisteredKeepsWindow(t *testing.T) {
	f := newFixture(t)

	gomock.InOrder(
		f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(nil, notFound("1")),
		f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil).Times(2),
	)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1"}, nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newStatsRow("1"), nil)
	f.stats.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.RecordPost(context.Background(), "1")
	require.ErrorIs(t, err, ErrNotRegistered)

	// Registered right after; the first post still counts.
	award, err := f.svc.RecordPost(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), award.Outcome.ActionPoints)
}

func TestScoringService_Leaderboard(t *testing.T) {
	f := newFixture(t)

	rows := []*models.CitizenStats{
		{DiscordID: "a", Username: "ada", TotalPoints: 900, Level: 2},
		{DiscordID: "b", Username: "bob", TotalPoints: 500, Level: 2},
		{DiscordID: "c", Username: "cy", TotalPoints: 300, Level: 1},
		{DiscordID: "d", Username: "di", TotalPoints: 100, Level: 1},
	}
	f.stats.EXPECT().GetTop(gomock.Any(), gomock.Any()).Return(rows, nil).Times(1)

	got, err := f.svc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "🥇", got[0].Marker)
	assert.Equal(t, "🥉", got[2].Marker)
	assert.Empty(t, got[3].Marker)

	// Served from cache.
	top2, err := f.svc.Leaderboard(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, top2, 2)
	assert.Equal(t, "bob", top2[1].Username)
}

func TestScoringService_Leaderboard_Expires(t *testing.T) {
	f := newFixture(t)
	f.stats.EXPECT().GetTop(gomock.Any(), gomock.Any()).Return([]*models.CitizenStats{}, nil).Times(2)

	_, err := f.svc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)

	now := fixedNow.Add(time.Hour)
	f.svc.now = func() time.Time { return now }
	_, err = f.svc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
}

func TestScoringService_Leaderboard_InvalidatedDuringRead(t *testing.T) {
	f := newFixture(t)

	stale := []*models.CitizenStats{{DiscordID: "a", Username: "ada", TotalPoints: 100, Level: 1}}
	fresh := []*models.CitizenStats{{DiscordID: "a", Username: "ada", TotalPoints: 400, Level: 2}}
	gomock.InOrder(
		f.stats.EXPECT().GetTop(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, int) ([]*models.CitizenStats, error) {
				// A save lands while the board is being read.
				f.svc.board.invalidate()
				return stale, nil
			}),
		f.stats.EXPECT().GetTop(gomock.Any(), gomock.Any()).Return(fresh, nil),
	)

	got, err := f.svc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(100), got[0].TotalPoints)

	got, err = f.svc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(400), got[0].TotalPoints)

	// The fresh board was read with no save in between, so it stays cached.
	got, err = f.svc.Leaderboard(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(400), got[0].TotalPoints)
}

func TestScoringService_Profile(t *testing.T) {
	f := newFixture(t)

	row := newStatsRow("1")
	row.TotalPoints = 700
	row.Level = 2
	row.Badges = []models.BadgeRecord{{ID: "active-voter", EarnedAt: fixedNow}}

	f.citizens.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(newCitizen("1"), nil)
	f.stats.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(row, nil)
	f.stats.EXPECT().GetPosition(gomock.Any(), gomock.Any()).Return(4, nil)
	f.activity.EXPECT().GetByDiscordID(gomock.Any(), "1").Return(&models.CitizenActivity{DiscordID: "1", VotesCast: 12}, nil)
	f.events.EXPECT().GetRecent(gomock.Any(), "1", gomock.Any()).Return([]*models.PointEvent{{Action: "vote", ActionPoints: 10}}, nil)
	f.events.EXPECT().SumSince(gomock.Any(), "1", fixedNow.Add(-weeklyWindow)).Return(int64(60), nil)

	p, err := f.svc.Profile(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 4, p.Position)
	assert.Equal(t, int64(60), p.WeeklyTotal)
	assert.Equal(t, int64(12), p.Activity.VotesCast)
	assert.True(t, p.Stats.HasBadge("active-voter"))
	assert.Len(t, p.Recent, 1)
}
