package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/sync/errgroup"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/repositories"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/logger"
)

var (
	ErrNotRegistered     = errors.New("citizen is not registered")
	ErrAlreadyRegistered = errors.New("citizen is already registered")
	ErrCooldown          = errors.New("action is on cooldown")
	ErrTokenTaken        = errors.New("citizenship token is held by another citizen")
)

// Ledger action names for updates that are not citizen actions.
const (
	EventCheckIn     = "checkin"
	EventCitizenship = "citizenship"
	EventAdjustment  = "adjustment"
)

const weeklyWindow = 7 * 24 * time.Hour

type ScoringOptions struct {
	StatsCacheSize int
	LeaderboardTTL time.Duration
	PostCooldown   time.Duration
}

// ScoringService loads a citizen, runs the engine and persists the outcome.
// Every update for one citizen runs under that citizen's lock.
type ScoringService struct {
	citizens repositories.CitizenRepository
	stats    repositories.StatsRepository
	activity repositories.ActivityRepository
	events   repositories.PointEventRepository

	engine    *gamification.Engine
	locks     *UserLocks
	cache     *lru.Cache
	board     *leaderboardCache
	cooldowns *Cooldowns
	now       func() time.Time
}

func NewScoringService(
	citizens repositories.CitizenRepository,
	stats repositories.StatsRepository,
	activity repositories.ActivityRepository,
	events repositories.PointEventRepository,
	engine *gamification.Engine,
	opts ScoringOptions,
) *ScoringService {
	if opts.StatsCacheSize <= 0 {
		opts.StatsCacheSize = config.DefaultStatsCacheSize
	}
	if opts.LeaderboardTTL <= 0 {
		opts.LeaderboardTTL = config.DefaultLeaderboardTTL
	}
	if opts.PostCooldown <= 0 {
		opts.PostCooldown = config.DefaultPostCooldown
	}

	cache, _ := lru.New(opts.StatsCacheSize)
	return &ScoringService{
		citizens:  citizens,
		stats:     stats,
		activity:  activity,
		events:    events,
		engine:    engine,
		locks:     NewUserLocks(),
		cache:     cache,
		board:     &leaderboardCache{ttl: opts.LeaderboardTTL},
		cooldowns: NewCooldowns(config.PostCooldownCacheSize, opts.PostCooldown),
		now:       time.Now,
	}
}

func (s *ScoringService) Engine() *gamification.Engine {
	return s.engine
}

// Award is the persisted result of one update.
type Award struct {
	Outcome gamification.Outcome
	Stats   *models.CitizenStats
	Event   *models.PointEvent
}

// Register creates the citizen together with empty stats and activity rows.
func (s *ScoringService) Register(ctx context.Context, discordID, username, wallet string) (*models.Citizen, error) {
	unlock := s.locks.Lock(discordID)
	defer unlock()

	if _, err := s.citizens.GetByDiscordID(ctx, discordID); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !repositories.IsNotFound(err) {
		return nil, err
	}

	citizen := &models.Citizen{
		DiscordID:     discordID,
		Username:      username,
		WalletAddress: wallet,
		JoinedAt:      s.now(),
	}
	if err := s.citizens.Create(ctx, citizen); err != nil {
		if repositories.IsConflict(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}

	stats := models.NewCitizenStats(discordID, username)
	if err := s.stats.Create(ctx, stats); err != nil && !repositories.IsConflict(err) {
		return nil, fmt.Errorf("failed to create stats: %w", err)
	}
	if err := s.activity.Create(ctx, &models.CitizenActivity{DiscordID: discordID}); err != nil && !repositories.IsConflict(err) {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	s.cache.Add(discordID, stats)
	s.board.invalidate()

	logger.LogSystem("Citizen registered",
		slog.String("discord_id", discordID),
		slog.String("user_name", username))
	return citizen, nil
}

// GrantCitizenship marks the citizen as holding token tokenID and grants whatever that unlocks.
func (s *ScoringService) GrantCitizenship(ctx context.Context, discordID string, tokenID int64) (*Award, error) {
	if tokenID < 1 {
		return nil, fmt.Errorf("token id must be positive, got %d", tokenID)
	}

	unlock := s.locks.Lock(discordID)
	defer unlock()

	citizen, err := s.citizen(ctx, discordID)
	if err != nil {
		return nil, err
	}

	holder, err := s.citizens.GetByTokenID(ctx, tokenID)
	switch {
	case err == nil && holder.DiscordID != discordID:
		return nil, ErrTokenTaken
	case err != nil && !repositories.IsNotFound(err):
		return nil, err
	}

	citizen.HasCitizenship = true
	citizen.TokenID = tokenID
	if err = s.citizens.Update(ctx, citizen); err != nil {
		return nil, err
	}

	activity, err := s.activity.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, citizen, activity, update{event: EventCitizenship})
}

// RecordAction awards action and bumps the counter it maps to in the same save.
func (s *ScoringService) RecordAction(ctx context.Context, discordID string, action gamification.Action) (*Award, error) {
	unlock := s.locks.Lock(discordID)
	defer unlock()

	citizen, err := s.citizen(ctx, discordID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activity.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	u := update{action: action, event: string(action)}
	if field, ok := models.FieldForAction(action); ok {
		u.field, u.delta = field, 1
	}
	return s.apply(ctx, citizen, activity, u)
}

// RecordPost awards a post unless the citizen posted within the cooldown window.
// Unregistered citizens are turned away before the window starts.
func (s *ScoringService) RecordPost(ctx context.Context, discordID string) (*Award, error) {
	if _, err := s.citizen(ctx, discordID); err != nil {
		return nil, err
	}
	if !s.cooldowns.Allow(discordID, s.now()) {
		return nil, ErrCooldown
	}
	return s.RecordAction(ctx, discordID, gamification.ActionPost)
}

// CheckIn records today's visit and sweeps badges. A repeat visit on the same day returns
// ErrCooldown.
func (s *ScoringService) CheckIn(ctx context.Context, discordID string) (*Award, error) {
	unlock := s.locks.Lock(discordID)
	defer unlock()

	citizen, err := s.citizen(ctx, discordID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activity.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}

	u := update{event: EventCheckIn}
	u.prepare = func(row *models.CitizenStats, stats gamification.UserStats) (gamification.UserStats, error) {
		now := s.now()
		next, changed := gamification.RecordVisit(stats, row.LastVisitAt, now)
		if !changed {
			return stats, ErrCooldown
		}
		row.LastVisitAt = now
		return next, nil
	}
	return s.apply(ctx, citizen, activity, u)
}

// AdjustActivity corrects an externally tracked counter and sweeps badges.
func (s *ScoringService) AdjustActivity(ctx context.Context, discordID string, counter gamification.Counter, delta int64) (*Award, error) {
	field, ok := models.FieldForCounter(counter)
	if !ok {
		return nil, fmt.Errorf("unknown counter %d", int(counter))
	}

	unlock := s.locks.Lock(discordID)
	defer unlock()

	citizen, err := s.citizen(ctx, discordID)
	if err != nil {
		return nil, err
	}
	activity, err := s.activity.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, citizen, activity, update{event: EventAdjustment, field: field, delta: delta})
}

type prepareFunc func(row *models.CitizenStats, stats gamification.UserStats) (gamification.UserStats, error)

// update describes one award. A non-empty field is moved by delta in the same transaction
// as the stats and ledger row, so a failed save leaves the counter untouched.
type update struct {
	action  gamification.Action
	event   string
	field   models.ActivityField
	delta   int64
	prepare prepareFunc
}

// apply runs the engine and saves, reloading and retrying when another writer got there first.
func (s *ScoringService) apply(
	ctx context.Context,
	citizen *models.Citizen,
	activity *models.CitizenActivity,
	u update,
) (*Award, error) {
	if u.field != "" {
		activity.Add(u.field, u.delta)
	}
	snapshot := activity.ToDomain(citizen)

	var lastErr error
	for attempt := 0; attempt < config.MaxSaveRetries; attempt++ {
		row, err := s.loadStats(ctx, citizen.DiscordID, attempt > 0)
		if err != nil {
			return nil, err
		}

		current := row.ToDomain(s.engine.Catalog())
		if u.prepare != nil {
			if current, err = u.prepare(row, current); err != nil {
				return nil, err
			}
		}

		outcome := s.engine.Apply(current, u.action, snapshot)
		row.ApplyDomain(outcome.Stats)
		if citizen.Username != "" {
			row.Username = citizen.Username
		}

		event := newPointEvent(citizen.DiscordID, u.event, outcome)
		event.Counter, event.CounterDelta = u.field, u.delta
		err = s.stats.Save(ctx, row, event)
		if errors.Is(err, repositories.ErrVersionConflict) {
			s.cache.Remove(citizen.DiscordID)
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}

		s.cache.Add(citizen.DiscordID, row)
		s.board.invalidate()
		logger.LogAward(citizen.DiscordID, u.event, outcome.TotalAwarded(), badgeIDs(outcome.NewBadges), outcome.Stats.Level)
		return &Award{Outcome: outcome, Stats: row, Event: event}, nil
	}
	return nil, fmt.Errorf("giving up after %d attempts: %w", config.MaxSaveRetries, lastErr)
}

func newPointEvent(discordID, name string, o gamification.Outcome) *models.PointEvent {
	return &models.PointEvent{
		DiscordID:    discordID,
		Action:       name,
		BasePoints:   o.BasePoints,
		ActionPoints: o.ActionPoints,
		BadgePoints:  o.BadgePoints,
		Badges:       badgeIDs(o.NewBadges),
		TotalAfter:   o.Stats.TotalPoints,
		LevelAfter:   o.Stats.Level,
	}
}

func badgeIDs(badges []gamification.EarnedBadge) []string {
	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.ID)
	}
	return ids
}

func (s *ScoringService) citizen(ctx context.Context, discordID string) (*models.Citizen, error) {
	citizen, err := s.citizens.GetByDiscordID(ctx, discordID)
	if repositories.IsNotFound(err) {
		return nil, ErrNotRegistered
	}
	return citizen, err
}

// loadStats returns a private copy, so a failed save never leaks into the cache.
func (s *ScoringService) loadStats(ctx context.Context, discordID string, fresh bool) (*models.CitizenStats, error) {
	if !fresh {
		if v, ok := s.cache.Get(discordID); ok {
			cp := *v.(*models.CitizenStats)
			return &cp, nil
		}
	}

	row, err := s.stats.GetByDiscordID(ctx, discordID)
	if repositories.IsNotFound(err) {
		return nil, ErrNotRegistered
	}
	if err != nil {
		return nil, err
	}
	cp := *row
	s.cache.Add(discordID, row)
	return &cp, nil
}

// Profile is everything /profile shows about one citizen.
type Profile struct {
	Citizen     *models.Citizen
	Stats       gamification.UserStats
	Activity    gamification.Activity
	Counters    *models.CitizenActivity
	Recent      []*models.PointEvent
	WeeklyTotal int64
	Position    int
	LastVisit   time.Time
}

// Profile loads a citizen's records concurrently.
func (s *ScoringService) Profile(ctx context.Context, discordID string) (*Profile, error) {
	citizen, err := s.citizen(ctx, discordID)
	if err != nil {
		return nil, err
	}

	p := &Profile{Citizen: citizen}
	var row *models.CitizenStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		row, err = s.loadStats(gctx, discordID, false)
		if err != nil {
			return err
		}
		p.Position, err = s.stats.GetPosition(gctx, row)
		return err
	})
	g.Go(func() error {
		var err error
		p.Counters, err = s.activity.GetByDiscordID(gctx, discordID)
		return err
	})
	g.Go(func() error {
		var err error
		p.Recent, err = s.events.GetRecent(gctx, discordID, config.RecentEventsShown)
		return err
	})
	g.Go(func() error {
		var err error
		p.WeeklyTotal, err = s.events.SumSince(gctx, discordID, s.now().Add(-weeklyWindow))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.Stats = row.ToDomain(s.engine.Catalog())
	p.Activity = p.Counters.ToDomain(citizen)
	p.LastVisit = row.LastVisitAt
	return p, nil
}

// Leaderboard returns up to limit entries from a short-lived cache of the top citizens.
func (s *ScoringService) Leaderboard(ctx context.Context, limit int) ([]gamification.LeaderboardEntry, error) {
	if limit <= 0 || limit > config.MaxLeaderboardSize {
		limit = config.MaxLeaderboardSize
	}

	now := s.now()
	entries, gen, ok := s.board.get(now)
	if !ok {
		rows, err := s.stats.GetTop(ctx, config.MaxLeaderboardSize)
		if err != nil {
			return nil, err
		}
		standings := make([]gamification.Standing, 0, len(rows))
		for _, r := range rows {
			standings = append(standings, r.Standing())
		}
		entries = gamification.CalculateLeaderboard(standings)
		s.board.set(entries, now, gen)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// FullLeaderboard ranks every citizen, bypassing the cache.
func (s *ScoringService) FullLeaderboard(ctx context.Context) ([]gamification.LeaderboardEntry, error) {
	rows, err := s.stats.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	standings := make([]gamification.Standing, 0, len(rows))
	for _, r := range rows {
		standings = append(standings, r.Standing())
	}
	return gamification.CalculateLeaderboard(standings), nil
}

// leaderboardCache holds one board. gen counts invalidations; a board read before the
// latest invalidation is never stored.
type leaderboardCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries []gamification.LeaderboardEntry
	expires time.Time
	gen     uint64
}

// get returns the cached board, or the generation a fresh read must carry into set.
func (c *leaderboardCache) get(now time.Time) ([]gamification.LeaderboardEntry, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entries == nil || !now.Before(c.expires) {
		return nil, c.gen, false
	}
	return c.entries, c.gen, true
}

func (c *leaderboardCache) set(entries []gamification.LeaderboardEntry, now time.Time, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.entries = entries
	c.expires = now.Add(c.ttl)
}

func (c *leaderboardCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.gen++
}
