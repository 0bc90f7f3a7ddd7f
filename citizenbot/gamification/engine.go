package gamification

import "time"

// Engine applies scoring rules against an injected catalog. It holds no per-user state,
// so one Engine serves every citizen concurrently. Updates to the same citizen must be
// serialised by the caller.
type Engine struct {
	catalog *Catalog
	config  Config
	now     func() time.Time
}

type Option func(*Engine)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(catalog *Catalog, config *Config, opts ...Option) *Engine {
	if config == nil {
		config = NewDefaultConfig()
	}
	e := &Engine{
		catalog: catalog,
		config:  *config,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

func (e *Engine) Config() Config {
	return e.config
}

type Bonus struct {
	Name    string
	Percent int64
}

// Outcome describes one update: the new record and what changed to produce it.
type Outcome struct {
	Stats        UserStats
	Action       Action
	BasePoints   int64
	ActionPoints int64
	Bonuses      []Bonus
	NewBadges    []EarnedBadge
	BadgePoints  int64
	LeveledUp    bool
}

func (o Outcome) TotalAwarded() int64 {
	return o.ActionPoints + o.BadgePoints
}

// UpdateUserStats returns the record after action, leaving stats untouched.
func (e *Engine) UpdateUserStats(stats UserStats, action Action, activity Activity) UserStats {
	return e.Apply(stats, action, activity).Stats
}

// Apply awards action points with streak bonuses, recomputes level and rank,
// then grants every badge activity newly qualifies for.
func (e *Engine) Apply(current UserStats, action Action, activity Activity) Outcome {
	now := e.now()
	stats := current.Clone()
	if stats.TotalPoints < 0 {
		stats.TotalPoints = 0
	}

	switch action {
	case ActionVote:
		stats.Streaks.Voting++
	case ActionProposal:
		stats.Streaks.ProposalCreation++
	}

	base := action.BasePoints()
	awarded, bonuses := e.applyBonuses(base, stats.Streaks)
	stats.TotalPoints = addPoints(stats.TotalPoints, awarded)
	refreshLevel(&stats)

	newBadges, badgePoints := e.sweep(&stats, activity, now)
	if e.config.RecomputeAfterBadges {
		refreshLevel(&stats)
	}

	return Outcome{
		Stats:        stats,
		Action:       action,
		BasePoints:   base,
		ActionPoints: awarded,
		Bonuses:      bonuses,
		NewBadges:    newBadges,
		BadgePoints:  badgePoints,
		LeveledUp:    stats.Level > current.Level,
	}
}

// Sweep grants newly earned badges without awarding any action points.
func (e *Engine) Sweep(current UserStats, activity Activity) Outcome {
	return e.Apply(current, "", activity)
}

func refreshLevel(s *UserStats) {
	info := CalculateLevel(s.TotalPoints)
	s.Level = info.Level
	s.NextLevelPoints = info.NextLevelPoints
	s.Rank = CalculateRank(info.Level)
}

// applyBonuses checks both streaks whatever the action was. Percentages are multiplied
// before the single division so the floor is exact.
func (e *Engine) applyBonuses(base int64, streaks Streaks) (int64, []Bonus) {
	num, den := int64(1), int64(1)
	var bonuses []Bonus

	if streaks.Voting >= e.config.VotingStreakThreshold {
		num *= e.config.VotingBonusPercent
		den *= 100
		bonuses = append(bonuses, Bonus{Name: "Voting streak", Percent: e.config.VotingBonusPercent})
	}
	if streaks.DailyVisit >= e.config.DailyVisitThreshold {
		num *= e.config.DailyVisitBonusPercent
		den *= 100
		bonuses = append(bonuses, Bonus{Name: "Daily visit streak", Percent: e.config.DailyVisitBonusPercent})
	}

	return base * num / den, bonuses
}

func (e *Engine) sweep(stats *UserStats, activity Activity, now time.Time) ([]EarnedBadge, int64) {
	var earned []EarnedBadge
	var points int64

	for _, badge := range e.catalog.badges {
		if stats.HasBadge(badge.ID) || !e.eligible(activity, badge, now) {
			continue
		}
		eb := EarnedBadge{Badge: badge, EarnedAt: now}
		stats.Badges = append(stats.Badges, eb)
		stats.TotalPoints = addPoints(stats.TotalPoints, badge.Points)
		points += badge.Points
		earned = append(earned, eb)
	}

	return earned, points
}

// CheckBadgeEligibility reports whether activity meets badge's requirement right now.
func (e *Engine) CheckBadgeEligibility(activity Activity, badge Badge) bool {
	return e.eligible(activity, badge, e.now())
}

func (e *Engine) eligible(activity Activity, badge Badge, now time.Time) bool {
	switch r := badge.Requirement.(type) {
	case CountRequirement:
		v, ok := r.Counter.Extract(activity)
		return ok && v >= r.Target
	case TenureRequirement:
		if activity.JoinDate.IsZero() {
			return false
		}
		return now.Sub(activity.JoinDate) >= r.MinAge
	case SpecialRequirement:
		return e.special(r.Predicate, activity)
	}
	return false
}

func (e *Engine) special(p SpecialPredicate, a Activity) bool {
	switch p {
	case PredicateCitizenshipHolder:
		return a.HasCitizenship
	case PredicateFirstCitizens:
		return a.TokenID >= 1 && a.TokenID <= e.config.FirstCitizenLimit
	case PredicateEarlyAdopters:
		return a.TokenID >= 1 && a.TokenID <= e.config.EarlyAdopterLimit
	case PredicateBetaJoiner:
		return !a.JoinDate.IsZero() && a.JoinDate.Before(e.config.BetaCutoff)
	}
	return false
}

// EligibleBadges lists catalog badges activity qualifies for that stats does not hold yet.
func (e *Engine) EligibleBadges(activity Activity, stats UserStats) []Badge {
	now := e.now()
	var out []Badge
	for _, badge := range e.catalog.badges {
		if !stats.HasBadge(badge.ID) && e.eligible(activity, badge, now) {
			out = append(out, badge)
		}
	}
	return out
}

type BadgeProgress struct {
	Current int64
	Target  int64
	Unit    string
	Met     bool
}

// Progress reports how close activity is to badge. Special badges are either 0/1 or 1/1.
func (e *Engine) Progress(activity Activity, badge Badge) BadgeProgress {
	now := e.now()
	p := BadgeProgress{Met: e.eligible(activity, badge, now)}

	switch r := badge.Requirement.(type) {
	case CountRequirement:
		p.Current, _ = r.Counter.Extract(activity)
		p.Target = r.Target
		p.Unit = r.Counter.Label()
	case TenureRequirement:
		if !activity.JoinDate.IsZero() {
			p.Current = int64(now.Sub(activity.JoinDate) / (24 * time.Hour))
		}
		p.Target = int64(r.MinAge / (24 * time.Hour))
		p.Unit = "days"
	default:
		p.Target = 1
		if p.Met {
			p.Current = 1
		}
	}

	if p.Current > p.Target {
		p.Current = p.Target
	}
	if p.Current < 0 {
		p.Current = 0
	}
	return p
}
