package gamification

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyBadgeID     = errors.New("badge id is empty")
	ErrDuplicateBadgeID = errors.New("duplicate badge id")
)

// Catalog is the fixed set of badges every citizen can earn. It is safe for concurrent use
// because nothing mutates it after NewCatalog returns.
type Catalog struct {
	badges []Badge
	byID   map[string]int
}

// NewCatalog validates badges and freezes them in the given order.
func NewCatalog(badges ...Badge) (*Catalog, error) {
	c := &Catalog{
		badges: make([]Badge, 0, len(badges)),
		byID:   make(map[string]int, len(badges)),
	}

	for _, b := range badges {
		if err := validateBadge(b); err != nil {
			return nil, err
		}
		if _, ok := c.byID[b.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBadgeID, b.ID)
		}
		c.byID[b.ID] = len(c.badges)
		c.badges = append(c.badges, b)
	}

	return c, nil
}

func validateBadge(b Badge) error {
	if b.ID == "" {
		return ErrEmptyBadgeID
	}
	if !b.Category.Valid() {
		return fmt.Errorf("badge %s: invalid category %q", b.ID, b.Category)
	}
	if !b.Rarity.Valid() {
		return fmt.Errorf("badge %s: invalid rarity %q", b.ID, b.Rarity)
	}
	if b.Points < 0 {
		return fmt.Errorf("badge %s: negative points", b.ID)
	}

	switch r := b.Requirement.(type) {
	case CountRequirement:
		if _, ok := r.Counter.Extract(Activity{}); !ok {
			return fmt.Errorf("badge %s: unknown counter %d", b.ID, int(r.Counter))
		}
		if r.Target < 0 {
			return fmt.Errorf("badge %s: negative target", b.ID)
		}
	case TenureRequirement:
		if r.MinAge < 0 {
			return fmt.Errorf("badge %s: negative tenure", b.ID)
		}
	case SpecialRequirement:
	case nil:
		return fmt.Errorf("badge %s: missing requirement", b.ID)
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.badges)
}

// All returns a copy of the badges in catalog order.
func (c *Catalog) All() []Badge {
	return append([]Badge(nil), c.badges...)
}

func (c *Catalog) ByID(id string) (Badge, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Badge{}, false
	}
	return c.badges[i], true
}

func (c *Catalog) ByCategory(category Category) []Badge {
	var out []Badge
	for _, b := range c.badges {
		if b.Category == category {
			out = append(out, b)
		}
	}
	return out
}

const anniversaryAge = 365 * 24 * time.Hour

// DefaultBadges is the platform's badge table.
func DefaultBadges() []Badge {
	return []Badge{
		{
			ID:          "first-citizen",
			Name:        "First Citizen",
			Description: "One of the first 10 world citizens",
			Icon:        "🥇",
			Category:    CategoryCitizenship,
			Rarity:      RarityLegendary,
			Requirement: SpecialRequirement{Predicate: PredicateFirstCitizens},
			Points:      1000,
		},
		{
			ID:          "early-adopter",
			Name:        "Early Adopter",
			Description: "One of the first 100 world citizens",
			Icon:        "🏆",
			Category:    CategoryCitizenship,
			Rarity:      RarityEpic,
			Requirement: SpecialRequirement{Predicate: PredicateEarlyAdopters},
			Points:      500,
		},
		{
			ID:          "world-citizen",
			Name:        "World Citizen",
			Description: "Minted a world citizenship token",
			Icon:        "🌍",
			Category:    CategoryCitizenship,
			Rarity:      RarityCommon,
			Requirement: SpecialRequirement{Predicate: PredicateCitizenshipHolder},
			Points:      100,
		},
		{
			ID:          "active-voter",
			Name:        "Active Voter",
			Description: "Voted on 10 proposals",
			Icon:        "🗳️",
			Category:    CategoryDAO,
			Rarity:      RarityUncommon,
			Requirement: CountRequirement{Counter: CounterVotesCast, Target: 10},
			Points:      200,
		},
		{
			ID:          "super-voter",
			Name:        "Super Voter",
			Description: "Voted on 50 proposals",
			Icon:        "🏅",
			Category:    CategoryDAO,
			Rarity:      RarityRare,
			Requirement: CountRequirement{Counter: CounterVotesCast, Target: 50},
			Points:      750,
		},
		{
			ID:          "proposal-creator",
			Name:        "Proposal Creator",
			Description: "Created 5 proposals",
			Icon:        "💡",
			Category:    CategoryDAO,
			Rarity:      RarityUncommon,
			Requirement: CountRequirement{Counter: CounterProposalsCreated, Target: 5},
			Points:      300,
		},
		{
			ID:          "dao-leader",
			Name:        "DAO Leader",
			Description: "Created 20 proposals",
			Icon:        "👑",
			Category:    CategoryDAO,
			Rarity:      RarityEpic,
			Requirement: CountRequirement{Counter: CounterProposalsCreated, Target: 20},
			Points:      1200,
		},
		{
			ID:          "social-butterfly",
			Name:        "Social Butterfly",
			Description: "Shared 25 posts",
			Icon:        "🦋",
			Category:    CategoryCommunity,
			Rarity:      RarityUncommon,
			Requirement: CountRequirement{Counter: CounterPosts, Target: 25},
			Points:      250,
		},
		{
			ID:          "helpful-citizen",
			Name:        "Helpful Citizen",
			Description: "Wrote 100 helpful comments",
			Icon:        "🤝",
			Category:    CategoryCommunity,
			Rarity:      RarityRare,
			Requirement: CountRequirement{Counter: CounterHelpfulComments, Target: 100},
			Points:      400,
		},
		{
			ID:          "event-organizer",
			Name:        "Event Organizer",
			Description: "Organized 5 events",
			Icon:        "🎯",
			Category:    CategoryCommunity,
			Rarity:      RarityRare,
			Requirement: CountRequirement{Counter: CounterEventsOrganized, Target: 5},
			Points:      600,
		},
		{
			ID:          "influencer",
			Name:        "Influencer",
			Description: "Reached 1000 followers",
			Icon:        "⭐",
			Category:    CategorySocial,
			Rarity:      RarityEpic,
			Requirement: CountRequirement{Counter: CounterFollowers, Target: 1000},
			Points:      800,
		},
		{
			ID:          "connector",
			Name:        "Connector",
			Description: "Referred 50 new citizens",
			Icon:        "🔗",
			Category:    CategorySocial,
			Rarity:      RarityRare,
			Requirement: CountRequirement{Counter: CounterReferrals, Target: 50},
			Points:      500,
		},
		{
			ID:          "anniversary",
			Name:        "Anniversary",
			Description: "A full year as a world citizen",
			Icon:        "🎂",
			Category:    CategorySpecial,
			Rarity:      RarityEpic,
			Requirement: TenureRequirement{MinAge: anniversaryAge},
			Points:      1000,
		},
		{
			ID:          "beta-tester",
			Name:        "Beta Tester",
			Description: "Joined the platform during the beta",
			Icon:        "🧪",
			Category:    CategorySpecial,
			Rarity:      RarityRare,
			Requirement: SpecialRequirement{Predicate: PredicateBetaJoiner},
			Points:      300,
		},
	}
}

// DefaultCatalog builds the catalog from DefaultBadges.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultBadges()...)
	if err != nil {
		panic(err)
	}
	return c
}
