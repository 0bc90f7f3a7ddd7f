package gamification

import (
	"fmt"
	"time"
)

type RequirementKind string

const (
	KindCount   RequirementKind = "count"
	KindTenure  RequirementKind = "date"
	KindSpecial RequirementKind = "special"
)

// Requirement is implemented only by CountRequirement, TenureRequirement and SpecialRequirement.
type Requirement interface {
	Kind() RequirementKind
	Describe() string
	sealed()
}

// Counter names one externally tracked activity counter.
type Counter int

const (
	CounterVotesCast Counter = iota + 1
	CounterProposalsCreated
	CounterPosts
	CounterHelpfulComments
	CounterEventsOrganized
	CounterFollowers
	CounterReferrals
)

// Counters lists every counter, in the order they are shown to users.
var Counters = []Counter{
	CounterVotesCast,
	CounterProposalsCreated,
	CounterPosts,
	CounterHelpfulComments,
	CounterEventsOrganized,
	CounterFollowers,
	CounterReferrals,
}

// Extract reads the counter from a. The bool is false for a counter this version does not know.
func (c Counter) Extract(a Activity) (int64, bool) {
	switch c {
	case CounterVotesCast:
		return a.VotesCast, true
	case CounterProposalsCreated:
		return a.ProposalsCreated, true
	case CounterPosts:
		return a.PostsCount, true
	case CounterHelpfulComments:
		return a.HelpfulComments, true
	case CounterEventsOrganized:
		return a.EventsOrganized, true
	case CounterFollowers:
		return a.Followers, true
	case CounterReferrals:
		return a.Referrals, true
	}
	return 0, false
}

func (c Counter) String() string {
	switch c {
	case CounterVotesCast:
		return "votes"
	case CounterProposalsCreated:
		return "proposals"
	case CounterPosts:
		return "posts"
	case CounterHelpfulComments:
		return "helpful_comments"
	case CounterEventsOrganized:
		return "events"
	case CounterFollowers:
		return "followers"
	case CounterReferrals:
		return "referrals"
	}
	return fmt.Sprintf("counter(%d)", int(c))
}

// Label is the human form used in requirement text.
func (c Counter) Label() string {
	switch c {
	case CounterVotesCast:
		return "votes cast"
	case CounterProposalsCreated:
		return "proposals created"
	case CounterPosts:
		return "posts"
	case CounterHelpfulComments:
		return "helpful comments"
	case CounterEventsOrganized:
		return "events organized"
	case CounterFollowers:
		return "followers"
	case CounterReferrals:
		return "referrals"
	}
	return "unknown counter"
}

func ParseCounter(s string) (Counter, error) {
	for _, c := range Counters {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown counter %q", s)
}

type CountRequirement struct {
	Counter Counter
	Target  int64
}

func (CountRequirement) Kind() RequirementKind { return KindCount }
func (CountRequirement) sealed()               {}

func (r CountRequirement) Describe() string {
	return fmt.Sprintf("Reach %d %s", r.Target, r.Counter.Label())
}

// TenureRequirement is met once MinAge has elapsed since the join date.
type TenureRequirement struct {
	MinAge time.Duration
}

func (TenureRequirement) Kind() RequirementKind { return KindTenure }
func (TenureRequirement) sealed()               {}

func (r TenureRequirement) Describe() string {
	return fmt.Sprintf("Be a citizen for %d days", int64(r.MinAge/(24*time.Hour)))
}

type SpecialPredicate int

const (
	PredicateCitizenshipHolder SpecialPredicate = iota + 1
	PredicateFirstCitizens
	PredicateEarlyAdopters
	PredicateBetaJoiner
)

func (p SpecialPredicate) String() string {
	switch p {
	case PredicateCitizenshipHolder:
		return "citizenship_holder"
	case PredicateFirstCitizens:
		return "first_citizens"
	case PredicateEarlyAdopters:
		return "early_adopters"
	case PredicateBetaJoiner:
		return "beta_joiner"
	}
	return fmt.Sprintf("predicate(%d)", int(p))
}

type SpecialRequirement struct {
	Predicate SpecialPredicate
}

func (SpecialRequirement) Kind() RequirementKind { return KindSpecial }
func (SpecialRequirement) sealed()               {}

func (r SpecialRequirement) Describe() string {
	switch r.Predicate {
	case PredicateCitizenshipHolder:
		return "Hold a world citizenship token"
	case PredicateFirstCitizens:
		return "Hold one of the first citizenship tokens ever issued"
	case PredicateEarlyAdopters:
		return "Hold an early citizenship token"
	case PredicateBetaJoiner:
		return "Joined during the beta"
	}
	return "Special"
}
