package models

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

// CitizenActivity holds the counters tracked outside the points record.
type CitizenActivity struct {
	bun.BaseModel `bun:"table:citizen_activity,alias:ca"`

	ID        int64  `bun:"id,pk,autoincrement"`
	DiscordID string `bun:"discord_id,notnull,unique"`

	VotesCast        int64 `bun:"votes_cast,notnull,default:0"`
	ProposalsCreated int64 `bun:"proposals_created,notnull,default:0"`
	PostsCount       int64 `bun:"posts_count,notnull,default:0"`
	CommentsCount    int64 `bun:"comments_count,notnull,default:0"`
	HelpfulComments  int64 `bun:"helpful_comments,notnull,default:0"`
	EventsOrganized  int64 `bun:"events_organized,notnull,default:0"`
	Followers        int64 `bun:"followers,notnull,default:0"`
	Referrals        int64 `bun:"referrals,notnull,default:0"`

	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// ActivityField is a counter column of citizen_activity.
type ActivityField string

const (
	FieldVotesCast        ActivityField = "votes_cast"
	FieldProposalsCreated ActivityField = "proposals_created"
	FieldPostsCount       ActivityField = "posts_count"
	FieldCommentsCount    ActivityField = "comments_count"
	FieldHelpfulComments  ActivityField = "helpful_comments"
	FieldEventsOrganized  ActivityField = "events_organized"
	FieldFollowers        ActivityField = "followers"
	FieldReferrals        ActivityField = "referrals"
)

func (f ActivityField) Valid() bool {
	switch f {
	case FieldVotesCast, FieldProposalsCreated, FieldPostsCount, FieldCommentsCount,
		FieldHelpfulComments, FieldEventsOrganized, FieldFollowers, FieldReferrals:
		return true
	}
	return false
}

// Add moves field by delta in memory, never going below zero.
func (a *CitizenActivity) Add(field ActivityField, delta int64) {
	var v *int64
	switch field {
	case FieldVotesCast:
		v = &a.VotesCast
	case FieldProposalsCreated:
		v = &a.ProposalsCreated
	case FieldPostsCount:
		v = &a.PostsCount
	case FieldCommentsCount:
		v = &a.CommentsCount
	case FieldHelpfulComments:
		v = &a.HelpfulComments
	case FieldEventsOrganized:
		v = &a.EventsOrganized
	case FieldFollowers:
		v = &a.Followers
	case FieldReferrals:
		v = &a.Referrals
	default:
		return
	}
	*v = max(*v+delta, 0)
}

// FieldForAction is the counter an action bumps.
func FieldForAction(a gamification.Action) (ActivityField, bool) {
	switch a {
	case gamification.ActionVote:
		return FieldVotesCast, true
	case gamification.ActionProposal:
		return FieldProposalsCreated, true
	case gamification.ActionPost:
		return FieldPostsCount, true
	case gamification.ActionComment:
		return FieldCommentsCount, true
	case gamification.ActionEvent:
		return FieldEventsOrganized, true
	case gamification.ActionReferral:
		return FieldReferrals, true
	}
	return "", false
}

func FieldForCounter(c gamification.Counter) (ActivityField, bool) {
	switch c {
	case gamification.CounterVotesCast:
		return FieldVotesCast, true
	case gamification.CounterProposalsCreated:
		return FieldProposalsCreated, true
	case gamification.CounterPosts:
		return FieldPostsCount, true
	case gamification.CounterHelpfulComments:
		return FieldHelpfulComments, true
	case gamification.CounterEventsOrganized:
		return FieldEventsOrganized, true
	case gamification.CounterFollowers:
		return FieldFollowers, true
	case gamification.CounterReferrals:
		return FieldReferrals, true
	}
	return "", false
}

// ToDomain merges the counters with the citizen's identity into an eligibility snapshot.
func (a *CitizenActivity) ToDomain(c *Citizen) gamification.Activity {
	out := gamification.Activity{
		VotesCast:        a.VotesCast,
		ProposalsCreated: a.ProposalsCreated,
		PostsCount:       a.PostsCount,
		HelpfulComments:  a.HelpfulComments,
		EventsOrganized:  a.EventsOrganized,
		Followers:        a.Followers,
		Referrals:        a.Referrals,
	}
	if c != nil {
		out.JoinDate = c.JoinedAt
		out.HasCitizenship = c.HasCitizenship
		out.TokenID = c.TokenID
	}
	return out
}
