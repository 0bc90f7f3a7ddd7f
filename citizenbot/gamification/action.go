package gamification

import "fmt"

type Action string

const (
	ActionVote     Action = "vote"
	ActionProposal Action = "proposal"
	ActionPost     Action = "post"
	ActionComment  Action = "comment"
	ActionEvent    Action = "event"
	ActionReferral Action = "referral"
)

var Actions = []Action{
	ActionVote,
	ActionProposal,
	ActionPost,
	ActionComment,
	ActionEvent,
	ActionReferral,
}

func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// BasePoints is the award before streak bonuses. Unknown actions are worth nothing.
func (a Action) BasePoints() int64 {
	switch a {
	case ActionVote:
		return 10
	case ActionProposal:
		return 50
	case ActionPost:
		return 20
	case ActionComment:
		return 5
	case ActionEvent:
		return 100
	case ActionReferral:
		return 30
	}
	return 0
}

func (a Action) Label() string {
	switch a {
	case ActionVote:
		return "Vote"
	case ActionProposal:
		return "Proposal"
	case ActionPost:
		return "Post"
	case ActionComment:
		return "Comment"
	case ActionEvent:
		return "Event"
	case ActionReferral:
		return "Referral"
	}
	return string(a)
}
