package utils

import (
	"fmt"
	"strings"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

// FormatOutcome summarises one update for an embed description.
func FormatOutcome(o gamification.Outcome) string {
	var b strings.Builder

	if o.ActionPoints > 0 {
		fmt.Fprintf(&b, "**+%s** points for %s", FormatNumber(o.ActionPoints), strings.ToLower(o.Action.Label()))
		if len(o.Bonuses) > 0 {
			names := make([]string, 0, len(o.Bonuses))
			for _, bonus := range o.Bonuses {
				names = append(names, fmt.Sprintf("%s ×%s", bonus.Name, FormatPercent(bonus.Percent)))
			}
			fmt.Fprintf(&b, " (%s)", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	for _, badge := range o.NewBadges {
		fmt.Fprintf(&b, "%s New badge **%s** (+%s)\n", badge.Icon, badge.Name, FormatNumber(badge.Points))
	}

	if o.LeveledUp {
		fmt.Fprintf(&b, "🎉 Level up! You are now level **%d**, **%s**\n", o.Stats.Level, o.Stats.Rank)
	}

	if b.Len() == 0 {
		b.WriteString("No new points this time.\n")
	}
	fmt.Fprintf(&b, "\nTotal: **%s** points", FormatNumber(o.Stats.TotalPoints))
	return b.String()
}

// FormatPercent renders 150 as "1.5" and 200 as "2".
func FormatPercent(p int64) string {
	if p%100 == 0 {
		return fmt.Sprintf("%d", p/100)
	}
	s := fmt.Sprintf("%d.%02d", p/100, p%100)
	return strings.TrimRight(s, "0")
}
