package citizen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var CheckIn = discord.SlashCommandCreate{
	Name:        "checkin",
	Description: "Record today's visit and keep your daily streak going",
}

func CheckInHandler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		award, err := b.Scoring.CheckIn(ctx, e.User().ID.String())
		if errors.Is(err, services.ErrCooldown) {
			return utils.EH.CreateBusinessLogicError(e,
				fmt.Sprintf("You already checked in today. Next check-in in %s.", utils.FormatCooldown(untilNextDay(time.Now()))))
		}
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		cfg := b.Scoring.Engine().Config()
		streak := award.Outcome.Stats.Streaks.DailyVisit
		footer := fmt.Sprintf("%d more days for the ×%s visit bonus", cfg.DailyVisitThreshold-streak, utils.FormatPercent(cfg.DailyVisitBonusPercent))
		if streak >= cfg.DailyVisitThreshold {
			footer = fmt.Sprintf("Visit bonus active: ×%s on every action", utils.FormatPercent(cfg.DailyVisitBonusPercent))
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("📅 Day %d streak", streak),
				Description: utils.FormatOutcome(award.Outcome),
				Color:       config.SuccessColor,
				Footer:      &discord.EmbedFooter{Text: footer},
			}},
		})
	}
}

// untilNextDay is the wait until the next UTC day starts.
func untilNextDay(now time.Time) time.Duration {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)
	return next.Sub(now)
}
