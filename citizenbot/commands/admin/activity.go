package admin

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var Activity = discord.SlashCommandCreate{
	Name:        "activity",
	Description: "Correct an activity counter for a citizen (admin)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Citizen to adjust",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "counter",
			Description: "Counter to change",
			Required:    true,
			Choices:     counterChoices(),
		},
		discord.ApplicationCommandOptionInt{
			Name:        "delta",
			Description: "Amount to add, negative to remove",
			Required:    true,
		},
	},
}

func ActivityHandler(b *citizenbot.Bot) handler.CommandHandler {
	return adminOnly(b, "adjust activity", func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		user := data.User("user")
		delta := int64(data.Int("delta"))

		counter, err := gamification.ParseCounter(data.String("counter"))
		if err != nil {
			return utils.EH.CreateUserError(e, err.Error())
		}
		if delta == 0 {
			return utils.EH.CreateUserError(e, "Delta must be non-zero.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		award, err := b.Scoring.AdjustActivity(ctx, user.ID.String(), counter, delta)
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("%s %+d %s", user.Username, delta, counter.Label()),
				Description: utils.FormatOutcome(award.Outcome),
				Color:       config.InfoColor,
			}},
		})
	})
}
