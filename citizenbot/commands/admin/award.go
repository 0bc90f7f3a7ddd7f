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

var Award = discord.SlashCommandCreate{
	Name:        "award",
	Description: "Record a platform action for a citizen (admin)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Citizen who performed the action",
			Required:    true,
		},
		discord.ApplicationCommandOptionString{
			Name:        "action",
			Description: "What they did",
			Required:    true,
			Choices:     actionChoices(),
		},
	},
}

func AwardHandler(b *citizenbot.Bot) handler.CommandHandler {
	return adminOnly(b, "award points", func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		user := data.User("user")

		action, err := gamification.ParseAction(data.String("action"))
		if err != nil {
			return utils.EH.CreateUserError(e, err.Error())
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		award, err := b.Scoring.RecordAction(ctx, user.ID.String(), action)
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("%s recorded for %s", action.Label(), user.Username),
				Description: utils.FormatOutcome(award.Outcome),
				Color:       config.SuccessColor,
			}},
		})
	})
}
