package admin

import (
	"context"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var Citizenship = discord.SlashCommandCreate{
	Name:        "citizenship",
	Description: "Record a citizenship token for a citizen (admin)",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Citizen receiving the token",
			Required:    true,
		},
		discord.ApplicationCommandOptionInt{
			Name:        "token_id",
			Description: "Token number",
			Required:    true,
			MinValue:    utils.Ptr(1),
		},
	},
}

func CitizenshipHandler(b *citizenbot.Bot) handler.CommandHandler {
	return adminOnly(b, "grant citizenship", func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		user := data.User("user")
		tokenID := int64(data.Int("token_id"))

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		award, err := b.Scoring.GrantCitizenship(ctx, user.ID.String(), tokenID)
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title:       fmt.Sprintf("🪪 %s holds token #%d", user.Username, tokenID),
				Description: utils.FormatOutcome(award.Outcome),
				Color:       config.SuccessColor,
			}},
		})
	})
}
