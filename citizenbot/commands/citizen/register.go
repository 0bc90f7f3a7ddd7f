package citizen

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var walletPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

var Register = discord.SlashCommandCreate{
	Name:        "register",
	Description: "Become a citizen and start earning points",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "wallet",
			Description: "Your wallet address (0x...)",
			Required:    false,
		},
	},
}

func RegisterHandler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		wallet := strings.TrimSpace(e.SlashCommandInteractionData().String("wallet"))
		if wallet != "" && !walletPattern.MatchString(wallet) {
			return utils.EH.CreateUserError(e, "Invalid wallet address. It must look like `0x` followed by 40 hex characters.")
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		citizen, err := b.Scoring.Register(ctx, e.User().ID.String(), e.User().Username, wallet)
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{{
				Title: "🌍 Welcome, citizen!",
				Description: fmt.Sprintf("**%s** joined the community on %s.\n"+
					"Vote, propose, post and check in daily with `/checkin` to earn points and badges.",
					citizen.Username, discord.FormattedTimestampMention(citizen.JoinedAt.Unix(), discord.TimestampStyleLongDate)),
				Color: config.SuccessColor,
			}},
		})
	}
}
