package system

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var Commands = []discord.ApplicationCommandCreate{
	Version,
}

var Version = discord.SlashCommandCreate{
	Name:        "version",
	Description: "version command",
}

func VersionHandler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		citizens, err := b.CitizenRepository.Count(ctx)
		if err != nil {
			slog.Warn("Failed to count citizens", slog.String("type", "db"), slog.Any("error", err))
		}

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Content: utils.Ptr(fmt.Sprintf("Version: %s\nCommit: %s\nBadges: %d\nCitizens: %s",
				b.Version, b.Commit, b.Scoring.Engine().Catalog().Len(), utils.FormatNumber(int64(citizens)))),
		})
		return err
	}
}
