package leaderboard

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var Commands = []discord.ApplicationCommandCreate{
	Leaderboard,
}

var Leaderboard = discord.SlashCommandCreate{
	Name:        "leaderboard",
	Description: "Top citizens by points",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionBool{
			Name:        "image",
			Description: "Render the top ten as an image card",
		},
	},
}

func Handler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if image, ok := e.SlashCommandInteractionData().OptBool("image"); ok && image {
			return imageLeaderboard(b, e)
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		entries, err := b.Scoring.Leaderboard(ctx, config.MaxLeaderboardSize)
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}
		if len(entries) == 0 {
			return utils.EH.CreateInfoEmbed(e, "No citizens on the leaderboard yet. Be the first with `/register`!")
		}

		footer := ""
		if pos := gamification.PositionOf(entries, e.User().ID.String()); pos > 0 {
			footer = fmt.Sprintf(" • You are #%d", pos)
		}

		totalPages := int(math.Ceil(float64(len(entries)) / float64(config.LeaderboardPageSize)))
		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.LeaderboardPageSize
				end := min(start+config.LeaderboardPageSize, len(entries))

				embed.
					SetTitle("🏆 Citizen leaderboard").
					SetDescription(FormatEntries(entries[start:end])).
					SetColor(config.LevelUpColor).
					SetFooter(fmt.Sprintf("Page %d/%d%s", page+1, totalPages, footer), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

// FormatEntries renders one line per entry, podium markers in place of positions.
func FormatEntries(entries []gamification.LeaderboardEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		pos := entry.Marker
		if pos == "" {
			pos = fmt.Sprintf("`#%d`", entry.Position)
		}
		fmt.Fprintf(&b, "%s **%s** · %s pts · Lv. %d %s\n",
			pos, entry.Username, utils.FormatNumber(entry.TotalPoints), entry.Level, entry.Rank)
	}
	return b.String()
}

func imageLeaderboard(b *citizenbot.Bot, e *handler.CommandEvent) error {
	if err := e.DeferCreateMessage(false); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ImageRenderTimeout)
	defer cancel()

	entries, err := b.Scoring.Leaderboard(ctx, config.LeaderboardPageSize)
	if err != nil {
		return utils.EH.UpdateServiceError(e, err)
	}
	if len(entries) == 0 {
		return utils.EH.UpdateError(e, utils.NotFoundError, "No citizens on the leaderboard yet.")
	}

	image, err := b.LeaderboardImage.Generate(ctx, "Citizen leaderboard", entries)
	if err != nil {
		return utils.EH.UpdateError(e, utils.SystemError, "Failed to render the leaderboard image. Try again without `image`.")
	}

	_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
		Files: []*discord.File{discord.NewFile("leaderboard.png", "Top citizens", bytes.NewReader(image))},
	})
	return err
}
