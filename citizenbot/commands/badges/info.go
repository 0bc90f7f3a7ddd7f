package badges

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

const maxAutocompleteChoices = 25

func InfoHandler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		query := e.SlashCommandInteractionData().String("badge")
		badge, ok := b.BadgeSearch.Find(query)
		if !ok {
			return utils.EH.CreateNotFoundError(e, "Badge", query)
		}

		embed := discord.NewEmbedBuilder().
			SetTitle(fmt.Sprintf("%s %s", badge.Icon, badge.Name)).
			SetDescription(badge.Description).
			SetColor(gamification.RarityStyleFor(badge.Rarity).Color).
			AddField("Requirement", badge.Requirement.Describe(), false).
			AddField("Rarity", rarityTag(badge.Rarity), true).
			AddField("Category", categoryLabel(badge.Category), true).
			AddField("Reward", "+"+utils.FormatNumber(badge.Points)+" points", true)

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		// Progress is a bonus; a visitor who has not registered still sees the badge.
		if profile, err := b.Scoring.Profile(ctx, e.User().ID.String()); err == nil {
			if profile.Stats.HasBadge(badge.ID) {
				embed.AddField("Your progress", "✅ Earned", false)
			} else {
				p := b.Scoring.Engine().Progress(profile.Activity, badge)
				embed.AddField("Your progress", fmt.Sprintf("%s %d/%d %s",
					utils.ProgressBar(int(percentOf(p.Current, p.Target))), p.Current, p.Target, p.Unit), false)
			}
		} else if !errors.Is(err, services.ErrNotRegistered) {
			return utils.EH.CreateServiceError(e, err)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{embed.Build()},
		})
	}
}

func InfoAutocomplete(b *citizenbot.Bot) handler.AutocompleteHandler {
	return func(e *handler.AutocompleteEvent) error {
		query := e.Data.String("badge")
		found := b.BadgeSearch.Search(query, maxAutocompleteChoices)

		choices := make([]discord.AutocompleteChoice, 0, len(found))
		for _, badge := range found {
			choices = append(choices, discord.AutocompleteChoiceString{
				Name:  fmt.Sprintf("%s %s", badge.Icon, badge.Name),
				Value: badge.ID,
			})
		}
		return e.AutocompleteResult(choices)
	}
}

func percentOf(current, target int64) int64 {
	if target <= 0 {
		return 100
	}
	return current * 100 / target
}
