package handlers

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
)

func announceLevelUp(b *citizenbot.Bot, channelID, userID snowflake.ID, award *services.Award) {
	stats := award.Outcome.Stats

	var desc strings.Builder
	fmt.Fprintf(&desc, "%s reached **level %d** and is now a **%s**!", discord.UserMention(userID), stats.Level, stats.Rank)
	for _, badge := range award.Outcome.NewBadges {
		fmt.Fprintf(&desc, "\n%s Earned **%s**", badge.Icon, badge.Name)
	}

	_, err := b.Client.Rest().CreateMessage(channelID, discord.MessageCreate{
		Embeds: []discord.Embed{{
			Title:       "🎉 Level up",
			Description: desc.String(),
			Color:       config.LevelUpColor,
		}},
		AllowedMentions: &discord.AllowedMentions{},
	})
	if err != nil {
		slog.Warn("Failed to announce level up",
			slog.String("type", "cmd"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
}
