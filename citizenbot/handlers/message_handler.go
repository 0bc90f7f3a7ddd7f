package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
)

// MessageHandler awards a post for messages in the configured feed channels.
// Unregistered authors and authors on cooldown are ignored.
func MessageHandler(b *citizenbot.Bot) bot.EventListener {
	return bot.NewListenerFunc(func(e *events.GuildMessageCreate) {
		msg := e.Message
		if msg.Author.Bot || msg.Author.System || !b.Cfg.Bot.IsFeedChannel(msg.ChannelID) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		award, err := b.Scoring.RecordPost(ctx, msg.Author.ID.String())
		switch {
		case errors.Is(err, services.ErrCooldown), errors.Is(err, services.ErrNotRegistered):
			return
		case err != nil:
			slog.Error("Failed to award post",
				slog.String("type", "cmd"),
				slog.String("name", "feed-post"),
				slog.String("user_id", msg.Author.ID.String()),
				slog.Any("error", err))
			return
		}

		if award.Outcome.LeveledUp {
			announceLevelUp(b, msg.ChannelID, msg.Author.ID, award)
		}
	})
}
