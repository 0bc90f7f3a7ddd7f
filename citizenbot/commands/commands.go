package commands

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/commands/admin"
	"github.com/worldcitizen/citizen-bot/citizenbot/commands/badges"
	"github.com/worldcitizen/citizen-bot/citizenbot/commands/citizen"
	"github.com/worldcitizen/citizen-bot/citizenbot/commands/leaderboard"
	"github.com/worldcitizen/citizen-bot/citizenbot/commands/system"
	"github.com/worldcitizen/citizen-bot/citizenbot/handlers"
)

var Commands = []discord.ApplicationCommandCreate{}

func init() {
	Commands = append(Commands, admin.Commands...)
	Commands = append(Commands, badges.Commands...)
	Commands = append(Commands, citizen.Commands...)
	Commands = append(Commands, leaderboard.Commands...)
	Commands = append(Commands, system.Commands...)
}

// Register attaches every command handler to r.
func Register(r handler.Router, b *citizenbot.Bot) {
	r.Command("/version", system.VersionHandler(b))

	r.Command("/register", handlers.WrapWithLogging("register", citizen.RegisterHandler(b)))
	r.Command("/profile", handlers.WrapWithLogging("profile", citizen.ProfileHandler(b)))
	r.Command("/checkin", handlers.WrapWithLogging("checkin", citizen.CheckInHandler(b)))
	r.Command("/leaderboard", handlers.WrapWithLogging("leaderboard", leaderboard.Handler(b)))
	badges.Register(r, b)

	r.Command("/citizenship", handlers.WrapWithLogging("citizenship", admin.CitizenshipHandler(b)))
	r.Command("/award", handlers.WrapWithLogging("award", admin.AwardHandler(b)))
	r.Command("/activity", handlers.WrapWithLogging("activity", admin.ActivityHandler(b)))
}
