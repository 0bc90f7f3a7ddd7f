package admin

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var Commands = []discord.ApplicationCommandCreate{
	Citizenship,
	Award,
	Activity,
}

// adminOnly rejects anyone not listed in bot.admin_ids.
func adminOnly(b *citizenbot.Bot, action string, h handler.CommandHandler) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsAdmin(e.User().ID) {
			return utils.EH.CreatePermissionError(e, action)
		}
		return h(e)
	}
}

func actionChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(gamification.Actions))
	for _, a := range gamification.Actions {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  a.Label(),
			Value: string(a),
		})
	}
	return choices
}

func counterChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(gamification.Counters))
	for _, c := range gamification.Counters {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  c.Label(),
			Value: c.String(),
		})
	}
	return choices
}
