package badges

import (
	"github.com/disgoorg/disgo/discord"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

var Commands = []discord.ApplicationCommandCreate{
	Badges,
}

var Badges = discord.SlashCommandCreate{
	Name:        "badges",
	Description: "Browse badges and your progress towards them",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionSubCommand{
			Name:        "list",
			Description: "List every badge with earned status",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionUser{
					Name:        "user",
					Description: "Whose badges to show",
				},
				discord.ApplicationCommandOptionString{
					Name:        "category",
					Description: "Only show one category",
					Choices:     categoryChoices(),
				},
			},
		},
		discord.ApplicationCommandOptionSubCommand{
			Name:        "info",
			Description: "Show one badge and how to earn it",
			Options: []discord.ApplicationCommandOption{
				discord.ApplicationCommandOptionString{
					Name:         "badge",
					Description:  "Badge name",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	},
}

func categoryChoices() []discord.ApplicationCommandOptionChoiceString {
	choices := make([]discord.ApplicationCommandOptionChoiceString, 0, len(gamification.Categories))
	for _, c := range gamification.Categories {
		choices = append(choices, discord.ApplicationCommandOptionChoiceString{
			Name:  categoryLabel(c),
			Value: string(c),
		})
	}
	return choices
}

func categoryLabel(c gamification.Category) string {
	switch c {
	case gamification.CategoryCitizenship:
		return "Citizenship"
	case gamification.CategoryDAO:
		return "DAO"
	case gamification.CategoryCommunity:
		return "Community"
	case gamification.CategorySocial:
		return "Social"
	case gamification.CategorySpecial:
		return "Special"
	}
	return string(c)
}
