package badges

import (
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/handlers"
)

func Register(r handler.Router, b *citizenbot.Bot) {
	r.Route("/badges", func(r handler.Router) {
		r.Command("/list", handlers.WrapWithLogging("badges-list", ListHandler(b)))
		r.Command("/info", handlers.WrapWithLogging("badges-info", InfoHandler(b)))
		r.Autocomplete("/info", InfoAutocomplete(b))
	})
}
