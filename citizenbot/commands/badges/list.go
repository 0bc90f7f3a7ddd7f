package badges

import (
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

func ListHandler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		target := e.User()
		if user, ok := data.OptUser("user"); ok {
			target = user
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		profile, err := b.Scoring.Profile(ctx, target.ID.String())
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		engine := b.Scoring.Engine()
		catalog := engine.Catalog().All()
		if category, ok := data.OptString("category"); ok {
			catalog = engine.Catalog().ByCategory(gamification.Category(category))
		}
		if len(catalog) == 0 {
			return utils.EH.CreateNotFoundError(e, "Category", data.String("category"))
		}

		earned := make(map[string]gamification.EarnedBadge, len(profile.Stats.Badges))
		for _, eb := range profile.Stats.Badges {
			earned[eb.ID] = eb
		}

		totalPages := int(math.Ceil(float64(len(catalog)) / float64(config.BadgesPerPage)))
		title := fmt.Sprintf("🏅 %s's badges (%d/%d)", target.Username, len(profile.Stats.Badges), engine.Catalog().Len())

		return b.Paginator.Create(e.Respond, paginator.Pages{
			ID:      e.ID().String(),
			Creator: e.User().ID,
			PageFunc: func(page int, embed *discord.EmbedBuilder) {
				start := page * config.BadgesPerPage
				end := min(start+config.BadgesPerPage, len(catalog))

				var desc strings.Builder
				for _, badge := range catalog[start:end] {
					desc.WriteString(badgeLine(engine, badge, profile.Activity, earned))
					desc.WriteString("\n")
				}

				embed.
					SetTitle(title).
					SetDescription(desc.String()).
					SetColor(config.EmbedDefaultColor).
					SetFooter(fmt.Sprintf("Page %d/%d", page+1, totalPages), "")
			},
			Pages:      totalPages,
			ExpireMode: paginator.ExpireModeAfterLastUsage,
		}, false)
	}
}

func badgeLine(engine *gamification.Engine, badge gamification.Badge, activity gamification.Activity, earned map[string]gamification.EarnedBadge) string {
	if eb, ok := earned[badge.ID]; ok {
		return fmt.Sprintf("%s **%s** ✅ %s\n-# %s · earned %s", badge.Icon, badge.Name, rarityTag(badge.Rarity),
			badge.Description, discord.FormattedTimestampMention(eb.EarnedAt.Unix(), discord.TimestampStyleShortDate))
	}

	p := engine.Progress(activity, badge)
	progress := fmt.Sprintf("%d/%d", p.Current, p.Target)
	if p.Unit != "" {
		progress += " " + p.Unit
	}
	return fmt.Sprintf("%s **%s** %s\n-# %s · %s", badge.Icon, badge.Name, rarityTag(badge.Rarity), badge.Description, progress)
}

func rarityTag(r gamification.Rarity) string {
	return "`" + strings.ToUpper(string(r)) + "`"
}
