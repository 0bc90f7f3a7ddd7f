package citizen

import (
	"context"
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"

	"github.com/worldcitizen/citizen-bot/citizenbot"
	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/database/models"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
	"github.com/worldcitizen/citizen-bot/citizenbot/services"
	"github.com/worldcitizen/citizen-bot/citizenbot/utils"
)

var Profile = discord.SlashCommandCreate{
	Name:        "profile",
	Description: "Show level, rank, badges and streaks",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionUser{
			Name:        "user",
			Description: "Whose profile to show",
			Required:    false,
		},
	},
}

func ProfileHandler(b *citizenbot.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		target := e.User()
		if user, ok := e.SlashCommandInteractionData().OptUser("user"); ok {
			target = user
		}

		ctx, cancel := context.WithTimeout(context.Background(), config.CommandExecutionTimeout)
		defer cancel()

		profile, err := b.Scoring.Profile(ctx, target.ID.String())
		if err != nil {
			return utils.EH.CreateServiceError(e, err)
		}

		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{profileEmbed(target, profile)},
		})
	}
}

func profileEmbed(user discord.User, p *services.Profile) discord.Embed {
	stats := p.Stats
	level := gamification.CalculateLevel(stats.TotalPoints)
	progress := gamification.LevelProgress(stats.TotalPoints)

	var levelLine strings.Builder
	fmt.Fprintf(&levelLine, "Level **%d** · %s\n", stats.Level, stats.Rank)
	fmt.Fprintf(&levelLine, "%s %d%%\n", utils.ProgressBar(progress), progress)
	fmt.Fprintf(&levelLine, "%s / %s points to level %d",
		utils.FormatNumber(stats.TotalPoints), utils.FormatNumber(level.NextLevelPoints), stats.Level+1)

	citizenship := "Not yet a citizen"
	if p.Citizen.HasCitizenship {
		citizenship = fmt.Sprintf("Token #%d", p.Citizen.TokenID)
	}

	embed := discord.NewEmbedBuilder().
		SetAuthor(user.Username, "", user.EffectiveAvatarURL()).
		SetTitle("🌍 Citizen profile").
		SetDescription(levelLine.String()).
		SetColor(rankColor(stats)).
		AddField("Points", utils.FormatNumber(stats.TotalPoints), true).
		AddField("This week", "+"+utils.FormatNumber(p.WeeklyTotal), true).
		AddField("Position", fmt.Sprintf("#%d", p.Position), true).
		AddField("Citizenship", citizenship, true).
		AddField("Badges", fmt.Sprintf("%d", len(stats.Badges)), true).
		AddField("Streaks", fmt.Sprintf("🗳️ %d votes · 📅 %d days · 📜 %d proposals",
			stats.Streaks.Voting, stats.Streaks.DailyVisit, stats.Streaks.ProposalCreation), false).
		AddField("Activity", formatCounters(p.Counters), false)

	if recent := formatRecent(p.Recent); recent != "" {
		embed.AddField("Recent", recent, false)
	}
	if !p.LastVisit.IsZero() {
		embed.SetFooterText("Last check-in")
		embed.SetTimestamp(p.LastVisit)
	}
	return embed.Build()
}

// rankColor uses the rarity color of the rarest badge held.
func rankColor(stats gamification.UserStats) int {
	best := gamification.RarityCommon
	for _, b := range stats.Badges {
		if b.Rarity.Weight() > best.Weight() {
			best = b.Rarity
		}
	}
	if len(stats.Badges) == 0 {
		return config.EmbedDefaultColor
	}
	return gamification.RarityStyleFor(best).Color
}

func formatCounters(a *models.CitizenActivity) string {
	return fmt.Sprintf("%d votes · %d proposals · %d posts · %d comments · %d events · %d referrals",
		a.VotesCast, a.ProposalsCreated, a.PostsCount, a.CommentsCount, a.EventsOrganized, a.Referrals)
}

func formatRecent(events []*models.PointEvent) string {
	var b strings.Builder
	for _, ev := range events {
		total := ev.ActionPoints + ev.BadgePoints
		if total == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s **+%s** %s\n",
			discord.FormattedTimestampMention(ev.CreatedAt.Unix(), discord.TimestampStyleRelative),
			utils.FormatNumber(total), ev.Action)
	}
	return b.String()
}
