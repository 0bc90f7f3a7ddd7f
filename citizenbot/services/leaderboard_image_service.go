package services

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

const leaderboardImageSize = 10

//go:embed templates/leaderboard.html
var leaderboardTemplate string

var numbers = message.NewPrinter(language.English)

var leaderboardTmpl = template.Must(template.New("leaderboard").Funcs(template.FuncMap{
	"points": func(n int64) string { return numbers.Sprintf("%d", n) },
}).Parse(leaderboardTemplate))

type LeaderboardImageService struct {
	logger *slog.Logger
}

type LeaderboardImageData struct {
	Title     string
	Timestamp string
	Entries   []gamification.LeaderboardEntry
}

func NewLeaderboardImageService() *LeaderboardImageService {
	return &LeaderboardImageService{
		logger: slog.With(slog.String("service", "leaderboard_image")),
	}
}

// RenderHTML fills the card template with at most the top ten entries.
func (s *LeaderboardImageService) RenderHTML(title string, entries []gamification.LeaderboardEntry, now time.Time) (string, error) {
	if len(entries) > leaderboardImageSize {
		entries = entries[:leaderboardImageSize]
	}

	var buf bytes.Buffer
	err := leaderboardTmpl.Execute(&buf, LeaderboardImageData{
		Title:     title,
		Timestamp: now.UTC().Format("2006-01-02 15:04 MST"),
		Entries:   entries,
	})
	if err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// Generate screenshots the rendered card as PNG.
func (s *LeaderboardImageService) Generate(ctx context.Context, title string, entries []gamification.LeaderboardEntry) ([]byte, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no leaderboard entries provided")
	}

	start := time.Now()
	html, err := s.RenderHTML(title, entries, start)
	if err != nil {
		return nil, err
	}

	chromeCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...any) {}))
	defer cancel()
	chromeCtx, cancel = context.WithTimeout(chromeCtx, config.ImageRenderTimeout)
	defer cancel()

	var image []byte
	err = chromedp.Run(chromeCtx,
		chromedp.Navigate("data:text/html,"+url.PathEscape(html)),
		chromedp.WaitVisible("#leaderboard-container", chromedp.ByID),
		chromedp.Screenshot("#leaderboard-container", &image, chromedp.ByID),
	)
	if err != nil {
		s.logger.Error("Failed to render leaderboard image",
			slog.String("error", err.Error()),
			slog.Duration("took", time.Since(start)))
		return nil, fmt.Errorf("failed to generate image: %w", err)
	}

	s.logger.Info("Leaderboard image generated",
		slog.Int("entries", min(len(entries), leaderboardImageSize)),
		slog.Int("image_size", len(image)),
		slog.Duration("took", time.Since(start)))
	return image, nil
}
