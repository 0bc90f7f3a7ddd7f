package services

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

// badgeSearchItems implements fuzzy.Source over badge names and ids
type badgeSearchItems []gamification.Badge

func (items badgeSearchItems) Len() int {
	return len(items)
}

func (items badgeSearchItems) String(i int) string {
	return strings.ToLower(items[i].Name + " " + items[i].ID)
}

// BadgeSearch finds catalog badges from partial user input.
type BadgeSearch struct {
	items badgeSearchItems
}

func NewBadgeSearch(catalog *gamification.Catalog) *BadgeSearch {
	return &BadgeSearch{items: catalog.All()}
}

// Search returns up to limit badges, best match first. An empty query lists the catalog in order.
func (s *BadgeSearch) Search(query string, limit int) []gamification.Badge {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		if limit > len(s.items) {
			limit = len(s.items)
		}
		return append([]gamification.Badge(nil), s.items[:limit]...)
	}

	matches := fuzzy.FindFrom(query, s.items)
	out := make([]gamification.Badge, 0, min(limit, len(matches)))
	for _, m := range matches {
		if len(out) == limit {
			break
		}
		out = append(out, s.items[m.Index])
	}
	return out
}

// Find resolves an exact id first, then the best fuzzy match.
func (s *BadgeSearch) Find(query string) (gamification.Badge, bool) {
	for _, b := range s.items {
		if strings.EqualFold(b.ID, query) || strings.EqualFold(b.Name, query) {
			return b, true
		}
	}
	if found := s.Search(query, 1); len(found) == 1 {
		return found[0], true
	}
	return gamification.Badge{}, false
}
