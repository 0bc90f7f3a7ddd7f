package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldcitizen/citizen-bot/citizenbot/gamification"
)

func TestBadgeSearch_Find(t *testing.T) {
	search := NewBadgeSearch(gamification.DefaultCatalog())

	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{name: "Exact id", query: "super-voter", wantID: "super-voter", wantOK: true},
		{name: "Id ignores case", query: "Active-Voter", wantID: "active-voter", wantOK: true},
		{name: "Exact name", query: "Super Voter", wantID: "super-voter", wantOK: true},
		{name: "Partial name", query: "influ", wantID: "influencer", wantOK: true},
		{name: "No match", query: "zzzz", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := search.Find(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && got.ID != tt.wantID {
				t.Errorf("Find(%q) = %v, want %v", tt.query, got.ID, tt.wantID)
			}
		})
	}
}

func TestBadgeSearch_Search(t *testing.T) {
	catalog := gamification.DefaultCatalog()
	search := NewBadgeSearch(catalog)

	t.Run("Empty query lists catalog", func(t *testing.T) {
		got := search.Search("  ", 3)
		assert.Equal(t, catalog.All()[:3], got)
	})

	t.Run("Limit above catalog size", func(t *testing.T) {
		assert.Len(t, search.Search("", 100), catalog.Len())
	})

	t.Run("Consecutive matches rank first", func(t *testing.T) {
		got := search.Search("voter", 2)
		require.Len(t, got, 2)
		assert.ElementsMatch(t, []string{"active-voter", "super-voter"}, []string{got[0].ID, got[1].ID})
	})
}
