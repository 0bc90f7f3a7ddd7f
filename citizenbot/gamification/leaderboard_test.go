package gamification

import (
	"testing"
	"time"
)

func TestCalculateLeaderboard(t *testing.T) {
	in := []Standing{
		{UserID: "c", TotalPoints: 500},
		{UserID: "a", TotalPoints: 900},
		{UserID: "b", TotalPoints: 900},
		{UserID: "d", TotalPoints: 100},
	}

	got := CalculateLeaderboard(in)

	want := []struct {
		id       string
		position int
		marker   string
	}{
		{id: "a", position: 1, marker: "🥇"},
		{id: "b", position: 2, marker: "🥈"},
		{id: "c", position: 3, marker: "🥉"},
		{id: "d", position: 4, marker: ""},
	}

	if len(got) != len(want) {
		t.Fatalf("CalculateLeaderboard() returned %d entries, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].UserID != w.id || got[i].Position != w.position || got[i].Marker != w.marker {
			t.Errorf("entry %d = {%s %d %q}, want {%s %d %q}", i, got[i].UserID, got[i].Position, got[i].Marker, w.id, w.position, w.marker)
		}
	}

	if in[0].UserID != "c" || in[1].UserID != "a" {
		t.Errorf("CalculateLeaderboard() reordered its input")
	}
	if PositionOf(got, "c") != 3 || PositionOf(got, "zzz") != 0 {
		t.Errorf("PositionOf() returned wrong positions")
	}
}

func TestCalculateLeaderboard_Empty(t *testing.T) {
	if got := CalculateLeaderboard(nil); len(got) != 0 {
		t.Errorf("CalculateLeaderboard(nil) = %v, want empty", got)
	}
}

func TestRarityStyleFor(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   string
	}{
		{rarity: RarityCommon, want: "bg-gray-100 text-gray-800 border-gray-200"},
		{rarity: RarityUncommon, want: "bg-green-100 text-green-800 border-green-200"},
		{rarity: RarityRare, want: "bg-blue-100 text-blue-800 border-blue-200"},
		{rarity: RarityEpic, want: "bg-purple-100 text-purple-800 border-purple-200"},
		{rarity: RarityLegendary, want: "bg-yellow-100 text-yellow-800 border-yellow-200"},
		{rarity: Rarity("mythic"), want: "bg-gray-100 text-gray-800 border-gray-200"},
	}

	for _, tt := range tests {
		if got := RarityStyleFor(tt.rarity).Class; got != tt.want {
			t.Errorf("RarityStyleFor(%s).Class = %q, want %q", tt.rarity, got, tt.want)
		}
	}
	if RarityStyleFor(RarityLegendary).Color != 0xFFD700 {
		t.Errorf("legendary color = %#x, want 0xFFD700", RarityStyleFor(RarityLegendary).Color)
	}
}

func TestRecordVisit(t *testing.T) {
	day := func(d, h int) time.Time {
		return time.Date(2026, time.May, d, h, 0, 0, 0, time.UTC)
	}
	withStreak := func(n int) UserStats {
		s := NewUserStats()
		s.Streaks.DailyVisit = n
		return s
	}

	tests := []struct {
		name        string
		streak      int
		last        time.Time
		now         time.Time
		want        int
		wantChanged bool
	}{
		{name: "First visit", streak: 0, last: time.Time{}, now: day(3, 9), want: 1, wantChanged: true},
		{name: "Same day", streak: 4, last: day(3, 1), now: day(3, 23), want: 4, wantChanged: false},
		{name: "Next day", streak: 4, last: day(3, 23), now: day(4, 0), want: 5, wantChanged: true},
		{name: "Gap resets", streak: 29, last: day(3, 12), now: day(5, 12), want: 1, wantChanged: true},
		{name: "Clock behind last visit", streak: 2, last: day(5, 12), now: day(4, 12), want: 2, wantChanged: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := RecordVisit(withStreak(tt.streak), tt.last, tt.now)
			if got.Streaks.DailyVisit != tt.want || changed != tt.wantChanged {
				t.Errorf("RecordVisit() = %d, %v, want %d, %v", got.Streaks.DailyVisit, changed, tt.want, tt.wantChanged)
			}
		})
	}
}
