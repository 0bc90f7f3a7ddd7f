package gamification

import (
	"math"
	"testing"
	"time"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name   string
		points int64
		want   LevelInfo
	}{
		{name: "Zero", points: 0, want: LevelInfo{Level: 1, NextLevelPoints: 400}},
		{name: "Hundred", points: 100, want: LevelInfo{Level: 1, NextLevelPoints: 300}},
		{name: "One before level 2", points: 399, want: LevelInfo{Level: 1, NextLevelPoints: 1}},
		{name: "Exactly level 2", points: 400, want: LevelInfo{Level: 2, NextLevelPoints: 900}},
		{name: "Five hundred", points: 500, want: LevelInfo{Level: 2, NextLevelPoints: 800}},
		{name: "Exactly level 3", points: 1300, want: LevelInfo{Level: 3, NextLevelPoints: 1600}},
		{name: "Exactly level 5", points: 5400, want: LevelInfo{Level: 5, NextLevelPoints: 3600}},
		{name: "Negative clamps to zero", points: -250, want: LevelInfo{Level: 1, NextLevelPoints: 400}},
		{name: "Max int64", points: math.MaxInt64, want: LevelInfo{Level: 651633, NextLevelPoints: 0}},
		{name: "Just below max int64", points: math.MaxInt64 - 1000, want: LevelInfo{Level: 651633, NextLevelPoints: 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateLevel(tt.points); got != tt.want {
				t.Errorf("CalculateLevel(%d) = %+v, want %+v", tt.points, got, tt.want)
			}
		})
	}
}

func TestLevelThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{level: 0, want: 0},
		{level: 1, want: 0},
		{level: 2, want: 400},
		{level: 3, want: 1300},
		{level: 4, want: 2900},
		{level: 5, want: 5400},
		{level: 651633, want: 9223355627897632800},
		{level: 651634, want: math.MaxInt64},
		{level: math.MaxInt32, want: math.MaxInt64},
	}

	for _, tt := range tests {
		if got := LevelThreshold(tt.level); got != tt.want {
			t.Errorf("LevelThreshold(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestCalculateLevel_Boundaries(t *testing.T) {
	for level := 1; level <= 60; level++ {
		boundary := LevelThreshold(level) + int64(level+1)*int64(level+1)*100
		if boundary != LevelThreshold(level+1) {
			t.Fatalf("threshold(%d) + step = %d, want %d", level, boundary, LevelThreshold(level+1))
		}

		at := CalculateLevel(boundary)
		if at.Level != level+1 {
			t.Errorf("CalculateLevel(%d).Level = %d, want %d", boundary, at.Level, level+1)
		}

		before := CalculateLevel(boundary - 1)
		if before.Level != level {
			t.Errorf("CalculateLevel(%d).Level = %d, want %d", boundary-1, before.Level, level)
		}
		if before.NextLevelPoints != 1 {
			t.Errorf("CalculateLevel(%d).NextLevelPoints = %d, want 1", boundary-1, before.NextLevelPoints)
		}
		if at.NextLevelPoints != int64(level+2)*int64(level+2)*100 {
			t.Errorf("CalculateLevel(%d).NextLevelPoints = %d, want %d", boundary, at.NextLevelPoints, int64(level+2)*int64(level+2)*100)
		}
	}
}

func TestCalculateLevel_Monotonic(t *testing.T) {
	prev := CalculateLevel(0).Level
	for p := int64(0); p <= 60000; p += 37 {
		got := CalculateLevel(p).Level
		if got < prev {
			t.Fatalf("level dropped from %d to %d at %d points", prev, got, p)
		}
		prev = got
	}
}

func TestLevelProgress(t *testing.T) {
	tests := []struct {
		points int64
		want   int
	}{
		{points: 0, want: 0},
		{points: 200, want: 50},
		{points: 400, want: 0},
		{points: 850, want: 50},
		{points: math.MaxInt64 - 1000, want: 99},
		{points: math.MaxInt64, want: 100},
	}

	for _, tt := range tests {
		if got := LevelProgress(tt.points); got != tt.want {
			t.Errorf("LevelProgress(%d) = %d, want %d", tt.points, got, tt.want)
		}
	}
}

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{level: 0, want: "Candidate Citizen"},
		{level: 4, want: "Candidate Citizen"},
		{level: 5, want: "New Citizen"},
		{level: 9, want: "New Citizen"},
		{level: 10, want: "Rising Citizen"},
		{level: 15, want: "Active Citizen"},
		{level: 20, want: "Experienced Citizen"},
		{level: 25, want: "Senior Citizen"},
		{level: 30, want: "Community Leader"},
		{level: 39, want: "Community Leader"},
		{level: 40, want: "Grand Leader"},
		{level: 50, want: "Legendary Citizen"},
		{level: 99, want: "Legendary Citizen"},
	}

	for _, tt := range tests {
		if got := CalculateRank(tt.level); got != tt.want {
			t.Errorf("CalculateRank(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}

	if CalculateRank(5) == CalculateRank(4) {
		t.Errorf("CalculateRank(5) should differ from CalculateRank(4)")
	}
	if len(RankTiers()) != 9 {
		t.Errorf("RankTiers() has %d tiers, want 9", len(RankTiers()))
	}
}

func TestCalculateLevel_NearMaxReturns(t *testing.T) {
	done := make(chan LevelInfo, 1)
	go func() { done <- CalculateLevel(math.MaxInt64 - 1) }()

	select {
	case got := <-done:
		if got.Level != 651633 || got.NextLevelPoints != 1 {
			t.Errorf("CalculateLevel(MaxInt64-1) = %+v, want level 651633 with 1 point to go", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("CalculateLevel(MaxInt64-1) did not return")
	}
}
