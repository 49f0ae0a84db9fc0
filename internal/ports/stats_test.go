package ports

import "testing"

func TestPlayerStatsApply(t *testing.T) {
	var s PlayerStats
	s = s.Apply(GameOutcome{Won: false, Score: -4, Hands: 7})
	if s.BestScore != -4 {
		t.Fatalf("BestScore after first game = %d, want -4", s.BestScore)
	}
	s = s.Apply(GameOutcome{Won: true, Score: 10, Hands: 9})
	s = s.Apply(GameOutcome{Won: false, Score: 2, Hands: 5})

	want := PlayerStats{Games: 3, Wins: 1, Hands: 21, TotalScore: 8, BestScore: 10}
	if s != want {
		t.Fatalf("Apply = %+v, want %+v", s, want)
	}
}
