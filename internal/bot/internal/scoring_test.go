package internal

import (
	"testing"

	"threefiveeight/internal/domain"
)

var testWeights = Tuning{
	Cutter:  CutterWeights{Length: 180, TopSeq: 250, HighCard: 100, Ace: 200, AceKing: 150, Run5: 400, Run6: 500, Run7: 600, OtherTopSeq: 60, Void: 150},
	Discard: DiscardWeights{TopSeq: 350, AceKing: 400, Ace: 250, HighCard: 120, Long: 250, Guarded: 200, ShortWeak: 0.3, VoidBelow: 500},
	Give:    GiveWeights{Rank: 25, HighCard: 600, Ace: 400, ShortSuit: 100, SuitLen: 30},
	Dump:    DumpWeights{SuitLen: 100, Void: 500, Protect: 800},
}

func TestCutterScorePrefersLongTopSuit(t *testing.T) {
	h := ProfileHand(cards(t,
		"S-A", "S-K", "S-Q", "S-7", "S-5", "S-2",
		"H-K", "H-9", "H-4",
		"D-J", "D-8", "D-6", "D-3",
		"C-10", "C-9", "C-2",
	))
	spades := CutterScore(h, domain.Spades, testWeights.Cutter)
	for _, s := range []domain.Suit{domain.Hearts, domain.Diamonds, domain.Clubs} {
		if got := CutterScore(h, s, testWeights.Cutter); got >= spades {
			t.Fatalf("CutterScore(%s) = %d, want below spades %d", s, got, spades)
		}
	}
	void := ProfileHand(cards(t, "S-A"))
	if got := CutterScore(void, domain.Hearts, testWeights.Cutter); got != 0 {
		t.Fatalf("void suit score = %d, want 0", got)
	}
}

func TestKeepScoreShortWeakSuit(t *testing.T) {
	weak := KeepScore(ProfileSuit(cards(t, "H-3", "H-5"), domain.Hearts), testWeights.Discard)
	if weak < 2.39 || weak > 2.41 {
		t.Fatalf("weak KeepScore = %v, want 2.4", weak)
	}
	strong := KeepScore(ProfileSuit(cards(t, "H-A", "H-K"), domain.Hearts), testWeights.Discard)
	if strong <= testWeights.Discard.VoidBelow {
		t.Fatalf("A-K KeepScore = %v, want above %v", strong, testWeights.Discard.VoidBelow)
	}
}

func TestGiveAndDumpScores(t *testing.T) {
	low := cards(t, "C-2")[0]
	ace := cards(t, "C-A")[0]
	if GiveScore(low, 2, testWeights.Give) >= GiveScore(ace, 2, testWeights.Give) {
		t.Fatalf("a low card should be given before an ace")
	}
	if DumpScore(low, 1, testWeights.Dump) >= DumpScore(low, 3, testWeights.Dump) {
		t.Fatalf("a singleton should be dumped before a card of a long suit")
	}
	if DumpScore(ace, 2, testWeights.Dump) <= DumpScore(low, 4, testWeights.Dump) {
		t.Fatalf("a guarded ace should be protected")
	}
}

func TestEstimateTricks(t *testing.T) {
	w := ReshuffleWeights{HighCard: 0.5, Length: 0.5, LengthFrom: 4}
	strong := EstimateTricks(ProfileHand(cards(t, "S-A", "S-K", "S-Q", "S-J", "S-10", "S-9", "H-A", "H-K")), w)
	weak := EstimateTricks(ProfileHand(cards(t, "S-2", "S-5", "H-3", "D-7", "C-4", "C-9")), w)
	if strong != 6+1+2 {
		t.Fatalf("strong estimate = %v, want 9", strong)
	}
	if weak != 0 {
		t.Fatalf("weak estimate = %v, want 0", weak)
	}
}

func TestLeadForStage(t *testing.T) {
	tn := Tuning{
		Lead:        LeadWeights{ScoutMin: 200},
		OpeningLead: LeadWeights{ScoutMin: 300},
	}
	tests := []struct {
		stage Stage
		want  int
	}{
		{StageOpening, 300},
		{StageMiddle, 200},
		{StageEndgame, 200},
	}
	for _, tt := range tests {
		if got := tn.LeadFor(tt.stage).ScoutMin; got != tt.want {
			t.Fatalf("LeadFor(%v).ScoutMin = %d, want %d", tt.stage, got, tt.want)
		}
	}
}
