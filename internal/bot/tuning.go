package bot

import (
	"fmt"
	"strings"

	botinternal "threefiveeight/internal/bot/internal"
)

// BotLevel selects a Brain implementation.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota + 1
	BotLevelPro
)

func (l BotLevel) String() string {
	switch l {
	case BotLevelBasic:
		return "basic"
	case BotLevelPro:
		return "pro"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// ParseLevel maps a config or flag value to a BotLevel.
func ParseLevel(s string) (BotLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "easy":
		return BotLevelBasic, nil
	case "", "pro", "hard":
		return BotLevelPro, nil
	default:
		return 0, fmt.Errorf("unknown bot level %q", s)
	}
}

// DefaultTuning carries the weights the pro level plays with.
var DefaultTuning = botinternal.Tuning{
	Cutter: botinternal.CutterWeights{
		Length:      180,
		TopSeq:      250,
		HighCard:    100,
		Ace:         200,
		AceKing:     150,
		Run5:        400,
		Run6:        500,
		Run7:        600,
		OtherTopSeq: 60,
		Void:        150,
	},
	Discard: botinternal.DiscardWeights{
		TopSeq:    350,
		AceKing:   400,
		Ace:       250,
		HighCard:  120,
		Long:      250,
		Guarded:   200,
		ShortWeak: 0.3,
		VoidBelow: 500,
	},
	Give: botinternal.GiveWeights{
		Rank:      25,
		HighCard:  600,
		Ace:       400,
		ShortSuit: 100,
		SuitLen:   30,
	},
	Dump: botinternal.DumpWeights{
		SuitLen: 100,
		Void:    500,
		Protect: 800,
	},
	Lead: botinternal.LeadWeights{
		LoseHigherOut: 40,
		LoseRank:      15,
		ScoutLen:      50,
		ScoutAlmost:   300,
		ScoutMaster:   400,
		ScoutKnown:    20,
		ScoutSafe:     100,
		ScoutMin:      200,
		DangerRank:    10,
		DangerLen:     50,
	},
	OpeningLead: botinternal.LeadWeights{
		LoseHigherOut: 40,
		LoseRank:      15,
		ScoutLen:      60,
		ScoutAlmost:   300,
		ScoutMaster:   400,
		ScoutKnown:    0,
		ScoutSafe:     0,
		ScoutMin:      300,
		DangerRank:    10,
		DangerLen:     50,
	},
	Reshuffle: botinternal.ReshuffleWeights{
		HighCard:    0.5,
		Length:      0.5,
		LengthFrom:  4,
		AcceptRatio: 0.4,
	},
	EndgameWindow: 6,
}
