// Package sim plays bot-only games through the engine and checks the game
// invariants after every action.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"threefiveeight/internal/app"
	"threefiveeight/internal/bot"
	"threefiveeight/internal/domain"
)

// ErrStepLimit is returned when a game does not finish within MaxSteps.
var ErrStepLimit = errors.New("step limit reached")

type Options struct {
	Games         int
	Seed          int64
	Level         bot.BotLevel
	VictoryTarget int
	MaxSteps      int
	// Logger receives per-game progress. Nil discards it.
	Logger *logrus.Logger
}

// ActionRecord is one applied action, kept for failure reports.
type ActionRecord struct {
	Hand   int
	Step   int
	Phase  domain.Phase
	Seat   int
	Action app.Action
}

// GameResult describes one finished game.
type GameResult struct {
	GameID string
	Seed   int64
	Winner int
	Reason string
	Hands  int
	Steps  int
	Scores [domain.NumSeats]int
	// DeltaByTarget sums the hand deltas of each target (8, 5, 3).
	DeltaByTarget map[int]int
}

// Summary aggregates a batch of games.
type Summary struct {
	Games         int
	Hands         int
	Steps         int
	Wins          [domain.NumSeats]int
	Reasons       map[string]int
	DeltaByTarget map[int]int
}

// AverageDelta is the mean hand delta of the seat holding target.
func (s Summary) AverageDelta(target int) float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.DeltaByTarget[target]) / float64(s.Hands)
}

func (s *Summary) add(r GameResult) {
	s.Games++
	s.Hands += r.Hands
	s.Steps += r.Steps
	s.Wins[r.Winner]++
	s.Reasons[r.Reason]++
	for target, d := range r.DeltaByTarget {
		s.DeltaByTarget[target] += d
	}
}

// Run plays opts.Games games with consecutive seeds starting at opts.Seed.
// It stops at the first failing game.
func Run(opts Options) (Summary, error) {
	summary := Summary{Reasons: map[string]int{}, DeltaByTarget: map[int]int{}}
	for i := 0; i < opts.Games; i++ {
		result, err := RunGame(opts, opts.Seed+int64(i))
		if err != nil {
			return summary, err
		}
		summary.add(result)
	}
	return summary, nil
}

// RunGame plays a single game to GAME_OVER.
func RunGame(opts Options, seed int64) (GameResult, error) {
	log := opts.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 100000
	}

	table, err := bot.NewTable(opts.Level)
	if err != nil {
		return GameResult{}, err
	}
	players := make([]app.PlayerInfo, domain.NumSeats)
	for seat, a := range table.Agents {
		players[seat] = app.PlayerInfo{ID: a.ID, Name: a.Name}
	}

	svc := app.NewService(rand.New(rand.NewSource(seed)))
	g, err := svc.CreateGame(app.GameOptions{
		GameID:        uuid.NewString(),
		Mode:          domain.ModeLocal,
		Players:       players,
		VictoryTarget: opts.VictoryTarget,
	})
	if err != nil {
		return GameResult{}, err
	}
	entry := log.WithFields(logrus.Fields{"game": g.GameID, "seed": seed})
	entry.WithField("dealer", g.DealerSeat).Debug("game created")

	var records []ActionRecord
	step := 0
	for ; g.Phase != domain.PhaseGameOver; step++ {
		if step >= maxSteps {
			return GameResult{}, failure(g, seed, step, records, ErrStepLimit)
		}
		action, seat, err := table.Next(g)
		if err != nil {
			return GameResult{}, failure(g, seed, step, records, err)
		}
		next, events, err := svc.Apply(g, action)
		if err != nil {
			return GameResult{}, failure(g, seed, step, records, fmt.Errorf("seat %d %s rejected: %w", seat, action.Kind(), err))
		}
		records = append(records, ActionRecord{Hand: g.HandNumber, Step: step, Phase: g.Phase, Seat: seat, Action: action})
		if err := checkInvariants(next); err != nil {
			return GameResult{}, failure(next, seed, step, records, err)
		}
		for _, ev := range events {
			if ev.Kind == app.EventHandScored || ev.Kind == app.EventGameOver {
				entry.WithFields(logrus.Fields{"hand": next.HandNumber, "event": ev.Kind}).Debugf("%+v", ev.Payload)
			}
		}
		g = next
	}

	result := GameResult{
		GameID:        g.GameID,
		Seed:          seed,
		Winner:        *g.Winner,
		Reason:        g.WinnerReason,
		Hands:         len(g.HandHistory),
		Steps:         step,
		Scores:        g.ScoreTotal,
		DeltaByTarget: map[int]int{},
	}
	for _, h := range g.HandHistory {
		for seat := range h.Deltas {
			result.DeltaByTarget[h.Targets[seat]] += h.Deltas[seat]
		}
	}
	entry.WithFields(logrus.Fields{
		"winner": result.Winner,
		"reason": result.Reason,
		"hands":  result.Hands,
		"scores": result.Scores,
	}).Info("game over")
	return result, nil
}

func checkInvariants(g *domain.GameState) error {
	sum := 0
	for _, s := range g.ScoreTotal {
		sum += s
	}
	if sum != 0 {
		return fmt.Errorf("scores %v do not sum to zero", g.ScoreTotal)
	}
	targets := g.Targets[:]
	sorted := append([]int(nil), targets...)
	sort.Ints(sorted)
	if sorted[0] != domain.TargetSecond || sorted[1] != domain.TargetFirst || sorted[2] != domain.TargetDealer {
		return fmt.Errorf("targets %v are not a permutation of 8/5/3", g.Targets)
	}
	if g.Phase == domain.PhaseSetupDeal {
		return nil
	}

	seen := make(map[string]bool, domain.DeckSize)
	all := g.AllCards()
	for _, c := range all {
		if seen[c.ID] {
			return fmt.Errorf("duplicate card %s", c.ID)
		}
		seen[c.ID] = true
	}
	if len(all) != domain.DeckSize {
		return fmt.Errorf("card count mismatch: %d", len(all))
	}
	if n := len(g.TrickCards()); n >= domain.NumSeats {
		return fmt.Errorf("invalid trick size: %d", n)
	}

	switch g.Phase {
	case domain.PhaseTrickPlay:
		for seat, hand := range g.Hands {
			want := domain.HandSize - len(g.TrickHistory)
			for _, pc := range g.TrickCards() {
				if pc.Seat == seat {
					want--
				}
			}
			if len(hand) != want {
				return fmt.Errorf("seat %d holds %d cards, want %d", seat, len(hand), want)
			}
		}
	case domain.PhaseHandScoring, domain.PhaseGameOver:
		tricks := 0
		for _, n := range g.TricksTaken {
			tricks += n
		}
		if tricks != domain.HandSize {
			return fmt.Errorf("hand ended with %d tricks", tricks)
		}
	}
	return nil
}

func failure(g *domain.GameState, seed int64, step int, records []ActionRecord, err error) error {
	start := 0
	if len(records) > 20 {
		start = len(records) - 20
	}
	var b strings.Builder
	for _, r := range records[start:] {
		fmt.Fprintf(&b, "[h%d s%d seat%d %s] %s %+v\n", r.Hand, r.Step, r.Seat, r.Phase, r.Action.Kind(), r.Action)
	}
	return fmt.Errorf("seed=%d hand=%d step=%d phase=%s: %w\nlast actions:\n%s",
		seed, g.HandNumber, step, g.Phase, err, b.String())
}
