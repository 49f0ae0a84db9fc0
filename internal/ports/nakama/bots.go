package nakama

import (
	"context"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"threefiveeight/internal/app"
	"threefiveeight/internal/bot"
	"threefiveeight/internal/domain"
)

// botJitter is the largest random extra think time.
const botJitter = 300 * time.Millisecond

func msToTicks(d time.Duration) int64 {
	ticks := int64(d / (time.Second / tickRate))
	if ticks < 1 {
		return 1
	}
	return ticks
}

func (mh *matchHandler) processBots(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		if state.Config.BotsEnabled {
			mh.autoFill(state, dispatcher, logger)
		}
		return
	}

	seat, agent := state.nextBotSeat()
	if agent == nil {
		state.BotWaitUntil = 0
		return
	}
	if state.BotWaitUntil == 0 {
		state.BotWaitUntil = state.Tick + msToTicks(state.botDelay())
		logger.Debug("processBots: %s (seat %d) will act at tick %d (current %d)", agent.Name, seat, state.BotWaitUntil, state.Tick)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	retry := func(err error) {
		logger.Error("processBots: %s (seat %d) failed in %s: %v", agent.Name, seat, state.Game.Phase, err)
		state.BotWaitUntil = state.Tick + msToTicks(botRetryMs*time.Millisecond)
	}

	action, ok, err := agent.Decide(state.Game, seat)
	if err != nil || !ok {
		if err == nil {
			err = bot.ErrNoMove
		}
		retry(err)
		return
	}

	g := state.Game
	if g.Phase == domain.PhaseReshuffleWindow && domain.SideFor(seat, g.DealerSeat) == domain.SideOthers {
		err = mh.castVote(ctx, state, dispatcher, logger, seat, action.Kind() == app.ActionReshuffleAccept)
	} else {
		err = mh.applyAction(ctx, state, dispatcher, logger, action)
	}
	if err != nil {
		retry(err)
	}
}

// autoFill seats bots once a single human has waited long enough.
func (mh *matchHandler) autoFill(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.GetHumanPlayerCount() != 1 || state.GetOpenSeatsCount() == 0 {
		state.LastSinglePlayerTick = 0
		return
	}
	if state.LastSinglePlayerTick == 0 {
		state.LastSinglePlayerTick = state.Tick
		logger.Debug("processBots: Single player detected, starting auto-fill timer.")
	}
	if state.Tick-state.LastSinglePlayerTick < msToTicks(state.Config.AutoFillDelay()) {
		return
	}
	if mh.fillWithBots(state, logger) > 0 {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastSeats(state, dispatcher, logger)
	}
	state.LastSinglePlayerTick = 0
}

// fillWithBots seats a bot in every empty seat and returns how many joined.
func (mh *matchHandler) fillWithBots(state *MatchState, logger runtime.Logger) int {
	added := 0
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		identity := state.freeIdentity(i)
		agent, err := bot.NewAgent(identity.UserID, identity.DisplayName, bot.LevelOf(identity, state.BotLevel))
		if err != nil {
			logger.Error("Failed to create bot agent for %s: %v", identity.UserID, err)
			continue
		}
		state.Seats[i] = identity.UserID
		state.Bots[identity.UserID] = agent
		logger.Info("processBots: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, i)
		added++
	}
	return added
}

// freeIdentity picks a pooled bot not already seated, starting at index.
func (ms *MatchState) freeIdentity(index int) bot.BotIdentity {
	first := bot.GetBotIdentity(index)
	for step := 0; step < 2*domain.NumSeats; step++ {
		identity := bot.GetBotIdentity(index + step)
		if ms.seatOf(identity.UserID) == domain.NoSeat {
			return identity
		}
	}
	return first
}

// nextBotSeat returns the first bot-controlled seat with a decision pending.
func (ms *MatchState) nextBotSeat() (int, *bot.Agent) {
	for seat := range ms.Seats {
		a := ms.agentFor(seat)
		if a != nil && ms.botTurn(seat) {
			return seat, a
		}
	}
	return domain.NoSeat, nil
}

func (ms *MatchState) botTurn(seat int) bool {
	g := ms.Game
	dealer := seat == g.DealerSeat
	switch g.Phase {
	case domain.PhaseSetupDeal, domain.PhaseCutterPick, domain.PhaseDealerDiscard, domain.PhaseHandScoring:
		return dealer
	case domain.PhaseReshuffleWindow:
		if dealer {
			return bot.WindowOpen(g, domain.SideDealer)
		}
		if ms.Vote == nil || !bot.WindowOpen(g, domain.SideOthers) || ms.Vote.Voted(seat) {
			return false
		}
		// Bots vote after the humans on their side.
		for other := range ms.Seats {
			if other != seat && other != g.DealerSeat && ms.agentFor(other) == nil && !ms.Vote.Voted(other) {
				return false
			}
		}
		return true
	case domain.PhaseExchangeGive, domain.PhaseExchangeReturn, domain.PhaseTrickPlay:
		return g.CurrentPlayer == seat
	}
	return false
}

// botDelay is the think time for the current phase plus a little jitter. Outside
// the scoring pause it is kept within the configured bot delay range.
func (ms *MatchState) botDelay() time.Duration {
	cfg := ms.Config
	if ms.Game.Phase == domain.PhaseHandScoring {
		return cfg.NextHandDelay()
	}
	d := cfg.DelayFor(ms.Game.Phase) + time.Duration(ms.rng.Int63n(int64(botJitter)))
	lo := time.Duration(cfg.BotMinDelay) * time.Second
	hi := time.Duration(cfg.BotMaxDelay) * time.Second
	if hi > 0 && d > hi {
		d = hi
	}
	if d < lo {
		d = lo
	}
	return d
}
