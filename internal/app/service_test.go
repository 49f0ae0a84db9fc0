package app

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threefiveeight/internal/domain"
)

func players() []PlayerInfo {
	return []PlayerInfo{{"u1", "One"}, {"u2", "Two"}, {"u3", "Three"}}
}

func TestServiceCreateGameFillsDefaults(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(42)))
	g, err := svc.CreateGame(GameOptions{Players: players()})
	require.NoError(t, err)
	assert.NotEmpty(t, g.GameID)
	assert.NotZero(t, g.Seed)
	assert.Equal(t, g.DealerSeat, g.CurrentPlayer)

	_, err = svc.CreateGame(GameOptions{Players: players()[:2]})
	assert.ErrorIs(t, err, ErrInvalidPlayers)
}

func TestServiceDealEventsArePrivate(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(1)))
	g, err := svc.CreateGame(GameOptions{Players: players()})
	require.NoError(t, err)

	_, evs, err := svc.Apply(g, ShuffleDeal{})
	require.NoError(t, err)

	dealt := 0
	for _, ev := range evs {
		if ev.Kind != EventHandDealt {
			continue
		}
		dealt++
		payload := ev.Payload.(HandDealtPayload)
		require.Len(t, ev.Recipients, 1)
		assert.Equal(t, payload.Seat, ev.Recipients[0])
		assert.Len(t, payload.Hand, domain.HandSize)
	}
	assert.Equal(t, 3, dealt)
}

func TestServicePlayEvents(t *testing.T) {
	svc := NewService(rand.New(rand.NewSource(3)))
	g := skipReshuffle(t, apply(t, newTestGame(t, 0, 3), ShuffleDeal{}))
	g = toTrickPlay(t, g)

	var kinds []EventKind
	for i := 0; i < 3; i++ {
		seat := g.CurrentPlayer
		legal := domain.LegalCards(g.Hands[seat], g.LeadSuit())
		var evs []Event
		var err error
		g, evs, err = svc.Apply(g, PlayCard{Seat: seat, CardID: legal[0].ID})
		require.NoError(t, err)
		for _, ev := range evs {
			kinds = append(kinds, ev.Kind)
		}
	}
	assert.Equal(t, []EventKind{EventCardPlayed, EventCardPlayed, EventCardPlayed, EventTrickCompleted}, kinds)
}

func TestServiceExchangeEventsHideDealerCards(t *testing.T) {
	svc := NewService(nil)
	g := handTwo(t, 0, [3]int{-1, 1, 0})

	_, evs, err := svc.Apply(g, ExchangeGiveCard{FromSeat: 1, CardID: g.Hands[1][0].ID})
	require.NoError(t, err)
	require.Len(t, evs, 2)
	for _, ev := range evs {
		p := ev.Payload.(ExchangeCardPayload)
		if p.Card != nil {
			assert.Equal(t, []int{1}, ev.Recipients)
		} else {
			assert.ElementsMatch(t, []int{0, 2}, ev.Recipients)
		}
	}
}

func TestServiceRejectsWithoutEvents(t *testing.T) {
	svc := NewService(nil)
	g := newTestGame(t, 0, 1)
	next, evs, err := svc.Apply(g, NextHand{})
	assert.ErrorIs(t, err, ErrWrongPhase)
	assert.Nil(t, next)
	assert.Nil(t, evs)
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		kind    ActionKind
		payload string
		want    Action
	}{
		{"deal", ActionShuffleDeal, "", ShuffleDeal{}},
		{"next hand", ActionNextHand, "{}", NextHand{}},
		{"play", ActionPlayCard, `{"seat":2,"card_id":"H-10"}`, PlayCard{Seat: 2, CardID: "H-10"}},
		{"cutter", ActionPickCutter, `{"suit":"D"}`, PickCutter{Suit: domain.Diamonds}},
		{"discard", ActionDealerDiscard, `{"card_ids":["S-2","S-3","H-4","C-5"]}`, DealerDiscard{CardIDs: []string{"S-2", "S-3", "H-4", "C-5"}}},
		{"accept", ActionReshuffleAccept, `{"side":"35"}`, ReshuffleAccept{Side: domain.SideOthers}},
		{"give", ActionExchangeGiveCard, `{"from_seat":1,"card_id":"C-A"}`, ExchangeGiveCard{FromSeat: 1, CardID: "C-A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeAction(tt.kind, json.RawMessage(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			env, err := EncodeAction(got)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, env.Type)
		})
	}

	_, err := DecodeAction("FLY", nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
	_, err = DecodeAction(ActionPlayCard, nil)
	assert.ErrorIs(t, err, ErrUnknownAction)
	_, err = DecodeAction(ActionPlayCard, json.RawMessage(`{"seat":"x"}`))
	assert.Error(t, err)
}

func TestNilActionsRejected(t *testing.T) {
	g := newTestGame(t, 0, 5)
	svc := NewService(nil)
	actions := []Action{
		nil,
		(*PlayCard)(nil),
		(*ExchangeGiveCard)(nil),
		(*ShuffleDeal)(nil),
		(*NextHand)(nil),
	}
	for _, a := range actions {
		next, err := ApplyAction(g, a)
		assert.ErrorIs(t, err, ErrUnknownAction, "%T", a)
		assert.Nil(t, next)

		next, evs, err := svc.Apply(g, a)
		assert.ErrorIs(t, err, ErrUnknownAction, "%T", a)
		assert.Nil(t, next)
		assert.Nil(t, evs)

		_, err = EncodeAction(a)
		assert.ErrorIs(t, err, ErrUnknownAction, "%T", a)
	}

	next, err := ApplyAction(g, &ShuffleDeal{})
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseReshuffleWindow, next.Phase)
}
