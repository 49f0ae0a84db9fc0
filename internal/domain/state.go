package domain

// Phase represents the lifecycle stage of a 3-5-8 hand.
type Phase string

const (
	// PhaseSetupDeal waits for the dealer to shuffle and deal.
	PhaseSetupDeal Phase = "SETUP_DEAL"
	// PhaseReshuffleWindow lets each side accept or decline one re-deal.
	PhaseReshuffleWindow Phase = "RESHUFFLE_WINDOW"
	// PhaseExchangeGive is where seats over target in the previous hand give cards.
	PhaseExchangeGive Phase = "EXCHANGE_GIVE"
	// PhaseExchangeReturn is where receivers return the mandated card.
	PhaseExchangeReturn Phase = "EXCHANGE_RETURN"
	// PhaseCutterPick is where the dealer names the trump suit.
	PhaseCutterPick Phase = "CUTTER_PICK"
	// PhaseDealerDiscard is where the dealer discards 4 cards and takes the kitty.
	PhaseDealerDiscard Phase = "DEALER_DISCARD"
	// PhaseTrickPlay covers the 16 tricks of a hand.
	PhaseTrickPlay Phase = "TRICK_PLAY"
	// PhaseHandScoring waits for the next hand to be started.
	PhaseHandScoring Phase = "HAND_SCORING"
	// PhaseGameOver is terminal.
	PhaseGameOver Phase = "GAME_OVER"
)

// Mode distinguishes local hot-seat games from hosted ones.
type Mode string

const (
	ModeLocal  Mode = "local"
	ModeOnline Mode = "online"
)

// ReshuffleSide is the side of the table a seat votes with.
type ReshuffleSide string

const (
	// SideDealer is the dealer holding target 8.
	SideDealer ReshuffleSide = "8"
	// SideOthers is the two non-dealer seats holding targets 3 and 5.
	SideOthers ReshuffleSide = "35"
)

// ExchangeSubPhase tracks which half of the exchange is running.
type ExchangeSubPhase string

const (
	SubPhaseGiving    ExchangeSubPhase = "giving"
	SubPhaseReturning ExchangeSubPhase = "returning"
)

// NoSeat is the current-player sentinel when nobody acts.
const NoSeat = -1

// Player is a participant with a fixed seat.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Seat int    `json:"seat"`
}

// PlayedCard is one card placed on a trick.
type PlayedCard struct {
	Seat int  `json:"seat"`
	Card Card `json:"card"`
}

// Trick is the trick in progress.
type Trick struct {
	Leader   int          `json:"leader"`
	LeadSuit *Suit        `json:"lead_suit,omitempty"`
	Cards    []PlayedCard `json:"cards"`
}

// TrickResult is a completed trick.
type TrickResult struct {
	Number   int          `json:"number"`
	Cards    []PlayedCard `json:"cards"`
	LeadSuit Suit         `json:"lead_suit"`
	Winner   int          `json:"winner"`
}

// ExchangeGiving schedules Count cards from a seat over target to one under target.
type ExchangeGiving struct {
	FromSeat int `json:"from_seat"`
	ToSeat   int `json:"to_seat"`
	Count    int `json:"count"`
}

// ExchangeTransfer records one card moving between seats during the exchange.
type ExchangeTransfer struct {
	FromSeat int  `json:"from_seat"`
	ToSeat   int  `json:"to_seat"`
	Card     Card `json:"card"`
}

// ExchangeInfo is the bookkeeping of the exchange for the current hand.
type ExchangeInfo struct {
	Givings  []ExchangeGiving   `json:"givings"`
	Given    []ExchangeTransfer `json:"given"`
	Returned []ExchangeTransfer `json:"returned"`
	GiverIdx int                `json:"giver_idx"`
	SubPhase ExchangeSubPhase   `json:"sub_phase"`
}

// HandRecord summarizes a completed hand.
type HandRecord struct {
	HandNumber  int           `json:"hand_number"`
	DealerSeat  int           `json:"dealer_seat"`
	Trump       Suit          `json:"trump"`
	TricksTaken [NumSeats]int `json:"tricks_taken"`
	Targets     [NumSeats]int `json:"targets"`
	Deltas      [NumSeats]int `json:"deltas"`
	Tricks      []TrickResult `json:"tricks"`
}

// GameState is the authoritative state of one game. It is treated as immutable:
// transitions produce a new value via Clone.
type GameState struct {
	GameID        string           `json:"game_id"`
	Mode          Mode             `json:"mode"`
	VictoryTarget int              `json:"victory_target"`
	Players       [NumSeats]Player `json:"players"`

	HandNumber int   `json:"hand_number"`
	DealerSeat int   `json:"dealer_seat"`
	Seed       int64 `json:"seed,omitempty"`
	DealCount  int   `json:"deal_count"`

	Deck                  []Card           `json:"deck"`
	Kitty                 []Card           `json:"kitty"`
	Hands                 [NumSeats][]Card `json:"hands"`
	DealerDiscarded       []Card           `json:"dealer_discarded"`
	DealerReceivedKitty   []Card           `json:"dealer_received_kitty"`
	DealerHiddenReturns   []Card           `json:"dealer_hidden_returns"`
	DealerPendingReceived []Card           `json:"dealer_pending_received"`

	Trump    *Suit         `json:"trump,omitempty"`
	Exchange *ExchangeInfo `json:"exchange,omitempty"`

	CurrentTrick *Trick        `json:"current_trick,omitempty"`
	TrickNumber  int           `json:"trick_number"`
	TrickHistory []TrickResult `json:"trick_history"`
	TricksTaken  [NumSeats]int `json:"tricks_taken"`

	ScoreTotal    [NumSeats]int `json:"score_total"`
	LastHandDelta [NumSeats]int `json:"last_hand_delta"`
	Targets       [NumSeats]int `json:"targets"`

	Phase         Phase `json:"phase"`
	CurrentPlayer int   `json:"current_player"`

	Winner       *int   `json:"winner,omitempty"`
	WinnerReason string `json:"winner_reason,omitempty"`

	HandHistory []HandRecord `json:"hand_history"`

	ReshuffleUsedBy8     bool `json:"reshuffle_used_by_8"`
	ReshuffleUsedBy35    bool `json:"reshuffle_used_by_35"`
	ReshuffleWindowFor8  bool `json:"reshuffle_window_for_8"`
	ReshuffleWindowFor35 bool `json:"reshuffle_window_for_35"`
}

// LeadSuit returns the lead suit of the trick in progress, or nil when leading.
func (g *GameState) LeadSuit() *Suit {
	if g.CurrentTrick == nil {
		return nil
	}
	return g.CurrentTrick.LeadSuit
}

// TrickCards returns the cards on the trick in progress.
func (g *GameState) TrickCards() []PlayedCard {
	if g.CurrentTrick == nil {
		return nil
	}
	return g.CurrentTrick.Cards
}

// Clone returns a deep copy of the state.
func (g *GameState) Clone() *GameState {
	out := *g
	out.Deck = cloneCards(g.Deck)
	out.Kitty = cloneCards(g.Kitty)
	for i := range g.Hands {
		out.Hands[i] = cloneCards(g.Hands[i])
	}
	out.DealerDiscarded = cloneCards(g.DealerDiscarded)
	out.DealerReceivedKitty = cloneCards(g.DealerReceivedKitty)
	out.DealerHiddenReturns = cloneCards(g.DealerHiddenReturns)
	out.DealerPendingReceived = cloneCards(g.DealerPendingReceived)
	if g.Trump != nil {
		t := *g.Trump
		out.Trump = &t
	}
	if g.Exchange != nil {
		ex := *g.Exchange
		ex.Givings = append([]ExchangeGiving(nil), g.Exchange.Givings...)
		ex.Given = append([]ExchangeTransfer(nil), g.Exchange.Given...)
		ex.Returned = append([]ExchangeTransfer(nil), g.Exchange.Returned...)
		out.Exchange = &ex
	}
	if g.CurrentTrick != nil {
		tr := *g.CurrentTrick
		if g.CurrentTrick.LeadSuit != nil {
			s := *g.CurrentTrick.LeadSuit
			tr.LeadSuit = &s
		}
		tr.Cards = append([]PlayedCard(nil), g.CurrentTrick.Cards...)
		out.CurrentTrick = &tr
	}
	out.TrickHistory = cloneTricks(g.TrickHistory)
	if g.Winner != nil {
		w := *g.Winner
		out.Winner = &w
	}
	if g.HandHistory != nil {
		out.HandHistory = make([]HandRecord, len(g.HandHistory))
		for i, h := range g.HandHistory {
			h.Tricks = cloneTricks(h.Tricks)
			out.HandHistory[i] = h
		}
	}
	return &out
}

func cloneCards(cards []Card) []Card {
	if cards == nil {
		return nil
	}
	out := make([]Card, len(cards))
	copy(out, cards)
	return out
}

func cloneTricks(tricks []TrickResult) []TrickResult {
	if tricks == nil {
		return nil
	}
	out := make([]TrickResult, len(tricks))
	for i, t := range tricks {
		t.Cards = append([]PlayedCard(nil), t.Cards...)
		out[i] = t
	}
	return out
}
