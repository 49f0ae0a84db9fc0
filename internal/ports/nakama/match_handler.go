package nakama

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"threefiveeight/internal/app"
	"threefiveeight/internal/bot"
	"threefiveeight/internal/config"
	"threefiveeight/internal/domain"
	"threefiveeight/internal/ports"
)

var (
	errVoteClosed = fmt.Errorf("%w: side-35 vote is not open", app.ErrWrongPhase)
	errNotVoter   = fmt.Errorf("%w: seat cannot vote on side 35", app.ErrWrongActor)
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats                [domain.NumSeats]string     `json:"seats"`      // User IDs, empty string means seat is empty
	OwnerSeat            int                         `json:"owner_seat"` // Seat index of the match owner
	Tick                 int64                       `json:"tick"`
	Presences            map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	App                  *app.Service                `json:"-"`
	Game                 *domain.GameState           `json:"-"` // Current game (nil if in lobby)
	Config               *config.GameConfig          `json:"-"`
	BotLevel             bot.BotLevel                `json:"bot_level"`
	BotWaitUntil         int64                       `json:"bot_wait_until"`          // Tick when the next bot should act
	LastSinglePlayerTick int64                       `json:"last_single_player_tick"` // Tick when a single player started waiting
	Bots                 map[string]*bot.Agent       `json:"-"`                       // Agents of bot seats
	StandIns             map[int]*bot.Agent          `json:"-"`                       // Agents playing for disconnected humans
	Vote                 *app.SideVote               `json:"-"`
	VoteDeal             int                         `json:"vote_deal"` // DealCount the vote belongs to
	Results              ports.ResultsPort           `json:"-"`
	Stats                ports.StatsPort             `json:"-"`

	rng *rand.Rand
}

func newMatchState(cfg *config.GameConfig, rng *rand.Rand) *MatchState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	level, err := bot.ParseLevel(cfg.BotLevel)
	if err != nil {
		level = bot.BotLevelPro
	}
	return &MatchState{
		OwnerSeat: -1,
		Presences: make(map[string]runtime.Presence),
		App:       app.NewService(rng),
		Config:    cfg,
		BotLevel:  level,
		Bots:      make(map[string]*bot.Agent),
		StandIns:  make(map[int]*bot.Agent),
		rng:       rng,
	}
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// connectedHumans counts seated humans with a live presence.
func (ms *MatchState) connectedHumans() int {
	count := 0
	for _, seat := range ms.Seats {
		if _, ok := ms.Presences[seat]; ok && seat != "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return domain.NoSeat
}

// agentFor returns the agent controlling seat, or nil for a connected human.
func (ms *MatchState) agentFor(seat int) *bot.Agent {
	userID := ms.Seats[seat]
	if a, ok := ms.Bots[userID]; ok {
		return a
	}
	return ms.StandIns[seat]
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}

	cfg := *config.GetGameConfig()
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok {
		if err := cfg.ApplyEnv(env); err != nil {
			logger.Warn("MatchInit: Ignoring runtime env overrides: %v", err)
		}
	}

	state := newMatchState(&cfg, nil)
	state.Results = NewNakamaLeaderboardAdapter(nk, LeaderboardWins)
	state.Stats = NewNakamaStatsAdapter(nk)

	label, err := encodeLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Seated players may always reconnect.
	if matchState.seatOf(presence.GetUserId()) != domain.NoSeat {
		return state, true, ""
	}
	if matchState.Game != nil {
		return state, false, "Game in progress"
	}
	if matchState.GetOpenSeatsCount() <= 0 {
		for _, seat := range matchState.Seats {
			if isBotUserId(seat) {
				return state, true, ""
			}
		}
		return state, false, "Match full"
	}
	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		matchState.Presences[userID] = p

		if seat := matchState.seatOf(userID); seat != domain.NoSeat {
			if _, ok := matchState.StandIns[seat]; ok {
				logger.Info("MatchJoin: User %s reconnected to seat %d, stand-in removed.", userID, seat)
				delete(matchState.StandIns, seat)
			}
			continue
		}

		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = userID
				assigned = true
				break
			}
		}
		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, userID, i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = userID
					assigned = true
					break
				}
			}
		}
		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", userID)
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSeats(matchState, dispatcher, logger)
	if matchState.Game != nil {
		mh.broadcastViews(matchState, dispatcher, logger)
		mh.broadcastVote(matchState, dispatcher, logger)
	}
	return matchState
}

// MatchLeave is called when one or more players leave the match. In the
// lobby the seat is freed; during a game a bot stands in until the player
// reconnects.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		userID := p.GetUserId()
		delete(matchState.Presences, userID)

		seat := matchState.seatOf(userID)
		if seat == domain.NoSeat {
			continue
		}
		if matchState.Game == nil {
			matchState.Seats[seat] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", userID, seat)
			continue
		}
		if matchState.Config.BotsEnabled {
			agent, err := bot.NewAgent(userID, mh.displayName(matchState, userID), matchState.BotLevel)
			if err != nil {
				logger.Error("MatchLeave: Failed to create stand-in for seat %d: %v", seat, err)
				continue
			}
			matchState.StandIns[seat] = agent
			logger.Info("MatchLeave: User %s left during a game, bot stands in for seat %d.", userID, seat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) || matchState.connectedHumans() == 0 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	if matchState.Game == nil && !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		logger.Debug("MatchLeave: Owner set to human seat %d.", matchState.OwnerSeat)
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSeats(matchState, dispatcher, logger)
	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(ctx, matchState, dispatcher, logger, msg)
		case OpAction:
			mh.handleAction(ctx, matchState, dispatcher, logger, msg)
		case OpReshuffleVote:
			mh.handleVote(ctx, matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	mh.processBots(ctx, matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) handleStartGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d)", senderID, senderSeat, state.OwnerSeat)

	if state.Game != nil {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, "", "game already running")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeForbidden, "", "only the owner can start the game")
		return
	}
	if humans := state.GetHumanPlayerCount(); humans < app.MinHumansToStartGame {
		logger.Warn("StartGame: Cannot start with %d humans. Need at least %d.", humans, app.MinHumansToStartGame)
		return
	}
	if state.GetOpenSeatsCount() > 0 {
		if !state.Config.BotsEnabled {
			mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, "", "3 players are required")
			return
		}
		mh.fillWithBots(state, logger)
	}

	if err := mh.startGame(state); err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, "", err.Error())
		return
	}

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastSeats(state, dispatcher, logger)
	mh.broadcastViews(state, dispatcher, logger)
	logger.Info("StartGame: Game %s started, dealer seat %d.", state.Game.GameID, state.Game.DealerSeat)
}

func (mh *matchHandler) startGame(state *MatchState) error {
	players := make([]app.PlayerInfo, domain.NumSeats)
	for i, userID := range state.Seats {
		players[i] = app.PlayerInfo{ID: userID, Name: mh.displayName(state, userID)}
	}
	game, err := state.App.CreateGame(app.GameOptions{
		GameID:        uuid.NewString(),
		Mode:          domain.ModeOnline,
		Players:       players,
		VictoryTarget: state.Config.VictoryTarget,
	})
	if err != nil {
		return err
	}
	state.Game = game
	state.Vote = nil
	state.BotWaitUntil = 0
	return nil
}

func (mh *matchHandler) handleAction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Game == nil {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, "", "game not started")
		return
	}
	action, err := decodeEnvelope(msg.GetData())
	if err != nil {
		logger.Warn("handleAction: Bad action from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, errorReason(err), err.Error())
		return
	}
	if seat := actingSeat(state.Game, action); seat != senderSeat {
		reason := "not your action"
		if seat == domain.NoSeat {
			reason = "side 35 decides by vote"
		}
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeForbidden, "wrong_actor", reason)
		return
	}

	if err := mh.applyAction(ctx, state, dispatcher, logger, action); err != nil {
		logger.Warn("handleAction: User %s (seat %d) %s rejected: %v", senderID, senderSeat, action.Kind(), err)
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, errorReason(err), err.Error())
	}
}

func (mh *matchHandler) handleVote(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	var req VoteRequest
	if err := json.Unmarshal(msg.GetData(), &req); err != nil {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeBadRequest, "", "invalid vote payload")
		return
	}
	if err := mh.castVote(ctx, state, dispatcher, logger, state.seatOf(senderID), req.Accept); err != nil {
		mh.sendError(state, dispatcher, logger, senderID, ErrCodeRejected, errorReason(err), err.Error())
	}
}

// castVote records a side-35 vote and applies the outcome once settled.
func (mh *matchHandler) castVote(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat int, accept bool) error {
	g := state.Game
	if g == nil || g.Phase != domain.PhaseReshuffleWindow || state.Vote == nil {
		return errVoteClosed
	}
	if !bot.WindowOpen(g, domain.SideOthers) {
		return errVoteClosed
	}
	if state.Vote.Voted(seat) || !state.Vote.Cast(seat, accept) {
		return errNotVoter
	}
	logger.Debug("castVote: seat %d voted accept=%t", seat, accept)

	outcome, settled := state.Vote.Outcome()
	mh.broadcastVote(state, dispatcher, logger)
	if !settled {
		return nil
	}
	return mh.applyAction(ctx, state, dispatcher, logger, outcome)
}

// applyAction runs the engine and publishes the result.
func (mh *matchHandler) applyAction(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, action app.Action) error {
	next, events, err := state.App.Apply(state.Game, action)
	if err != nil {
		return err
	}
	state.Game = next
	state.BotWaitUntil = 0
	state.syncVote()

	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	mh.broadcastViews(state, dispatcher, logger)
	if state.Game.Phase == domain.PhaseReshuffleWindow {
		mh.broadcastVote(state, dispatcher, logger)
	}
	if state.Game.Phase == domain.PhaseGameOver {
		mh.finishGame(ctx, state, dispatcher, logger)
	}
	return nil
}

// syncVote opens a fresh side-35 vote for every deal.
func (ms *MatchState) syncVote() {
	g := ms.Game
	if g == nil || g.Phase != domain.PhaseReshuffleWindow {
		ms.Vote = nil
		return
	}
	if ms.Vote == nil || ms.VoteDeal != g.DealCount {
		ms.Vote = app.NewSideVote(g.DealerSeat)
		ms.VoteDeal = g.DealCount
	}
}

// finishGame stores the results and returns the match to the lobby.
func (mh *matchHandler) finishGame(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	g := state.Game
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	winner := state.Seats[*g.Winner]

	var outcomes []ports.GameOutcome
	for seat, userID := range state.Seats {
		if userID == "" || isBotUserId(userID) {
			continue
		}
		outcomes = append(outcomes, ports.GameOutcome{
			UserID: userID,
			Won:    seat == *g.Winner,
			Score:  g.ScoreTotal[seat],
			Hands:  len(g.HandHistory),
		})
	}
	if state.Stats != nil && len(outcomes) > 0 {
		if err := state.Stats.RecordGame(ctx, outcomes); err != nil {
			logger.Error("finishGame: Failed to record stats: %v", err)
		}
	}
	if state.Results != nil && winner != "" && !isBotUserId(winner) {
		metadata := map[string]interface{}{
			"match_id": matchID,
			"game_id":  g.GameID,
			"reason":   g.WinnerReason,
		}
		if err := state.Results.RecordWin(ctx, winner, mh.displayName(state, winner), metadata); err != nil {
			logger.Error("finishGame: Failed to record win: %v", err)
		}
	}

	logger.Info("finishGame: Game %s won by seat %d (%s) after %d hands.", g.GameID, *g.Winner, g.WinnerReason, len(g.HandHistory))

	// Seats of players who left are freed with the game.
	for seat, userID := range state.Seats {
		if _, connected := state.Presences[userID]; userID != "" && !isBotUserId(userID) && !connected {
			state.Seats[seat] = ""
		}
	}
	state.Game = nil
	state.Vote = nil
	state.StandIns = make(map[int]*bot.Agent)
	if !isHumanSeat(state.Seats[:], state.OwnerSeat) {
		state.OwnerSeat = findFirstHumanSeat(state.Seats[:])
	}
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastSeats(state, dispatcher, logger)
}

func (mh *matchHandler) displayName(state *MatchState, userID string) string {
	if p, ok := state.Presences[userID]; ok && p.GetUsername() != "" {
		return p.GetUsername()
	}
	if name := bot.GetBotDisplayName(userID); name != "" {
		return name
	}
	if a, ok := state.Bots[userID]; ok {
		return a.Name
	}
	return userID
}

func (mh *matchHandler) broadcastSeats(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := SeatsSnapshot{OwnerSeat: state.OwnerSeat, Phase: labelPhase(state), Tick: state.Tick}
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}
		_, connected := state.Presences[userID]
		snapshot.Seats = append(snapshot.Seats, SeatInfo{
			Seat:        i,
			UserID:      userID,
			DisplayName: mh.displayName(state, userID),
			IsBot:       state.Bots[userID] != nil,
			IsOwner:     i == state.OwnerSeat,
			Connected:   connected,
		})
	}
	mh.send(dispatcher, logger, OpSeats, snapshot, nil)
}

// broadcastViews sends every connected seat its own redacted state.
func (mh *matchHandler) broadcastViews(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		return
	}
	for seat, userID := range state.Seats {
		p, ok := state.Presences[userID]
		if !ok {
			continue
		}
		view := StateViewMessage{Seat: seat, State: app.PlayerView(state.Game, seat)}
		mh.send(dispatcher, logger, OpStateView, view, []runtime.Presence{p})
	}
}

// broadcastEvent dispatches an engine event to its recipients, or to everyone
// when it names none.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}
		// Targeted events never fall back to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}
	mh.send(dispatcher, logger, OpGameEvent, EventMessage{Kind: ev.Kind, Payload: ev.Payload}, recipients)
}

func (mh *matchHandler) broadcastVote(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Vote == nil {
		return
	}
	status := VoteStatus{Votes: state.Vote.Votes()}
	if outcome, settled := state.Vote.Outcome(); settled {
		status.Settled = true
		status.Accepted = outcome.Kind() == app.ActionReshuffleAccept
	}
	mh.send(dispatcher, logger, OpVoteStatus, status, nil)
}

// sendError sends an ErrorMessage to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, reason, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}
	mh.send(dispatcher, logger, OpError, ErrorMessage{Code: code, Reason: reason, Message: message}, []runtime.Presence{presence})
}

func (mh *matchHandler) send(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload any, presences []runtime.Presence) {
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal message for op %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, presences, nil, true); err != nil {
		logger.Error("Failed to send op %d: %v", opCode, err)
	}
}

func labelPhase(state *MatchState) string {
	if state.Game != nil {
		return PhasePlaying
	}
	return PhaseLobby
}

// encodeLabel renders the match label, e.g. {"game":"358","open":2,"phase":"lobby"}.
func encodeLabel(state *MatchState) (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		MatchLabelKey_Game:      LabelGame,
		MatchLabelKey_OpenSeats: state.GetOpenSeatsCount(),
		MatchLabelKey_Phase:     labelPhase(state),
	})
	if err != nil {
		return "", err
	}
	raw, err := protojson.Marshal(label)
	if err != nil {
		return "", err
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", err
	}
	return compact.String(), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := encodeLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated, grace %d seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
