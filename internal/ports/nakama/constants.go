package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"
	// RpcPlayerStats returns the caller's stats record.
	RpcPlayerStats = "player_stats"

	// MatchName358 is the authoritative match handler name registered with Nakama.
	MatchName358 = "threefiveeight_match"

	// LeaderboardWins counts games won per user.
	LeaderboardWins = "358_wins"
)

// Match label keys and values.
const (
	MatchLabelKey_Game      = "game"
	MatchLabelKey_OpenSeats = "open"
	MatchLabelKey_Phase     = "phase"

	LabelGame    = "358"
	PhaseLobby   = "lobby"
	PhasePlaying = "playing"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame     int64 = 1
	OpAction        int64 = 2 // JSON action envelope
	OpReshuffleVote int64 = 3 // side-35 vote, {"accept":bool}

	// Server -> Client events
	OpSeats      int64 = 101
	OpStateView  int64 = 102 // send privately
	OpGameEvent  int64 = 103
	OpError      int64 = 104
	OpVoteStatus int64 = 105
)

// Error codes carried by OpError.
const (
	ErrCodeBadRequest = 400
	ErrCodeForbidden  = 403
	ErrCodeRejected   = 409
)

// tickRate is the number of MatchLoop calls per second.
const tickRate = 10

// botRetryMs is how long a bot waits after a failed move before trying again.
const botRetryMs = 2000
