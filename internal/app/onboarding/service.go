package onboarding

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"threefiveeight/internal/ports"
)

// Result captures non-fatal onboarding outcomes.
type Result struct {
	// DisplayName is the generated name given to the account.
	DisplayName string
	// ProfileUpdateErr is set when the profile update failed but onboarding continued.
	ProfileUpdateErr error
	// StatsCreated is false when the user already had a stats record.
	StatsCreated bool
}

// Service handles post-auth onboarding for new users.
type Service struct {
	accounts ports.AccountPort
	stats    ports.StatsPort
	rng      *rand.Rand
}

// NewService constructs an onboarding service with required ports.
// accounts/stats must be non-nil; rng may be nil to use a time-seeded default.
func NewService(accounts ports.AccountPort, stats ports.StatsPort, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		accounts: accounts,
		stats:    stats,
		rng:      rng,
	}
}

// OnboardNewUser names a newly created account and opens its stats record.
// Returns an error only when the stats record cannot be created.
func (s *Service) OnboardNewUser(ctx context.Context, userID string) (Result, error) {
	if s.accounts == nil || s.stats == nil {
		return Result{}, fmt.Errorf("onboarding service not configured")
	}

	result := Result{DisplayName: s.generateFriendlyName()}
	metadata := map[string]interface{}{"is_bot": false}
	if err := s.accounts.UpdateProfile(ctx, userID, "", result.DisplayName, metadata); err != nil {
		result.ProfileUpdateErr = err
	}

	created, err := s.stats.InitStats(ctx, userID)
	if err != nil {
		return result, fmt.Errorf("failed to create player stats: %w", err)
	}
	result.StatsCreated = created
	return result, nil
}

func (s *Service) generateFriendlyName() string {
	adjectives := []string{"Lucky", "Bold", "Sharp", "Quiet", "Quick", "Steady", "Sly", "Grand", "Keen", "Wry"}
	nouns := []string{"Cutter", "Dealer", "Trump", "Ace", "Knave", "Captain", "Sergeant", "Shuffler", "Joker", "Baron"}

	adj := adjectives[s.rng.Intn(len(adjectives))]
	noun := nouns[s.rng.Intn(len(nouns))]
	num := s.rng.Intn(900) + 100

	return fmt.Sprintf("%s%s%d", adj, noun, num)
}
