package onboarding

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"threefiveeight/internal/ports"
)

type fakeAccountPort struct {
	updateErr   error
	displayName string
	metadata    map[string]interface{}
}

func (f *fakeAccountPort) UpdateProfile(ctx context.Context, userID, username, displayName string, metadata map[string]interface{}) error {
	f.displayName = displayName
	f.metadata = metadata
	return f.updateErr
}

type fakeStatsPort struct {
	initErr error
	exists  map[string]bool
	inits   []string
}

func (f *fakeStatsPort) InitStats(ctx context.Context, userID string) (bool, error) {
	f.inits = append(f.inits, userID)
	if f.initErr != nil {
		return false, f.initErr
	}
	if f.exists[userID] {
		return false, nil
	}
	return true, nil
}

func (f *fakeStatsPort) GetStats(ctx context.Context, userID string) (ports.PlayerStats, error) {
	return ports.PlayerStats{}, nil
}

func (f *fakeStatsPort) RecordGame(ctx context.Context, outcomes []ports.GameOutcome) error {
	return nil
}

func TestOnboardNewUser_CreatesStats(t *testing.T) {
	accounts := &fakeAccountPort{}
	stats := &fakeStatsPort{}
	service := NewService(accounts, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr != nil {
		t.Fatalf("Expected no profile update error, got %v", result.ProfileUpdateErr)
	}
	if !result.StatsCreated {
		t.Fatal("Expected stats record to be created")
	}
	if len(stats.inits) != 1 || stats.inits[0] != "user-1" {
		t.Fatalf("Expected one InitStats call for user-1, got %v", stats.inits)
	}
	if accounts.displayName != result.DisplayName {
		t.Fatalf("Profile display name = %q, want %q", accounts.displayName, result.DisplayName)
	}
	if !regexp.MustCompile(`^[A-Z][a-z]+[A-Z][a-z]+\d{3}$`).MatchString(result.DisplayName) {
		t.Fatalf("Unexpected display name %q", result.DisplayName)
	}
	if accounts.metadata["is_bot"] != false {
		t.Fatalf("Expected is_bot=false metadata, got %v", accounts.metadata)
	}
}

func TestOnboardNewUser_AccountUpdateFailureStillCreatesStats(t *testing.T) {
	stats := &fakeStatsPort{}
	service := NewService(&fakeAccountPort{updateErr: errors.New("update failed")}, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.ProfileUpdateErr == nil {
		t.Fatal("Expected profile update error to be captured")
	}
	if !result.StatsCreated {
		t.Fatal("Expected stats record to be created")
	}
}

func TestOnboardNewUser_StatsFailureReturnsError(t *testing.T) {
	service := NewService(&fakeAccountPort{}, &fakeStatsPort{initErr: errors.New("storage failed")}, rand.New(rand.NewSource(1)))

	if _, err := service.OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error when stats creation fails")
	}
}

func TestOnboardNewUser_StatsAlreadyExist(t *testing.T) {
	stats := &fakeStatsPort{exists: map[string]bool{"user-1": true}}
	service := NewService(&fakeAccountPort{}, stats, rand.New(rand.NewSource(1)))

	result, err := service.OnboardNewUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("OnboardNewUser returned error: %v", err)
	}
	if result.StatsCreated {
		t.Fatal("Expected existing stats to be kept")
	}
}

func TestOnboardNewUser_NotConfigured(t *testing.T) {
	if _, err := NewService(nil, nil, nil).OnboardNewUser(context.Background(), "user-1"); err == nil {
		t.Fatal("Expected error for a service without ports")
	}
}
