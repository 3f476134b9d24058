package core

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// LoginStore persists one last-login timestamp per user.
// Implementations treat a missing record as (found=false, err=nil).
type LoginStore interface {
	// Touch records at as the user's last login, creating or replacing the record.
	Touch(ctx context.Context, userID string, at time.Time) error
	// LastLogin returns the recorded timestamp for the user, if any.
	LastLogin(ctx context.Context, userID string) (time.Time, bool, error)
	// ListActiveBefore returns the IDs of all users whose recorded last login is at
	// or before cutoff (inclusive boundary).
	ListActiveBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	// SeedMissing writes at for every given user that has no record yet, leaving
	// existing records untouched.
	SeedMissing(ctx context.Context, userIDs []string, at time.Time) error
	// Clear removes all login records.
	Clear(ctx context.Context) error
}

// TrackRegistration records the registration moment as the user's first login.
// Store failures propagate to the caller.
func (s *Service) TrackRegistration(ctx context.Context, userID string, now time.Time) error {
	if s.logins == nil {
		return fmt.Errorf("login store not configured")
	}
	if err := s.logins.Touch(ctx, userID, now); err != nil {
		return fmt.Errorf("track registration for %s: %w", userID, err)
	}
	return nil
}

// TrackLogin records a successful login for the named user.
//
// It is fired from inside the host's authentication request and must never break that
// request: lookup and store failures are logged and swallowed.
func (s *Service) TrackLogin(ctx context.Context, username string, now time.Time) {
	if s.dir == nil || s.logins == nil {
		return
	}
	userID, err := s.dir.LookupUserID(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.logf("login tracking: no user for username %q", username)
		} else {
			s.logf("login tracking: lookup %q: %v", username, err)
		}
		return
	}
	if err := s.logins.Touch(ctx, userID, now); err != nil {
		s.logf("login tracking: touch %s: %v", userID, err)
	}
}
