package core

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"
)

const secondsPerDay = 86400

// SelectInactiveUsers returns the IDs of users eligible for deletion under the given
// settings: last login at or before now − ThresholdDays, and at least one role in
// EligibleRoles. Users with no login record are never candidates.
//
// The result is deduplicated and sorted, so identical inputs over identical stores
// yield identical slices.
func (s *Service) SelectInactiveUsers(ctx context.Context, now time.Time, set Settings) ([]string, error) {
	if len(set.EligibleRoles) == 0 {
		return nil, nil
	}
	if s.logins == nil || s.dir == nil {
		return nil, fmt.Errorf("login store and directory required")
	}

	// Cutoff arithmetic stays in unix seconds: a day count over ~106751 would
	// overflow a Duration multiply and flip the cutoff into the future, selecting
	// every tracked user. Thresholds too large even for second arithmetic predate
	// any representable login, so nobody qualifies.
	days := int64(set.ThresholdDays)
	if days > math.MaxInt64/secondsPerDay {
		return nil, nil
	}
	cutoff := time.Unix(now.Unix()-days*secondsPerDay, int64(now.Nanosecond()))
	candidates, err := s.logins.ListActiveBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list stale logins: %w", err)
	}

	eligible := make(map[string]bool, len(set.EligibleRoles))
	for _, slug := range set.EligibleRoles {
		eligible[slug] = true
	}

	seen := make(map[string]bool, len(candidates))
	var out []string
	for _, userID := range candidates {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		userRoles, err := s.dir.ListRolesByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("roles for %s: %w", userID, err)
		}
		for _, slug := range userRoles {
			if eligible[slug] {
				out = append(out, userID)
				break
			}
		}
	}
	sort.Strings(out)
	return out, nil
}
