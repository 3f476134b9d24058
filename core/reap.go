package core

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReapReport summarizes one deletion run.
type ReapReport struct {
	RunID     string
	StartedAt time.Time
	Skipped   bool // true when the feature was disabled
	Deleted   []string
	Failed    map[string]error
}

// Reap runs one deletion pass: load settings once, select inactive users, delete each.
//
// Settings are read a single time so a concurrent admin save cannot change the rules
// mid-run. A settings or selection failure aborts the run with an error (the scheduler
// retries on the next tick); a per-user deletion failure is recorded in the report and
// processing continues.
func (s *Service) Reap(ctx context.Context, now time.Time) (*ReapReport, error) {
	set, err := s.CurrentSettings(ctx)
	if err != nil {
		return nil, err
	}

	report := &ReapReport{
		RunID:     uuid.NewString(),
		StartedAt: now,
		Failed:    map[string]error{},
	}
	if !set.Enabled {
		report.Skipped = true
		s.logf("run %s: deletion disabled, nothing to do", report.RunID)
		return report, nil
	}
	if s.deleter == nil {
		return nil, fmt.Errorf("user deleter not configured")
	}

	ids, err := s.SelectInactiveUsers(ctx, now, set)
	if err != nil {
		return nil, err
	}

	for _, userID := range ids {
		if err := s.deleter.DeleteUserCascade(ctx, userID); err != nil {
			report.Failed[userID] = err
			s.logf("run %s: delete %s: %v", report.RunID, userID, err)
			continue
		}
		report.Deleted = append(report.Deleted, userID)
	}

	s.logf("run %s: %d inactive, %d deleted, %d failed (threshold %dd, roles %v)",
		report.RunID, len(ids), len(report.Deleted), len(report.Failed),
		set.ThresholdDays, set.EligibleRoles)
	return report, nil
}
