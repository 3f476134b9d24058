package riverjobs

import (
	"context"
	"errors"
	"time"

	"github.com/louddog/userreaper/core"
	"github.com/riverqueue/river"
)

type ReapInactiveUsersArgs struct{}

func (ReapInactiveUsersArgs) Kind() string { return "reaper_reap_inactive_users" }

// InsertOpts makes insertion idempotent per day: re-registering the periodic job or
// enqueueing manually cannot produce a second run within the same 24h window.
func (ReapInactiveUsersArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		Queue: river.QueueDefault,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: 24 * time.Hour,
			ByQueue:  true,
		},
	}
}

// ReapInactiveUsersWorker runs one deletion pass per job.
//
// Per-user deletion failures are recorded in the run report and do not fail the job;
// only settings/selection failures do, so River reports the run and the next daily
// tick retries.
type ReapInactiveUsersWorker struct {
	river.WorkerDefaults[ReapInactiveUsersArgs]
	svc *core.Service
}

func NewReapInactiveUsersWorker(svc *core.Service) *ReapInactiveUsersWorker {
	return &ReapInactiveUsersWorker{svc: svc}
}

func (w *ReapInactiveUsersWorker) Timeout(*river.Job[ReapInactiveUsersArgs]) time.Duration {
	return 10 * time.Minute
}

func (w *ReapInactiveUsersWorker) Work(ctx context.Context, job *river.Job[ReapInactiveUsersArgs]) error {
	if w == nil || w.svc == nil {
		return errors.New("reaper: service not configured")
	}
	_, err := w.svc.Reap(ctx, time.Now())
	return err
}
