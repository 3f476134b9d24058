package riverjobs

import (
	"fmt"

	"github.com/louddog/userreaper/core"
	"github.com/riverqueue/river"
	"github.com/robfig/cron/v3"
)

// DailyMidnight fires once a day at local midnight, matching the origin schedule.
const DailyMidnight = "0 0 * * *"

// RegisterReapInactiveUsersWorker registers the reap worker into a River workers registry.
func RegisterReapInactiveUsersWorker(ws *river.Workers, svc *core.Service) {
	river.AddWorker(ws, NewReapInactiveUsersWorker(svc))
}

// AddReapInactiveUsersPeriodicJob adds a periodic job that enqueues a reap run on a
// cron schedule. Pass DailyMidnight for the default cadence.
func AddReapInactiveUsersPeriodicJob[T any](client *river.Client[T], cronSpec string, runOnStart bool) error {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(cronSpec)
	if err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", cronSpec, err)
	}
	args := ReapInactiveUsersArgs{}
	opts := args.InsertOpts()
	_ = client.PeriodicJobs().Add(
		river.NewPeriodicJob(
			schedule,
			func() (river.JobArgs, *river.InsertOpts) { return args, &opts },
			&river.PeriodicJobOpts{RunOnStart: runOnStart},
		),
	)
	return nil
}
