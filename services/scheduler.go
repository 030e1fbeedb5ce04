// services/scheduler.go
package services

import (
	"context"
	"log"
	"time"

	"tictactoe-scoreboard/models"

	"github.com/go-co-op/gocron/v2"
)

// SnapshotFunc receives the ranked scoreboard on every scheduled run.
type SnapshotFunc func(ctx context.Context, scores []models.RankedScore) error

// StartSnapshotScheduler runs export once right away and then every interval.
// Each run is bounded by runTimeout. Runs never overlap. The caller owns the
// returned scheduler and must shut it down.
func (s *ScoreService) StartSnapshotScheduler(ctx context.Context, interval, runTimeout time.Duration, export SnapshotFunc) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			runCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()

			scores, err := s.GetRankedScores(runCtx)
			if err != nil {
				log.Printf("[Scheduler] failed to read scoreboard: %v", err)
				return
			}
			if err := export(runCtx, scores); err != nil {
				log.Printf("[Scheduler] snapshot export failed: %v", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	return sched, nil
}
