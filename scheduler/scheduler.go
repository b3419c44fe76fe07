package scheduler

import (
	"context"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/alerting"
	"github.com/argusmon/argus-core/healthendpoint"
	"github.com/argusmon/argus-core/schedule"
)

// Runner claims blocks of due alerts on every tick and hands them to the processor
// until the current scheduling window has no unclaimed jobs left.
type Runner struct {
	logger    lager.Logger
	clock     clock.Clock
	claimer   schedule.BlockClaimer
	lister    schedule.DueAlertLister
	processor alerting.AlertProcessor
	collector healthendpoint.SchedulerCollector
	interval  time.Duration
}

func NewRunner(logger lager.Logger, clk clock.Clock, claimer schedule.BlockClaimer, lister schedule.DueAlertLister,
	processor alerting.AlertProcessor, collector healthendpoint.SchedulerCollector, interval time.Duration) *Runner {
	return &Runner{
		logger:    logger.Session("scheduler"),
		clock:     clk,
		claimer:   claimer,
		lister:    lister,
		processor: processor,
		collector: collector,
		interval:  interval,
	}
}

func (r *Runner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()
	close(ready)
	r.logger.Info("started", lager.Data{"claim_interval": r.interval})

	var done chan struct{}
	for {
		select {
		case <-signals:
			cancel()
			if done != nil {
				<-done
			}
			r.logger.Info("stopped")
			return nil
		case <-ticker.C():
			if done != nil {
				select {
				case <-done:
				default:
					r.logger.Info("previous-pass-still-running")
					continue
				}
			}
			done = make(chan struct{})
			go func(done chan struct{}) {
				defer close(done)
				r.ClaimAndProcess(ctx)
			}(done)
		}
	}
}

// ClaimAndProcess claims blocks until the window is exhausted and processes the
// alerts each block maps to. Claimed ranges past the end of the due list map to nothing.
func (r *Runner) ClaimAndProcess(ctx context.Context) alerting.ProcessResult {
	total := alerting.ProcessResult{}
	for ctx.Err() == nil {
		claim, err := r.claimer.Claim(ctx)
		if err != nil {
			r.logger.Error("failed-to-claim-block", err)
			break
		}
		if !claim.Claimed {
			break
		}

		due, err := r.lister.DueAlerts(ctx, claim.WindowStart)
		if err != nil {
			r.logger.Error("failed-to-list-due-alerts", err, lager.Data{"window-start": claim.WindowStart})
			break
		}
		start, end := clamp(claim.Start, claim.End, int64(len(due)))
		if start == end {
			r.logger.Debug("claimed-block-out-of-range", lager.Data{"from": claim.Start, "to": claim.End, "due": len(due)})
			continue
		}

		result := r.processor.Process(ctx, due[start:end])
		r.collector.AddEvaluatedAlerts(result.Evaluated)
		r.collector.AddFailedAlerts(result.Failed)
		r.collector.AddSentNotifications(result.Sent)
		r.logger.Info("processed-block", lager.Data{
			"from": start, "to": end, "evaluated": result.Evaluated, "failed": result.Failed, "sent": result.Sent,
		})
		total.Evaluated += result.Evaluated
		total.Failed += result.Failed
		total.Sent += result.Sent
	}
	return total
}

func clamp(start, end, length int64) (int64, int64) {
	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	if start >= end {
		return 0, 0
	}
	return start, end
}
