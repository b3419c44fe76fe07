package schedule

import (
	"context"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/cenkalti/backoff/v4"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/healthendpoint"
	"github.com/argusmon/argus-core/models"
)

const (
	DefaultMaxAttempts     = 10
	DefaultInitialInterval = 50 * time.Millisecond
	DefaultMaxInterval     = 2 * time.Second
)

// Claim is the outcome of one claim attempt. Jobs [Start, End) of the list of jobs
// due in the window starting at WindowStart belong to the caller when Claimed is set.
type Claim struct {
	Lock        *models.DistributedSchedulingLock
	Start       int64
	End         int64
	Claimed     bool
	WindowStart int64
}

type BlockClaimer interface {
	Claim(ctx context.Context) (*Claim, error)
}

type RetryConfig struct {
	MaxAttempts     int           `yaml:"max_attempts"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxInterval     time.Duration `yaml:"max_interval"`
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:     DefaultMaxAttempts,
		InitialInterval: DefaultInitialInterval,
		MaxInterval:     DefaultMaxInterval,
	}
}

// Claimer claims blocks of the scheduling lock, retrying version conflicts with
// exponential backoff.
type Claimer struct {
	logger          lager.Logger
	lockDB          db.SchedulingLockDB
	counter         db.JobCounter
	collector       healthendpoint.SchedulerCollector
	lockType        models.LockType
	blockSize       int64
	refreshInterval time.Duration
	retry           RetryConfig
}

func NewClaimer(logger lager.Logger, lockDB db.SchedulingLockDB, counter db.JobCounter, collector healthendpoint.SchedulerCollector,
	lockType models.LockType, blockSize int64, refreshInterval time.Duration, retry RetryConfig) *Claimer {
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = DefaultMaxAttempts
	}
	if retry.InitialInterval <= 0 {
		retry.InitialInterval = DefaultInitialInterval
	}
	if retry.MaxInterval <= 0 {
		retry.MaxInterval = DefaultMaxInterval
	}
	return &Claimer{
		logger:          logger.Session("claimer", lager.Data{"type": lockType.String()}),
		lockDB:          lockDB,
		counter:         counter,
		collector:       collector,
		lockType:        lockType,
		blockSize:       blockSize,
		refreshInterval: refreshInterval,
		retry:           retry,
	}
}

func (c *Claimer) Claim(ctx context.Context) (*Claim, error) {
	var claim *Claim
	operation := func() error {
		lock, claimed, err := c.lockDB.UpdateAndGet(ctx, c.lockType, c.blockSize, c.refreshInterval, c.counter)
		if err != nil {
			if models.IsRetryable(err) {
				c.collector.IncLockConflicts()
				return err
			}
			return backoff.Permanent(err)
		}
		start, end := lock.ClaimedRange(c.blockSize)
		claim = &Claim{
			Lock:        lock,
			Start:       start,
			End:         end,
			Claimed:     claimed,
			WindowStart: lock.NextScheduleStartTime - c.refreshInterval.Milliseconds(),
		}
		return nil
	}

	err := backoff.RetryNotify(operation, c.backOff(ctx), func(err error, wait time.Duration) {
		c.logger.Debug("retry-claim", lager.Data{"error": err.Error(), "wait": wait.String()})
	})
	if err != nil {
		c.logger.Error("failed-to-claim", err)
		return nil, err
	}
	if claim.Claimed {
		c.collector.IncClaims()
	}
	return claim, nil
}

func (c *Claimer) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retry.InitialInterval
	b.MaxInterval = c.retry.MaxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.retry.MaxAttempts-1)), ctx)
}
