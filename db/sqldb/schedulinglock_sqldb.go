package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

type SchedulingLockSQLDB struct {
	*sqlStore
}

func NewSchedulingLockSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger, clk clock.Clock) (*SchedulingLockSQLDB, error) {
	store, err := openStore(dbConfig, "scheduling-lock-db", logger.Session("scheduling-lock-db"), clk)
	if err != nil {
		return nil, err
	}
	return &SchedulingLockSQLDB{sqlStore: store}, nil
}

// UpdateAndGet claims the next block of blockSize jobs for lockType. A new
// scheduling window starts once now reaches NextScheduleStartTime; the job count
// for that window comes from counter. The returned bool is false when every job
// of the current window has been claimed already. Concurrent writers that lose
// the version check get ErrOptimisticLockConflict.
func (sdb *SchedulingLockSQLDB) UpdateAndGet(ctx context.Context, lockType models.LockType, blockSize int64, refreshInterval time.Duration, counter db.JobCounter) (*models.DistributedSchedulingLock, bool, error) {
	if blockSize <= 0 {
		return nil, false, models.InvalidArgumentf("block size must be positive, got %d", blockSize)
	}
	logger := sdb.logger.Session("update-and-get", lager.Data{"type": lockType.String()})
	interval := refreshInterval.Milliseconds()
	now := sdb.now()

	var result *models.DistributedSchedulingLock
	claimed := false
	err := sdb.transact(ctx, func(tx *sqlx.Tx) error {
		current, err := getSchedulingLock(ctx, tx, lockType)
		if err != nil {
			return err
		}

		if current == nil {
			next := models.ToBeginOfMinute(now + interval)
			jobCount, err := counter.CountEnabledJobs(ctx, lockType, next-interval)
			if err != nil {
				return err
			}
			result = &models.DistributedSchedulingLock{
				ID:                    int64(lockType),
				JobCount:              jobCount,
				CurrentIndex:          blockSize,
				NextScheduleStartTime: next,
			}
			_, err = tx.ExecContext(ctx,
				tx.Rebind("INSERT INTO distributed_scheduling_lock (id, job_count, current_index, next_schedule_start_time, version) VALUES (?, ?, ?, ?, 0)"),
				result.ID, result.JobCount, result.CurrentIndex, result.NextScheduleStartTime)
			if isUniqueViolation(err) {
				return models.ErrOptimisticLockConflict
			}
			claimed = err == nil
			return err
		}

		result = current
		switch {
		case now >= current.NextScheduleStartTime:
			jobCount, err := counter.CountEnabledJobs(ctx, lockType, current.NextScheduleStartTime)
			if err != nil {
				return err
			}
			result = &models.DistributedSchedulingLock{
				ID:                    current.ID,
				JobCount:              jobCount,
				CurrentIndex:          blockSize,
				NextScheduleStartTime: models.ToBeginOfMinute(now + interval),
				Version:               current.Version + 1,
			}
		case current.HasUnclaimedJobs(blockSize):
			result = &models.DistributedSchedulingLock{
				ID:                    current.ID,
				JobCount:              current.JobCount,
				CurrentIndex:          current.CurrentIndex + blockSize,
				NextScheduleStartTime: current.NextScheduleStartTime,
				Version:               current.Version + 1,
			}
		default:
			return nil
		}

		res, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE distributed_scheduling_lock SET job_count = ?, current_index = ?, next_schedule_start_time = ?, version = version + 1 WHERE id = ? AND version = ?"),
			result.JobCount, result.CurrentIndex, result.NextScheduleStartTime, current.ID, current.Version)
		if err != nil {
			return err
		}
		updated, err := expectOneRow(res)
		if err != nil {
			return err
		}
		if !updated {
			return models.ErrOptimisticLockConflict
		}
		claimed = true
		return nil
	})
	if err != nil {
		if models.IsRetryable(err) {
			logger.Debug("lost-scheduling-lock-race")
		} else {
			logger.Error("failed-to-update-scheduling-lock", err)
		}
		return nil, false, err
	}

	if claimed {
		from, to := result.ClaimedRange(blockSize)
		logger.Debug("claimed-block", lager.Data{"from": from, "to": to, "job-count": result.JobCount})
	}
	return result, claimed, nil
}

// GetSchedulingLock returns nil when no window has been started for lockType.
func (sdb *SchedulingLockSQLDB) GetSchedulingLock(ctx context.Context, lockType models.LockType) (*models.DistributedSchedulingLock, error) {
	l := &models.DistributedSchedulingLock{}
	err := sdb.sqldb.GetContext(ctx, l, sdb.sqldb.Rebind(schedulingLockQuery), int64(lockType))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sdb.logger.Error("get-scheduling-lock", err, lager.Data{"type": lockType.String()})
		return nil, err
	}
	return l, nil
}

const schedulingLockQuery = "SELECT id, job_count, current_index, next_schedule_start_time, version FROM distributed_scheduling_lock WHERE id = ?"

func getSchedulingLock(ctx context.Context, tx *sqlx.Tx, lockType models.LockType) (*models.DistributedSchedulingLock, error) {
	l := &models.DistributedSchedulingLock{}
	err := tx.GetContext(ctx, l, tx.Rebind(schedulingLockQuery), int64(lockType))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
