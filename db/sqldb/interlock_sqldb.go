package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

// InterlockSQLDB stores global locks, one row per lock type. Holding the row is
// holding the lock; its lock_time in hex is the owner's key.
type InterlockSQLDB struct {
	*sqlStore
	ipAddr string
}

func NewInterlockSQLDB(dbConfig db.DatabaseConfig, ipAddr string, logger lager.Logger, clk clock.Clock) (*InterlockSQLDB, error) {
	store, err := openStore(dbConfig, "interlock-db", logger.Session("interlock-db"), clk)
	if err != nil {
		return nil, err
	}
	return &InterlockSQLDB{sqlStore: store, ipAddr: ipAddr}, nil
}

// ObtainLock returns the key of a newly obtained lock. A lock older than
// expiration is clobbered first. ErrLockUnavailable means another holder won.
func (idb *InterlockSQLDB) ObtainLock(ctx context.Context, lockType int64, expiration time.Duration, note string) (string, error) {
	logger := idb.logger.Session("obtain-lock", lager.Data{"type": lockType, "note": note})
	now := idb.now()

	err := idb.transact(ctx, func(tx *sqlx.Tx) error {
		existing, err := findLock(ctx, tx, lockType)
		if err != nil || existing == nil {
			return err
		}
		if now-existing.LockTime <= expiration.Milliseconds() {
			return nil
		}
		logger.Info("clobbering-expired-lock", lager.Data{"holder": existing.IPAddr, "lock-time": existing.LockTime})
		_, err = tx.ExecContext(ctx, tx.Rebind("DELETE FROM global_interlock WHERE id = ? AND lock_time = ?"), lockType, existing.LockTime)
		return err
	})
	if err != nil {
		logger.Error("failed-to-clobber-expired-lock", err)
	}

	err = idb.transact(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO global_interlock (id, lock_time, ipaddr, note) VALUES (?, ?, ?, ?)"),
			lockType, now, idb.ipAddr, note)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			logger.Debug("lock-held-by-another-owner")
			return "", models.ErrLockUnavailable
		}
		logger.Error("failed-to-insert-lock", err)
		return "", err
	}

	key := models.LockKey(now)
	logger.Info("obtained-lock", lager.Data{"key": key})
	return key, nil
}

func (idb *InterlockSQLDB) ReleaseLock(ctx context.Context, lockType int64, key string) error {
	logger := idb.logger.Session("release-lock", lager.Data{"type": lockType, "key": key})
	err := idb.transact(ctx, func(tx *sqlx.Tx) error {
		existing, err := idb.ownedLock(ctx, tx, lockType, key)
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM global_interlock WHERE id = ? AND lock_time = ?"), lockType, existing.LockTime)
		if err != nil {
			return err
		}
		deleted, err := expectOneRow(result)
		if err != nil {
			return err
		}
		if !deleted {
			return models.ErrLockNotFound
		}
		return nil
	})
	if err != nil {
		logger.Error("failed-to-release-lock", err)
		return err
	}
	logger.Info("released-lock")
	return nil
}

// RefreshLock moves the lock time forward and returns the new key. The new time is
// strictly greater than the old one so the key always changes.
func (idb *InterlockSQLDB) RefreshLock(ctx context.Context, lockType int64, key string, note string) (string, error) {
	logger := idb.logger.Session("refresh-lock", lager.Data{"type": lockType, "key": key})
	var newKey string
	err := idb.transact(ctx, func(tx *sqlx.Tx) error {
		existing, err := idb.ownedLock(ctx, tx, lockType, key)
		if err != nil {
			return err
		}
		newTime := idb.now()
		if newTime <= existing.LockTime {
			newTime = existing.LockTime + 1
		}
		result, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE global_interlock SET lock_time = ?, note = ? WHERE id = ? AND lock_time = ?"),
			newTime, note, lockType, existing.LockTime)
		if err != nil {
			return err
		}
		updated, err := expectOneRow(result)
		if err != nil {
			return err
		}
		if !updated {
			return models.ErrLockNotOwned
		}
		newKey = models.LockKey(newTime)
		return nil
	})
	if err != nil {
		logger.Error("failed-to-refresh-lock", err)
		return "", err
	}
	logger.Debug("refreshed-lock", lager.Data{"new-key": newKey})
	return newKey, nil
}

// FindLock returns nil when the lock type is not held.
func (idb *InterlockSQLDB) FindLock(ctx context.Context, lockType int64) (*models.GlobalInterlock, error) {
	l := &models.GlobalInterlock{}
	err := idb.sqldb.GetContext(ctx, l, idb.sqldb.Rebind("SELECT id, lock_time, ipaddr, note FROM global_interlock WHERE id = ?"), lockType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		idb.logger.Error("find-lock", err, lager.Data{"type": lockType})
		return nil, err
	}
	return l, nil
}

func (idb *InterlockSQLDB) ownedLock(ctx context.Context, tx *sqlx.Tx, lockType int64, key string) (*models.GlobalInterlock, error) {
	existing, err := findLock(ctx, tx, lockType)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.ErrLockNotFound
	}
	if !strings.EqualFold(existing.Key(), key) {
		return nil, models.ErrLockNotOwned
	}
	return existing, nil
}

func findLock(ctx context.Context, tx *sqlx.Tx, lockType int64) (*models.GlobalInterlock, error) {
	l := &models.GlobalInterlock{}
	err := tx.GetContext(ctx, l, tx.Rebind("SELECT id, lock_time, ipaddr, note FROM global_interlock WHERE id = ?"), lockType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
