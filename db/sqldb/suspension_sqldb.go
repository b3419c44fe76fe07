package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

const (
	suspensionRecordColumns = "id, user_name, sub_system, suspended_until, created_by, created_date, modified_by, modified_date"
	suspensionLevelsColumns = "id, sub_system, created_by, created_date, modified_by, modified_date"
)

type SuspensionSQLDB struct {
	*sqlStore
}

func NewSuspensionSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger, clk clock.Clock) (*SuspensionSQLDB, error) {
	store, err := openStore(dbConfig, "suspension-db", logger.Session("suspension-db"), clk)
	if err != nil {
		return nil, err
	}
	return &SuspensionSQLDB{sqlStore: store}, nil
}

// FindSuspensionRecord returns nil when the user has no record in subSystem.
func (sdb *SuspensionSQLDB) FindSuspensionRecord(ctx context.Context, userName string, subSystem models.SubSystem) (*models.SuspensionRecord, error) {
	records, err := sdb.findRecords(ctx, "SELECT "+suspensionRecordColumns+" FROM suspension_record WHERE user_name = ? AND sub_system = ?", userName, subSystem)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[0], nil
}

func (sdb *SuspensionSQLDB) FindSuspensionRecordsByUser(ctx context.Context, userName string) ([]*models.SuspensionRecord, error) {
	return sdb.findRecords(ctx, "SELECT "+suspensionRecordColumns+" FROM suspension_record WHERE user_name = ? ORDER BY sub_system", userName)
}

// SaveSuspensionRecord inserts or rewrites the record together with its infraction history.
func (sdb *SuspensionSQLDB) SaveSuspensionRecord(ctx context.Context, record *models.SuspensionRecord) error {
	logger := sdb.logger.Session("save-suspension-record", lager.Data{"user": record.UserName, "sub-system": record.SubSystem})
	now := sdb.now()
	record.Touch(record.UserName, now)

	err := sdb.transact(ctx, func(tx *sqlx.Tx) error {
		if record.IsPersisted() {
			_, err := tx.ExecContext(ctx,
				tx.Rebind("UPDATE suspension_record SET suspended_until = ?, modified_by = ?, modified_date = ? WHERE id = ?"),
				record.SuspendedUntil, record.ModifiedBy, record.ModifiedDate, record.ID)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM suspension_record_infraction WHERE record_id = ?"), record.ID); err != nil {
				return err
			}
		} else {
			id, err := insertReturningID(ctx, tx,
				"INSERT INTO suspension_record (user_name, sub_system, suspended_until, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?)",
				record.UserName, record.SubSystem, record.SuspendedUntil, record.CreatedBy, record.CreatedDate, record.ModifiedBy, record.ModifiedDate)
			if err != nil {
				return err
			}
			record.ID = id
		}
		for i, ts := range record.InfractionHistory {
			_, err := tx.ExecContext(ctx,
				tx.Rebind("INSERT INTO suspension_record_infraction (record_id, seq, tstamp) VALUES (?, ?, ?)"), record.ID, i, ts)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("suspension record of %s in %s: %w", record.UserName, record.SubSystem, db.ErrAlreadyExists)
		}
		logger.Error("failed-to-save-suspension-record", err)
		return err
	}
	return nil
}

func (sdb *SuspensionSQLDB) DeleteSuspensionRecord(ctx context.Context, userName string, subSystem models.SubSystem) error {
	logger := sdb.logger.Session("delete-suspension-record", lager.Data{"user": userName, "sub-system": subSystem})
	err := sdb.transact(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			tx.Rebind("DELETE FROM suspension_record_infraction WHERE record_id IN (SELECT id FROM suspension_record WHERE user_name = ? AND sub_system = ?)"),
			userName, subSystem)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, tx.Rebind("DELETE FROM suspension_record WHERE user_name = ? AND sub_system = ?"), userName, subSystem)
		return err
	})
	if err != nil {
		logger.Error("failed-to-delete-suspension-record", err)
		return err
	}
	logger.Info("deleted-suspension-record")
	return nil
}

type suspensionLevelsRow struct {
	models.Entity
	SubSystem models.SubSystem `db:"sub_system"`
}

type suspensionLevelEntry struct {
	InfractionCount int   `db:"infraction_count"`
	SuspensionTime  int64 `db:"suspension_time"`
}

// FindSuspensionLevels returns nil when no ladder is stored for subSystem.
func (sdb *SuspensionSQLDB) FindSuspensionLevels(ctx context.Context, subSystem models.SubSystem) (*models.SubsystemSuspensionLevels, error) {
	row := &suspensionLevelsRow{}
	err := sdb.sqldb.GetContext(ctx, row, sdb.sqldb.Rebind("SELECT "+suspensionLevelsColumns+" FROM subsystem_suspension_levels WHERE sub_system = ?"), subSystem)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		sdb.logger.Error("find-suspension-levels", err, lager.Data{"sub-system": subSystem})
		return nil, err
	}

	var entries []suspensionLevelEntry
	err = sdb.sqldb.SelectContext(ctx, &entries,
		sdb.sqldb.Rebind("SELECT infraction_count, suspension_time FROM subsystem_suspension_level WHERE levels_id = ? ORDER BY infraction_count"), row.ID)
	if err != nil {
		sdb.logger.Error("find-suspension-levels", err, lager.Data{"sub-system": subSystem})
		return nil, err
	}
	levels := &models.SubsystemSuspensionLevels{Entity: row.Entity, SubSystem: row.SubSystem, Levels: make(map[int]int64, len(entries))}
	for _, e := range entries {
		levels.Levels[e.InfractionCount] = e.SuspensionTime
	}
	return levels, nil
}

// CreateSuspensionLevelsIfAbsent reports false without error when another writer
// stored a ladder for the subsystem first.
func (sdb *SuspensionSQLDB) CreateSuspensionLevelsIfAbsent(ctx context.Context, levels *models.SubsystemSuspensionLevels) (bool, error) {
	now := sdb.now()
	levels.Touch(levels.ModifiedBy, now)
	err := sdb.transact(ctx, func(tx *sqlx.Tx) error {
		id, err := insertReturningID(ctx, tx,
			"INSERT INTO subsystem_suspension_levels (sub_system, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?)",
			levels.SubSystem, levels.CreatedBy, levels.CreatedDate, levels.ModifiedBy, levels.ModifiedDate)
		if err != nil {
			return err
		}
		levels.ID = id
		return insertLevelEntries(ctx, tx, levels)
	})
	if isUniqueViolation(err) {
		levels.ID = 0
		sdb.logger.Debug("suspension-levels-created-concurrently", lager.Data{"sub-system": levels.SubSystem})
		return false, nil
	}
	if err != nil {
		sdb.logger.Error("create-suspension-levels", err, lager.Data{"sub-system": levels.SubSystem})
		return false, err
	}
	return true, nil
}

// SaveSuspensionLevels replaces the stored ladder of an existing subsystem.
func (sdb *SuspensionSQLDB) SaveSuspensionLevels(ctx context.Context, levels *models.SubsystemSuspensionLevels) error {
	now := sdb.now()
	levels.Touch(levels.ModifiedBy, now)
	err := sdb.transact(ctx, func(tx *sqlx.Tx) error {
		var id int64
		err := tx.GetContext(ctx, &id, tx.Rebind("SELECT id FROM subsystem_suspension_levels WHERE sub_system = ?"), levels.SubSystem)
		if errors.Is(err, sql.ErrNoRows) {
			return db.ErrDoesNotExist
		}
		if err != nil {
			return err
		}
		levels.ID = id
		if _, err := tx.ExecContext(ctx, tx.Rebind("UPDATE subsystem_suspension_levels SET modified_by = ?, modified_date = ? WHERE id = ?"), levels.ModifiedBy, levels.ModifiedDate, id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM subsystem_suspension_level WHERE levels_id = ?"), id); err != nil {
			return err
		}
		return insertLevelEntries(ctx, tx, levels)
	})
	if err != nil {
		sdb.logger.Error("save-suspension-levels", err, lager.Data{"sub-system": levels.SubSystem})
	}
	return err
}

func insertLevelEntries(ctx context.Context, tx *sqlx.Tx, levels *models.SubsystemSuspensionLevels) error {
	for _, count := range levels.InfractionCounts() {
		_, err := tx.ExecContext(ctx,
			tx.Rebind("INSERT INTO subsystem_suspension_level (levels_id, infraction_count, suspension_time) VALUES (?, ?, ?)"),
			levels.ID, count, levels.Levels[count])
		if err != nil {
			return err
		}
	}
	return nil
}

type recordInfraction struct {
	RecordID int64 `db:"record_id"`
	Tstamp   int64 `db:"tstamp"`
}

func (sdb *SuspensionSQLDB) findRecords(ctx context.Context, query string, args ...interface{}) ([]*models.SuspensionRecord, error) {
	var records []*models.SuspensionRecord
	err := sdb.sqldb.SelectContext(ctx, &records, sdb.sqldb.Rebind(query), args...)
	if err != nil {
		sdb.logger.Error("find-suspension-records", err)
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}

	byID := make(map[int64]*models.SuspensionRecord, len(records))
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		byID[r.ID] = r
		ids = append(ids, r.ID)
	}
	var history []recordInfraction
	err = selectIn(ctx, sdb.sqldb, &history, "SELECT record_id, tstamp FROM suspension_record_infraction WHERE record_id IN (?) ORDER BY record_id, seq", ids)
	if err != nil {
		sdb.logger.Error("find-suspension-record-history", err)
		return nil, err
	}
	for _, h := range history {
		r := byID[h.RecordID]
		r.InfractionHistory = append(r.InfractionHistory, h.Tstamp)
	}
	return records, nil
}
