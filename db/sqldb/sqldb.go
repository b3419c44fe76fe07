package sqldb

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/argusmon/argus-core/db"
)

func init() {
	sqlx.BindDriver(db.SqliteDriverName, sqlx.QUESTION)
}

// sqlStore holds the connection pool shared by every store in this package.
type sqlStore struct {
	dbConfig db.DatabaseConfig
	logger   lager.Logger
	sqldb    *sqlx.DB
	clock    clock.Clock
}

func openStore(dbConfig db.DatabaseConfig, name string, logger lager.Logger, clk clock.Clock) (*sqlStore, error) {
	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return nil, err
	}

	sqldb, err := sqlx.Open(database.DriverName, database.DataSourceName)
	if err != nil {
		logger.Error("open-"+name, err)
		return nil, err
	}

	err = sqldb.Ping()
	if err != nil {
		_ = sqldb.Close()
		logger.Error("ping-"+name, err)
		return nil, err
	}

	sqldb.SetConnMaxLifetime(dbConfig.ConnectionMaxLifetime)
	sqldb.SetMaxIdleConns(dbConfig.MaxIdleConnections)
	sqldb.SetMaxOpenConns(dbConfig.MaxOpenConnections)
	sqldb.SetConnMaxIdleTime(dbConfig.ConnectionMaxIdleTime)

	return &sqlStore{
		dbConfig: dbConfig,
		logger:   logger,
		sqldb:    sqldb,
		clock:    clk,
	}, nil
}

func (s *sqlStore) Close() error {
	err := s.sqldb.Close()
	if err != nil {
		s.logger.Error("close-db", err)
		return err
	}
	return nil
}

func (s *sqlStore) Ping() error {
	return s.sqldb.Ping()
}

func (s *sqlStore) GetDBStatus() sql.DBStats {
	return s.sqldb.Stats()
}

func (s *sqlStore) now() int64 {
	return s.clock.Now().UnixMilli()
}

func (s *sqlStore) transact(ctx context.Context, f func(tx *sqlx.Tx) error) error {
	var err error
	for attempts := 0; attempts < 3; attempts++ {
		err = func() error {
			tx, err := s.sqldb.BeginTxx(ctx, nil)
			if err != nil {
				s.logger.Error("failed-starting-transaction", err)
				return err
			}
			defer func() {
				_ = tx.Rollback()
			}()

			err = f(tx)
			if err != nil {
				return err
			}

			err = tx.Commit()
			if err != nil {
				s.logger.Error("failed-committing-transaction", err)
			}
			return err
		}()

		// golang sql package does not always retry query on ErrBadConn
		if attempts >= 2 || !errors.Is(err, driver.ErrBadConn) {
			break
		}
		s.logger.Debug("wait-before-retry-for-transaction", lager.Data{"attempts": attempts})
		time.Sleep(500 * time.Millisecond)
	}

	return err
}

// insertReturningID runs an INSERT written with ? placeholders and returns the generated id.
func insertReturningID(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) (int64, error) {
	if tx.DriverName() == db.PostgresDriverName {
		var id int64
		err := tx.QueryRowxContext(ctx, tx.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func expectOneRow(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
