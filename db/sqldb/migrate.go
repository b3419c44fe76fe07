package sqldb

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/argusmon/argus-core/db"
)

//go:embed migrations
var migrations embed.FS

// Migrate brings the schema at dbConfig.URL up to the latest version.
func Migrate(dbConfig db.DatabaseConfig, logger lager.Logger) error {
	logger = logger.Session("migrate")

	database, err := db.GetConnection(dbConfig.URL)
	if err != nil {
		return err
	}
	dsn, err := database.MigrationDSN()
	if err != nil {
		return err
	}

	conn, err := sql.Open(database.DriverName, dsn)
	if err != nil {
		logger.Error("open-db", err)
		return err
	}

	var driver migratedb.Driver
	switch database.DriverName {
	case db.PostgresDriverName:
		driver, err = migratepostgres.WithInstance(conn, &migratepostgres.Config{})
	case db.MysqlDriverName:
		driver, err = migratemysql.WithInstance(conn, &migratemysql.Config{})
	case db.SqliteDriverName:
		driver, err = migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	default:
		err = fmt.Errorf("unsupported driver %q", database.DriverName)
	}
	if err != nil {
		_ = conn.Close()
		logger.Error("create-migration-driver", err)
		return err
	}

	source, err := iofs.New(migrations, "migrations/"+database.DriverName)
	if err != nil {
		_ = driver.Close()
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, database.DriverName, driver)
	if err != nil {
		_ = driver.Close()
		logger.Error("create-migration", err)
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("schema-up-to-date")
		return nil
	}
	if err != nil {
		logger.Error("apply-migrations", err)
		return err
	}

	version, _, _ := m.Version()
	logger.Info("migrated", lager.Data{"version": version})
	return nil
}
