package sqldb

import (
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/db"
)

func CreateAlertDb(dbConf db.DatabaseConfig, logger lager.Logger, clk clock.Clock) *AlertSQLDB {
	alertDB, err := NewAlertSQLDB(dbConf, logger, clk)
	if err != nil {
		logger.Error("failed to connect alert db", err)
		os.Exit(1)
	}
	return alertDB
}

func CreateInterlockDb(dbConf db.DatabaseConfig, ipAddr string, logger lager.Logger, clk clock.Clock) *InterlockSQLDB {
	interlockDB, err := NewInterlockSQLDB(dbConf, ipAddr, logger, clk)
	if err != nil {
		logger.Error("failed to connect interlock db", err)
		os.Exit(1)
	}
	return interlockDB
}

func CreateSchedulingLockDb(dbConf db.DatabaseConfig, logger lager.Logger, clk clock.Clock) *SchedulingLockSQLDB {
	schedulingLockDB, err := NewSchedulingLockSQLDB(dbConf, logger, clk)
	if err != nil {
		logger.Error("failed to connect scheduling lock db", err)
		os.Exit(1)
	}
	return schedulingLockDB
}

func CreatePolicyDb(dbConf db.DatabaseConfig, logger lager.Logger, clk clock.Clock) *PolicySQLDB {
	policyDB, err := NewPolicySQLDB(dbConf, logger, clk)
	if err != nil {
		logger.Error("failed to connect policy db", err)
		os.Exit(1)
	}
	return policyDB
}

func CreateSuspensionDb(dbConf db.DatabaseConfig, logger lager.Logger, clk clock.Clock) *SuspensionSQLDB {
	suspensionDB, err := NewSuspensionSQLDB(dbConf, logger, clk)
	if err != nil {
		logger.Error("failed to connect suspension db", err)
		os.Exit(1)
	}
	return suspensionDB
}
