package db

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/argusmon/argus-core/healthendpoint"
	"github.com/argusmon/argus-core/models"
)

const (
	PostgresDriverName = "postgres"
	MysqlDriverName    = "mysql"
	SqliteDriverName   = "sqlite"
	ArgusDb            = "argus_db"
	LockDb             = "lock_db"
)

var ErrAlreadyExists = fmt.Errorf("already exists")
var ErrDoesNotExist = fmt.Errorf("doesn't exist")
var ErrConflict = fmt.Errorf("conflicting entry exists")

type DatabaseConfig struct {
	URL                   string        `yaml:"url"`
	MaxOpenConnections    int           `yaml:"max_open_connections"`
	MaxIdleConnections    int           `yaml:"max_idle_connections"`
	ConnectionMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
	ConnectionMaxIdleTime time.Duration `yaml:"connection_max_idletime"`
}

// InterlockDB holds at most one global lock row per lock type.
type InterlockDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	ObtainLock(ctx context.Context, lockType int64, expiration time.Duration, note string) (string, error)
	ReleaseLock(ctx context.Context, lockType int64, key string) error
	RefreshLock(ctx context.Context, lockType int64, key string, note string) (string, error)
	FindLock(ctx context.Context, lockType int64) (*models.GlobalInterlock, error)
	io.Closer
}

// JobCounter returns the number of jobs of a lock type that are due in the
// scheduling window starting at since (epoch ms).
type JobCounter interface {
	CountEnabledJobs(ctx context.Context, lockType models.LockType, since int64) (int64, error)
}

type SchedulingLockDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	// UpdateAndGet claims the next block of jobs. The bool is false when the row was left unchanged.
	UpdateAndGet(ctx context.Context, lockType models.LockType, blockSize int64, refreshInterval time.Duration, counter JobCounter) (*models.DistributedSchedulingLock, bool, error)
	GetSchedulingLock(ctx context.Context, lockType models.LockType) (*models.DistributedSchedulingLock, error)
	io.Closer
}

type NotificationStateDB interface {
	LoadNotificationState(ctx context.Context, notifications []*models.Notification) error
	SaveNotificationState(ctx context.Context, notifications []*models.Notification) error
}

type EnabledAlertSource interface {
	FindEnabledAlerts(ctx context.Context) ([]*models.Alert, error)
}

type AlertDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	NotificationStateDB
	EnabledAlertSource
	CreateAlert(ctx context.Context, alert *models.Alert) error
	UpdateAlert(ctx context.Context, alert *models.Alert) error
	FindAlertByID(ctx context.Context, id int64) (*models.Alert, error)
	FindAlertByNameAndOwner(ctx context.Context, name, owner string) (*models.Alert, error)
	FindAlertsByOwner(ctx context.Context, owner string) ([]*models.Alert, error)
	FindAlertsByNamePrefix(ctx context.Context, prefix string) ([]*models.Alert, error)
	FindAlertsMeta(ctx context.Context, owner string) ([]*models.Alert, error)
	FindAlertIDsByStatus(ctx context.Context, enabled bool) ([]int64, error)
	FindAlertsPageByStatus(ctx context.Context, enabled bool, limit, offset int) ([]*models.Alert, error)
	CountAlertsByStatus(ctx context.Context, enabled bool) (int64, error)
	SetAlertEnabled(ctx context.Context, id int64, enabled bool) error
	MarkAlertDeleted(ctx context.Context, id int64) error
	DeleteAlert(ctx context.Context, id int64) error
	io.Closer
}

type InfractionDB interface {
	FindInfractions(ctx context.Context, policyID int64, userName string) ([]*models.Infraction, error)
	SaveInfraction(ctx context.Context, infraction *models.Infraction) error
}

type PolicyDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	InfractionDB
	CreatePolicy(ctx context.Context, policy *models.Policy) error
	UpdatePolicy(ctx context.Context, policy *models.Policy) error
	FindPolicyByNameAndService(ctx context.Context, name, service string) (*models.Policy, error)
	FindPoliciesByService(ctx context.Context, service string) ([]*models.Policy, error)
	FindPolicies(ctx context.Context) ([]*models.Policy, error)
	DeletePolicy(ctx context.Context, id int64) error
	SaveSuspensionLevel(ctx context.Context, level *models.SuspensionLevel) error
	FindSuspensionLevels(ctx context.Context, policyID int64) ([]*models.SuspensionLevel, error)
	FindInfractionsByUser(ctx context.Context, userName string) ([]*models.Infraction, error)
	io.Closer
}

type SuspensionDB interface {
	healthendpoint.DatabaseStatus
	healthendpoint.Pinger
	FindSuspensionRecord(ctx context.Context, userName string, subSystem models.SubSystem) (*models.SuspensionRecord, error)
	FindSuspensionRecordsByUser(ctx context.Context, userName string) ([]*models.SuspensionRecord, error)
	SaveSuspensionRecord(ctx context.Context, record *models.SuspensionRecord) error
	DeleteSuspensionRecord(ctx context.Context, userName string, subSystem models.SubSystem) error
	FindSuspensionLevels(ctx context.Context, subSystem models.SubSystem) (*models.SubsystemSuspensionLevels, error)
	// CreateSuspensionLevelsIfAbsent reports false when another writer created the ladder first.
	CreateSuspensionLevelsIfAbsent(ctx context.Context, levels *models.SubsystemSuspensionLevels) (bool, error)
	SaveSuspensionLevels(ctx context.Context, levels *models.SubsystemSuspensionLevels) error
	io.Closer
}
