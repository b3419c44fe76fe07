package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

const (
	policyColumns          = "id, service, name, owner_names, user_names, sub_system, trigger_type, aggregator, threshold, time_unit, default_value, cron_entry, created_by, created_date, modified_by, modified_date"
	suspensionLevelColumns = "id, policy_id, level_number, infraction_count, suspension_time, created_by, created_date, modified_by, modified_date"
	infractionColumns      = "id, policy_id, user_name, infraction_timestamp, expiration_timestamp, created_by, created_date, modified_by, modified_date"
)

// policyRow is the stored form of a policy. List valued fields are JSON encoded.
type policyRow struct {
	models.Entity
	Service      string  `db:"service"`
	Name         string  `db:"name"`
	Owners       string  `db:"owner_names"`
	Users        string  `db:"user_names"`
	SubSystem    string  `db:"sub_system"`
	TriggerType  string  `db:"trigger_type"`
	Aggregator   string  `db:"aggregator"`
	Threshold    string  `db:"threshold"`
	TimeUnit     string  `db:"time_unit"`
	DefaultValue float64 `db:"default_value"`
	CronEntry    string  `db:"cron_entry"`
}

func newPolicyRow(p *models.Policy) (*policyRow, error) {
	owners, err := json.Marshal(nonNilStrings(p.Owners))
	if err != nil {
		return nil, err
	}
	users, err := json.Marshal(nonNilStrings(p.Users))
	if err != nil {
		return nil, err
	}
	threshold, err := json.Marshal(p.Threshold)
	if err != nil {
		return nil, err
	}
	return &policyRow{
		Entity:       p.Entity,
		Service:      p.Service,
		Name:         p.Name,
		Owners:       string(owners),
		Users:        string(users),
		SubSystem:    p.SubSystem,
		TriggerType:  string(p.TriggerType),
		Aggregator:   string(p.Aggregator),
		Threshold:    string(threshold),
		TimeUnit:     p.TimeUnit,
		DefaultValue: p.DefaultValue,
		CronEntry:    p.CronEntry,
	}, nil
}

func (r *policyRow) toPolicy() (*models.Policy, error) {
	p := &models.Policy{
		Entity:       r.Entity,
		Service:      r.Service,
		Name:         r.Name,
		SubSystem:    r.SubSystem,
		TriggerType:  models.TriggerType(r.TriggerType),
		Aggregator:   models.Aggregator(r.Aggregator),
		TimeUnit:     r.TimeUnit,
		DefaultValue: r.DefaultValue,
		CronEntry:    r.CronEntry,
	}
	if err := json.Unmarshal([]byte(r.Owners), &p.Owners); err != nil {
		return nil, fmt.Errorf("policy %d owners: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.Users), &p.Users); err != nil {
		return nil, fmt.Errorf("policy %d users: %w", r.ID, err)
	}
	if err := json.Unmarshal([]byte(r.Threshold), &p.Threshold); err != nil {
		return nil, fmt.Errorf("policy %d threshold: %w", r.ID, err)
	}
	return p, nil
}

type PolicySQLDB struct {
	*sqlStore
}

func NewPolicySQLDB(dbConfig db.DatabaseConfig, logger lager.Logger, clk clock.Clock) (*PolicySQLDB, error) {
	store, err := openStore(dbConfig, "policy-db", logger.Session("policy-db"), clk)
	if err != nil {
		return nil, err
	}
	return &PolicySQLDB{sqlStore: store}, nil
}

// CreatePolicy stores the policy with its suspension levels.
func (pdb *PolicySQLDB) CreatePolicy(ctx context.Context, policy *models.Policy) error {
	if err := policy.Validate(); err != nil {
		return err
	}
	logger := pdb.logger.Session("create-policy", lager.Data{"policy": policy.MetricName()})
	now := pdb.now()
	creator := policy.CreatedBy
	if creator == "" && len(policy.Owners) > 0 {
		creator = policy.Owners[0]
	}
	policy.Touch(creator, now)

	row, err := newPolicyRow(policy)
	if err != nil {
		return err
	}
	err = pdb.transact(ctx, func(tx *sqlx.Tx) error {
		id, err := insertReturningID(ctx, tx,
			"INSERT INTO policy (service, name, owner_names, user_names, sub_system, trigger_type, aggregator, threshold, time_unit, default_value, cron_entry, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			row.Service, row.Name, row.Owners, row.Users, row.SubSystem, row.TriggerType, row.Aggregator, row.Threshold, row.TimeUnit, row.DefaultValue, row.CronEntry,
			row.CreatedBy, row.CreatedDate, row.ModifiedBy, row.ModifiedDate)
		if err != nil {
			return err
		}
		policy.ID = id
		for _, l := range policy.SuspensionLevels {
			l.PolicyID = id
			l.Touch(creator, now)
			if err := insertSuspensionLevel(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("policy %s: %w", policy.MetricName(), db.ErrAlreadyExists)
		}
		logger.Error("failed-to-create-policy", err)
		return err
	}
	logger.Info("created-policy", lager.Data{"id": policy.ID})
	return nil
}

// UpdatePolicy rewrites the policy row and replaces its suspension levels.
func (pdb *PolicySQLDB) UpdatePolicy(ctx context.Context, policy *models.Policy) error {
	if !policy.IsPersisted() {
		return models.InvalidArgumentf("policy %s has not been created", policy.MetricName())
	}
	if err := policy.Validate(); err != nil {
		return err
	}
	logger := pdb.logger.Session("update-policy", lager.Data{"id": policy.ID})
	now := pdb.now()
	policy.Touch(policy.ModifiedBy, now)

	row, err := newPolicyRow(policy)
	if err != nil {
		return err
	}
	err = pdb.transact(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE policy SET service = ?, name = ?, owner_names = ?, user_names = ?, sub_system = ?, trigger_type = ?, aggregator = ?, threshold = ?, time_unit = ?, default_value = ?, cron_entry = ?, modified_by = ?, modified_date = ? WHERE id = ?"),
			row.Service, row.Name, row.Owners, row.Users, row.SubSystem, row.TriggerType, row.Aggregator, row.Threshold, row.TimeUnit, row.DefaultValue, row.CronEntry,
			row.ModifiedBy, row.ModifiedDate, row.ID)
		if err != nil {
			return err
		}
		if updated, err := expectOneRow(result); err != nil || !updated {
			if err != nil {
				return err
			}
			return db.ErrDoesNotExist
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM suspension_level WHERE policy_id = ?"), policy.ID); err != nil {
			return err
		}
		for _, l := range policy.SuspensionLevels {
			l.ID = 0
			l.PolicyID = policy.ID
			l.Touch(policy.ModifiedBy, now)
			if err := insertSuspensionLevel(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("policy %s: %w", policy.MetricName(), db.ErrConflict)
		}
		logger.Error("failed-to-update-policy", err)
		return err
	}
	return nil
}

// FindPolicyByNameAndService returns nil when no such policy exists.
func (pdb *PolicySQLDB) FindPolicyByNameAndService(ctx context.Context, name, service string) (*models.Policy, error) {
	policies, err := pdb.findPolicies(ctx, "find-policy-by-name-and-service", "SELECT "+policyColumns+" FROM policy WHERE name = ? AND service = ?", name, service)
	if err != nil || len(policies) == 0 {
		return nil, err
	}
	return policies[0], nil
}

func (pdb *PolicySQLDB) FindPoliciesByService(ctx context.Context, service string) ([]*models.Policy, error) {
	return pdb.findPolicies(ctx, "find-policies-by-service", "SELECT "+policyColumns+" FROM policy WHERE service = ? ORDER BY id", service)
}

func (pdb *PolicySQLDB) FindPolicies(ctx context.Context) ([]*models.Policy, error) {
	return pdb.findPolicies(ctx, "find-policies", "SELECT "+policyColumns+" FROM policy ORDER BY id")
}

func (pdb *PolicySQLDB) DeletePolicy(ctx context.Context, id int64) error {
	logger := pdb.logger.Session("delete-policy", lager.Data{"id": id})
	err := pdb.transact(ctx, func(tx *sqlx.Tx) error {
		for _, stmt := range []string{
			"DELETE FROM infraction WHERE policy_id = ?",
			"DELETE FROM suspension_level WHERE policy_id = ?",
			"DELETE FROM policy WHERE id = ?",
		} {
			if _, err := tx.ExecContext(ctx, tx.Rebind(stmt), id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("failed-to-delete-policy", err)
		return err
	}
	logger.Info("deleted-policy")
	return nil
}

// SaveSuspensionLevel inserts the level, or updates it when it has an id.
func (pdb *PolicySQLDB) SaveSuspensionLevel(ctx context.Context, level *models.SuspensionLevel) error {
	if err := level.Validate(); err != nil {
		return err
	}
	now := pdb.now()
	level.Touch(level.ModifiedBy, now)
	err := pdb.transact(ctx, func(tx *sqlx.Tx) error {
		if !level.IsPersisted() {
			return insertSuspensionLevel(ctx, tx, level)
		}
		_, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE suspension_level SET level_number = ?, infraction_count = ?, suspension_time = ?, modified_by = ?, modified_date = ? WHERE id = ?"),
			level.LevelNumber, level.InfractionCount, level.SuspensionTime, level.ModifiedBy, level.ModifiedDate, level.ID)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("suspension level %d of policy %d: %w", level.LevelNumber, level.PolicyID, db.ErrAlreadyExists)
		}
		pdb.logger.Error("save-suspension-level", err, lager.Data{"policy-id": level.PolicyID})
	}
	return err
}

func (pdb *PolicySQLDB) FindSuspensionLevels(ctx context.Context, policyID int64) ([]*models.SuspensionLevel, error) {
	var levels []*models.SuspensionLevel
	err := pdb.sqldb.SelectContext(ctx, &levels,
		pdb.sqldb.Rebind("SELECT "+suspensionLevelColumns+" FROM suspension_level WHERE policy_id = ? ORDER BY level_number"), policyID)
	if err != nil {
		pdb.logger.Error("find-suspension-levels", err, lager.Data{"policy-id": policyID})
		return nil, err
	}
	return levels, nil
}

func (pdb *PolicySQLDB) FindInfractions(ctx context.Context, policyID int64, userName string) ([]*models.Infraction, error) {
	var infractions []*models.Infraction
	err := pdb.sqldb.SelectContext(ctx, &infractions,
		pdb.sqldb.Rebind("SELECT "+infractionColumns+" FROM infraction WHERE policy_id = ? AND user_name = ? ORDER BY infraction_timestamp"), policyID, userName)
	if err != nil {
		pdb.logger.Error("find-infractions", err, lager.Data{"policy-id": policyID, "user": userName})
		return nil, err
	}
	return infractions, nil
}

func (pdb *PolicySQLDB) FindInfractionsByUser(ctx context.Context, userName string) ([]*models.Infraction, error) {
	var infractions []*models.Infraction
	err := pdb.sqldb.SelectContext(ctx, &infractions,
		pdb.sqldb.Rebind("SELECT "+infractionColumns+" FROM infraction WHERE user_name = ? ORDER BY infraction_timestamp"), userName)
	if err != nil {
		pdb.logger.Error("find-infractions-by-user", err, lager.Data{"user": userName})
		return nil, err
	}
	return infractions, nil
}

// SaveInfraction inserts the infraction, or updates its expiration when it has an id.
func (pdb *PolicySQLDB) SaveInfraction(ctx context.Context, infraction *models.Infraction) error {
	if infraction.UserName == "" {
		return models.InvalidArgumentf("infraction user cannot be empty")
	}
	now := pdb.now()
	infraction.Touch(infraction.UserName, now)
	err := pdb.transact(ctx, func(tx *sqlx.Tx) error {
		if infraction.IsPersisted() {
			_, err := tx.ExecContext(ctx,
				tx.Rebind("UPDATE infraction SET infraction_timestamp = ?, expiration_timestamp = ?, modified_by = ?, modified_date = ? WHERE id = ?"),
				infraction.InfractionTimestamp, infraction.ExpirationTimestamp, infraction.ModifiedBy, infraction.ModifiedDate, infraction.ID)
			return err
		}
		id, err := insertReturningID(ctx, tx,
			"INSERT INTO infraction (policy_id, user_name, infraction_timestamp, expiration_timestamp, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			infraction.PolicyID, infraction.UserName, infraction.InfractionTimestamp, infraction.ExpirationTimestamp,
			infraction.CreatedBy, infraction.CreatedDate, infraction.ModifiedBy, infraction.ModifiedDate)
		if err != nil {
			return err
		}
		infraction.ID = id
		return nil
	})
	if err != nil {
		pdb.logger.Error("save-infraction", err, lager.Data{"policy-id": infraction.PolicyID, "user": infraction.UserName})
	}
	return err
}

func (pdb *PolicySQLDB) findPolicies(ctx context.Context, action, query string, args ...interface{}) ([]*models.Policy, error) {
	var rows []*policyRow
	err := pdb.sqldb.SelectContext(ctx, &rows, pdb.sqldb.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		pdb.logger.Error(action, err)
		return nil, err
	}
	policies := make([]*models.Policy, 0, len(rows))
	for _, r := range rows {
		p, err := r.toPolicy()
		if err != nil {
			pdb.logger.Error(action, err)
			return nil, err
		}
		if p.SuspensionLevels, err = pdb.FindSuspensionLevels(ctx, p.ID); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, nil
}

func insertSuspensionLevel(ctx context.Context, tx *sqlx.Tx, l *models.SuspensionLevel) error {
	id, err := insertReturningID(ctx, tx,
		"INSERT INTO suspension_level (policy_id, level_number, infraction_count, suspension_time, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		l.PolicyID, l.LevelNumber, l.InfractionCount, l.SuspensionTime, l.CreatedBy, l.CreatedDate, l.ModifiedBy, l.ModifiedDate)
	if err != nil {
		return err
	}
	l.ID = id
	return nil
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
