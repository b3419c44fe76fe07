package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/jmoiron/sqlx"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

const (
	alertColumns        = "id, name, owner, expression, cron_entry, enabled, missing_data_notification_enabled, deleted, created_by, created_date, modified_by, modified_date"
	triggerColumns      = "id, alert_id, name, type, threshold, secondary_threshold, inertia, created_by, created_date, modified_by, modified_date"
	notificationColumns = "id, alert_id, name, notifier_name, cooldown_period, sr_actionable, severity_level, custom_text, created_by, created_date, modified_by, modified_date"
)

type queryer interface {
	sqlx.QueryerContext
	Rebind(query string) string
}

type AlertSQLDB struct {
	*sqlStore
}

func NewAlertSQLDB(dbConfig db.DatabaseConfig, logger lager.Logger, clk clock.Clock) (*AlertSQLDB, error) {
	store, err := openStore(dbConfig, "alert-db", logger.Session("alert-db"), clk)
	if err != nil {
		return nil, err
	}
	return &AlertSQLDB{sqlStore: store}, nil
}

// CreateAlert stores the alert with its triggers and notifications and fills in
// the generated ids.
func (adb *AlertSQLDB) CreateAlert(ctx context.Context, alert *models.Alert) error {
	if err := alert.Validate(); err != nil {
		return err
	}
	logger := adb.logger.Session("create-alert", lager.Data{"name": alert.Name, "owner": alert.Owner})
	now := adb.now()
	alert.Touch(alert.Owner, now)

	err := adb.transact(ctx, func(tx *sqlx.Tx) error {
		id, err := insertReturningID(ctx, tx,
			"INSERT INTO alert (name, owner, expression, cron_entry, enabled, missing_data_notification_enabled, deleted, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			alert.Name, alert.Owner, alert.Expression, alert.CronEntry, alert.Enabled, alert.MissingDataNotificationEnabled, false,
			alert.CreatedBy, alert.CreatedDate, alert.ModifiedBy, alert.ModifiedDate)
		if err != nil {
			return err
		}
		alert.ID = id
		for _, t := range alert.Triggers {
			t.AlertID = id
			t.Touch(alert.Owner, now)
			if err := insertTrigger(ctx, tx, t); err != nil {
				return err
			}
		}
		for _, n := range alert.Notifications {
			n.AlertID = id
			n.Touch(alert.Owner, now)
			if err := insertNotification(ctx, tx, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			logger.Info("alert-already-exists")
			return fmt.Errorf("alert %q of %q: %w", alert.Name, alert.Owner, db.ErrAlreadyExists)
		}
		logger.Error("failed-to-create-alert", err)
		return err
	}
	logger.Info("created-alert", lager.Data{"id": alert.ID})
	return nil
}

// UpdateAlert rewrites the alert row and reconciles its triggers and notifications.
// Children with an id are updated in place, new ones are inserted and missing ones
// are deleted along with their notification state.
func (adb *AlertSQLDB) UpdateAlert(ctx context.Context, alert *models.Alert) error {
	if !alert.IsPersisted() {
		return models.InvalidArgumentf("alert %q has not been created", alert.Name)
	}
	if err := alert.Validate(); err != nil {
		return err
	}
	logger := adb.logger.Session("update-alert", lager.Data{"id": alert.ID})
	now := adb.now()
	alert.Touch(alert.Owner, now)

	err := adb.transact(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE alert SET name = ?, owner = ?, expression = ?, cron_entry = ?, enabled = ?, missing_data_notification_enabled = ?, modified_by = ?, modified_date = ? WHERE id = ? AND deleted = ?"),
			alert.Name, alert.Owner, alert.Expression, alert.CronEntry, alert.Enabled, alert.MissingDataNotificationEnabled,
			alert.ModifiedBy, alert.ModifiedDate, alert.ID, false)
		if err != nil {
			return err
		}
		if updated, err := expectOneRow(result); err != nil || !updated {
			if err != nil {
				return err
			}
			return db.ErrDoesNotExist
		}

		if err := adb.reconcileTriggers(ctx, tx, alert, now); err != nil {
			return err
		}
		return adb.reconcileNotifications(ctx, tx, alert, now)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("alert %q of %q: %w", alert.Name, alert.Owner, db.ErrConflict)
		}
		logger.Error("failed-to-update-alert", err)
		return err
	}
	logger.Info("updated-alert")
	return nil
}

func (adb *AlertSQLDB) reconcileTriggers(ctx context.Context, tx *sqlx.Tx, alert *models.Alert, now int64) error {
	var existing []int64
	err := tx.SelectContext(ctx, &existing, tx.Rebind("SELECT id FROM alert_trigger WHERE alert_id = ?"), alert.ID)
	if err != nil {
		return err
	}
	kept := map[int64]bool{}
	for _, t := range alert.Triggers {
		t.AlertID = alert.ID
		t.Touch(alert.ModifiedBy, now)
		if !t.IsPersisted() {
			if err := insertTrigger(ctx, tx, t); err != nil {
				return err
			}
			continue
		}
		kept[t.ID] = true
		_, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE alert_trigger SET name = ?, type = ?, threshold = ?, secondary_threshold = ?, inertia = ?, modified_by = ?, modified_date = ? WHERE id = ? AND alert_id = ?"),
			t.Name, t.Type, t.Threshold, t.SecondaryThreshold, t.Inertia, t.ModifiedBy, t.ModifiedDate, t.ID, alert.ID)
		if err != nil {
			return err
		}
	}

	removed := missingIDs(existing, kept)
	if len(removed) == 0 {
		return nil
	}
	for _, stmt := range []string{
		"DELETE FROM notification_state WHERE trigger_id IN (?)",
		"DELETE FROM notification_trigger WHERE trigger_id IN (?)",
		"DELETE FROM alert_trigger WHERE id IN (?)",
	} {
		if err := execIn(ctx, tx, stmt, removed); err != nil {
			return err
		}
	}
	return nil
}

func (adb *AlertSQLDB) reconcileNotifications(ctx context.Context, tx *sqlx.Tx, alert *models.Alert, now int64) error {
	var existing []int64
	err := tx.SelectContext(ctx, &existing, tx.Rebind("SELECT id FROM notification WHERE alert_id = ?"), alert.ID)
	if err != nil {
		return err
	}
	kept := map[int64]bool{}
	for _, n := range alert.Notifications {
		n.AlertID = alert.ID
		n.Touch(alert.ModifiedBy, now)
		if !n.IsPersisted() {
			if err := insertNotification(ctx, tx, n); err != nil {
				return err
			}
			continue
		}
		kept[n.ID] = true
		_, err := tx.ExecContext(ctx,
			tx.Rebind("UPDATE notification SET name = ?, notifier_name = ?, cooldown_period = ?, sr_actionable = ?, severity_level = ?, custom_text = ?, modified_by = ?, modified_date = ? WHERE id = ? AND alert_id = ?"),
			n.Name, n.NotifierName, n.CooldownPeriod, n.SRActionable, n.SeverityLevel, n.CustomText, n.ModifiedBy, n.ModifiedDate, n.ID, alert.ID)
		if err != nil {
			return err
		}
		if err := deleteNotificationChildren(ctx, tx, []int64{n.ID}, false); err != nil {
			return err
		}
		if err := insertNotificationChildren(ctx, tx, n); err != nil {
			return err
		}
	}

	removed := missingIDs(existing, kept)
	if len(removed) == 0 {
		return nil
	}
	if err := deleteNotificationChildren(ctx, tx, removed, true); err != nil {
		return err
	}
	return execIn(ctx, tx, "DELETE FROM notification WHERE id IN (?)", removed)
}

// FindAlertByID returns nil when no alert has the id.
func (adb *AlertSQLDB) FindAlertByID(ctx context.Context, id int64) (*models.Alert, error) {
	return adb.findOne(ctx, "find-alert-by-id", "SELECT "+alertColumns+" FROM alert WHERE id = ?", id)
}

func (adb *AlertSQLDB) FindAlertByNameAndOwner(ctx context.Context, name, owner string) (*models.Alert, error) {
	return adb.findOne(ctx, "find-alert-by-name-and-owner", "SELECT "+alertColumns+" FROM alert WHERE name = ? AND owner = ? AND deleted = ?", name, owner, false)
}

func (adb *AlertSQLDB) FindAlertsByOwner(ctx context.Context, owner string) ([]*models.Alert, error) {
	return adb.findMany(ctx, "find-alerts-by-owner", true, "SELECT "+alertColumns+" FROM alert WHERE owner = ? AND deleted = ? ORDER BY id", owner, false)
}

func (adb *AlertSQLDB) FindAlertsByNamePrefix(ctx context.Context, prefix string) ([]*models.Alert, error) {
	if prefix == "" {
		return nil, models.InvalidArgumentf("name prefix cannot be empty")
	}
	return adb.findMany(ctx, "find-alerts-by-name-prefix", true, "SELECT "+alertColumns+" FROM alert WHERE name LIKE ? AND deleted = ? ORDER BY id", prefix+"%", false)
}

// FindAlertsMeta loads the alert rows of owner without expressions or children.
func (adb *AlertSQLDB) FindAlertsMeta(ctx context.Context, owner string) ([]*models.Alert, error) {
	query := "SELECT " + strings.Join(models.AlertMetadataFields, ", ") + " FROM alert WHERE owner = ? AND deleted = ? ORDER BY id"
	return adb.findMany(ctx, "find-alerts-meta", false, query, owner, false)
}

func (adb *AlertSQLDB) FindEnabledAlerts(ctx context.Context) ([]*models.Alert, error) {
	return adb.findMany(ctx, "find-enabled-alerts", true, "SELECT "+alertColumns+" FROM alert WHERE enabled = ? AND deleted = ? ORDER BY id", true, false)
}

func (adb *AlertSQLDB) FindAlertIDsByStatus(ctx context.Context, enabled bool) ([]int64, error) {
	var ids []int64
	err := adb.sqldb.SelectContext(ctx, &ids, adb.sqldb.Rebind("SELECT id FROM alert WHERE enabled = ? AND deleted = ? ORDER BY id"), enabled, false)
	if err != nil {
		adb.logger.Error("find-alert-ids-by-status", err, lager.Data{"enabled": enabled})
		return nil, err
	}
	return ids, nil
}

func (adb *AlertSQLDB) FindAlertsPageByStatus(ctx context.Context, enabled bool, limit, offset int) ([]*models.Alert, error) {
	if limit <= 0 || offset < 0 {
		return nil, models.InvalidArgumentf("invalid page limit %d offset %d", limit, offset)
	}
	return adb.findMany(ctx, "find-alerts-page-by-status", true,
		"SELECT "+alertColumns+" FROM alert WHERE enabled = ? AND deleted = ? ORDER BY id LIMIT ? OFFSET ?", enabled, false, limit, offset)
}

func (adb *AlertSQLDB) CountAlertsByStatus(ctx context.Context, enabled bool) (int64, error) {
	var count int64
	err := adb.sqldb.GetContext(ctx, &count, adb.sqldb.Rebind("SELECT COUNT(*) FROM alert WHERE enabled = ? AND deleted = ?"), enabled, false)
	if err != nil {
		adb.logger.Error("count-alerts-by-status", err, lager.Data{"enabled": enabled})
		return 0, err
	}
	return count, nil
}

func (adb *AlertSQLDB) SetAlertEnabled(ctx context.Context, id int64, enabled bool) error {
	result, err := adb.sqldb.ExecContext(ctx,
		adb.sqldb.Rebind("UPDATE alert SET enabled = ?, modified_date = ? WHERE id = ? AND deleted = ?"),
		enabled, adb.now(), id, false)
	if err != nil {
		adb.logger.Error("set-alert-enabled", err, lager.Data{"id": id})
		return err
	}
	if updated, err := expectOneRow(result); err != nil || !updated {
		if err != nil {
			return err
		}
		return db.ErrDoesNotExist
	}
	return nil
}

// MarkAlertDeleted disables the alert and renames it so the name can be reused
// before the row is purged.
func (adb *AlertSQLDB) MarkAlertDeleted(ctx context.Context, id int64) error {
	logger := adb.logger.Session("mark-alert-deleted", lager.Data{"id": id})
	now := adb.now()
	err := adb.transact(ctx, func(tx *sqlx.Tx) error {
		var name string
		err := tx.GetContext(ctx, &name, tx.Rebind("SELECT name FROM alert WHERE id = ? AND deleted = ?"), id, false)
		if errors.Is(err, sql.ErrNoRows) {
			return db.ErrDoesNotExist
		}
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			tx.Rebind("UPDATE alert SET name = ?, enabled = ?, deleted = ?, modified_date = ? WHERE id = ?"),
			fmt.Sprintf("%s-%d", name, now), false, true, now, id)
		return err
	})
	if err != nil {
		logger.Error("failed-to-mark-alert-deleted", err)
		return err
	}
	logger.Info("marked-alert-deleted")
	return nil
}

// DeleteAlert removes the alert and everything that hangs off it.
func (adb *AlertSQLDB) DeleteAlert(ctx context.Context, id int64) error {
	logger := adb.logger.Session("delete-alert", lager.Data{"id": id})
	err := adb.transact(ctx, func(tx *sqlx.Tx) error {
		var notificationIDs []int64
		err := tx.SelectContext(ctx, &notificationIDs, tx.Rebind("SELECT id FROM notification WHERE alert_id = ?"), id)
		if err != nil {
			return err
		}
		if len(notificationIDs) > 0 {
			if err := deleteNotificationChildren(ctx, tx, notificationIDs, true); err != nil {
				return err
			}
		}
		for _, stmt := range []string{
			"DELETE FROM notification WHERE alert_id = ?",
			"DELETE FROM alert_trigger WHERE alert_id = ?",
			"DELETE FROM alert WHERE id = ?",
		} {
			if _, err := tx.ExecContext(ctx, tx.Rebind(stmt), id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("failed-to-delete-alert", err)
		return err
	}
	logger.Info("deleted-alert")
	return nil
}

type notificationStateRow struct {
	NotificationID     int64         `db:"notification_id"`
	TriggerID          int64         `db:"trigger_id"`
	MetricHash         int64         `db:"metric_hash"`
	CooldownExpiration sql.NullInt64 `db:"cooldown_expiration"`
	Active             sql.NullBool  `db:"active"`
}

// LoadNotificationState replaces the in-memory cooldown and active state of each
// persisted notification with what is stored.
func (adb *AlertSQLDB) LoadNotificationState(ctx context.Context, notifications []*models.Notification) error {
	byID := map[int64]*models.Notification{}
	ids := []int64{}
	for _, n := range notifications {
		if !n.IsPersisted() {
			continue
		}
		n.ResetState()
		byID[n.ID] = n
		ids = append(ids, n.ID)
	}
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sqlx.In("SELECT notification_id, trigger_id, metric_hash, cooldown_expiration, active FROM notification_state WHERE notification_id IN (?)", ids)
	if err != nil {
		return err
	}
	var rows []notificationStateRow
	err = adb.sqldb.SelectContext(ctx, &rows, adb.sqldb.Rebind(query), args...)
	if err != nil {
		adb.logger.Error("load-notification-state", err)
		return err
	}
	for _, row := range rows {
		n := byID[row.NotificationID]
		key := models.NotificationStateKey{TriggerID: row.TriggerID, MetricHash: uint64(row.MetricHash)}
		if row.CooldownExpiration.Valid {
			n.SetCooldownExpirationByKey(key, row.CooldownExpiration.Int64)
		}
		if row.Active.Valid {
			n.SetActiveByKey(key, row.Active.Bool)
		}
	}
	return nil
}

// SaveNotificationState overwrites the stored state of each persisted notification.
func (adb *AlertSQLDB) SaveNotificationState(ctx context.Context, notifications []*models.Notification) error {
	err := adb.transact(ctx, func(tx *sqlx.Tx) error {
		for _, n := range notifications {
			if !n.IsPersisted() {
				continue
			}
			if _, err := tx.ExecContext(ctx, tx.Rebind("DELETE FROM notification_state WHERE notification_id = ?"), n.ID); err != nil {
				return err
			}
			rows := map[models.NotificationStateKey]*notificationStateRow{}
			row := func(key models.NotificationStateKey) *notificationStateRow {
				r, ok := rows[key]
				if !ok {
					r = &notificationStateRow{NotificationID: n.ID, TriggerID: key.TriggerID, MetricHash: int64(key.MetricHash)}
					rows[key] = r
				}
				return r
			}
			for key, expiration := range n.CooldownExpirations() {
				row(key).CooldownExpiration = sql.NullInt64{Int64: expiration, Valid: true}
			}
			for key, active := range n.ActiveStatuses() {
				row(key).Active = sql.NullBool{Bool: active, Valid: true}
			}
			for _, r := range rows {
				_, err := tx.ExecContext(ctx,
					tx.Rebind("INSERT INTO notification_state (notification_id, trigger_id, metric_hash, cooldown_expiration, active) VALUES (?, ?, ?, ?, ?)"),
					r.NotificationID, r.TriggerID, r.MetricHash, r.CooldownExpiration, r.Active)
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		adb.logger.Error("save-notification-state", err)
	}
	return err
}

func (adb *AlertSQLDB) findOne(ctx context.Context, action, query string, args ...interface{}) (*models.Alert, error) {
	alert := &models.Alert{}
	err := adb.sqldb.GetContext(ctx, alert, adb.sqldb.Rebind(query), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		adb.logger.Error(action, err)
		return nil, err
	}
	if err := loadAlertChildren(ctx, adb.sqldb, []*models.Alert{alert}); err != nil {
		adb.logger.Error(action, err)
		return nil, err
	}
	return alert, nil
}

func (adb *AlertSQLDB) findMany(ctx context.Context, action string, withChildren bool, query string, args ...interface{}) ([]*models.Alert, error) {
	var alerts []*models.Alert
	err := adb.sqldb.SelectContext(ctx, &alerts, adb.sqldb.Rebind(query), args...)
	if err != nil {
		adb.logger.Error(action, err)
		return nil, err
	}
	if withChildren {
		if err := loadAlertChildren(ctx, adb.sqldb, alerts); err != nil {
			adb.logger.Error(action, err)
			return nil, err
		}
	}
	return alerts, nil
}

type orderedValue struct {
	NotificationID int64  `db:"notification_id"`
	Value          string `db:"value"`
}

type triggerLink struct {
	NotificationID int64 `db:"notification_id"`
	TriggerID      int64 `db:"trigger_id"`
}

func loadAlertChildren(ctx context.Context, q queryer, alerts []*models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}
	alertsByID := make(map[int64]*models.Alert, len(alerts))
	alertIDs := make([]int64, 0, len(alerts))
	for _, a := range alerts {
		alertsByID[a.ID] = a
		alertIDs = append(alertIDs, a.ID)
	}

	var triggers []*models.Trigger
	if err := selectIn(ctx, q, &triggers, "SELECT "+triggerColumns+" FROM alert_trigger WHERE alert_id IN (?) ORDER BY id", alertIDs); err != nil {
		return err
	}
	for _, t := range triggers {
		a := alertsByID[t.AlertID]
		a.Triggers = append(a.Triggers, t)
	}

	var notifications []*models.Notification
	if err := selectIn(ctx, q, &notifications, "SELECT "+notificationColumns+" FROM notification WHERE alert_id IN (?) ORDER BY id", alertIDs); err != nil {
		return err
	}
	if len(notifications) == 0 {
		return nil
	}
	notificationsByID := make(map[int64]*models.Notification, len(notifications))
	notificationIDs := make([]int64, 0, len(notifications))
	for _, n := range notifications {
		a := alertsByID[n.AlertID]
		a.Notifications = append(a.Notifications, n)
		n.Subscriptions = []string{}
		n.MetricsToAnnotate = []string{}
		notificationsByID[n.ID] = n
		notificationIDs = append(notificationIDs, n.ID)
	}

	var subscriptions []orderedValue
	if err := selectIn(ctx, q, &subscriptions, "SELECT notification_id, subscription AS value FROM notification_subscription WHERE notification_id IN (?) ORDER BY notification_id, seq", notificationIDs); err != nil {
		return err
	}
	for _, s := range subscriptions {
		n := notificationsByID[s.NotificationID]
		n.Subscriptions = append(n.Subscriptions, s.Value)
	}

	var annotations []orderedValue
	if err := selectIn(ctx, q, &annotations, "SELECT notification_id, metric AS value FROM notification_metric_annotation WHERE notification_id IN (?) ORDER BY notification_id, seq", notificationIDs); err != nil {
		return err
	}
	for _, m := range annotations {
		n := notificationsByID[m.NotificationID]
		n.MetricsToAnnotate = append(n.MetricsToAnnotate, m.Value)
	}

	var links []triggerLink
	if err := selectIn(ctx, q, &links, "SELECT notification_id, trigger_id FROM notification_trigger WHERE notification_id IN (?) ORDER BY notification_id, seq", notificationIDs); err != nil {
		return err
	}
	for _, l := range links {
		n := notificationsByID[l.NotificationID]
		if t := alertsByID[n.AlertID].TriggerByID(l.TriggerID); t != nil {
			n.Triggers = append(n.Triggers, t)
		}
	}
	return nil
}

func insertTrigger(ctx context.Context, tx *sqlx.Tx, t *models.Trigger) error {
	id, err := insertReturningID(ctx, tx,
		"INSERT INTO alert_trigger (alert_id, name, type, threshold, secondary_threshold, inertia, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		t.AlertID, t.Name, t.Type, t.Threshold, t.SecondaryThreshold, t.Inertia, t.CreatedBy, t.CreatedDate, t.ModifiedBy, t.ModifiedDate)
	if err != nil {
		return err
	}
	t.ID = id
	return nil
}

func insertNotification(ctx context.Context, tx *sqlx.Tx, n *models.Notification) error {
	id, err := insertReturningID(ctx, tx,
		"INSERT INTO notification (alert_id, name, notifier_name, cooldown_period, sr_actionable, severity_level, custom_text, created_by, created_date, modified_by, modified_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		n.AlertID, n.Name, n.NotifierName, n.CooldownPeriod, n.SRActionable, n.SeverityLevel, n.CustomText, n.CreatedBy, n.CreatedDate, n.ModifiedBy, n.ModifiedDate)
	if err != nil {
		return err
	}
	n.ID = id
	return insertNotificationChildren(ctx, tx, n)
}

func insertNotificationChildren(ctx context.Context, tx *sqlx.Tx, n *models.Notification) error {
	for i, s := range n.Subscriptions {
		_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO notification_subscription (notification_id, seq, subscription) VALUES (?, ?, ?)"), n.ID, i, s)
		if err != nil {
			return err
		}
	}
	for i, m := range n.MetricsToAnnotate {
		_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO notification_metric_annotation (notification_id, seq, metric) VALUES (?, ?, ?)"), n.ID, i, m)
		if err != nil {
			return err
		}
	}
	for i, t := range n.Triggers {
		if !t.IsPersisted() {
			return models.InvalidArgumentf("notification %q references unsaved trigger %q", n.Name, t.Name)
		}
		_, err := tx.ExecContext(ctx, tx.Rebind("INSERT INTO notification_trigger (notification_id, trigger_id, seq) VALUES (?, ?, ?)"), n.ID, t.ID, i)
		if err != nil {
			return err
		}
	}
	return nil
}

// deleteNotificationChildren clears the list tables of the notifications, and
// their stored state when withState is set.
func deleteNotificationChildren(ctx context.Context, tx *sqlx.Tx, notificationIDs []int64, withState bool) error {
	stmts := []string{
		"DELETE FROM notification_subscription WHERE notification_id IN (?)",
		"DELETE FROM notification_metric_annotation WHERE notification_id IN (?)",
		"DELETE FROM notification_trigger WHERE notification_id IN (?)",
	}
	if withState {
		stmts = append(stmts, "DELETE FROM notification_state WHERE notification_id IN (?)")
	}
	for _, stmt := range stmts {
		if err := execIn(ctx, tx, stmt, notificationIDs); err != nil {
			return err
		}
	}
	return nil
}

func selectIn(ctx context.Context, q queryer, dest interface{}, query string, ids []int64) error {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, q, dest, q.Rebind(query), args...)
}

func execIn(ctx context.Context, tx *sqlx.Tx, query string, ids []int64) error {
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(query), args...)
	return err
}

func missingIDs(all []int64, kept map[int64]bool) []int64 {
	var missing []int64
	for _, id := range all {
		if !kept[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
