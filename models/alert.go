package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

type Alert struct {
	Entity
	Name                           string `db:"name"`
	Owner                          string `db:"owner"`
	Expression                     string `db:"expression"`
	CronEntry                      string `db:"cron_entry"`
	Enabled                        bool   `db:"enabled"`
	MissingDataNotificationEnabled bool   `db:"missing_data_notification_enabled"`
	Deleted                        bool   `db:"deleted"`
	Triggers                       []*Trigger
	Notifications                  []*Notification
}

// AlertMetadataFields are the columns loaded by metadata-only alert queries.
var AlertMetadataFields = []string{
	"id", "name", "owner", "cron_entry", "enabled", "missing_data_notification_enabled",
	"created_by", "created_date", "modified_by", "modified_date",
}

func NewAlert(owner, name, expression, cronEntry string, now int64) (*Alert, error) {
	a := &Alert{
		Entity:     NewEntity(owner, now),
		Name:       name,
		Owner:      owner,
		Expression: expression,
		CronEntry:  cronEntry,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Alert) Validate() error {
	if a.Name == "" {
		return InvalidArgumentf("alert name cannot be empty")
	}
	if a.Owner == "" {
		return InvalidArgumentf("alert owner cannot be empty")
	}
	if a.Expression == "" {
		return InvalidArgumentf("alert expression cannot be empty")
	}
	if _, err := ParseCronEntry(a.CronEntry); err != nil {
		return err
	}

	triggerNames := map[string]bool{}
	for _, t := range a.Triggers {
		if err := t.Validate(); err != nil {
			return err
		}
		if triggerNames[t.Name] {
			return InvalidArgumentf("duplicate trigger name %q in alert %q", t.Name, a.Name)
		}
		triggerNames[t.Name] = true
	}

	notificationNames := map[string]bool{}
	for _, n := range a.Notifications {
		if err := n.Validate(); err != nil {
			return err
		}
		if notificationNames[n.Name] {
			return InvalidArgumentf("duplicate notification name %q in alert %q", n.Name, a.Name)
		}
		notificationNames[n.Name] = true
		for _, t := range n.Triggers {
			if !a.hasTrigger(t) {
				return InvalidArgumentf("notification %q references trigger %q which does not belong to alert %q", n.Name, t.Name, a.Name)
			}
		}
	}
	return nil
}

func (a *Alert) hasTrigger(t *Trigger) bool {
	for _, candidate := range a.Triggers {
		if candidate == t || (t.ID != 0 && candidate.ID == t.ID) {
			return true
		}
	}
	return false
}

// SetTriggers replaces the triggers and points them at this alert.
func (a *Alert) SetTriggers(triggers []*Trigger) {
	a.Triggers = append([]*Trigger{}, triggers...)
	for _, t := range a.Triggers {
		t.AlertID = a.ID
	}
}

// SetNotifications replaces the notifications and points them at this alert.
func (a *Alert) SetNotifications(notifications []*Notification) {
	a.Notifications = append([]*Notification{}, notifications...)
	for _, n := range a.Notifications {
		n.AlertID = a.ID
	}
}

func (a *Alert) TriggerByID(id int64) *Trigger {
	for _, t := range a.Triggers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// IsDueAt reports whether the cron entry fires at the minute beginning at minuteStart (epoch ms).
func (a *Alert) IsDueAt(minuteStart int64) (bool, error) {
	schedule, err := ParseCronEntry(a.CronEntry)
	if err != nil {
		return false, err
	}
	start := time.UnixMilli(ToBeginOfMinute(minuteStart)).UTC()
	return !schedule.Next(start.Add(-time.Second)).After(start), nil
}

// ParseCronEntry parses a standard five field cron entry or a descriptor such as
// @hourly. Entries without an explicit CRON_TZ or TZ prefix are evaluated in UTC.
func ParseCronEntry(entry string) (cron.Schedule, error) {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return nil, InvalidArgumentf("cron entry cannot be empty")
	}
	if !strings.HasPrefix(entry, "CRON_TZ=") && !strings.HasPrefix(entry, "TZ=") {
		entry = "CRON_TZ=UTC " + entry
	}
	schedule, err := cron.ParseStandard(entry)
	if err != nil {
		return nil, InvalidArgumentf("invalid cron entry %q: %s", entry, err.Error())
	}
	return schedule, nil
}

type alertJson struct {
	ID                             string            `json:"id"`
	Name                           string            `json:"name"`
	Owner                          string            `json:"owner"`
	Expression                     string            `json:"expression"`
	CronEntry                      string            `json:"cronEntry"`
	Enabled                        bool              `json:"enabled"`
	MissingDataNotificationEnabled bool              `json:"missingDataNotificationEnabled"`
	Triggers                       []*Trigger        `json:"triggers"`
	Notifications                  []json.RawMessage `json:"notifications"`
}

func (a *Alert) MarshalJSON() ([]byte, error) {
	raw := alertJson{
		ID:                             strconv.FormatInt(a.ID, 10),
		Name:                           a.Name,
		Owner:                          a.Owner,
		Expression:                     a.Expression,
		CronEntry:                      a.CronEntry,
		Enabled:                        a.Enabled,
		MissingDataNotificationEnabled: a.MissingDataNotificationEnabled,
		Triggers:                       a.Triggers,
		Notifications:                  make([]json.RawMessage, 0, len(a.Notifications)),
	}
	if raw.Triggers == nil {
		raw.Triggers = []*Trigger{}
	}
	for _, n := range a.Notifications {
		data, err := n.MarshalJSON()
		if err != nil {
			return nil, err
		}
		raw.Notifications = append(raw.Notifications, data)
	}
	return json.Marshal(raw)
}

// UnmarshalJSON rebuilds the notification to trigger links from the flat trigger
// list. A notification naming a trigger id absent from the list is rejected.
func (a *Alert) UnmarshalJSON(data []byte) error {
	var raw alertJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: alert: %s", ErrInvalidJson, err.Error())
	}
	id, err := parseEntityID(raw.ID)
	if err != nil {
		return err
	}

	alert := Alert{
		Name:                           raw.Name,
		Owner:                          raw.Owner,
		Expression:                     raw.Expression,
		CronEntry:                      raw.CronEntry,
		Enabled:                        raw.Enabled,
		MissingDataNotificationEnabled: raw.MissingDataNotificationEnabled,
	}
	alert.ID = id
	triggersByID := make(map[int64]*Trigger, len(raw.Triggers))
	for _, t := range raw.Triggers {
		if t == nil {
			return InvalidArgumentf("alert %q has a null trigger", raw.Name)
		}
		if t.ID == 0 {
			continue
		}
		if _, ok := triggersByID[t.ID]; ok {
			return InvalidArgumentf("alert %q has duplicate trigger id %d", raw.Name, t.ID)
		}
		triggersByID[t.ID] = t
	}
	alert.SetTriggers(raw.Triggers)

	notifications := make([]*Notification, 0, len(raw.Notifications))
	for _, rawNotification := range raw.Notifications {
		wire, err := decodeNotification(rawNotification)
		if err != nil {
			return err
		}
		triggers := make([]*Trigger, 0, len(wire.triggerIDs))
		for _, triggerID := range wire.triggerIDs {
			t, ok := triggersByID[triggerID]
			if !ok {
				return InvalidArgumentf("notification %q references unknown trigger id %d", wire.notification.Name, triggerID)
			}
			triggers = append(triggers, t)
		}
		wire.notification.SetTriggers(triggers)
		notifications = append(notifications, wire.notification)
	}
	alert.SetNotifications(notifications)

	*a = alert
	return nil
}
