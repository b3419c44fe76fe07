package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	MinSeverityLevel     = 1
	MaxSeverityLevel     = 5
	DefaultSeverityLevel = MaxSeverityLevel
)

// NotificationStateKey identifies one (trigger, metric) pair whose cooldown and
// active state a notification tracks. Unsaved triggers use TriggerID 0.
type NotificationStateKey struct {
	TriggerID  int64
	MetricHash uint64
}

func NewNotificationStateKey(trigger *Trigger, metric *Metric) (NotificationStateKey, error) {
	if trigger == nil {
		return NotificationStateKey{}, InvalidArgumentf("trigger cannot be nil")
	}
	if metric == nil {
		return NotificationStateKey{}, InvalidArgumentf("metric cannot be nil")
	}
	return NotificationStateKey{TriggerID: trigger.ID, MetricHash: metric.IdentityHash()}, nil
}

type Notification struct {
	Entity
	AlertID           int64    `db:"alert_id"`
	Name              string   `db:"name"`
	NotifierName      string   `db:"notifier_name"`
	Subscriptions     []string `db:"-"`
	MetricsToAnnotate []string `db:"-"`
	CooldownPeriod    int64    `db:"cooldown_period"`
	SRActionable      bool     `db:"sr_actionable"`
	SeverityLevel     int      `db:"severity_level"`
	CustomText        string   `db:"custom_text"`
	Triggers          []*Trigger

	cooldownExpirations map[NotificationStateKey]int64
	activeStatuses      map[NotificationStateKey]bool
}

func NewNotification(name string, alert *Alert, notifierName string, subscriptions []string, cooldownPeriod int64) (*Notification, error) {
	if alert == nil {
		return nil, InvalidArgumentf("the alert with which the notification is associated cannot be nil")
	}
	n := &Notification{
		Entity:        NewEntity(alert.Owner, alert.ModifiedDate),
		AlertID:       alert.ID,
		Name:          name,
		NotifierName:  notifierName,
		SeverityLevel: DefaultSeverityLevel,
	}
	n.SetSubscriptions(subscriptions)
	if err := n.SetCooldownPeriod(cooldownPeriod); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Notification) Validate() error {
	if n.Name == "" {
		return InvalidArgumentf("notification name cannot be empty")
	}
	if n.CooldownPeriod < 0 {
		return InvalidArgumentf("cool down period cannot be negative")
	}
	if n.SeverityLevel < MinSeverityLevel || n.SeverityLevel > MaxSeverityLevel {
		return InvalidArgumentf("severity level must be between %d and %d, got %d", MinSeverityLevel, MaxSeverityLevel, n.SeverityLevel)
	}
	for _, m := range n.MetricsToAnnotate {
		if ParseMetricToAnnotate(m) == nil {
			return InvalidArgumentf("metrics to annotate should be of the form 'scope:metric[{[tagk=tagv]+}]', got %q", m)
		}
	}
	return nil
}

func (n *Notification) SetCooldownPeriod(period int64) error {
	if period < 0 {
		return InvalidArgumentf("cool down period cannot be negative")
	}
	n.CooldownPeriod = period
	return nil
}

func (n *Notification) SetSeverityLevel(level int) error {
	if level < MinSeverityLevel || level > MaxSeverityLevel {
		return InvalidArgumentf("severity level must be between %d and %d, got %d", MinSeverityLevel, MaxSeverityLevel, level)
	}
	n.SeverityLevel = level
	return nil
}

func (n *Notification) SetSubscriptions(subscriptions []string) {
	n.Subscriptions = append([]string{}, subscriptions...)
}

// SetMetricsToAnnotate replaces the list, rejecting it entirely if any entry does not parse.
func (n *Notification) SetMetricsToAnnotate(metrics []string) error {
	for _, m := range metrics {
		if ParseMetricToAnnotate(m) == nil {
			return InvalidArgumentf("metrics to annotate should be of the form 'scope:metric[{[tagk=tagv]+}]', got %q", m)
		}
	}
	n.MetricsToAnnotate = append([]string{}, metrics...)
	return nil
}

func (n *Notification) SetTriggers(triggers []*Trigger) {
	n.Triggers = append([]*Trigger{}, triggers...)
}

// CooldownExpiration returns 0 when no expiration has been recorded.
func (n *Notification) CooldownExpiration(trigger *Trigger, metric *Metric) (int64, error) {
	key, err := NewNotificationStateKey(trigger, metric)
	if err != nil {
		return 0, err
	}
	return n.cooldownExpirations[key], nil
}

func (n *Notification) SetCooldownExpiration(trigger *Trigger, metric *Metric, expiration int64) error {
	if expiration < 0 {
		return InvalidArgumentf("cool down expiration time cannot be negative")
	}
	key, err := NewNotificationStateKey(trigger, metric)
	if err != nil {
		return err
	}
	n.SetCooldownExpirationByKey(key, expiration)
	return nil
}

// OnCooldown is true while the recorded expiration is at or after now.
func (n *Notification) OnCooldown(trigger *Trigger, metric *Metric, now int64) (bool, error) {
	expiration, err := n.CooldownExpiration(trigger, metric)
	if err != nil {
		return false, err
	}
	return expiration >= now, nil
}

func (n *Notification) IsActive(trigger *Trigger, metric *Metric) (bool, error) {
	key, err := NewNotificationStateKey(trigger, metric)
	if err != nil {
		return false, err
	}
	return n.activeStatuses[key], nil
}

func (n *Notification) SetActive(trigger *Trigger, metric *Metric, active bool) error {
	key, err := NewNotificationStateKey(trigger, metric)
	if err != nil {
		return err
	}
	n.SetActiveByKey(key, active)
	return nil
}

func (n *Notification) SetCooldownExpirationByKey(key NotificationStateKey, expiration int64) {
	if n.cooldownExpirations == nil {
		n.cooldownExpirations = map[NotificationStateKey]int64{}
	}
	n.cooldownExpirations[key] = expiration
}

func (n *Notification) SetActiveByKey(key NotificationStateKey, active bool) {
	if n.activeStatuses == nil {
		n.activeStatuses = map[NotificationStateKey]bool{}
	}
	n.activeStatuses[key] = active
}

// CooldownExpirations returns a copy of the cooldown map.
func (n *Notification) CooldownExpirations() map[NotificationStateKey]int64 {
	out := make(map[NotificationStateKey]int64, len(n.cooldownExpirations))
	for k, v := range n.cooldownExpirations {
		out[k] = v
	}
	return out
}

// ActiveStatuses returns a copy of the active-status map.
func (n *Notification) ActiveStatuses() map[NotificationStateKey]bool {
	out := make(map[NotificationStateKey]bool, len(n.activeStatuses))
	for k, v := range n.activeStatuses {
		out[k] = v
	}
	return out
}

// ResetState drops all cooldown and active-status entries.
func (n *Notification) ResetState() {
	n.cooldownExpirations = nil
	n.activeStatuses = nil
}

// The state maps are not part of the wire format.
type notificationJson struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	NotifierName      string   `json:"notifier"`
	CooldownPeriod    int64    `json:"cooldownPeriod"`
	SRActionable      bool     `json:"srActionable"`
	SeverityLevel     int      `json:"severityLevel"`
	CustomText        *string  `json:"customText,omitempty"`
	Subscriptions     []string `json:"subscriptions"`
	MetricsToAnnotate []string `json:"metricsToAnnotate"`
	Triggers          []string `json:"triggers"`
}

func (n *Notification) MarshalJSON() ([]byte, error) {
	raw := notificationJson{
		ID:                strconv.FormatInt(n.ID, 10),
		Name:              n.Name,
		NotifierName:      n.NotifierName,
		CooldownPeriod:    n.CooldownPeriod,
		SRActionable:      n.SRActionable,
		SeverityLevel:     n.SeverityLevel,
		Subscriptions:     nonNil(n.Subscriptions),
		MetricsToAnnotate: nonNil(n.MetricsToAnnotate),
		Triggers:          make([]string, 0, len(n.Triggers)),
	}
	if n.CustomText != "" {
		text := n.CustomText
		raw.CustomText = &text
	}
	for _, t := range n.Triggers {
		raw.Triggers = append(raw.Triggers, strconv.FormatInt(t.ID, 10))
	}
	return json.Marshal(raw)
}

// notificationWire keeps the trigger ids of a decoded notification until its alert
// resolves them against the alert's trigger list.
type notificationWire struct {
	notification *Notification
	triggerIDs   []int64
}

func decodeNotification(data []byte) (*notificationWire, error) {
	var raw notificationJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: notification: %s", ErrInvalidJson, err.Error())
	}
	id, err := parseEntityID(raw.ID)
	if err != nil {
		return nil, err
	}
	n := &Notification{
		Name:           raw.Name,
		NotifierName:   raw.NotifierName,
		CooldownPeriod: raw.CooldownPeriod,
		SRActionable:   raw.SRActionable,
		SeverityLevel:  raw.SeverityLevel,
		Subscriptions:  raw.Subscriptions,
	}
	n.ID = id
	if n.SeverityLevel == 0 {
		n.SeverityLevel = DefaultSeverityLevel
	}
	if raw.CustomText != nil {
		n.CustomText = *raw.CustomText
	}
	if err := n.SetMetricsToAnnotate(raw.MetricsToAnnotate); err != nil {
		return nil, err
	}

	wire := &notificationWire{notification: n}
	for _, triggerID := range raw.Triggers {
		parsed, err := parseEntityID(triggerID)
		if err != nil {
			return nil, err
		}
		wire.triggerIDs = append(wire.triggerIDs, parsed)
	}
	return wire, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
