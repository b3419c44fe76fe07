package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type TriggerType string

const (
	GreaterThan     TriggerType = "GREATER_THAN"
	GreaterThanOrEq TriggerType = "GREATER_THAN_OR_EQ"
	LessThan        TriggerType = "LESS_THAN"
	LessThanOrEq    TriggerType = "LESS_THAN_OR_EQ"
	Equal           TriggerType = "EQUAL"
	NotEqual        TriggerType = "NOT_EQUAL"
	Between         TriggerType = "BETWEEN"
	NotBetween      TriggerType = "NOT_BETWEEN"
	NoData          TriggerType = "NO_DATA"
)

var triggerTypes = []TriggerType{
	GreaterThan, GreaterThanOrEq, LessThan, LessThanOrEq, Equal, NotEqual, Between, NotBetween, NoData,
}

// ParseTriggerType matches case-insensitively.
func ParseTriggerType(name string) (TriggerType, error) {
	for _, t := range triggerTypes {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedTriggerType, name)
}

func (t TriggerType) needsSecondaryThreshold() bool {
	return t == Between || t == NotBetween
}

type Trigger struct {
	Entity
	AlertID            int64       `db:"alert_id"`
	Name               string      `db:"name"`
	Type               TriggerType `db:"type"`
	Threshold          float64     `db:"threshold"`
	SecondaryThreshold *float64    `db:"secondary_threshold"`
	Inertia            int64       `db:"inertia"`
}

func NewTrigger(alert *Alert, triggerType TriggerType, name string, threshold float64, inertia int64) (*Trigger, error) {
	return NewRangeTrigger(alert, triggerType, name, threshold, nil, inertia)
}

func NewRangeTrigger(alert *Alert, triggerType TriggerType, name string, threshold float64, secondary *float64, inertia int64) (*Trigger, error) {
	if alert == nil {
		return nil, InvalidArgumentf("the alert with which a trigger is associated cannot be nil")
	}
	t := &Trigger{
		Entity:             NewEntity(alert.Owner, alert.ModifiedDate),
		AlertID:            alert.ID,
		Name:               name,
		Type:               triggerType,
		Threshold:          threshold,
		SecondaryThreshold: secondary,
		Inertia:            inertia,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Trigger) Validate() error {
	if t.Name == "" {
		return InvalidArgumentf("trigger name cannot be empty")
	}
	if _, err := ParseTriggerType(string(t.Type)); err != nil {
		return err
	}
	if t.Type.needsSecondaryThreshold() && t.SecondaryThreshold == nil {
		return InvalidArgumentf("trigger %s of type %s requires a secondary threshold", t.Name, t.Type)
	}
	if t.Inertia < 0 {
		return InvalidArgumentf("inertia cannot be negative")
	}
	return nil
}

// Evaluate reports whether value breaches the trigger.
func (t *Trigger) Evaluate(value *float64) (bool, error) {
	if t == nil {
		return false, InvalidArgumentf("trigger cannot be nil")
	}
	return Evaluate(t.Type, t.Threshold, t.SecondaryThreshold, value)
}

// Evaluate compares value against the thresholds of a trigger type.
// BETWEEN is inclusive on both ends and NOT_BETWEEN is strict; the range bounds are
// the min and max of the two thresholds. Only NO_DATA accepts a nil value.
func Evaluate(triggerType TriggerType, threshold float64, secondary *float64, value *float64) (bool, error) {
	if triggerType == NoData {
		return value == nil, nil
	}
	if value == nil {
		return false, InvalidArgumentf("trigger cannot be evaluated against nil")
	}
	actual := *value

	switch triggerType {
	case GreaterThan:
		return actual > threshold, nil
	case GreaterThanOrEq:
		return actual >= threshold, nil
	case LessThan:
		return actual < threshold, nil
	case LessThanOrEq:
		return actual <= threshold, nil
	case Equal:
		return actual == threshold, nil
	case NotEqual:
		return actual != threshold, nil
	case Between, NotBetween:
		if secondary == nil {
			return false, InvalidArgumentf("%s requires a secondary threshold", triggerType)
		}
		low := math.Min(threshold, *secondary)
		high := math.Max(threshold, *secondary)
		if triggerType == Between {
			return actual >= low && actual <= high, nil
		}
		return actual < low || actual > high, nil
	default:
		return false, fmt.Errorf("%w: %s", ErrUnsupportedTriggerType, triggerType)
	}
}

type triggerJson struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Threshold          float64  `json:"threshold"`
	SecondaryThreshold *float64 `json:"secondaryThreshold,omitempty"`
	Inertia            *int64   `json:"inertia,omitempty"`
}

func (t *Trigger) MarshalJSON() ([]byte, error) {
	inertia := t.Inertia
	return json.Marshal(triggerJson{
		ID:                 strconv.FormatInt(t.ID, 10),
		Name:               t.Name,
		Type:               string(t.Type),
		Threshold:          t.Threshold,
		SecondaryThreshold: t.SecondaryThreshold,
		Inertia:            &inertia,
	})
}

func (t *Trigger) UnmarshalJSON(data []byte) error {
	var raw triggerJson
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: trigger: %s", ErrInvalidJson, err.Error())
	}
	id, err := parseEntityID(raw.ID)
	if err != nil {
		return err
	}
	triggerType, err := ParseTriggerType(raw.Type)
	if err != nil {
		return err
	}
	t.ID = id
	t.Name = raw.Name
	t.Type = triggerType
	t.Threshold = raw.Threshold
	t.SecondaryThreshold = raw.SecondaryThreshold
	t.Inertia = 0
	if raw.Inertia != nil {
		t.Inertia = *raw.Inertia
	}
	return nil
}

func parseEntityID(id string) (int64, error) {
	if id == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not numeric", ErrInvalidJson, id)
	}
	return parsed, nil
}
