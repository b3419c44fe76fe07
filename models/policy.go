package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type Aggregator string

const (
	AggregatorMin    Aggregator = "MIN"
	AggregatorMax    Aggregator = "MAX"
	AggregatorSum    Aggregator = "SUM"
	AggregatorAvg    Aggregator = "AVG"
	AggregatorDev    Aggregator = "DEV"
	AggregatorZimSum Aggregator = "ZIMSUM"
	AggregatorMinMin Aggregator = "MINMIN"
	AggregatorMinMax Aggregator = "MINMAX"
)

var aggregators = []Aggregator{
	AggregatorMin, AggregatorMax, AggregatorSum, AggregatorAvg,
	AggregatorDev, AggregatorZimSum, AggregatorMinMin, AggregatorMinMax,
}

func ParseAggregator(name string) (Aggregator, error) {
	for _, a := range aggregators {
		if strings.EqualFold(string(a), name) {
			return a, nil
		}
	}
	return "", InvalidArgumentf("aggregator %q does not exist", name)
}

// Policy describes a monitored usage condition for a service. Service and Name
// together identify it.
type Policy struct {
	Entity
	Service          string
	Name             string
	Owners           []string
	Users            []string
	SubSystem        string
	TriggerType      TriggerType
	Aggregator       Aggregator
	Threshold        []float64
	TimeUnit         string
	DefaultValue     float64
	CronEntry        string
	SuspensionLevels []*SuspensionLevel
	Infractions      []*Infraction
}

var PolicyMetadataFields = []string{
	"id", "service", "name", "sub_system", "trigger_type", "aggregator", "time_unit", "cron_entry",
	"created_by", "created_date", "modified_by", "modified_date",
}

func (p *Policy) Validate() error {
	if p.Service == "" {
		return InvalidArgumentf("policy service cannot be empty")
	}
	if p.Name == "" {
		return InvalidArgumentf("policy name cannot be empty")
	}
	if len(p.Owners) == 0 {
		return InvalidArgumentf("policy %s must have at least one owner", p.MetricName())
	}
	if _, err := ParseTriggerType(string(p.TriggerType)); err != nil {
		return err
	}
	if _, err := ParseAggregator(string(p.Aggregator)); err != nil {
		return err
	}
	if len(p.Threshold) == 0 {
		return InvalidArgumentf("policy %s must have a threshold", p.MetricName())
	}
	if _, err := ParseCronEntry(p.CronEntry); err != nil {
		return err
	}
	levels := map[int]bool{}
	for _, l := range p.SuspensionLevels {
		if err := l.Validate(); err != nil {
			return err
		}
		if levels[l.LevelNumber] {
			return InvalidArgumentf("duplicate suspension level %d for policy %s", l.LevelNumber, p.MetricName())
		}
		levels[l.LevelNumber] = true
	}
	return nil
}

// MetricName is the name of the usage metric the policy is evaluated against.
func (p *Policy) MetricName() string {
	if p.SubSystem == "" {
		return fmt.Sprintf("%s:%s", p.Service, p.Name)
	}
	return fmt.Sprintf("%s.%s:%s", p.Service, p.SubSystem, p.Name)
}

var timeUnitMillis = map[string]int64{
	"s": 1000, "sec": 1000,
	"m": 60_000, "min": 60_000,
	"h": 3_600_000, "hr": 3_600_000,
	"d": 86_400_000,
	"w": 7 * 86_400_000,
}

// TimeUnitMillis parses TimeUnit such as "5m", "5min" or "1d". A bare number is
// taken as milliseconds.
func (p *Policy) TimeUnitMillis() (int64, error) {
	unit := strings.TrimSpace(p.TimeUnit)
	i := 0
	for i < len(unit) && unit[i] >= '0' && unit[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, InvalidArgumentf("time unit %q of policy %s is not valid", p.TimeUnit, p.MetricName())
	}
	digits, err := strconv.ParseInt(unit[:i], 10, 64)
	if err != nil {
		return 0, InvalidArgumentf("time unit %q of policy %s is not valid", p.TimeUnit, p.MetricName())
	}
	if i == len(unit) {
		return digits, nil
	}
	factor, ok := timeUnitMillis[strings.ToLower(unit[i:])]
	if !ok {
		return 0, InvalidArgumentf("time unit %q of policy %s is not valid", p.TimeUnit, p.MetricName())
	}
	return digits * factor, nil
}

// SortedSuspensionLevels returns the levels ordered by level number.
func (p *Policy) SortedSuspensionLevels() []*SuspensionLevel {
	levels := append([]*SuspensionLevel{}, p.SuspensionLevels...)
	sort.Slice(levels, func(i, j int) bool { return levels[i].LevelNumber < levels[j].LevelNumber })
	return levels
}

// SuspensionLadder maps each configured infraction count to its suspension time.
func (p *Policy) SuspensionLadder() map[int]int64 {
	ladder := make(map[int]int64, len(p.SuspensionLevels))
	for _, l := range p.SuspensionLevels {
		ladder[l.InfractionCount] = l.SuspensionTime
	}
	return ladder
}

// EvaluateValue compares value against the first threshold, and the second one
// for range trigger types.
func (p *Policy) EvaluateValue(value *float64) (bool, error) {
	if len(p.Threshold) == 0 {
		return false, InvalidArgumentf("policy %s has no threshold", p.MetricName())
	}
	var secondary *float64
	if len(p.Threshold) > 1 {
		secondary = &p.Threshold[1]
	}
	return Evaluate(p.TriggerType, p.Threshold[0], secondary, value)
}

type SuspensionLevel struct {
	Entity
	PolicyID        int64 `db:"policy_id"`
	LevelNumber     int   `db:"level_number"`
	InfractionCount int   `db:"infraction_count"`
	SuspensionTime  int64 `db:"suspension_time"`
}

func (l *SuspensionLevel) Validate() error {
	if l.LevelNumber <= 0 {
		return InvalidArgumentf("level must be greater than zero")
	}
	if l.InfractionCount <= 0 {
		return InvalidArgumentf("infraction count must be greater than zero")
	}
	if l.SuspensionTime < 0 && l.SuspensionTime != IndefiniteTimestamp {
		return InvalidArgumentf("suspension time must be positive or %d", IndefiniteTimestamp)
	}
	return nil
}

type Infraction struct {
	Entity
	PolicyID            int64  `db:"policy_id"`
	UserName            string `db:"user_name"`
	InfractionTimestamp int64  `db:"infraction_timestamp"`
	ExpirationTimestamp int64  `db:"expiration_timestamp"`
}

func (i *Infraction) IsSuspended(now int64) bool {
	return now < i.ExpirationTimestamp || i.IsSuspendedIndefinitely()
}

func (i *Infraction) IsSuspendedIndefinitely() bool {
	return i.ExpirationTimestamp == IndefiniteTimestamp
}

// CountInfractions counts infractions strictly inside (start, end).
func CountInfractions(infractions []*Infraction, start, end int64) int {
	count := 0
	for _, i := range infractions {
		if i.InfractionTimestamp > start && i.InfractionTimestamp < end {
			count++
		}
	}
	return count
}
