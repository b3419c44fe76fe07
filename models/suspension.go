package models

import (
	"sort"
	"strings"
	"time"
)

// IndefiniteTimestamp marks a suspension or infraction that never expires.
const IndefiniteTimestamp int64 = -1

type SubSystem string

const (
	SubSystemPosting SubSystem = "POSTING"
	SubSystemAPI     SubSystem = "API"
)

var SubSystems = []SubSystem{SubSystemPosting, SubSystemAPI}

func ParseSubSystem(name string) (SubSystem, error) {
	for _, s := range SubSystems {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", InvalidArgumentf("sub-system %q does not exist", name)
}

// PrincipalUser is the subject of a suspension. Privileged users are never suspended.
type PrincipalUser struct {
	UserName   string
	Privileged bool
}

// SuspensionRecord tracks the infractions of one user in one subsystem.
type SuspensionRecord struct {
	Entity
	UserName          string    `db:"user_name"`
	SubSystem         SubSystem `db:"sub_system"`
	SuspendedUntil    int64     `db:"suspended_until"`
	InfractionHistory []int64   `db:"-"`
}

func NewSuspensionRecord(creator, userName string, subSystem SubSystem, infractionTimestamp int64, now int64) (*SuspensionRecord, error) {
	if userName == "" {
		return nil, InvalidArgumentf("user cannot be empty for a suspension record")
	}
	record := &SuspensionRecord{
		Entity:    NewEntity(creator, now),
		UserName:  userName,
		SubSystem: subSystem,
	}
	if err := record.AddInfraction(infractionTimestamp); err != nil {
		return nil, err
	}
	return record, nil
}

// AddInfraction appends a timestamp; it must be positive or IndefiniteTimestamp.
func (r *SuspensionRecord) AddInfraction(timestamp int64) error {
	if timestamp <= 0 && timestamp != IndefiniteTimestamp {
		return InvalidArgumentf("timestamp must be positive or %d", IndefiniteTimestamp)
	}
	r.InfractionHistory = append(r.InfractionHistory, timestamp)
	return nil
}

// CountSince counts infractions after start with no upper bound.
func (r *SuspensionRecord) CountSince(start int64) int {
	count := 0
	for _, ts := range r.InfractionHistory {
		if ts > start {
			count++
		}
	}
	return count
}

func (r *SuspensionRecord) IsSuspended(now int64) bool {
	return now < r.SuspendedUntil || r.IsSuspendedIndefinitely()
}

func (r *SuspensionRecord) IsSuspendedIndefinitely() bool {
	return r.SuspendedUntil == IndefiniteTimestamp
}

// CountRecordInfractions counts infractions after start across records, restricted
// to one subsystem unless subSystem is empty.
func CountRecordInfractions(records []*SuspensionRecord, subSystem SubSystem, start int64) int {
	count := 0
	for _, r := range records {
		if subSystem != "" && r.SubSystem != subSystem {
			continue
		}
		count += r.CountSince(start)
	}
	return count
}

// SubsystemSuspensionLevels maps an infraction count to a suspension time in ms.
type SubsystemSuspensionLevels struct {
	Entity
	SubSystem SubSystem
	Levels    map[int]int64
}

func DefaultSuspensionLevels(subSystem SubSystem) *SubsystemSuspensionLevels {
	hour := time.Hour.Milliseconds()
	return &SubsystemSuspensionLevels{
		SubSystem: subSystem,
		Levels: map[int]int64{
			1: hour,
			2: 10 * hour,
			3: 24 * hour,
			4: 3 * 24 * hour,
			5: 10 * 24 * hour,
		},
	}
}

// InfractionCounts returns the configured counts in ascending order.
func (s *SubsystemSuspensionLevels) InfractionCounts() []int {
	counts := make([]int, 0, len(s.Levels))
	for c := range s.Levels {
		counts = append(counts, c)
	}
	sort.Ints(counts)
	return counts
}
