package models

import (
	"fmt"
	"strconv"
	"time"
)

// LockType selects a scheduling lock row. Its value is the row id.
type LockType int64

const (
	AlertScheduling        LockType = 1
	NotificationScheduling LockType = 2
)

func (t LockType) String() string {
	switch t {
	case AlertScheduling:
		return "ALERT_SCHEDULING"
	case NotificationScheduling:
		return "NOTIFICATION_SCHEDULING"
	default:
		return fmt.Sprintf("LockType(%d)", int64(t))
	}
}

// GlobalInterlock is a held cluster wide lock. The row's presence is the lock;
// LockTime doubles as the owner's handle.
type GlobalInterlock struct {
	ID       int64  `db:"id"`
	LockTime int64  `db:"lock_time"`
	IPAddr   string `db:"ipaddr"`
	Note     string `db:"note"`
}

func (l *GlobalInterlock) Key() string {
	return LockKey(l.LockTime)
}

// LockKey renders a lock time as lowercase hex.
func LockKey(lockTime int64) string {
	return strconv.FormatInt(lockTime, 16)
}

// DistributedSchedulingLock partitions an ordered job list into blocks that
// scheduler instances claim one at a time.
type DistributedSchedulingLock struct {
	ID                    int64 `db:"id"`
	JobCount              int64 `db:"job_count"`
	CurrentIndex          int64 `db:"current_index"`
	NextScheduleStartTime int64 `db:"next_schedule_start_time"`
	Version               int64 `db:"version"`
}

// ClaimedRange returns the half open job range [CurrentIndex-blockSize, CurrentIndex).
func (l *DistributedSchedulingLock) ClaimedRange(blockSize int64) (int64, int64) {
	return l.CurrentIndex - blockSize, l.CurrentIndex
}

// HasUnclaimedJobs reports whether another block may be claimed in the current window.
func (l *DistributedSchedulingLock) HasUnclaimedJobs(blockSize int64) bool {
	return l.CurrentIndex-blockSize < l.JobCount
}

func ToBeginOfMinute(millis int64) int64 {
	minute := time.Minute.Milliseconds()
	return millis - millis%minute
}
