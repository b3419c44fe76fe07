package schedule

import (
	"context"
	"sort"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/patrickmn/go-cache"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

const enabledAlertsKey = "enabled-alerts"

// DueAlertLister lists the enabled alerts due in the minute starting at minuteStart,
// ordered by id.
type DueAlertLister interface {
	DueAlerts(ctx context.Context, minuteStart int64) ([]*models.Alert, error)
}

// EnabledAlertCounter caches the enabled alert definitions for ttl and answers job
// counts for the scheduling lock from them.
type EnabledAlertCounter struct {
	logger lager.Logger
	source db.EnabledAlertSource
	cache  *cache.Cache
}

func NewEnabledAlertCounter(logger lager.Logger, source db.EnabledAlertSource, ttl time.Duration) *EnabledAlertCounter {
	return &EnabledAlertCounter{
		logger: logger.Session("enabled-alert-counter"),
		source: source,
		cache:  cache.New(ttl, 2*ttl),
	}
}

func (c *EnabledAlertCounter) EnabledAlerts(ctx context.Context) ([]*models.Alert, error) {
	if cached, found := c.cache.Get(enabledAlertsKey); found {
		return cached.([]*models.Alert), nil
	}
	alerts, err := c.source.FindEnabledAlerts(ctx)
	if err != nil {
		c.logger.Error("failed-to-find-enabled-alerts", err)
		return nil, err
	}
	sorted := append([]*models.Alert{}, alerts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	c.cache.SetDefault(enabledAlertsKey, sorted)
	return sorted, nil
}

func (c *EnabledAlertCounter) DueAlerts(ctx context.Context, minuteStart int64) ([]*models.Alert, error) {
	alerts, err := c.EnabledAlerts(ctx)
	if err != nil {
		return nil, err
	}
	due := []*models.Alert{}
	for _, a := range alerts {
		ok, err := a.IsDueAt(minuteStart)
		if err != nil {
			c.logger.Error("invalid-cron-entry", err, lager.Data{"alert-id": a.ID, "cron": a.CronEntry})
			continue
		}
		if ok {
			due = append(due, a)
		}
	}
	return due, nil
}

// CountEnabledJobs counts alerts due at since. Notification jobs are not
// scheduled through the lock and always count zero.
func (c *EnabledAlertCounter) CountEnabledJobs(ctx context.Context, lockType models.LockType, since int64) (int64, error) {
	if lockType != models.AlertScheduling {
		return 0, nil
	}
	due, err := c.DueAlerts(ctx, since)
	if err != nil {
		return 0, err
	}
	return int64(len(due)), nil
}

func (c *EnabledAlertCounter) Invalidate() {
	c.cache.Delete(enabledAlertsKey)
}
