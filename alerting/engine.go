package alerting

import (
	"context"
	"sync"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	circuit "github.com/rubyist/circuitbreaker"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

// AlertProcessor evaluates a batch of alerts and dispatches their notifications.
type AlertProcessor interface {
	Process(ctx context.Context, alerts []*models.Alert) ProcessResult
}

type ProcessResult struct {
	Evaluated int
	Failed    int
	Sent      int
}

type Engine struct {
	logger          lager.Logger
	clock           clock.Clock
	querier         MetricQuerier
	stateDB         db.NotificationStateDB
	notifiers       map[string]Notifier
	defaultNotifier Notifier
	breakerFailures int64

	breakers    map[int64]*circuit.Breaker
	breakerLock sync.Mutex
}

// NewEngine builds an engine. Notifications are routed by NotifierName to
// notifiers, falling back to defaultNotifier. A breakerFailures of zero disables
// the per-alert circuit breakers.
func NewEngine(logger lager.Logger, clk clock.Clock, querier MetricQuerier, stateDB db.NotificationStateDB,
	notifiers map[string]Notifier, defaultNotifier Notifier, breakerFailures int64) *Engine {
	return &Engine{
		logger:          logger.Session("engine"),
		clock:           clk,
		querier:         querier,
		stateDB:         stateDB,
		notifiers:       notifiers,
		defaultNotifier: defaultNotifier,
		breakerFailures: breakerFailures,
		breakers:        map[int64]*circuit.Breaker{},
	}
}

// Process evaluates a batch of alerts. The notification state of the whole batch
// is loaded in one round trip before any alert is evaluated.
func (e *Engine) Process(ctx context.Context, alerts []*models.Alert) ProcessResult {
	result := ProcessResult{}
	if len(alerts) == 0 || ctx.Err() != nil {
		return result
	}

	var notifications []*models.Notification
	for _, alert := range alerts {
		notifications = append(notifications, alert.Notifications...)
	}
	if err := e.stateDB.LoadNotificationState(ctx, notifications); err != nil {
		e.logger.Error("failed-to-load-notification-state", err, lager.Data{"alerts": len(alerts)})
		result.Failed = len(alerts)
		return result
	}

	for _, alert := range alerts {
		if ctx.Err() != nil {
			e.logger.Info("processing-cancelled", lager.Data{"remaining": len(alerts) - result.Evaluated - result.Failed})
			break
		}
		sent, err := e.processAlert(ctx, alert)
		result.Sent += sent
		if err != nil {
			e.logger.Error("failed-to-process-alert", err, lager.Data{"alert-id": alert.ID, "alert": alert.Name})
			result.Failed++
			continue
		}
		result.Evaluated++
	}
	return result
}

// Breaker returns the circuit breaker of an alert, or nil when breakers are disabled.
func (e *Engine) Breaker(alertID int64) *circuit.Breaker {
	if e.breakerFailures <= 0 {
		return nil
	}
	e.breakerLock.Lock()
	defer e.breakerLock.Unlock()
	b, ok := e.breakers[alertID]
	if !ok {
		b = circuit.NewConsecutiveBreaker(e.breakerFailures)
		e.breakers[alertID] = b
	}
	return b
}

func (e *Engine) queryMetrics(ctx context.Context, alert *models.Alert) ([]*models.Metric, error) {
	breaker := e.Breaker(alert.ID)
	if breaker == nil {
		return e.querier.QueryMetrics(ctx, alert.Expression)
	}
	if breaker.Tripped() {
		e.logger.Info("circuit-tripped", lager.Data{"alert-id": alert.ID, "consecutiveFailures": breaker.ConsecFailures()})
	}
	var metrics []*models.Metric
	err := breaker.Call(func() error {
		var err error
		metrics, err = e.querier.QueryMetrics(ctx, alert.Expression)
		return err
	}, 0)
	return metrics, err
}

func (e *Engine) processAlert(ctx context.Context, alert *models.Alert) (int, error) {
	logger := e.logger.Session("process-alert", lager.Data{"alert-id": alert.ID})

	metrics, err := e.queryMetrics(ctx, alert)
	if err != nil {
		return 0, err
	}

	now := e.clock.Now().UnixMilli()
	sent := 0
	if len(metrics) == 0 {
		logger.Debug("no-metrics", lager.Data{"expression": alert.Expression})
		if alert.MissingDataNotificationEnabled {
			for _, n := range alert.Notifications {
				if e.send(ctx, &Event{Kind: EventMissingData, Alert: alert, Notification: n, Timestamp: now}) == nil {
					sent++
				}
			}
		}
		return sent, nil
	}

	for _, t := range alert.Triggers {
		for _, m := range metrics {
			fired, value, err := Fires(t, m)
			if err != nil {
				logger.Error("failed-to-evaluate-trigger", err, lager.Data{"trigger": t.Name, "metric": m.Identifier()})
				continue
			}
			for _, n := range alert.Notifications {
				if !references(n, t) {
					continue
				}
				ok, err := e.apply(ctx, alert, n, t, m, fired, value, now)
				if err != nil {
					logger.Error("failed-to-update-notification-state", err, lager.Data{"notification": n.Name, "trigger": t.Name})
					continue
				}
				if ok {
					sent++
				}
			}
		}
	}

	return sent, e.stateDB.SaveNotificationState(ctx, alert.Notifications)
}

// apply sends a fired notification unless it is on cooldown, and a cleared one when
// a previously active notification stops firing. It reports whether an event was sent.
func (e *Engine) apply(ctx context.Context, alert *models.Alert, n *models.Notification, t *models.Trigger, m *models.Metric,
	fired bool, value *float64, now int64) (bool, error) {
	if fired {
		onCooldown, err := n.OnCooldown(t, m, now)
		if err != nil {
			return false, err
		}
		if onCooldown {
			e.logger.Debug("notification-on-cooldown", lager.Data{"notification": n.Name, "trigger": t.Name, "metric": m.Identifier()})
			return false, nil
		}
		if err := e.send(ctx, &Event{Kind: EventFired, Alert: alert, Notification: n, Trigger: t, Metric: m, Value: value, Timestamp: now}); err != nil {
			return false, nil
		}
		if err := n.SetActive(t, m, true); err != nil {
			return true, err
		}
		return true, n.SetCooldownExpiration(t, m, now+n.CooldownPeriod)
	}

	active, err := n.IsActive(t, m)
	if err != nil || !active {
		return false, err
	}
	if err := e.send(ctx, &Event{Kind: EventCleared, Alert: alert, Notification: n, Trigger: t, Metric: m, Value: value, Timestamp: now}); err != nil {
		return false, nil
	}
	return true, n.SetActive(t, m, false)
}

func (e *Engine) send(ctx context.Context, event *Event) error {
	notifier, ok := e.notifiers[event.Notification.NotifierName]
	if !ok {
		notifier = e.defaultNotifier
	}
	err := notifier.Notify(ctx, event)
	if err != nil {
		e.logger.Error("failed-to-send-notification", err, lager.Data{
			"kind": event.Kind, "notification": event.Notification.Name, "notifier": event.Notification.NotifierName,
		})
	}
	return err
}

// Fires evaluates t against the datapoints of m. The condition must hold for every
// datapoint from the latest one back at least Inertia ms. A NO_DATA trigger fires
// only for a series without datapoints. The returned value is the latest datapoint.
func Fires(t *models.Trigger, m *models.Metric) (bool, *float64, error) {
	timestamps := m.SortedTimestamps()
	if len(timestamps) == 0 {
		return t.Type == models.NoData, nil, nil
	}
	latest := timestamps[len(timestamps)-1]
	value := m.Datapoints[latest]
	if t.Type == models.NoData {
		return false, &value, nil
	}

	streakStart := int64(-1)
	for i := len(timestamps) - 1; i >= 0; i-- {
		v := m.Datapoints[timestamps[i]]
		holds, err := t.Evaluate(&v)
		if err != nil {
			return false, &value, err
		}
		if !holds {
			break
		}
		streakStart = timestamps[i]
	}
	if streakStart < 0 {
		return false, &value, nil
	}
	return latest-streakStart >= t.Inertia, &value, nil
}

func references(n *models.Notification, t *models.Trigger) bool {
	for _, candidate := range n.Triggers {
		if candidate == t || (t.ID != 0 && candidate.ID == t.ID) {
			return true
		}
	}
	return false
}
