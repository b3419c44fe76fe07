package alerting

import (
	"context"

	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/models"
)

type EventKind string

const (
	EventFired       EventKind = "FIRED"
	EventCleared     EventKind = "CLEARED"
	EventMissingData EventKind = "MISSING_DATA"
)

// Event is one notification delivery. Trigger and Metric are nil for missing data events.
type Event struct {
	Kind         EventKind
	Alert        *models.Alert
	Notification *models.Notification
	Trigger      *models.Trigger
	Metric       *models.Metric
	Value        *float64
	Timestamp    int64
}

// Notifier delivers events for notifications whose NotifierName it is registered under.
type Notifier interface {
	Notify(ctx context.Context, event *Event) error
}

// LoggingNotifier writes every event to the log and never fails.
type LoggingNotifier struct {
	logger lager.Logger
}

func NewLoggingNotifier(logger lager.Logger) *LoggingNotifier {
	return &LoggingNotifier{logger: logger.Session("logging-notifier")}
}

func (n *LoggingNotifier) Notify(_ context.Context, event *Event) error {
	data := lager.Data{
		"kind":          event.Kind,
		"alert":         event.Alert.Name,
		"owner":         event.Alert.Owner,
		"notification":  event.Notification.Name,
		"subscriptions": event.Notification.Subscriptions,
		"severity":      event.Notification.SeverityLevel,
		"timestamp":     event.Timestamp,
	}
	if event.Trigger != nil {
		data["trigger"] = event.Trigger.Name
	}
	if event.Metric != nil {
		data["metric"] = event.Metric.Identifier()
	}
	if event.Value != nil {
		data["value"] = *event.Value
	}
	if event.Notification.CustomText != "" {
		data["text"] = event.Notification.CustomText
	}
	n.logger.Info("notify", data)
	return nil
}
