package alerting_test

import (
	"context"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	. "github.com/argusmon/argus-core/alerting"
	"github.com/argusmon/argus-core/models"
)

var _ = Describe("LoggingNotifier", func() {
	It("logs the event", func() {
		logger := lagertest.NewTestLogger("notifier-test")
		alert := &models.Alert{Name: "cpu-high", Owner: "alice"}
		notification := &models.Notification{Name: "page", Subscriptions: []string{"ops@example.com"}, CustomText: "check the hosts"}
		value := 42.0

		err := NewLoggingNotifier(logger).Notify(context.Background(), &Event{
			Kind:         EventFired,
			Alert:        alert,
			Notification: notification,
			Trigger:      &models.Trigger{Name: "above-ten"},
			Metric:       models.NewMetric("argus", "cpu"),
			Value:        &value,
			Timestamp:    1000,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(logger).To(gbytes.Say(`"kind":"FIRED"`))
		Expect(logger.Buffer()).To(gbytes.Say(`"metric":"argus:cpu"`))
	})
})
