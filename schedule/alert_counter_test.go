package schedule_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/argusmon/argus-core/fakes"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/schedule"
)

var _ = Describe("EnabledAlertCounter", func() {
	var (
		counter *schedule.EnabledAlertCounter
		source  *fakes.FakeEnabledAlertSource
		ctx     context.Context
		// 2023-11-14 22:14:00 UTC, not on the hour
		minute int64
		hourly int64
	)

	alert := func(id int64, cron string) *models.Alert {
		return &models.Alert{Entity: models.Entity{ID: id}, Name: "alert", CronEntry: cron, Enabled: true}
	}

	BeforeEach(func() {
		ctx = context.Background()
		minute = time.Date(2023, 11, 14, 22, 14, 0, 0, time.UTC).UnixMilli()
		hourly = time.Date(2023, 11, 14, 22, 0, 0, 0, time.UTC).UnixMilli()
		source = &fakes.FakeEnabledAlertSource{}
		source.FindEnabledAlertsReturns([]*models.Alert{
			alert(3, "* * * * *"),
			alert(1, "0 * * * *"),
			alert(2, "*/2 * * * *"),
			alert(4, "not a cron"),
		}, nil)
		counter = schedule.NewEnabledAlertCounter(lagertest.NewTestLogger("counter-test"), source, time.Minute)
	})

	It("orders enabled alerts by id and caches them", func() {
		alerts, err := counter.EnabledAlerts(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(alerts).To(HaveLen(4))
		Expect(alerts[0].ID).To(Equal(int64(1)))
		Expect(alerts[3].ID).To(Equal(int64(4)))

		_, err = counter.EnabledAlerts(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(source.FindEnabledAlertsCallCount()).To(Equal(1))

		counter.Invalidate()
		_, err = counter.EnabledAlerts(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(source.FindEnabledAlertsCallCount()).To(Equal(2))
	})

	It("lists the alerts due in a minute", func() {
		due, err := counter.DueAlerts(ctx, minute)
		Expect(err).NotTo(HaveOccurred())
		Expect(due).To(HaveLen(2))
		Expect(due[0].ID).To(Equal(int64(2)))
		Expect(due[1].ID).To(Equal(int64(3)))

		due, err = counter.DueAlerts(ctx, hourly+15_000)
		Expect(err).NotTo(HaveOccurred())
		Expect(due).To(HaveLen(3))
	})

	It("counts due alerts for alert scheduling only", func() {
		Expect(counter.CountEnabledJobs(ctx, models.AlertScheduling, minute)).To(Equal(int64(2)))
		Expect(counter.CountEnabledJobs(ctx, models.NotificationScheduling, minute)).To(BeZero())
	})

	It("returns source failures", func() {
		source.FindEnabledAlertsReturns(nil, errors.New("db down"))
		_, err := counter.CountEnabledJobs(ctx, models.AlertScheduling, minute)
		Expect(err).To(MatchError("db down"))
	})
})
