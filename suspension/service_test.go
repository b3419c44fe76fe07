package suspension_test

import (
	"context"
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/argusmon/argus-core/fakes"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/suspension"
)

type recordKey struct {
	user      string
	subSystem models.SubSystem
}

var _ = Describe("Service", func() {
	var (
		service      *suspension.Service
		suspensionDB *fakes.FakeSuspensionDB
		fclock       *fakeclock.FakeClock
		ctx          context.Context
		records      map[recordKey]*models.SuspensionRecord
		ladders      map[models.SubSystem]*models.SubsystemSuspensionLevels
		bob          models.PrincipalUser
		hour         int64
	)

	BeforeEach(func() {
		ctx = context.Background()
		hour = time.Hour.Milliseconds()
		bob = models.PrincipalUser{UserName: "bob"}
		fclock = fakeclock.NewFakeClock(time.UnixMilli(1_700_000_000_000))
		records = map[recordKey]*models.SuspensionRecord{}
		ladders = map[models.SubSystem]*models.SubsystemSuspensionLevels{}

		suspensionDB = &fakes.FakeSuspensionDB{}
		suspensionDB.FindSuspensionRecordStub = func(_ context.Context, user string, sub models.SubSystem) (*models.SuspensionRecord, error) {
			return records[recordKey{user, sub}], nil
		}
		suspensionDB.SaveSuspensionRecordStub = func(_ context.Context, r *models.SuspensionRecord) error {
			records[recordKey{r.UserName, r.SubSystem}] = r
			return nil
		}
		suspensionDB.FindSuspensionRecordsByUserStub = func(_ context.Context, user string) ([]*models.SuspensionRecord, error) {
			var found []*models.SuspensionRecord
			for k, r := range records {
				if k.user == user {
					found = append(found, r)
				}
			}
			return found, nil
		}
		suspensionDB.DeleteSuspensionRecordStub = func(_ context.Context, user string, sub models.SubSystem) error {
			delete(records, recordKey{user, sub})
			return nil
		}
		suspensionDB.FindSuspensionLevelsStub = func(_ context.Context, sub models.SubSystem) (*models.SubsystemSuspensionLevels, error) {
			return ladders[sub], nil
		}
		suspensionDB.CreateSuspensionLevelsIfAbsentStub = func(_ context.Context, l *models.SubsystemSuspensionLevels) (bool, error) {
			if _, ok := ladders[l.SubSystem]; ok {
				return false, nil
			}
			ladders[l.SubSystem] = l
			return true, nil
		}
		suspensionDB.SaveSuspensionLevelsStub = func(_ context.Context, l *models.SubsystemSuspensionLevels) error {
			ladders[l.SubSystem] = l
			return nil
		}

		service = suspension.NewService(lagertest.NewTestLogger("suspension-test"), fclock, suspensionDB, "argus")
	})

	Describe("SuspendUser", func() {
		It("suspends on the first infraction for the first level", func() {
			indefinite, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(indefinite).To(BeFalse())

			record := records[recordKey{"bob", models.SubSystemAPI}]
			Expect(record.InfractionHistory).To(HaveLen(1))
			Expect(record.SuspendedUntil).To(Equal(fclock.Now().UnixMilli() + hour))
			Expect(suspensionDB.CreateSuspensionLevelsIfAbsentCallCount()).To(Equal(1))
		})

		It("replaces the suspension time as infractions accumulate", func() {
			_, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			fclock.Increment(2 * time.Hour)
			_, err = service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())

			record := records[recordKey{"bob", models.SubSystemAPI}]
			Expect(record.SuspendedUntil).To(Equal(fclock.Now().UnixMilli() + 10*hour))
		})

		It("ignores infractions older than seven days for the ladder", func() {
			_, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			fclock.Increment(8 * 24 * time.Hour)
			_, err = service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())

			record := records[recordKey{"bob", models.SubSystemAPI}]
			Expect(record.SuspendedUntil).To(Equal(fclock.Now().UnixMilli() + hour))
		})

		It("suspends indefinitely in every subsystem after fifteen infractions in thirty days", func() {
			for i := 0; i < suspension.IndefiniteThreshold-1; i++ {
				indefinite, err := service.SuspendUser(ctx, bob, models.SubSystemPosting)
				Expect(err).NotTo(HaveOccurred())
				Expect(indefinite).To(BeFalse())
				fclock.Increment(time.Hour)
			}
			indefinite, err := service.SuspendUser(ctx, bob, models.SubSystemPosting)
			Expect(err).NotTo(HaveOccurred())
			Expect(indefinite).To(BeTrue())

			for _, sub := range models.SubSystems {
				Expect(records[recordKey{"bob", sub}].IsSuspendedIndefinitely()).To(BeTrue())
			}

			indefinite, err = service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(indefinite).To(BeTrue())
		})

		It("suspends indefinitely when the matching level is indefinite", func() {
			Expect(service.UpdateSuspensionLevels(ctx, models.SubSystemAPI, map[int]int64{1: models.IndefiniteTimestamp})).To(Succeed())

			indefinite, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(indefinite).To(BeTrue())

			record := records[recordKey{"bob", models.SubSystemAPI}]
			Expect(record.SuspendedUntil).To(Equal(models.IndefiniteTimestamp))

			fclock.Increment(365 * 24 * time.Hour)
			Expect(service.AssertSubsystemUsePermitted(ctx, bob, models.SubSystemAPI)).To(MatchError(models.ErrSuspended))
		})

		It("never suspends a privileged user", func() {
			indefinite, err := service.SuspendUser(ctx, models.PrincipalUser{UserName: "admin", Privileged: true}, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(indefinite).To(BeFalse())
			Expect(suspensionDB.SaveSuspensionRecordCallCount()).To(BeZero())
		})

		It("returns store failures", func() {
			suspensionDB.FindSuspensionRecordStub = nil
			suspensionDB.FindSuspensionRecordReturns(nil, errors.New("db down"))
			_, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).To(MatchError("db down"))
		})
	})

	Describe("AssertSubsystemUsePermitted", func() {
		It("permits a user without a record", func() {
			Expect(service.AssertSubsystemUsePermitted(ctx, bob, models.SubSystemAPI)).To(Succeed())
		})

		It("refuses a suspended user until the suspension is over", func() {
			_, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())

			err = service.AssertSubsystemUsePermitted(ctx, bob, models.SubSystemAPI)
			Expect(err).To(MatchError(models.ErrSuspended))
			var suspended *models.SuspendedErr
			Expect(errors.As(err, &suspended)).To(BeTrue())
			Expect(suspended.UserName).To(Equal("bob"))

			Expect(service.AssertSubsystemUsePermitted(ctx, bob, models.SubSystemPosting)).To(Succeed())

			fclock.Increment(time.Hour + time.Millisecond)
			Expect(service.AssertSubsystemUsePermitted(ctx, bob, models.SubSystemAPI)).To(Succeed())
		})

		It("lets privileged users through", func() {
			records[recordKey{"root", models.SubSystemAPI}] = &models.SuspensionRecord{UserName: "root", SubSystem: models.SubSystemAPI, SuspendedUntil: models.IndefiniteTimestamp}
			Expect(service.AssertSubsystemUsePermitted(ctx, models.PrincipalUser{UserName: "root", Privileged: true}, models.SubSystemAPI)).To(Succeed())
		})
	})

	Describe("ReinstateUser", func() {
		It("removes the record", func() {
			_, err := service.SuspendUser(ctx, bob, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(service.ReinstateUser(ctx, bob, models.SubSystemAPI)).To(Succeed())
			Expect(records).To(BeEmpty())
			Expect(service.AssertSubsystemUsePermitted(ctx, bob, models.SubSystemAPI)).To(Succeed())
		})
	})

	Describe("SuspensionLevels", func() {
		It("creates the default ladder once", func() {
			levels, err := service.SuspensionLevels(ctx, models.SubSystemPosting)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels).To(Equal(models.DefaultSuspensionLevels(models.SubSystemPosting).Levels))

			_, err = service.SuspensionLevels(ctx, models.SubSystemPosting)
			Expect(err).NotTo(HaveOccurred())
			Expect(suspensionDB.CreateSuspensionLevelsIfAbsentCallCount()).To(Equal(1))
		})

		It("reads back the ladder written by a concurrent creator", func() {
			winner := &models.SubsystemSuspensionLevels{SubSystem: models.SubSystemAPI, Levels: map[int]int64{1: 5}}
			suspensionDB.CreateSuspensionLevelsIfAbsentStub = func(context.Context, *models.SubsystemSuspensionLevels) (bool, error) {
				ladders[models.SubSystemAPI] = winner
				return false, nil
			}
			levels, err := service.SuspensionLevels(ctx, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels).To(Equal(map[int]int64{1: 5}))
		})

		It("updates the ladder", func() {
			Expect(service.UpdateSuspensionLevels(ctx, models.SubSystemAPI, map[int]int64{3: hour})).To(Succeed())
			levels, err := service.SuspensionLevels(ctx, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels).To(Equal(map[int]int64{3: hour}))
		})

		It("seeds the default ladder of every subsystem", func() {
			Expect(service.SeedSuspensionLevels(ctx)).To(Succeed())
			Expect(suspensionDB.CreateSuspensionLevelsIfAbsentCallCount()).To(Equal(len(models.SubSystems)))
			for _, sub := range models.SubSystems {
				Expect(ladders[sub].Levels).To(Equal(models.DefaultSuspensionLevels(sub).Levels))
			}

			Expect(service.SeedSuspensionLevels(ctx)).To(Succeed())
			Expect(suspensionDB.CreateSuspensionLevelsIfAbsentCallCount()).To(Equal(len(models.SubSystems)))
		})

		It("fails seeding when the store fails", func() {
			suspensionDB.FindSuspensionLevelsReturns(nil, errors.New("db down"))
			Expect(service.SeedSuspensionLevels(ctx)).To(MatchError(ContainSubstring("db down")))
		})

		It("rejects an empty ladder", func() {
			Expect(service.UpdateSuspensionLevels(ctx, models.SubSystemAPI, nil)).To(MatchError(models.ErrInvalidArgument))
			Expect(service.UpdateSuspensionLevels(ctx, models.SubSystemAPI, map[int]int64{0: hour})).To(MatchError(models.ErrInvalidArgument))
		})
	})

	DescribeTable("SuspensionTimeFor",
		func(count int, expected int64) {
			levels := map[int]int64{2: 200, 4: 400, 6: models.IndefiniteTimestamp}
			Expect(suspension.SuspensionTimeFor(count, levels)).To(Equal(expected))
		},
		Entry("exact level", 4, int64(400)),
		Entry("nearest level below", 5, int64(400)),
		Entry("below the ladder", 1, int64(0)),
		Entry("past the ladder", 9, models.IndefiniteTimestamp),
	)
})
