package sqldb_test

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/db/sqldb"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/suspension"
)

var _ = Describe("SuspensionSQLDB", func() {
	var (
		sdb    *sqldb.SuspensionSQLDB
		fclock *fakeclock.FakeClock
		ctx    context.Context
		now    int64
		err    error
	)

	BeforeEach(func() {
		ctx = context.Background()
		fclock = fakeclock.NewFakeClock(time.UnixMilli(1_700_000_000_000))
		now = fclock.Now().UnixMilli()
		sdb, err = sqldb.NewSuspensionSQLDB(dbConfig, lagertest.NewTestLogger("suspension-db-test"), fclock)
		Expect(err).NotTo(HaveOccurred())
		cleanSuspensionTables()
	})

	AfterEach(func() {
		Expect(sdb.Close()).To(Succeed())
	})

	Describe("suspension records", func() {
		var record *models.SuspensionRecord

		BeforeEach(func() {
			record, err = models.NewSuspensionRecord("argus", "bob", models.SubSystemPosting, now-1000, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(sdb.SaveSuspensionRecord(ctx, record)).To(Succeed())
		})

		It("stores the infraction history in order", func() {
			Expect(record.AddInfraction(now)).To(Succeed())
			record.SuspendedUntil = now + 3_600_000
			Expect(sdb.SaveSuspensionRecord(ctx, record)).To(Succeed())

			found, err := sdb.FindSuspensionRecord(ctx, "bob", models.SubSystemPosting)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(record.ID))
			Expect(found.InfractionHistory).To(Equal([]int64{now - 1000, now}))
			Expect(found.IsSuspended(now)).To(BeTrue())
		})

		It("returns nil for a user without a record", func() {
			found, err := sdb.FindSuspensionRecord(ctx, "bob", models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})

		It("allows one record per user and subsystem", func() {
			duplicate, err := models.NewSuspensionRecord("argus", "bob", models.SubSystemPosting, now, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(sdb.SaveSuspensionRecord(ctx, duplicate)).To(MatchError(db.ErrAlreadyExists))
		})

		It("lists and deletes records of a user", func() {
			api, err := models.NewSuspensionRecord("argus", "bob", models.SubSystemAPI, models.IndefiniteTimestamp, now)
			Expect(err).NotTo(HaveOccurred())
			api.SuspendedUntil = models.IndefiniteTimestamp
			Expect(sdb.SaveSuspensionRecord(ctx, api)).To(Succeed())

			records, err := sdb.FindSuspensionRecordsByUser(ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))

			Expect(sdb.DeleteSuspensionRecord(ctx, "bob", models.SubSystemAPI)).To(Succeed())
			records, err = sdb.FindSuspensionRecordsByUser(ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(countRows("suspension_record_infraction", "record_id = ?", api.ID)).To(Equal(0))
		})
	})

	Describe("subsystem suspension levels", func() {
		It("creates the ladder once", func() {
			created, err := sdb.CreateSuspensionLevelsIfAbsent(ctx, models.DefaultSuspensionLevels(models.SubSystemAPI))
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			created, err = sdb.CreateSuspensionLevelsIfAbsent(ctx, models.DefaultSuspensionLevels(models.SubSystemAPI))
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			levels, err := sdb.FindSuspensionLevels(ctx, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels.Levels).To(Equal(models.DefaultSuspensionLevels(models.SubSystemAPI).Levels))
		})

		It("replaces an existing ladder", func() {
			_, err := sdb.CreateSuspensionLevelsIfAbsent(ctx, models.DefaultSuspensionLevels(models.SubSystemPosting))
			Expect(err).NotTo(HaveOccurred())

			custom := &models.SubsystemSuspensionLevels{SubSystem: models.SubSystemPosting, Levels: map[int]int64{2: 1000, 4: models.IndefiniteTimestamp}}
			Expect(sdb.SaveSuspensionLevels(ctx, custom)).To(Succeed())

			levels, err := sdb.FindSuspensionLevels(ctx, models.SubSystemPosting)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels.Levels).To(Equal(custom.Levels))
		})

		It("refuses to save a ladder that was never created", func() {
			custom := &models.SubsystemSuspensionLevels{SubSystem: models.SubSystemAPI, Levels: map[int]int64{1: 1}}
			Expect(sdb.SaveSuspensionLevels(ctx, custom)).To(MatchError(db.ErrDoesNotExist))
		})

		It("records who created and modified the ladder", func() {
			defaults := models.DefaultSuspensionLevels(models.SubSystemPosting)
			defaults.Entity = models.NewEntity("ops-bot", now)
			_, err := sdb.CreateSuspensionLevelsIfAbsent(ctx, defaults)
			Expect(err).NotTo(HaveOccurred())

			custom := &models.SubsystemSuspensionLevels{Entity: models.NewEntity("alice", now), SubSystem: models.SubSystemPosting, Levels: map[int]int64{1: 1000}}
			Expect(sdb.SaveSuspensionLevels(ctx, custom)).To(Succeed())

			levels, err := sdb.FindSuspensionLevels(ctx, models.SubSystemPosting)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels.CreatedBy).To(Equal("ops-bot"))
			Expect(levels.ModifiedBy).To(Equal("alice"))
		})

		It("persists a single default ladder when first read concurrently", func() {
			service := suspension.NewService(lagertest.NewTestLogger("suspension-service"), fclock, sdb, "argus")

			const readers = 8
			var (
				wg      sync.WaitGroup
				mu      sync.Mutex
				errs    []error
				results []map[int]int64
			)
			start := make(chan struct{})
			for i := 0; i < readers; i++ {
				wg.Add(1)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					<-start
					levels, err := service.SuspensionLevels(ctx, models.SubSystemAPI)
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						errs = append(errs, err)
						return
					}
					results = append(results, levels)
				}()
			}
			close(start)
			wg.Wait()

			Expect(errs).To(BeEmpty())
			Expect(results).To(HaveLen(readers))
			for _, levels := range results {
				Expect(levels).To(Equal(models.DefaultSuspensionLevels(models.SubSystemAPI).Levels))
			}
			Expect(countRows("subsystem_suspension_levels", "sub_system = ?", models.SubSystemAPI)).To(Equal(1))
			Expect(countRows("subsystem_suspension_level", "")).To(Equal(len(models.DefaultSuspensionLevels(models.SubSystemAPI).Levels)))
		})

		It("seeds every ladder through the factory-built store", func() {
			factoryDB := sqldb.CreateSuspensionDb(dbConfig, lagertest.NewTestLogger("suspension-factory"), fclock)
			defer func() { _ = factoryDB.Close() }()

			service := suspension.NewService(lagertest.NewTestLogger("suspension-service"), fclock, factoryDB, "argus")
			Expect(service.SeedSuspensionLevels(ctx)).To(Succeed())

			for _, sub := range models.SubSystems {
				found, err := sdb.FindSuspensionLevels(ctx, sub)
				Expect(err).NotTo(HaveOccurred())
				Expect(found.Levels).To(Equal(models.DefaultSuspensionLevels(sub).Levels))
				Expect(found.CreatedBy).To(Equal("argus"))
			}
		})

		It("returns nil for a missing ladder", func() {
			levels, err := sdb.FindSuspensionLevels(ctx, models.SubSystemAPI)
			Expect(err).NotTo(HaveOccurred())
			Expect(levels).To(BeNil())
		})
	})
})
