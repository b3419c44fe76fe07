package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/argusmon/argus-core/alerting"
	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/db/sqldb"
	"github.com/argusmon/argus-core/healthendpoint"
	"github.com/argusmon/argus-core/helpers"
	"github.com/argusmon/argus-core/models"
	"github.com/argusmon/argus-core/schedule"
	"github.com/argusmon/argus-core/scheduler"
	"github.com/argusmon/argus-core/scheduler/config"
	"github.com/argusmon/argus-core/suspension"
	"github.com/argusmon/argus-core/sync"
)

func main() {
	var path string
	flag.StringVar(&path, "c", "", "config file")
	flag.Parse()
	if path == "" {
		fmt.Fprintln(os.Stderr, "missing config file")
		os.Exit(1)
	}

	configFile, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to open config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}

	var conf *config.Config
	conf, err = config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to read config file '%s' : %s\n", path, err.Error())
		os.Exit(1)
	}
	_ = configFile.Close()

	err = conf.Validate()
	if err != nil {
		fmt.Fprintf(os.Stdout, "failed to validate configuration : %s\n", err.Error())
		os.Exit(1)
	}

	logger := helpers.InitLoggerFromConfig(&conf.Logging, "scheduler")
	schedulerClock := clock.NewClock()
	identity := helpers.ResolveInstanceIdentity(conf.Instance.Hostname)
	guid := uuid.NewString()
	logger.Info("instance-identity", lager.Data{"hostname": identity.Hostname, "ipaddr": identity.IPAddr, "guid": guid})

	err = sqldb.Migrate(conf.Db[db.ArgusDb], logger)
	if err != nil {
		logger.Error("failed-to-migrate-database", err)
		os.Exit(1)
	}

	alertDB := sqldb.CreateAlertDb(conf.Db[db.ArgusDb], logger, schedulerClock)
	defer func() { _ = alertDB.Close() }()
	schedulingLockDB := sqldb.CreateSchedulingLockDb(conf.Db[db.ArgusDb], logger, schedulerClock)
	defer func() { _ = schedulingLockDB.Close() }()
	policyDB := sqldb.CreatePolicyDb(conf.Db[db.ArgusDb], logger, schedulerClock)
	defer func() { _ = policyDB.Close() }()
	suspensionDB := sqldb.CreateSuspensionDb(conf.Db[db.ArgusDb], logger, schedulerClock)
	defer func() { _ = suspensionDB.Close() }()

	suspensionService := suspension.NewService(logger, schedulerClock, suspensionDB, "argus")
	err = suspensionService.SeedSuspensionLevels(context.Background())
	if err != nil {
		logger.Error("failed-to-seed-suspension-levels", err)
		os.Exit(1)
	}

	collector := healthendpoint.NewSchedulerCollector("argus", "scheduler")
	promRegistry := prometheus.NewRegistry()
	collectors := []prometheus.Collector{
		collector,
		healthendpoint.NewDatabaseStatusCollector("argus", "scheduler", "alertDB", alertDB),
		healthendpoint.NewDatabaseStatusCollector("argus", "scheduler", "schedulingLockDB", schedulingLockDB),
		healthendpoint.NewDatabaseStatusCollector("argus", "scheduler", "policyDB", policyDB),
		healthendpoint.NewDatabaseStatusCollector("argus", "scheduler", "suspensionDB", suspensionDB),
	}
	checkers := []healthendpoint.Checker{
		healthendpoint.DbChecker(db.ArgusDb, alertDB),
	}

	metricServerHttpClient, err := helpers.CreateHTTPClient(&conf.Evaluator.TLSClientCerts, conf.Evaluator.HttpClientTimeout)
	if err != nil {
		logger.Error("failed to create http client for metric server", err, lager.Data{"metricServerTLS": conf.Evaluator.TLSClientCerts})
		os.Exit(1)
	}
	metricClient := alerting.NewMetricServerClient(logger, conf.Evaluator.MetricServerURL, metricServerHttpClient)
	loggingNotifier := alerting.NewLoggingNotifier(logger)
	engine := alerting.NewEngine(logger, schedulerClock, metricClient, alertDB,
		map[string]alerting.Notifier{"logging": loggingNotifier}, loggingNotifier,
		conf.Evaluator.CircuitBreaker.ConsecutiveFailureCount)

	alertCounter := schedule.NewEnabledAlertCounter(logger, alertDB, conf.AlertCache.TTL)
	claimer := schedule.NewClaimer(logger, schedulingLockDB, alertCounter, collector, models.AlertScheduling,
		conf.Scheduling.BlockSize, conf.Scheduling.RefreshInterval, conf.Scheduling.Retry)
	schedulerRunner := scheduler.NewRunner(logger, schedulerClock, claimer, alertCounter, engine, collector, conf.Scheduling.ClaimInterval)

	members := grouper.Members{
		{Name: "scheduler", Runner: schedulerRunner},
	}

	if conf.Interlock.Enabled {
		interlockDB := sqldb.CreateInterlockDb(conf.LockDB(), identity.IPAddr, logger, schedulerClock)
		defer func() { _ = interlockDB.Close() }()
		collectors = append(collectors, healthendpoint.NewDatabaseStatusCollector("argus", "scheduler", "interlockDB", interlockDB))

		maintainer := sync.NewInterlockMaintainer(logger, schedulerClock, interlockDB, collector, conf.Interlock,
			identity.Hostname+"/"+guid, alertCounter.Invalidate, func() {
				logger.Info("lost-global-interlock")
				os.Exit(1)
			})
		checkers = append(checkers, healthendpoint.DbChecker(db.LockDb, interlockDB), healthendpoint.InterlockChecker(maintainer.Held))
		members = append(grouper.Members{{Name: "interlock-maintainer", Runner: maintainer}}, members...)
	}

	healthendpoint.RegisterCollectors(promRegistry, collectors, true, logger.Session("scheduler-prometheus"))

	healthServer, err := healthendpoint.NewServerWithBasicAuth(conf.Health, checkers, logger.Session("health-server"), promRegistry)
	if err != nil {
		logger.Error("failed to create health server", err)
		os.Exit(1)
	}
	members = append(grouper.Members{{Name: "health_server", Runner: healthServer}}, members...)

	monitor := ifrit.Invoke(sigmon.New(grouper.NewOrdered(os.Interrupt, members)))

	logger.Info("started")

	err = <-monitor.Wait()
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}

	logger.Info("exited")
}
