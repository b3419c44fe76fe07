package healthendpoint

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

type DatabaseStatus interface {
	GetDBStatus() sql.DBStats
}

type dbStat struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
	value     func(sql.DBStats) float64
}

// databaseStatusCollector reads the pool statistics of one database at scrape time.
type databaseStatusCollector struct {
	stats    []dbStat
	dbStatus DatabaseStatus
}

func NewDatabaseStatusCollector(namespace, subSystem string, dbName string, dbStatus DatabaseStatus) prometheus.Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, subSystem, dbName+"_"+name), help, nil, nil)
	}
	return &databaseStatusCollector{
		dbStatus: dbStatus,
		stats: []dbStat{
			{desc("max_open_connections", "Maximum number of open connections to the database"), prometheus.GaugeValue,
				func(s sql.DBStats) float64 { return float64(s.MaxOpenConnections) }},
			{desc("open_connections", "The number of established connections both in use and idle"), prometheus.GaugeValue,
				func(s sql.DBStats) float64 { return float64(s.OpenConnections) }},
			{desc("in_use", "The number of connections currently in use"), prometheus.GaugeValue,
				func(s sql.DBStats) float64 { return float64(s.InUse) }},
			{desc("idle", "The number of idle connections"), prometheus.GaugeValue,
				func(s sql.DBStats) float64 { return float64(s.Idle) }},
			{desc("wait_count", "The total number of connections waited for"), prometheus.CounterValue,
				func(s sql.DBStats) float64 { return float64(s.WaitCount) }},
			{desc("wait_duration_seconds", "The total time blocked waiting for a new connection"), prometheus.CounterValue,
				func(s sql.DBStats) float64 { return s.WaitDuration.Seconds() }},
			{desc("max_idle_closed", "The total number of connections closed due to SetMaxIdleConns"), prometheus.CounterValue,
				func(s sql.DBStats) float64 { return float64(s.MaxIdleClosed) }},
			{desc("max_lifetime_closed", "The total number of connections closed due to SetConnMaxLifetime"), prometheus.CounterValue,
				func(s sql.DBStats) float64 { return float64(s.MaxLifetimeClosed) }},
		},
	}
}

func (c *databaseStatusCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, s := range c.stats {
		ch <- s.desc
	}
}

func (c *databaseStatusCollector) Collect(ch chan<- prometheus.Metric) {
	status := c.dbStatus.GetDBStatus()
	for _, s := range c.stats {
		ch <- prometheus.MustNewConstMetric(s.desc, s.valueType, s.value(status))
	}
}
