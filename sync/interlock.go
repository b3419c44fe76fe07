package sync

import (
	"context"
	"errors"
	"os"
	"sync/atomic"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/healthendpoint"
	"github.com/argusmon/argus-core/models"
)

type InterlockConfig struct {
	Enabled         bool          `yaml:"enabled"`
	LockType        int64         `yaml:"lock_type"`
	Expiration      time.Duration `yaml:"expiration"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// InterlockMaintainer is an ifrit runner that keeps this process the holder of a
// global interlock. It becomes ready once the interlock is first acquired, so
// runners ordered after it only start on the holder.
type InterlockMaintainer struct {
	logger      lager.Logger
	clock       clock.Clock
	interlockDB db.InterlockDB
	collector   healthendpoint.SchedulerCollector
	conf        InterlockConfig
	note        string
	onAcquired  func()
	onLost      func()

	held atomic.Bool
	key  string
}

func NewInterlockMaintainer(logger lager.Logger, clk clock.Clock, interlockDB db.InterlockDB, collector healthendpoint.SchedulerCollector,
	conf InterlockConfig, note string, onAcquired func(), onLost func()) *InterlockMaintainer {
	return &InterlockMaintainer{
		logger:      logger.Session("interlock-maintainer", lager.Data{"type": conf.LockType}),
		clock:       clk,
		interlockDB: interlockDB,
		collector:   collector,
		conf:        conf,
		note:        note,
		onAcquired:  onAcquired,
		onLost:      onLost,
	}
}

func (m *InterlockMaintainer) Held() bool {
	return m.held.Load()
}

func (m *InterlockMaintainer) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ticker := m.clock.NewTicker(m.conf.RefreshInterval)
	defer ticker.Stop()

	readyClosed := false
	markReady := func() {
		if !readyClosed {
			readyClosed = true
			close(ready)
		}
	}

	if m.tryAcquire(ctx) {
		m.logger.Info("lock-acquired-in-first-attempt")
		markReady()
	}
	for {
		select {
		case sig := <-signals:
			m.logger.Info("received-signal", lager.Data{"signal": sig.String()})
			m.release(ctx)
			return nil
		case <-ticker.C():
			if m.Held() {
				m.refresh(ctx)
				continue
			}
			if m.tryAcquire(ctx) {
				markReady()
			}
		}
	}
}

func (m *InterlockMaintainer) tryAcquire(ctx context.Context) bool {
	key, err := m.interlockDB.ObtainLock(ctx, m.conf.LockType, m.conf.Expiration, m.note)
	if err != nil {
		if errors.Is(err, models.ErrLockUnavailable) {
			m.logger.Debug("lock-held-by-competitor")
		} else {
			m.logger.Error("failed-to-acquire-lock", err)
		}
		return false
	}
	m.key = key
	m.held.Store(true)
	m.collector.IncInterlockAcquired()
	m.logger.Info("successfully-acquired-lock", lager.Data{"key": key})
	if m.onAcquired != nil {
		m.onAcquired()
	}
	return true
}

func (m *InterlockMaintainer) refresh(ctx context.Context) {
	key, err := m.interlockDB.RefreshLock(ctx, m.conf.LockType, m.key, m.note)
	if err == nil {
		m.key = key
		m.logger.Debug("refreshed-lock", lager.Data{"key": key})
		return
	}
	m.logger.Error("failed-to-refresh-lock", err)
	m.held.Store(false)
	m.key = ""
	m.collector.IncInterlockLost()
	if m.onLost != nil {
		m.onLost()
	}
}

func (m *InterlockMaintainer) release(ctx context.Context) {
	if !m.Held() {
		return
	}
	if err := m.interlockDB.ReleaseLock(ctx, m.conf.LockType, m.key); err != nil {
		m.logger.Error("failed-to-release-lock", err)
	} else {
		m.logger.Info("successfully-released-lock")
	}
	m.held.Store(false)
	m.key = ""
}
