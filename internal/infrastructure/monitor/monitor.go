package monitor

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/shoplist/backend/internal/infrastructure/storage"
	"github.com/shoplist/backend/store"
)

// Monitor periodically checks the durable backing and samples store counts
// for the health endpoint. A persistence outage never blocks mutations, so
// this is the one place operators can see durability is degraded.
type Monitor struct {
	backing *storage.Store
	domain  *store.Store

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(backing *storage.Store, domain *store.Store, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		backing:  backing,
		domain:   domain,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Backing
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	lists, products := 0, 0
	if m.domain != nil {
		lists, products = m.domain.Counts()
	}
	status := Status{
		Backing:   m.checkBacking(),
		Lists:     lists,
		Products:  products,
		LastCheck: time.Now(),
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) checkBacking() bool {
	if m.backing == nil {
		return false
	}
	if err := m.backing.Ping(); err != nil {
		m.logger.Warn("backing health check failed", zap.Error(err))
		return false
	}
	return true
}
