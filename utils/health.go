package utils

import (
	"context"
	"sync"
	"time"
)

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Status    string          `json:"status"`
	Checks    map[string]bool `json:"checks"`
	CheckedAt time.Time       `json:"checkedAt"`
}

// HealthMonitor keeps the latest health snapshot of the registered dependencies.
type HealthMonitor struct {
	checks   map[string]HealthCheck
	interval time.Duration

	mu      sync.RWMutex
	current HealthStatus
}

func NewHealthMonitor(interval time.Duration, checks map[string]HealthCheck) *HealthMonitor {
	return &HealthMonitor{checks: checks, interval: interval}
}

// Status returns latest stored health snapshot.
func (h *HealthMonitor) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Check runs every registered check once and stores the result.
func (h *HealthMonitor) Check(ctx context.Context) HealthStatus {
	results := make(map[string]bool, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		ok := check(cctx) == nil
		cancel()
		results[name] = ok
		healthy = healthy && ok
	}

	status := HealthStatus{Status: "ok", Checks: results, CheckedAt: time.Now()}
	if !healthy {
		status.Status = "degraded"
	}

	h.mu.Lock()
	h.current = status
	h.mu.Unlock()
	return status
}

// Start performs periodic health checks until ctx is cancelled.
func (h *HealthMonitor) Start(ctx context.Context) {
	h.Check(ctx)
	go func() {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Check(ctx)
			}
		}
	}()
}
