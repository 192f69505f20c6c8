// Package healthcheck aggregates named dependency checks into a single
// readiness report, following the Health Check API pattern for
// cloud-native applications.
package healthcheck

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Status represents the health status of a dependency or the service.
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

const (
	defaultCacheTTL     = 5 * time.Second
	defaultCheckTimeout = 10 * time.Second
)

// Check is the result of probing a single dependency.
type Check struct {
	Name        string        `json:"name"`
	Status      Status        `json:"status"`
	Message     string        `json:"message,omitempty"`
	LastChecked time.Time     `json:"last_checked"`
	Duration    time.Duration `json:"-"`
}

// Response is the aggregated readiness report.
type Response struct {
	Status        Status        `json:"status"`
	Version       string        `json:"version"`
	Timestamp     time.Time     `json:"timestamp"`
	Checks        []Check       `json:"checks"`
	TotalDuration time.Duration `json:"-"`
}

// CheckFunc probes a single dependency. A nil return means healthy.
type CheckFunc func(ctx context.Context) error

type dependency struct {
	name     string
	check    CheckFunc
	critical bool
}

// HealthCheck runs registered dependency checks and caches the result.
type HealthCheck struct {
	version  string
	logger   *zap.Logger
	mu       sync.RWMutex
	deps     []dependency
	cache    *Response
	cacheTTL time.Duration
}

// New creates a health check aggregator.
func New(version string, logger *zap.Logger) *HealthCheck {
	return &HealthCheck{
		version:  version,
		logger:   logger.Named("healthcheck"),
		cacheTTL: defaultCacheTTL,
	}
}

// Register adds a named dependency check. A failing critical check marks
// the whole service unhealthy; a failing non-critical check only marks
// it degraded.
func (h *HealthCheck) Register(name string, critical bool, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deps = append(h.deps, dependency{name: name, check: fn, critical: critical})
}

// SetCacheTTL overrides how long a readiness report is reused.
func (h *HealthCheck) SetCacheTTL(ttl time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cacheTTL = ttl
}

// Check runs all registered checks concurrently and returns the
// aggregated report. Results are cached briefly so probe endpoints do
// not hammer dependencies.
func (h *HealthCheck) Check(ctx context.Context) Response {
	h.mu.RLock()
	if h.cache != nil && time.Since(h.cache.Timestamp) < h.cacheTTL {
		cached := *h.cache
		h.mu.RUnlock()
		return cached
	}
	deps := make([]dependency, len(h.deps))
	copy(deps, h.deps)
	h.mu.RUnlock()

	start := time.Now()
	response := Response{
		Status:    StatusHealthy,
		Version:   h.version,
		Timestamp: start,
		Checks:    []Check{},
	}

	checkCtx, cancel := context.WithTimeout(ctx, defaultCheckTimeout)
	defer cancel()

	var wg sync.WaitGroup
	results := make(chan Check, len(deps))

	for _, dep := range deps {
		wg.Add(1)
		go func(d dependency) {
			defer wg.Done()
			results <- h.runCheck(checkCtx, d)
		}(dep)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	for check := range results {
		response.Checks = append(response.Checks, check)

		if check.Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		} else if check.Status == StatusDegraded && response.Status == StatusHealthy {
			response.Status = StatusDegraded
		}
	}

	response.TotalDuration = time.Since(start)

	h.mu.Lock()
	h.cache = &response
	h.mu.Unlock()

	return response
}

func (h *HealthCheck) runCheck(ctx context.Context, dep dependency) Check {
	start := time.Now()
	check := Check{
		Name:        dep.name,
		Status:      StatusHealthy,
		LastChecked: start,
	}

	if err := dep.check(ctx); err != nil {
		if dep.critical {
			check.Status = StatusUnhealthy
		} else {
			check.Status = StatusDegraded
		}
		check.Message = err.Error()
		h.logger.Warn("dependency check failed",
			zap.String("dependency", dep.name),
			zap.Error(err),
		)
	}

	check.Duration = time.Since(start)
	return check
}

// MarshalJSON reports durations in milliseconds.
func (c Check) MarshalJSON() ([]byte, error) {
	type Alias Check
	return json.Marshal(&struct {
		Duration float64 `json:"duration_ms"`
		*Alias
	}{
		Duration: float64(c.Duration.Milliseconds()),
		Alias:    (*Alias)(&c),
	})
}

// MarshalJSON reports durations in milliseconds.
func (r Response) MarshalJSON() ([]byte, error) {
	type Alias Response
	return json.Marshal(&struct {
		TotalDuration float64 `json:"total_duration_ms"`
		*Alias
	}{
		TotalDuration: float64(r.TotalDuration.Milliseconds()),
		Alias:         (*Alias)(&r),
	})
}
