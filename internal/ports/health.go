package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultCheckTimeout bounds a single check run by a HealthRegistry.
const DefaultCheckTimeout = 2 * time.Second

// ErrDuplicateChecker is returned by Register for a name already taken.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is a component that can tell whether it is usable. The
// unit and constant catalogs register one at startup.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}

type namedCheck struct {
	name string
	fn   func(context.Context) error
}

func (c namedCheck) Name() string                    { return c.name }
func (c namedCheck) Check(ctx context.Context) error { return c.fn(ctx) }

// NamedCheck turns fn into a HealthChecker called name.
func NamedCheck(name string, fn func(context.Context) error) HealthChecker {
	return namedCheck{name: name, fn: fn}
}

// HealthRegistry runs every registered check for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker) error
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the outcome of one check or of all of them.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the outcome of CheckAll. Status is unhealthy when any
// check failed.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// CheckResult is the outcome of one check. Message holds its error.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

// DefaultHealthRegistry runs its checks concurrently, each under its own
// timeout. It is safe for concurrent use.
type DefaultHealthRegistry struct {
	timeout time.Duration

	mu       sync.RWMutex
	checkers []HealthChecker
}

// NewHealthRegistry returns an empty registry using DefaultCheckTimeout.
func NewHealthRegistry() *DefaultHealthRegistry {
	return NewHealthRegistryWithTimeout(DefaultCheckTimeout)
}

// NewHealthRegistryWithTimeout returns an empty registry whose checks are
// cancelled after timeout. A non-positive timeout disables the bound.
func NewHealthRegistryWithTimeout(timeout time.Duration) *DefaultHealthRegistry {
	return &DefaultHealthRegistry{timeout: timeout, checkers: []HealthChecker{}}
}

// Register adds checker, rejecting a name that is already registered.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.checkers {
		if c.Name() == checker.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, checker.Name())
		}
	}

	r.checkers = append(r.checkers, checker)

	return nil
}

// CheckAll runs every check and gathers the outcomes. A failing check does
// not stop the others.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := append([]HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	results := make([]*CheckResult, len(checkers))

	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			results[i] = r.run(ctx, c)
			return nil
		})
	}

	_ = g.Wait()

	out := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	for i, c := range checkers {
		out.Checks[c.Name()] = results[i]

		if results[i].Status != HealthStatusHealthy {
			out.Status = HealthStatusUnhealthy
		}
	}

	return out
}

func (r *DefaultHealthRegistry) run(ctx context.Context, c HealthChecker) *CheckResult {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)

		defer cancel()
	}

	start := time.Now()

	err := ctx.Err()
	if err == nil {
		err = c.Check(ctx)
	}

	res := &CheckResult{Status: HealthStatusHealthy, Duration: time.Since(start)}
	if err != nil {
		res.Status = HealthStatusUnhealthy
		res.Message = err.Error()
	}

	return res
}
