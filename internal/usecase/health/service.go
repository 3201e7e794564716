package health

import (
	"context"
	"sync"
	"time"
)

// Status is the overall verdict reported by GET /health.
type Status string

const (
	Healthy   Status = "ok"
	Degraded  Status = "degraded"
	Unhealthy Status = "error"
)

// CheckResult is the verdict for a single component.
type CheckResult string

const (
	CheckOK    CheckResult = "ok"
	CheckError CheckResult = "error"
)

const defaultCheckTimeout = 2 * time.Second

// Report is the outcome of one Check call.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Option tunes a Service.
type Option func(*Service)

// WithCheckTimeout bounds each component ping. A hung store then reports
// CheckError instead of stalling the whole probe.
func WithCheckTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithComponent adds an extra named component to the probe.
func WithComponent(name string, p Pinger) Option {
	return func(s *Service) {
		if p != nil {
			s.components[name] = p
		}
	}
}

// Service probes the content database and the session store.
type Service struct {
	components map[string]Pinger
	timeout    time.Duration
}

// New builds a probe over the content database and, when non-nil, the
// session store.
func New(database, sessions Pinger, opts ...Option) *Service {
	s := &Service{
		components: map[string]Pinger{"database": database},
		timeout:    defaultCheckTimeout,
	}
	if sessions != nil {
		s.components["sessions"] = sessions
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Check pings every component in parallel. The report is Healthy when all
// pass, Unhealthy when none do and Degraded otherwise.
func (s *Service) Check(ctx context.Context) Report {
	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]CheckResult, len(s.components))
	)
	for name, p := range s.components {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := s.probe(ctx, p)
			mu.Lock()
			checks[name] = res
			mu.Unlock()
		}()
	}
	wg.Wait()

	return Report{Status: verdict(checks), Checks: checks}
}

func (s *Service) probe(ctx context.Context, p Pinger) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return CheckError
	}
	return CheckOK
}

func verdict(checks map[string]CheckResult) Status {
	failed := 0
	for _, res := range checks {
		if res != CheckOK {
			failed++
		}
	}
	switch {
	case failed == 0:
		return Healthy
	case failed == len(checks):
		return Unhealthy
	default:
		return Degraded
	}
}
