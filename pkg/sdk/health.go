package earlyhelp

import (
	"context"
	"slices"

	healthuc "github.com/kailas-cloud/earlyhelp/internal/usecase/health"
)

// HealthState is the overall or per-component health verdict.
type HealthState string

const (
	HealthOK       HealthState = HealthState(healthuc.Healthy)
	HealthDegraded HealthState = HealthState(healthuc.Degraded)
	HealthError    HealthState = HealthState(healthuc.Unhealthy)
)

// HealthStatus is the result of Client.Health. Checks holds one entry per
// probed component: "database" always, "sessions" when a store is configured.
type HealthStatus struct {
	Status HealthState
	Checks map[string]HealthState
}

// OK reports whether every component answered.
func (h HealthStatus) OK() bool { return h.Status == HealthOK }

// Failing lists the components whose probe failed.
func (h HealthStatus) Failing() []string {
	var out []string
	for name, st := range h.Checks {
		if st != HealthOK {
			out = append(out, name)
		}
	}
	slices.Sort(out)
	return out
}

type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}

// Health pings Postgres and the session store.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	h := HealthStatus{
		Status: HealthState(report.Status),
		Checks: make(map[string]HealthState, len(report.Checks)),
	}
	for name, res := range report.Checks {
		h.Checks[name] = HealthState(res)
	}
	return h
}
