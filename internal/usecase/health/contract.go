package health

import "context"

// Pinger is anything that can prove it is reachable: the pgx pool and
// every session store driver satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }
