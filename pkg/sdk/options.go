package earlyhelp

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

// Session store drivers.
const (
	driverValkey = "valkey"
	driverRedis  = "redis"
	driverBadger = "badger"
)

// PostgresConfig holds the content database connection parameters.
// Port defaults to 5432 and SSLMode to "disable".
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type clientConfig struct {
	postgres    *PostgresConfig
	autoMigrate bool

	driver     string
	addrs      []string
	password   string
	badgerPath string
	inMemory   bool

	keyPrefix  string
	sessionTTL time.Duration

	defaultPageSize int
	maxPageSize     int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithPostgres sets the content database. Required.
func WithPostgres(cfg PostgresConfig) Option {
	return optionFunc(func(c *clientConfig) {
		c.postgres = &cfg
	})
}

// WithAutoMigrate creates or updates the content schema on New.
func WithAutoMigrate() Option {
	return optionFunc(func(c *clientConfig) {
		c.autoMigrate = true
	})
}

// WithValkey stores checklist sessions and favorites in a Valkey instance.
func WithValkey(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverValkey
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithRedis stores checklist sessions and favorites in a Redis instance.
func WithRedis(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverRedis
		c.addrs = []string{addr}
		c.password = password
	})
}

// WithBadger stores checklist sessions and favorites in an embedded
// database at path.
func WithBadger(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverBadger
		c.badgerPath = path
		c.inMemory = false
	})
}

// WithInMemorySessions keeps checklist sessions and favorites in memory.
// State is lost on Close. This is the default when no session store is set.
func WithInMemorySessions() Option {
	return optionFunc(func(c *clientConfig) {
		c.driver = driverBadger
		c.inMemory = true
	})
}

// WithKeyPrefix namespaces session store keys. Default: "earlyhelp:".
func WithKeyPrefix(prefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.keyPrefix = prefix
	})
}

// WithSessionTTL sets how long idle checklist sessions and favorites live.
// Zero keeps them forever. Default: 30 days.
func WithSessionTTL(ttl time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.sessionTTL = ttl
	})
}

// WithPageSize sets the default and maximum listing page sizes.
// Defaults: 20 and 100.
func WithPageSize(def, maxSize int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultPageSize = def
		c.maxPageSize = maxSize
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
