package earlyhelp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/kailas-cloud/earlyhelp/internal/db"
	dbBadger "github.com/kailas-cloud/earlyhelp/internal/db/badger"
	dbPostgres "github.com/kailas-cloud/earlyhelp/internal/db/postgres"
	dbRedis "github.com/kailas-cloud/earlyhelp/internal/db/redis"
	"github.com/kailas-cloud/earlyhelp/internal/domain/category"
	domchecklist "github.com/kailas-cloud/earlyhelp/internal/domain/checklist"
	"github.com/kailas-cloud/earlyhelp/internal/domain/contact"
	"github.com/kailas-cloud/earlyhelp/internal/domain/entry"
	domfav "github.com/kailas-cloud/earlyhelp/internal/domain/favorites"
	domglossary "github.com/kailas-cloud/earlyhelp/internal/domain/glossary"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/request"
	"github.com/kailas-cloud/earlyhelp/internal/domain/search/result"
	contentrepo "github.com/kailas-cloud/earlyhelp/internal/repository/content"
	sessionrepo "github.com/kailas-cloud/earlyhelp/internal/repository/session"
	checklistuc "github.com/kailas-cloud/earlyhelp/internal/usecase/checklist"
	favoritesuc "github.com/kailas-cloud/earlyhelp/internal/usecase/favorites"
	glossaryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/glossary"
	healthuc "github.com/kailas-cloud/earlyhelp/internal/usecase/health"
	libraryuc "github.com/kailas-cloud/earlyhelp/internal/usecase/library"
	navigatoruc "github.com/kailas-cloud/earlyhelp/internal/usecase/navigator"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "earlyhelp:"
	defaultSessionTTL       = 30 * 24 * time.Hour
)

// Internal interfaces, swapped for fakes in tests.
type libraryUseCase interface {
	Search(ctx context.Context, req request.Request) (result.Page[entry.Entry], error)
	Get(ctx context.Context, id string) (entry.Entry, error)
	Tags(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]category.Category, error)
	Category(ctx context.Context, id string) (category.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (category.Category, error)
	UpsertEntry(ctx context.Context, f entry.Fields) (entry.Entry, bool, error)
	DeleteEntry(ctx context.Context, id string) error
	UpsertCategory(ctx context.Context, id, name, description, slug string, order int) (category.Category, bool, error)
	DeleteCategory(ctx context.Context, id string) error
}

type glossaryUseCase interface {
	Search(ctx context.Context, req request.Request) (result.Page[domglossary.Item], error)
	Get(ctx context.Context, id string) (domglossary.Item, error)
	Upsert(ctx context.Context, f domglossary.Fields) (domglossary.Item, bool, error)
	Delete(ctx context.Context, id string) error
}

type navigatorUseCase interface {
	Find(ctx context.Context, req request.Request) (result.Page[contact.Contact], error)
	Get(ctx context.Context, id string) (contact.Contact, error)
	Upsert(ctx context.Context, f contact.Fields) (contact.Contact, bool, error)
	Delete(ctx context.Context, id string) error
}

type checklistUseCase interface {
	Score(progress domchecklist.Progress) domchecklist.Result
	Start(ctx context.Context) (checklistuc.Evaluation, error)
	Load(ctx context.Context, sessionID string) (checklistuc.Evaluation, error)
	Save(ctx context.Context, sessionID string, progress domchecklist.Progress) (checklistuc.Evaluation, error)
	Reset(ctx context.Context, sessionID string) error
}

type favoritesUseCase interface {
	List(ctx context.Context, owner string) (domfav.Favorites, error)
	Add(ctx context.Context, owner, entryID string) (domfav.Favorites, error)
	Remove(ctx context.Context, owner, entryID string) (domfav.Favorites, error)
	Clear(ctx context.Context, owner string) error
}

// Client is the embedded Early Help entry point.
type Client struct {
	pool  *pgxpool.Pool
	store db.Store

	librarySvc   libraryUseCase
	glossarySvc  glossaryUseCase
	navigatorSvc navigatorUseCase
	checklistSvc checklistUseCase
	favoritesSvc favoritesUseCase
	healthSvc    healthUseCase
	obs          *observer
}

// New creates a Client, connects to Postgres and the session store and waits
// until both answer. The provided context bounds the readiness checks.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		driver:     driverBadger,
		inMemory:   true,
		keyPrefix:  defaultKeyPrefix,
		sessionTTL: defaultSessionTTL,
	}
	for _, o := range opts {
		o.apply(cfg)
	}
	if cfg.postgres == nil {
		return nil, errors.New("earlyhelp: content database required (use WithPostgres)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	pool, err := dbPostgres.NewPool(ctx, postgresConfig(*cfg.postgres), zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("earlyhelp: connect postgres: %w", err)
	}
	if cfg.autoMigrate {
		if err := dbPostgres.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("earlyhelp: migrate: %w", err)
		}
	}

	store, err := createStore(cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}
	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		pool.Close()
		return nil, fmt.Errorf("earlyhelp: session store not ready: %w", err)
	}

	return wireClient(pool, store, cfg, obs), nil
}

func postgresConfig(c PostgresConfig) dbPostgres.Config {
	port := c.Port
	if port == 0 {
		port = 5432
	}
	ssl := c.SSLMode
	if ssl == "" {
		ssl = "disable"
	}
	return dbPostgres.Config{
		Host:     c.Host,
		Port:     strconv.Itoa(port),
		User:     c.User,
		Password: c.Password,
		DBName:   c.DBName,
		SSLMode:  ssl,
		MaxConns: c.MaxConns,
	}
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case driverValkey, driverRedis:
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("earlyhelp: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	case driverBadger:
		s, err := dbBadger.Open(dbBadger.Config{
			Path:     cfg.badgerPath,
			InMemory: cfg.inMemory,
		})
		if err != nil {
			return nil, fmt.Errorf("earlyhelp: open badger store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("earlyhelp: unknown session driver %q", cfg.driver)
	}
}

func wireClient(pool *pgxpool.Pool, store db.Store, cfg *clientConfig, obs *observer) *Client {
	nop := zap.NewNop()

	entries := contentrepo.NewEntries(pool)
	categories := contentrepo.NewCategories(pool)
	progress := sessionrepo.NewProgressStore(store, cfg.keyPrefix, cfg.sessionTTL, nop)
	favorites := sessionrepo.NewFavoritesStore(store, cfg.keyPrefix, cfg.sessionTTL, nop)

	libSvc := libraryuc.New(entries, categories, libraryuc.Listing{
		DefaultLimit: cfg.defaultPageSize,
		MaxLimit:     cfg.maxPageSize,
	})

	return &Client{
		pool:         pool,
		store:        store,
		librarySvc:   libSvc,
		glossarySvc:  glossaryuc.New(contentrepo.NewGlossary(pool), cfg.defaultPageSize, cfg.maxPageSize),
		navigatorSvc: navigatoruc.New(contentrepo.NewContacts(pool), cfg.defaultPageSize, cfg.maxPageSize),
		checklistSvc: checklistuc.New(progress),
		favoritesSvc: favoritesuc.New(favorites, libSvc),
		healthSvc:    healthuc.New(pool, store),
		obs:          obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
	if c.pool != nil {
		c.pool.Close()
	}
}

// Ping checks connectivity to the content database and the session store.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping session store: %w", err)
	}
	return nil
}

// Library returns the library entries and categories service.
func (c *Client) Library() *LibraryService {
	return &LibraryService{svc: c.librarySvc, obs: c.obs}
}

// Glossary returns the glossary service.
func (c *Client) Glossary() *GlossaryService {
	return &GlossaryService{svc: c.glossarySvc, obs: c.obs}
}

// Navigator returns the support contact directory.
func (c *Client) Navigator() *NavigatorService {
	return &NavigatorService{svc: c.navigatorSvc, obs: c.obs}
}

// Checklist returns the checklist scoring and session service.
func (c *Client) Checklist() *ChecklistService {
	return &ChecklistService{svc: c.checklistSvc, obs: c.obs}
}

// Favorites returns the saved entries service.
func (c *Client) Favorites() *FavoritesService {
	return &FavoritesService{svc: c.favoritesSvc, obs: c.obs}
}
