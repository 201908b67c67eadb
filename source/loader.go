package source

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"go-storefront/models"
)

// FailureMessage is shown to users when the catalog could not be loaded
const FailureMessage = "No se pudieron cargar los productos. Por favor, intenta nuevamente."

// State is a snapshot of the loader
type State struct {
	Products []models.Product
	Loading  bool
	Err      error
	// Message is the user-facing text for Err
	Message  string
	LoadedAt time.Time
}

// Ready reports whether a catalog is available
func (s State) Ready() bool {
	return !s.Loading && s.Err == nil && !s.LoadedAt.IsZero()
}

// Loader fetches the catalog once and keeps it in memory until the next
// explicit Load. At most one fetch is in flight: callers arriving while a
// fetch runs wait for that fetch instead of starting another one.
type Loader struct {
	catalog Catalog
	logger  *zap.Logger
	group   singleflight.Group

	mu        sync.RWMutex
	state     State
	onLoad    []func([]models.Product)
	onFailure []func(error)
}

// NewLoader creates a loader over catalog. A nil logger disables logging.
func NewLoader(catalog Catalog, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{catalog: catalog, logger: logger}
}

// OnLoad registers fn to run after every successful load
func (l *Loader) OnLoad(fn func([]models.Product)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onLoad = append(l.onLoad, fn)
}

// OnFailure registers fn to run after every failed load
func (l *Loader) OnFailure(fn func(error)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onFailure = append(l.onFailure, fn)
}

// Snapshot returns the current state. The product slice is a copy.
func (l *Loader) Snapshot() State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	s := l.state
	s.Products = slices.Clone(s.Products)
	return s
}

// Products returns the loaded catalog, loading it first if nothing was loaded yet
// or the previous attempt failed.
func (l *Loader) Products(ctx context.Context) ([]models.Product, error) {
	s := l.Snapshot()
	if s.Ready() {
		return s.Products, nil
	}
	if err := l.Load(ctx); err != nil {
		return nil, err
	}
	return l.Snapshot().Products, nil
}

// Load fetches the catalog. On failure the in-memory catalog is cleared and the
// error is kept in the state until a later Load succeeds.
func (l *Loader) Load(ctx context.Context) error {
	ch := l.group.DoChan("catalog", func() (any, error) {
		// The shared fetch must not die with whichever caller started it
		return nil, l.fetch(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) fetch(ctx context.Context) error {
	l.mu.Lock()
	l.state.Loading = true
	l.state.Err = nil
	l.state.Message = ""
	l.mu.Unlock()

	start := time.Now()
	products, err := l.catalog.Products(ctx)

	l.mu.Lock()
	if err != nil {
		l.state = State{Err: err, Message: FailureMessage}
		hooks := slices.Clone(l.onFailure)
		l.mu.Unlock()
		l.logger.Warn("catalog load failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		for _, fn := range hooks {
			fn(err)
		}
		return err
	}
	l.state = State{Products: products, LoadedAt: time.Now()}
	hooks := slices.Clone(l.onLoad)
	l.mu.Unlock()

	l.logger.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.Duration("elapsed", time.Since(start)))

	for _, fn := range hooks {
		fn(slices.Clone(products))
	}
	return nil
}
