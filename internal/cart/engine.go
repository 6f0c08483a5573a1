package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tair/storefront/internal/cart/domain"
	catalog "github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// DefaultStorageKey is the well-known key the cart is stored under
const DefaultStorageKey = "starlfinx-cart"

// Op names a cart mutation
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
	OpClear  Op = "clear"
)

// Change describes a completed mutation and the cart it produced
type Change struct {
	Op        Op
	ProductID int
	Quantity  int
	Cart      domain.Cart
}

// Observer is notified after every persisted mutation
type Observer func(ctx context.Context, change Change)

// Engine owns the cart for one session. Every mutation is written through to
// the store before the call returns.
type Engine struct {
	mu    sync.RWMutex
	cart  domain.Cart
	store domain.Store
	key   string
	ready bool

	observers map[uint64]Observer
	nextID    uint64

	metrics *Metrics
	log     zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithStorageKey overrides DefaultStorageKey
func WithStorageKey(key string) Option {
	return func(e *Engine) { e.key = key }
}

// WithMetrics records cart gauges and mutation counts
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger replaces the global logger
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine and hydrates it from store exactly once. A missing
// record starts an empty cart; an unreadable one is logged and discarded.
func New(ctx context.Context, store domain.Store, opts ...Option) *Engine {
	e := &Engine{
		store:     store,
		key:       DefaultStorageKey,
		observers: make(map[uint64]Observer),
		log:       logger.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.cart = e.hydrate(ctx)
	e.ready = true
	e.metrics.observe(e.cart)
	return e
}

func (e *Engine) hydrate(ctx context.Context) domain.Cart {
	data, err := e.store.Load(ctx, e.key)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Cart{}
	}
	if err != nil {
		e.log.Warn().Err(err).Str("key", e.key).Msg("Failed to read stored cart, starting empty")
		return domain.Cart{}
	}

	c, err := domain.Unmarshal(data)
	if err != nil {
		e.log.Warn().Err(err).Str("key", e.key).Msg("Discarding corrupt stored cart")
		return domain.Cart{}
	}

	e.log.Info().
		Str("key", e.key).
		Int("lines", c.Len()).
		Int("items", c.Count()).
		Msg("Cart restored")
	return c
}

// AddToCart adds one unit of p. Stock is not checked.
func (e *Engine) AddToCart(ctx context.Context, p catalog.Product) error {
	return e.mutate(ctx, Change{Op: OpAdd, ProductID: p.ID, Quantity: 1}, func(c *domain.Cart) {
		c.Add(p)
	})
}

// RemoveFromCart deletes the line for productID; absent ids are a no-op
func (e *Engine) RemoveFromCart(ctx context.Context, productID int) error {
	return e.mutate(ctx, Change{Op: OpRemove, ProductID: productID}, func(c *domain.Cart) {
		c.Remove(productID)
	})
}

// UpdateQuantity sets an absolute quantity; quantity <= 0 removes the line
func (e *Engine) UpdateQuantity(ctx context.Context, productID, quantity int) error {
	op := OpUpdate
	if quantity <= 0 {
		op = OpRemove
	}
	return e.mutate(ctx, Change{Op: op, ProductID: productID, Quantity: quantity}, func(c *domain.Cart) {
		c.SetQuantity(productID, quantity)
	})
}

// ClearCart empties the cart
func (e *Engine) ClearCart(ctx context.Context) error {
	return e.mutate(ctx, Change{Op: OpClear}, func(c *domain.Cart) {
		c.Clear()
	})
}

// Total is the sum of price times quantity over all lines
func (e *Engine) Total() float64 {
	e.mustBeReady()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Total()
}

// Count is the number of units in the cart
func (e *Engine) Count() int {
	e.mustBeReady()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Count()
}

// Len is the number of distinct products in the cart
func (e *Engine) Len() int {
	e.mustBeReady()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Len()
}

// Lines returns the lines in cart order
func (e *Engine) Lines() []domain.Line {
	e.mustBeReady()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Lines()
}

// Snapshot returns an independent copy of the cart
func (e *Engine) Snapshot() domain.Cart {
	e.mustBeReady()
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cart.Clone()
}

// Subscribe registers fn for every future mutation. The returned func unsubscribes.
func (e *Engine) Subscribe(fn Observer) func() {
	e.mustBeReady()
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	e.observers[id] = fn

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.observers, id)
	}
}

// mutate applies fn, writes the whole cart through to the store and then
// notifies observers. A failed write keeps the in-memory change and is
// returned to the caller.
func (e *Engine) mutate(ctx context.Context, change Change, fn func(c *domain.Cart)) error {
	e.mustBeReady()

	e.mu.Lock()
	fn(&e.cart)
	snapshot := e.cart.Clone()
	err := e.persistLocked(ctx, snapshot)
	observers := make([]Observer, 0, len(e.observers))
	for _, o := range e.observers {
		observers = append(observers, o)
	}
	e.mu.Unlock()

	e.metrics.mutation(change.Op, snapshot, err)
	if err != nil {
		e.log.Error().
			Err(err).
			Str("op", string(change.Op)).
			Int("product_id", change.ProductID).
			Msg("Failed to persist cart")
		return err
	}

	change.Cart = snapshot
	for _, o := range observers {
		o(ctx, change)
	}
	return nil
}

func (e *Engine) persistLocked(ctx context.Context, c domain.Cart) error {
	data, err := domain.Marshal(c)
	if err != nil {
		return err
	}
	if err := e.store.Save(ctx, e.key, data); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// mustBeReady panics when the engine was not built with New. That is a
// wiring bug, not a data condition, so it must not degrade silently.
func (e *Engine) mustBeReady() {
	if e == nil || !e.ready {
		panic("cart: engine used before it was created with cart.New")
	}
}
