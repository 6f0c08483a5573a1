package query

import (
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
)

// DefaultDebounce is the quiet period before search text takes effect
const DefaultDebounce = 300 * time.Millisecond

// Listener receives every recomputed view
type Listener func(View)

// Engine owns the session query and the view derived from it.
//
// Every mutation recomputes the view synchronously and pushes it to listeners,
// except SetSearchText, which waits for the debounce quiet period. At most one
// debounce timer is pending at a time. After Close all mutations are ignored.
type Engine struct {
	mu sync.Mutex

	catalog []domain.Product
	facets  Facets
	query   Query
	view    View

	quiet   time.Duration
	timer   *time.Timer
	pending string
	gen     uint64
	closed  bool

	listeners map[uint64]Listener
	nextID    uint64

	metrics *Metrics
	log     zerolog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithDebounce overrides the search quiet period. Zero applies search text immediately.
func WithDebounce(d time.Duration) Option {
	return func(e *Engine) { e.quiet = d }
}

// WithMetrics records recomputations
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithLogger replaces the global logger
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine creates an engine with the default query and an empty catalog
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		query:     Default(),
		quiet:     DefaultDebounce,
		listeners: make(map[uint64]Listener),
		log:       logger.Logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.facets = FacetsOf(nil)
	e.view = Apply(nil, e.query)
	return e
}

// SetCatalog replaces the source collection; nil means no catalog yet
func (e *Engine) SetCatalog(products []domain.Product) {
	e.mutate("catalog", func() {
		e.catalog = slices.Clone(products)
		e.facets = FacetsOf(e.catalog)
		e.log.Debug().
			Int("products", len(e.catalog)).
			Int("categories", len(e.facets.Categories)).
			Int("brands", len(e.facets.Brands)).
			Msg("Catalog replaced")
	})
}

// SetSearchText schedules text to become the search term once no further
// call arrives within the quiet period. Earlier pending values are dropped.
func (e *Engine) SetSearchText(text string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	e.stopTimerLocked()
	e.pending = text

	if e.quiet <= 0 {
		e.mu.Unlock()
		e.mutate("search", func() { e.query.Search = text })
		return
	}

	gen := e.gen
	e.timer = time.AfterFunc(e.quiet, func() { e.fireSearch(gen) })
	e.mu.Unlock()
}

func (e *Engine) fireSearch(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.gen {
		e.mu.Unlock()
		return
	}
	e.timer = nil
	e.query.Search = e.pending
	v, listeners := e.recomputeLocked("search")
	e.mu.Unlock()

	notify(listeners, v)
}

// stopTimerLocked cancels the pending debounce. Bumping gen makes a callback
// that already started return without applying anything.
func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

// ToggleCategory selects category if unselected and unselects it otherwise
func (e *Engine) ToggleCategory(category string) {
	e.mutate("category", func() { e.query.Categories = toggle(e.query.Categories, category) })
}

// ToggleBrand selects brand if unselected and unselects it otherwise
func (e *Engine) ToggleBrand(brand string) {
	e.mutate("brand", func() { e.query.Brands = toggle(e.query.Brands, brand) })
}

// SetPriceRange replaces both bounds. min > max is accepted and matches nothing.
func (e *Engine) SetPriceRange(min, max float64) {
	e.mutate("price", func() { e.query.Price = PriceRange{Min: min, Max: max} })
}

// SetSortKey replaces the ordering. Unknown keys leave products in catalog order.
func (e *Engine) SetSortKey(key SortKey) {
	e.mutate("sort", func() {
		if !key.Valid() {
			e.log.Debug().Str("sort", string(key)).Msg("Unknown sort key, keeping catalog order")
		}
		e.query.Sort = key
	})
}

// ClearAll resets the whole query at once, including any pending search
func (e *Engine) ClearAll() {
	e.mutate("clear", func() {
		e.stopTimerLocked()
		e.pending = ""
		e.query = Default()
	})
}

// Query returns a copy of the active query
func (e *Engine) Query() Query {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.query.Clone()
}

// View returns the current filtered view
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneView(e.view)
}

// Facets returns the category and brand options of the full catalog
func (e *Engine) Facets() Facets {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Facets{
		Categories: slices.Clone(e.facets.Categories),
		Brands:     slices.Clone(e.facets.Brands),
	}
}

// Catalog returns a copy of the source collection
func (e *Engine) Catalog() []domain.Product {
	e.mu.Lock()
	defer e.mu.Unlock()
	return slices.Clone(e.catalog)
}

// Stats summarizes the loaded catalog and the current view
type Stats struct {
	Products   int `json:"products"`
	Categories int `json:"categories"`
	Brands     int `json:"brands"`
	InStock    int `json:"in_stock"`
	Matched    int `json:"matched"`
}

// Stats returns counts for the catalog header
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Stats{
		Products:   len(e.catalog),
		Categories: len(e.facets.Categories),
		Brands:     len(e.facets.Brands),
		Matched:    e.view.Matched,
	}
	for _, p := range e.catalog {
		if p.InStock() {
			st.InStock++
		}
	}
	return st
}

// Subscribe registers fn for every future view. The returned func unsubscribes.
func (e *Engine) Subscribe(fn Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextID
	e.nextID++
	if e.listeners != nil {
		e.listeners[id] = fn
	}

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

// Close cancels the pending debounce timer and drops all listeners
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.stopTimerLocked()
	e.listeners = nil
}

func (e *Engine) mutate(trigger string, fn func()) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	fn()
	v, listeners := e.recomputeLocked(trigger)
	e.mu.Unlock()

	notify(listeners, v)
}

func (e *Engine) recomputeLocked(trigger string) (View, []Listener) {
	e.view = Apply(e.catalog, e.query)
	e.metrics.observe(trigger, e.view)

	listeners := make([]Listener, 0, len(e.listeners))
	for _, l := range e.listeners {
		listeners = append(listeners, l)
	}
	return cloneView(e.view), listeners
}

func notify(listeners []Listener, v View) {
	for _, l := range listeners {
		l(cloneView(v))
	}
}

func cloneView(v View) View {
	v.Products = slices.Clone(v.Products)
	if v.Products == nil {
		v.Products = []domain.Product{}
	}
	return v
}
