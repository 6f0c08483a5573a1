package cart

import "context"

type contextKey struct{}

// NewContext returns a copy of ctx carrying e
func NewContext(ctx context.Context, e *Engine) context.Context {
	return context.WithValue(ctx, contextKey{}, e)
}

// FromContext returns the engine installed by NewContext. It panics when
// there is none: asking for the cart outside its scope is a wiring bug.
func FromContext(ctx context.Context) *Engine {
	e, ok := ctx.Value(contextKey{}).(*Engine)
	if !ok || e == nil {
		panic("cart: FromContext called outside a cart scope")
	}
	return e
}
