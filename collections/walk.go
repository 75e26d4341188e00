package collections

import (
	"context"
	"fmt"

	"github.com/rs/xid"

	"github.com/adobaai/iterz/middleware"
)

// Step is a single element handed to a [Walk] handler.
type Step[V any] struct {
	context.Context
	WalkID string
	Key    Key
	Elem   V
}

// WithContext returns a copy of s carrying ctx.
func (s Step[V]) WithContext(ctx context.Context) Step[V] {
	s.Context = ctx
	return s
}

// Name returns a short description of the step, suitable for logs and span names.
func (s Step[V]) Name() string {
	return "walk " + s.WalkID + " " + s.Key.String()
}

type walkOptions[V any] struct {
	id  string
	mws []middleware.Middleware[Step[V]]
}

type WalkOption[V any] func(o *walkOptions[V])

// WithMiddleware wraps the handler of a walk. The first middleware is the outermost.
func WithMiddleware[V any](mws ...middleware.Middleware[Step[V]]) WalkOption[V] {
	return func(o *walkOptions[V]) {
		o.mws = append(o.mws, mws...)
	}
}

// WithWalkID sets the walk ID instead of generating one.
func WithWalkID[V any](id string) WalkOption[V] {
	return func(o *walkOptions[V]) {
		o.id = id
	}
}

// Walk calls h for every element of c in [EachOf] order.
// It stops at the first error, which is returned annotated with the walk ID and key,
// and before each step if ctx is done.
func Walk[V any](
	ctx context.Context,
	c Container[V],
	h middleware.Handler[Step[V]],
	opts ...WalkOption[V],
) error {
	o := walkOptions[V]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == "" {
		o.id = xid.New().String()
	}
	if len(o.mws) > 0 {
		h = middleware.Chain(o.mws...)(h)
	}

	for k, v := range c.All() {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := Step[V]{Context: ctx, WalkID: o.id, Key: k, Elem: v}
		if err := h(step); err != nil {
			return fmt.Errorf("walk %s at %s: %w", o.id, k, err)
		}
	}
	return nil
}
