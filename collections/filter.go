package collections

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/adobaai/iterz"
)

// Filter iterates over items, returning a new slice of all items predicate returns true for.
// The relative order of the kept items is preserved.
func Filter[V any](items []V, predicate func(value V, index int) bool) []V {
	acc := make(iterz.Slice[V], 0, len(items))
	Each(items, func(v V, i int) {
		if predicate(v, i) {
			acc.Append(v)
		}
	})
	return acc.Get()
}

// FilterOf is [Filter] for containers. Mappings are rejected with [ErrNotSequence].
func FilterOf[V any](c Container[V], predicate func(value V, key Key) bool) ([]V, error) {
	items, ok := c.Sequence()
	if !ok {
		return nil, fmt.Errorf("filter %s: %w", c.Kind(), ErrNotSequence)
	}
	return Filter(items, func(v V, i int) bool {
		return predicate(v, IndexKey(i))
	}), nil
}

// FilterErr is like [Filter] but the predicate may fail.
// Every failure is collected; if there is any, the result is nil.
func FilterErr[V any](items []V, predicate func(value V, index int) (bool, error)) ([]V, error) {
	var errs error
	res := Filter(items, func(v V, i int) bool {
		ok, err := predicate(v, i)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("index %d: %w", i, err))
			return false
		}
		return ok
	})
	if errs != nil {
		return nil, errs
	}
	return res, nil
}
