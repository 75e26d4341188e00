package collections

import (
	"cmp"
	"fmt"

	"go.uber.org/multierr"
)

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(value T, index int) R) []R {
	res := make([]R, len(items))
	Each(items, func(v T, i int) {
		res[i] = transform(v, i)
	})
	return res
}

// MapValues returns a map with the same keys as m, each holding the result of
// applying transform to the original entry.
// The transform is called in ascending key order.
func MapValues[K cmp.Ordered, V, R any](m map[K]V, transform func(value V, key K) R) map[K]R {
	res := make(map[K]R, len(m))
	EachMap(m, func(v V, k K) {
		res[k] = transform(v, k)
	})
	return res
}

// MapOf is [Map] or [MapValues] depending on the kind of c; the result has the same shape.
func MapOf[T, R any](c Container[T], transform func(value T, key Key) R) Container[R] {
	switch c.kind {
	case KindSequence:
		return SequenceOf(Map(c.items, func(v T, i int) R {
			return transform(v, IndexKey(i))
		}))
	case KindMapping:
		return MappingOf(MapValues(c.dict, func(v T, k string) R {
			return transform(v, NameKey(k))
		}))
	default:
		return Container[R]{}
	}
}

// MapErr is like [Map] but the transform may fail.
// Every failure is collected; if there is any, the result is nil.
func MapErr[T, R any](items []T, transform func(value T, index int) (R, error)) ([]R, error) {
	var errs error
	res := Map(items, func(v T, i int) R {
		r, err := transform(v, i)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("index %d: %w", i, err))
		}
		return r
	})
	if errs != nil {
		return nil, errs
	}
	return res, nil
}
