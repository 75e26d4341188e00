package collections

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// Each calls visitor once for every element of items, in ascending index order.
func Each[V any](items []V, visitor func(value V, index int)) {
	for i := range len(items) {
		visitor(items[i], i)
	}
}

// EachMap calls visitor once for every entry of m, in ascending key order.
func EachMap[K cmp.Ordered, V any](m map[K]V, visitor func(value V, key K)) {
	for _, k := range sortedKeys(m) {
		visitor(m[k], k)
	}
}

// EachOf dispatches to [Each] or [EachMap] according to the kind of c.
// An invalid container has no elements.
func EachOf[V any](c Container[V], visitor func(value V, key Key)) {
	switch c.kind {
	case KindSequence:
		Each(c.items, func(v V, i int) {
			visitor(v, IndexKey(i))
		})
	case KindMapping:
		EachMap(c.dict, func(v V, k string) {
			visitor(v, NameKey(k))
		})
	}
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}
