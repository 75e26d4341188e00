package collections

import "iter"

// Container is either a sequence or a mapping, resolved once when it is built.
// The zero value is an invalid, empty container.
type Container[V any] struct {
	kind  Kind
	items []V
	dict  map[string]V
}

// SequenceOf wraps items as a sequence container. The slice is not copied.
func SequenceOf[V any](items []V) Container[V] {
	return Container[V]{kind: KindSequence, items: items}
}

// MappingOf wraps m as a mapping container. The map is not copied.
func MappingOf[V any](m map[string]V) Container[V] {
	return Container[V]{kind: KindMapping, dict: m}
}

func (c Container[V]) Kind() Kind {
	return c.kind
}

// Len returns the number of elements.
func (c Container[V]) Len() int {
	switch c.kind {
	case KindSequence:
		return len(c.items)
	case KindMapping:
		return len(c.dict)
	default:
		return 0
	}
}

// Sequence returns the underlying slice if c is a sequence.
func (c Container[V]) Sequence() ([]V, bool) {
	return c.items, c.kind == KindSequence
}

// Mapping returns the underlying map if c is a mapping.
func (c Container[V]) Mapping() (map[string]V, bool) {
	return c.dict, c.kind == KindMapping
}

// All returns an iterator over the elements of c in the same order as [EachOf].
func (c Container[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		switch c.kind {
		case KindSequence:
			for i, v := range c.items {
				if !yield(IndexKey(i), v) {
					return
				}
			}
		case KindMapping:
			for _, k := range sortedKeys(c.dict) {
				if !yield(NameKey(k), c.dict[k]) {
					return
				}
			}
		}
	}
}
