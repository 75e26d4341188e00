// Package iterz provides elementary helpers for iterating over and transforming
// collections. See the collections package for Each, Filter and Map.
package iterz

// Slice is an accumulator that grows through a pointer, so closures can append to it
// without reassigning the captured variable.
type Slice[T any] []T

func (a *Slice[T]) Append(elems ...T) {
	*a = append(*a, elems...)
}

func (a *Slice[T]) Get() []T {
	return *a
}

// Len returns the number of accumulated elements.
func (a *Slice[T]) Len() int {
	return len(*a)
}
