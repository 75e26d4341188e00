// Package collections provides helpers for visiting and transforming containers
// that hold multiple elements.
//
// A container is either a sequence, visited as (value, index) in ascending index order,
// or a mapping, visited as (value, key) in ascending key order. Go maps have no
// enumeration order of their own, so the key order is what makes every helper here
// deterministic.
//
// There are three flavors of each helper:
//   - statically typed functions over slices and maps: [Each], [EachMap], [Filter], [Map],
//     [MapValues];
//   - functions over the tagged [Container] variant: [EachOf], [FilterOf], [MapOf];
//   - dynamic functions over values of unknown type: [EachAny], [FilterAny], [MapAny].
//
// None of the helpers modify their input.
package collections

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidArgument is returned when a collection is neither a sequence nor a mapping.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotSequence is returned by operations that only accept sequences.
	ErrNotSequence = fmt.Errorf("%w: not a sequence", ErrInvalidArgument)
)

// Kind is the shape of a container.
type Kind int

const (
	KindInvalid Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "invalid"
	}
}

// Key is the position of an element: an index in a sequence or a key in a mapping.
type Key struct {
	name  string
	index int
	named bool
}

// IndexKey returns the key of the i-th element of a sequence.
func IndexKey(i int) Key {
	return Key{index: i}
}

// NameKey returns the key of a mapping entry.
func NameKey(name string) Key {
	return Key{name: name, named: true}
}

// IsIndex reports whether k is a sequence index.
func (k Key) IsIndex() bool {
	return !k.named
}

// Index returns the sequence index, or -1 for mapping keys.
func (k Key) Index() int {
	if k.named {
		return -1
	}
	return k.index
}

// Name returns the mapping key, or "" for sequence indexes.
func (k Key) Name() string {
	return k.name
}

func (k Key) String() string {
	if k.named {
		return strconv.Quote(k.name)
	}
	return strconv.Itoa(k.index)
}
