package collections

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// KindOf classifies collection: slices and arrays are sequences, maps with string-like
// keys are mappings. Anything else, including nil, is an [ErrInvalidArgument].
func KindOf(collection any) (Kind, error) {
	if collection == nil {
		return KindInvalid, fmt.Errorf("%w: nil collection", ErrInvalidArgument)
	}
	t := reflect.TypeOf(collection)
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		return KindSequence, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return KindInvalid, fmt.Errorf("%w: expected string-like map keys, got %s", ErrInvalidArgument, t.Key())
		}
		return KindMapping, nil
	}
	return KindInvalid, fmt.Errorf("%w: expected slice or map, got %T", ErrInvalidArgument, collection)
}

// EachAny visits collection without knowing its type in advance.
// For sequences the key passed to visitor is the int index, for mappings it is the map key.
// Nil slices and maps are empty; unsupported values return an error and are not visited.
func EachAny(collection any, visitor func(value any, key any)) error {
	switch actual := collection.(type) {
	case []any:
		Each(actual, func(v any, i int) { visitor(v, i) })
		return nil
	case map[string]any:
		EachMap(actual, func(v any, k string) { visitor(v, k) })
		return nil
	}

	kind, err := KindOf(collection)
	if err != nil {
		return err
	}
	val := reflect.ValueOf(collection)
	if kind == KindSequence {
		for i := range val.Len() {
			visitor(val.Index(i).Interface(), i)
		}
		return nil
	}
	keys := val.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(a.String(), b.String())
	})
	for _, k := range keys {
		visitor(val.MapIndex(k).Interface(), k.Interface())
	}
	return nil
}

// FilterAny is [Filter] for a sequence of unknown type.
func FilterAny(collection any, predicate func(value any, index int) bool) ([]any, error) {
	kind, err := KindOf(collection)
	if err != nil {
		return nil, err
	}
	if kind != KindSequence {
		return nil, fmt.Errorf("filter %T: %w", collection, ErrNotSequence)
	}
	res := make([]any, 0, reflect.ValueOf(collection).Len())
	err = EachAny(collection, func(v, k any) {
		if predicate(v, k.(int)) {
			res = append(res, v)
		}
	})
	return res, err
}

// MapAny is [Map] for a collection of unknown type.
// It returns a []any for sequences and a map[string]any for mappings.
func MapAny(collection any, transform func(value any, key any) any) (any, error) {
	kind, err := KindOf(collection)
	if err != nil {
		return nil, err
	}
	n := reflect.ValueOf(collection).Len()
	if kind == KindSequence {
		res := make([]any, n)
		err = EachAny(collection, func(v, k any) {
			i := k.(int)
			res[i] = transform(v, i)
		})
		return res, err
	}

	res := make(map[string]any, n)
	err = EachAny(collection, func(v, k any) {
		res[reflect.ValueOf(k).String()] = transform(v, k)
	})
	return res, err
}
