package find

import (
	"reflect"

	"github.com/ib-77/outcome/pkg/outcome"
)

// KV is an ordered key-value pair; slices of KV may repeat keys.
type KV[K comparable, V any] struct {
	Key   K
	Value V
}

// At looks up the element at a zero-based index. A found element that is nil
// is still found; only an out-of-range index is None.
func At[T any](seq []T, index int) outcome.Option[T] {
	if index < 0 || index >= len(seq) {
		return outcome.None[T]()
	}
	return outcome.Some(seq[index])
}

// AtResult is At on the error channel, failing with ErrNotFound.
func AtResult[T any](seq []T, index int) outcome.Result[T] {
	if index < 0 || index >= len(seq) {
		return outcome.Fail[T](outcome.ErrNotFound)
	}
	return outcome.Success(seq[index])
}

// First returns the first element, in order, for which match holds. The
// predicate is not called past the first match; a panic inside it propagates.
func First[T any](seq []T, match func(T) bool) outcome.Option[T] {
	for _, v := range seq {
		if match(v) {
			return outcome.Some(v)
		}
	}
	return outcome.None[T]()
}

// FirstResult is First on the error channel, failing with ErrNotFound.
func FirstResult[T any](seq []T, match func(T) bool) outcome.Result[T] {
	for _, v := range seq {
		if match(v) {
			return outcome.Success(v)
		}
	}
	return outcome.Fail[T](outcome.ErrNotFound)
}

// FirstTry is First with a fallible predicate: the first predicate error
// aborts the scan and becomes the failure.
func FirstTry[T any](seq []T, match func(T) (bool, error)) outcome.Result[T] {
	for _, v := range seq {
		ok, err := match(v)
		if err != nil {
			return outcome.Fail[T](err)
		}
		if ok {
			return outcome.Success(v)
		}
	}
	return outcome.Fail[T](outcome.ErrNotFound)
}

// Key looks up k in m by key-set membership: a present key with a nil value
// is Some(nil), an absent key is None.
func Key[K comparable, V any](m map[K]V, k K) outcome.Option[V] {
	if v, ok := m[k]; ok {
		return outcome.Some(v)
	}
	return outcome.None[V]()
}

// KeyResult is Key on the error channel, failing with ErrNotFound.
func KeyResult[K comparable, V any](m map[K]V, k K) outcome.Result[V] {
	if v, ok := m[k]; ok {
		return outcome.Success(v)
	}
	return outcome.Fail[V](outcome.ErrNotFound)
}

// KeyIn is the dynamic form of Key for containers of unknown static type.
// It panics with ErrNotMap when m is not a map; a key that cannot be a key
// of m is simply absent.
func KeyIn(m any, key any) outcome.Option[any] {
	mv := reflect.ValueOf(m)
	if !mv.IsValid() || mv.Kind() != reflect.Map {
		panic(outcome.ErrNotMap)
	}

	kv := reflect.ValueOf(key)
	if !kv.IsValid() || !kv.Type().AssignableTo(mv.Type().Key()) {
		return outcome.None[any]()
	}

	v := mv.MapIndex(kv)
	if !v.IsValid() {
		return outcome.None[any]()
	}
	return outcome.Some(v.Interface())
}

// ByKey scans an ordered key-value list in order and returns the value of
// the first pair whose key matches. Duplicate keys are allowed; later pairs
// are ignored.
func ByKey[K comparable, V any](pairs []KV[K, V], key K) outcome.Option[V] {
	for _, p := range pairs {
		if p.Key == key {
			return outcome.Some(p.Value)
		}
	}
	return outcome.None[V]()
}
