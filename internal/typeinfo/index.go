// Package typeinfo indexes marked types and inspects prompt method
// signatures.
package typeinfo

import (
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Index maps types to values by type identity. Types which are identical per
// [types.Identical] share an entry.
type Index[T any] struct {
	m *typeutil.Map
}

// NewIndex creates an empty [Index].
func NewIndex[T any]() *Index[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Index[T]{m}
}

// Put associates v with typ. If typ is already indexed, the old value is kept
// and returned with false.
func (idx *Index[T]) Put(typ types.Type, v T) (T, bool) {
	typ = types.Unalias(typ)
	if old, ok := idx.m.At(typ).(T); ok {
		return old, false
	}
	idx.m.Set(typ, v)
	return v, true
}

// Get finds the value of typ. A nil index is empty.
func (idx *Index[T]) Get(typ types.Type) (T, bool) {
	var zero T
	if idx == nil {
		return zero, false
	}
	v, ok := idx.m.At(types.Unalias(typ)).(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// Len returns the number of indexed types.
func (idx *Index[T]) Len() int {
	if idx == nil {
		return 0
	}
	return idx.m.Len()
}
