// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package mem implements a typed arena for values that only live for a
// single frame. Allocations are bump-allocated from per-type slabs and
// recycled by [Arena.Reset] instead of being handed to the garbage
// collector.
package mem

import (
	"reflect"
)

const slabLen = 256

type slab struct {
	// slice of the slab's element type
	data reflect.Value
	next int
}

type Arena struct {
	slabs map[reflect.Type][]*slab
}

func NewArena() *Arena {
	return &Arena{
		slabs: make(map[reflect.Type][]*slab),
	}
}

// alloc returns a slice value of n contiguous, unused elements of typ.
func (a *Arena) alloc(typ reflect.Type, n int) reflect.Value {
	if a.slabs == nil {
		a.slabs = make(map[reflect.Type][]*slab)
	}
	for _, sl := range a.slabs[typ] {
		if sl.data.Len()-sl.next >= n {
			v := sl.data.Slice3(sl.next, sl.next+n, sl.next+n)
			sl.next += n
			return v
		}
	}
	size := slabLen
	if n > size {
		size = n
	}
	sl := &slab{
		data: reflect.MakeSlice(reflect.SliceOf(typ), size, size),
		next: n,
	}
	a.slabs[typ] = append(a.slabs[typ], sl)
	return sl.data.Slice3(0, n, n)
}

// Reset makes all of the arena's memory available for reuse. Values handed
// out before the call must no longer be used. Used elements are zeroed so
// that they don't keep Go pointers alive.
func (a *Arena) Reset() {
	for _, slabs := range a.slabs {
		for _, sl := range slabs {
			z := reflect.Zero(sl.data.Type().Elem())
			for i := range sl.next {
				sl.data.Index(i).Set(z)
			}
			sl.next = 0
		}
	}
}

func typeOf[T any]() reflect.Type {
	// We cannot use TypeOf(*new(T)) when T is an interface type, because
	// that passes a nil interface to TypeOf, which returns nil.
	return reflect.TypeOf((*T)(nil)).Elem()
}

func New[T any](a *Arena) *T {
	return a.alloc(typeOf[T](), 1).Index(0).Addr().Interface().(*T)
}

func Make[T any](a *Arena, v T) *T {
	ptr := New[T](a)
	*ptr = v
	return ptr
}

func NewSlice[T ~[]E, E any](a *Arena, len, cap int) T {
	if cap == 0 {
		return nil
	}
	s := a.alloc(typeOf[E](), cap).Interface().([]E)
	return T(s)[:len]
}

func MakeSlice[T ~[]E, E any](a *Arena, values T) T {
	s := NewSlice[T](a, len(values), len(values))
	copy(s, values)
	return s
}

func Varargs[E any](a *Arena, values ...E) []E {
	return MakeSlice(a, values)
}

func Append[T ~[]E, E any](a *Arena, s T, data ...E) T {
	if n := len(s) + len(data) - cap(s); n > 0 {
		newCap := 2 * cap(s)
		if newCap < len(s)+len(data) {
			newCap = len(s) + len(data)
		}
		s2 := NewSlice[T](a, len(s), newCap)
		copy(s2, s)
		s = s2
	}
	return append(s, data...)
}
