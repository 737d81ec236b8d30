// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package bitm defines a bitmap type useful for resource management
// (e.g., tracking which slots of a fixed-size table are in use).
package bitm

import (
	"math/bits"
	"unsafe"
)

// Uint represents the granularity of a bitmap.
type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Bitm is a growable bitmap with custom granularity.
// The zero value is an empty bitmap.
type Bitm[T Uint] struct {
	m   []T
	rem int
}

// nbit returns the number of bits in T.
func (m *Bitm[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Len returns the number of bits set in the map.
func (m *Bitm[_]) Len() int { return len(m.m)*m.nbit() - m.rem }

// Cap returns the number of bits in the map.
func (m *Bitm[_]) Cap() int { return len(m.m) * m.nbit() }

// Rem returns the number of bits not set in the map.
func (m *Bitm[_]) Rem() int { return m.rem }

// Grow adds n words of unset bits to the map.
// It returns the index of the first new bit.
func (m *Bitm[T]) Grow(n int) int {
	idx := m.Cap()
	m.m = append(m.m, make([]T, n)...)
	m.rem += n * m.nbit()
	return idx
}

// Set sets bit index.
// Setting a bit that is already set has no effect.
func (m *Bitm[T]) Set(index int) {
	w, b := index/m.nbit(), index%m.nbit()
	if m.m[w]&(T(1)<<b) == 0 {
		m.m[w] |= T(1) << b
		m.rem--
	}
}

// Unset unsets bit index.
// Unsetting a bit that is not set has no effect.
func (m *Bitm[T]) Unset(index int) {
	w, b := index/m.nbit(), index%m.nbit()
	if m.m[w]&(T(1)<<b) != 0 {
		m.m[w] &^= T(1) << b
		m.rem++
	}
}

// IsSet checks whether bit index is set.
func (m *Bitm[T]) IsSet(index int) bool {
	w, b := index/m.nbit(), index%m.nbit()
	return m.m[w]&(T(1)<<b) != 0
}

// Search returns the lowest unset bit.
// It returns false if every bit is set.
func (m *Bitm[T]) Search() (index int, ok bool) {
	if m.rem == 0 {
		return
	}
	for i, w := range m.m {
		if w == ^T(0) {
			continue
		}
		return i*m.nbit() + bits.TrailingZeros64(uint64(^w)), true
	}
	// Should never happen.
	panic("bitm: rem and map out of sync")
}

// Clear unsets every bit in the map.
// It does not change its capacity.
func (m *Bitm[T]) Clear() {
	clear(m.m)
	m.rem = m.Cap()
}
