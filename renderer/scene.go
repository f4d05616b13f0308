// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

// Package renderer holds the CPU side of the drawing pipeline: the layered
// shape store, the memoizing mesh cache and the batch builder that packs
// meshes for a single GPU upload.
package renderer

import (
	"iter"
	"slices"

	"honnef.co/go/facet/gfx"
)

// ShapeID identifies a shape for the lifetime of a scene. IDs are never
// reused within one scene.
type ShapeID uint64

// Key addresses a shape in its scene.
type Key struct {
	Layer int
	Index int
}

type entry struct {
	id      ShapeID
	version uint64
	shape   gfx.Shape
}

type layerRow struct {
	layer   int
	entries []entry
}

// Scene is the layered shape store. Shapes draw in ascending layer order
// and, within a layer, in insertion order. Mutating a shape through Update
// bumps its geometry version, which invalidates the cached mesh lazily on
// the next lookup.
//
// Scene is not safe for concurrent use; like the rest of the engine it
// expects a single calling goroutine.
type Scene struct {
	rows   []layerRow
	nextID ShapeID
}

// Add inserts a shape into the given layer and returns its key.
func (s *Scene) Add(layer int, shape gfx.Shape) Key {
	idx, ok := slices.BinarySearchFunc(s.rows, layer, func(r layerRow, l int) int {
		return r.layer - l
	})
	if !ok {
		s.rows = slices.Insert(s.rows, idx, layerRow{layer: layer})
	}
	row := &s.rows[idx]
	s.nextID++
	row.entries = append(row.entries, entry{
		id:      s.nextID,
		version: 1,
		shape:   shape,
	})
	return Key{Layer: layer, Index: len(row.entries) - 1}
}

// Shape returns the shape stored under key.
func (s *Scene) Shape(key Key) (gfx.Shape, bool) {
	e := s.lookup(key)
	if e == nil {
		return gfx.Shape{}, false
	}
	return e.shape, true
}

// Update replaces the shape stored under key and bumps its geometry
// version. It reports whether the key was valid.
func (s *Scene) Update(key Key, shape gfx.Shape) bool {
	e := s.lookup(key)
	if e == nil {
		return false
	}
	e.shape = shape
	e.version++
	return true
}

// Remove deletes the shape stored under key and returns its ID. Shapes
// after it in the same layer shift down by one index; keys handed out for
// them now address their new positions.
func (s *Scene) Remove(key Key) (ShapeID, bool) {
	idx, ok := slices.BinarySearchFunc(s.rows, key.Layer, func(r layerRow, l int) int {
		return r.layer - l
	})
	if !ok {
		return 0, false
	}
	row := &s.rows[idx]
	if key.Index < 0 || key.Index >= len(row.entries) {
		return 0, false
	}
	id := row.entries[key.Index].id
	row.entries = slices.Delete(row.entries, key.Index, key.Index+1)
	if len(row.entries) == 0 {
		s.rows = slices.Delete(s.rows, idx, idx+1)
	}
	return id, true
}

// RemoveLayer deletes a layer and all shapes in it, returning their IDs in
// insertion order.
func (s *Scene) RemoveLayer(layer int) []ShapeID {
	idx, ok := slices.BinarySearchFunc(s.rows, layer, func(r layerRow, l int) int {
		return r.layer - l
	})
	if !ok {
		return nil
	}
	ids := make([]ShapeID, len(s.rows[idx].entries))
	for i, e := range s.rows[idx].entries {
		ids[i] = e.id
	}
	s.rows = slices.Delete(s.rows, idx, idx+1)
	return ids
}

// Clear removes all shapes. Shape IDs are not reused afterwards.
func (s *Scene) Clear() {
	s.rows = s.rows[:0]
}

// Len returns the number of stored shapes.
func (s *Scene) Len() int {
	n := 0
	for _, row := range s.rows {
		n += len(row.entries)
	}
	return n
}

func (s *Scene) lookup(key Key) *entry {
	idx, ok := slices.BinarySearchFunc(s.rows, key.Layer, func(r layerRow, l int) int {
		return r.layer - l
	})
	if !ok {
		return nil
	}
	row := &s.rows[idx]
	if key.Index < 0 || key.Index >= len(row.entries) {
		return nil
	}
	return &row.entries[key.Index]
}

// All yields all shapes in draw order together with their identity and
// geometry version.
func (s *Scene) All() iter.Seq2[ShapeID, ShapeInstance] {
	return func(yield func(ShapeID, ShapeInstance) bool) {
		for _, row := range s.rows {
			for _, e := range row.entries {
				if !yield(e.id, ShapeInstance{Version: e.version, Shape: e.shape}) {
					return
				}
			}
		}
	}
}

// ShapeInstance pairs a shape with its current geometry version.
type ShapeInstance struct {
	Version uint64
	Shape   gfx.Shape
}
