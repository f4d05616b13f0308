// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package renderer

import (
	"honnef.co/go/facet/gfx"
	"honnef.co/go/facet/mesh"
)

type cacheEntry struct {
	version uint64
	mesh    mesh.Mesh
}

// Cache memoizes tessellation output per shape. An entry stays valid until
// the shape's geometry version changes; the stale mesh is then replaced
// lazily on the next lookup. The cache is unbounded: scenes own their
// shapes, and Remove frees entries for shapes that left the scene.
type Cache struct {
	entries map[ShapeID]cacheEntry

	hits, misses uint64
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[ShapeID]cacheEntry),
	}
}

// Lookup returns the mesh for the shape, tessellating only if no mesh for
// the given geometry version is cached.
func (c *Cache) Lookup(id ShapeID, version uint64, shape gfx.Shape) mesh.Mesh {
	if e, ok := c.entries[id]; ok && e.version == version {
		c.hits++
		return e.mesh
	}
	c.misses++
	m := mesh.Tessellate(shape)
	c.entries[id] = cacheEntry{version: version, mesh: m}
	return m
}

// Remove drops the entry for a shape, if any.
func (c *Cache) Remove(id ShapeID) {
	delete(c.entries, id)
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}
