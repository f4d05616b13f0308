// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"honnef.co/go/color"
)

// Brush describes how a shape's interior is painted. Solid colors are the
// only supported kind; gradient and image brushes would need pipelines of
// their own.
type Brush interface {
	premul() RGBA
}

// SolidBrush paints with a single color.
type SolidBrush struct {
	Color *color.Color
}

func (b SolidBrush) premul() RGBA { return Premul32(b.Color) }

// RGBA is itself a brush, for colors that are already premultiplied.
func (c RGBA) premul() RGBA { return c }
