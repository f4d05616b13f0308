// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

import (
	"honnef.co/go/color"
)

// RGBA is a premultiplied color in linear sRGB, in the channel order
// expected by the render pipeline's vertex layout.
type RGBA [4]float32

// Premul32 converts a color to premultiplied linear sRGB.
func Premul32(c *color.Color) RGBA {
	cc := c.Convert(color.LinearSRGB)
	r := cc.Values[0]
	g := cc.Values[1]
	b := cc.Values[2]
	a := cc.Values[3]

	return RGBA{
		float32(r * a),
		float32(g * a),
		float32(b * a),
		float32(a),
	}
}
