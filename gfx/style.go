// Copyright 2022 the Peniko Authors
// Copyright 2024 Dominik Honnef and contributors
// SPDX-License-Identifier: Apache-2.0 OR MIT

package gfx

// Fill selects the rule that decides which regions of a possibly
// self-intersecting outline count as inside.
type Fill int

const (
	NonZero Fill = iota
	EvenOdd
)
