// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package layout positions shaped glyph runs in a framebuffer.
//
// A GlyphRun comes from a shaper: glyph ids with advance and offset
// vectors in 26.6 fixed point, font space. The Engine walks a run twice
// per frame:
//
//  1. Measure: the run is laid out at any origin into a raster.Accumulator,
//     giving the exact box the ink and the pen cover.
//  2. Paint: after Anchor has picked the origin inside the line slot, the
//     same walk feeds a raster.Compositor.
//
// Both passes share the coordinate transform in transform.go, so every
// painted pixel lies inside the measured box moved to the paint origin.
//
// Glyph outlines and their coverage come from a GlyphRasterizer; the
// text package provides one for real fonts.
package layout
