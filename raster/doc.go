// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster holds the sinks that consume antialiased coverage spans.
//
// A glyph rasterizer produces spans: horizontal runs of pixels on one
// scanline sharing a single coverage value. Spans are never stored; each
// one is handed to the active Sink as soon as it exists.
//
// # Sinks
//
// The set of sinks is closed:
//
//   - Accumulator records the extents touched by spans and pen positions
//     (the measure pass). It never writes pixels.
//   - Compositor writes spans into a framebuffer.View (the paint pass),
//     either overwriting pixels or OR-ing into them, see Policy.
//
// Both receive spans in absolute framebuffer coordinates (y grows down).
// The translation from glyph-local spans happens in exactly one place,
// the layout package, so that a measured box always matches the pixels
// a paint pass touches.
package raster
