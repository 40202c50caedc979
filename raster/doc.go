// Package raster turns vector paths into pixels. It is the terminal
// backend of the rendering pipeline: every other device either discards,
// measures or records its operations, while [Device] here realizes them
// as filled spans in an ink.Pixmap.
//
// The scan converter is a classic active-edge-table polygon filler.
// Curves are flattened to polylines by midpoint subdivision, each
// polyline segment becomes a directed edge, and one horizontal scan line
// at a time the set of edges spanning it is sorted by x and walked with
// a running winding count. Pixels are either the full paint color or
// untouched; coverage-based anti-aliasing is not performed (the
// supersampling level is carried as state for callers that layer it on
// top).
//
// Strokes are never rasterized directly: each flattened segment expands
// into a quad of half the line width on either side, and the accumulated
// quads are filled with the non-zero winding rule so overlaps merge.
package raster
