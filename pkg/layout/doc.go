// Package layout allocates non-overlapping boxes on a fixed-size slide canvas.
//
// # Overview
//
// A slide is a bounded 2D region (a [Canvas]). Content blocks such as
// headings, bullet lines, tables and stacked shapes are placed one after
// another by a [Cursor], which tracks the current insertion point and
// advances it by each block's height plus a fixed margin.
//
// The cursor never fails. Any request that would overflow the canvas is
// corrected by clamping, so every returned [Box] lies inside
// [0, Width] × [0, Height]. Callers that care whether a block was shrunk
// compare the returned box with the size they asked for.
//
// # Overflow Policies
//
// Horizontal overflow always reduces the width; a block is never moved
// sideways. Vertical overflow depends on the [Policy]:
//
//   - [Clamp] (default): the height is reduced to the space left in the column.
//   - [Wrap]: the block moves to the top of the next column when one remains,
//     otherwise it is clamped.
//
// Columns can also be switched explicitly with [Cursor.AdvanceColumn], which
// is how two-list comparison slides put their second list on the right.
//
// # Usage
//
//	c := layout.New(16, 9, 1, 1.8,
//	    layout.WithMargin(0.1),
//	    layout.WithDefaultWidth(14),
//	)
//	heading := c.Place(0.6)
//	bullet := c.PlaceSized(0.5, 13)
//
// Call [Cursor.Reset] at the start of every slide; cursor state is never
// shared between slides.
//
// # Rows
//
// [Row] is the horizontal counterpart used for stat boxes, logo strips and
// card grids: it allocates left to right and wraps to a new line after a
// fixed number of items or when the next box would not fit.
package layout
