// Package slides builds individual deck slides.
//
// Each builder method on [Builder] takes the slide number explicitly and
// returns a finished [deck.Slide]. Vertical lists go through a
// [layout.Cursor] reset for that slide; horizontal strips and card grids go
// through a [layout.Row]. Free-positioned chrome (header bar, page number)
// is passed through [layout.Canvas.Guard].
//
// Whenever the placement guard shrinks a block, the builder records a
// warning on the slide instead of failing, so a deck with too much text
// still renders and the caller can report what was clipped.
//
// Available builders:
//
//   - [Builder.Title]: cover page
//   - [Builder.Content]: headings and bullets, optionally with a code box
//   - [Builder.Columns]: side-by-side lists (comparisons)
//   - [Builder.Table]: header row plus body rows
//   - [Builder.Architecture]: stacked layer boxes
//   - [Builder.Logos]: company logos (or placeholders) and stat boxes
//   - [Builder.Grid]: card grid such as a SWOT matrix
//   - [Builder.Image]: bullets next to, above or replaced by an image
package slides
