// Package deck defines the in-memory slide document produced by the slide
// builders and consumed by the render sinks.
//
// A [Deck] is an ordered list of [Slide] values on a fixed canvas (16 × 9
// inches by default). Each slide holds positioned [Element] values: filled
// shapes, text frames, tables and images. Coordinates are inches from the
// top-left corner; font sizes are points.
//
// Colours and fonts come from a [Theme] value passed explicitly to every
// builder. There is no package-level mutable state.
package deck
