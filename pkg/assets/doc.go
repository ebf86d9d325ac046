// Package assets loads optional slide images.
//
// Images are best-effort: a deck names files by literal filename inside an
// image directory, and any file that is missing or cannot be decoded is
// simply reported as absent. [Loader.TryLoad] therefore returns
// (image, ok) instead of an error, and renderers skip a nil image.
//
// Decoding goes through disintegration/imaging with the PNG, JPEG, GIF, BMP,
// TIFF and WebP decoders registered. Each loaded image carries an xxHash64
// fingerprint of its bytes so cache keys change when an asset changes.
package assets
