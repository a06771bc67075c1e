// Package viz paints fingerprints for color terminals.
//
// A [Painter] produces the same layout as bishop.Result.Draw, with each
// visit bucket colored along a [Theme] gradient:
//
//   - cyberpunk, retro, ocean, sunset
//
// Output degrades to plain text when the renderer has no color profile,
// so piped output matches the uncolored drawing byte for byte.
package viz
