// Package bishop renders OpenSSH-style "randomart" fingerprints using the
// Drunken Bishop walk.
//
// The package is split into two stages:
//
//   - [Art]: the walker. Bytes are fed in any chunking; each byte moves the
//     bishop four times across a bounded field, counting visits.
//   - [Result]: the finalized field. It can be drawn any number of times
//     with different [Options] (palette and frame captions).
//
// # Example
//
//	art := bishop.NewDefault()
//	_ = art.Input(digest)
//	res, _ := art.Result()
//	fmt.Print(res.DrawDefault())
//
// # Thread Safety
//
// Art instances are NOT thread-safe. A Result is read-only and may be
// drawn from multiple goroutines.
package bishop
