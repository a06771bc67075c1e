// Package analysis summarizes finished fingerprints.
//
//   - [Compute]: coverage, visit histogram and entropy of a field
//   - [Similarity]: fraction of cells two fields draw identically
//   - [PlotHistogram]: ASCII chart of the visit histogram
//
// Low coverage or high similarity between two different keys suggests
// the field is too small or the palette too short to tell them apart.
package analysis
