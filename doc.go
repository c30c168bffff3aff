// Package intra provides the AV1 intra-prediction reference kernels and
// the dispatch table that binds mode enumerators to them: the
// non-directional modes (DC family, vertical, horizontal, Paeth,
// smooth), the directional modes (Z1/Z2/Z3), recursive filter-intra
// prediction, chroma-from-luma derivation and prediction, and palette
// expansion.
//
// Every kernel is pure scalar Go with no SIMD, matching a software
// decoder's reference path rather than an optimized one. [Dispatch8],
// [Dispatch10], and [Dispatch12] return the process-wide dispatch table
// for each supported bit depth, built on first use.
package intra
