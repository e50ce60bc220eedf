// SPDX-License-Identifier: EPL-2.0

// Package wave provides the amplitude data model and the segment reducer.
//
// This package contains the data side of waveform rendering:
//   - Sequence as the immutable amplitude series
//   - Reduce for downsampling a series to a segment count
//   - Cache for memoizing reductions per source identity
//
// # Sequence
//
// A Sequence wraps an ordered series of normalized amplitudes:
//
//	seq := wave.NewSequence([]float64{0.2, 0.4, 0.6, 0.8})
//
// Values are nominally in [0.0, 1.0] where 0.0 is silence and 1.0 is full
// amplitude. NaN marks a missing sample; the reducer fills such gaps from
// the surrounding data, so partially loaded series still render without
// holes.
//
// # Reduction
//
// Reduce averages the source into exactly the requested number of
// segments:
//
//	reduced := wave.Reduce(64, seq)
//
// Each output value is the mean of the source window it covers, which
// preserves the overall envelope shape of the amplitude series.
//
// # Caching
//
// Rendering reduces the same series again and again as layouts change.
// A Cache keyed on the Sequence pointer avoids recomputation:
//
//	cache := wave.NewCache()
//	reduced := cache.Reduced(64, seq)
//	same := cache.Reduced(64, seq) // identical slice, no work
//
// Cache hits return the identical slice, so consumers can compare by
// reference to skip redundant downstream work. Entries disappear when
// their Sequence is garbage collected; no explicit release call is
// needed.
//
// Small inputs bypass the cache entirely because recomputing them is
// cheaper than the bookkeeping.
package wave
