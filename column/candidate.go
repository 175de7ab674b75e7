// Package column implements the per-primitive-kind candidate encodings for
// array-context columns, and the candidate-selection procedure that picks
// the smallest one for a given column of values.
//
// Grounded on the teacher's encoding.ColumnarEncoder[T]/ColumnarDecoder[T]
// interfaces (encoding/columnar.go): every concrete encoding here exposes
// the same "accumulate then produce a byte slice" / "byte slice plus count
// in, iterator out" shape, generalized from one encoder type per physical
// column (NumericRawEncoder, TimestampDeltaEncoder, TagEncoder, ...) to a
// set of interchangeable candidates competing for the same logical column.
package column

import (
	"math"
	"sort"
)

// Candidate is one interchangeable encoding for a column of values of type
// T (uint64 after zigzag-mapping for Integer columns, float64/float32 for
// Float, bool for Boolean, string for String).
type Candidate[T any] struct {
	// Name identifies the candidate for tie-break ordering and diagnostics;
	// candidates are tried in slice order on ties, so put cheaper/more
	// broadly-applicable candidates first.
	Name string

	// FastSize returns an exact encoded size for sample without mutating
	// anything, or ok=false when the size can only be known by actually
	// encoding (in which case Select falls back to a trial encode of the
	// sample).
	FastSize func(sample []T) (size int, ok bool)

	// Encode attempts to encode all of values. Returns ok=false if this
	// candidate cannot represent these values at all (RLE nested in RLE,
	// Dictionary with no repeats, Simple16 with an over-wide value, ...).
	Encode func(values []T) (payload []byte, ok bool)
}

// maxSampleLen is the sample-prefix cap used for candidate size estimation
// (spec §4.3: "a sample prefix of at most 256 elements").
const maxSampleLen = 256

// Select implements the candidate-selection procedure: estimate each
// candidate's size on a sample prefix, sort candidates smallest-first
// (stable, so ties keep their declared order), then try candidates against
// the FULL column from best estimate to worst, returning the first
// candidate that actually succeeds.
//
// Panics if no candidate succeeds — by contract at least one candidate in
// every call site's list is unconditionally infallible, so reaching the end
// is a programming error, not a data error.
func Select[T any](values []T, candidates []Candidate[T]) (winnerIdx int, payload []byte) {
	sampleLen := len(values)
	if sampleLen > maxSampleLen {
		sampleLen = maxSampleLen
	}
	sample := values[:sampleLen]

	type estimate struct {
		idx  int
		size int
	}

	estimates := make([]estimate, len(candidates))
	for i, c := range candidates {
		if c.FastSize != nil {
			if size, ok := c.FastSize(sample); ok {
				estimates[i] = estimate{i, size}

				continue
			}
		}

		if trial, ok := c.Encode(sample); ok {
			estimates[i] = estimate{i, len(trial)}
		} else {
			estimates[i] = estimate{i, math.MaxInt}
		}
	}

	sort.SliceStable(estimates, func(a, b int) bool { return estimates[a].size < estimates[b].size })

	for _, e := range estimates {
		c := candidates[e.idx]
		if p, ok := c.Encode(values); ok {
			return e.idx, p
		}
	}

	panic("column: no candidate could encode the column; at least one candidate must be infallible")
}
