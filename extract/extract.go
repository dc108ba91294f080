// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package extract provides time-indexed selection and windowing of spike-train
and continuously-sampled data: value-bounded masks and range filters,
nearest-timepoint lookup with distance thresholds, value-by-time resolution
with sentinel-coded null results, and removal / reinstatement of contiguous
time ranges with cumulative offset bookkeeping.

1D sequences (spike times, timestamps, data values) are []float32 slices.
Multi-row value arrays sharing one time base are etensor.Float32 tensors with
shape [rows, samples] (row-major).  Value bounds, time windows, and time
ranges are minmax.F32 ranges, inclusive on both sides -- an unbounded side
is an infinity (see ValRange, MinBound, MaxBound, Unbounded).

Nothing here mutates caller-owned slices: functions either build fresh
output slices or, where documented (DropRange, ReinstateRange), operate on
an internal copy.
*/
package extract

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/minmax"
)

// ValRange returns an inclusive range with the given min and max bounds.
func ValRange(min, max float32) minmax.F32 {
	return minmax.F32{Min: min, Max: max}
}

// MinBound returns a range bounded below only (max is +Inf).
func MinBound(min float32) minmax.F32 {
	return minmax.F32{Min: min, Max: math32.Inf(1)}
}

// MaxBound returns a range bounded above only (min is -Inf).
func MaxBound(max float32) minmax.F32 {
	return minmax.F32{Min: math32.Inf(-1), Max: max}
}

// Unbounded returns a range that admits any value.
func Unbounded() minmax.F32 {
	return minmax.F32{Min: math32.Inf(-1), Max: math32.Inf(1)}
}

// CreateMask marks each element of data that falls within the given
// inclusive bounds.  The mask has the same length as data.
func CreateMask(data []float32, bounds minmax.F32) []bool {
	mask := make([]bool, len(data))
	for i, v := range data {
		mask[i] = bounds.InRange(v)
	}
	return mask
}

// GetRange returns the elements of data falling within the given inclusive
// bounds, preserving their order.
func GetRange(data []float32, bounds minmax.F32) []float32 {
	out := make([]float32, 0, len(data))
	for _, v := range data {
		if bounds.InRange(v) {
			out = append(out, v)
		}
	}
	return out
}

// GetRangeReset is GetRange with the given reset value subtracted from
// every surviving element.  The reset is always applied -- a reset of 0 is
// an explicit no-op shift, not an absent one.
func GetRangeReset(data []float32, bounds minmax.F32, reset float32) []float32 {
	out := GetRange(data, bounds)
	for i := range out {
		out[i] -= reset
	}
	return out
}

// GetValueRange jointly selects the elements of a parallel times / data
// pair for which the data value falls within the given inclusive bounds.
// times and data must be the same length.
func GetValueRange(times, data []float32, bounds minmax.F32) ([]float32, []float32) {
	otm := make([]float32, 0, len(data))
	odt := make([]float32, 0, len(data))
	for i, v := range data {
		if bounds.InRange(v) {
			otm = append(otm, times[i])
			odt = append(odt, v)
		}
	}
	return otm, odt
}

// GetValueRangeReset is GetValueRange with reset subtracted from the
// surviving time values.  Data values are returned unchanged.
func GetValueRangeReset(times, data []float32, bounds minmax.F32, reset float32) ([]float32, []float32) {
	otm, odt := GetValueRange(times, data, bounds)
	for i := range otm {
		otm[i] -= reset
	}
	return otm, odt
}
