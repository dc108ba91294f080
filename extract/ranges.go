// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"fmt"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

// DropRange removes the given time ranges from a vector of spike times,
// splicing out each range and shifting all later spikes left by the range
// length.  Ranges are processed in order and are all specified in original
// source-time coordinates: each one is adjusted by the cumulative length of
// previously dropped ranges.  When checkEmpty, any spikes found within a
// range are a contract violation and an error is returned.  The input slice
// is never modified.
func DropRange(spikes []float32, ranges []minmax.F32, checkEmpty bool) ([]float32, error) {
	out := make([]float32, len(spikes))
	copy(out, spikes)
	var totLen float32
	for _, tr := range ranges {
		min := tr.Min - totLen
		max := tr.Max - totLen
		if checkEmpty {
			if n := len(GetRange(out, ValRange(min, max))); n > 0 {
				return nil, fmt.Errorf("extract.DropRange: range [%g, %g] contains %d spikes, not empty", min, max, n)
			}
		}
		tlen := max - min
		out = append(GetRange(out, MaxBound(min)), GetRangeReset(out, MinBound(max), tlen)...)
		totLen += tlen
	}
	return out, nil
}

// ReinstateRange reinserts previously dropped time ranges into a vector of
// spike times, shifting all spikes at or after each range start right by
// the range length.  Unlike DropRange, ranges are not cumulative-adjusted:
// each one is expected in original (pre-drop) coordinates.  The input slice
// is never modified.
func ReinstateRange(spikes []float32, ranges []minmax.F32) []float32 {
	out := make([]float32, len(spikes))
	copy(out, spikes)
	for _, tr := range ranges {
		out = reinstateRange1D(out, tr)
	}
	return out
}

func reinstateRange1D(spikes []float32, tr minmax.F32) []float32 {
	tlen := tr.Max - tr.Min
	before := GetRange(spikes, MaxBound(tr.Min))
	after := GetRange(spikes, MinBound(tr.Min))
	for i := range after {
		after[i] += tlen
	}
	return append(before, after...)
}

// TensorReinstateRange is ReinstateRange over a 1D or 2D spike tensor,
// where 2D is multiple independent spike trains (rows) sharing the range
// definitions.  Tensors of 3 or more dimensions are invalid input.  A range
// boundary coinciding exactly with a spike time would change the spike
// count of a row and is reported as an error.
func TensorReinstateRange(spikes *etensor.Float32, ranges []minmax.F32) (*etensor.Float32, error) {
	nd := spikes.NumDims()
	if nd > 2 {
		return nil, fmt.Errorf("extract.TensorReinstateRange: only 1D or 2D spike tensors are supported, got %dD", nd)
	}
	rows := 1
	cols := spikes.Dim(0)
	shape := []int{cols}
	names := []string{"Spike"}
	if nd == 2 {
		rows = spikes.Dim(0)
		cols = spikes.Dim(1)
		shape = []int{rows, cols}
		names = []string{"Train", "Spike"}
	}
	out := etensor.NewFloat32(shape, nil, names)
	for r := 0; r < rows; r++ {
		res := ReinstateRange(spikes.Values[r*cols:(r+1)*cols], ranges)
		if len(res) != cols {
			return nil, fmt.Errorf("extract.TensorReinstateRange: range boundary coincides with a spike time in row %d", r)
		}
		copy(out.Values[r*cols:(r+1)*cols], res)
	}
	return out, nil
}
