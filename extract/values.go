// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
)

// ValueByTime returns the value at the sample nearest in time to timepoint,
// or NaN when the nearest sample is beyond threshold (see IndByTime).
func ValueByTime(times, values []float32, timepoint, threshold float32) float32 {
	ind := IndByTime(times, timepoint, threshold)
	if ind == NoMatch {
		return math32.NaN()
	}
	return values[ind]
}

// TensorValueByTime returns one value per row of a [rows, samples] value
// tensor, at the sample nearest in time to timepoint.  When the nearest
// sample is beyond threshold, every element of the returned column is NaN.
func TensorValueByTime(times []float32, values *etensor.Float32, timepoint, threshold float32) []float32 {
	rows := values.Dim(0)
	cols := values.Dim(1)
	out := make([]float32, rows)
	ind := IndByTime(times, timepoint, threshold)
	for r := 0; r < rows; r++ {
		if ind == NoMatch {
			out[r] = math32.NaN()
		} else {
			out[r] = values.Values[r*cols+ind]
		}
	}
	return out
}

// ValuesByTimes returns the value at the nearest sample for each query
// timepoint, in query order.  If dropNull, unmatched queries are omitted;
// otherwise the result keeps the query-count length with NaN at unmatched
// positions.
func ValuesByTimes(times, values, timepoints []float32, threshold float32, dropNull bool) []float32 {
	inds := IndsByTimes(times, timepoints, threshold, dropNull)
	out := make([]float32, len(inds))
	for i, ind := range inds {
		if ind == NoMatch {
			out[i] = math32.NaN()
		} else {
			out[i] = values[ind]
		}
	}
	return out
}

// TensorValuesByTimes is the multi-row form of ValuesByTimes, over a
// [rows, samples] value tensor.  The result is [rows, queries], where the
// query axis is shortened when dropNull, and NaN-filled across all rows at
// unmatched positions otherwise.
func TensorValuesByTimes(times []float32, values *etensor.Float32, timepoints []float32, threshold float32, dropNull bool) *etensor.Float32 {
	inds := IndsByTimes(times, timepoints, threshold, dropNull)
	rows := values.Dim(0)
	cols := values.Dim(1)
	out := etensor.NewFloat32([]int{rows, len(inds)}, nil, []string{"Row", "Sample"})
	for c, ind := range inds {
		for r := 0; r < rows; r++ {
			if ind == NoMatch {
				out.Set([]int{r, c}, math32.NaN())
			} else {
				out.Set([]int{r, c}, values.Values[r*cols+ind])
			}
		}
	}
	return out
}

// ValuesByTimeRange returns the timestamps falling within [tmin, tmax]
// inclusive and their corresponding values, preserving order.
func ValuesByTimeRange(times, values []float32, tmin, tmax float32) ([]float32, []float32) {
	tr := ValRange(tmin, tmax)
	otm := make([]float32, 0, len(times))
	ovl := make([]float32, 0, len(times))
	for i, t := range times {
		if tr.InRange(t) {
			otm = append(otm, t)
			ovl = append(ovl, values[i])
		}
	}
	return otm, ovl
}

// TensorValuesByTimeRange is the multi-row form of ValuesByTimeRange: the
// returned tensor keeps all rows, restricted along the sample axis to
// timestamps within [tmin, tmax] inclusive.
func TensorValuesByTimeRange(times []float32, values *etensor.Float32, tmin, tmax float32) ([]float32, *etensor.Float32) {
	tr := ValRange(tmin, tmax)
	rows := values.Dim(0)
	cols := values.Dim(1)
	sel := make([]int, 0, cols)
	otm := make([]float32, 0, cols)
	for i, t := range times {
		if tr.InRange(t) {
			sel = append(sel, i)
			otm = append(otm, t)
		}
	}
	out := etensor.NewFloat32([]int{rows, len(sel)}, nil, []string{"Row", "Sample"})
	for c, ind := range sel {
		for r := 0; r < rows; r++ {
			out.Set([]int{r, c}, values.Values[r*cols+ind])
		}
	}
	return otm, out
}

// ThreshSpikesByTimes keeps the spikes whose minimal absolute distance to
// any sample in times is strictly less than threshold.
func ThreshSpikesByTimes(spikes, times []float32, threshold float32) []float32 {
	out := make([]float32, 0, len(spikes))
	for _, sp := range spikes {
		mind := math32.Inf(1)
		for _, t := range times {
			if d := math32.Abs(t - sp); d < mind {
				mind = d
			}
		}
		if mind < threshold {
			out = append(out, sp)
		}
	}
	return out
}

// Comp selects the comparison direction for value-based spike thresholding.
type Comp int32

const (
	// Greater keeps spikes whose resolved value exceeds the threshold.
	Greater Comp = iota

	// Less keeps spikes whose resolved value is below the threshold.
	Less

	CompN
)

// CompFunc returns the comparison function for the given Comp.
func CompFunc(comp Comp) func(val, thresh float32) bool {
	if comp == Less {
		return func(val, thresh float32) bool { return val < thresh }
	}
	return func(val, thresh float32) bool { return val > thresh }
}

// ThreshSpikesByValues keeps the spikes whose value on a parallel data
// stream, resolved at the nearest sample time, compares favorably against
// dataThresh in the direction given by comp.  Spikes with no sample within
// timeThresh resolve to no value and are dropped.  Pass NoThresh to resolve
// every spike.
func ThreshSpikesByValues(spikes, times, values []float32, dataThresh, timeThresh float32, comp Comp) []float32 {
	vals := ValuesByTimes(times, values, spikes, timeThresh, false)
	cmp := CompFunc(comp)
	out := make([]float32, 0, len(spikes))
	for i, v := range vals {
		if math32.IsNaN(v) {
			continue
		}
		if cmp(v, dataThresh) {
			out = append(out, spikes[i])
		}
	}
	return out
}
