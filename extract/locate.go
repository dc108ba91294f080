// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import "github.com/chewxy/math32"

// NoMatch is the index sentinel returned by nearest-time lookups when the
// closest sample is further from the query than the allowed threshold.
const NoMatch = -1

// NoThresh is an unbounded lookup threshold: the nearest sample always
// matches, no matter how distant.
var NoThresh = math32.Inf(1)

// IndByTime returns the index of the sample in times closest in absolute
// distance to timepoint, with ties going to the lowest index.  If the
// minimal distance exceeds threshold, NoMatch is returned.  A threshold of
// 0 only matches exact timepoints; pass NoThresh for an unbounded lookup.
func IndByTime(times []float32, timepoint, threshold float32) int {
	if len(times) == 0 {
		return NoMatch
	}
	ind := 0
	mind := math32.Abs(times[0] - timepoint)
	for i := 1; i < len(times); i++ {
		d := math32.Abs(times[i] - timepoint)
		if d < mind {
			mind = d
			ind = i
		}
	}
	if mind > threshold {
		return NoMatch
	}
	return ind
}

// IndsByTimes returns the nearest-sample index for each query timepoint, in
// query order.  If dropNull, NoMatch entries are omitted (the result can be
// shorter than timepoints); otherwise they are retained positionally.
func IndsByTimes(times, timepoints []float32, threshold float32, dropNull bool) []int {
	inds := make([]int, 0, len(timepoints))
	for _, tp := range timepoints {
		ind := IndByTime(times, tp, threshold)
		if ind == NoMatch && dropNull {
			continue
		}
		inds = append(inds, ind)
	}
	return inds
}
