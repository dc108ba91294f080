// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trials

import (
	"sort"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/spike/checks"
	"github.com/emer/spike/measures"
)

// TrialRates computes continuous binned firing rates for a set of epoched
// spike times, over the given monotonic bin edges (see checks.MakeTimeBins),
// returning a [nTrials, nBins] tensor.  smooth > 0 applies a gaussian
// smoothing kernel of that SD, in bins, to each trial (see
// measures.TimesToRates).
func TrialRates(trialSpikes [][]float32, bins []float32, smooth float32) (*etensor.Float32, error) {
	if err := checks.CheckTimeBins(bins, trialSpikes[0]); err != nil {
		return nil, err
	}
	nb := len(bins) - 1
	out := etensor.NewFloat32([]int{len(trialSpikes), nb}, nil, []string{"Trial", "Bin"})
	for i, ts := range trialSpikes {
		copy(out.Values[i*nb:(i+1)*nb], measures.TimesToRates(ts, bins, smooth))
	}
	return out, nil
}

// PrePostRates computes per-trial firing rates in pre and post event
// windows, for spike times epoched relative to their event (see
// EpochSpikesByEvent).
func PrePostRates(trialSpikes [][]float32, preWin, postWin minmax.F32) ([]float32, []float32) {
	pre := make([]float32, len(trialSpikes))
	post := make([]float32, len(trialSpikes))
	for i, ts := range trialSpikes {
		pre[i] = measures.FiringRate(ts, preWin)
		post[i] = measures.FiringRate(ts, postWin)
	}
	return pre, post
}

// AvgType selects the averaging function for across-trial summaries.
type AvgType int32

const (
	// Mean is the arithmetic mean.
	Mean AvgType = iota

	// Median is the middle value (midpoint of the two middle values for an
	// even count).
	Median

	AvgTypeN
)

// PrePostAvgs computes the average pre and post event-window firing rates
// across trials, as computed by PrePostRates.
func PrePostAvgs(pre, post []float32, avg AvgType) (float32, float32) {
	return avgOf(pre, avg), avgOf(post, avg)
}

func avgOf(vals []float32, avg AvgType) float32 {
	if len(vals) == 0 {
		return 0
	}
	if avg == Median {
		srt := make([]float32, len(vals))
		copy(srt, vals)
		sort.Slice(srt, func(i, j int) bool { return srt[i] < srt[j] })
		mid := len(srt) / 2
		if len(srt)%2 == 0 {
			return 0.5 * (srt[mid-1] + srt[mid])
		}
		return srt[mid]
	}
	var sum float32
	for _, v := range vals {
		sum += v
	}
	return sum / float32(len(vals))
}
