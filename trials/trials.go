// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package trials epochs spike times and continuously-sampled data into
per-trial sub-sequences, anchored either to event timestamps with a
symmetric window or to explicit start / stop ranges, and computes
per-trial firing-rate measures over the result.

Trial order always matches the order of the events or ranges that
produced the trials, and trials with no data are valid empty slices.
*/
package trials

import (
	"github.com/emer/etable/v2/minmax"
	"github.com/emer/spike/extract"
)

// EpochSpikesByEvent segments spikes into one trial per event, keeping
// spikes within window around each event time and re-zeroing them relative
// to it.  window is typically negative-to-positive, e.g. {-0.5, 1}.
func EpochSpikesByEvent(spikes, events []float32, window minmax.F32) [][]float32 {
	tr := make([][]float32, len(events))
	for i, ev := range events {
		tr[i] = extract.GetRangeReset(spikes, extract.ValRange(ev+window.Min, ev+window.Max), ev)
	}
	return tr
}

// EpochSpikesByRange segments spikes into one trial per (start, stop) pair,
// inclusive on both sides.  If reset, each trial is re-zeroed by its start
// time.  starts and stops must be the same length.
func EpochSpikesByRange(spikes, starts, stops []float32, reset bool) [][]float32 {
	tr := make([][]float32, len(starts))
	for i, start := range starts {
		rng := extract.ValRange(start, stops[i])
		if reset {
			tr[i] = extract.GetRangeReset(spikes, rng, start)
		} else {
			tr[i] = extract.GetRange(spikes, rng)
		}
	}
	return tr
}

// EpochDataByEvent segments a parallel timestamps / values pair into one
// trial per event, keeping samples within window around each event time.
// Trial timestamps are always re-zeroed relative to the event, unlike
// EpochDataByRange where the reset is optional.
func EpochDataByEvent(timestamps, values, events []float32, window minmax.F32) ([][]float32, [][]float32) {
	trtm := make([][]float32, len(events))
	trvl := make([][]float32, len(events))
	for i, ev := range events {
		ttm, tvl := extract.ValuesByTimeRange(timestamps, values, ev+window.Min, ev+window.Max)
		for j := range ttm {
			ttm[j] -= ev
		}
		trtm[i] = ttm
		trvl[i] = tvl
	}
	return trtm, trvl
}

// EpochDataByRange segments a parallel timestamps / values pair into one
// trial per (start, stop) pair, inclusive on both sides.  If reset, trial
// timestamps are re-zeroed by their start time.
func EpochDataByRange(timestamps, values, starts, stops []float32, reset bool) ([][]float32, [][]float32) {
	trtm := make([][]float32, len(starts))
	trvl := make([][]float32, len(starts))
	for i, start := range starts {
		ttm, tvl := extract.ValuesByTimeRange(timestamps, values, start, stops[i])
		if reset {
			for j := range ttm {
				ttm[j] -= start
			}
		}
		trtm[i] = ttm
		trvl[i] = tvl
	}
	return trtm, trvl
}
