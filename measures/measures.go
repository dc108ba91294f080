// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package measures computes basic spike-train measures: firing rates over a
time range, and conversion of spike times into continuous binned firing
rates with optional gaussian smoothing.
*/
package measures

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/minmax"
)

// FiringRate returns the number of spikes within trange divided by its
// duration, in spikes per unit time.  An infinite range side falls back to
// the first / last spike time (spikes are assumed time-ordered).  A range
// of zero or negative duration, or no spikes, yields 0.
func FiringRate(spikes []float32, trange minmax.F32) float32 {
	if len(spikes) == 0 {
		return 0
	}
	start := trange.Min
	stop := trange.Max
	if math32.IsInf(start, -1) {
		start = spikes[0]
	}
	if math32.IsInf(stop, 1) {
		stop = spikes[len(spikes)-1]
	}
	dur := stop - start
	if dur <= 0 {
		return 0
	}
	n := 0
	for _, sp := range spikes {
		if sp >= start && sp <= stop {
			n++
		}
	}
	return float32(n) / dur
}

// TimesToRates converts spike times into continuous firing rates over the
// given monotonic bin edges: spikes are counted per bin (each bin takes
// [edge, nextEdge), with the final bin closed on both sides) and divided by
// the bin width.  smooth > 0 applies a gaussian smoothing kernel of that
// SD, in units of bins.
func TimesToRates(spikes, bins []float32, smooth float32) []float32 {
	nb := len(bins) - 1
	rates := make([]float32, nb)
	for b := 0; b < nb; b++ {
		n := 0
		for _, sp := range spikes {
			if sp >= bins[b] && (sp < bins[b+1] || (b == nb-1 && sp == bins[b+1])) {
				n++
			}
		}
		rates[b] = float32(n) / (bins[b+1] - bins[b])
	}
	if smooth > 0 {
		rates = SmoothRates(rates, smooth)
	}
	return rates
}

// SmoothRates convolves a continuous rate vector with a unit-area gaussian
// kernel of the given SD (in bins), renormalizing the truncated kernel at
// the edges so flat inputs stay flat.
func SmoothRates(rates []float32, sigma float32) []float32 {
	half := int(math32.Ceil(3 * sigma))
	kern := make([]float32, 2*half+1)
	var ksum float32
	for i := range kern {
		x := float32(i - half)
		kern[i] = math32.Exp(-0.5 * x * x / (sigma * sigma))
		ksum += kern[i]
	}
	for i := range kern {
		kern[i] /= ksum
	}
	out := make([]float32, len(rates))
	for i := range rates {
		var v, wsum float32
		for k, kv := range kern {
			j := i + k - half
			if j < 0 || j >= len(rates) {
				continue
			}
			v += kv * rates[j]
			wsum += kv
		}
		out[i] = v / wsum
	}
	return out
}
