// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// SpikeTrainBinom simulates a spike train of nSamples independent
// bernoulli(p) draws.  nSamples must be positive.  Semantically equivalent
// to SpikeTrainProb but sampled through the distribution itself.
func SpikeTrainBinom(p float32, nSamples int, src rand.Source) ([]float32, error) {
	if err := checkProb(p); err != nil {
		return nil, err
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("sim.SpikeTrainBinom: nSamples must be positive for a scalar probability, got %d", nSamples)
	}
	brn := distuv.Bernoulli{P: float64(p), Src: src}
	spikes := make([]float32, nSamples)
	for i := range spikes {
		spikes[i] = float32(brn.Rand())
	}
	return spikes, nil
}

// SpikeTrainBinomVec is SpikeTrainBinom with a per-sample probability
// vector, which defines its own sample count.
func SpikeTrainBinomVec(ps []float32, src rand.Source) ([]float32, error) {
	spikes := make([]float32, len(ps))
	for i, p := range ps {
		if err := checkProb(p); err != nil {
			return nil, err
		}
		brn := distuv.Bernoulli{P: float64(p), Src: src}
		spikes[i] = float32(brn.Rand())
	}
	return spikes, nil
}

// SpikeTrainPoisson simulates a binary spike train approximating a poisson
// process with the given rate (in Hz) at sampling rate fs: sample i spikes
// iff a uniform(0, 1) draw is at or below (rate + bias) / fs.
func SpikeTrainPoisson(rate float32, nSamples int, fs, bias float32, src rand.Source) ([]float32, error) {
	if rate < 0 {
		return nil, fmt.Errorf("sim.SpikeTrainPoisson: rate must be non-negative, got %g", rate)
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("sim.SpikeTrainPoisson: nSamples must be positive, got %d", nSamples)
	}
	if fs <= 0 {
		return nil, fmt.Errorf("sim.SpikeTrainPoisson: sampling rate must be positive, got %g", fs)
	}
	thr := float64(rate+bias) / float64(fs)
	uni := distuv.Uniform{Min: 0, Max: 1, Src: src}
	spikes := make([]float32, nSamples)
	for i := range spikes {
		if uni.Rand() <= thr {
			spikes[i] = 1
		}
	}
	return spikes, nil
}
