// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim generates synthetic spike data for testing and validation:
binary spike trains from bernoulli, poisson-rate, and per-sample
probability models, and spike times from a poisson process with an
optional refractory period.

Every simulator takes an explicit rand.Source (golang.org/x/exp/rand, the
source type consumed by gonum's distuv distributions) so results can be
made reproducible by seed injection; a nil source falls back to the
process-global source.  Spike trains are []float32 vectors of 0 / 1
per-sample indicators; spike times are ordered []float32 timestamps in
seconds.
*/
package sim

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func checkProb(p float32) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("sim: spiking probability must be within [0, 1], got %g", p)
	}
	return nil
}

// SpikeTrainProb simulates a spike train of nSamples from a single
// per-sample spiking probability, by direct comparison of each probability
// against an independent uniform(0, 1) draw.  nSamples must be positive.
func SpikeTrainProb(p float32, nSamples int, src rand.Source) ([]float32, error) {
	if err := checkProb(p); err != nil {
		return nil, err
	}
	if nSamples <= 0 {
		return nil, fmt.Errorf("sim.SpikeTrainProb: nSamples must be positive for a scalar probability, got %d", nSamples)
	}
	uni := distuv.Uniform{Min: 0, Max: 1, Src: src}
	spikes := make([]float32, nSamples)
	for i := range spikes {
		if uni.Rand() < float64(p) {
			spikes[i] = 1
		}
	}
	return spikes, nil
}

// SpikeTrainProbVec is SpikeTrainProb with a per-sample probability vector,
// which defines its own sample count.
func SpikeTrainProbVec(ps []float32, src rand.Source) ([]float32, error) {
	uni := distuv.Uniform{Min: 0, Max: 1, Src: src}
	spikes := make([]float32, len(ps))
	for i, p := range ps {
		if err := checkProb(p); err != nil {
			return nil, err
		}
		if uni.Rand() < float64(p) {
			spikes[i] = 1
		}
	}
	return spikes, nil
}
