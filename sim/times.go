// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Method is the spike-time simulation method.
type Method int32

const (
	// Poisson simulates a poisson process by accumulating exponential
	// inter-arrival times.
	Poisson Method = iota

	MethodN
)

// SpikeTimes simulates spike times over [0, duration) using the given
// method, then applies the refractory-period filter when refractory > 0
// (see Refractory).  For Poisson, param is the spike rate in Hz.  An
// unrecognized method is an error.
func SpikeTimes(param, duration float32, method Method, refractory float32, src rand.Source) ([]float32, error) {
	var times []float32
	switch method {
	case Poisson:
		times = SpikeTimesPoisson(param, duration, 0, src)
	default:
		return nil, fmt.Errorf("sim.SpikeTimes: unrecognized method: %d", method)
	}
	if refractory > 0 {
		times = Refractory(times, refractory)
	}
	return times, nil
}

// SpikeTimesPoisson simulates spike times from a poisson process with the
// given rate (in Hz), over [startTime, startTime+duration): exponential
// inter-arrival draws are accumulated into absolute timestamps.  A rate of
// 0 or less yields no spikes.
func SpikeTimesPoisson(rate, duration, startTime float32, src rand.Source) []float32 {
	times := []float32{}
	if rate <= 0 || duration <= 0 {
		return times
	}
	exp := distuv.Exponential{Rate: float64(rate), Src: src}
	t := startTime
	for {
		t += float32(exp.Rand())
		if t >= startTime+duration {
			break
		}
		times = append(times, t)
	}
	return times
}

// Refractory enforces a minimum inter-spike interval on an ordered vector
// of spike times, dropping each spike closer than refractory to the last
// surviving one.
func Refractory(times []float32, refractory float32) []float32 {
	if len(times) == 0 {
		return times
	}
	out := make([]float32, 0, len(times))
	out = append(out, times[0])
	last := times[0]
	for _, t := range times[1:] {
		if t-last >= refractory {
			out = append(out, t)
			last = t
		}
	}
	return out
}
