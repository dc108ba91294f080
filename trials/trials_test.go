// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trials

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/spike/extract"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func eqTol(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math32.Abs(a[i]-b[i]) > difTol {
			return false
		}
	}
	return true
}

func TestEpochSpikesByEvent(t *testing.T) {
	spikes := []float32{0.2, 1.1, 1.3, 2.4, 4.9, 5.5, 6.1}
	events := []float32{5, 1}
	win := extract.ValRange(-0.5, 1)

	tr := EpochSpikesByEvent(spikes, events, win)
	if len(tr) != len(events) {
		t.Fatalf("n trials: %d != %d", len(tr), len(events))
	}
	// trial order matches event order, not time order
	if !eqTol(tr[0], []float32{-0.1, 0.5}) {
		t.Errorf("trial 0 (event 5): %v", tr[0])
	}
	if !eqTol(tr[1], []float32{0.1, 0.3}) {
		t.Errorf("trial 1 (event 1): %v", tr[1])
	}

	// empty trials are valid
	tr = EpochSpikesByEvent(spikes, []float32{20}, win)
	if len(tr) != 1 || len(tr[0]) != 0 {
		t.Errorf("empty trial: %v", tr)
	}
}

func TestEpochSpikesByRange(t *testing.T) {
	spikes := []float32{0.2, 1.1, 1.3, 2.4, 4.9, 5.5}
	starts := []float32{1, 4}
	stops := []float32{3, 6}

	tr := EpochSpikesByRange(spikes, starts, stops, false)
	if !eqTol(tr[0], []float32{1.1, 1.3, 2.4}) {
		t.Errorf("trial 0: %v", tr[0])
	}
	if !eqTol(tr[1], []float32{4.9, 5.5}) {
		t.Errorf("trial 1: %v", tr[1])
	}

	tr = EpochSpikesByRange(spikes, starts, stops, true)
	if !eqTol(tr[0], []float32{0.1, 0.3, 1.4}) {
		t.Errorf("reset trial 0: %v", tr[0])
	}
	if !eqTol(tr[1], []float32{0.9, 1.5}) {
		t.Errorf("reset trial 1: %v", tr[1])
	}
}

func TestEpochDataByEvent(t *testing.T) {
	times := []float32{1, 2, 3, 4, 5}
	values := []float32{5, 8, 4, 6, 7}
	events := []float32{2, 4}
	win := extract.ValRange(-1, 1)

	trtm, trvl := EpochDataByEvent(times, values, events, win)
	if !eqTol(trtm[0], []float32{-1, 0, 1}) {
		t.Errorf("trial 0 times: %v", trtm[0])
	}
	if !eqTol(trvl[0], []float32{5, 8, 4}) {
		t.Errorf("trial 0 values: %v", trvl[0])
	}
	if !eqTol(trtm[1], []float32{-1, 0, 1}) {
		t.Errorf("trial 1 times: %v", trtm[1])
	}
	if !eqTol(trvl[1], []float32{4, 6, 7}) {
		t.Errorf("trial 1 values: %v", trvl[1])
	}
}

func TestEpochDataByRange(t *testing.T) {
	times := []float32{1, 2, 3, 4, 5}
	values := []float32{5, 8, 4, 6, 7}
	starts := []float32{2}
	stops := []float32{4}

	trtm, trvl := EpochDataByRange(times, values, starts, stops, false)
	if !eqTol(trtm[0], []float32{2, 3, 4}) {
		t.Errorf("times: %v", trtm[0])
	}
	if !eqTol(trvl[0], []float32{8, 4, 6}) {
		t.Errorf("values: %v", trvl[0])
	}

	trtm, _ = EpochDataByRange(times, values, starts, stops, true)
	if !eqTol(trtm[0], []float32{0, 1, 2}) {
		t.Errorf("reset times: %v", trtm[0])
	}
}
