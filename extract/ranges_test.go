// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package extract

import (
	"testing"

	"github.com/emer/etable/v2/etensor"
	"github.com/emer/etable/v2/minmax"
)

func TestDropRange(t *testing.T) {
	spikes := []float32{0.5, 1, 1.5, 4.5, 5}

	out, err := DropRange(spikes, []minmax.F32{ValRange(2, 4)}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !eqTol(out, []float32{0.5, 1, 1.5, 2.5, 3}) {
		t.Errorf("dropped: %v", out)
	}
	if !eqTol(spikes, []float32{0.5, 1, 1.5, 4.5, 5}) {
		t.Errorf("input mutated: %v", spikes)
	}
}

func TestDropRangeCheckEmpty(t *testing.T) {
	spikes := []float32{0.5, 3, 5}

	if _, err := DropRange(spikes, []minmax.F32{ValRange(2, 4)}, true); err == nil {
		t.Error("expected error for non-empty range")
	}
	out, err := DropRange(spikes, []minmax.F32{ValRange(2, 4)}, false)
	if err != nil {
		t.Fatal(err)
	}
	// the in-range spike is simply lost when not checking
	if !eqTol(out, []float32{0.5, 3}) {
		t.Errorf("unchecked drop: %v", out)
	}
}

func TestDropRangeCumulative(t *testing.T) {
	spikes := []float32{1, 5, 9}

	// both ranges in original coordinates: the second is shifted internally
	// by the length of the first
	out, err := DropRange(spikes, []minmax.F32{ValRange(2, 4), ValRange(6, 8)}, true)
	if err != nil {
		t.Fatal(err)
	}
	if !eqTol(out, []float32{1, 3, 5}) {
		t.Errorf("cumulative drop: %v", out)
	}
}

func TestReinstateRange(t *testing.T) {
	spikes := []float32{1, 3, 5}

	// ranges in original (pre-drop) coordinates, not cumulative-adjusted
	out := ReinstateRange(spikes, []minmax.F32{ValRange(2, 4), ValRange(6, 8)})
	if !eqTol(out, []float32{1, 5, 9}) {
		t.Errorf("reinstated: %v", out)
	}
	if !eqTol(spikes, []float32{1, 3, 5}) {
		t.Errorf("input mutated: %v", spikes)
	}
}

func TestDropReinstateRoundTrip(t *testing.T) {
	spikes := []float32{0.5, 1, 1.5, 4.5, 5, 8.5, 10}
	ranges := []minmax.F32{ValRange(2, 4), ValRange(6, 8)}

	dropped, err := DropRange(spikes, ranges, true)
	if err != nil {
		t.Fatal(err)
	}
	back := ReinstateRange(dropped, ranges)
	if !eqTol(back, spikes) {
		t.Errorf("round trip: %v, cor: %v", back, spikes)
	}
}

func TestTensorReinstateRange(t *testing.T) {
	spikes := etensor.NewFloat32([]int{2, 3}, nil, []string{"Train", "Spike"})
	copy(spikes.Values, []float32{1, 3, 5, 0.5, 1.5, 4.5})

	out, err := TensorReinstateRange(spikes, []minmax.F32{ValRange(2, 4)})
	if err != nil {
		t.Fatal(err)
	}
	if !eqTol(out.Values[0:3], []float32{1, 5, 7}) {
		t.Errorf("row 0: %v", out.Values[0:3])
	}
	if !eqTol(out.Values[3:6], []float32{0.5, 1.5, 6.5}) {
		t.Errorf("row 1: %v", out.Values[3:6])
	}

	one := etensor.NewFloat32([]int{3}, nil, []string{"Spike"})
	copy(one.Values, []float32{1, 3, 5})
	out, err = TensorReinstateRange(one, []minmax.F32{ValRange(2, 4)})
	if err != nil {
		t.Fatal(err)
	}
	if !eqTol(out.Values, []float32{1, 5, 7}) {
		t.Errorf("1D: %v", out.Values)
	}

	bad := etensor.NewFloat32([]int{2, 2, 2}, nil, []string{"A", "B", "C"})
	if _, err := TensorReinstateRange(bad, []minmax.F32{ValRange(2, 4)}); err == nil {
		t.Error("expected error for 3D input")
	}
}
