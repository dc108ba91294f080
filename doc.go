// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spike is the overall repository for spike-train analysis primitives
implemented in the Go language (golang): time-indexed extraction and
windowing of event (spike) and continuously-sampled data, trial epoching,
and stochastic spike-train simulation.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* extract: the core time-indexed extraction engine -- value-bounded masks
and range filters, nearest-timepoint lookup with distance thresholds,
value-by-time resolution with sentinel-coded null results, and removal /
reinstatement of contiguous time ranges with cumulative offset bookkeeping.

* trials: epoching of spikes and sampled data into per-trial sequences,
anchored to event timestamps or explicit start / stop ranges, plus
per-trial firing-rate measures.

* measures: firing-rate computation and conversion of spike times into
continuous binned rates, with optional gaussian smoothing.

* checks: construction and validation of monotonic time-bin edges used by
the binned-rate measures.

* sim: simulation of spike trains (bernoulli, poisson, per-sample
probability) and spike times (poisson process with optional refractory
period), with injectable random sources for reproducibility.

* examples: these compile into runnable programs -- examples/spikesim runs
the full simulate / extract / epoch / measure pipeline from the command line.
*/
package spike
