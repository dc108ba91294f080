// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package checks constructs and validates the monotonic time-bin edges
consumed by the binned firing-rate measures.
*/
package checks

import (
	"fmt"
	"log"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/minmax"
)

// MakeTimeBins returns uniform bin edges of the given width spanning
// trange, including both endpoints: nBins+1 edges for nBins bins.  The
// width must be positive and the range finite and non-empty.  A range that
// is not a whole multiple of the width is covered up to the last edge at or
// below its max, with a logged warning.
func MakeTimeBins(binWidth float32, trange minmax.F32) ([]float32, error) {
	if binWidth <= 0 {
		return nil, fmt.Errorf("checks.MakeTimeBins: bin width must be positive, got %g", binWidth)
	}
	if math32.IsInf(trange.Min, 0) || math32.IsInf(trange.Max, 0) || trange.Max <= trange.Min {
		return nil, fmt.Errorf("checks.MakeTimeBins: invalid time range [%g, %g]", trange.Min, trange.Max)
	}
	span := trange.Max - trange.Min
	n := int(math32.Floor(span/binWidth + 1.0e-4))
	bins := make([]float32, n+1)
	for i := range bins {
		bins[i] = trange.Min + float32(i)*binWidth
	}
	if rem := span - float32(n)*binWidth; math32.Abs(rem) > 1.0e-3*binWidth {
		log.Printf("checks.MakeTimeBins: range [%g, %g] is not a whole multiple of width %g -- bins end at %g\n",
			trange.Min, trange.Max, binWidth, bins[n])
	}
	return bins, nil
}

// CheckTimeBins validates precomputed bin edges against the data values
// they will bin: edges must be strictly increasing, with at least one bin.
// Values extending beyond the outermost edges are not an error, but are
// logged as a warning since those spikes go uncounted.
func CheckTimeBins(bins, values []float32) error {
	if len(bins) < 2 {
		return fmt.Errorf("checks.CheckTimeBins: need at least 2 bin edges, got %d", len(bins))
	}
	for i := 1; i < len(bins); i++ {
		if bins[i] <= bins[i-1] {
			return fmt.Errorf("checks.CheckTimeBins: bin edges must be strictly increasing, edge %d (%g) <= edge %d (%g)",
				i, bins[i], i-1, bins[i-1])
		}
	}
	if len(values) > 0 {
		vmin, vmax := values[0], values[0]
		for _, v := range values {
			if v < vmin {
				vmin = v
			}
			if v > vmax {
				vmax = v
			}
		}
		if vmin < bins[0] || vmax > bins[len(bins)-1] {
			log.Printf("checks.CheckTimeBins: values [%g, %g] extend beyond bin edges [%g, %g]\n",
				vmin, vmax, bins[0], bins[len(bins)-1])
		}
	}
	return nil
}
