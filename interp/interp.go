// seehuhn.de/go/tmm - transfer-matrix optics for thin-film stacks
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package interp implements piecewise linear interpolation of tabulated
// one-dimensional data.
//
// This is used to turn measured optical constants, given at a set of sample
// wavelengths, into a function which can be evaluated at any wavelength.
package interp

import (
	"math"
	"sort"
	"strconv"
)

// Extrapolation selects how a [Table] is evaluated outside the range of the
// sample points.
type Extrapolation int

const (
	// Clamp uses the value of the first or last sample.
	Clamp Extrapolation = iota

	// Extend continues the first or last line segment.
	Extend

	// Zero returns zero outside the sample range.
	Zero
)

func (e Extrapolation) String() string {
	switch e {
	case Clamp:
		return "clamp"
	case Extend:
		return "extend"
	case Zero:
		return "zero"
	default:
		return "Extrapolation(" + strconv.Itoa(int(e)) + ")"
	}
}

// Table is a function given by sample values at increasing sample points.
// Between samples, the function is linear.
//
// A Table is safe for concurrent use.
type Table struct {
	x, y []float64
	mode Extrapolation
}

// New returns a table for the samples (xs[i], ys[i]).
//
// The sample points xs must be finite and strictly increasing, and xs and ys
// must have the same, non-zero length.  The slices are copied.
func New(xs, ys []float64, mode Extrapolation) (*Table, error) {
	if len(xs) != len(ys) {
		return nil, newInvalidTableError("ys", "expected %d values, got %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, newInvalidTableError("xs", "no samples")
	}
	if mode < Clamp || mode > Zero {
		return nil, newInvalidTableError("mode", "unknown extrapolation mode %d", int(mode))
	}
	for i := range xs {
		if !isFinite(xs[i]) {
			return nil, newInvalidTableError("xs", "sample point %d is not finite", i)
		}
		if !isFinite(ys[i]) {
			return nil, newInvalidTableError("ys", "sample value %d is not finite", i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, newInvalidTableError("xs", "sample points not increasing at index %d", i)
		}
	}

	t := &Table{
		x:    make([]float64, len(xs)),
		y:    make([]float64, len(ys)),
		mode: mode,
	}
	copy(t.x, xs)
	copy(t.y, ys)
	return t, nil
}

// Domain returns the first and last sample point.
func (t *Table) Domain() (float64, float64) {
	return t.x[0], t.x[len(t.x)-1]
}

// Len returns the number of samples.
func (t *Table) Len() int {
	return len(t.x)
}

// Mode returns the extrapolation mode of the table.
func (t *Table) Mode() Extrapolation {
	return t.mode
}

// At evaluates the table at x.
func (t *Table) At(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}

	n := len(t.x)
	if n == 1 {
		if t.mode == Zero && x != t.x[0] {
			return 0
		}
		return t.y[0]
	}

	if x < t.x[0] || x > t.x[n-1] {
		switch t.mode {
		case Zero:
			return 0
		case Clamp:
			if x < t.x[0] {
				return t.y[0]
			}
			return t.y[n-1]
		}
		// Extend: fall through and use the end segment
	}

	// index of the first sample point > x, restricted to [1, n-1]
	i := sort.SearchFloat64s(t.x, x)
	if i < n && t.x[i] == x {
		return t.y[i]
	}
	i = max(1, min(i, n-1))

	return interpolate(x, t.x[i-1], t.x[i], t.y[i-1], t.y[i])
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// interpolate performs linear interpolation.
func interpolate(x, xMin, xMax, yMin, yMax float64) float64 {
	if xMax <= xMin {
		return yMin
	}
	return yMin + (x-xMin)*(yMax-yMin)/(xMax-xMin)
}
