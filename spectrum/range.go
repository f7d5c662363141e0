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

// Package spectrum evaluates thin-film stacks over a range of wavelengths.
package spectrum

import (
	"fmt"
	"math"
)

// maxSamples limits the size of a sweep.
const maxSamples = 1 << 24

// Range is an equally spaced set of wavelengths, in nanometers.
// The range starts at From and includes all points From + i*Step which do
// not exceed To.  A point within a relative tolerance of 1e-9 steps above To
// is included and replaced by To, so no wavelength exceeds To.
type Range struct {
	From, To, Step float64
}

// RangeError is returned for wavelength ranges which cannot be swept.
type RangeError struct {
	Range  Range
	Reason string
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("spectrum: invalid range %g..%g step %g: %s",
		err.Range.From, err.Range.To, err.Range.Step, err.Reason)
}

// Is reports whether target is a RangeError.
func (err *RangeError) Is(target error) bool {
	_, ok := target.(*RangeError)
	return ok
}

// Validate checks that the range describes a finite, non-empty set of
// positive wavelengths.
func (r Range) Validate() error {
	switch {
	case !isFinite(r.From) || !isFinite(r.To) || !isFinite(r.Step):
		return &RangeError{Range: r, Reason: "bounds must be finite"}
	case r.From <= 0:
		return &RangeError{Range: r, Reason: "wavelengths must be positive"}
	case r.To < r.From:
		return &RangeError{Range: r, Reason: "end before start"}
	case r.Step <= 0:
		return &RangeError{Range: r, Reason: "step must be positive"}
	case (r.To-r.From)/r.Step >= maxSamples:
		return &RangeError{Range: r, Reason: "too many samples"}
	}
	return nil
}

// Len returns the number of wavelengths in the range.
// The range must be valid.
func (r Range) Len() int {
	// The tolerance keeps To in the range when (To-From)/Step is an
	// integer up to rounding.
	return int(math.Floor((r.To-r.From)/r.Step+1e-9)) + 1
}

// At returns the i-th wavelength of the range.
func (r Range) At(i int) float64 {
	return min(r.From+float64(i)*r.Step, r.To)
}

// Wavelengths returns all wavelengths of the range.
func (r Range) Wavelengths() ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	res := make([]float64, r.Len())
	for i := range res {
		res[i] = r.At(i)
	}
	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
