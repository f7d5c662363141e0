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

package tmm

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrEmptyStack is returned by [Stack.Check] and by consumers of this package
// when a stack without layers is used.
var ErrEmptyStack = errors.New("tmm: empty layer stack")

// DomainError indicates an input for which the transfer-matrix computation
// has no physical meaning.
type DomainError struct {
	// Layer is the index of the offending layer, or -1 if the problem is
	// not specific to a layer.
	Layer int

	Wavelength float64
	Reason     string
}

func (err *DomainError) Error() string {
	if err.Layer < 0 {
		return fmt.Sprintf("tmm: wavelength %g: %s", err.Wavelength, err.Reason)
	}
	return fmt.Sprintf("tmm: layer %d at wavelength %g: %s",
		err.Layer, err.Wavelength, err.Reason)
}

// Is reports whether target is a DomainError.
func (err *DomainError) Is(target error) bool {
	_, ok := target.(*DomainError)
	return ok
}

// Check verifies that the stack can be evaluated at the given wavelength.
//
// It returns [ErrEmptyStack] if the stack has no layers, and a *DomainError
// if the wavelength is not a finite positive number, a layer has a negative
// or non-finite thickness, or a refractive index is zero or non-finite.
// The thickness of the last layer is not checked, since it is never used.
func (s *Stack) Check(wavelength float64) error {
	if len(s.layers) == 0 {
		return ErrEmptyStack
	}
	if !(wavelength > 0) || math.IsInf(wavelength, 1) {
		return &DomainError{Layer: -1, Wavelength: wavelength, Reason: "wavelength must be positive"}
	}

	var errs []error
	for i, l := range s.layers {
		if l.Index == nil {
			errs = append(errs, &DomainError{Layer: i, Wavelength: wavelength, Reason: "missing refractive index"})
			continue
		}
		n := l.Index(wavelength)
		switch {
		case cmplx.IsNaN(n) || cmplx.IsInf(n):
			errs = append(errs, &DomainError{Layer: i, Wavelength: wavelength, Reason: "refractive index is not finite"})
		case n == 0:
			errs = append(errs, &DomainError{Layer: i, Wavelength: wavelength, Reason: "refractive index is zero"})
		}
		if i == len(s.layers)-1 {
			continue
		}
		if l.Length < 0 || math.IsNaN(l.Length) || math.IsInf(l.Length, 0) {
			errs = append(errs, &DomainError{Layer: i, Wavelength: wavelength, Reason: "invalid thickness"})
		}
	}
	return errors.Join(errs...)
}
