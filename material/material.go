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

// Package material provides refractive indices of optical materials.
//
// All functions in this package return a [tmm.IndexFunc], taking the vacuum
// wavelength in nanometers.  Dispersionless materials are described by
// [Constant] or [Real], simple dispersion formulas by [Cauchy] and
// [Sellmeier], and measured optical constants by [Tabulated].
package material

import (
	"fmt"
	"math"

	"seehuhn.de/go/tmm"
	"seehuhn.de/go/tmm/interp"
)

// Constant returns a refractive index which does not depend on the
// wavelength.
func Constant(n complex128) tmm.IndexFunc {
	return func(float64) complex128 { return n }
}

// Real returns the refractive index of a dispersionless, non-absorbing
// material.
func Real(n float64) tmm.IndexFunc {
	return Constant(complex(n, 0))
}

// Cauchy describes a transparent material using Cauchy's equation
//
//	n(λ) = A + B/λ² + C/λ⁴
//
// with the wavelength λ in micrometers.
type Cauchy struct {
	A, B, C float64
}

// Index returns the refractive index function of the material.
func (c Cauchy) Index() tmm.IndexFunc {
	return func(wavelength float64) complex128 {
		l2 := wavelength * wavelength * 1e-6
		return complex(c.A+c.B/l2+c.C/(l2*l2), 0)
	}
}

// Sellmeier describes a transparent material using the Sellmeier equation
//
//	n²(λ) = 1 + Σ B[i] λ² / (λ² - C[i])
//
// with the wavelength λ in micrometers and C in square micrometers.
type Sellmeier struct {
	B [3]float64
	C [3]float64
}

// Index returns the refractive index function of the material.
func (s Sellmeier) Index() tmm.IndexFunc {
	return func(wavelength float64) complex128 {
		l2 := wavelength * wavelength * 1e-6
		n2 := 1.0
		for i := range s.B {
			n2 += s.B[i] * l2 / (l2 - s.C[i])
		}
		return complex(math.Sqrt(n2), 0)
	}
}

// Tabulated returns a refractive index interpolated from measured optical
// constants.  The phase index n and the extinction coefficient k are sampled
// at the given wavelengths, in nanometers.  Outside the sampled range, the
// first or last sample is used.
func Tabulated(wavelengths, n, k []float64) (tmm.IndexFunc, error) {
	nTab, err := interp.New(wavelengths, n, interp.Clamp)
	if err != nil {
		return nil, fmt.Errorf("phase index: %w", err)
	}
	kTab, err := interp.New(wavelengths, k, interp.Clamp)
	if err != nil {
		return nil, fmt.Errorf("extinction coefficient: %w", err)
	}
	return func(wavelength float64) complex128 {
		return complex(nTab.At(wavelength), kTab.At(wavelength))
	}, nil
}

// MustTabulated is like [Tabulated] but panics on error.
// It is intended for tables compiled into the program.
func MustTabulated(wavelengths, n, k []float64) tmm.IndexFunc {
	f, err := Tabulated(wavelengths, n, k)
	if err != nil {
		panic(err)
	}
	return f
}
