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
	"math"
	"math/cmplx"
)

// IndexFunc gives the complex refractive index of a material at a wavelength
// in nanometers.  The real part is the phase index n, the imaginary part the
// extinction coefficient k.
//
// An IndexFunc must be deterministic and free of side effects, since a
// [Stack] may be queried concurrently.
type IndexFunc func(wavelength float64) complex128

// Layer is a homogeneous slab of material.
type Layer struct {
	// Index is the refractive index of the material.
	Index IndexFunc

	// Length is the thickness of the slab in nanometers.
	// The thickness of the last layer of a stack is never used.
	Length float64
}

// NewLayer returns a layer with the given refractive index and thickness.
func NewLayer(index IndexFunc, length float64) Layer {
	return Layer{Index: index, Length: length}
}

// NewConstantLayer returns a layer made of a dispersionless, non-absorbing
// material with refractive index n.
func NewConstantLayer(n float64, length float64) Layer {
	nc := complex(n, 0)
	return Layer{
		Index:  func(float64) complex128 { return nc },
		Length: length,
	}
}

// GlassIndex is the refractive index used by [NewGlassLayer].
const GlassIndex = 1.52

// NewGlassLayer returns a layer of window glass (n = 1.52).
func NewGlassLayer(length float64) Layer {
	return NewConstantLayer(GlassIndex, length)
}

// NewAirLayer returns a layer of air (n = 1).
func NewAirLayer(length float64) Layer {
	return NewConstantLayer(1, length)
}

// Transmit returns the operator coupling the wave amplitudes in l to the
// amplitudes in the following layer next.
//
// Light is assumed to arrive along the surface normal, with TE polarization.
// The operator is
//
//	/ 1+g  1-g \
//	\ 1-g  1+g /
//
// where g = n_next/n_l is the admittance ratio.  This is twice the Fresnel
// interface matrix.
func (l Layer) Transmit(wavelength float64, next Layer) Matrix {
	g := next.Index(wavelength) / l.Index(wavelength)
	return Matrix{
		1 + g, 1 - g,
		1 - g, 1 + g,
	}
}

// Propagate returns the operator describing the phase change and attenuation
// of the waves while crossing the layer.
//
// With kz = 2π n / λ, the operator is diag(exp(-i kz d), exp(i kz d)).
// For absorbing materials kz is complex.
func (l Layer) Propagate(wavelength float64) Matrix {
	kz := complex(2*math.Pi/wavelength, 0) * l.Index(wavelength)
	phase := kz * complex(l.Length, 0)
	return Matrix{
		cmplx.Exp(-1i * phase), 0,
		0, cmplx.Exp(1i * phase),
	}
}
