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

// Stack is an ordered sequence of layers.
//
// The first layer is the medium the light arrives from, the last layer is the
// medium the transmitted light leaves into.  Both are treated as
// semi-infinite.
//
// A Stack must not be modified concurrently with other calls.  Once all
// layers are added, [Stack.Transfer] may be called from several goroutines at
// the same time.
type Stack struct {
	layers []Layer
}

// NewStack returns a stack holding the given layers.
// Without arguments, the stack is empty.
func NewStack(layers ...Layer) *Stack {
	s := &Stack{}
	for _, l := range layers {
		s.Add(l)
	}
	return s
}

// Add appends a layer at the exit side of the stack.
func (s *Stack) Add(l Layer) {
	s.layers = append(s.layers, l)
}

// Len returns the number of layers in the stack.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Layers returns a copy of the layers, in the order light traverses them.
func (s *Stack) Layers() []Layer {
	res := make([]Layer, len(s.layers))
	copy(res, s.layers)
	return res
}

// Reversed returns a new stack with the layers in opposite order.  This
// describes light entering the stack from the other side.
func (s *Stack) Reversed() *Stack {
	n := len(s.layers)
	res := &Stack{layers: make([]Layer, n)}
	for i, l := range s.layers {
		res.layers[n-1-i] = l
	}
	return res
}

// Result holds the optical response of a stack at one wavelength.
type Result struct {
	// Reflectance is |M10/M00|², where M is the system matrix.
	Reflectance float64

	// Transmittance is |1/M00|².  Since every interface operator is twice
	// the Fresnel interface matrix, this carries a factor 4^-(N-1) for a
	// stack of N layers.
	Transmittance float64

	// PowerTransmittance is the fraction of incident power leaving through
	// the exit medium.  For a stack without absorption,
	// Reflectance + PowerTransmittance = 1.
	//
	// The incident medium must not absorb.  If the index of the first layer
	// has a non-zero imaginary part, PowerTransmittance is NaN.
	PowerTransmittance float64
}

// SystemMatrix returns the product of all layer operators at the given
// wavelength.  The second return value is false if the stack is empty.
//
// For every pair of neighbouring layers, the propagation operator of the
// first layer and then the transmission operator into the second layer are
// multiplied onto the accumulated matrix.  The last layer contributes no
// propagation step.
func (s *Stack) SystemMatrix(wavelength float64) (Matrix, bool) {
	if len(s.layers) == 0 {
		return Matrix{}, false
	}

	M := IdentityMatrix
	for k := 0; k+1 < len(s.layers); k++ {
		left := s.layers[k]
		right := s.layers[k+1]
		M = M.Mul(left.Propagate(wavelength))
		M = M.Mul(left.Transmit(wavelength, right))
	}
	return M, true
}

// Transfer computes reflectance and transmittance of the stack for light of
// the given vacuum wavelength in nanometers.
// The second return value is false if the stack has no layers.
//
// A stack with a single layer returns Reflectance 0 and Transmittance 1.
//
// Transfer does not validate its input.  A zero wavelength, or a refractive
// index of zero, leads to NaN or infinite values in the result.  A negative
// wavelength gives finite values without physical meaning; for a stack of
// real indices they equal the result at the positive wavelength.
// Use [Stack.Check] to detect these cases in advance.
func (s *Stack) Transfer(wavelength float64) (Result, bool) {
	M, ok := s.SystemMatrix(wavelength)
	if !ok {
		return Result{}, false
	}

	r := M[2] / M[0]
	t := 1 / M[0]
	res := Result{
		Reflectance:   sqAbs(r),
		Transmittance: sqAbs(t),
	}

	n := len(s.layers)
	if n == 1 {
		res.PowerTransmittance = 1
		return res, true
	}
	in := s.layers[0].Index(wavelength)
	if imag(in) != 0 {
		res.PowerTransmittance = math.NaN()
		return res, true
	}
	nOut := real(s.layers[n-1].Index(wavelength))
	scale := math.Ldexp(1, 2*(n-1))
	res.PowerTransmittance = res.Transmittance * scale * nOut / real(in)

	return res, true
}

func sqAbs(z complex128) float64 {
	a := cmplx.Abs(z)
	return a * a
}
