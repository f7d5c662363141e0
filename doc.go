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

// Package tmm computes reflectance and transmittance of thin-film stacks
// using the transfer-matrix method.
//
// A stack is a sequence of planar, parallel layers.  Each [Layer] has a
// thickness in nanometers and a refractive index, given as a function of the
// wavelength so that dispersive and absorbing materials can be described.
// Light arrives along the surface normal from the first layer and leaves
// through the last layer; both are treated as semi-infinite media.
//
// A [Stack] is built by adding layers in physical order, and then queried
// one wavelength at a time:
//
//	s := tmm.NewStack()
//	s.Add(tmm.NewAirLayer(0))
//	s.Add(tmm.NewGlassLayer(400))
//	s.Add(tmm.NewAirLayer(0))
//	res, ok := s.Transfer(500)
//	if !ok {
//	    ... the stack is empty ...
//	}
//	fmt.Println(res.Reflectance)
//
// For every layer, two operators are formed: [Layer.Propagate] accounts for
// the phase advance across the layer, [Layer.Transmit] couples the wave
// amplitudes to the next layer.  [Stack.Transfer] multiplies these in the
// order light traverses the stack and reads the result off the system matrix.
//
// Refractive indices for common materials, including tabulated data, are
// provided by the subpackage seehuhn.de/go/tmm/material.
package tmm
