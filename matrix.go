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

import "fmt"

// Matrix is a complex 2x2 matrix acting on the amplitudes of the forward and
// backward travelling waves in a layer.
// The elements are stored in row-major order:
//
//	/ M[0] M[1] \
//	\ M[2] M[3] /
type Matrix [4]complex128

// IdentityMatrix leaves both wave amplitudes unchanged.
var IdentityMatrix = Matrix{1, 0, 0, 1}

// Mul returns the matrix product M*B.
//
// When the matrices describe a sequence of layers, M is the part of the
// stack closer to the incident medium.
func (M Matrix) Mul(B Matrix) Matrix {
	// / M0 M1 \  / B0 B1 \   / M0*B0+M1*B2  M0*B1+M1*B3 \
	// \ M2 M3 /  \ B2 B3 / = \ M2*B0+M3*B2  M2*B1+M3*B3 /
	return Matrix{
		M[0]*B[0] + M[1]*B[2],
		M[0]*B[1] + M[1]*B[3],
		M[2]*B[0] + M[3]*B[2],
		M[2]*B[1] + M[3]*B[3],
	}
}

// At returns the element in the given row and column.
func (M Matrix) At(row, col int) complex128 {
	return M[2*row+col]
}

// Det returns the determinant of M.
func (M Matrix) Det() complex128 {
	return M[0]*M[3] - M[1]*M[2]
}

func (M Matrix) String() string {
	return fmt.Sprintf("[[%v %v] [%v %v]]", M[0], M[1], M[2], M[3])
}
