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

package material

var silverWavelengths = []float64{
	187.90, 191.60, 195.30, 199.30, 203.30, 207.30, 211.90, 216.40, 221.40, 226.20,
	231.30, 237.10, 242.60, 249.00, 255.10, 261.60, 268.90, 276.10, 284.40, 292.40,
	300.90, 310.70, 320.40, 331.50, 342.50, 354.20, 367.90, 381.50, 397.40, 413.30,
	430.50, 450.90, 471.40, 495.90, 520.90, 548.60, 582.10, 616.80, 659.50, 704.50,
	756.00, 821.10, 892.00, 984.00, 1088.00, 1216.00, 1393.00, 1610.00, 1937.00,
}

var silverN = []float64{
	1.07, 1.10, 1.12, 1.14, 1.15, 1.18, 1.20, 1.22, 1.25, 1.26,
	1.28, 1.28, 1.30, 1.31, 1.33, 1.35, 1.38, 1.41, 1.41, 1.39,
	1.34, 1.13, 0.81, 0.17, 0.14, 0.10, 0.07, 0.05, 0.05, 0.05,
	0.04, 0.04, 0.05, 0.05, 0.05, 0.06, 0.05, 0.06, 0.05, 0.04,
	0.03, 0.04, 0.04, 0.04, 0.04, 0.09, 0.13, 0.15, 0.24,
}

var silverK = []float64{
	1.21, 1.23, 1.25, 1.28, 1.30, 1.31, 1.32, 1.34, 1.34, 1.34,
	1.36, 1.37, 1.38, 1.39, 1.39, 1.39, 1.37, 1.33, 1.26, 1.16,
	0.96, 0.62, 0.39, 0.83, 1.14, 1.42, 1.66, 1.86, 2.07, 2.27,
	2.46, 2.66, 2.87, 3.09, 3.32, 3.59, 3.86, 4.15, 4.48, 4.84,
	5.24, 5.73, 6.31, 6.99, 7.79, 8.83, 10.10, 11.85, 14.08,
}
