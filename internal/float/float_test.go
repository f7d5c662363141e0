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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 3, "0"},
		{1, 3, "1"},
		{1.5, 3, "1.5"},
		{0.15071059, 4, "0.1507"},
		{0.0530806, 6, "0.053081"},
		{400, 2, "400"},
		{1000, 0, "1000"},
		{-0.00001, 3, "0"},
		{-2.25, 1, "-2.2"},
		{math.NaN(), 3, "NaN"},
		{math.Inf(1), 3, "+Inf"},
		{math.Inf(-1), 3, "-Inf"},
	}
	for _, test := range cases {
		if got := Format(test.x, test.precision); got != test.want {
			t.Errorf("Format(%g, %d) = %q, want %q", test.x, test.precision, got, test.want)
		}
	}
}
