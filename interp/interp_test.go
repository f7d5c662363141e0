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

package interp

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAtSamples(t *testing.T) {
	xs := []float64{187.9, 191.6, 195.3, 199.3}
	ys := []float64{1.07, 1.10, 1.12, 1.14}
	for _, mode := range []Extrapolation{Clamp, Extend, Zero} {
		tab, err := New(xs, ys, mode)
		if err != nil {
			t.Fatal(err)
		}
		for i, x := range xs {
			if got := tab.At(x); got != ys[i] {
				t.Errorf("%s: At(%g) = %g, want %g", mode, x, got, ys[i])
			}
		}
	}
}

func TestAt(t *testing.T) {
	xs := []float64{0, 1, 3}
	ys := []float64{0, 2, 0}

	type testCase struct {
		x                   float64
		clamp, extend, zero float64
	}
	cases := []testCase{
		{x: 0.5, clamp: 1, extend: 1, zero: 1},
		{x: 2, clamp: 1, extend: 1, zero: 1},
		{x: 2.5, clamp: 0.5, extend: 0.5, zero: 0.5},
		{x: -1, clamp: 0, extend: -2, zero: 0},
		{x: 4, clamp: 0, extend: -1, zero: 0},
		{x: 3, clamp: 0, extend: 0, zero: 0},
	}

	tables := map[Extrapolation]*Table{}
	for _, mode := range []Extrapolation{Clamp, Extend, Zero} {
		tab, err := New(xs, ys, mode)
		if err != nil {
			t.Fatal(err)
		}
		tables[mode] = tab
	}

	for _, test := range cases {
		got := []float64{
			tables[Clamp].At(test.x),
			tables[Extend].At(test.x),
			tables[Zero].At(test.x),
		}
		want := []float64{test.clamp, test.extend, test.zero}
		if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("At(%g): %s", test.x, d)
		}
	}
}

func TestClampBoundary(t *testing.T) {
	tab, err := New([]float64{400, 500}, []float64{1.5, 1.4}, Clamp)
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []float64{-1e300, 0, 399.999} {
		if got := tab.At(x); got != 1.5 {
			t.Errorf("At(%g) = %g, want 1.5", x, got)
		}
	}
	for _, x := range []float64{500.001, 1e300, math.Inf(1)} {
		if got := tab.At(x); got != 1.4 {
			t.Errorf("At(%g) = %g, want 1.4", x, got)
		}
	}
}

func TestSingleSample(t *testing.T) {
	for _, mode := range []Extrapolation{Clamp, Extend} {
		tab, err := New([]float64{500}, []float64{1.46}, mode)
		if err != nil {
			t.Fatal(err)
		}
		for _, x := range []float64{100, 500, 900} {
			if got := tab.At(x); got != 1.46 {
				t.Errorf("%s: At(%g) = %g, want 1.46", mode, x, got)
			}
		}
	}

	tab, err := New([]float64{500}, []float64{1.46}, Zero)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.At(499); got != 0 {
		t.Errorf("At(499) = %g, want 0", got)
	}
}

func TestNaN(t *testing.T) {
	tab, err := New([]float64{0, 1}, []float64{0, 1}, Clamp)
	if err != nil {
		t.Fatal(err)
	}
	if got := tab.At(math.NaN()); !math.IsNaN(got) {
		t.Errorf("At(NaN) = %g", got)
	}
}

func TestCopy(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0, 1}
	tab, err := New(xs, ys, Clamp)
	if err != nil {
		t.Fatal(err)
	}
	ys[1] = 100
	if got := tab.At(0.5); got != 0.5 {
		t.Errorf("At(0.5) = %g, want 0.5", got)
	}
}

func TestDomain(t *testing.T) {
	tab, err := New([]float64{187.9, 500, 1937}, []float64{1, 2, 3}, Clamp)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := tab.Domain()
	if lo != 187.9 || hi != 1937 {
		t.Errorf("Domain() = %g, %g", lo, hi)
	}
	if tab.Len() != 3 {
		t.Errorf("Len() = %d", tab.Len())
	}
}

func TestNewErrors(t *testing.T) {
	type testCase struct {
		name   string
		xs, ys []float64
		mode   Extrapolation
	}
	cases := []testCase{
		{"empty", nil, nil, Clamp},
		{"length", []float64{1, 2}, []float64{1}, Clamp},
		{"order", []float64{1, 3, 2}, []float64{1, 2, 3}, Clamp},
		{"duplicate", []float64{1, 1}, []float64{1, 2}, Clamp},
		{"nan-x", []float64{1, math.NaN()}, []float64{1, 2}, Clamp},
		{"inf-y", []float64{1, 2}, []float64{1, math.Inf(-1)}, Clamp},
		{"mode", []float64{1, 2}, []float64{1, 2}, Extrapolation(7)},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.xs, test.ys, test.mode)
			if !errors.Is(err, &InvalidTableError{}) {
				t.Errorf("got %v, want InvalidTableError", err)
			}
		})
	}
}

func TestExtrapolationString(t *testing.T) {
	got := []string{Clamp.String(), Extend.String(), Zero.String(), Extrapolation(9).String()}
	want := []string{"clamp", "extend", "zero", "Extrapolation(9)"}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func BenchmarkAt(b *testing.B) {
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	for i := range xs {
		xs[i] = 180 + 35*float64(i)
		ys[i] = math.Sin(float64(i))
	}
	tab, err := New(xs, ys, Clamp)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tab.At(400 + float64(i%1300))
	}
}
