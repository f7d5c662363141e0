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

package layerspec

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/tmm"
	"seehuhn.de/go/tmm/material"
)

// summary lists index at 500 nm and thickness for every layer.
func summary(s *tmm.Stack) [][2]complex128 {
	var res [][2]complex128
	for _, l := range s.Layers() {
		res = append(res, [2]complex128{l.Index(500), complex(l.Length, 0)})
	}
	return res
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want [][2]complex128
	}{
		{"air,1.52:400,air", [][2]complex128{{1, 0}, {1.52, 400}, {1, 0}}},
		{" glass : 1000 , SiO2:100nm, 0.05+3.09i:30, tio2:50 ",
			[][2]complex128{{1.52, 1000}, {1.46, 100}, {0.05 + 3.09i, 30}, {2.08, 50}}},
		{"ag:12.5", [][2]complex128{{material.Silver(500), 12.5}}},
	}
	for _, test := range cases {
		t.Run(test.in, func(t *testing.T) {
			s, err := Parse(test.in)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(test.want, summary(s)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		in    string
		entry int
	}{
		{"air,unobtainium:5", 1},
		{"air,1.52:-4,air", 1},
		{"air,1.52:abc", 1},
		{":100", 0},
		{"0:100", 0},
		{"nan", 0},
		{"air,,air", 1},
	}
	for _, test := range cases {
		t.Run(test.in, func(t *testing.T) {
			_, err := Parse(test.in)
			var entryErr *EntryError
			if !errors.As(err, &entryErr) {
				t.Fatalf("got %v, want EntryError", err)
			}
			if entryErr.Entry != test.entry {
				t.Errorf("entry = %d, want %d", entryErr.Entry, test.entry)
			}
		})
	}

	if _, err := Parse("  "); err == nil {
		t.Error("empty description accepted")
	}
}

const bandpassYAML = `
name: bandpass
layers:
  - material: glass
    thickness: 1000
  - index: 1.46
    thickness: 100
  - n: 0.05
    k: 3.09
    thickness: 30
  - cauchy: {a: 1.5, b: 0.01}
    thickness: 80
  - table:
      wavelengths: [400, 600]
      n: [1.48, 1.44]
    thickness: 100
  - material: air
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(bandpassYAML))
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "bandpass" {
		t.Errorf("name = %q", f.Name)
	}
	s, err := f.Stack()
	if err != nil {
		t.Fatal(err)
	}

	got := summary(s)
	want := [][2]complex128{
		{1.52, 1000},
		{1.46, 100},
		{0.05 + 3.09i, 30},
		{complex(1.5+0.01/0.25, 0), 80},
		{1.46, 100},
		{1, 0},
	}
	approx := cmp.Comparer(func(a, b complex128) bool {
		return math.Abs(real(a)-real(b)) < 1e-12 && math.Abs(imag(a)-imag(b)) < 1e-12
	})
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"unknown":   "layers:\n  - colour: red\n",
		"two":       "layers:\n  - material: air\n    index: 1.2\n",
		"none":      "layers:\n  - thickness: 5\n",
		"k-only":    "layers:\n  - k: 0.5\n",
		"material":  "layers:\n  - material: unobtainium\n",
		"thickness": "layers:\n  - material: air\n    thickness: -1\n",
		"table":     "layers:\n  - table: {wavelengths: [1, 2], n: [1]}\n",
		"no-layers": "name: empty\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Decode(strings.NewReader(body))
			if err == nil {
				_, err = f.Stack()
			}
			if err == nil {
				t.Error("no error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "stack.yaml")
	if err := os.WriteFile(fname, []byte(bandpassYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Layers) != 6 {
		t.Errorf("got %d layers, want 6", len(f.Layers))
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}
