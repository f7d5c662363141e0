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

// Package layerspec reads descriptions of thin-film stacks.
//
// The inline form lists the layers, incident medium first, separated by
// commas.  Each entry has the form material[:thickness], where material is
// the name of a registered material, a real refractive index like 1.52, or
// a complex index like 0.05+3.09i.  The thickness is given in nanometers and
// defaults to zero:
//
//	air,1.52:400,air
//
// Stacks can also be read from YAML files, see [File].
package layerspec

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/tmm"
	"seehuhn.de/go/tmm/material"
)

var errNoLayers = errors.New("no layers")

// EntryError reports a problem with one layer of a stack description.
type EntryError struct {
	// Entry is the zero-based position of the layer.
	Entry int
	Err   error
}

func (err *EntryError) Error() string {
	return fmt.Sprintf("layer %d: %v", err.Entry, err.Err)
}

func (err *EntryError) Unwrap() error {
	return err.Err
}

// Parse parses a stack in inline form.
func Parse(spec string) (*tmm.Stack, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, errNoLayers
	}

	s := tmm.NewStack()
	for i, entry := range strings.Split(spec, ",") {
		l, err := parseEntry(strings.TrimSpace(entry))
		if err != nil {
			return nil, &EntryError{Entry: i, Err: err}
		}
		s.Add(l)
	}
	return s, nil
}

func parseEntry(entry string) (tmm.Layer, error) {
	name, thickness, hasThickness := strings.Cut(entry, ":")

	index, err := parseIndex(strings.TrimSpace(name))
	if err != nil {
		return tmm.Layer{}, err
	}

	var length float64
	if hasThickness {
		length, err = parseThickness(strings.TrimSpace(thickness))
		if err != nil {
			return tmm.Layer{}, err
		}
	}
	return tmm.NewLayer(index, length), nil
}

func parseIndex(name string) (tmm.IndexFunc, error) {
	if name == "" {
		return nil, errors.New("missing material")
	}
	if info, ok := material.Lookup(name); ok {
		return info.Index, nil
	}
	n, err := strconv.ParseComplex(name, 128)
	if err != nil {
		return nil, fmt.Errorf("unknown material %q", name)
	}
	if n == 0 || cmplx.IsNaN(n) || cmplx.IsInf(n) {
		return nil, fmt.Errorf("invalid refractive index %v", n)
	}
	return material.Constant(n), nil
}

func parseThickness(s string) (float64, error) {
	s = strings.TrimSuffix(s, "nm")
	d, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid thickness %q", s)
	}
	if d < 0 || math.IsNaN(d) || d > 1e12 {
		return 0, fmt.Errorf("thickness %g out of range", d)
	}
	return d, nil
}

// File is the YAML representation of a stack.
//
//	name: bandpass
//	layers:
//	  - material: glass
//	    thickness: 1000
//	  - index: 1.46
//	    thickness: 100
//	  - n: 0.05
//	    k: 3.09
//	    thickness: 30
//	  - cauchy: {a: 1.5, b: 0.004}
//	    thickness: 80
//	  - table:
//	      wavelengths: [400, 500, 600]
//	      n: [1.47, 1.46, 1.45]
//	    thickness: 100
type File struct {
	Name   string  `yaml:"name,omitempty"`
	Layers []Layer `yaml:"layers"`
}

// Layer describes one layer in a [File].
// Exactly one way of specifying the refractive index must be used.
type Layer struct {
	Material  string   `yaml:"material,omitempty"`
	Index     *float64 `yaml:"index,omitempty"`
	N         *float64 `yaml:"n,omitempty"`
	K         float64  `yaml:"k,omitempty"`
	Cauchy    *Cauchy  `yaml:"cauchy,omitempty"`
	Table     *Table   `yaml:"table,omitempty"`
	Thickness float64  `yaml:"thickness,omitempty"`
}

// Cauchy holds the coefficients of Cauchy's equation, for wavelengths in
// micrometers.
type Cauchy struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c,omitempty"`
}

// Table holds tabulated optical constants.  If K is omitted, the material
// is non-absorbing.
type Table struct {
	Wavelengths []float64 `yaml:"wavelengths"`
	N           []float64 `yaml:"n"`
	K           []float64 `yaml:"k,omitempty"`
}

// Decode reads a stack description in YAML format.
// Unknown fields are rejected.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	f := &File{}
	if err := dec.Decode(f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoLayers
		}
		return nil, err
	}
	return f, nil
}

// Load reads a YAML stack description from a file.
func Load(fname string) (*File, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// Stack converts the description into a stack.
func (f *File) Stack() (*tmm.Stack, error) {
	if len(f.Layers) == 0 {
		return nil, errNoLayers
	}
	s := tmm.NewStack()
	for i, l := range f.Layers {
		layer, err := l.layer()
		if err != nil {
			return nil, &EntryError{Entry: i, Err: err}
		}
		s.Add(layer)
	}
	return s, nil
}

func (l *Layer) layer() (tmm.Layer, error) {
	if l.Thickness < 0 || math.IsNaN(l.Thickness) || math.IsInf(l.Thickness, 0) {
		return tmm.Layer{}, fmt.Errorf("thickness %g out of range", l.Thickness)
	}

	var index tmm.IndexFunc
	count := 0
	if l.Material != "" {
		count++
		info, ok := material.Lookup(l.Material)
		if !ok {
			return tmm.Layer{}, fmt.Errorf("unknown material %q", l.Material)
		}
		index = info.Index
	}
	if l.Index != nil {
		count++
		index = material.Real(*l.Index)
	}
	if l.N != nil {
		count++
		index = material.Constant(complex(*l.N, l.K))
	} else if l.K != 0 {
		return tmm.Layer{}, errors.New("k given without n")
	}
	if l.Cauchy != nil {
		count++
		index = material.Cauchy{A: l.Cauchy.A, B: l.Cauchy.B, C: l.Cauchy.C}.Index()
	}
	if l.Table != nil {
		count++
		k := l.Table.K
		if k == nil {
			k = make([]float64, len(l.Table.Wavelengths))
		}
		var err error
		index, err = material.Tabulated(l.Table.Wavelengths, l.Table.N, k)
		if err != nil {
			return tmm.Layer{}, err
		}
	}

	switch count {
	case 0:
		return tmm.Layer{}, errors.New("missing refractive index")
	case 1:
		return tmm.NewLayer(index, l.Thickness), nil
	default:
		return tmm.Layer{}, errors.New("more than one refractive index given")
	}
}
