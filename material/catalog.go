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

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/tmm"
)

// Refractive indices of common materials.
var (
	Air   = Real(1.00)
	Glass = Real(tmm.GlassIndex)
	SiO2  = Real(1.46)
	TiO2  = Real(2.08)

	// BK7 is Schott N-BK7 borosilicate crown glass.
	BK7 = Sellmeier{
		B: [3]float64{1.03961212, 0.231792344, 1.01046945},
		C: [3]float64{0.00600069867, 0.0200179144, 103.560653},
	}.Index()

	// Silver uses tabulated optical constants from 187.9 nm to 1937 nm.
	Silver = MustTabulated(silverWavelengths, silverN, silverK)
)

// Info describes an entry of the material registry.
type Info struct {
	Name        string
	Description string
	Index       tmm.IndexFunc
}

var registry = map[string]*Info{
	"air":    {Name: "air", Description: "air, n = 1.00", Index: Air},
	"glass":  {Name: "glass", Description: "window glass, n = 1.52", Index: Glass},
	"sio2":   {Name: "sio2", Description: "silicon dioxide, n = 1.46", Index: SiO2},
	"tio2":   {Name: "tio2", Description: "titanium dioxide, n = 2.08", Index: TiO2},
	"bk7":    {Name: "bk7", Description: "N-BK7 crown glass, Sellmeier", Index: BK7},
	"silver": {Name: "silver", Description: "silver, tabulated n and k", Index: Silver},
}

// alternative spellings
var aliases = map[string]string{
	"ag":     "silver",
	"vacuum": "air",
}

// Lookup returns the registry entry for the given material name.
// Names are case-insensitive.
func Lookup(name string) (*Info, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alt, ok := aliases[key]; ok {
		key = alt
	}
	info, ok := registry[key]
	return info, ok
}

// Names returns the names of all registered materials in alphabetical order.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}
