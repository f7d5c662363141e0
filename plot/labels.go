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

package plot

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/tmm/internal/float"
)

var labelFace font.Face = basicfont.Face7x13

func (c *chart) drawLabels(caption string) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.Black),
		Face: labelFace,
	}
	ascent := labelFace.Metrics().Ascent.Ceil()

	xStep := niceStep((c.xMax - c.xMin) / 10)
	for _, x := range ticks(c.xMin, c.xMax, 10) {
		px, _ := c.point(x, c.yMin)
		label := float.Format(x, digitsFor(xStep))
		w := d.MeasureString(label).Ceil()
		d.Dot = fixed.P(c.area.Min.X+int(math.Round(px))-w/2, c.area.Max.Y+6+ascent)
		d.DrawString(label)
	}

	yStep := niceStep((c.yMax - c.yMin) / 5)
	for _, y := range ticks(c.yMin, c.yMax, 5) {
		_, py := c.point(c.xMin, y)
		label := float.Format(y, digitsFor(yStep))
		w := d.MeasureString(label).Ceil()
		d.Dot = fixed.P(c.area.Min.X-6-w, c.area.Min.Y+int(math.Round(py))+ascent/2)
		d.DrawString(label)
	}

	unit := "wavelength / nm"
	w := d.MeasureString(unit).Ceil()
	d.Dot = fixed.P(c.area.Max.X-w, c.img.Bounds().Max.Y-4)
	d.DrawString(unit)

	if caption != "" {
		w := d.MeasureString(caption).Ceil()
		d.Dot = fixed.P((c.img.Bounds().Dx()-w)/2, (marginTop+ascent)/2)
		d.DrawString(caption)
	}
}

// digitsFor returns the number of decimal digits needed to print multiples
// of step.
func digitsFor(step float64) int {
	if step >= 1 || step <= 0 {
		return 0
	}
	return int(math.Ceil(-math.Log10(step) - 1e-9))
}
