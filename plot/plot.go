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

// Package plot renders reflectance and transmittance curves as raster
// images.
package plot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/tmm/spectrum"
)

// Options control the appearance of a chart.
// The zero value, or nil, selects the defaults.
type Options struct {
	// Width and Height give the image size in pixels.
	// The defaults are 1280 and 720.
	Width, Height int

	// YMin and YMax give the vertical axis range.
	// If both are zero, the range 0 to 1 is used.
	YMin, YMax float64

	// Caption is printed above the chart.
	Caption string

	// ShowTransmittance adds the power transmittance as a second curve.
	ShowTransmittance bool

	// LineWidth is the width of the curves in pixels.  The default is 1.5.
	LineWidth float64
}

var (
	errTooFewSamples = errors.New("plot: need at least two samples")
	errEmptySpan     = errors.New("plot: samples cover no wavelength range")
	errAxis          = errors.New("plot: invalid vertical axis range")
	errSize          = errors.New("plot: image too small")
)

// Colors of the chart elements.
var (
	ReflectanceColor   = color.RGBA{0, 0, 0, 255}
	TransmittanceColor = color.RGBA{0x1f, 0x4e, 0xb4, 255}
	GridColor          = color.RGBA{0xdd, 0xdd, 0xdd, 255}
	FrameColor         = color.RGBA{0x40, 0x40, 0x40, 255}
)

// Space around the plot area, in pixels.
const (
	marginLeft   = 56
	marginRight  = 24
	marginTop    = 32
	marginBottom = 40
)

// Render draws the samples as a line chart with the wavelength on the
// horizontal axis.  The samples must be sorted by wavelength.
func Render(samples []spectrum.Sample, opt *Options) (*image.RGBA, error) {
	if len(samples) < 2 {
		return nil, errTooFewSamples
	}
	if opt == nil {
		opt = &Options{}
	}
	c, err := newChart(samples, opt)
	if err != nil {
		return nil, err
	}

	c.drawGrid()
	c.drawCurve(func(s spectrum.Sample) float64 { return s.Reflectance }, ReflectanceColor)
	if opt.ShowTransmittance {
		c.drawCurve(func(s spectrum.Sample) float64 { return s.PowerTransmittance }, TransmittanceColor)
	}
	c.drawFrame()
	c.drawLabels(opt.Caption)

	return c.img, nil
}

// WritePNG encodes the image in PNG format.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type chart struct {
	img     *image.RGBA
	area    image.Rectangle // plot area, in image coordinates
	raster  *vector.Rasterizer
	samples []spectrum.Sample

	xMin, xMax float64
	yMin, yMax float64

	// toPlot maps data coordinates to pixel coordinates relative to the
	// top-left corner of the plot area.
	toPlot matrix.Matrix

	halfWidth float64
}

func newChart(samples []spectrum.Sample, opt *Options) (*chart, error) {
	width, height := opt.Width, opt.Height
	if width == 0 {
		width = 1280
	}
	if height == 0 {
		height = 720
	}
	if width < marginLeft+marginRight+16 || height < marginTop+marginBottom+16 {
		return nil, errSize
	}

	yMin, yMax := opt.YMin, opt.YMax
	if yMin == 0 && yMax == 0 {
		yMax = 1
	}
	if !(yMax > yMin) || math.IsInf(yMax-yMin, 0) {
		return nil, errAxis
	}

	xMin := samples[0].Wavelength
	xMax := samples[len(samples)-1].Wavelength
	if !(xMax > xMin) || math.IsInf(xMax-xMin, 0) {
		return nil, errEmptySpan
	}

	lw := opt.LineWidth
	if lw <= 0 {
		lw = 1.5
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	area := image.Rect(marginLeft, marginTop, width-marginRight, height-marginBottom)
	w := float64(area.Dx())
	h := float64(area.Dy())

	// Pixel rows grow downwards, so the vertical axis is flipped.
	M := matrix.Translate(-xMin, -yMax)
	M = M.Mul(matrix.Scale(w/(xMax-xMin), -h/(yMax-yMin)))

	return &chart{
		img:       img,
		area:      area,
		raster:    vector.NewRasterizer(area.Dx(), area.Dy()),
		samples:   samples,
		xMin:      xMin,
		xMax:      xMax,
		yMin:      yMin,
		yMax:      yMax,
		toPlot:    M,
		halfWidth: lw / 2,
	}, nil
}

// point returns the position of a data point, relative to the plot area.
func (c *chart) point(x, y float64) (float64, float64) {
	return c.toPlot.Apply(x, y)
}

func (c *chart) drawCurve(value func(spectrum.Sample) float64, col color.Color) {
	c.raster.Reset(c.area.Dx(), c.area.Dy())

	var px, py float64
	have := false
	for _, s := range c.samples {
		v := value(s)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			have = false
			continue
		}
		x, y := c.point(s.Wavelength, v)
		if have {
			c.segment(px, py, x, y, c.halfWidth)
		}
		px, py = x, y
		have = true
	}

	c.paint(col)
}

// segment adds a line of the given half width from (x0, y0) to (x1, y1) to
// the rasterizer.  The ends are extended by the half width, so that
// consecutive segments join without gaps.
func (c *chart) segment(x0, y0, x1, y1, w float64) {
	vx, vy := x1-x0, y1-y0
	vl := math.Sqrt(vx*vx + vy*vy)
	if vl == 0 {
		return
	}
	ux, uy := vx/vl*w, vy/vl*w
	nx, ny := -uy, ux

	x0, y0 = x0-ux, y0-uy
	x1, y1 = x1+ux, y1+uy

	c.raster.MoveTo(float32(x0+nx), float32(y0+ny))
	c.raster.LineTo(float32(x1+nx), float32(y1+ny))
	c.raster.LineTo(float32(x1-nx), float32(y1-ny))
	c.raster.LineTo(float32(x0-nx), float32(y0-ny))
	c.raster.ClosePath()
}

// paint fills the accumulated path and clears the rasterizer.
func (c *chart) paint(col color.Color) {
	c.raster.Draw(c.img, c.area, image.NewUniform(col), image.Point{})
	c.raster.Reset(c.area.Dx(), c.area.Dy())
}

func (c *chart) drawGrid() {
	c.raster.Reset(c.area.Dx(), c.area.Dy())
	for _, x := range ticks(c.xMin, c.xMax, 10) {
		x0, y0 := c.point(x, c.yMin)
		x1, y1 := c.point(x, c.yMax)
		c.segment(x0, y0, x1, y1, 0.5)
	}
	for _, y := range ticks(c.yMin, c.yMax, 5) {
		x0, y0 := c.point(c.xMin, y)
		x1, y1 := c.point(c.xMax, y)
		c.segment(x0, y0, x1, y1, 0.5)
	}
	c.paint(GridColor)
}

func (c *chart) drawFrame() {
	w := float64(c.area.Dx())
	h := float64(c.area.Dy())
	c.segment(0, 0.5, w, 0.5, 0.5)
	c.segment(w-0.5, 0, w-0.5, h, 0.5)
	c.segment(w, h-0.5, 0, h-0.5, 0.5)
	c.segment(0.5, h, 0.5, 0, 0.5)
	c.paint(FrameColor)
}

// ticks returns the multiples of a round step size between lo and hi.
// About n ticks are returned.
func ticks(lo, hi float64, n int) []float64 {
	step := niceStep((hi - lo) / float64(n))
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	var res []float64
	for k := math.Ceil(lo / step); k*step <= hi*(1+1e-12); k++ {
		res = append(res, k*step)
	}
	return res
}

// niceStep rounds x to 1, 2 or 5 times a power of ten.
func niceStep(x float64) float64 {
	if x <= 0 {
		return 0
	}
	mag := math.Pow(10, math.Floor(math.Log10(x)))
	switch f := x / mag; {
	case f < 1.5:
		return mag
	case f < 3.5:
		return 2 * mag
	case f < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}
