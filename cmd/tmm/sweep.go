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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tmm/plot"
	"seehuhn.de/go/tmm/spectrum"
)

// rangeFlags holds the flags selecting a wavelength range.
type rangeFlags struct {
	spectrum.Range
	workers int
}

func (f *rangeFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.From, "from", 400, "First wavelength in nm")
	cmd.Flags().Float64Var(&f.To, "to", 1700, "Last wavelength in nm")
	cmd.Flags().Float64Var(&f.Step, "step", 1, "Wavelength step in nm")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Number of parallel workers (default: number of CPUs)")
}

func runSweep(cmd *cobra.Command, log *logrus.Logger, stack *stackFlags, rng *rangeFlags) ([]spectrum.Sample, string, error) {
	s, name, err := stack.load(log)
	if err != nil {
		return nil, "", err
	}
	if err := rng.Validate(); err != nil {
		return nil, "", err
	}
	if err := checkStack(s, rng.From, rng.To); err != nil {
		return nil, "", err
	}

	start := time.Now()
	samples, err := spectrum.Sweep(cmd.Context(), s, rng.Range, &spectrum.SweepOptions{
		Workers: rng.workers,
	})
	if err != nil {
		return nil, "", err
	}
	log.WithFields(logrus.Fields{
		"samples": len(samples),
		"elapsed": time.Since(start),
	}).Debug("sweep finished")

	return samples, name, nil
}

func newSweepCommand(log *logrus.Logger) *cobra.Command {
	var (
		stack  stackFlags
		rng    rangeFlags
		asCSV  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate reflectance and transmittance over a wavelength range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, _, err := runSweep(cmd, log, &stack, &rng)
			if err != nil {
				return err
			}

			if output == "" {
				return writeSamples(cmd.OutOrStdout(), samples, asCSV)
			}
			err = writeSamplesFile(output, samples)
			if err != nil {
				return err
			}
			log.WithField("file", output).Info("table written")
			return nil
		},
	}
	stack.register(cmd)
	rng.register(cmd)
	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write CSV even when printing to a terminal")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: standard output)")

	return cmd
}

// writeSamples writes an aligned table to a terminal and CSV otherwise.
func writeSamples(w io.Writer, samples []spectrum.Sample, asCSV bool) error {
	if asCSV || !isTerminal(w) {
		return spectrum.WriteCSV(w, samples)
	}
	return spectrum.WriteTable(w, samples)
}

// writeSamplesFile writes samples in CSV format to the named file.
func writeSamplesFile(fname string, samples []spectrum.Sample) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = spectrum.WriteCSV(fd, samples)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}

func newPlotCommand(log *logrus.Logger) *cobra.Command {
	var (
		stack   stackFlags
		rng     rangeFlags
		opt     plot.Options
		output  string
		caption string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot reflectance over a wavelength range as a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			samples, name, err := runSweep(cmd, log, &stack, &rng)
			if err != nil {
				return err
			}

			opt.Caption = caption
			if !cmd.Flags().Changed("caption") {
				opt.Caption = fmt.Sprintf("Reflectance of %s", name)
			}
			img, err := plot.Render(samples, &opt)
			if err != nil {
				return err
			}

			fd, err := os.Create(output)
			if err != nil {
				return err
			}
			err = plot.WritePNG(fd, img)
			if err2 := fd.Close(); err == nil {
				err = err2
			}
			if err != nil {
				return err
			}

			log.WithFields(logrus.Fields{
				"file":   output,
				"width":  img.Bounds().Dx(),
				"height": img.Bounds().Dy(),
			}).Info("plot written")
			return nil
		},
	}
	stack.register(cmd)
	rng.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "reflectance.png", "Output PNG file")
	cmd.Flags().StringVar(&caption, "caption", "", "Chart caption (default: derived from the stack)")
	cmd.Flags().IntVar(&opt.Width, "width", 1280, "Image width in pixels")
	cmd.Flags().IntVar(&opt.Height, "height", 720, "Image height in pixels")
	cmd.Flags().Float64Var(&opt.YMin, "ymin", 0, "Lower end of the vertical axis")
	cmd.Flags().Float64Var(&opt.YMax, "ymax", 1, "Upper end of the vertical axis")
	cmd.Flags().BoolVarP(&opt.ShowTransmittance, "transmittance", "t", false, "Also plot the power transmittance")

	return cmd
}
