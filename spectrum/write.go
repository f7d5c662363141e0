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

package spectrum

import (
	"encoding/csv"
	"fmt"
	"io"
	"text/tabwriter"

	"seehuhn.de/go/tmm/internal/float"
)

var header = []string{"wavelength", "reflectance", "transmittance", "power_transmittance"}

// WriteCSV writes the samples as comma-separated values, with a header line.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, s := range samples {
		err := cw.Write([]string{
			float.Format(s.Wavelength, 6),
			float.Format(s.Reflectance, 9),
			float.Format(s.Transmittance, 9),
			float.Format(s.PowerTransmittance, 9),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes the samples as an aligned, human readable table.
func WriteTable(w io.Writer, samples []Sample) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', tabwriter.AlignRight)
	_, err := fmt.Fprintln(tw, "λ/nm\tR\tT\tT(power)\t")
	if err != nil {
		return err
	}
	for _, s := range samples {
		_, err := fmt.Fprintf(tw, "%s\t%.4f\t%.6f\t%.4f\t\n",
			float.Format(s.Wavelength, 3),
			s.Reflectance, s.Transmittance, s.PowerTransmittance)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}
