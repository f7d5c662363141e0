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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"seehuhn.de/go/tmm"
)

func newTransferCommand(log *logrus.Logger) *cobra.Command {
	var (
		stack      stackFlags
		wavelength float64
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Compute reflectance and transmittance at one wavelength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := stack.load(log)
			if err != nil {
				return err
			}
			if err := checkStack(s, wavelength); err != nil {
				return err
			}

			res, ok := s.Transfer(wavelength)
			if !ok {
				return tmm.ErrEmptyStack
			}
			log.WithFields(logrus.Fields{
				"wavelength": wavelength,
				"layers":     s.Len(),
			}).Debug("transfer computed")

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "wavelength          %g nm\n", wavelength)
			fmt.Fprintf(out, "reflectance         %.6f\n", res.Reflectance)
			fmt.Fprintf(out, "transmittance       %.6f\n", res.Transmittance)
			fmt.Fprintf(out, "power transmittance %.6f\n", res.PowerTransmittance)
			return nil
		},
	}
	stack.register(cmd)
	cmd.Flags().Float64VarP(&wavelength, "wavelength", "w", 500, "Vacuum wavelength in nm")

	return cmd
}
