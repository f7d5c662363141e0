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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"seehuhn.de/go/tmm/material"
)

func newMaterialsCommand() *cobra.Command {
	var wavelength float64

	cmd := &cobra.Command{
		Use:   "materials",
		Short: "List the built-in materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintf(tw, "NAME\tn(%g nm)\tk(%g nm)\tDESCRIPTION\n", wavelength, wavelength)
			for _, name := range material.Names() {
				info, _ := material.Lookup(name)
				n := info.Index(wavelength)
				fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%s\n", info.Name, real(n), imag(n), info.Description)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64VarP(&wavelength, "wavelength", "w", 550, "Wavelength at which to show the index, in nm")

	return cmd
}
