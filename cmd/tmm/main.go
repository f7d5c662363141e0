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

// Command tmm computes reflectance and transmittance of thin-film stacks.
//
// Usage:
//
//	tmm transfer --stack air,1.52:400,air -w 500
//	tmm sweep --stack air,1.52:400,air --from 400 --to 1700 --step 1
//	tmm plot --file bandpass.yaml -o bandpass.png
//	tmm materials
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/tmm"
	"seehuhn.de/go/tmm/internal/layerspec"
)

func main() {
	log := newLogger(os.Stderr)
	if err := newRootCommand(log).ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
	return log
}

func newRootCommand(log *logrus.Logger) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "tmm",
		Short: "Optical response of thin-film stacks",
		Long: `tmm computes reflectance and transmittance of stacks of planar thin-film
layers at normal incidence, using the transfer-matrix method.

Stacks are given inline, incident medium first, as material[:thickness]
entries separated by commas (for example "air,1.52:400,air"), or in a YAML
file.  Thicknesses are in nanometers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug output")

	cmd.AddCommand(newTransferCommand(log))
	cmd.AddCommand(newSweepCommand(log))
	cmd.AddCommand(newPlotCommand(log))
	cmd.AddCommand(newMaterialsCommand())

	return cmd
}

// stackFlags holds the flags selecting a stack.
type stackFlags struct {
	inline string
	file   string
}

func (f *stackFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.inline, "stack", "s", "", "Stack in inline form, e.g. air,1.52:400,air")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "YAML file describing the stack")
	cmd.MarkFlagsMutuallyExclusive("stack", "file")
	cmd.MarkFlagsOneRequired("stack", "file")
}

// load returns the selected stack, together with a name for display.
func (f *stackFlags) load(log *logrus.Logger) (*tmm.Stack, string, error) {
	if f.file != "" {
		desc, err := layerspec.Load(f.file)
		if err != nil {
			return nil, "", err
		}
		s, err := desc.Stack()
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", f.file, err)
		}
		name := desc.Name
		if name == "" {
			name = f.file
		}
		log.WithFields(logrus.Fields{"file": f.file, "layers": s.Len()}).Debug("stack loaded")
		return s, name, nil
	}

	s, err := layerspec.Parse(f.inline)
	if err != nil {
		return nil, "", err
	}
	log.WithFields(logrus.Fields{"stack": f.inline, "layers": s.Len()}).Debug("stack parsed")
	return s, f.inline, nil
}

// checkStack reports domain problems of the stack at the given
// wavelengths.
func checkStack(s *tmm.Stack, wavelengths ...float64) error {
	for _, wl := range wavelengths {
		if err := s.Check(wl); err != nil {
			if errors.Is(err, tmm.ErrEmptyStack) {
				return err
			}
			return fmt.Errorf("invalid stack: %w", err)
		}
	}
	return nil
}

// isTerminal reports whether w is connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
