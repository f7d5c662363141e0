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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/tmm"
)

// System is an optical system which can be evaluated at a single
// wavelength.  [*tmm.Stack] implements this interface.
type System interface {
	Transfer(wavelength float64) (tmm.Result, bool)
}

// Sample is the response of a system at one wavelength.
type Sample struct {
	Wavelength float64
	tmm.Result
}

// SweepOptions control a call to [Sweep].
// The zero value, or nil, selects the defaults.
type SweepOptions struct {
	// Workers is the number of goroutines evaluating the system.
	// The default is runtime.GOMAXPROCS(0).
	Workers int

	// ChunkSize is the number of consecutive wavelengths evaluated by one
	// task.  The default is 64.
	ChunkSize int
}

// Sweep evaluates the system at all wavelengths of the range.
// The samples are returned in order of increasing wavelength.
//
// If the system has no layers, [tmm.ErrEmptyStack] is returned.
// The system must be safe for concurrent calls to Transfer if more than one
// worker is used.
func Sweep(ctx context.Context, sys System, r Range, opt *SweepOptions) ([]Sample, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if opt == nil {
		opt = &SweepOptions{}
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	chunk := opt.ChunkSize
	if chunk <= 0 {
		chunk = 64
	}

	n := r.Len()
	res := make([]Sample, n)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				wl := r.At(i)
				val, ok := sys.Transfer(wl)
				if !ok {
					return tmm.ErrEmptyStack
				}
				res[i] = Sample{Wavelength: wl, Result: val}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
