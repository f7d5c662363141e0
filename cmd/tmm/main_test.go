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
	"bytes"
	"context"
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/tmm"
	"seehuhn.de/go/tmm/spectrum"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(newLogger(io.Discard))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestTransfer(t *testing.T) {
	out, err := run(t, "transfer", "--stack", "air,1.52:400,air", "-w", "500")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"reflectance         0.150711", "power transmittance 0.849289"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestTransferInvalid(t *testing.T) {
	_, err := run(t, "transfer", "--stack", "air,1.52:400,air", "-w", "0")
	if !errors.Is(err, &tmm.DomainError{}) {
		t.Errorf("got %v, want DomainError", err)
	}

	if _, err := run(t, "transfer"); err == nil {
		t.Error("missing stack accepted")
	}
	if _, err := run(t, "transfer", "--stack", "air", "--file", "x.yaml"); err == nil {
		t.Error("conflicting flags accepted")
	}
}

func TestSweepCSV(t *testing.T) {
	out, err := run(t, "sweep", "--stack", "air,1.52:400,air", "--from", "500", "--to", "502", "--step", "1")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[1], "500,0.150710592,") {
		t.Errorf("unexpected first row %q", lines[1])
	}
}

func TestSweepFile(t *testing.T) {
	dir := t.TempDir()
	stackFile := filepath.Join(dir, "stack.yaml")
	body := "layers:\n  - material: air\n  - index: 1.52\n    thickness: 400\n  - material: air\n"
	if err := os.WriteFile(stackFile, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	outFile := filepath.Join(dir, "out.csv")

	_, err := run(t, "sweep", "-f", stackFile, "--from", "500", "--to", "500", "-o", outFile)
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	want := "wavelength,reflectance,transmittance,power_transmittance\n"
	if !strings.HasPrefix(string(data), want) {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestWriteSamplesFile(t *testing.T) {
	samples := []spectrum.Sample{
		{Wavelength: 500, Result: tmm.Result{Reflectance: 0.25, Transmittance: 0.046875, PowerTransmittance: 0.75}},
	}
	dir := t.TempDir()

	fname := filepath.Join(dir, "out.csv")
	if err := writeSamplesFile(fname, samples); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	want := "wavelength,reflectance,transmittance,power_transmittance\n500,0.25,0.046875,0.75\n"
	if d := cmp.Diff(want, string(data)); d != "" {
		t.Error(d)
	}

	if err := writeSamplesFile(filepath.Join(dir, "missing", "out.csv"), samples); err == nil {
		t.Error("writing into a missing directory succeeded")
	}
	if _, err := os.Stat("/dev/full"); err == nil {
		if err := writeSamplesFile("/dev/full", samples); err == nil {
			t.Error("writing to a full device succeeded")
		}
	}
}

func TestPlot(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "plot.png")
	_, err := run(t, "plot", "--stack", "glass:1000,sio2:100,ag:30,sio2:100,tio2:50",
		"--from", "400", "--to", "1700", "--step", "10",
		"--width", "640", "--height", "360", "-o", outFile)
	if err != nil {
		t.Fatal(err)
	}

	fd, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	cfg, err := png.DecodeConfig(fd)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([2]int{640, 360}, [2]int{cfg.Width, cfg.Height}); d != "" {
		t.Error(d)
	}
}

func TestMaterials(t *testing.T) {
	out, err := run(t, "materials")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"air", "bk7", "glass", "silver", "sio2", "tio2"} {
		if !strings.Contains(out, name) {
			t.Errorf("%q missing from output:\n%s", name, out)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("buffer reported as terminal")
	}
}
