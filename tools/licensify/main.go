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

// Licensify adds the license header to all Go source files below the
// current directory.  With -check, files are only reported, not changed,
// and the exit status is non-zero if any file lacks the header.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/tmm - transfer-matrix optics for thin-film stacks
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

`

func main() {
	check := flag.Bool("check", false, "report files without header, do not modify them")
	flag.Parse()

	missing, err := walk(".", *check)
	if err != nil {
		log.Fatal(err)
	}
	if *check && missing > 0 {
		os.Exit(1)
	}
}

// walk visits all Go files below root.  It returns the number of files
// without the license header.
func walk(root string, check bool) (int, error) {
	missing := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// The reference material is kept unchanged.
			if path != root && strings.HasPrefix(d.Name(), "_") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fixed, changed := addHeader(body)
		if !changed {
			return nil
		}
		if fixed == nil {
			fmt.Println("ATTENTION " + path)
			return nil
		}

		missing++
		if check {
			fmt.Println("missing header: " + path)
			return nil
		}
		fmt.Println("updating " + path)
		return os.WriteFile(path, fixed, 0o644)
	})
	return missing, err
}

// addHeader returns body with the license header prepended.  The second
// return value is false if the header is already present.  If the file
// carries a different copyright notice, the returned body is nil.
func addHeader(body []byte) ([]byte, bool) {
	if bytes.HasPrefix(body, []byte(header)) {
		return body, false
	}
	firstLine, _, _ := bytes.Cut(body, []byte("\n"))
	if bytes.Contains(firstLine, []byte("Copyright")) || bytes.HasPrefix(firstLine, []byte("// seehuhn.de/")) {
		return nil, true
	}
	res := make([]byte, 0, len(header)+len(body))
	res = append(res, header...)
	res = append(res, body...)
	return res, true
}
