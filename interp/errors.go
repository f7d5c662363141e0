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

package interp

import "fmt"

// InvalidTableError is returned when the samples passed to [New] do not
// describe a function.
type InvalidTableError struct {
	Field   string
	Message string
}

func (e *InvalidTableError) Error() string {
	return fmt.Sprintf("interp: invalid %s: %s", e.Field, e.Message)
}

func (e *InvalidTableError) Is(target error) bool {
	_, ok := target.(*InvalidTableError)
	return ok
}

func newInvalidTableError(field, format string, args ...any) *InvalidTableError {
	return &InvalidTableError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
