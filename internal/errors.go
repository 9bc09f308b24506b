// mapcoords: maps equivalent genomic coordinates between two related
// genome assemblies from whole-genome alignment blocks.
// Copyright (c) 2021-2023 EEAD-CSIC Computational & Structural Biology Group.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or (at
// your option) any later version.

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// General Public License for more details.

// You should have received a copy of the GNU General Public License
// along with this program. If not, see <http://www.gnu.org/licenses/>.

package internal

import "fmt"

// mapcoords is an offline batch converter: every I/O, format, or
// configuration problem aborts the whole run. Fatal conditions are
// raised as panics carrying one of the error types below, and are
// recovered into an ordinary error at the command boundary with
// CatchErrors.

// An IOError reports a missing or unreadable/unwritable file.
type IOError struct {
	msg string
}

func (err *IOError) Error() string {
	return err.msg
}

// IOErrorf panics with a new IOError.
func IOErrorf(format string, args ...interface{}) {
	panic(&IOError{msg: fmt.Sprintf(format, args...)})
}

// A FormatError reports input that violates the expected line grammar
// or a sequence-pairing invariant.
type FormatError struct {
	msg string
}

func (err *FormatError) Error() string {
	return err.msg
}

// FormatErrorf panics with a new FormatError.
func FormatErrorf(format string, args ...interface{}) {
	panic(&FormatError{msg: fmt.Sprintf(format, args...)})
}

// A ConfigError reports an out-of-range or malformed configuration
// parameter.
type ConfigError struct {
	msg string
}

func (err *ConfigError) Error() string {
	return err.msg
}

// ConfigErrorf panics with a new ConfigError.
func ConfigErrorf(format string, args ...interface{}) {
	panic(&ConfigError{msg: fmt.Sprintf(format, args...)})
}

// CatchErrors recovers a panic raised by IOErrorf, FormatErrorf, or
// ConfigErrorf into *err. All other panics propagate unchanged. Use as
// a deferred call in command entry points.
func CatchErrors(err *error) {
	switch x := recover().(type) {
	case nil:
	case *IOError:
		*err = x
	case *FormatError:
		*err = x
	case *ConfigError:
		*err = x
	default:
		panic(x)
	}
}
