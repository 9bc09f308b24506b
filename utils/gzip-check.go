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

package utils

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/eead-csic-compbio/mapcoords/internal"
)

const gzipID1 = 0x1f

// IsGzip determines if the given byte scanner produces a gzip stream.
// It uses ReadByte and UnreadByte to check only the initial byte from
// the input, so the stream is left unconsumed.
func IsGzip(scanner io.ByteScanner) (bool, error) {
	b, err := scanner.ReadByte()
	if err != nil {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	if err := scanner.UnreadByte(); err != nil {
		return false, err
	}
	return b == gzipID1, nil
}

// HandleGzip checks if the given reader produces a gzip stream by
// looking at the initial byte. It then either returns a gzip reader,
// or returns the given reader unchanged. HandleGzip uses ReadByte and
// UnreadByte.
func HandleGzip(buf *bufio.Reader) io.Reader {
	ok, err := IsGzip(buf)
	if err != nil {
		internal.IOErrorf("read: %v", err)
	}
	if !ok {
		return buf
	}
	r, err := gzip.NewReader(buf)
	if err != nil {
		internal.IOErrorf("invalid gzip stream: %v", err)
	}
	return r
}
