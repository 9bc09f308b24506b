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

package chrom

import (
	"bufio"

	"github.com/eead-csic-compbio/mapcoords/internal"
	"github.com/eead-csic-compbio/mapcoords/utils"
)

// An Index maps the 1-based chromosome ordinals of one assembly,
// assigned by file order, onto the real chromosome names. It is
// immutable after construction.
type Index struct {
	names []string
}

// NewIndex builds an Index from chromosome names already in file
// order.
func NewIndex(names ...string) *Index {
	return &Index{names: names}
}

// Len returns the number of chromosomes in the index.
func (index *Index) Len() int {
	return len(index.names)
}

// Name returns the chromosome name for a 1-based ordinal. An ordinal
// outside the index is a FormatError, since it can only come from an
// alignment stream that does not match the sequence file.
func (index *Index) Name(ordinal int32) string {
	if ordinal < 1 || int(ordinal) > len(index.names) {
		internal.FormatErrorf("chromosome ordinal %v out of range 1-%v", ordinal, len(index.names))
	}
	return index.names[ordinal-1]
}

// nameFromHeader extracts the first printable-character run after the
// record marker of a sequence header line.
func nameFromHeader(b []byte) string {
	i := 1
	for ; i < len(b); i++ {
		if c := b[i]; c >= '!' && c <= '~' {
			break
		}
	}
	if i == len(b) {
		return ""
	}
	j := i + 1
	for ; j < len(b); j++ {
		if c := b[j]; c < '!' || c > '~' {
			break
		}
	}
	return string(b[i:j])
}

// ReadNames builds an Index from the header lines of a FASTA-like
// sequence file, optionally gzip-compressed. Sequence data is skipped;
// only the first token of each header is recorded.
func ReadNames(filename string) *Index {
	file := internal.FileOpen(filename)
	defer internal.Close(file)

	scanner := bufio.NewScanner(utils.HandleGzip(bufio.NewReader(file)))

	index := new(Index)
	for scanner.Scan() {
		b := scanner.Bytes()
		if len(b) > 0 && b[0] == '>' {
			name := nameFromHeader(b)
			if name == "" {
				internal.FormatErrorf("empty sequence header in %v", filename)
			}
			index.names = append(index.names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		internal.IOErrorf("read %v: %v", filename, err)
	}

	if len(index.names) == 0 {
		internal.FormatErrorf("no sequence headers in %v", filename)
	}
	return index
}
