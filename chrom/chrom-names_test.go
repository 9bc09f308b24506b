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
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/eead-csic-compbio/mapcoords/internal"
)

const testFasta = `>chr1 Oryza sativa chromosome 1
ACGTACGT
acgtn
>chr2
GGGG

>scaffold_12 unplaced
TTTT
`

func writeTestFile(t *testing.T, name string, contents []byte) string {
	path := filepath.Join(t.TempDir(), name)
	if err := ioutil.WriteFile(path, contents, 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadNames(t *testing.T) {
	index := ReadNames(writeTestFile(t, "genome.fa", []byte(testFasta)))
	if index.Len() != 3 {
		t.Fatal("chromosome count failed")
	}
	if index.Name(1) != "chr1" || index.Name(2) != "chr2" || index.Name(3) != "scaffold_12" {
		t.Error("ordinal to name mapping failed")
	}
}

func TestReadNamesGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "genome.fa.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(testFasta)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	index := ReadNames(path)
	if index.Len() != 3 || index.Name(3) != "scaffold_12" {
		t.Error("gzip chromosome names failed")
	}
}

func TestNameOutOfRange(t *testing.T) {
	index := NewIndex("chr1", "chr2")
	for _, ordinal := range []int32{0, -1, 3} {
		func() {
			defer func() {
				if _, ok := recover().(*internal.FormatError); !ok {
					t.Error("ordinal", ordinal, "did not raise a format error")
				}
			}()
			index.Name(ordinal)
		}()
	}
}

func TestReadNamesNoHeaders(t *testing.T) {
	defer func() {
		if _, ok := recover().(*internal.FormatError); !ok {
			t.Error("headerless file did not raise a format error")
		}
	}()
	ReadNames(writeTestFile(t, "empty.fa", []byte("ACGT\nACGT\n")))
}

func TestReadNamesEmptyHeader(t *testing.T) {
	for _, contents := range []string{">\nACGT\n>chr2\nGGGG\n", ">   \nACGT\n"} {
		func() {
			defer func() {
				if _, ok := recover().(*internal.FormatError); !ok {
					t.Error("empty header did not raise a format error")
				}
			}()
			ReadNames(writeTestFile(t, "genome.fa", []byte(contents)))
		}()
	}
}

func TestReadNamesMissingFile(t *testing.T) {
	defer func() {
		if _, ok := recover().(*internal.IOError); !ok {
			t.Error("missing file did not raise an IO error")
		}
	}()
	ReadNames(filepath.Join(t.TempDir(), "does-not-exist.fa"))
}
