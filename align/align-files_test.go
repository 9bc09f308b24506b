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

package align

import (
	"bufio"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/eead-csic-compbio/mapcoords/internal"
)

func parseString(s string) []*Block {
	return parseBlocks("test", bufio.NewScanner(strings.NewReader(s)))
}

func expectFormatError(t *testing.T, name string, f func()) {
	defer func() {
		if _, ok := recover().(*internal.FormatError); !ok {
			t.Error(name, "did not raise a format error")
		}
	}()
	f()
}

const twoBlocks = `block + 1 2 17
seq1 10 14 2500
ACG
TA
seq2 100 104 2500
ACC
TA

block - 2 1 18
seq1 9 13 1800
AAAA
seq2 50 53 1800
AAAA
`

func TestParseBlocks(t *testing.T) {
	blocks := parseString(twoBlocks)
	if len(blocks) != 2 {
		t.Fatal("block count failed")
	}
	b := blocks[0]
	if b.Strand != Forward || b.ChromA != 1 || b.ChromB != 2 || b.Number != 17 {
		t.Error("block identity failed")
	}
	if b.Score != 2500 {
		t.Error("block score failed")
	}
	if b.ID() != "+:1:2:17" {
		t.Error("block id failed")
	}
	if len(b.Fragments) != 1 {
		t.Fatal("fragment count failed")
	}
	frag := b.Fragments[0]
	if frag.StartA != 10 || frag.EndA != 14 || string(frag.SeqA) != "ACGTA" {
		t.Error("genome-A fragment half failed")
	}
	if frag.StartB != 100 || frag.EndB != 104 || string(frag.SeqB) != "ACCTA" {
		t.Error("genome-B fragment half failed")
	}
	if blocks[1].Strand != Reverse || blocks[1].Score != 1800 {
		t.Error("reverse block failed")
	}
	if len(blocks[1].Fragments) != 1 || string(blocks[1].Fragments[0].SeqA) != "AAAA" {
		t.Error("reverse block fragment failed")
	}
}

func TestParseBlocksMultipleFragments(t *testing.T) {
	blocks := parseString(`block + 1 1 1
seq1 10 12 900
ACG
seq2 20 22 900
ACG
seq1 30 31 950
TT
seq2 40 41 950
TT
`)
	if len(blocks) != 1 || len(blocks[0].Fragments) != 2 {
		t.Fatal("fragment accumulation failed")
	}
	if blocks[0].Score != 900 {
		t.Error("cumulative score was not frozen at the first fragment header")
	}
	if blocks[0].Fragments[1].StartA != 30 {
		t.Error("second fragment failed")
	}
}

func TestParseBlocksCaseAndMask(t *testing.T) {
	blocks := parseString(`block + 1 1 1
seq1 1 5 10
acgtN
seq2 1 5 10
ACGT-
`)
	if string(blocks[0].Fragments[0].SeqA) != "acgtN" {
		t.Error("sequence case was not preserved")
	}
	if string(blocks[0].Fragments[0].SeqB) != "ACGT-" {
		t.Error("gap characters failed")
	}
}

func TestParseBlocksFormatErrors(t *testing.T) {
	expectFormatError(t, "line before first block", func() {
		parseString("seq1 1 2 3\n")
	})
	expectFormatError(t, "sequence before first block", func() {
		parseString("ACGT\n")
	})
	expectFormatError(t, "genome-B header without pending genome-A", func() {
		parseString("block + 1 1 1\nseq2 1 4 10\n")
	})
	expectFormatError(t, "sequence outside fragment", func() {
		parseString("block + 1 1 1\nACGT\n")
	})
	expectFormatError(t, "unrecognized line", func() {
		parseString("block + 1 1 1\nseq1 1 4 10\nACGU\n")
	})
	expectFormatError(t, "malformed block line", func() {
		parseString("block * 1 1 1\n")
	})
	expectFormatError(t, "unterminated fragment", func() {
		parseString("block + 1 1 1\nseq1 1 4 10\nACGT\nseq2 1 4 10\nAC\n")
	})
	expectFormatError(t, "short genome-B before next header", func() {
		parseString("block + 1 1 1\nseq1 1 4 10\nACGT\nseq2 1 4 10\nAC\nseq1 5 8 10\n")
	})
	expectFormatError(t, "non-numeric field", func() {
		parseString("block + 1 1 one\n")
	})
}

func TestReadBlocks(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "blocks.aln")
	if err := ioutil.WriteFile(plain, []byte(twoBlocks), 0666); err != nil {
		t.Fatal(err)
	}
	if blocks := ReadBlocks(plain); len(blocks) != 2 {
		t.Error("ReadBlocks plain failed")
	}

	compressed := filepath.Join(dir, "blocks.aln.gz")
	f, err := os.Create(compressed)
	if err != nil {
		t.Fatal(err)
	}
	w := gzip.NewWriter(f)
	if _, err := w.Write([]byte(twoBlocks)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if blocks := ReadBlocks(compressed); len(blocks) != 2 {
		t.Error("ReadBlocks gzip failed")
	}
}

func TestReadBlocksMissingFile(t *testing.T) {
	defer func() {
		if _, ok := recover().(*internal.IOError); !ok {
			t.Error("missing file did not raise an IO error")
		}
	}()
	ReadBlocks(filepath.Join(t.TempDir(), "does-not-exist.aln"))
}
