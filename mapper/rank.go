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

package mapper

import (
	"bufio"
	"fmt"
	"sort"

	psort "github.com/exascience/pargo/sort"

	"github.com/eead-csic-compbio/mapcoords/align"
)

// rankLess orders blocks by cumulative score descending, ties broken
// ascending on the composite identity: strand with forward before
// reverse, then genome-A ordinal, genome-B ordinal, block number.
func rankLess(a, b *align.Block) bool {
	switch {
	case a.Score != b.Score:
		return a.Score > b.Score
	case a.Strand != b.Strand:
		return a.Strand == align.Forward
	case a.ChromA != b.ChromA:
		return a.ChromA < b.ChromA
	case a.ChromB != b.ChromB:
		return a.ChromB < b.ChromB
	default:
		return a.Number < b.Number
	}
}

type blockSorter []*align.Block

func (s blockSorter) SequentialSort(i, j int) {
	sub := s[i:j]
	sort.SliceStable(sub, func(a, b int) bool {
		return rankLess(sub[a], sub[b])
	})
}

func (s blockSorter) NewTemp() psort.StableSorter {
	return blockSorter(make([]*align.Block, len(s)))
}

func (s blockSorter) Len() int {
	return len(s)
}

func (s blockSorter) Less(i, j int) bool {
	return rankLess(s[i], s[j])
}

func (s blockSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(blockSorter)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// Rank sorts blocks into the one deterministic order that drives both
// ownership resolution and filtering, using a parallel stable sort.
func Rank(blocks []*align.Block) {
	psort.StableSort(blockSorter(blocks))
}

// TableHeader is the comment line preceding the position table.
const TableHeader = "#chrA\tstartA\tendA\tbaseA\tstrand\tchrB\tstartB\tendB\tbaseB\tblock\tSNP"

// Filter applies the acceptance thresholds to the blocks, which must
// be in rank order and resolved, and emits the position table to out
// and one diagnostic row per accepted block to diag.
//
// A block is dropped without output when it owns no positions, when
// its overlap ratio strictly exceeds MaxOverlapRatio, or when its
// ambiguity ratio reaches MaxAmbiguousRatio. An accepted block emits
// exactly its truly unique positions, in discovery order. Filter
// returns the number of accepted blocks and emitted positions, which
// are also written to diag as a final summary.
func Filter(run *Run, blocks []*align.Block, out, diag *bufio.Writer) (acceptedBlocks, mappedPositions int) {
	fmt.Fprintln(out, TableHeader)
	for _, b := range blocks {
		n := len(b.Accepted)
		if n == 0 {
			continue
		}
		overlapRatio := float64(b.Overlaps) / float64(n)
		if overlapRatio > run.MaxOverlapRatio {
			continue
		}
		var trulyUnique, ambiguous int32
		for _, pos := range b.Accepted {
			if run.multiSource(pos.ChromA, pos.PosA) {
				ambiguous++
			} else {
				trulyUnique++
			}
		}
		b.TrulyUnique, b.Ambiguous = trulyUnique, ambiguous
		if float64(ambiguous)/float64(n) >= run.MaxAmbiguousRatio {
			continue
		}
		for _, pos := range b.Accepted {
			if run.multiSource(pos.ChromA, pos.PosA) {
				continue
			}
			snp := "."
			if pos.SNP {
				snp = "SNP"
			}
			fmt.Fprintf(out, "%v\t%v\t%v\t%c\t%c\t%v\t%v\t%v\t%c\t%v\t%v\n",
				run.ChromsA.Name(pos.ChromA), pos.PosA, pos.PosA+1, pos.BaseA, pos.Strand,
				run.ChromsB.Name(pos.ChromB), pos.PosB, pos.PosB+1, pos.BaseB, b.Number, snp)
		}
		fmt.Fprintf(diag, "%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
			b.ID(), b.Score, len(b.Fragments), trulyUnique, ambiguous, b.Overlaps,
			float64(trulyUnique)/float64(n), overlapRatio)
		acceptedBlocks++
		mappedPositions += int(trulyUnique)
	}
	fmt.Fprintf(diag, "# accepted blocks: %v, mapped positions: %v\n", acceptedBlocks, mappedPositions)
	return acceptedBlocks, mappedPositions
}
