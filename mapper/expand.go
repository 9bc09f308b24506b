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
	"github.com/exascience/pargo/parallel"

	"github.com/eead-csic-compbio/mapcoords/align"
	"github.com/eead-csic-compbio/mapcoords/internal"
)

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func expandFragment(run *Run, b *align.Block, frag *align.Fragment) {
	if len(frag.SeqA) != len(frag.SeqB) {
		internal.FormatErrorf("block %v fragment %v-%v/%v-%v: sequence lengths %v and %v differ",
			b.ID(), frag.StartA, frag.EndA, frag.StartB, frag.EndB, len(frag.SeqA), len(frag.SeqB))
	}
	posA := frag.StartA - 1
	stepA := int32(1)
	if b.Strand == align.Reverse {
		posA = frag.StartA - run.ReverseOffset
		stepA = -1
	}
	posB := frag.StartB - 1
	for i := 0; i < len(frag.SeqA); i, posA, posB = i+1, posA+stepA, posB+1 {
		baseA, baseB := frag.SeqA[i], frag.SeqB[i]
		// Soft-masked or gap columns produce nothing.
		if !isUpper(baseA) || !isUpper(baseB) {
			continue
		}
		if posA < 0 {
			internal.FormatErrorf("block %v fragment %v-%v: genome-A coordinate underflow", b.ID(), frag.StartA, frag.EndA)
		}
		b.Candidates = append(b.Candidates, &align.AlignedPosition{
			ChromA: b.ChromA,
			PosA:   posA,
			BaseA:  baseA,
			Strand: b.Strand,
			ChromB: b.ChromB,
			PosB:   posB,
			BaseB:  baseB,
			Block:  b,
			SNP:    baseA != baseB,
		})
	}
}

func expandBlock(run *Run, b *align.Block) {
	for _, frag := range b.Fragments {
		expandFragment(run, b, frag)
	}
}

// Expand walks the aligned columns of every fragment of every block
// and produces the candidate positions, in discovery order per block.
// Candidate generation does not touch the run state, so blocks expand
// in parallel; all shared-state mutation happens in Resolve.
func Expand(run *Run, blocks []*align.Block) {
	parallel.Range(0, len(blocks), 0, func(low, high int) {
		for _, b := range blocks[low:high] {
			expandBlock(run, b)
		}
	})
}

// Resolve counts source-coordinate multiplicity for every candidate
// and applies the first-wins ownership rule over genome-B target
// coordinates. blocks must already be in rank order: contested target
// coordinates go to the higher-scoring block, so this pass runs
// sequentially in that order.
func Resolve(run *Run, blocks []*align.Block) {
	for _, b := range blocks {
		for _, pos := range b.Candidates {
			run.markSource(pos.ChromA, pos.PosA)
			owner := run.claim(b, pos.ChromB, pos.PosB)
			switch owner {
			case nil:
				b.Accepted = append(b.Accepted, pos)
			case b:
				// Re-claim by the same block, drop silently.
			default:
				b.Overlaps++
			}
		}
	}
}
