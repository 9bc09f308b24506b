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

import "fmt"

// Strand is the orientation of the genome-B sequence of a block
// relative to genome A.
type Strand byte

// Valid strands.
const (
	Forward Strand = '+'
	Reverse Strand = '-'
)

// A Fragment is one gap-free local alignment segment pairing a
// genome-A sequence run with a genome-B sequence run of equal length.
// Coordinates are 1-based inclusive, as reported by the upstream
// aligner. A Fragment is owned by exactly one Block.
type Fragment struct {
	StartA, EndA int32
	StartB, EndB int32
	SeqA, SeqB   []byte
}

// A Block is a maximal set of alignment fragments reported together
// for one chromosome pair and strand orientation. Its identity is
// (Strand, ChromA, ChromB, Number), with chromosomes given as 1-based
// ordinals into the two chromosome name indexes.
//
// Score is the cumulative alignment score, frozen at the first
// genome-A fragment header seen for the block and never overwritten.
// The remaining fields are filled in by the mapper phases.
type Block struct {
	Strand Strand
	ChromA int32
	ChromB int32
	Number int32
	Score  float64

	Fragments []*Fragment

	// Candidates are all positions produced by the column walk,
	// in discovery order; Accepted is the subset whose genome-B
	// coordinate this block owns.
	Candidates []*AlignedPosition
	Accepted   []*AlignedPosition

	// Overlaps counts candidates lost to another block's
	// ownership claim. TrulyUnique and Ambiguous partition
	// Accepted by source-coordinate multiplicity; both are set
	// during filtering.
	Overlaps    int32
	TrulyUnique int32
	Ambiguous   int32
}

// ID returns the composite identity string of the block. Forward
// strand blocks compare lexicographically before reverse strand
// blocks that otherwise share the same identity.
func (b *Block) ID() string {
	return fmt.Sprintf("%c:%v:%v:%v", b.Strand, b.ChromA, b.ChromB, b.Number)
}

// An AlignedPosition is one base-to-base correspondence between a
// genome-A and a genome-B coordinate, derived from one column of a
// Fragment. Positions are 0-based. It is immutable once created.
type AlignedPosition struct {
	ChromA int32
	PosA   int32
	BaseA  byte
	Strand Strand
	ChromB int32
	PosB   int32
	BaseB  byte
	Block  *Block
	SNP    bool
}
