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
	"github.com/bits-and-blooms/bitset"

	"github.com/eead-csic-compbio/mapcoords/align"
	"github.com/eead-csic-compbio/mapcoords/chrom"
	"github.com/eead-csic-compbio/mapcoords/internal"
)

// Default acceptance thresholds for the block filter.
const (
	DefaultMaxOverlapRatio   = 0.25
	DefaultMaxAmbiguousRatio = 0.05
)

// Reverse-strand coordinate offsets, subtracted from a fragment's
// genome-A start when walking reverse strand blocks. The legacy offset
// compensates for an extra off-by-one in the reverse-strand start
// coordinates reported by one upstream aligner; the corrected offset
// performs only the 1-based to 0-based conversion.
const (
	LegacyReverseOffset    int32 = 2
	CorrectedReverseOffset int32 = 1
)

// ParseReverseOffset maps a reverse-offset mode name onto the
// corresponding coordinate offset. Unknown modes are a ConfigError.
func ParseReverseOffset(mode string) int32 {
	switch mode {
	case "legacy":
		return LegacyReverseOffset
	case "corrected":
		return CorrectedReverseOffset
	}
	internal.ConfigErrorf("invalid reverse-offset mode %v, expected legacy or corrected", mode)
	return 0
}

type targetKey struct {
	chrom, pos int32
}

// A Run owns all cross-block mutable state of one mapping run: the
// write-once ownership of genome-B target coordinates and the
// multiplicity of genome-A source coordinates. Its lifetime ends with
// the run; it is never shared between runs.
type Run struct {
	ChromsA, ChromsB *chrom.Index

	ReverseOffset     int32
	MaxOverlapRatio   float64
	MaxAmbiguousRatio float64

	owners map[targetKey]*align.Block

	// The filter only ever asks whether a source coordinate
	// occurred exactly once, so a pair of bitsets per chromosome
	// saturates the occurrence count at two.
	seen  map[int32]*bitset.BitSet
	multi map[int32]*bitset.BitSet
}

// NewRun validates the configuration and allocates the state for one
// mapping run.
func NewRun(chromsA, chromsB *chrom.Index, reverseOffset int32, maxOverlapRatio, maxAmbiguousRatio float64) *Run {
	if maxOverlapRatio < 0 || maxOverlapRatio > 1 {
		internal.ConfigErrorf("max block overlap ratio %v out of range 0-1", maxOverlapRatio)
	}
	if maxAmbiguousRatio < 0 || maxAmbiguousRatio > 1 {
		internal.ConfigErrorf("max multi-position ratio %v out of range 0-1", maxAmbiguousRatio)
	}
	if reverseOffset != LegacyReverseOffset && reverseOffset != CorrectedReverseOffset {
		internal.ConfigErrorf("invalid reverse-strand offset %v, expected %v or %v", reverseOffset, CorrectedReverseOffset, LegacyReverseOffset)
	}
	return &Run{
		ChromsA:           chromsA,
		ChromsB:           chromsB,
		ReverseOffset:     reverseOffset,
		MaxOverlapRatio:   maxOverlapRatio,
		MaxAmbiguousRatio: maxAmbiguousRatio,
		owners:            make(map[targetKey]*align.Block),
		seen:              make(map[int32]*bitset.BitSet),
		multi:             make(map[int32]*bitset.BitSet),
	}
}

// markSource records one more occurrence of a genome-A source
// coordinate, independently of the ownership outcome of the position.
func (run *Run) markSource(chrom, pos int32) {
	seen := run.seen[chrom]
	if seen == nil {
		seen = bitset.New(0)
		run.seen[chrom] = seen
	}
	if !seen.Test(uint(pos)) {
		seen.Set(uint(pos))
		return
	}
	multi := run.multi[chrom]
	if multi == nil {
		multi = bitset.New(0)
		run.multi[chrom] = multi
	}
	multi.Set(uint(pos))
}

// multiSource reports whether a genome-A source coordinate occurred
// more than once across the whole run.
func (run *Run) multiSource(chrom, pos int32) bool {
	if multi := run.multi[chrom]; multi != nil {
		return multi.Test(uint(pos))
	}
	return false
}

// claim resolves ownership of a genome-B target coordinate. It returns
// nil if the coordinate was unclaimed and is now owned by b, or the
// previous owner otherwise. Ownership is write-once per coordinate.
func (run *Run) claim(b *align.Block, chrom, pos int32) *align.Block {
	key := targetKey{chrom: chrom, pos: pos}
	if owner, ok := run.owners[key]; ok {
		return owner
	}
	run.owners[key] = b
	return nil
}
