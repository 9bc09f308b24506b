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
	"strings"

	"github.com/eead-csic-compbio/mapcoords/internal"
	"github.com/eead-csic-compbio/mapcoords/utils"
)

// The block stream is line-oriented, whitespace-tokenized:
//
//	block <+|-> <chrA-ordinal> <chrB-ordinal> <block-number>
//	seq1 <start> <end> <cumulative-score>
//	seq2 <start> <end> <cumulative-score>
//	<sequence over [ACGTNXacgtnx-]>
//
// A seq1 header opens the genome-A half of a fragment, a seq2 header
// the genome-B half; the fragment closes when the genome-B sequence
// has grown to the length of the pending genome-A sequence. Blank
// lines are skipped; anything else is a format error.

type lineClass int

const (
	blankLine lineClass = iota
	blockLine
	headerALine
	headerBLine
	seqLine
	otherLine
)

func isSequence(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'C', 'G', 'T', 'N', 'X',
			'a', 'c', 'g', 't', 'n', 'x', '-':
		default:
			return false
		}
	}
	return true
}

func classify(fields []string) lineClass {
	if len(fields) == 0 {
		return blankLine
	}
	switch fields[0] {
	case "block":
		if len(fields) == 5 && (fields[1] == "+" || fields[1] == "-") {
			return blockLine
		}
	case "seq1":
		if len(fields) == 4 {
			return headerALine
		}
	case "seq2":
		if len(fields) == 4 {
			return headerBLine
		}
	default:
		if len(fields) == 1 && isSequence(fields[0]) {
			return seqLine
		}
	}
	return otherLine
}

// parser holds the currently open block and the pending fragment
// halves while walking the stream line by line.
type parser struct {
	filename string
	line     int

	blocks   []*Block
	current  *Block
	scoreSet bool

	startA, endA int32
	seqA         []byte
	haveA        bool
	startB, endB int32
	seqB         []byte
	haveB        bool
}

func (p *parser) formatError(format string, args ...interface{}) {
	args = append([]interface{}{p.filename, p.line}, args...)
	internal.FormatErrorf("%v line %v: "+format, args...)
}

func (p *parser) resetPending() {
	p.haveA, p.haveB = false, false
	p.seqA, p.seqB = nil, nil
}

func (p *parser) openBlock(fields []string) {
	p.current = &Block{
		Strand: Strand(fields[1][0]),
		ChromA: int32(internal.ParseInt(fields[2], 10, 32)),
		ChromB: int32(internal.ParseInt(fields[3], 10, 32)),
		Number: int32(internal.ParseInt(fields[4], 10, 32)),
	}
	p.blocks = append(p.blocks, p.current)
	p.scoreSet = false
	p.resetPending()
}

func (p *parser) headerA(fields []string) {
	if p.haveB {
		p.formatError("genome-B sequence shorter than genome-A sequence")
	}
	p.startA = int32(internal.ParseInt(fields[1], 10, 32))
	p.endA = int32(internal.ParseInt(fields[2], 10, 32))
	score := internal.ParseFloat(fields[3], 64)
	if !p.scoreSet {
		p.current.Score = score
		p.scoreSet = true
	}
	p.seqA = nil
	p.haveA = true
}

func (p *parser) headerB(fields []string) {
	if p.haveB {
		p.formatError("genome-B sequence shorter than genome-A sequence")
	}
	if !p.haveA {
		p.formatError("genome-B fragment header without a pending genome-A fragment")
	}
	p.startB = int32(internal.ParseInt(fields[1], 10, 32))
	p.endB = int32(internal.ParseInt(fields[2], 10, 32))
	internal.ParseFloat(fields[3], 64)
	p.seqB = nil
	p.haveB = true
}

func (p *parser) closeFragment() {
	p.current.Fragments = append(p.current.Fragments, &Fragment{
		StartA: p.startA, EndA: p.endA, SeqA: p.seqA,
		StartB: p.startB, EndB: p.endB, SeqB: p.seqB,
	})
	p.resetPending()
}

func (p *parser) sequence(s string) {
	switch {
	case p.haveB:
		p.seqB = append(p.seqB, s...)
		if len(p.seqB) >= len(p.seqA) {
			p.closeFragment()
		}
	case p.haveA:
		p.seqA = append(p.seqA, s...)
	default:
		p.formatError("sequence line outside any fragment")
	}
}

func (p *parser) parseLine(line string) {
	fields := strings.Fields(line)
	class := classify(fields)
	if class == blankLine {
		return
	}
	if class == otherLine {
		p.formatError("unrecognized line %v", line)
	}
	if p.current == nil && class != blockLine {
		p.formatError("line before first block header")
	}
	switch class {
	case blockLine:
		p.openBlock(fields)
	case headerALine:
		p.headerA(fields)
	case headerBLine:
		p.headerB(fields)
	case seqLine:
		p.sequence(fields[0])
	}
}

func (p *parser) finish() {
	if p.haveB {
		p.formatError("unterminated fragment at end of stream")
	}
}

func parseBlocks(filename string, scanner *bufio.Scanner) []*Block {
	// Sequence lines may come unwrapped.
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<26)
	p := parser{filename: filename}
	for scanner.Scan() {
		p.line++
		p.parseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		internal.IOErrorf("read %v: %v", filename, err)
	}
	p.finish()
	return p.blocks
}

// ReadBlocks parses an alignment block stream, optionally
// gzip-compressed, into Block records.
func ReadBlocks(filename string) []*Block {
	file := internal.FileOpen(filename)
	defer internal.Close(file)

	return parseBlocks(filename, bufio.NewScanner(utils.HandleGzip(bufio.NewReader(file))))
}
