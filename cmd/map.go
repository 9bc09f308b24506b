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

package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/eead-csic-compbio/mapcoords/align"
	"github.com/eead-csic-compbio/mapcoords/chrom"
	"github.com/eead-csic-compbio/mapcoords/internal"
	"github.com/eead-csic-compbio/mapcoords/mapper"
	"github.com/eead-csic-compbio/mapcoords/utils"
)

// MapHelp is the help string for this command.
const MapHelp = "map parameters:\n" +
	"mapcoords map alignment-file seqs-A seqs-B table-file\n" +
	"[--diagnostics file]\n" +
	"[--max-block-overlap ratio]\n" +
	"[--max-multi-position ratio]\n" +
	"[--reverse-offset legacy|corrected]\n" +
	"[--nr-of-threads number]\n" +
	"[--timed]\n" +
	"[--log-path path]\n" +
	"[--profile-path prefix]\n"

// Map implements the mapcoords map command. The run is one atomic
// batch: parse, expand and resolve, then rank and filter; any failure
// aborts it with a non-zero exit and the primary output must be
// considered unusable.
func Map() (err error) {
	defer internal.CatchErrors(&err)

	var (
		diagnostics      string
		maxBlockOverlap  float64
		maxMultiPosition float64
		reverseOffset    string
		nrOfThreads      int
		timed            bool
		logPath          string
		profilePath      string
	)

	var flags flag.FlagSet
	flags.StringVar(&diagnostics, "diagnostics", "", "write block diagnostics to a file instead of stderr")
	flags.Float64Var(&maxBlockOverlap, "max-block-overlap", mapper.DefaultMaxOverlapRatio, "maximum tolerated ratio of overlapped positions per block")
	flags.Float64Var(&maxMultiPosition, "max-multi-position", mapper.DefaultMaxAmbiguousRatio, "maximum tolerated ratio of ambiguous positions per block")
	flags.StringVar(&reverseOffset, "reverse-offset", "legacy", "reverse-strand coordinate offset mode")
	flags.IntVar(&nrOfThreads, "nr-of-threads", 0, "number of worker threads")
	flags.BoolVar(&timed, "timed", false, "measure the runtime")
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	flags.StringVar(&profilePath, "profile-path", "", "write a CPU profile per phase to the specified prefix")

	parseFlags(flags, 6, MapHelp)

	alnFile := getFilename(os.Args[2], MapHelp)
	seqsA := getFilename(os.Args[3], MapHelp)
	seqsB := getFilename(os.Args[4], MapHelp)
	tableFile := getFilename(os.Args[5], MapHelp)

	ok := checkExist("", alnFile)
	ok = checkExist("", seqsA) && ok
	ok = checkExist("", seqsB) && ok
	ok = checkCreate("", tableFile) && ok
	if diagnostics != "" {
		ok = checkCreate("--diagnostics", diagnostics) && ok
	}
	if !ok {
		fmt.Fprint(os.Stderr, MapHelp)
		os.Exit(1)
	}
	if nrOfThreads < 0 {
		internal.ConfigErrorf("invalid number of threads %v", nrOfThreads)
	}
	offset := mapper.ParseReverseOffset(reverseOffset)

	setLogOutput(logPath)
	if nrOfThreads > 0 {
		runtime.GOMAXPROCS(nrOfThreads)
	}

	runID := uuid.New().String()
	log.Println("Run id:", runID)

	var chromsA, chromsB *chrom.Index
	timedRun(timed, profilePath, "Reading chromosome names.", 1, func() {
		chromsA = chrom.ReadNames(seqsA)
		chromsB = chrom.ReadNames(seqsB)
	})

	var blocks []*align.Block
	timedRun(timed, profilePath, "Reading alignment blocks.", 2, func() {
		blocks = align.ReadBlocks(alnFile)
	})
	log.Println("Parsed", len(blocks), "alignment blocks.")

	run := mapper.NewRun(chromsA, chromsB, offset, maxBlockOverlap, maxMultiPosition)
	timedRun(timed, profilePath, "Expanding and resolving positions.", 3, func() {
		mapper.Rank(blocks)
		mapper.Expand(run, blocks)
		mapper.Resolve(run, blocks)
	})

	log.Println("Writing position table to", internal.FullPathname(tableFile))
	timedRun(timed, profilePath, "Filtering blocks and writing the position table.", 4, func() {
		writeOutputs(run, blocks, tableFile, diagnostics, runID)
	})
	return nil
}

func writeOutputs(run *mapper.Run, blocks []*align.Block, tableFile, diagnostics, runID string) {
	tf := internal.FileCreate(tableFile)
	defer internal.Close(tf)
	out := bufio.NewWriter(tf)

	diagFile := terminalStderr
	if diagnostics != "" {
		diagFile = internal.FileCreate(diagnostics)
		defer internal.Close(diagFile)
	}
	diag := bufio.NewWriter(diagFile)

	fmt.Fprintf(diag, "# %v %v run %v\n", utils.ProgramName, utils.ProgramVersion, runID)
	accepted, mapped := mapper.Filter(run, blocks, out, diag)
	log.Println("Accepted", accepted, "blocks,", mapped, "mapped positions.")

	if err := out.Flush(); err != nil {
		internal.IOErrorf("write %v: %v", tableFile, err)
	}
	if err := diag.Flush(); err != nil {
		internal.IOErrorf("write diagnostics: %v", err)
	}
}
