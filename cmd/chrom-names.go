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
	"os"

	"github.com/eead-csic-compbio/mapcoords/chrom"
	"github.com/eead-csic-compbio/mapcoords/internal"
)

// ChromNamesHelp is the help string for this command.
const ChromNamesHelp = "chrom-names parameters:\n" +
	"mapcoords chrom-names sequence-file\n" +
	"[--log-path path]\n"

// ChromNames implements the mapcoords chrom-names command. It prints
// the ordinal to chromosome name table of one sequence file, which is
// the numbering the alignment block stream refers to.
func ChromNames() (err error) {
	defer internal.CatchErrors(&err)

	var logPath string

	var flags flag.FlagSet
	flags.StringVar(&logPath, "log-path", "", "write log files to the specified directory")
	parseFlags(flags, 3, ChromNamesHelp)

	input := getFilename(os.Args[2], ChromNamesHelp)
	if !checkExist("", input) {
		fmt.Fprint(os.Stderr, ChromNamesHelp)
		os.Exit(1)
	}

	setLogOutput(logPath)

	index := chrom.ReadNames(input)
	out := bufio.NewWriter(os.Stdout)
	for ordinal := int32(1); ordinal <= int32(index.Len()); ordinal++ {
		fmt.Fprintf(out, "%v\t%v\n", ordinal, index.Name(ordinal))
	}
	if err := out.Flush(); err != nil {
		internal.IOErrorf("write chromosome names: %v", err)
	}
	return nil
}
