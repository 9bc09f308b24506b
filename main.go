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

// mapcoords maps equivalent genomic coordinates between two related
// genome assemblies from a set of local pairwise alignment blocks,
// producing a deduplicated, quality-filtered position table for
// projecting variant positions from one assembly onto the other.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/eead-csic-compbio/mapcoords/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: map, chrom-names")
	fmt.Fprint(os.Stderr, "\n", cmd.MapHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.ChromNamesHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Println("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "map":
		err = cmd.Map()
	case "chrom-names":
		err = cmd.ChromNames()
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Println("Unknown command:", os.Args[1])
		fmt.Fprint(os.Stderr, cmd.HelpMessage, "\n")
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
