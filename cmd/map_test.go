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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eead-csic-compbio/mapcoords/chrom"
	"github.com/eead-csic-compbio/mapcoords/mapper"
)

// Diagnostics without --diagnostics must go to the terminal stream,
// not to file descriptor 2, which the log redirection may have pointed
// into the log file.
func TestWriteOutputsDefaultDiagnostics(t *testing.T) {
	dir := t.TempDir()
	stderrFile, err := os.Create(filepath.Join(dir, "stderr"))
	if err != nil {
		t.Fatal(err)
	}
	saved := terminalStderr
	terminalStderr = stderrFile
	defer func() { terminalStderr = saved }()

	run := mapper.NewRun(
		chrom.NewIndex("chr1"),
		chrom.NewIndex("chrB1"),
		mapper.LegacyReverseOffset,
		mapper.DefaultMaxOverlapRatio,
		mapper.DefaultMaxAmbiguousRatio,
	)
	tableFile := filepath.Join(dir, "table.tsv")
	writeOutputs(run, nil, tableFile, "", "test-run")

	if err := stderrFile.Close(); err != nil {
		t.Fatal(err)
	}
	diagnostics, err := ioutil.ReadFile(stderrFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(diagnostics), "run test-run") ||
		!strings.Contains(string(diagnostics), "# accepted blocks: 0, mapped positions: 0") {
		t.Error("default diagnostics stream failed")
	}
	if _, err := os.Stat(tableFile); err != nil {
		t.Error("position table creation failed")
	}
}
