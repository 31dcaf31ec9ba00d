// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-algebra/pkg/algebra/laws"
	"github.com/consensys/go-algebra/pkg/util/termio"
)

func isTerminal(file *os.File) bool {
	return termio.IsTerminal(file)
}

// Print a report, one line per law checked.
func printReport(report laws.Report, ansiEscapes bool) {
	var (
		pass = termio.NewAnsiEscape().FgColour(termio.TERM_GREEN).Build()
		fail = termio.BoldAnsiEscape().FgColour(termio.TERM_RED).Build()
		// Reset all formatting
		reset = termio.ResetAnsiEscape().Build()
	)
	//
	fmt.Println(report.Name)
	//
	for _, r := range report.Results {
		var status, escape = "pass", pass
		//
		if !r.Holds {
			status, escape = "FAIL", fail
		}
		//
		if ansiEscapes {
			status = fmt.Sprintf("%s%s%s", escape, status, reset)
		}
		//
		fmt.Printf("[%s] %s %s\n", status, r.Law, strings.Join(r.Operands, ", "))
	}
	//
	fmt.Printf("%d checked, %d failed\n", len(report.Results), len(report.Failures()))
}
