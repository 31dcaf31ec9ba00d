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

	"github.com/consensys/go-algebra/pkg/algebra/element"
	"github.com/consensys/go-algebra/pkg/algebra/field"
	"github.com/consensys/go-algebra/pkg/algebra/group"
	"github.com/consensys/go-algebra/pkg/algebra/laws"
	"github.com/consensys/go-algebra/pkg/algebra/scalar"
	"github.com/consensys/go-algebra/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] value...",
	Short: "Check algebraic laws over a set of values.",
	Long: `Check the laws of a chosen algebraic structure over every combination of the given values.
	Structures are "group" (integers under addition), "fr" (the BLS12-377 scalar field under addition),
	"element" (generic group elements) and "field" (generic field elements).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runScalarAgnosticCmd(cmd, args, checkCmds)
	},
}

// Available instances
var checkCmds = []ScalarAgnosticCmd{
	{scalar.INT32, runCheckCmd[scalar.Int32]},
	{scalar.INT64, runCheckCmd[scalar.Int64]},
	{scalar.FLOAT32, runCheckCmd[scalar.Float32]},
	{scalar.FLOAT64, runCheckCmd[scalar.Float64]},
}

func runCheckCmd[T field.Scalar[T]](cmd *cobra.Command, args []string) {
	var (
		kind      = kindOf(cmd)
		structure = GetString(cmd, "structure")
		report    laws.Report
		err       error
	)
	// Configure log level
	configureLogging(cmd)
	//
	stats := util.NewPerfStats()
	//
	if structure == "fr" {
		report, err = checkFr(args)
	} else {
		report, err = checkScalars(kind, structure, ParseScalars[T](kind, args))
	}
	//
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	stats.Log("Checking laws")
	//
	printReport(report, GetFlag(cmd, "ansi-escapes") || isTerminal(os.Stdout))
	//
	if !report.Holds() {
		os.Exit(1)
	}
}

func checkScalars[T field.Scalar[T]](kind scalar.Kind, structure string, values []T) (laws.Report, error) {
	var name = fmt.Sprintf("%s (%s)", structure, kind.Name)
	//
	log.Debugf("checking %d %s values for %s", len(values), kind.Name, structure)
	//
	switch structure {
	case "group":
		return checkIntegerGroup(kind, values)
	case "element":
		elements := make([]element.GroupElement[T], len(values))
		for i, v := range values {
			elements[i] = element.New(v)
		}
		//
		return laws.CheckGroup(name, elements), nil
	case "field":
		elements := make([]field.Element[T], len(values))
		for i, v := range values {
			elements[i] = field.New(v)
		}
		//
		return laws.CheckField(name, elements), nil
	}
	//
	return laws.Report{}, fmt.Errorf("unknown structure \"%s\"", structure)
}

// Integers under addition are only realised for the integral kinds.
func checkIntegerGroup[T field.Scalar[T]](kind scalar.Kind, values []T) (laws.Report, error) {
	var name = fmt.Sprintf("group (%s)", kind.Name)
	//
	switch kind {
	case scalar.INT32:
		elements := make([]group.Int32, len(values))
		for i, v := range values {
			elements[i] = group.Int32(v)
		}
		//
		return laws.CheckGroup(name, elements), nil
	case scalar.INT64:
		elements := make([]group.Int64, len(values))
		for i, v := range values {
			elements[i] = group.Int64(v)
		}
		//
		return laws.CheckGroup(name, elements), nil
	}
	//
	return laws.Report{}, fmt.Errorf("no integer group for scalar %s", kind.Name)
}

func checkFr(args []string) (laws.Report, error) {
	elements := make([]group.Fr, len(args))
	//
	for i, arg := range args {
		var err error
		//
		if elements[i], err = group.ParseFr(arg); err != nil {
			return laws.Report{}, fmt.Errorf("invalid field element \"%s\"", arg)
		}
	}
	//
	return laws.CheckGroup("fr (bls12-377)", elements), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("structure", "field", "algebraic structure to check (group, fr, element, field)")
	checkCmd.Flags().Bool("ansi-escapes", false, "force the use of ANSI escapes when printing the report")
}
