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

	"github.com/consensys/go-algebra/pkg/algebra/field"
	"github.com/consensys/go-algebra/pkg/algebra/scalar"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] lhs op rhs",
	Short: "Evaluate a single field operation.",
	Long:  `Evaluate lhs op rhs over field elements of the chosen scalar kind, where op is one of + - * /.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 3 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		runScalarAgnosticCmd(cmd, args, evalCmds)
	},
}

// Available instances
var evalCmds = []ScalarAgnosticCmd{
	{scalar.INT32, runEvalCmd[scalar.Int32]},
	{scalar.INT64, runEvalCmd[scalar.Int64]},
	{scalar.FLOAT32, runEvalCmd[scalar.Float32]},
	{scalar.FLOAT64, runEvalCmd[scalar.Float64]},
}

func runEvalCmd[T field.Scalar[T]](cmd *cobra.Command, args []string) {
	var kind = kindOf(cmd)
	// Configure log level
	configureLogging(cmd)
	//
	operands := ParseScalars[T](kind, []string{args[0], args[2]})
	result, err := Eval(field.New(operands[0]), args[1], field.New(operands[1]))
	//
	if err != nil {
		log.Error(err)
		os.Exit(4)
	}
	//
	fmt.Println(result)
}

// Eval applies a binary operator, given by its symbol, to two field elements.
// Division by zero is reported as an error.
func Eval[T field.Scalar[T]](lhs field.Element[T], op string, rhs field.Element[T]) (field.Element[T], error) {
	log.Debugf("evaluating %s %s %s", lhs, op, rhs)
	//
	switch op {
	case "+":
		return lhs.Add(rhs), nil
	case "-":
		return lhs.Sub(rhs), nil
	case "*", "x":
		return lhs.Mul(rhs), nil
	case "/":
		return lhs.TryDiv(rhs)
	}
	//
	return lhs, fmt.Errorf("unknown operator \"%s\"", op)
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
