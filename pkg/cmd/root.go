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
	"runtime/debug"

	"github.com/consensys/go-algebra/pkg/algebra/scalar"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-algebra",
	Short: "A checker for basic algebraic structures.",
	Long:  "A toolbox for checking group and field laws over scalar kinds.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("go-algebra ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// ScalarAgnosticCmd represents a command to be executed for a given scalar
// kind.
type ScalarAgnosticCmd struct {
	Kind     scalar.Kind
	Function func(*cobra.Command, []string)
}

// Run a scalar agnostic top-level command.
func runScalarAgnosticCmd(cmd *cobra.Command, args []string, cmds []ScalarAgnosticCmd) {
	var (
		kindName = GetString(cmd, "scalar")
		// Scalar kind
		kind = scalar.GetKind(kindName)
	)
	// Sanity check
	if kind == nil {
		fmt.Printf("unknown scalar \"%s\"\n", kindName)
		os.Exit(3)
	}
	// Find command to dispatch
	for _, c := range cmds {
		if c.Kind == *kind {
			// Match
			c.Function(cmd, args)
			// Done
			return
		}
	}
	//
	fmt.Printf("scalar %s unsupported for command '%s'\n", kindName, cmd.Name())
	os.Exit(3)
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("scalar", scalar.INT32.Name, "scalar kind to use throughout")
}
