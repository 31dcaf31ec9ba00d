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
	"strconv"

	"github.com/consensys/go-algebra/pkg/algebra/field"
	"github.com/consensys/go-algebra/pkg/algebra/scalar"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected boolean flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure log level from the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// ParseScalar parses a value of the given scalar kind.  Integral kinds accept
// any base prefix understood by strconv (e.g. 0x).
func ParseScalar[T field.Scalar[T]](kind scalar.Kind, text string) (T, error) {
	if kind.Integral {
		v, err := strconv.ParseInt(text, 0, int(kind.Bits))
		if err != nil {
			return 0, fmt.Errorf("invalid %s \"%s\"", kind.Name, text)
		}
		//
		return T(v), nil
	}
	//
	v, err := strconv.ParseFloat(text, int(kind.Bits))
	if err != nil {
		return 0, fmt.Errorf("invalid %s \"%s\"", kind.Name, text)
	}
	//
	return T(v), nil
}

// ParseScalars parses a sequence of values of the given scalar kind, or exits
// if any is malformed.
func ParseScalars[T field.Scalar[T]](kind scalar.Kind, args []string) []T {
	var (
		values = make([]T, len(args))
		err    error
	)
	//
	for i, arg := range args {
		if values[i], err = ParseScalar[T](kind, arg); err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		log.Debugf("parsed operand %v", values[i])
	}
	//
	return values
}

// kindOf determines the scalar kind named on the command line.
func kindOf(cmd *cobra.Command) scalar.Kind {
	return *scalar.GetKind(GetString(cmd, "scalar"))
}
