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
package scalar

// Kind identifies one of the supported scalar kinds by name, as used on the
// command line.
type Kind struct {
	// Name used to select this kind.
	Name string
	// Integral indicates whether division truncates.
	Integral bool
	// Bits in the underlying representation.
	Bits uint
}

// INT32 identifies Int32.
var INT32 = Kind{"int32", true, 32}

// INT64 identifies Int64.
var INT64 = Kind{"int64", true, 64}

// FLOAT32 identifies Float32.
var FLOAT32 = Kind{"float32", false, 32}

// FLOAT64 identifies Float64.
var FLOAT64 = Kind{"float64", false, 64}

// KINDS determines the set of supported scalar kinds.
var KINDS = []Kind{
	INT32,
	INT64,
	FLOAT32,
	FLOAT64,
}

// GetKind returns the kind with the given name, or nil if no such kind exists.
func GetKind(name string) *Kind {
	for i := range KINDS {
		if KINDS[i].Name == name {
			return &KINDS[i]
		}
	}
	//
	return nil
}
