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
package group

// Int32 is the group of 32bit signed integers under addition.  Overflow wraps
// around, as for int32.
type Int32 int32

// Op implementation for the Group interface.
func (x Int32) Op(y Int32) Int32 {
	return x + y
}

// Identity implementation for the Group interface.
func (x Int32) Identity() Int32 {
	return 0
}

// Inverse implementation for the Group interface.
func (x Int32) Inverse() Int32 {
	return -x
}

// Int64 is the group of 64bit signed integers under addition.
type Int64 int64

// Op implementation for the Group interface.
func (x Int64) Op(y Int64) Int64 {
	return x + y
}

// Identity implementation for the Group interface.
func (x Int64) Identity() Int64 {
	return 0
}

// Inverse implementation for the Group interface.
func (x Int64) Inverse() Int64 {
	return -x
}
