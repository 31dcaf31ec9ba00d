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
package field

// Pow raises a given element to the power n, such that x⁰ is one.
func Pow[T Scalar[T]](x Element[T], n uint64) Element[T] {
	result := IdentityMul[T]()
	//
	for {
		if n&1 == 1 {
			result = result.Mul(x)
		}
		// div 2
		n >>= 1
		//
		if n == 0 {
			break
		}
		//
		x = x.Mul(x)
	}

	return result
}
