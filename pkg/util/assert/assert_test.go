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
package assert

import "testing"

func Test_Assert_IntEqual(t *testing.T) {
	True(t, intEqual(int32(3), int64(3)))
	True(t, intEqual(uint8(7), 7))
	False(t, intEqual(int32(3), int64(4)))
	False(t, intEqual(uint64(1<<63), int64(-1)))
}

func Test_Assert_Equal(t *testing.T) {
	Equal(t, []int{1, 2}, []int{1, 2})
	Equal(t, int16(5), uint(5))
	Equal(t, 1.5, 1.5)
}

func Test_Assert_Panics(t *testing.T) {
	Panics(t, "boom", func() { panic("big boom") })
}
