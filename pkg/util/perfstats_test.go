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
package util

import (
	"testing"

	"github.com/consensys/go-algebra/pkg/util/assert"
)

var sink []byte

func Test_PerfStats(t *testing.T) {
	stats := NewPerfStats()
	//
	sink = make([]byte, 1<<20)
	//
	assert.True(t, stats.Allocated() >= 1<<20)
	assert.True(t, stats.Elapsed() >= 0)
	stats.Log("allocating")
}
