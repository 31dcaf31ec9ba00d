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
package laws

import (
	"testing"

	"github.com/consensys/go-algebra/pkg/algebra/element"
	"github.com/consensys/go-algebra/pkg/algebra/field"
	"github.com/consensys/go-algebra/pkg/algebra/group"
	"github.com/consensys/go-algebra/pkg/algebra/scalar"
	"github.com/consensys/go-algebra/pkg/util/assert"
)

func Test_Laws_Group_Int32(t *testing.T) {
	report := CheckGroup("int32", []group.Int32{-3, 0, 5})
	// 3 identity + 3 inverse + 27 associativity
	assert.Equal(t, 33, len(report.Results))
	assert.True(t, report.Holds())
}

func Test_Laws_Group_Fr(t *testing.T) {
	report := CheckGroup("fr", []group.Fr{group.NewFr(-1), group.NewFr(7)})
	//
	assert.True(t, report.Holds())
	assert.Equal(t, []string{"7"}, report.Results[2].Operands)
}

func Test_Laws_Group_Element(t *testing.T) {
	values := []element.GroupElement[float64]{element.New(0.5), element.New(-2.0)}
	report := CheckGroup("element", values)
	//
	assert.True(t, report.Holds())
}

func Test_Laws_Field_Float(t *testing.T) {
	values := []field.Element[scalar.Float64]{field.New[scalar.Float64](2), field.New[scalar.Float64](0.5)}
	report := CheckField("float64", values)
	//
	assert.True(t, report.Holds())
}

func Test_Laws_Field_Zero(t *testing.T) {
	values := []field.Element[scalar.Float64]{field.New[scalar.Float64](0), field.New[scalar.Float64](4)}
	report := CheckField("float64", values)
	//
	assert.True(t, report.Holds())
	//
	count := 0
	//
	for _, r := range report.Results {
		if r.Law == ZERO_DIVISOR {
			count++
		}
	}
	// inverse of zero, plus 0/0 and 4/0
	assert.Equal(t, 3, count)
}

func Test_Laws_Field_Int(t *testing.T) {
	values := []field.Element[scalar.Int32]{field.New[scalar.Int32](-1), field.New[scalar.Int32](2)}
	report := CheckField("int32", values)
	failures := report.Failures()
	// 2 has no inverse under truncating division
	assert.Equal(t, 1, len(failures))
	assert.Equal(t, INVERSE_MUL, failures[0].Law)
	assert.Equal(t, "multiplicative inverse [2]", failures[0].String())
}
