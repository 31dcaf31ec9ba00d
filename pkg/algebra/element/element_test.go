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
package element

import (
	"testing"

	"github.com/consensys/go-algebra/pkg/algebra/group"
	"github.com/consensys/go-algebra/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = group.Group[GroupElement[int32]](GroupElement[int32]{})
	_ = group.Group[GroupElement[float64]](GroupElement[float64]{})
}

func Test_Element_Add(t *testing.T) {
	assert.Equal(t, New(3), New(1).Add(New(2)))
	assert.Equal(t, New(-1), New(1).Add(New(2).Neg()))
	assert.Equal(t, New(3.5), New(1.25).Add(New(2.25)))
}

func Test_Element_Mul(t *testing.T) {
	assert.Equal(t, New(6), New(3).Mul(New(2)))
	assert.Equal(t, New(int8(-6)), New(int8(3)).Mul(New(int8(-2))))
}

func Test_Element_Neg(t *testing.T) {
	assert.Equal(t, New(-1), New(1).Neg())
	assert.Equal(t, New(1), New(1).Neg().Neg())
}

func Test_Element_Default(t *testing.T) {
	assert.Equal(t, New[int32](0), Default[int32]())
	assert.Equal(t, New(0.0), Default[float64]())
	assert.Equal(t, New(7), New(7).Add(Default[int]()))
}

func Test_Element_Operands_Unchanged(t *testing.T) {
	var (
		a = New(4)
		b = New(5)
	)
	//
	_ = a.Add(b)
	_ = a.Mul(b)
	_ = a.Neg()
	//
	assert.Equal(t, 4, a.Value())
	assert.Equal(t, 5, b.Value())
}

func Test_Element_GroupLaws(t *testing.T) {
	values := []GroupElement[int64]{New[int64](-9), Default[int64](), New[int64](1), New[int64](1 << 40)}
	//
	for _, a := range values {
		assert.True(t, group.IsIdentity(a))
		assert.True(t, group.IsInverse(a))
		//
		for _, b := range values {
			assert.True(t, group.IsAssociative(a, b, a))
		}
	}
}

func Test_Element_String(t *testing.T) {
	assert.Equal(t, "-3", New(-3).String())
	assert.Equal(t, "2.5", New(2.5).String())
}
