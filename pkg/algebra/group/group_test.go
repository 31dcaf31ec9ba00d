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

import (
	"testing"

	"github.com/consensys/go-algebra/pkg/util/assert"
)

func init() {
	// make sure the interface is adhered to.
	_ = Group[Int32](Int32(0))
	_ = Group[Int64](Int64(0))
	_ = Group[Fr](Fr{})
}

func Test_Group_Int32(t *testing.T) {
	var a, b, c Int32 = 5, -3, 2
	// Closure
	assert.Equal(t, Int32(2), a.Op(b))
	// Associativity
	assert.Equal(t, a.Op(b).Op(c), a.Op(b.Op(c)))
	// Identity
	assert.Equal(t, a, a.Op(Identity[Int32]()))
	// Inverse
	assert.Equal(t, Identity[Int32](), a.Op(a.Inverse()))
}

func Test_Group_Laws_Int32(t *testing.T) {
	values := []Int32{-7, -1, 0, 1, 2, 42}
	//
	for _, a := range values {
		assert.True(t, IsIdentity(a), "identity fails for %d", a)
		assert.True(t, IsInverse(a), "inverse fails for %d", a)
		//
		for _, b := range values {
			for _, c := range values {
				assert.True(t, IsAssociative(a, b, c), "associativity fails for %d,%d,%d", a, b, c)
			}
		}
	}
}

func Test_Group_Laws_Int64(t *testing.T) {
	var a, b, c Int64 = 1 << 40, -3, 1 << 62
	//
	assert.True(t, IsAssociative(a, b, c))
	assert.True(t, IsIdentity(b))
	assert.True(t, IsInverse(c))
	assert.Equal(t, Int64(0), Identity[Int64]())
}

func Test_Group_Fr(t *testing.T) {
	var (
		a = NewFr(5)
		b = NewFr(-3)
		c = NewFr(2)
	)
	//
	assert.Equal(t, NewFr(2), a.Op(b))
	assert.Equal(t, NewFr(-5), a.Inverse())
	assert.True(t, IsAssociative(a, b, c))
	assert.True(t, IsIdentity(a))
	assert.True(t, IsInverse(b))
	assert.Equal(t, "0", Identity[Fr]().String())
}

func Test_Group_ParseFr(t *testing.T) {
	a, err := ParseFr("12345")
	//
	assert.True(t, err == nil)
	assert.Equal(t, NewFr(12345), a)
	//
	_, err = ParseFr("not a number")
	assert.True(t, err != nil)
}

func Test_Group_Fold(t *testing.T) {
	assert.Equal(t, Int32(0), Fold[Int32]())
	assert.Equal(t, Int32(6), Fold[Int32](1, 2, 3))
	assert.Equal(t, NewFr(0), Fold(NewFr(4), NewFr(-4)))
}
