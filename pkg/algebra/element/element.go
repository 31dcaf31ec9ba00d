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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any scalar kind supporting addition, multiplication and negation.
type Number interface {
	constraints.Signed | constraints.Float
}

// GroupElement wraps a single scalar, forwarding arithmetic to it.  Elements
// are values: every operation constructs a fresh element and leaves its
// operands untouched.
type GroupElement[T Number] struct {
	value T
}

// New constructs an element holding the given value.
func New[T Number](value T) GroupElement[T] {
	return GroupElement[T]{value}
}

// Default returns the element holding the zero value of T, which is the
// additive identity for every supported kind.
func Default[T Number]() GroupElement[T] {
	var element GroupElement[T]
	//
	return element
}

// Value returns the underlying scalar.
func (x GroupElement[T]) Value() T {
	return x.value
}

// Add x+y
func (x GroupElement[T]) Add(y GroupElement[T]) GroupElement[T] {
	return GroupElement[T]{x.value + y.value}
}

// Mul x*y
func (x GroupElement[T]) Mul(y GroupElement[T]) GroupElement[T] {
	return GroupElement[T]{x.value * y.value}
}

// Neg -x
func (x GroupElement[T]) Neg() GroupElement[T] {
	return GroupElement[T]{-x.value}
}

// Op implementation for the Group interface, where the operation is addition.
func (x GroupElement[T]) Op(y GroupElement[T]) GroupElement[T] {
	return x.Add(y)
}

// Identity implementation for the Group interface.
func (x GroupElement[T]) Identity() GroupElement[T] {
	return Default[T]()
}

// Inverse implementation for the Group interface.
func (x GroupElement[T]) Inverse() GroupElement[T] {
	return x.Neg()
}

// Equal checks whether two elements hold the same value.
func (x GroupElement[T]) Equal(y GroupElement[T]) bool {
	return x.value == y.value
}

func (x GroupElement[T]) String() string {
	return fmt.Sprintf("%v", x.value)
}
