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

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero signals an attempt to divide by (or invert) the additive
// identity.
var ErrDivisionByZero = errors.New("division by zero")

// ZeroOne provides the two distinguished constants of a scalar kind.  Both are
// called on the zero value of T.
type ZeroOne[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
}

// Scalar is any signed integer or floating point kind which knows its own
// zero and one.
type Scalar[T any] interface {
	constraints.Signed | constraints.Float
	ZeroOne[T]
}

// Element of a field over some scalar kind T.  Arithmetic is that of T itself,
// hence (for example) multiplicative inverses over integer kinds truncate.
type Element[T Scalar[T]] struct {
	value T
}

// New constructs an element holding a given value.
func New[T Scalar[T]](value T) Element[T] {
	return Element[T]{value}
}

// IdentityAdd returns the additive identity (zero).
func IdentityAdd[T Scalar[T]]() Element[T] {
	var scalar T
	//
	return Element[T]{scalar.Zero()}
}

// IdentityMul returns the multiplicative identity (one).
func IdentityMul[T Scalar[T]]() Element[T] {
	var scalar T
	//
	return Element[T]{scalar.One()}
}

// Value returns the underlying scalar.
func (x Element[T]) Value() T {
	return x.value
}

// IsZero checks whether this is the additive identity.
func (x Element[T]) IsZero() bool {
	return x.value == x.value.Zero()
}

// IsOne checks whether this is the multiplicative identity.
func (x Element[T]) IsOne() bool {
	return x.value == x.value.One()
}

// InverseAdd returns -x.
func (x Element[T]) InverseAdd() Element[T] {
	return Element[T]{-x.value}
}

// InverseMul returns 1/x.  This panics if x is zero.
func (x Element[T]) InverseMul() Element[T] {
	if x.IsZero() {
		panic("cannot find multiplicative inverse of zero")
	}
	//
	return Element[T]{x.value.One() / x.value}
}

// TryInverseMul returns 1/x, or an error if x is zero.
func (x Element[T]) TryInverseMul() (Element[T], error) {
	if x.IsZero() {
		return x, fmt.Errorf("inverse of %v: %w", x, ErrDivisionByZero)
	}
	//
	return x.InverseMul(), nil
}

// Add x+y
func (x Element[T]) Add(y Element[T]) Element[T] {
	return Element[T]{x.value + y.value}
}

// Sub x-y
func (x Element[T]) Sub(y Element[T]) Element[T] {
	return Element[T]{x.value - y.value}
}

// Mul x*y
func (x Element[T]) Mul(y Element[T]) Element[T] {
	return Element[T]{x.value * y.value}
}

// Div x/y.  This panics if y is zero.
func (x Element[T]) Div(y Element[T]) Element[T] {
	if y.IsZero() {
		panic("cannot divide by zero")
	}
	//
	return Element[T]{x.value / y.value}
}

// TryDiv x/y, or an error if y is zero.
func (x Element[T]) TryDiv(y Element[T]) (Element[T], error) {
	if y.IsZero() {
		return x, fmt.Errorf("%v / %v: %w", x, y, ErrDivisionByZero)
	}
	//
	return x.Div(y), nil
}

// Equal checks whether two elements hold the same value.
func (x Element[T]) Equal(y Element[T]) bool {
	return x.value == y.value
}

func (x Element[T]) String() string {
	return fmt.Sprintf("%v", x.value)
}
