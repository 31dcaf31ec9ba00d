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

// Group captures a set closed under a single associative operation, which has
// a two-sided identity and in which every element has a two-sided inverse.
// Identity is called on the zero value of G, hence implementations must not
// depend upon the receiver there.
type Group[G any] interface {
	// Op combines this element with another, yielding an element of the same
	// group.
	Op(G) G
	// Identity returns the two-sided identity of the group.
	Identity() G
	// Inverse returns the element which combines with this one to give the
	// identity.
	Inverse() G
}

// Identity returns the identity element of a given group.
func Identity[G Group[G]]() G {
	var element G
	//
	return element.Identity()
}

// Fold combines a sequence of elements from left to right.  The fold of an
// empty sequence is the identity.
func Fold[G Group[G]](elements ...G) G {
	var acc = Identity[G]()
	//
	for _, e := range elements {
		acc = acc.Op(e)
	}
	//
	return acc
}

// IsAssociative checks (a∘b)∘c == a∘(b∘c) for the given elements.
func IsAssociative[G interface {
	Group[G]
	comparable
}](a, b, c G) bool {
	return a.Op(b).Op(c) == a.Op(b.Op(c))
}

// IsIdentity checks a∘e == a and e∘a == a.
func IsIdentity[G interface {
	Group[G]
	comparable
}](a G) bool {
	var e = Identity[G]()
	//
	return a.Op(e) == a && e.Op(a) == a
}

// IsInverse checks a∘a⁻¹ == e and a⁻¹∘a == e.
func IsInverse[G interface {
	Group[G]
	comparable
}](a G) bool {
	var (
		e   = Identity[G]()
		inv = a.Inverse()
	)
	//
	return a.Op(inv) == e && inv.Op(a) == e
}
