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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Fr is the additive group of the BLS12-377 scalar field.  Only the group
// structure is exposed here.
type Fr fr.Element

// NewFr constructs the element corresponding to a (possibly negative) integer.
func NewFr(val int64) Fr {
	var element fr.Element
	//
	element.SetInt64(val)
	//
	return Fr(element)
}

// ParseFr parses an element from its decimal (or 0x prefixed hex) notation.
func ParseFr(text string) (Fr, error) {
	var element fr.Element
	//
	if _, err := element.SetString(text); err != nil {
		return Fr{}, err
	}
	//
	return Fr(element), nil
}

// Op implementation for the Group interface.
func (x Fr) Op(y Fr) Fr {
	var (
		res  fr.Element
		a, b = fr.Element(x), fr.Element(y)
	)
	//
	res.Add(&a, &b)
	//
	return Fr(res)
}

// Identity implementation for the Group interface.
func (x Fr) Identity() Fr {
	var zero fr.Element
	//
	zero.SetZero()
	//
	return Fr(zero)
}

// Inverse implementation for the Group interface.
func (x Fr) Inverse() Fr {
	var (
		res fr.Element
		a   = fr.Element(x)
	)
	//
	res.Neg(&a)
	//
	return Fr(res)
}

func (x Fr) String() string {
	var element = fr.Element(x)
	//
	return element.String()
}
