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
	"errors"
	"fmt"

	"github.com/consensys/go-algebra/pkg/algebra/field"
	"github.com/consensys/go-algebra/pkg/algebra/group"
)

// Names of the laws which can be checked.
const (
	ASSOCIATIVITY   = "associativity"
	IDENTITY        = "identity"
	INVERSE         = "inverse"
	IDENTITY_ADD    = "additive identity"
	IDENTITY_MUL    = "multiplicative identity"
	INVERSE_ADD     = "additive inverse"
	INVERSE_MUL     = "multiplicative inverse"
	COMMUTATIVE_ADD = "commutativity (+)"
	COMMUTATIVE_MUL = "commutativity (*)"
	ZERO_DIVISOR    = "division by zero rejected"
)

// Result records the outcome of checking one law on one tuple of operands.
type Result struct {
	Law      string
	Operands []string
	Holds    bool
}

func (r Result) String() string {
	return fmt.Sprintf("%s %v", r.Law, r.Operands)
}

// Report collects the results of checking a set of laws against a given
// structure.
type Report struct {
	Name    string
	Results []Result
}

// Failures returns those results for which the law did not hold.
func (p *Report) Failures() []Result {
	var failures []Result
	//
	for _, r := range p.Results {
		if !r.Holds {
			failures = append(failures, r)
		}
	}
	//
	return failures
}

// Holds indicates whether every law checked held.
func (p *Report) Holds() bool {
	return len(p.Failures()) == 0
}

func (p *Report) record(law string, holds bool, operands ...any) {
	args := make([]string, len(operands))
	//
	for i, o := range operands {
		args[i] = fmt.Sprint(o)
	}
	//
	p.Results = append(p.Results, Result{law, args, holds})
}

// CheckGroup checks the group laws over all combinations of the given values.
func CheckGroup[G interface {
	group.Group[G]
	comparable
}](name string, values []G) Report {
	report := Report{Name: name}
	//
	for _, a := range values {
		report.record(IDENTITY, group.IsIdentity(a), a)
		report.record(INVERSE, group.IsInverse(a), a)
	}
	//
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				report.record(ASSOCIATIVITY, group.IsAssociative(a, b, c), a, b, c)
			}
		}
	}
	//
	return report
}

// CheckField checks the field laws over all combinations of the given values.
// Associativity is not checked, since it fails for floating point kinds.
func CheckField[T field.Scalar[T]](name string, values []field.Element[T]) Report {
	var (
		report = Report{Name: name}
		zero   = field.IdentityAdd[T]()
		one    = field.IdentityMul[T]()
	)
	//
	for _, a := range values {
		report.record(IDENTITY_ADD, a.Add(zero) == a && zero.Add(a) == a, a)
		report.record(IDENTITY_MUL, a.Mul(one) == a && one.Mul(a) == a, a)
		report.record(INVERSE_ADD, a.Add(a.InverseAdd()) == zero, a)
		//
		if inv, err := a.TryInverseMul(); err == nil {
			report.record(INVERSE_MUL, a.Mul(inv) == one, a)
		} else {
			report.record(ZERO_DIVISOR, errors.Is(err, field.ErrDivisionByZero) && a.IsZero(), a)
		}
	}
	//
	for _, a := range values {
		for _, b := range values {
			report.record(COMMUTATIVE_ADD, a.Add(b) == b.Add(a), a, b)
			report.record(COMMUTATIVE_MUL, a.Mul(b) == b.Mul(a), a, b)
			//
			if _, err := a.TryDiv(b); err != nil {
				report.record(ZERO_DIVISOR, errors.Is(err, field.ErrDivisionByZero) && b.IsZero(), a, b)
			}
		}
	}
	//
	return report
}
