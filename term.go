//  Copyright (c) 2018 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package levdfa

// Term is the reference string an automaton is built over.  It is an
// immutable sequence of code-points with O(1) length and indexing, so
// the DP step never pays for utf-8 decoding.
type Term struct {
	runes []rune
}

// NewTerm converts the query string into a Term.
func NewTerm(s string) Term {
	return Term{runes: []rune(s)}
}

// Len returns the number of code-points in the term.
func (t Term) Len() int {
	return len(t.runes)
}

// At returns the code-point at position i, 0 <= i < Len().
func (t Term) At(i int) rune {
	return t.runes[i]
}

// Equal returns true if both terms contain the same code-point sequence.
func (t Term) Equal(other Term) bool {
	if len(t.runes) != len(other.runes) {
		return false
	}
	for i := range t.runes {
		if t.runes[i] != other.runes[i] {
			return false
		}
	}
	return true
}

func (t Term) String() string {
	return string(t.runes)
}
