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

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestDFAMatch(t *testing.T) {
	tests := []struct {
		desc     string
		term     string
		distance int
		input    string
		match    bool
	}{
		{
			desc:     "woof/1 - wolf",
			term:     "woof",
			distance: 1,
			input:    "wolf",
			match:    true,
		},
		{
			desc:     "woof/1 - wolfe",
			term:     "woof",
			distance: 1,
			input:    "wolfe",
			match:    false,
		},
		{
			desc:     "banana/1 - bananas",
			term:     "banana",
			distance: 1,
			input:    "bananas",
			match:    true,
		},
		{
			desc:     "banana/1 - bananas with wildcard char",
			term:     "banana",
			distance: 1,
			input:    "banan!",
			match:    true,
		},
		{
			desc:     "banana/1 - two wildcard chars",
			term:     "banana",
			distance: 1,
			input:    "b?nan?",
			match:    false,
		},
		{
			desc:     "cat/0 - exact only",
			term:     "cat",
			distance: 0,
			input:    "cat",
			match:    true,
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			for kind, a := range automata(t, test.term, test.distance) {
				dfa, err := BuildDFA(a)
				if err != nil {
					t.Fatalf("%s: error building dfa: %v", kind, err)
				}
				if got := dfa.Match(test.input); got != test.match {
					t.Errorf("%s: expected match %t, got %t", kind, test.match, got)
				}
			}
		})
	}
}

// TestDFAGroundTruth checks the built DFA against the DP edit distance
// on inputs that include code-points outside the term's alphabet, so
// wildcard edges are exercised.
func TestDFAGroundTruth(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	termAlphabet := []rune("abc")
	inputAlphabet := []rune("abcxy")
	randString := func(alphabet []rune, maxLen int) string {
		n := rng.Intn(maxLen + 1)
		rv := make([]rune, n)
		for i := range rv {
			rv[i] = alphabet[rng.Intn(len(alphabet))]
		}
		return string(rv)
	}

	for trial := 0; trial < 200; trial++ {
		term := randString(termAlphabet, 6)
		distance := rng.Intn(3)

		for kind, a := range automata(t, term, distance) {
			dfa, err := BuildDFA(a)
			if err != nil {
				t.Fatalf("%s: error building dfa: %v", kind, err)
			}
			for i := 0; i < 20; i++ {
				input := randString(inputAlphabet, 8)
				expect := editDistance(term, input) <= distance
				if got := dfa.Match(input); got != expect {
					t.Fatalf("%s: term=%q distance=%d input=%q expected %t, got %t",
						kind, term, distance, input, expect, got)
				}
			}
		}
	}
}

func TestDFADeterminism(t *testing.T) {
	for kind, a := range automata(t, "banana", 2) {
		first, err := BuildDFA(a)
		if err != nil {
			t.Fatalf("%s: error building dfa: %v", kind, err)
		}
		second, err := BuildDFA(a)
		if err != nil {
			t.Fatalf("%s: error building dfa: %v", kind, err)
		}
		if first.Len() != second.Len() {
			t.Errorf("%s: state counts differ: %d vs %d", kind, first.Len(), second.Len())
		}
		if !reflect.DeepEqual(first.MatchingIDs(), second.MatchingIDs()) {
			t.Errorf("%s: matching ids differ", kind)
		}
		if !reflect.DeepEqual(first.Transitions(), second.Transitions()) {
			t.Errorf("%s: transitions differ", kind)
		}
	}
}

func TestDFANoDanglingTransitions(t *testing.T) {
	for kind, a := range automata(t, "couchbase", 2) {
		dfa, err := BuildDFA(a)
		if err != nil {
			t.Fatalf("%s: error building dfa: %v", kind, err)
		}
		for _, tr := range dfa.Transitions() {
			if tr.From < 0 || tr.From >= dfa.Len() {
				t.Errorf("%s: dangling from id %d", kind, tr.From)
			}
			if tr.To < 0 || tr.To >= dfa.Len() {
				t.Errorf("%s: dangling to id %d", kind, tr.To)
			}
		}
		for _, id := range dfa.MatchingIDs() {
			if id < 0 || id >= dfa.Len() {
				t.Errorf("%s: matching id %d out of range", kind, id)
			}
		}
	}
}

// TestDFARepresentationAgreement checks that dense and sparse
// exploration discover the same deduplicated state space.
func TestDFARepresentationAgreement(t *testing.T) {
	terms := []string{"", "a", "ab", "banana", "abcabcaaabc"}
	for _, term := range terms {
		for distance := 0; distance <= 2; distance++ {
			auts := automata(t, term, distance)
			dense, err := BuildDFA(auts["dense"])
			if err != nil {
				t.Fatalf("error building dense dfa: %v", err)
			}
			sparse, err := BuildDFA(auts["sparse"])
			if err != nil {
				t.Fatalf("error building sparse dfa: %v", err)
			}
			if dense.Len() != sparse.Len() {
				t.Errorf("term=%q distance=%d: state counts differ: %d vs %d",
					term, distance, dense.Len(), sparse.Len())
			}
			if !reflect.DeepEqual(dense.MatchingIDs(), sparse.MatchingIDs()) {
				t.Errorf("term=%q distance=%d: matching ids differ", term, distance)
			}
			if !reflect.DeepEqual(dense.Transitions(), sparse.Transitions()) {
				t.Errorf("term=%q distance=%d: transitions differ", term, distance)
			}
		}
	}
}

// TestDFAStateCountBounded checks that for a fixed distance the state
// count grows at most linearly with the term length.
func TestDFAStateCountBounded(t *testing.T) {
	counts := make(map[int]int)
	for _, l := range []int{10, 20, 40} {
		term := strings.Repeat("ab", l/2)
		dfa, err := New(term, 1)
		if err != nil {
			t.Fatalf("error building dfa: %v", err)
		}
		counts[l] = dfa.Len()
	}
	for l, c := range counts {
		if c > 10*l {
			t.Errorf("term length %d: %d states is out of proportion", l, c)
		}
	}
	if counts[40] >= 10*counts[10] {
		t.Errorf("state count grows superlinearly: %v", counts)
	}
}

func TestDFAAcceptUnknownState(t *testing.T) {
	dfa, err := New("cat", 1)
	if err != nil {
		t.Fatalf("error building dfa: %v", err)
	}
	if got := dfa.Accept(-1, 'c'); got != -1 {
		t.Errorf("expected -1 from dead state, got %d", got)
	}
	if got := dfa.Accept(dfa.Len(), 'c'); got != -1 {
		t.Errorf("expected -1 from out-of-range state, got %d", got)
	}
	if dfa.IsMatch(-1) {
		t.Errorf("dead state must not match")
	}
}
