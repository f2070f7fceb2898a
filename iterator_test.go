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
	"reflect"
	"sort"
	"testing"
)

func termAlphabet(term string) []rune {
	seen := make(map[rune]struct{})
	var rv []rune
	for _, r := range term {
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			rv = append(rv, r)
		}
	}
	sortRunes(rv)
	return rv
}

func collect(t *testing.T, d *DFA) []string {
	t.Helper()
	var rv []string
	itr, err := d.Iterator()
	for err == nil {
		rv = append(rv, itr.Current())
		err = itr.Next()
	}
	if err != ErrIteratorDone {
		t.Fatalf("unexpected iterator error: %v", err)
	}
	return rv
}

func TestIterator(t *testing.T) {
	dfa, err := New("ab", 1)
	if err != nil {
		t.Fatalf("error building dfa: %v", err)
	}

	got := collect(t, dfa)
	expected := []string{"a", "aa", "aab", "ab", "aba", "abb", "b", "bab", "bb"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("expected lexicographic order, got %v", got)
	}
}

// TestIteratorExhaustive cross-checks the enumeration against the DP
// edit distance over every string of the term's own alphabet up to the
// maximum accepted length.  The term "aab" covers the case where an
// accepted string ("bab") crosses a wildcard edge: from the start state
// only 'a' is a literal key, yet "bab" is within distance 1.  The term
// "bb" pins the single-rune alphabet: accepted strings containing other
// code-points are outside the enumeration contract.
func TestIteratorExhaustive(t *testing.T) {
	for _, term := range []string{"aba", "aab", "bb", "abab"} {
		alphabet := termAlphabet(term)
		for distance := 0; distance <= 2; distance++ {
			dfa, err := New(term, distance)
			if err != nil {
				t.Fatalf("error building dfa: %v", err)
			}
			got := collect(t, dfa)

			var expected []string
			var gen func(prefix []rune, depth int)
			gen = func(prefix []rune, depth int) {
				if editDistance(term, string(prefix)) <= distance {
					expected = append(expected, string(prefix))
				}
				if depth == 0 {
					return
				}
				for _, r := range alphabet {
					gen(append(prefix, r), depth-1)
				}
			}
			gen(nil, len(term)+distance)
			sort.Strings(expected)

			if !reflect.DeepEqual(got, expected) {
				t.Errorf("term=%q distance=%d: expected %v, got %v",
					term, distance, expected, got)
			}
		}
	}
}

// TestIteratorAlphabetScope verifies the enumeration stays within the
// term's own alphabet even when the DFA accepts strings outside it.
func TestIteratorAlphabetScope(t *testing.T) {
	dfa, err := New("bb", 1)
	if err != nil {
		t.Fatalf("error building dfa: %v", err)
	}
	if !dfa.Match("ab") {
		t.Fatalf("expected the dfa itself to accept \"ab\"")
	}
	got := collect(t, dfa)
	expected := []string{"b", "bb", "bbb"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestIteratorMatchAll(t *testing.T) {
	dfa, err := New("a", 0)
	if err != nil {
		t.Fatalf("error building dfa: %v", err)
	}
	got := collect(t, dfa)
	expected := []string{"a"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestIteratorIncludesEmptyString(t *testing.T) {
	// distance >= len(term) accepts the empty string, which the
	// iterator must report first
	dfa, err := New("ab", 2)
	if err != nil {
		t.Fatalf("error building dfa: %v", err)
	}
	itr, err := dfa.Iterator()
	if err != nil {
		t.Fatalf("error creating iterator: %v", err)
	}
	if itr.Current() != "" {
		t.Errorf("expected empty string first, got %q", itr.Current())
	}
}
