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

// Iterator is a structure for iterating the strings accepted by a DFA
// over the term's own alphabet, in lexicographic order.  Alphabet
// code-points routed through a wildcard edge are followed too, so the
// enumeration is complete over the alphabet; only code-points outside
// it are not enumerated, as the wildcard stands for infinitely many of
// them.  Iterators should be constructed with the Iterator method on
// the parent DFA structure.
//
// The walk always terminates: any input longer than len(term)+distance
// exceeds the budget, so the live portion of the state graph contains
// no cycles.
type Iterator struct {
	d        *DFA
	alphabet []rune

	statesStack  []int
	keysStack    []rune
	keysPosStack []int
}

func newIterator(d *DFA) (*Iterator, error) {
	if d.Len() == 0 {
		return nil, ErrIteratorDone
	}
	rv := &Iterator{
		d:           d,
		alphabet:    d.alphabet(),
		statesStack: []int{d.Start()},
	}
	if !d.IsMatch(d.Start()) {
		err := rv.Next()
		if err != nil {
			return nil, err
		}
	}
	return rv, nil
}

// alphabet returns the sorted distinct code-points appearing as literal
// keys.  Every term code-point shows up as a key somewhere along the
// exact-match path, so this is the term's own alphabet.
func (d *DFA) alphabet() []rune {
	seen := make(map[rune]struct{})
	var rv []rune
	for id := range d.states {
		for _, r := range d.states[id].keys {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				rv = append(rv, r)
			}
		}
	}
	sortRunes(rv)
	return rv
}

// Current returns the accepted string currently pointed to by the
// iterator.  If the iterator is not pointing at a valid string
// (because Next returned an error previously), it may return "".
func (i *Iterator) Current() string {
	return string(i.keysStack)
}

// Next advances the iterator to the next accepted string, returning
// ErrIteratorDone when none remain.
func (i *Iterator) Next() error {
	for {
		top := i.statesStack[len(i.statesStack)-1]
		if pos, dest := i.nextEdge(top, 0); dest != noState {
			// descend along the smallest edge
			i.keysPosStack = append(i.keysPosStack, pos)
			i.keysStack = append(i.keysStack, i.alphabet[pos])
			i.statesStack = append(i.statesStack, dest)
		} else {
			err := i.backtrack()
			if err != nil {
				return err
			}
		}

		curr := i.statesStack[len(i.statesStack)-1]
		if i.d.IsMatch(curr) {
			return nil
		}
	}
}

// nextEdge returns the first alphabet index at or after from with a
// live outgoing edge, literal or wildcard, and its destination.
func (i *Iterator) nextEdge(id, from int) (int, int) {
	for pos := from; pos < len(i.alphabet); pos++ {
		if dest := i.d.Accept(id, i.alphabet[pos]); dest != noState {
			return pos, dest
		}
	}
	return -1, noState
}

// backtrack pops until some ancestor still has an untaken sibling edge,
// then takes it.
func (i *Iterator) backtrack() error {
	for {
		if len(i.statesStack) == 1 {
			return ErrIteratorDone
		}
		i.statesStack = i.statesStack[:len(i.statesStack)-1]
		parent := i.statesStack[len(i.statesStack)-1]

		from := i.keysPosStack[len(i.keysPosStack)-1] + 1
		if pos, dest := i.nextEdge(parent, from); dest != noState {
			i.keysPosStack[len(i.keysPosStack)-1] = pos
			i.keysStack[len(i.keysStack)-1] = i.alphabet[pos]
			i.statesStack = append(i.statesStack, dest)
			return nil
		}

		i.keysPosStack = i.keysPosStack[:len(i.keysPosStack)-1]
		i.keysStack = i.keysStack[:len(i.keysStack)-1]
	}
}
