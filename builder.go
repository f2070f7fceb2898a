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
	"github.com/willf/bitset"
)

type dfaBuilder struct {
	dfa   *DFA
	aut   Automaton
	cache map[string]int
}

func newDfaBuilder(aut Automaton) *dfaBuilder {
	return &dfaBuilder{
		dfa: &DFA{
			states:   make([]dfaState, 0, 16),
			matching: bitset.New(16),
		},
		aut:   aut,
		cache: make(map[string]int, 1024),
	}
}

// build explores every reachable automaton state with an explicit work
// stack.  The state graph is not a tree, distinct inputs reconverge to
// identical states, so the cache both deduplicates and terminates the
// walk.  States that can never match anymore are dropped instead of
// materialized, which keeps the DFA partial: a missing transition means
// rejection.
func (b *dfaBuilder) build() (*DFA, error) {
	start := b.aut.Start()
	startSi := b.cached(start)
	if startSi == nil {
		return b.dfa, nil
	}
	seen := map[int]struct{}{*startSi: {}}

	var stack stateStack
	stack = stack.Push(start)

	var state State
	stack, state = stack.Pop()
	for state != nil {
		si := b.cached(state)

		for _, r := range b.aut.Transitions(state) {
			next := b.aut.Accept(state, Literal(r))
			nextSi := b.cached(next)
			if nextSi != nil {
				b.addTransition(*si, *nextSi, Literal(r))
				if _, ok := seen[*nextSi]; !ok {
					seen[*nextSi] = struct{}{}
					stack = stack.Push(next)
				}
			}
		}

		next := b.aut.Accept(state, Wildcard())
		nextSi := b.cached(next)
		if nextSi != nil {
			b.addTransition(*si, *nextSi, Wildcard())
			if _, ok := seen[*nextSi]; !ok {
				seen[*nextSi] = struct{}{}
				stack = stack.Push(next)
			}
		}

		if len(b.dfa.states) > StateLimit {
			return nil, ErrTooManyStates
		}

		stack, state = stack.Pop()
	}

	return b.dfa, nil
}

// cached returns the id assigned to the state, assigning the next
// sequential one on first sight, or nil for dead states.
func (b *dfaBuilder) cached(state State) *int {
	if !b.aut.CanMatch(state) {
		return nil
	}
	k := state.key()
	v, ok := b.cache[k]
	if ok {
		return &v
	}
	b.dfa.states = append(b.dfa.states, dfaState{wildcard: noState})
	newV := len(b.dfa.states) - 1
	if b.aut.IsMatch(state) {
		b.dfa.matching.Set(uint(newV))
	}
	b.cache[k] = newV
	return &newV
}

// addTransition records the edge from -> to.  Literals arrive in sorted
// order per state, so the per-state key slice stays sorted by
// construction.
func (b *dfaBuilder) addTransition(from, to int, sym Symbol) {
	s := &b.dfa.states[from]
	if sym.Any {
		s.wildcard = to
		return
	}
	s.keys = append(s.keys, sym.Char)
	s.dests = append(s.dests, to)
}

type stateStack []State

func (s stateStack) Push(v State) stateStack {
	return append(s, v)
}

func (s stateStack) Pop() (stateStack, State) {
	l := len(s)
	if l < 1 {
		return s, nil
	}
	return s[:l-1], s[l-1]
}
