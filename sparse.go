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

import "fmt"

// sparseState tracks only the band of the distance vector still within
// budget.  positions holds strictly increasing term-prefix lengths and
// values the matching distances, each <= the automaton's distance.  An
// empty state is dead: nothing is reachable within budget anymore.
type sparseState struct {
	positions []int
	values    []uint
}

func (s *sparseState) key() string {
	return fmt.Sprintf("%v %v", s.positions, s.values)
}

// SparseAutomaton recognizes the same language as DenseAutomaton but
// its states cover only positions whose distance is within budget, so
// state size and Accept cost are O(distance) instead of O(len(term)).
type SparseAutomaton struct {
	term     Term
	distance uint
}

// NewSparse returns a sparse automaton matching all strings within the
// given edit distance of term.
func NewSparse(term string, distance int) (*SparseAutomaton, error) {
	if distance < 0 {
		return nil, ErrNegativeDistance
	}
	return &SparseAutomaton{
		term:     NewTerm(term),
		distance: uint(distance),
	}, nil
}

// Term returns the reference term.
func (a *SparseAutomaton) Term() Term {
	return a.term
}

// Distance returns the maximum edit distance recognized.
func (a *SparseAutomaton) Distance() int {
	return int(a.distance)
}

// Start returns the start state
func (a *SparseAutomaton) Start() State {
	// prefix lengths beyond the term itself carry no information
	width := int(a.distance) + 1
	if width > a.term.Len()+1 {
		width = a.term.Len() + 1
	}
	rv := &sparseState{
		positions: make([]int, width),
		values:    make([]uint, width),
	}
	for i := 0; i < width; i++ {
		rv.positions[i] = i
		rv.values[i] = uint(i)
	}
	return rv
}

// Accept returns the state resulting from consuming sym in state s.
// Candidates are generated in increasing position order, combining the
// substitution/match cost from the pair itself, the insertion cost from
// the entry just emitted, and the deletion cost from the next pair.
func (a *SparseAutomaton) Accept(s State, sym Symbol) State {
	state := s.(*sparseState)
	next := &sparseState{}
	if len(state.positions) > 0 && state.positions[0] == 0 &&
		state.values[0] < a.distance {
		next.positions = append(next.positions, 0)
		next.values = append(next.values, state.values[0]+1)
	}
	for j, i := range state.positions {
		if i == a.term.Len() {
			break
		}
		var cost uint
		if sym.Any || a.term.At(i) != sym.Char {
			cost = 1
		}
		val := state.values[j] + cost
		if n := len(next.positions); n > 0 && next.positions[n-1] == i {
			val = min(val, next.values[n-1]+1)
		}
		if j+1 < len(state.positions) && state.positions[j+1] == i+1 {
			val = min(val, state.values[j+1]+1)
		}
		if val <= a.distance {
			next.positions = append(next.positions, i+1)
			next.values = append(next.values, val)
		}
	}
	return next
}

// IsMatch returns true if and only if the distance to the full term is
// tracked, which implies it is within budget
func (a *SparseAutomaton) IsMatch(s State) bool {
	state := s.(*sparseState)
	return len(state.positions) > 0 &&
		state.positions[len(state.positions)-1] == a.term.Len()
}

// CanMatch returns true if and only if any position is still tracked
func (a *SparseAutomaton) CanMatch(s State) bool {
	state := s.(*sparseState)
	return len(state.positions) > 0
}

// Transitions returns the sorted distinct term code-points at the
// tracked positions
func (a *SparseAutomaton) Transitions(s State) []rune {
	state := s.(*sparseState)
	seen := make(map[rune]struct{}, len(state.positions))
	rv := make([]rune, 0, len(state.positions))
	for _, i := range state.positions {
		if i >= a.term.Len() {
			continue
		}
		r := a.term.At(i)
		if _, ok := seen[r]; !ok {
			seen[r] = struct{}{}
			rv = append(rv, r)
		}
	}
	sortRunes(rv)
	return rv
}
