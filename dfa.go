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
	"io"
	"os"
	"sort"

	mmap "github.com/blevesearch/mmap-go"
	"github.com/willf/bitset"
)

// noState marks the absence of a transition destination.
const noState = -1

// DFA is the deterministic automaton produced by exploring a
// Levenshtein automaton.  State ids are dense and insertion-ordered
// starting at 0, which is always the start state.  The DFA is partial:
// states from which matching is impossible are never materialized, and
// a missing transition means the input can be rejected outright.
type DFA struct {
	f        io.Closer
	ver      int
	states   []dfaState
	matching *bitset.BitSet
}

// dfaState holds the outgoing transitions of one state.  keys is
// sorted, dests is parallel to it, and wildcard is the destination for
// every code-point not present in keys (noState when absent).
type dfaState struct {
	keys     []rune
	dests    []int
	wildcard int
}

// Transition is one labeled edge of the DFA.
type Transition struct {
	From int
	To   int
	Sym  Symbol
}

// Start returns the id of the start state.
func (d *DFA) Start() int {
	return 0
}

// Len returns the number of states.
func (d *DFA) Len() int {
	return len(d.states)
}

// IsMatch returns true if the specified state id is accepting.
func (d *DFA) IsMatch(id int) bool {
	return id >= 0 && d.matching.Test(uint(id))
}

// MatchingIDs returns the accepting state ids in increasing order.
func (d *DFA) MatchingIDs() []int {
	rv := make([]int, 0, int(d.matching.Count()))
	for i, ok := d.matching.NextSet(0); ok; i, ok = d.matching.NextSet(i + 1) {
		rv = append(rv, int(i))
	}
	return rv
}

// Accept returns the state reached from id on the code-point r, or
// noState (-1) if the input is now guaranteed not to match.
func (d *DFA) Accept(id int, r rune) int {
	if id < 0 || id >= len(d.states) {
		return noState
	}
	s := &d.states[id]
	n := sort.Search(len(s.keys), func(i int) bool {
		return s.keys[i] >= r
	})
	if n < len(s.keys) && s.keys[n] == r {
		return s.dests[n]
	}
	return s.wildcard
}

// Match returns true if the input is within the edit distance the DFA
// was built for.
func (d *DFA) Match(input string) bool {
	id := d.Start()
	for _, r := range input {
		id = d.Accept(id, r)
		if id == noState {
			return false
		}
	}
	return d.IsMatch(id)
}

// Transitions returns every edge of the DFA as (from, to, symbol)
// triples, ordered by from id, then sorted literals, then the
// wildcard.
func (d *DFA) Transitions() []Transition {
	var rv []Transition
	for id := range d.states {
		s := &d.states[id]
		for i, r := range s.keys {
			rv = append(rv, Transition{From: id, To: s.dests[i], Sym: Literal(r)})
		}
		if s.wildcard != noState {
			rv = append(rv, Transition{From: id, To: s.wildcard, Sym: Wildcard()})
		}
	}
	return rv
}

// Version returns the encoding version used when this DFA was loaded
// from a file, or the current version for a freshly built one.
func (d *DFA) Version() int {
	if d.ver != 0 {
		return d.ver
	}
	return versionV1
}

// Save writes the DFA to the provided writer using the current
// encoding version.
func (d *DFA) Save(w io.Writer) error {
	enc, err := loadEncoder(versionV1, w)
	if err != nil {
		return err
	}
	return enc.encode(d)
}

// SaveFile writes the DFA to a new file at the provided path.
func (d *DFA) SaveFile(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return d.Save(file)
}

// Close will unmap any mmap'd data (if managed by levdfa) and it will
// close the backing file (if managed by levdfa).  You MUST call Close()
// for any DFA obtained from Open().
func (d *DFA) Close() error {
	if d.f != nil {
		err := d.f.Close()
		if err != nil {
			return err
		}
	}
	d.states = nil
	d.matching = nil
	return nil
}

// Iterator returns a new Iterator enumerating, in lexicographic order,
// the accepted strings composed of the term's own alphabet.
func (d *DFA) Iterator() (*Iterator, error) {
	return newIterator(d)
}

// Load decodes a DFA from its serialized form.
func Load(data []byte) (*DFA, error) {
	ver, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	dec, err := loadDecoder(ver, data[headerSize:])
	if err != nil {
		return nil, err
	}
	rv, err := dec.decode()
	if err != nil {
		return nil, err
	}
	rv.ver = ver
	return rv, nil
}

// Open loads the DFA file at the provided path, memory-mapping its
// contents.  The returned DFA holds the mapping until Close is called.
func Open(path string) (*DFA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	rv, err := Load(mm)
	if err != nil {
		_ = mm.Unmap()
		_ = f.Close()
		return nil, err
	}
	rv.f = &mmapCloser{f: f, mm: mm}
	return rv, nil
}

type mmapCloser struct {
	f  *os.File
	mm mmap.MMap
}

func (m *mmapCloser) Close() error {
	err := m.mm.Unmap()
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
