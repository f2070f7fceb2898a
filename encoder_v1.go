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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/willf/bitset"
)

const versionV1 = 1

func init() {
	registerEncoder(versionV1, func(w io.Writer) encoder {
		return newEncoderV1(w)
	})
	registerDecoder(versionV1, func(data []byte) decoder {
		return newDecoderV1(data)
	})
}

// v1 layout, after the common header:
//
//	uvarint   number of states
//	per state:
//	  byte    flags (bit 0: accepting, bit 1: has wildcard transition)
//	  uvarint number of literal transitions
//	  per transition, in key order:
//	    uvarint code-point
//	    uvarint destination id
//	  uvarint wildcard destination id (only when flagged)
const (
	flagMatch    = 1 << 0
	flagWildcard = 1 << 1
)

type encoderV1 struct {
	bw      *bufio.Writer
	scratch [binary.MaxVarintLen64]byte
}

func newEncoderV1(w io.Writer) *encoderV1 {
	return &encoderV1{
		bw: bufio.NewWriter(w),
	}
}

func (e *encoderV1) encode(d *DFA) error {
	err := encodeHeader(versionV1, e.bw)
	if err != nil {
		return err
	}

	err = e.writeUvarint(uint64(len(d.states)))
	if err != nil {
		return err
	}

	for id := range d.states {
		s := &d.states[id]
		var flags byte
		if d.matching.Test(uint(id)) {
			flags |= flagMatch
		}
		if s.wildcard != noState {
			flags |= flagWildcard
		}
		err = e.bw.WriteByte(flags)
		if err != nil {
			return err
		}
		err = e.writeUvarint(uint64(len(s.keys)))
		if err != nil {
			return err
		}
		for i, r := range s.keys {
			err = e.writeUvarint(uint64(r))
			if err != nil {
				return err
			}
			err = e.writeUvarint(uint64(s.dests[i]))
			if err != nil {
				return err
			}
		}
		if s.wildcard != noState {
			err = e.writeUvarint(uint64(s.wildcard))
			if err != nil {
				return err
			}
		}
	}

	return e.bw.Flush()
}

func (e *encoderV1) writeUvarint(v uint64) error {
	n := binary.PutUvarint(e.scratch[:], v)
	_, err := e.bw.Write(e.scratch[:n])
	return err
}

type decoderV1 struct {
	data []byte
	pos  int
}

func newDecoderV1(data []byte) *decoderV1 {
	return &decoderV1{
		data: data,
	}
}

func (d *decoderV1) decode() (*DFA, error) {
	numStates, err := d.readUvarint()
	if err != nil {
		return nil, err
	}
	if numStates > StateLimit {
		return nil, ErrTooManyStates
	}

	rv := &DFA{
		states:   make([]dfaState, numStates),
		matching: bitset.New(uint(numStates)),
	}

	for id := uint64(0); id < numStates; id++ {
		if d.pos >= len(d.data) {
			return nil, fmt.Errorf("unexpected end of data in state %d", id)
		}
		flags := d.data[d.pos]
		d.pos++
		if flags&flagMatch != 0 {
			rv.matching.Set(uint(id))
		}

		numTrans, err := d.readUvarint()
		if err != nil {
			return nil, err
		}
		s := &rv.states[id]
		s.wildcard = noState
		for i := uint64(0); i < numTrans; i++ {
			key, err := d.readUvarint()
			if err != nil {
				return nil, err
			}
			dest, err := d.readUvarint()
			if err != nil {
				return nil, err
			}
			if dest >= numStates {
				return nil, fmt.Errorf("transition to unknown state %d", dest)
			}
			// Accept binary-searches keys, so the file must carry them
			// strictly ascending
			if len(s.keys) > 0 && rune(key) <= s.keys[len(s.keys)-1] {
				return nil, fmt.Errorf("transition keys out of order in state %d", id)
			}
			s.keys = append(s.keys, rune(key))
			s.dests = append(s.dests, int(dest))
		}
		if flags&flagWildcard != 0 {
			dest, err := d.readUvarint()
			if err != nil {
				return nil, err
			}
			if dest >= numStates {
				return nil, fmt.Errorf("wildcard transition to unknown state %d", dest)
			}
			s.wildcard = int(dest)
		}
	}

	return rv, nil
}

func (d *decoderV1) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("invalid uvarint at offset %d", d.pos)
	}
	d.pos += n
	return v, nil
}
