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
	"bytes"
	"fmt"
	"io"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportDot will export the contents of the provided DFA into the
// GraphViz (dot) file format.  Accepting states are drawn as double
// circles and wildcard edges are labeled "*".
func ExportDot(d *DFA, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	for id := range d.states {
		err = exportStateDot(d, id, bw)
		if err != nil {
			return err
		}
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}

func exportStateDot(d *DFA, id int, bw *bufio.Writer) error {
	s := &d.states[id]

	var buf bytes.Buffer
	if d.IsMatch(id) {
		_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", id))
	}
	for i, r := range s.keys {
		_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%s\"]\n", id, s.dests[i], string(r)))
	}
	if s.wildcard != noState {
		_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"*\"]\n", id, s.wildcard))
	}
	_, _ = buf.WriteString("\n\n")

	_, err := bw.Write(buf.Bytes())
	return err
}
