/*
MIT License

Copyright (c) 2019 문동선 (NaniteFactory)

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

package ffann

import (
	"fmt"
	"io"
	"strings"

	"github.com/campoy/unique"
	"github.com/gosuri/uitable"
)

// ----------------------------------------------------------------------------
// Network - diagnostic rendering

// Stream writes a human-readable multi-line summary of this network:
// neuron counts by role, the kind of every neuron on one line, the
// connection count, and one `source --> target : weight` line per
// connection. Diagnostic only; it does not round-trip.
func (net *Network) Stream(w io.Writer) {
	fmt.Fprintln(w, "Total number of neurons :", net.TotalNeurons)
	fmt.Fprintln(w, "Number of input neurons :", net.NumInput)
	fmt.Fprintln(w, "Number of hidden neurons:", net.NumHidden)
	fmt.Fprintln(w, "Number of output neurons:", net.NumOutput)

	for _, neuron := range net.Neurons {
		fmt.Fprint(w, int(neuron.Kind), " ")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Total number of connections:", len(net.Connections))
	for _, conn := range net.Connections {
		fmt.Fprintln(w, conn.Source, "-->", conn.Target, ":", conn.Weight)
	}
}

func (net *Network) String() string {
	var sb strings.Builder
	net.Stream(&sb)
	return sb.String()
}

// ConnectedNeuronIndices returns the sorted indices of all neurons that
// appear as an endpoint of at least one connection, each index once.
func (net *Network) ConnectedNeuronIndices() []int {
	indices := make([]int, 0, 2*len(net.Connections))
	for _, conn := range net.Connections {
		indices = append(indices, conn.Source, conn.Target)
	}
	unique.Slice(&indices, func(i, j int) bool { return indices[i] < indices[j] })
	return indices
}

// Table renders this network as console tables, one row of layer counts
// and one row per connection.
func (net *Network) Table() string {
	// tableNeurons
	tableNeurons := uitable.New()
	tableNeurons.MaxColWidth = 40
	tableNeurons.Wrap = false
	tableNeurons.AddRow("Neurons", "Input", "Hidden", "Output", "Connected", "Isolated")
	connected := len(net.ConnectedNeuronIndices())
	tableNeurons.AddRow(
		net.TotalNeurons, net.NumInput, net.NumHidden, net.NumOutput,
		connected, net.TotalNeurons-connected,
	)
	// tableConns
	tableConns := uitable.New()
	tableConns.MaxColWidth = 40
	tableConns.Wrap = false
	tableConns.AddRow("Connection", "Source", "Target", "Weight", "Data")
	for c, conn := range net.Connections {
		tableConns.AddRow(c, conn.Source, conn.Target, conn.Weight, conn.Data)
	}
	return tableNeurons.String() + "\n\n" + tableConns.String() + "\n"
}
