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

package ffann // white box

import (
	"reflect"
	"strings"
	"testing"
)

// ----------------------------------------------------------------------------
// diagnostic rendering

func TestStreamFormat(t *testing.T) {
	net, err := NewNetwork([]int{1, 1}, []int{0}, []int{1}, []float64{2.5})
	if err != nil {
		t.Fatal(err)
	}
	want := "Total number of neurons : 2\n" +
		"Number of input neurons : 1\n" +
		"Number of hidden neurons: 0\n" +
		"Number of output neurons: 1\n" +
		"0 1 \n" +
		"Total number of connections: 1\n" +
		"0 --> 1 : 2.5\n"
	if got := net.String(); got != want {
		t.Errorf("diagnostic format drifted:\n%q\nwant:\n%q", got, want)
	}
}

func TestConnectedNeuronIndices(t *testing.T) {
	net, err := NewNetwork([]int{2, 2}, []int{0, 0, 1}, []int{2, 3, 2}, []float64{1, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	if got := net.ConnectedNeuronIndices(); !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Error("connected indices:", got)
	}

	sparse, err := NewNetwork([]int{2, 2}, []int{0}, []int{2}, []float64{1})
	if err != nil {
		t.Fatal(err)
	}
	if got := sparse.ConnectedNeuronIndices(); !reflect.DeepEqual(got, []int{0, 2}) {
		t.Error("connected indices:", got)
	}

	empty, err := NewNetwork([]int{1, 1}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := empty.ConnectedNeuronIndices(); len(got) != 0 {
		t.Error("connected indices of a connectionless network:", got)
	}
}

func TestTable(t *testing.T) {
	net, err := NewNetwork([]int{2, 3, 1}, nil, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := net.FullyConnectFeedforward(); err != nil {
		t.Fatal(err)
	}
	table := net.Table()
	for _, want := range []string{"Neurons", "Connected", "Isolated", "Source", "Target", "Weight"} {
		if !strings.Contains(table, want) {
			t.Error("table misses column", want)
		}
	}
	if lines := strings.Count(table, "\n"); lines < 9+2 { // a row per connection at least
		t.Error("table too short:", lines, "lines")
	}
}

func TestNeuronKindString(t *testing.T) {
	for kind, want := range map[NeuronKind]string{
		Input:         "input",
		Output:        "output",
		Hidden:        "hidden",
		NumNeuronKind: "unknown",
	} {
		if kind.String() != want {
			t.Error(kind.String(), "want", want)
		}
	}
}
