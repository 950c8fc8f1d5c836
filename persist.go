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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// ----------------------------------------------------------------------------
// Network - text format (interchange)

// The text format is one value per line:
//
//	num_input
//	num_hidden
//	num_output
//	num_input_plus_hidden
//	total_neurons
//	<neuron kind, one per neuron, in index order>
//	total_connections
//	<source, target, weight, repeated per connection>
//
// Activation state (neuron outputs and input sums, connection data) is not
// part of the format; a decoded network always starts with zeroed state.

// WriteText encodes this network in the text format.
func (net *Network) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, net.NumInput)
	fmt.Fprintln(bw, net.NumHidden)
	fmt.Fprintln(bw, net.NumOutput)
	fmt.Fprintln(bw, net.NumInputPlusHidden)
	fmt.Fprintln(bw, net.TotalNeurons)

	for _, neuron := range net.Neurons {
		fmt.Fprintln(bw, int(neuron.Kind))
	}

	fmt.Fprintln(bw, len(net.Connections))
	for _, conn := range net.Connections {
		fmt.Fprintln(bw, conn.Source)
		fmt.Fprintln(bw, conn.Target)
		fmt.Fprintln(bw, conn.Weight)
	}

	return bw.Flush()
}

// ReadText decodes the text format from r, replacing this network's entire
// content on success. The decode is validated: layer counts must agree with
// the derived counts and every connection index must be in range. A failed
// decode leaves the receiver untouched.
func (net *Network) ReadText(r io.Reader) error {
	br := bufio.NewReader(r)
	var scratch Network

	_, err := fmt.Fscan(br,
		&scratch.NumInput,
		&scratch.NumHidden,
		&scratch.NumOutput,
		&scratch.NumInputPlusHidden,
		&scratch.TotalNeurons,
	)
	if err != nil {
		return fmt.Errorf("reading layer counts: %v", err)
	}
	if scratch.NumInput < 0 || scratch.NumHidden < 0 || scratch.NumOutput < 0 ||
		scratch.NumInputPlusHidden != scratch.NumInput+scratch.NumHidden ||
		scratch.TotalNeurons != scratch.NumInputPlusHidden+scratch.NumOutput {
		return fmt.Errorf("inconsistent layer counts %v/%v/%v (%v, %v)",
			scratch.NumInput, scratch.NumHidden, scratch.NumOutput,
			scratch.NumInputPlusHidden, scratch.TotalNeurons)
	}

	scratch.Neurons = make([]Neuron, scratch.TotalNeurons)
	for i := range scratch.Neurons {
		var kind int
		if _, err := fmt.Fscan(br, &kind); err != nil {
			return fmt.Errorf("reading kind of neuron %v: %v", i, err)
		}
		if kind < 0 || kind >= int(NumNeuronKind) {
			return fmt.Errorf("neuron %v has unknown kind %v", i, kind)
		}
		scratch.Neurons[i].Kind = NeuronKind(kind)
	}

	var count int
	if _, err := fmt.Fscan(br, &count); err != nil {
		return fmt.Errorf("reading connection count: %v", err)
	}
	if count < 0 {
		return fmt.Errorf("negative connection count %v", count)
	}
	scratch.Connections = make([]Connection, 0, count)
	for c := 0; c < count; c++ {
		var conn Connection
		if _, err := fmt.Fscan(br, &conn.Source, &conn.Target, &conn.Weight); err != nil {
			return fmt.Errorf("reading connection %v: %v", c, err)
		}
		if conn.Source < 0 || conn.Source >= scratch.TotalNeurons ||
			conn.Target < 0 || conn.Target >= scratch.TotalNeurons {
			return fmt.Errorf("connection %v (%v --> %v) out of range with %v neurons",
				c, conn.Source, conn.Target, scratch.TotalNeurons)
		}
		scratch.Connections = append(scratch.Connections, conn)
	}

	*net = scratch
	return nil
}

// Serialize writes this network to a file in the text format.
// Fails with an ErrFileWrite-wrapped error when the file cannot be
// created or written.
func (net *Network) Serialize(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	if err := net.WriteText(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v: %v", ErrFileWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	return nil
}

// Deserialize reads a file in the text format, replacing this network's
// entire content. Fails with an ErrFileRead-wrapped error when the file
// cannot be opened or does not decode; the network is untouched then.
func (net *Network) Deserialize(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	defer f.Close()
	if err := net.ReadText(f); err != nil {
		return fmt.Errorf("%w: %v: %v", ErrFileRead, path, err)
	}
	return nil
}

// NewNetworkFromFile loads one network from a text format file.
// Data in.
func NewNetworkFromFile(path string) (*Network, error) {
	net := &Network{}
	if err := net.Deserialize(path); err != nil {
		return nil, err
	}
	return net, nil
}

// ----------------------------------------------------------------------------
// Network - JSON snapshot (backup)

// Save dumps this network to a JSON file.
// Unlike the text format the snapshot carries the full runtime state,
// activation values included, so it suits debugging and backups rather
// than interchange.
func (net *Network) Save(path string) error {
	raw, err := json.Marshal(net)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrFileWrite, err)
	}
	return nil
}

// NewNetworkFromJSONFile loads one network snapshot from a JSON file.
// Data in.
func NewNetworkFromJSONFile(path string) (*Network, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileRead, err)
	}
	var net Network
	if err := json.Unmarshal(raw, &net); err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrFileRead, path, err)
	}
	return &net, nil
}
