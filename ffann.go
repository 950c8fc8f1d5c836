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
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ----------------------------------------------------------------------------
// Package

// Process-wide source backing the no-argument randomizers.
// Pass your own rand.Source to RandomizeWeightsRand() when you need
// reproducible weights instead.
var globalSrc rand.Source

// Initialization of this package.
func init() {
	globalSrc = rand.NewSource(uint64(time.Now().UTC().UnixNano()))
}

// ----------------------------------------------------------------------------
// Errors

// Errors this package returns. All fallible operations leave the network
// untouched when they fail, so these are recoverable by the caller.
var (
	ErrInvalidTopology           = errors.New("ffann: invalid network topology")
	ErrMismatchedConnectionLists = errors.New("ffann: source/target/weight lists must have the same length")
	ErrIndexOutOfRange           = errors.New("ffann: neuron index out of range")
	ErrInvalidRange              = errors.New("ffann: min must be less than max")
	ErrInputSizeMismatch         = errors.New("ffann: input size does not match the number of input neurons")
	ErrOutputSizeMismatch        = errors.New("ffann: output size does not match the number of output neurons")
	ErrFileWrite                 = errors.New("ffann: file could not be written")
	ErrFileRead                  = errors.New("ffann: file could not be read")
)

// ----------------------------------------------------------------------------
// Neuron

// NeuronKind tells the role of a neuron, which is determined purely by the
// neuron's position in its network's neuron sequence.
// The integer values here are what the text format of Serialize() persists;
// their order is frozen for file compatibility and must not be rearranged.
type NeuronKind int

// Input, Output, and Hidden of NeuronKind.
const (
	Input NeuronKind = iota
	Output
	Hidden
	NumNeuronKind
)

func (kind NeuronKind) String() string {
	switch kind {
	case Input:
		return "input"
	case Output:
		return "output"
	case Hidden:
		return "hidden"
	}
	return "unknown"
}

// Neuron is a single computational unit of a Network.
//
// InputSum accumulates weighted incoming signals during the first stage of
// an activation pass and is reset to zero by the second stage.
// Output holds the last activation value computed for this neuron, or, for
// input neurons, the value supplied through SetInput().
type Neuron struct {
	Kind     NeuronKind
	InputSum float64
	Output   float64
}

func (neuron Neuron) String() string {
	return fmt.Sprintf("Neuron(%v: sum %v, out %v)", neuron.Kind, neuron.InputSum, neuron.Output)
}

// ----------------------------------------------------------------------------
// Connection

// Connection is a weighted directed edge between two neurons,
// both addressed by their indices into the owning network's neuron sequence.
// Data keeps the signal transmitted over this connection during the last
// activation pass (weight * source output); it is informational only.
type Connection struct {
	Source int
	Target int
	Weight float64
	Data   float64
}

func (conn Connection) String() string {
	return fmt.Sprintf("%v --> %v : %v", conn.Source, conn.Target, conn.Weight)
}

// ----------------------------------------------------------------------------
// Network

// Network is a fixed-topology feedforward neural network owning all of its
// neurons and connections.
//
// The neuron sequence is laid out by role and every indexed operation
// depends on that layout:
//  - input neurons  : [0, NumInput)
//  - hidden neurons : [NumInput, NumInputPlusHidden)
//  - output neurons : [NumInputPlusHidden, TotalNeurons)
//
// Fields are exported for persistence; use the constructors and methods
// rather than mutating them directly, as nothing re-derives the cached
// counts for you. A Network is not safe for concurrent use.
type Network struct {
	NumInput           int
	NumHidden          int
	NumOutput          int
	NumInputPlusHidden int
	TotalNeurons       int

	Neurons     []Neuron
	Connections []Connection
}

// NewNetwork creates a network from an explicit topology.
//
// layerSizes must hold 2 or 3 non-negative counts:
//   - [numInput, numOutput]
//   - [numInput, numHidden, numOutput]
//
// sources, targets and weights describe one connection per index and must
// have equal lengths; empty lists yield a network with neurons only.
// Every index must lie in [0, total neurons).
func NewNetwork(layerSizes []int, sources, targets []int, weights []float64) (*Network, error) {
	if len(layerSizes) != 2 && len(layerSizes) != 3 {
		return nil, fmt.Errorf("%w: want 2 or 3 layer sizes, got %v", ErrInvalidTopology, len(layerSizes))
	}
	for _, size := range layerSizes {
		if size < 0 {
			return nil, fmt.Errorf("%w: negative layer size %v", ErrInvalidTopology, size)
		}
	}
	if len(sources) != len(targets) || len(sources) != len(weights) {
		return nil, fmt.Errorf("%w: %v sources, %v targets, %v weights",
			ErrMismatchedConnectionLists, len(sources), len(targets), len(weights))
	}

	numInput := layerSizes[0]
	numHidden := 0
	numOutput := layerSizes[1]
	if len(layerSizes) == 3 {
		numHidden = layerSizes[1]
		numOutput = layerSizes[2]
	}
	net := &Network{
		NumInput:           numInput,
		NumHidden:          numHidden,
		NumOutput:          numOutput,
		NumInputPlusHidden: numInput + numHidden,
		TotalNeurons:       numInput + numHidden + numOutput,
	}

	net.Neurons = make([]Neuron, net.TotalNeurons)
	for i := range net.Neurons {
		net.Neurons[i].Kind = net.kindAt(i)
	}

	net.Connections = make([]Connection, 0, len(sources))
	for c := range sources {
		if sources[c] < 0 || sources[c] >= net.TotalNeurons ||
			targets[c] < 0 || targets[c] >= net.TotalNeurons {
			return nil, fmt.Errorf("%w: connection %v (%v --> %v) with %v neurons",
				ErrIndexOutOfRange, c, sources[c], targets[c], net.TotalNeurons)
		}
		net.Connections = append(net.Connections, Connection{
			Source: sources[c],
			Target: targets[c],
			Weight: weights[c],
		})
	}
	return net, nil
}

// kindAt maps a neuron index to its role under the fixed layout.
func (net *Network) kindAt(i int) NeuronKind {
	switch {
	case i < net.NumInput:
		return Input
	case i < net.NumInputPlusHidden:
		return Hidden
	default:
		return Output
	}
}

// InputNeurons returns the input-layer slice of the neuron sequence.
// The slice aliases the network's own storage.
func (net *Network) InputNeurons() []Neuron {
	return net.Neurons[:net.NumInput]
}

// HiddenNeurons returns the hidden-layer slice of the neuron sequence.
// The slice aliases the network's own storage.
func (net *Network) HiddenNeurons() []Neuron {
	return net.Neurons[net.NumInput:net.NumInputPlusHidden]
}

// OutputNeurons returns the output-layer slice of the neuron sequence.
// The slice aliases the network's own storage.
func (net *Network) OutputNeurons() []Neuron {
	return net.Neurons[net.NumInputPlusHidden:]
}

// ----------------------------------------------------------------------------
// Network - topology initialization

// FullyConnectFeedforward replaces this network's connections with a fully
// connected feedforward wiring: every input neuron to every hidden neuron,
// then every hidden neuron to every output neuron, all with weight 0.
// The resulting connection count is NumHidden * (NumInput + NumOutput).
//
// A network without a hidden layer is rejected with ErrInvalidTopology;
// wire 2-layer networks with explicit connection lists through NewNetwork()
// instead. On success any previously held connections are discarded,
// never merged.
func (net *Network) FullyConnectFeedforward() error {
	if net.NumHidden == 0 {
		return fmt.Errorf("%w: fully connecting requires a hidden layer", ErrInvalidTopology)
	}
	net.Connections = make([]Connection, 0, net.NumHidden*(net.NumInput+net.NumOutput))
	for i := 0; i < net.NumInput; i++ {
		for h := net.NumInput; h < net.NumInputPlusHidden; h++ {
			net.Connections = append(net.Connections, Connection{Source: i, Target: h})
		}
	}
	for h := net.NumInput; h < net.NumInputPlusHidden; h++ {
		for o := net.NumInputPlusHidden; o < net.TotalNeurons; o++ {
			net.Connections = append(net.Connections, Connection{Source: h, Target: o})
		}
	}
	return nil
}

// ----------------------------------------------------------------------------
// Network - weight randomization

// RandomizeWeightsRand draws a new weight for every connection uniformly
// from [min, max) using the given source. A nil src falls back to the
// shared source of the exp/rand package.
// Fails with ErrInvalidRange when min >= max, leaving all weights as they were.
func (net *Network) RandomizeWeightsRand(min, max float64, src rand.Source) error {
	if min >= max {
		return fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, min, max)
	}
	dist := distuv.Uniform{Min: min, Max: max, Src: src}
	for c := range net.Connections {
		net.Connections[c].Weight = dist.Rand()
	}
	return nil
}

// RandomizeWeights draws a new weight for every connection uniformly from
// [min, max) using this package's process-wide source.
func (net *Network) RandomizeWeights(min, max float64) error {
	return net.RandomizeWeightsRand(min, max, globalSrc)
}

// Randomize draws new weights from the default range [-1, 1).
func (net *Network) Randomize() error {
	return net.RandomizeWeights(-1, 1)
}

// ----------------------------------------------------------------------------
// Network - inputs & outputs

// SetInput copies values into the outputs of the input-layer neurons in order.
// Fails with ErrInputSizeMismatch when len(values) != NumInput;
// no neuron is modified on failure.
func (net *Network) SetInput(values []float64) error {
	if len(values) != net.NumInput {
		return fmt.Errorf("%w: got %v values for %v input neurons",
			ErrInputSizeMismatch, len(values), net.NumInput)
	}
	for i, v := range values {
		net.Neurons[i].Output = v
	}
	return nil
}

// GetOutput returns the outputs of the output-layer neurons in index order,
// as a freshly allocated slice.
func (net *Network) GetOutput() []float64 {
	out := make([]float64, 0, net.NumOutput)
	for i := net.NumInputPlusHidden; i < net.TotalNeurons; i++ {
		out = append(out, net.Neurons[i].Output)
	}
	return out
}

// CopyOutput copies the outputs of the output-layer neurons into dst.
// This is the buffer form the opaque-handle boundary uses; dst must have
// exactly NumOutput elements or the call fails with ErrOutputSizeMismatch.
func (net *Network) CopyOutput(dst []float64) error {
	if len(dst) != net.NumOutput {
		return fmt.Errorf("%w: got a buffer of %v for %v output neurons",
			ErrOutputSizeMismatch, len(dst), net.NumOutput)
	}
	for i := range dst {
		dst[i] = net.Neurons[net.NumInputPlusHidden+i].Output
	}
	return nil
}

// ----------------------------------------------------------------------------
// Network - activation

// Sigmoid is the activation function of all hidden and output neurons:
// the logistic curve 1/(1+e^-x), clamped to exactly 0 at x <= -15 and
// exactly 1 at x >= +15 so the exponential never overflows.
func Sigmoid(x float64) float64 {
	if x <= -15 {
		return 0.0
	}
	if x >= 15 {
		return 1.0
	}
	return 1.0 / (1.0 + math.Exp(-x))
}

// Activate runs a single synchronous forward pass over the whole network,
// in two stages:
//
// First every connection, in list order, transmits
// Data = Weight * source Output and adds it to its target's InputSum.
// Then every non-input neuron sets Output = Sigmoid(InputSum) and resets
// InputSum to zero. Input neurons keep whatever SetInput() gave them.
//
// One call moves signals exactly one connection hop. There is no layer
// ordering or cycle detection here: topologies that need several hops
// from input to output need that many calls, and graphs that feed back
// into earlier neurons are propagated as-is, a sweep at a time.
func (net *Network) Activate() {
	for c := range net.Connections {
		conn := &net.Connections[c]
		conn.Data = conn.Weight * net.Neurons[conn.Source].Output
		net.Neurons[conn.Target].InputSum += conn.Data
	}
	for i := net.NumInput; i < net.TotalNeurons; i++ {
		net.Neurons[i].Output = Sigmoid(net.Neurons[i].InputSum)
		net.Neurons[i].InputSum = 0
	}
}
