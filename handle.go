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
	"os"
	"sync"

	"github.com/gofrs/uuid"
)

// ----------------------------------------------------------------------------
// Arena (opaque-handle boundary)

// Handle identifies a network held by an Arena without exposing it.
type Handle = uuid.UUID

// ErrUnknownHandle is returned when a handle does not (or no longer does)
// name a network in the arena it was given to.
var ErrUnknownHandle = errors.New("ffann: unknown network handle")

// Arena owns a set of networks addressed by opaque handles,
// for foreign callers that cannot hold a *Network themselves.
// Every operation of the core is mirrored here against a handle.
//
// The mutex guards the registry map only. The networks inside stay
// single-threaded: concurrent calls against the same handle must still be
// serialized by the caller.
type Arena struct {
	Nets      map[Handle]*Network
	MutexNets sync.Mutex
}

// NewArena is a constructor.
func NewArena() *Arena {
	return &Arena{
		Nets:      map[Handle]*Network{},
		MutexNets: sync.Mutex{},
	}
}

// register files a network under a fresh handle. Caller locks.
func (arena *Arena) register(net *Network) Handle {
	h := uuid.Must(uuid.NewV4())
	arena.Nets[h] = net
	return h
}

// Create constructs a network from an explicit topology, as NewNetwork()
// does, and files it under a fresh handle.
func (arena *Arena) Create(layerSizes []int, sources, targets []int, weights []float64) (Handle, error) {
	net, err := NewNetwork(layerSizes, sources, targets, weights)
	if err != nil {
		return uuid.Nil, err
	}
	arena.MutexNets.Lock()
	defer arena.MutexNets.Unlock()
	return arena.register(net), nil
}

// CreateFromFile constructs a network from a text format file and files it
// under a fresh handle.
func (arena *Arena) CreateFromFile(path string) (Handle, error) {
	net, err := NewNetworkFromFile(path)
	if err != nil {
		return uuid.Nil, err
	}
	arena.MutexNets.Lock()
	defer arena.MutexNets.Unlock()
	return arena.register(net), nil
}

// Destroy removes the network a handle names. The handle is dead afterwards.
func (arena *Arena) Destroy(h Handle) error {
	arena.MutexNets.Lock()
	defer arena.MutexNets.Unlock()
	if _, ok := arena.Nets[h]; !ok {
		return ErrUnknownHandle
	}
	delete(arena.Nets, h)
	return nil
}

// Network resolves a handle to the network it names.
func (arena *Arena) Network(h Handle) (*Network, error) {
	arena.MutexNets.Lock()
	defer arena.MutexNets.Unlock()
	net, ok := arena.Nets[h]
	if !ok {
		return nil, ErrUnknownHandle
	}
	return net, nil
}

// Len returns the number of networks this arena holds.
func (arena *Arena) Len() int {
	arena.MutexNets.Lock()
	defer arena.MutexNets.Unlock()
	return len(arena.Nets)
}

// ----------------------------------------------------------------------------
// Arena - operations against a handle

// FullyConnect wires the named network fully connected feedforward.
func (arena *Arena) FullyConnect(h Handle) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	return net.FullyConnectFeedforward()
}

// RandomizeWeights redraws the named network's weights from [min, max).
func (arena *Arena) RandomizeWeights(h Handle, min, max float64) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	return net.RandomizeWeights(min, max)
}

// SetInput feeds input values to the named network.
func (arena *Arena) SetInput(h Handle, values []float64) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	return net.SetInput(values)
}

// GetOutput copies the named network's output values into dst,
// which must have exactly as many elements as the network has output neurons.
func (arena *Arena) GetOutput(h Handle, dst []float64) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	return net.CopyOutput(dst)
}

// Activate runs one forward pass of the named network.
func (arena *Arena) Activate(h Handle) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	net.Activate()
	return nil
}

// Serialize writes the named network to a text format file.
func (arena *Arena) Serialize(h Handle, path string) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	return net.Serialize(path)
}

// Deserialize replaces the named network's content from a text format file.
// The handle keeps naming the network.
func (arena *Arena) Deserialize(h Handle, path string) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	return net.Deserialize(path)
}

// Print streams the named network's diagnostic summary to standard out.
func (arena *Arena) Print(h Handle) error {
	net, err := arena.Network(h)
	if err != nil {
		return err
	}
	net.Stream(os.Stdout)
	return nil
}
