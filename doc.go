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

/*
Package ffann is a minimal feedforward artificial-neural-network evaluator:
a fixed topology of input/hidden/output neurons connected by weighted
directed edges, activated by synchronous forward sweeps and persisted to a
flat one-value-per-line text format.

Notes:
 - Struct members are public mostly for the sake of persistence. Prefer the constructors (func New~) and methods over touching fields directly; nothing re-derives the cached neuron counts for you.
 - Nothing here trains. Weights come from a caller, a serialized file, or the uniform randomizers.
 - A Network runs single-threaded. Share one across goroutines only with your own serialization, or hand foreign callers an Arena of opaque handles instead.
*/
package ffann
