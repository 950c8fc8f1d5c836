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

// Command ffannviewer prints serialized ffann networks as console tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/robogrid/ffann"
)

func main() {
	flag.Usage = func() {
		println("Usage: ffannviewer [flags] [target1] [target2] ...\n")

		println("Flags:\n")
		flag.PrintDefaults()
		println()

		println("Targets:\n")
		for _, m := range []struct{ name, desc string }{
			{"target1", "(mandatory) filepath to a serialized network you want to view"},
			{"target2", "(optional) more networks to view, any number of them"},
		} {
			fmt.Printf("  %v%v%v\n", m.name, strings.Repeat(" ", 12-len(m.name)), m.desc)
		}
		println()

		os.Exit(0)
	}
	pbShort := flag.Bool("short", false, "Omit per-connection rows if given.")
	pbJSON := flag.Bool("json", false, "Read targets as JSON snapshots instead of the text format.")
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	for _, target := range flag.Args() {
		var net *ffann.Network
		var err error
		if *pbJSON {
			net, err = ffann.NewNetworkFromJSONFile(target)
		} else {
			net, err = ffann.NewNetworkFromFile(target)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load network. Reason:", err)
			os.Exit(1)
		}

		fmt.Println(target)
		if *pbShort {
			fmt.Println(shortTable(net))
		} else {
			fmt.Println(net.Table())
		}
	}
}

// shortTable keeps the layer counts row only.
func shortTable(net *ffann.Network) string {
	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = false
	table.AddRow("Neurons", "Input", "Hidden", "Output", "Connections")
	table.AddRow(net.TotalNeurons, net.NumInput, net.NumHidden, net.NumOutput, len(net.Connections))
	return table.String()
}
