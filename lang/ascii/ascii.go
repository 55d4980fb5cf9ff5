// This file is part of intcode - https://github.com/icvm/intcode
//
// Copyright 2019 The intcode Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ascii adapts Intcode I/O to byte streams.
//
// Character-oriented Intcode programs follow a simple convention: input
// and output values in 0..255 are bytes (lines end with 10), anything
// larger is a plain number, typically a final score or checksum emitted
// after the character traffic. This package provides codecs between Go
// strings and Cell slices, and handler constructors that hook an
// io.Reader and io.Writer up to a VM instance.
package ascii

import (
	"io"
	"strconv"

	"github.com/icvm/intcode/vm"
	"github.com/pkg/errors"
)

// Encode converts a string to the cell sequence a character-oriented
// program expects as input.
func Encode(s string) []vm.Cell {
	cells := make([]vm.Cell, len(s))
	for n := 0; n < len(s); n++ {
		cells[n] = vm.Cell(s[n])
	}
	return cells
}

// Decode renders an output cell sequence as text. Values in byte range
// come out as bytes; larger values as decimal numbers.
func Decode(cells []vm.Cell) string {
	var b []byte
	for _, v := range cells {
		if v >= 0 && v < 256 {
			b = append(b, byte(v))
		} else {
			b = strconv.AppendInt(b, int64(v), 10)
		}
	}
	return string(b)
}

// InputFrom returns an input handler that feeds the VM one byte per
// input instruction, reading the given sources in order. When a source
// is exhausted the next one takes over; when all are, the handler makes
// the VM suspend, so more traffic can be replayed into the machine by
// binding a fresh handler, or the caller can treat the suspension as
// end of session.
func InputFrom(rs ...io.Reader) vm.InHandler {
	var b [1]byte
	return func(*vm.Instance) (vm.Cell, bool) {
		for len(rs) > 0 {
			n, err := rs[0].Read(b[:1])
			if n > 0 {
				return vm.Cell(b[0]), true
			}
			if err == nil {
				continue
			}
			// discard the source and optionally close it
			if c, ok := rs[0].(io.Closer); ok {
				c.Close()
			}
			rs = rs[1:]
		}
		return 0, false
	}
}

// OutputTo returns an output handler that writes byte-range values as
// bytes and anything larger as decimal text to w.
func OutputTo(w io.Writer) vm.OutHandler {
	return func(_ *vm.Instance, v vm.Cell) error {
		var err error
		if v >= 0 && v < 256 {
			_, err = w.Write([]byte{byte(v)})
		} else {
			_, err = io.WriteString(w, strconv.FormatInt(int64(v), 10))
		}
		return errors.Wrap(err, "ascii output")
	}
}
