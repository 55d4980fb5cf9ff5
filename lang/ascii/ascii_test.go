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

package ascii_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/icvm/intcode/lang/ascii"
	"github.com/icvm/intcode/vm"
)

// echo copies every input value to the output until input runs dry.
const echo = "3,7,4,7,1105,1,0"

func TestEncodeDecode(t *testing.T) {
	cells := ascii.Encode("ok\n")
	want := []vm.Cell{111, 107, 10}
	if len(cells) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(cells))
	}
	for n := range want {
		if cells[n] != want[n] {
			t.Fatalf("cell %d: expected %d, got %d", n, want[n], cells[n])
		}
	}
	if s := ascii.Decode(cells); s != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", s)
	}
	// a large value decodes as a number
	if s := ascii.Decode([]vm.Cell{'=', 1125899906842624, '\n'}); s != "=1125899906842624\n" {
		t.Errorf("got %q", s)
	}
}

func TestInputOutput(t *testing.T) {
	img, err := vm.Parse(echo)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	i, err := vm.New(img,
		vm.BindInHandler(ascii.InputFrom(strings.NewReader("hello, "), strings.NewReader("world\n"))),
		vm.BindOutHandler(ascii.OutputTo(&out)))
	if err != nil {
		t.Fatal(err)
	}
	st, err := i.Run()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if st != vm.AwaitingInput {
		t.Fatalf("status %v, expected awaiting input at end of input", st)
	}
	if got := out.String(); got != "hello, world\n" {
		t.Errorf("expected %q, got %q", "hello, world\n", got)
	}
}

func TestOutputTo_largeValues(t *testing.T) {
	var out bytes.Buffer
	// emits '=' then a score beyond byte range
	img, err := vm.Parse("104,61,104,31415926,99")
	if err != nil {
		t.Fatal(err)
	}
	i, err := vm.New(img, vm.BindOutHandler(ascii.OutputTo(&out)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err = i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if got := out.String(); got != "=31415926" {
		t.Errorf("expected %q, got %q", "=31415926", got)
	}
}
