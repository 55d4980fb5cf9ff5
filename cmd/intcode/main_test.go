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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/icvm/intcode/lang/ascii"
	"github.com/icvm/intcode/vm"
)

// -noraw must not report a raw terminal, and there must be nothing to
// tear down, so that main never defers a nil function.
func TestSetupIO_noRaw(t *testing.T) {
	defer func(v bool) { noRawIO = v }(noRawIO)
	noRawIO = true
	raw, tearDown := setupIO()
	if raw {
		t.Error("expected cooked IO with -noraw")
	}
	if tearDown != nil {
		t.Error("expected no teardown function with -noraw")
	}
}

// -in values must be consumed before the console takes over in -ascii
// mode, where a bound input handler shadows the regular input queue.
func TestQueuedThen(t *testing.T) {
	// echo copies every input value to the output until input runs dry
	img, err := vm.Parse("3,7,4,7,1105,1,0")
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	i, err := vm.New(img,
		vm.BindInHandler(queuedThen([]vm.Cell{'>', ' '}, ascii.InputFrom(strings.NewReader("ok\n")))),
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
	if got := out.String(); got != "> ok\n" {
		t.Errorf("expected %q, got %q", "> ok\n", got)
	}
}
