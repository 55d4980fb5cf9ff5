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

package vm_test

import (
	"testing"

	"github.com/icvm/intcode/vm"
	"github.com/pkg/errors"
)

type C []vm.Cell

func setup(t *testing.T, prog string, opts ...vm.Option) *vm.Instance {
	t.Helper()
	img, err := vm.Parse(prog)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	i, err := vm.New(img, opts...)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	return i
}

func assertEqual(t *testing.T, name, expected, got string) {
	t.Helper()
	if expected != got {
		t.Errorf("%v:\nExpected: %v\nGot: %v", name, expected, got)
	}
}

func assertCells(t *testing.T, name string, expected C, got []vm.Cell) {
	t.Helper()
	diff := len(expected) != len(got)
	if !diff {
		for n := range expected {
			if expected[n] != got[n] {
				diff = true
				break
			}
		}
	}
	if diff {
		t.Errorf("%v:\nExpected: %d\nGot: %d", name, expected, got)
	}
}

func TestRun_memoryTrace(t *testing.T) {
	tests := [...]struct {
		name string
		prog string
		mem  string
	}{
		{"add", "1,0,0,0,99", "2,0,0,0,99"},
		{"mul", "2,3,0,3,99", "2,3,0,6,99"},
		{"mul2", "2,4,4,5,99,0", "2,4,4,5,99,9801"},
		{"selfmod", "1,1,1,4,99,5,6,0,99", "30,1,1,4,2,5,6,0,99"},
		{"modes", "1002,4,3,4,33", "1002,4,3,4,99"},
		{"negative", "1101,100,-1,4,0", "1101,100,-1,4,99"},
	}
	for _, test := range tests {
		i := setup(t, test.prog)
		st, err := i.Run()
		if err != nil {
			t.Errorf("%s: %+v", test.name, err)
			continue
		}
		if st != vm.Halted {
			t.Errorf("%s: status %v, expected halted", test.name, st)
			continue
		}
		assertEqual(t, test.name, test.mem, i.Mem.String())
	}
}

func TestRun_quine(t *testing.T) {
	prog := "109,1,204,-1,1001,100,1,100,1008,100,16,101,1006,101,0,99"
	i := setup(t, prog)
	out, err := i.RunToHalt()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "quine", prog, vm.Image(out).String())
}

func TestRun_bigNumbers(t *testing.T) {
	out, _, err := vm.Exec("1102,34915192,34915192,7,4,7,99,0")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "16 digit product", C{1219070632396864}, out)

	out, _, err = vm.Exec("104,1125899906842624,99")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "16 digit literal", C{1125899906842624}, out)
}

func TestRun_suspendResume(t *testing.T) {
	// reads two values, outputs their sum
	prog := "3,11,3,12,1,11,12,13,4,13,99"

	// both values in one call
	one := setup(t, prog)
	out, err := one.RunToHalt(7, 5)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "single run", C{12}, out)

	// one value per call: pc, relbase and memory must survive suspension
	two := setup(t, prog)
	st, err := two.Run(7)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if st != vm.AwaitingInput {
		t.Fatalf("status %v, expected awaiting input", st)
	}
	if n := two.Pending(); n != 0 {
		t.Fatalf("unexpected output before second input: %d values", n)
	}
	st, err = two.Run(5)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if st != vm.Halted {
		t.Fatalf("status %v, expected halted", st)
	}
	assertCells(t, "split run", C{12}, two.Drain())
}

func TestRun_autoExtend(t *testing.T) {
	// writes beyond the initial program, then reads it back out
	i := setup(t, "1101,2,3,50,4,50,99")
	out, err := i.RunToHalt()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertCells(t, "extended write", C{5}, out)
	if len(i.Mem) < 51 {
		t.Errorf("memory not extended: %d cells", len(i.Mem))
	}

	// reading a never-written cell yields 0
	v, err := i.Peek(4242)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if v != 0 {
		t.Errorf("expected 0 at fresh cell, got %d", v)
	}
	if err = i.Poke(5000, -7); err != nil {
		t.Fatalf("%+v", err)
	}
	if v, _ = i.Peek(5000); v != -7 {
		t.Errorf("expected -7, got %d", v)
	}
}

func TestRun_faults(t *testing.T) {
	tests := [...]struct {
		name string
		prog string
		want error
	}{
		{"opcode 0", "0,0,0,99", vm.OpcodeError(0)},
		{"opcode 98", "98,0,0,99", vm.OpcodeError(98)},
		{"mode digit 3", "302,0,0,0,99", vm.ModeError{Word: 302, Param: 1}},
		{"third mode on add", "31101,0,0,0,99", vm.ModeError{Word: 31101, Param: 3}},
		{"negative read", "4,-1,99", vm.AddressError(-1)},
		{"negative jump", "1105,1,-5,99", vm.AddressError(-5)},
	}
	for _, test := range tests {
		i := setup(t, test.prog)
		_, err := i.Run()
		if err == nil {
			t.Errorf("%s: expected fault, got clean run", test.name)
			continue
		}
		if cause := errors.Cause(err); cause != test.want {
			t.Errorf("%s: expected %v, got %v", test.name, test.want, cause)
		}
		// the fault is latched
		_, again := i.Run()
		if again == nil || errors.Cause(again) != test.want {
			t.Errorf("%s: fault not latched: %v", test.name, again)
		}
	}
}

func TestRun_immediateWriteTarget(t *testing.T) {
	// an immediate-mode write parameter is treated as a plain address
	i := setup(t, "103,5,99,0,0,0")
	if _, err := i.Run(7); err != nil {
		t.Fatalf("%+v", err)
	}
	if v, _ := i.Peek(5); v != 7 {
		t.Errorf("expected 7 at cell 5, got %d", v)
	}
}

func TestRun_parseFaults(t *testing.T) {
	for _, src := range []string{"", "1,0,x,0,99", "1,0,,0", "1, 2,3"} {
		if _, err := vm.Parse(src); err == nil {
			t.Errorf("Parse(%q): expected error", src)
		}
	}
}

func TestRun_emptyImage(t *testing.T) {
	i, err := vm.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	st, err := i.Run()
	if err != nil || st != vm.Halted {
		t.Fatalf("expected clean halt, got %v, %v", st, err)
	}
}

func TestRun_haltedIdempotent(t *testing.T) {
	i := setup(t, "104,1,99")
	if _, err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	st, err := i.Run()
	if err != nil || st != vm.Halted {
		t.Fatalf("expected repeat halt, got %v, %v", st, err)
	}
	assertCells(t, "single output", C{1}, i.Drain())
}

func TestRunToHalt_inputExhausted(t *testing.T) {
	i := setup(t, "3,3,99,0")
	_, err := i.RunToHalt()
	if errors.Cause(err) != vm.ErrNoInput {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestRelBase(t *testing.T) {
	i := setup(t, "109,19,109,-12,99")
	if _, err := i.Run(); err != nil {
		t.Fatalf("%+v", err)
	}
	if rb := i.RelBase(); rb != 7 {
		t.Errorf("expected relative base 7, got %d", rb)
	}
}
