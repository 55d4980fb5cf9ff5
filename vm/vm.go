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

package vm

// Instance represents an Intcode VM instance.
//
// An Instance is a resumable machine: Run returns control to the caller
// whenever the program asks for input that is not available, and a later
// Run call picks up exactly where execution stopped. PC and Mem are
// exported for callers that need to inspect or patch machine state
// between runs; the relative base is internal to execution.
type Instance struct {
	PC       Cell  // Program Counter (address of the next instruction)
	Mem      Image // Memory image
	relbase  Cell
	in       []Cell // pending input values, oldest first
	out      []Cell // produced output values, oldest first
	inH      InHandler
	outH     OutHandler
	insCount int64
	halted   bool
	err      error
}

// Option interface
type Option func(*Instance) error

// Input queues the given values for consumption by the program's input
// instructions. Values are consumed oldest first.
func Input(v ...Cell) Option {
	return func(i *Instance) error { i.in = append(i.in, v...); return nil }
}

// InHandler is the function prototype for custom input handlers. The
// handler returns the next input value, or false to make the VM suspend
// with AwaitingInput.
type InHandler func(i *Instance) (Cell, bool)

// OutHandler is the function prototype for custom output handlers. A
// non-nil error aborts the current Run call; the instruction that
// produced the value is retried on resume.
type OutHandler func(i *Instance, v Cell) error

// BindInHandler makes the VM request input values from the provided
// handler instead of the queue fed by the Input option and Run arguments.
//
// The handler is called once per input instruction, in lock-step with
// execution, and may inspect the instance (typically memory written by
// earlier output instructions, or external device state) before deciding
// on a value.
func BindInHandler(h InHandler) Option {
	return func(i *Instance) error { i.inH = h; return nil }
}

// BindOutHandler makes the VM deliver produced values to the provided
// handler instead of the internal output queue drained with Drain.
func BindOutHandler(h OutHandler) Option {
	return func(i *Instance) error { i.outH = h; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The image parameter is the Cell slice used as memory by the VM, usually
// obtained from Parse or Load. The instance takes ownership of the slice:
// programs rewrite their own memory, and the slice is reallocated when an
// access extends it. Use Image.Clone when the same program must be run
// more than once.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{Mem: image}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Drain removes and returns all queued output values, oldest first. It
// returns nil when no output is pending.
func (i *Instance) Drain() []Cell {
	out := i.out
	i.out = nil
	return out
}

// Pop removes and returns the oldest queued output value. It reports
// false when no output is pending.
func (i *Instance) Pop() (Cell, bool) {
	if len(i.out) == 0 {
		return 0, false
	}
	v := i.out[0]
	i.out = i.out[1:]
	return v, true
}

// Pending returns the number of queued output values.
func (i *Instance) Pending() int {
	return len(i.out)
}

// RelBase returns the current value of the relative base register.
func (i *Instance) RelBase() Cell {
	return i.relbase
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Peek returns the value at the given address, zero-extending memory if
// the address lies beyond its current size.
func (i *Instance) Peek(addr Cell) (Cell, error) {
	return i.get(addr)
}

// Poke stores v at the given address, zero-extending memory if the
// address lies beyond its current size. It is commonly used to patch low
// memory before a run.
func (i *Instance) Poke(addr, v Cell) error {
	return i.set(addr, v)
}
