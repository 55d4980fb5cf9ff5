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

import "github.com/pkg/errors"

// Status is the outcome of a Run call.
type Status int

const (
	// Halted means the program executed an explicit stop instruction.
	// Further Run calls on a halted instance return Halted immediately.
	Halted Status = iota
	// AwaitingInput means execution stopped at an input instruction
	// because no value was available. The instruction has not been
	// executed; a later Run call with more input resumes it.
	AwaitingInput
)

func (s Status) String() string {
	if s == Halted {
		return "halted"
	}
	return "awaiting input"
}

func (i *Instance) get(addr Cell) (Cell, error) {
	if addr < 0 {
		return 0, AddressError(addr)
	}
	if addr >= Cell(len(i.Mem)) {
		i.grow(addr)
	}
	return i.Mem[addr], nil
}

func (i *Instance) set(addr, v Cell) error {
	if addr < 0 {
		return AddressError(addr)
	}
	if addr >= Cell(len(i.Mem)) {
		i.grow(addr)
	}
	i.Mem[addr] = v
	return nil
}

// grow zero-extends memory up to and including addr.
func (i *Instance) grow(addr Cell) {
	i.Mem = append(i.Mem, make(Image, int(addr)+1-len(i.Mem))...)
}

// arg resolves the k-th parameter (1-based) of the instruction at PC in
// read role: Position and Relative dereference, Immediate is the literal.
func (i *Instance) arg(k int, m Mode) (Cell, error) {
	v, err := i.get(i.PC + Cell(k))
	if err != nil {
		return 0, err
	}
	switch m {
	case Immediate:
		return v, nil
	case Relative:
		return i.get(i.relbase + v)
	default:
		return i.get(v)
	}
}

// dst resolves the k-th parameter in write role: the literal is the
// target address, offset by the relative base in Relative mode. Write
// targets are never dereferenced a second time.
func (i *Instance) dst(k int, m Mode) (Cell, error) {
	v, err := i.get(i.PC + Cell(k))
	if err != nil {
		return 0, err
	}
	if m == Relative {
		v += i.relbase
	}
	if v < 0 {
		return 0, AddressError(v)
	}
	return v, nil
}

func (i *Instance) nextInput() (Cell, bool) {
	if i.inH != nil {
		return i.inH(i)
	}
	if len(i.in) == 0 {
		return 0, false
	}
	v := i.in[0]
	i.in = i.in[1:]
	return v, true
}

func (i *Instance) emit(v Cell) error {
	if i.outH != nil {
		return i.outH(i, v)
	}
	i.out = append(i.out, v)
	return nil
}

func (i *Instance) fault(err error) (Status, error) {
	i.err = errors.Wrapf(err, "pc=%d", i.PC)
	return Halted, i.err
}

// Run resumes execution of the VM. The given values are appended to the
// pending input queue before the first instruction executes.
//
// Run returns Halted when the program executes a stop instruction, and
// AwaitingInput when an input instruction finds both the queue and the
// bound input handler (if any) empty-handed; in the latter case the
// machine state is intact and Run may be called again with more input.
//
// A decode or addressing fault aborts the run with a non-nil error. The
// error is latched: the instance is no longer runnable and every further
// Run call returns the same error. No instruction budget is imposed; a
// non-terminating program keeps Run from returning.
func (i *Instance) Run(in ...Cell) (Status, error) {
	if i.err != nil {
		return Halted, i.err
	}
	i.in = append(i.in, in...)
	if i.halted || len(i.Mem) == 0 {
		return Halted, nil
	}
	for {
		w, err := i.get(i.PC)
		if err != nil {
			return i.fault(err)
		}
		op, err := Decode(w)
		if err != nil {
			return i.fault(err)
		}
		switch op.Code {
		case OpAdd, OpMul:
			lhs, err := i.arg(1, op.Modes[0])
			if err != nil {
				return i.fault(err)
			}
			rhs, err := i.arg(2, op.Modes[1])
			if err != nil {
				return i.fault(err)
			}
			addr, err := i.dst(3, op.Modes[2])
			if err != nil {
				return i.fault(err)
			}
			v := lhs + rhs
			if op.Code == OpMul {
				v = lhs * rhs
			}
			i.set(addr, v)
			i.PC += 4
		case OpInput:
			addr, err := i.dst(1, op.Modes[0])
			if err != nil {
				return i.fault(err)
			}
			v, ok := i.nextInput()
			if !ok {
				return AwaitingInput, nil
			}
			i.set(addr, v)
			i.PC += 2
		case OpOutput:
			v, err := i.arg(1, op.Modes[0])
			if err != nil {
				return i.fault(err)
			}
			if err = i.emit(v); err != nil {
				// not latched: the handler may recover, and the
				// instruction is retried on the next Run call
				return Halted, err
			}
			i.PC += 2
		case OpJumpIfTrue, OpJumpIfFalse:
			cnd, err := i.arg(1, op.Modes[0])
			if err != nil {
				return i.fault(err)
			}
			tgt, err := i.arg(2, op.Modes[1])
			if err != nil {
				return i.fault(err)
			}
			if (cnd != 0) == (op.Code == OpJumpIfTrue) {
				i.PC = tgt
			} else {
				i.PC += 3
			}
		case OpLessThan, OpEquals:
			lhs, err := i.arg(1, op.Modes[0])
			if err != nil {
				return i.fault(err)
			}
			rhs, err := i.arg(2, op.Modes[1])
			if err != nil {
				return i.fault(err)
			}
			addr, err := i.dst(3, op.Modes[2])
			if err != nil {
				return i.fault(err)
			}
			var v Cell
			if (op.Code == OpLessThan && lhs < rhs) || (op.Code == OpEquals && lhs == rhs) {
				v = 1
			}
			i.set(addr, v)
			i.PC += 4
		case OpAdjustRelBase:
			adj, err := i.arg(1, op.Modes[0])
			if err != nil {
				return i.fault(err)
			}
			i.relbase += adj
			i.PC += 2
		case OpHalt:
			i.halted = true
			return Halted, nil
		}
		i.insCount++
	}
}
