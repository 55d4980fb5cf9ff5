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

import "strconv"

// Intcode Virtual Machine Opcodes.
const (
	OpAdd           Opcode = 1  // mem[c] = a + b
	OpMul           Opcode = 2  // mem[c] = a * b
	OpInput         Opcode = 3  // mem[a] = next input value
	OpOutput        Opcode = 4  // emit a
	OpJumpIfTrue    Opcode = 5  // if a != 0 then pc = b
	OpJumpIfFalse   Opcode = 6  // if a == 0 then pc = b
	OpLessThan      Opcode = 7  // mem[c] = a < b
	OpEquals        Opcode = 8  // mem[c] = a == b
	OpAdjustRelBase Opcode = 9  // relbase += a
	OpHalt          Opcode = 99 // stop
)

// Opcode identifies one of the ten Intcode operations. It is the value of
// the low two decimal digits of an instruction word.
type Opcode Cell

var opNames = map[Opcode]string{
	OpAdd:           "add",
	OpMul:           "mul",
	OpInput:         "in",
	OpOutput:        "out",
	OpJumpIfTrue:    "jnz",
	OpJumpIfFalse:   "jz",
	OpLessThan:      "slt",
	OpEquals:        "seq",
	OpAdjustRelBase: "arb",
	OpHalt:          "halt",
}

var opArity = map[Opcode]int{
	OpAdd:           3,
	OpMul:           3,
	OpInput:         1,
	OpOutput:        1,
	OpJumpIfTrue:    2,
	OpJumpIfFalse:   2,
	OpLessThan:      3,
	OpEquals:        3,
	OpAdjustRelBase: 1,
	OpHalt:          0,
}

// Valid reports whether o names a recognized operation.
func (o Opcode) Valid() bool {
	_, ok := opArity[o]
	return ok
}

// Arity returns the number of parameters of the operation.
func (o Opcode) Arity() int {
	return opArity[o]
}

func (o Opcode) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "opcode(" + strconv.FormatInt(int64(o), 10) + ")"
}

// Mode is the addressing discipline attached to one parameter of an
// instruction.
type Mode int

// Parameter addressing modes.
const (
	Position  Mode = iota // parameter is an address
	Immediate             // parameter is the value itself
	Relative              // parameter is an offset from the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}
