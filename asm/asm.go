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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/icvm/intcode/internal/ici"
	"github.com/icvm/intcode/vm"
)

var opcodes = [...]struct {
	op    vm.Opcode
	names []string
}{
	{vm.OpAdd, []string{"add"}},
	{vm.OpMul, []string{"mul"}},
	{vm.OpInput, []string{"in", "read"}},
	{vm.OpOutput, []string{"out", "write"}},
	{vm.OpJumpIfTrue, []string{"jnz", "jt"}},
	{vm.OpJumpIfFalse, []string{"jz", "jf"}},
	{vm.OpLessThan, []string{"slt", "lt"}},
	{vm.OpEquals, []string{"seq", "eq"}},
	{vm.OpAdjustRelBase, []string{"arb", "rel"}},
	{vm.OpHalt, []string{"halt", "hlt"}},
}

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for _, e := range opcodes {
		for _, n := range e.names {
			opcodeIndex[n] = e.op
		}
	}
}

// Assemble compiles assembly read from the supplied io.Reader and returns
// the resulting image and error if any.
//
// The name parameter is used only in error messages to name the source of
// the error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (img []vm.Cell, err error) {
	return newParser().Parse(name, r)
}

// Disassemble writes a disassembly of the cells in the given slice at
// position pc to the specified io.Writer and returns the position of the
// next instruction and any write error. Cells that do not decode to a
// complete instruction render as raw data:
//
//	.dat 33
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ici.ErrWriter)
	if ew == nil {
		ew = ici.NewErrWriter(w)
	}

	op, derr := vm.Decode(mem[pc])
	n := op.Code.Arity()
	if derr != nil || pc+n >= len(mem) {
		ew.WriteString(".dat ")
		ew.WriteString(strconv.FormatInt(int64(mem[pc]), 10))
		return pc + 1, ew.Err
	}
	ew.WriteString(op.Code.String())
	for k := 0; k < n; k++ {
		ew.Write([]byte{' '})
		switch op.Modes[k] {
		case vm.Immediate:
			ew.Write([]byte{'#'})
		case vm.Relative:
			ew.Write([]byte{'*'})
		}
		ew.WriteString(strconv.FormatInt(int64(mem[pc+1+k]), 10))
	}
	return pc + 1 + n, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. The base argument specifies the real address
// of the first cell (mem[0]). It will return any write error.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 6d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
