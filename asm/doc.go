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

// Package asm provides utility functions to assemble and disassemble
// Intcode VM programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	args	description
//	------	----	----	---------------------------------------------
//	1	add	a b c	mem[c] = a + b
//	2	mul	a b c	mem[c] = a * b
//	3	in	c	mem[c] = next input value
//	4	out	a	emit a
//	5	jnz	a b	if a != 0 then pc = b
//	6	jz	a b	if a == 0 then pc = b
//	7	slt	a b c	mem[c] = 1 if a < b else 0
//	8	seq	a b c	mem[c] = 1 if a == b else 0
//	9	arb	a	relative base += a
//	99	halt		stop
//
// Aliases: read (in), write (out), jt (jnz), jf (jz), lt (slt), eq (seq),
// rel (arb), hlt (halt).
//
// Addressing modes:
//
// A bare operand assembles in position mode (the operand is an address).
// The prefix '#' selects immediate mode (the operand is the value
// itself), '*' selects relative mode (the operand is an offset from the
// relative base). The assembler packs the mode digits into the
// instruction word, so
//
//	add #2 #3 0
//
// compiles to the four-cell sequence 1101,2,3,0.
// Write-role operands (the c column above, and the operand of in) take a
// bare or '*' form; a '#' prefix on them is accepted and assembles like a
// bare operand, matching what the VM executes.
//
// Operands and data cells accept integer literals (decimal, or any base
// Go's strconv.ParseInt understands with the usual prefixes), character
// literals between single quotes, names defined with .equ, and label
// names.
//
// Labels:
//
// Labels are defined by prefixing an identifier with a colon and are
// referenced without the colon. A label's value is the address of the
// cell it precedes. Jump targets usually want the immediate form:
//
//	jnz #1 #start
//	:val .dat 7
//	:start out val
//
// Comments are placed between parentheses, separated from the body by
// whitespace, exactly as in Forth:
//
//	( this is a comment )
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a named constant.
//
//	.org <value>
//
// places the next instruction at the given address; skipped cells are
// zero.
//
//	.dat <value>
//
// compiles the given value (or label address) as a raw cell. A bare
// integer outside of operand position does the same, so images produced
// by other tools can be pasted in with commas turned to whitespace.
package asm
