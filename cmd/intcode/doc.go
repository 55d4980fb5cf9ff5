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

// The intcode command line tool runs Intcode programs on the package
// github.com/icvm/intcode/vm.
//
// Usage:
//
//	intcode [flags] program-file
//
//	-ascii
//		  interactive ASCII console on stdin/stdout
//	-debug
//		  enable debug diagnostics
//	-dis
//		  disassemble the program instead of running it
//	-dump
//		  dump final memory as program text
//	-e program
//		  run program text instead of a file
//	-in value
//		  queue input value (can be specified multiple times)
//	-noraw
//		  disable raw terminal IO in -ascii mode
//	-peek addr
//		  print the value at addr after the run (default -1)
//	-poke addr=value
//		  patch memory with addr=value before running (can be specified multiple times)
//
// The program file holds comma-separated decimal cells, the usual puzzle
// input format. -e takes the same text directly on the command line:
//
//	intcode -e 1101,2,3,0,4,0,99
//
// -in: queues one input value per flag, consumed in command line order by
// the program's input instructions. A program that asks for more input
// than supplied is an error. With -ascii, queued values are consumed
// first and the console takes over once they run out.
//
// -poke: patches a memory cell before the first instruction executes.
// Useful for puzzle setups like "replace position 1 with 12":
//
//	intcode -poke 1=12 -poke 2=2 -peek 0 day02.txt
//
// -ascii: binds stdin and stdout to the program's input and output
// instructions, one byte per value, for programs that speak ASCII. Values
// outside the byte range are printed in decimal. Unless -noraw is given,
// the terminal is switched to raw mode for the duration of the run.
//
// -debug: will print a full stacktrace should the VM crash, along with
// the program counter and relative base at the time of the fault.
package main
