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

// Package vm implements the Intcode VM.
//
// Intcode is a ten-opcode machine operating on a flat, growable memory of
// signed 64-bit integers. A program is its own memory image: the text
// "1,0,0,0,99" parses to a five-cell image whose first instruction adds
// mem[0] to mem[0] and stores the result at address 0. Instructions
// encode per-parameter addressing modes (position, immediate, relative)
// in the decimal digits above the opcode; see Decode for the exact rules.
//
// The VM supports three styles of driving a program:
//
//   - run to completion with canned input: RunToHalt or the Exec shortcut;
//   - producer/consumer pipelines: call Run repeatedly, feeding input
//     values per call and draining the output queue between calls. Run
//     returns AwaitingInput when the program needs more; the instance
//     keeps its program counter, relative base and memory across calls;
//   - interactive devices: bind an InHandler and an OutHandler, which are
//     invoked in lock-step with execution, once per I/O instruction.
//
// Execution is strictly single-threaded and synchronous. Suspension is
// cooperative: the VM yields only at an input instruction that cannot be
// satisfied, by returning to its caller. Multiple instances share no
// state; pipelines are built by handing values between Run calls.
//
// Malformed programs do not halt quietly. A negative address, an
// unrecognized opcode or a bad mode digit aborts the run with a typed
// error (AddressError, OpcodeError, ModeError) that callers can recover
// with errors.Cause, and the instance refuses to run further.
package vm
