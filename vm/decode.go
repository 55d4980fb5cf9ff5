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

// Op is a decoded instruction: the operation and the addressing mode of
// each of its parameter slots. Modes[k] is meaningful for k < Code.Arity().
type Op struct {
	Code  Opcode
	Modes [3]Mode
}

// Decode maps a raw instruction word to an Op. The opcode is the low two
// decimal digits of the word; the mode of parameter k (1-based) is digit
// k+2. All three mode digits are decoded and validated regardless of the
// operation's arity, so a two-parameter instruction carrying a bad third
// mode digit is a fault. Digits above the mode field are ignored.
func Decode(w Cell) (Op, error) {
	var op Op
	c := Opcode(w % 100)
	if !c.Valid() {
		return op, OpcodeError(w)
	}
	op.Code = c
	for k, div := 0, Cell(100); k < len(op.Modes); k, div = k+1, div*10 {
		d := (w / div) % 10
		if d < 0 || d > 2 {
			return op, ModeError{Word: w, Param: k + 1}
		}
		op.Modes[k] = Mode(d)
	}
	return op, nil
}
