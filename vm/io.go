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

// RunToHalt runs the program to completion with the given canned input
// and returns all produced output in execution order. Asking for input
// beyond the supplied values is an ErrNoInput error here, unlike with
// Run, where it is an ordinary suspension.
func (i *Instance) RunToHalt(in ...Cell) ([]Cell, error) {
	st, err := i.Run(in...)
	if err != nil {
		return nil, err
	}
	if st != Halted {
		return nil, ErrNoInput
	}
	return i.Drain(), nil
}

// Exec parses and runs a program to completion in one shot. It returns
// the produced output and the instance for final state queries, most
// commonly Peek(0).
func Exec(src string, in ...Cell) ([]Cell, *Instance, error) {
	img, err := Parse(src)
	if err != nil {
		return nil, nil, err
	}
	i, err := New(img, Input(in...))
	if err != nil {
		return nil, nil, err
	}
	out, err := i.RunToHalt()
	return out, i, err
}
