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

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNoInput is returned by RunToHalt when the program asks for input
// after the supplied values have been consumed. Note that Run itself
// treats this condition as a plain AwaitingInput status, not an error.
var ErrNoInput = errors.New("input exhausted before halt")

// AddressError reports a read or write through a negative address.
// Addresses beyond the current memory size are not errors; memory
// auto-extends. This one is fatal.
type AddressError Cell

func (e AddressError) Error() string {
	return "address out of range: " + strconv.FormatInt(int64(e), 10)
}

// OpcodeError reports an instruction word whose low two decimal digits do
// not name an operation. The value is the whole offending word.
type OpcodeError Cell

func (e OpcodeError) Error() string {
	return "invalid opcode in word " + strconv.FormatInt(int64(e), 10)
}

// ModeError reports a parameter mode digit outside 0..2. Param is the
// 1-based parameter slot the digit belongs to.
type ModeError struct {
	Word  Cell
	Param int
}

func (e ModeError) Error() string {
	return "invalid mode for parameter " + strconv.Itoa(e.Param) +
		" in word " + strconv.FormatInt(int64(e.Word), 10)
}
