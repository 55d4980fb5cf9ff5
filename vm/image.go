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
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location. Intcode programs
// routinely multiply ten-digit values, so Cell is 64 bits wide regardless
// of GOARCH.
type Cell int64

// CellBits is the size of a Cell in bits.
const CellBits = 64

// Image encapsulates a VM's memory. Cell 0 holds the first instruction
// word; the image is both code and data, and running programs commonly
// rewrite it.
type Image []Cell

// Parse builds an Image from program text: a single line of comma
// separated signed decimal integers. Parse does no whitespace trimming;
// any token that is not a valid integer is an error.
func Parse(src string) (Image, error) {
	toks := strings.Split(src, ",")
	img := make(Image, len(toks))
	for n, tok := range toks {
		v, err := strconv.ParseInt(tok, 10, CellBits)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", n)
		}
		img[n] = Cell(v)
	}
	return img, nil
}

// Load reads a program file and parses its contents. Surrounding
// whitespace (a trailing newline, typically) is trimmed before parsing.
func Load(fileName string) (Image, error) {
	b, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "load failed")
	}
	img, err := Parse(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, errors.Wrapf(err, "load %v", fileName)
	}
	return img, nil
}

// Clone returns a copy of the image. Instances mutate the image they are
// given, so callers that run the same program several times should hand
// each Instance its own copy.
func (img Image) Clone() Image {
	t := make(Image, len(img))
	copy(t, img)
	return t
}

// String renders the image as program text, suitable for feeding back to
// Parse.
func (img Image) String() string {
	var b strings.Builder
	for n, v := range img {
		if n > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}
