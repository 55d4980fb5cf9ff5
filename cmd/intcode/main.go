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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/icvm/intcode/asm"
	"github.com/icvm/intcode/lang/ascii"
	"github.com/icvm/intcode/vm"
	"github.com/pkg/errors"
)

type cellList []vm.Cell

func (l *cellList) String() string { return "" }
func (l *cellList) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, vm.Cell(v))
	return nil
}
func (l *cellList) Get() interface{} { return *l }

type poke struct {
	addr, val vm.Cell
}

type pokeList []poke

func (l *pokeList) String() string { return "" }
func (l *pokeList) Set(s string) error {
	addr, val, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected addr=value, got %q", s)
	}
	a, err := strconv.ParseInt(addr, 10, 64)
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return err
	}
	*l = append(*l, poke{vm.Cell(a), vm.Cell(v)})
	return nil
}
func (l *pokeList) Get() interface{} { return *l }

var (
	expr      string
	inputs    cellList
	pokes     pokeList
	peek      int64
	dump      bool
	dis       bool
	asciiMode bool
	noRawIO   bool
	debug     bool
)

func atExit(i *vm.Instance, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v, relative base: %v, pending output: %v\n",
			i.PC, i.RelBase(), i.Drain())
	}
	os.Exit(1)
}

func loadImage() (vm.Image, error) {
	if expr != "" {
		return vm.Parse(strings.TrimSpace(expr))
	}
	if flag.NArg() != 1 {
		return nil, errors.New("expected exactly one program file (or -e)")
	}
	return vm.Load(flag.Arg(0))
}

func setupIO() (raw bool, tearDown func()) {
	if noRawIO {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

// queuedThen drains the queued values before handing input requests
// over to h. A bound input handler shadows the queue fed by the Input
// option, so -in values must be replayed explicitly in -ascii mode.
func queuedThen(queue []vm.Cell, h vm.InHandler) vm.InHandler {
	return func(i *vm.Instance) (vm.Cell, bool) {
		if len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			return v, true
		}
		return h(i)
	}
}

func main() {
	var err error
	var i *vm.Instance

	flag.StringVar(&expr, "e", "", "run `program` text instead of a file")
	flag.Var(&inputs, "in", "queue input `value` (can be specified multiple times)")
	flag.Var(&pokes, "poke", "patch memory with `addr=value` before running (can be specified multiple times)")
	flag.Int64Var(&peek, "peek", -1, "print the value at `addr` after the run")
	flag.BoolVar(&dump, "dump", false, "dump final memory as program text")
	flag.BoolVar(&dis, "dis", false, "disassemble the program instead of running it")
	flag.BoolVar(&asciiMode, "ascii", false, "interactive ASCII console on stdin/stdout")
	flag.BoolVar(&noRawIO, "noraw", false, "disable raw terminal IO in -ascii mode")
	flag.BoolVar(&debug, "debug", false, "enable debug diagnostics")
	flag.Parse()

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		stdout.Flush()
		atExit(i, err)
	}()

	var img vm.Image
	if img, err = loadImage(); err != nil {
		return
	}

	if dis {
		err = asm.DisassembleAll(img, 0, stdout)
		return
	}

	var opts []vm.Option
	if asciiMode {
		if _, ioTearDownFn := setupIO(); ioTearDownFn != nil {
			defer ioTearDownFn()
		}
		opts = append(opts,
			vm.BindInHandler(queuedThen(inputs, ascii.InputFrom(os.Stdin))),
			vm.BindOutHandler(ascii.OutputTo(stdout)))
	} else {
		opts = append(opts, vm.Input(inputs...))
	}

	if i, err = vm.New(img, opts...); err != nil {
		return
	}
	for _, p := range pokes {
		if err = i.Poke(p.addr, p.val); err != nil {
			return
		}
	}

	var st vm.Status
	if st, err = i.Run(); err != nil {
		return
	}
	if st == vm.AwaitingInput && !asciiMode {
		err = errors.Errorf("program wants more input than the %d value(s) supplied", len(inputs))
		return
	}

	for _, v := range i.Drain() {
		fmt.Fprintln(stdout, v)
	}
	if peek >= 0 {
		var v vm.Cell
		if v, err = i.Peek(vm.Cell(peek)); err != nil {
			return
		}
		fmt.Fprintln(stdout, v)
	}
	if dump {
		err = dumpVM(i, stdout)
	}
}
