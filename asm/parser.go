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
	"text/scanner"
	"unicode"

	"github.com/icvm/intcode/vm"
)

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

// operand is one parsed parameter: a resolved value or a label reference,
// plus its addressing mode.
type operand struct {
	mode  vm.Mode
	value vm.Cell
	label string
}

type parser struct {
	img    []vm.Cell
	pc     int
	max    int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	err    error
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.img) {
		p.img = append(p.img, make([]vm.Cell, 1024)...)
	}
	p.img[p.pc] = v
	p.pc++
	if p.pc > p.max {
		p.max = p.pc
	}
}

func (p *parser) useLabel(name string) {
	lbl := p.labels[name]
	if lbl == nil {
		lbl = &label{
			// use current position as valid temp position
			labelSite{p.s.Pos(), -1},
			nil,
		}
		p.labels[name] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Pos(), p.pc})
}

func scanError(s *scanner.Scanner, msg string) error {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return fmt.Errorf("%s: %s", pos, msg)
}

func (p *parser) fail(msg string) {
	if p.err == nil {
		p.err = scanError(&p.s, msg)
	}
}

// value classifies a bare token as an integer literal, a character
// literal or a named constant. ok is false when the token is none of
// these (i.e. a label reference or garbage).
func (p *parser) value(tok string) (v vm.Cell, ok bool) {
	if n, err := strconv.ParseInt(tok, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(tok) > 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		r, _, _, err := strconv.UnquoteChar(tok[1:len(tok)-1], '\'')
		if err != nil {
			p.fail("bad character literal " + tok)
			return 0, false
		}
		return vm.Cell(r), true
	}
	if c, found := p.consts[tok]; found {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// next returns the next token, transparently skipping ( comments ).
func (p *parser) next() (string, bool) {
	for {
		tok := p.s.Scan()
		if p.err != nil || tok == scanner.EOF {
			return "", false
		}
		if tok != scanner.Ident {
			p.fail("unexpected character " + strconv.QuoteRune(tok))
			return "", false
		}
		s := p.s.TokenText()
		if s != "(" {
			return s, true
		}
		for tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")") {
			tok = p.s.Scan()
		}
		if tok == scanner.EOF {
			p.fail("unterminated comment")
			return "", false
		}
	}
}

// operand parses one instruction parameter: an optional # (immediate) or
// * (relative) prefix followed by an integer, character literal, constant
// or label name.
func (p *parser) operand() (operand, bool) {
	tok, ok := p.next()
	if !ok {
		p.fail("missing operand")
		return operand{}, false
	}
	var o operand
	switch tok[0] {
	case '#':
		o.mode, tok = vm.Immediate, tok[1:]
	case '*':
		o.mode, tok = vm.Relative, tok[1:]
	}
	if tok == "" {
		p.fail("empty operand")
		return operand{}, false
	}
	if v, ok := p.value(tok); ok {
		o.value = v
		return o, p.err == nil
	}
	if tok[0] == ':' || tok[0] == '.' {
		p.fail("unexpected " + tok + " as operand")
		return operand{}, false
	}
	o.label = tok
	return o, true
}

func (p *parser) instruction(op vm.Opcode) {
	args := make([]operand, op.Arity())
	for k := range args {
		o, ok := p.operand()
		if !ok {
			return
		}
		args[k] = o
	}
	word := vm.Cell(op)
	for k, div := 0, vm.Cell(100); k < len(args); k, div = k+1, div*10 {
		word += vm.Cell(args[k].mode) * div
	}
	p.write(word)
	for _, o := range args {
		if o.label != "" {
			p.useLabel(o.label)
			p.write(0)
		} else {
			p.write(o.value)
		}
	}
}

func (p *parser) defineLabel(name string) {
	if name == "" {
		p.fail("empty label name")
		return
	}
	if cst, ok := p.consts[name]; ok {
		p.fail("label redefinition: " + name + ", previously defined as a constant here: " + cst.pos.String())
		return
	}
	if l, ok := p.labels[name]; ok {
		if l.address != -1 {
			p.fail("label redefinition: " + name + ", previous definition here: " + l.pos.String())
			return
		}
		l.address = p.pc
		l.pos = p.s.Pos()
		return
	}
	p.labels[name] = &label{
		labelSite{p.s.Pos(), p.pc},
		nil,
	}
}

func (p *parser) directive(name string) {
	switch name {
	case ".org":
		tok, ok := p.next()
		if !ok {
			p.fail(".org: missing address")
			return
		}
		v, ok := p.value(tok)
		if !ok || v < 0 {
			p.fail(".org: bad address " + tok)
			return
		}
		p.pc = int(v)
	case ".dat":
		tok, ok := p.next()
		if !ok {
			p.fail(".dat: missing value")
			return
		}
		if v, ok := p.value(tok); ok {
			p.write(v)
			return
		}
		// raw label address
		p.useLabel(tok)
		p.write(0)
	case ".equ":
		name, ok := p.next()
		if !ok {
			p.fail(".equ: missing identifier")
			return
		}
		if l, found := p.labels[name]; found {
			p.fail(".equ: redefinition of " + name + ", previously defined/used as a label here: " + l.pos.String())
			return
		}
		pos := p.s.Pos()
		tok, ok := p.next()
		if !ok {
			p.fail(".equ: missing value")
			return
		}
		v, ok := p.value(tok)
		if !ok {
			p.fail(".equ: bad value " + tok)
			return
		}
		p.consts[name] = labelSite{pos, int(v)}
	default:
		p.fail("unknown dot directive: " + name)
	}
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) ([]vm.Cell, error) {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = scanError(s, msg)
		}
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for {
		tok, ok := p.next()
		if !ok {
			break
		}
		switch tok[0] {
		case ':':
			p.defineLabel(tok[1:])
		case '.':
			p.directive(tok)
		default:
			if op, found := opcodeIndex[tok]; found {
				p.instruction(op)
				break
			}
			// a bare value compiles as a raw data cell
			if v, ok := p.value(tok); ok {
				p.write(v)
				break
			}
			p.fail("unknown instruction " + tok)
		}
		if p.err != nil {
			break
		}
	}
	if p.err != nil {
		return nil, p.err
	}

	// patch label references
	for n, l := range p.labels {
		if l.address == -1 {
			return nil, fmt.Errorf("missing label definition for %s, first use here: %s", n, l.uses[0].pos)
		}
		for _, u := range l.uses {
			p.img[u.address] = vm.Cell(l.address)
		}
	}
	return p.img[:p.max], nil
}
