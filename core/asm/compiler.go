// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package asm

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/log"
)

// labelSize is the width of a pushed label, PUSH4 like the dispatch tables
// compilers emit.
const labelSize = 4

// Compiler contains information about the parsed source and holds the tokens
// for the program.
//
// The source is line based:
//
//	;; comments run to the end of the line
//	start:              ;; defines a label and emits JUMPDEST
//	push 0x1234         ;; shortest PUSHn holding the value
//	PUSH4 7             ;; explicit width, left padded
//	push "vite"         ;; string bytes
//	push @start         ;; label location as PUSH4
//	jumpi @start        ;; PUSH4 location followed by JUMPI
//	ADD
//
// Compiler 保存已解析源码的标记。源码按行组织，见上方示例。
type Compiler struct {
	tokens []token
	labels map[string]uint64
	out    []byte
	errs   []error

	debug bool
}

// NewCompiler returns a new allocated compiler.
// NewCompiler 返回一个新的已分配的编译器。
func NewCompiler(debug bool) *Compiler {
	return &Compiler{
		labels: make(map[string]uint64),
		debug:  debug,
	}
}

// Feed lexes source and queues its tokens for compilation.
// Feed 对源码进行词法分析并保存标记。
func (c *Compiler) Feed(source []byte) {
	c.tokens = append(c.tokens, lex(source)...)
}

// Compile compiles the queued tokens into bytecode.
//
// The first pass only records label locations; label pushes have a fixed
// width so the second pass lays out identical offsets with the labels
// resolved.
// Compile 分两遍编译：第一遍记录标签位置，第二遍输出解析了标签的字节码。
func (c *Compiler) Compile() ([]byte, error) {
	lines := c.lines()
	for _, line := range lines {
		c.compileLine(line, false)
	}
	if c.debug {
		log.Trace("Assembler collected labels", "count", len(c.labels))
	}
	c.out = c.out[:0]
	for _, line := range lines {
		if err := c.compileLine(line, true); err != nil {
			c.errs = append(c.errs, err)
		}
	}
	if len(c.errs) > 0 {
		return nil, errors.Join(c.errs...)
	}
	return c.out, nil
}

// Assemble compiles assembly source into bytecode.
func Assemble(source []byte) ([]byte, error) {
	c := NewCompiler(false)
	c.Feed(source)
	return c.Compile()
}

// lines splits the token stream at line ends, dropping empty lines.
func (c *Compiler) lines() [][]token {
	var (
		lines [][]token
		cur   []token
	)
	for _, tok := range c.tokens {
		switch tok.typ {
		case lineEnd, eof:
			if len(cur) > 0 {
				lines = append(lines, cur)
			}
			cur = nil
		default:
			cur = append(cur, tok)
		}
	}
	return lines
}

// compileLine compiles a single line instruction e.g. "push 1",
// "jump @label". Errors are only reported when resolve is set.
// compileLine 编译单行指令，例如 "push 1"、"jump @label"。
func (c *Compiler) compileLine(line []token, resolve bool) error {
	if line[0].typ == labelDef {
		if !resolve {
			if _, dup := c.labels[line[0].text]; dup {
				c.errs = append(c.errs, fmt.Errorf("%d: label %q redefined", line[0].lineno+1, line[0].text))
			}
			c.labels[line[0].text] = uint64(len(c.out))
		}
		c.outputOpcode(vm.JUMPDEST)
		line = line[1:]
		if len(line) == 0 {
			return nil
		}
	}
	head := line[0]
	if head.typ != element {
		return compileErr(head, head.text, fmt.Sprintf("%v or %v", labelDef, element))
	}
	if len(line) > 2 {
		return compileErr(line[2], line[2].text, lineEnd.String())
	}
	var operand *token
	if len(line) == 2 {
		operand = &line[1]
	}
	return c.compileElement(head, operand, resolve)
}

// compileElement compiles the element (push & jump or plain opcodes) to a
// binary representation.
func (c *Compiler) compileElement(head token, operand *token, resolve bool) error {
	name := strings.ToUpper(head.text)
	switch name {
	case "PUSH":
		if operand == nil {
			return compileErr(head, lineEnd.String(), "number, string or label")
		}
		value, err := c.parseOperand(*operand, resolve)
		if err != nil {
			return err
		}
		return c.outputPush(len(value), value, *operand)

	case "JUMP", "JUMPI":
		// without an operand the destination is taken from the stack
		if operand != nil {
			value, err := c.parseOperand(*operand, resolve)
			if err != nil {
				return err
			}
			if err := c.outputPush(len(value), value, *operand); err != nil {
				return err
			}
		}
		op, _ := vm.StringToOp(name)
		c.outputOpcode(op)
		return nil
	}

	op, ok := vm.StringToOp(name)
	if !ok {
		return fmt.Errorf("%d: unknown opcode %q", head.lineno+1, head.text)
	}
	if !op.IsPush() {
		if operand != nil {
			return compileErr(*operand, operand.text, lineEnd.String())
		}
		c.outputOpcode(op)
		return nil
	}
	if operand == nil {
		return compileErr(head, lineEnd.String(), "number, string or label")
	}
	value, err := c.parseOperand(*operand, resolve)
	if err != nil {
		return err
	}
	return c.outputPush(op.PushSize(), value, *operand)
}

// parseOperand returns the bytes an operand pushes. Numbers use their
// shortest big endian form, labels are always labelSize bytes wide.
func (c *Compiler) parseOperand(tok token, resolve bool) ([]byte, error) {
	switch tok.typ {
	case number:
		var (
			num = new(big.Int)
			ok  bool
		)
		if strings.HasPrefix(tok.text, "0x") || strings.HasPrefix(tok.text, "0X") {
			_, ok = num.SetString(tok.text[2:], 16)
		} else {
			_, ok = num.SetString(tok.text, 10)
		}
		if !ok || num.BitLen() > 256 {
			return nil, fmt.Errorf("%d: invalid number %s", tok.lineno+1, tok.text)
		}
		if num.Sign() == 0 {
			return []byte{0}, nil
		}
		return num.Bytes(), nil

	case stringValue:
		// strings are quoted, remove them.
		str := tok.text[1 : len(tok.text)-1]
		if len(str) == 0 {
			return nil, fmt.Errorf("%d: empty string", tok.lineno+1)
		}
		return []byte(str), nil

	case label:
		pos, ok := c.labels[tok.text]
		if !ok && resolve {
			return nil, fmt.Errorf("%d: undefined label @%s", tok.lineno+1, tok.text)
		}
		return new(big.Int).SetUint64(pos).FillBytes(make([]byte, labelSize)), nil

	default:
		return nil, compileErr(tok, tok.text, "number, string or label")
	}
}

// outputPush emits PUSH<size> with value left padded to size bytes.
func (c *Compiler) outputPush(size int, value []byte, tok token) error {
	if len(value) > size || size > 32 {
		return fmt.Errorf("%d: %d byte value does not fit PUSH%d", tok.lineno+1, len(value), size)
	}
	c.outputOpcode(vm.PUSH1 + vm.OpCode(size-1))
	c.outputBytes(append(make([]byte, size-len(value)), value...))
	return nil
}

func (c *Compiler) outputOpcode(op vm.OpCode) {
	if c.debug {
		log.Trace("Assembled opcode", "pc", len(c.out), "op", op)
	}
	c.out = append(c.out, byte(op))
}

// outputBytes appends immediate bytes to the output.
func (c *Compiler) outputBytes(b []byte) {
	if c.debug {
		log.Trace("Assembled data", "pc", len(c.out), "data", fmt.Sprintf("%x", b))
	}
	c.out = append(c.out, b...)
}

type compileError struct {
	got  string
	want string

	lineno int
}

func (err compileError) Error() string {
	return fmt.Sprintf("%d: syntax error: unexpected %v, expected %v", err.lineno, err.got, err.want)
}

func compileErr(c token, got, want string) error {
	return compileError{
		got:    got,
		want:   want,
		lineno: c.lineno + 1,
	}
}
