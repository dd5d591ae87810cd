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

// Package asm provides support for dealing with Vite vm assembly: walking and
// disassembling bytecode, recovering the function dispatch table and event
// topics that solidity++ compilers emit, and a small assembler for tests and
// tooling.
package asm

import (
	"fmt"
	"io"

	"github.com/vitelabs/vitecore/core/vm"
)

// ErrInvalidPush is returned when a PUSH instruction runs past the end of the
// code.
var ErrInvalidPush = vm.ErrInvalidPush

// Iterator for disassembled vm instructions
// 反汇编指令的迭代器
type instructionIterator struct {
	code    []byte    // 要迭代的字节码
	pc      uint64    // 当前程序计数器
	arg     []byte    // 当前指令的立即数
	op      vm.OpCode // 当前指令的操作码
	error   error     // 迭代过程中遇到的错误
	started bool      // 迭代是否已开始
}

// NewInstructionIterator creates a new instruction iterator. Every byte is
// visited, including bytes that are not assigned to any opcode.
// NewInstructionIterator 创建一个新的指令迭代器，未定义的字节也会被访问。
func NewInstructionIterator(code []byte) *instructionIterator {
	it := new(instructionIterator)
	it.code = code
	return it
}

// Next returns true if there is a next instruction and moves on.
// Next 如果存在下一条指令则返回 true 并继续移动。
func (it *instructionIterator) Next() bool {
	if it.error != nil || uint64(len(it.code)) <= it.pc {
		// We previously reached an error or the end.
		return false
	}

	if it.started {
		it.pc += uint64(len(it.arg)) + 1
	} else {
		it.started = true
	}

	if uint64(len(it.code)) <= it.pc {
		// We reached the end.
		return false
	}
	it.op = vm.OpCode(it.code[it.pc])
	it.arg = nil
	if a := it.op.PushSize(); a > 0 {
		u := it.pc + 1 + uint64(a)
		if uint64(len(it.code)) < u {
			it.error = fmt.Errorf("%w: %v at %d wants %d bytes, %d left", ErrInvalidPush, it.op, it.pc, a, uint64(len(it.code))-it.pc-1)
			return false
		}
		it.arg = it.code[it.pc+1 : u]
	}
	return true
}

// Error returns any error that may have been encountered.
// Error 返回可能遇到的任何错误。
func (it *instructionIterator) Error() error {
	return it.error
}

// PC returns the PC of the current instruction.
func (it *instructionIterator) PC() uint64 {
	return it.pc
}

// Op returns the opcode of the current instruction.
func (it *instructionIterator) Op() vm.OpCode {
	return it.op
}

// Arg returns the argument of the current instruction.
func (it *instructionIterator) Arg() []byte {
	return it.arg
}

// PrintDisassembled writes all disassembled instructions to w, one per line.
// PrintDisassembled 将所有反汇编指令逐行写入 w。
func PrintDisassembled(w io.Writer, code []byte) error {
	lines, err := Disassemble(code)
	for _, line := range lines {
		if _, werr := fmt.Fprintln(w, line); werr != nil {
			return werr
		}
	}
	return err
}

// Disassemble returns all disassembled instructions in human-readable format.
// On a truncated PUSH the lines decoded so far are returned with the error.
// Disassemble 以人类可读的格式返回所有反汇编的指令；遇到截断的 PUSH 时返回已解码的部分和错误。
func Disassemble(script []byte) ([]string, error) {
	instrs := make([]string, 0)

	it := NewInstructionIterator(script)
	for it.Next() {
		if len(it.Arg()) > 0 {
			instrs = append(instrs, fmt.Sprintf("%05x: %v %#x", it.PC(), it.Op(), it.Arg()))
		} else {
			instrs = append(instrs, fmt.Sprintf("%05x: %v", it.PC(), it.Op()))
		}
	}
	return instrs, it.Error()
}
