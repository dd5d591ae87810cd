// Copyright 2014 The go-ethereum Authors
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

package vm

import (
	"errors"
	"fmt"
)

// List vm execution errors
// 列出虚拟机执行错误
var (
	ErrStackUnderflowBase = errors.New("stack underflow")                    // 栈下溢
	ErrStackOverflowBase  = errors.New("stack overflow")                     // 栈溢出
	ErrOutOfRange         = errors.New("value out of range")                 // 值超出 256 位无符号范围
	ErrInvalidPush        = errors.New("push data exceeds code length")      // PUSH 立即数被截断
	ErrUnsupportedOpcode  = errors.New("unsupported opcode")                 // 不支持的操作码
	ErrMemoryOverflow     = errors.New("memory offset or size out of range") // 内存地址越界
	ErrNoDataProvider     = errors.New("no data provider configured")        // 未配置数据提供者
)

// ErrStackUnderflow wraps a vm error when the items on the stack less
// than the minimal requirement.
// ErrStackUnderflow 封装了一个虚拟机错误，当栈上的项少于最小要求时触发。
type ErrStackUnderflow struct {
	stackLen int // 当前栈长度
	required int // 所需最小栈长度
}

func (e *ErrStackUnderflow) Error() string {
	return fmt.Sprintf("stack underflow (%d <=> %d)", e.stackLen, e.required)
}

func (e *ErrStackUnderflow) Unwrap() error { return ErrStackUnderflowBase }

// ErrStackOverflow wraps a vm error when the items on the stack exceeds
// the maximum allowance.
// ErrStackOverflow 封装了一个虚拟机错误，当栈上的项超过最大允许值时触发。
type ErrStackOverflow struct {
	stackLen int // 当前栈长度
	limit    int // 栈最大限制
}

func (e *ErrStackOverflow) Error() string {
	return fmt.Sprintf("stack limit reached %d (%d)", e.stackLen, e.limit)
}

func (e *ErrStackOverflow) Unwrap() error { return ErrStackOverflowBase }

// ErrOpcode wraps ErrUnsupportedOpcode with the offending opcode and its
// position in the code.
type ErrOpcode struct {
	opcode OpCode
	pc     uint64
}

func (e *ErrOpcode) Error() string {
	return fmt.Sprintf("unsupported opcode %s at pc %d", e.opcode, e.pc)
}

func (e *ErrOpcode) Unwrap() error { return ErrUnsupportedOpcode }

// Op returns the rejected opcode.
func (e *ErrOpcode) Op() OpCode { return e.opcode }
