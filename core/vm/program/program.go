// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the goevmlab library. If not, see <http://www.gnu.org/licenses/>.

// package program is a utility to create vm bytecode for testing, but _not_ for production. As such:
//
// - There are not package guarantees. We might iterate heavily on this package, and do backwards-incompatible changes without warning
// - There are no quality-guarantees. These utilities may produce code that is non-functional. YMMV.
// - There are no stability-guarantees. The utility will `panic` if the inputs do not align / make sense.

package program

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/vitelabs/vitecore/core/vm"
)

// Program is a simple bytecode container. It can be used to construct
// simple vm programs. Errors during construction of a Program typically
// cause panics: so avoid using these programs in production settings or on
// untrusted input.
// Program 是一个简单的字节码容器，仅用于测试；构建出错时直接 panic。
type Program struct {
	code []byte // 字节码
}

// New creates a new Program
// New 创建一个新的 Program
func New() *Program {
	return &Program{
		code: make([]byte, 0),
	}
}

// add adds the op to the code.
func (p *Program) add(op byte) *Program {
	p.code = append(p.code, op)
	return p
}

// doPush creates the shortest PUSHX instruction holding val. Zero is pushed
// as [PUSH1 0], the vm has no PUSH0.
// doPush 生成能容纳 val 的最短 PUSHX 指令；零值使用 [PUSH1 0]。
func (p *Program) doPush(val *uint256.Int) {
	if val == nil {
		val = new(uint256.Int)
	}
	valBytes := val.Bytes()
	if len(valBytes) == 0 {
		valBytes = append(valBytes, 0)
	}
	p.PushN(len(valBytes), valBytes)
}

// PushN appends a PUSH<size> instruction carrying data left padded to size
// bytes. It panics if data does not fit.
// PushN 生成固定宽度的 PUSH<size> 指令，data 左侧补零。
func (p *Program) PushN(size int, data []byte) *Program {
	if size < 1 || size > 32 || len(data) > size {
		panic(fmt.Sprintf("cannot push %d bytes with PUSH%d", len(data), size))
	}
	p.add(byte(vm.PUSH1) - 1 + byte(size))
	padded := make([]byte, size)
	copy(padded[size-len(data):], data)
	return p.Append(padded)
}

// Append appends the given data to the code.
// Append 将给定数据追加到字节码。
func (p *Program) Append(data []byte) *Program {
	p.code = append(p.code, data...)
	return p
}

// Bytes returns the Program bytecode. OBS: This is not a copy.
// Bytes 返回 Program 的字节码。注意：这不是副本。
func (p *Program) Bytes() []byte {
	return p.code
}

// Hex returns the Program bytecode as a hex string.
// Hex 将 Program 的字节码作为十六进制字符串返回。
func (p *Program) Hex() string {
	return fmt.Sprintf("%02x", p.Bytes())
}

// Op appends the given opcode(s).
// Op 追加给定的操作码。
func (p *Program) Op(ops ...vm.OpCode) *Program {
	for _, op := range ops {
		p.add(byte(op))
	}
	return p
}

// Push creates a PUSHX instruction with the data provided.
// Push 创建一个带有提供数据的 PUSHX 指令。
func (p *Program) Push(val any) *Program {
	switch v := val.(type) {
	case int:
		p.doPush(new(uint256.Int).SetUint64(uint64(v)))
	case uint64:
		p.doPush(new(uint256.Int).SetUint64(v))
	case uint32:
		p.doPush(new(uint256.Int).SetUint64(uint64(v)))
	case *big.Int:
		p.doPush(uint256.MustFromBig(v))
	case *uint256.Int:
		p.doPush(v)
	case uint256.Int:
		p.doPush(&v)
	case []byte:
		p.doPush(new(uint256.Int).SetBytes(v))
	case byte:
		p.doPush(new(uint256.Int).SetUint64(uint64(v)))
	case interface{ Bytes() []byte }:
		// addresses, hashes and token ids all expose their original bytes
		p.doPush(new(uint256.Int).SetBytes(v.Bytes()))
	case nil:
		p.doPush(nil)
	default:
		panic(fmt.Sprintf("unsupported type %T", v))
	}
	return p
}

// Label returns the pc (in the bytecode) of the next instruction.
// Label 返回下一条指令的程序计数器 (PC)。
func (p *Program) Label() uint64 {
	return uint64(len(p.code))
}

// Jumpdest adds a JUMPDEST op, and returns the PC of that instruction.
// Jumpdest 添加一个 JUMPDEST 操作码，并返回该指令的 PC。
func (p *Program) Jumpdest() (*Program, uint64) {
	here := p.Label()
	p.Op(vm.JUMPDEST)
	return p, here
}

// Size returns the current size of the bytecode.
// Size 返回字节码的当前大小。
func (p *Program) Size() int {
	return len(p.code)
}

// Mstore stores the provided data into memory at memStart, one word at a
// time. The vm takes MSTORE operands as [offset, value].
// Mstore 将数据逐字写入内存（MSTORE 操作数顺序为 [offset, value]）。
func (p *Program) Mstore(data []byte, memStart uint32) *Program {
	var idx = 0
	for ; len(data) > idx+32; idx += 32 {
		p.Push(memStart + uint32(idx))
		p.PushN(32, data[idx:idx+32])
		p.Op(vm.MSTORE)
	}
	// last word is right padded
	if rest := data[idx:]; len(rest) > 0 {
		word := make([]byte, 32)
		copy(word, rest)
		p.Push(memStart + uint32(idx))
		p.PushN(32, word)
		p.Op(vm.MSTORE)
	}
	return p
}

// Hash appends a hashing opcode (SHA3 or BLAKE2B) over memory[offset:offset+size].
func (p *Program) Hash(op vm.OpCode, offset, size int) *Program {
	p.Push(offset)
	p.Push(size)
	return p.Op(op)
}

// Return implements RETURN
// Return 实现 RETURN
func (p *Program) Return(offset, len int) *Program {
	p.Push(offset)
	p.Push(len)
	return p.Op(vm.RETURN)
}

// ReturnData loads the given data into memory, and does a return with it
// ReturnData 将给定数据加载到内存中，并返回它
func (p *Program) ReturnData(data []byte) *Program {
	p.Mstore(data, 0)
	return p.Return(0, len(data))
}

// SelectorPrologue emits the dispatcher head of solc 0.5 and later: check the
// calldata size, load the first word and shift the selector down.
// SelectorPrologue 生成 solc 0.5 及之后版本的函数分发前导代码。
func (p *Program) SelectorPrologue(fallback uint64) *Program {
	p.Op(vm.JUMPDEST)
	p.PushN(1, []byte{0x04})
	p.Op(vm.CALLDATASIZE, vm.LT)
	p.Push(fallback)
	p.Op(vm.JUMPI)
	p.PushN(1, []byte{0x00})
	p.Op(vm.CALLDATALOAD)
	p.PushN(1, []byte{0xe0})
	return p.Op(vm.SHR)
}

// LegacySelectorPrologue emits the dispatcher head of solc 0.4, which divides
// the first calldata word by 2^224 and masks the selector.
// LegacySelectorPrologue 生成 solc 0.4 的函数分发前导代码。
func (p *Program) LegacySelectorPrologue(fallback uint64) *Program {
	p.PushN(1, []byte{0x04})
	p.Op(vm.CALLDATASIZE, vm.LT)
	p.Push(fallback)
	p.Op(vm.JUMPI)
	p.PushN(1, []byte{0x00})
	p.Op(vm.CALLDATALOAD)
	p.PushN(29, []byte{0x01, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	p.Op(vm.SWAP1, vm.DIV)
	p.PushN(4, []byte{0xff, 0xff, 0xff, 0xff})
	return p.Op(vm.AND)
}

// SelectorCase emits one dispatch entry: jump to loc when the selector on the
// stack equals sel.
// SelectorCase 生成一条分发项：选择器等于 sel 时跳转到 loc。
func (p *Program) SelectorCase(sel []byte, loc uint64) *Program {
	p.Op(vm.DUP1)
	p.PushN(4, sel)
	p.Op(vm.EQ)
	p.Push(loc)
	return p.Op(vm.JUMPI)
}

// EventTopic emits the block solc generates ahead of an event emission,
// [JUMPDEST, PUSH1 0x00, PUSH32 topic], and returns the pc of the PUSH32.
func (p *Program) EventTopic(topic []byte) (*Program, uint64) {
	p.Op(vm.JUMPDEST)
	p.PushN(1, []byte{0x00})
	here := p.Label()
	p.PushN(32, topic)
	return p, here
}
