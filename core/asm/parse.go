// Copyright 2026 The go-ethereum Authors
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
	"encoding/hex"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/holiman/uint256"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/common/hexutil"
	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/log"
)

// Instruction is one decoded opcode together with its offset in the code
// and, for PUSH opcodes, the immediate bytes.
// Instruction 是解码后的一条指令：操作码、在代码中的偏移量，以及 PUSH 的立即数。
type Instruction struct {
	Op   vm.OpCode
	PC   uint64
	Data []byte // nil unless Op is a PUSH
}

// Name returns the mnemonic of the opcode.
func (ins Instruction) Name() string { return ins.Op.String() }

// IsPush reports whether the instruction carries immediate bytes.
func (ins Instruction) IsPush() bool { return ins.Op.IsPush() }

func (ins Instruction) String() string {
	if len(ins.Data) > 0 {
		return fmt.Sprintf("%05x: %v %#x", ins.PC, ins.Op, ins.Data)
	}
	return fmt.Sprintf("%05x: %v", ins.PC, ins.Op)
}

// ParseOpcodes decodes code in a single linear pass. Bytes that are not
// assigned to an opcode are skipped, a PUSH running past the end of the code
// fails with ErrInvalidPush.
// ParseOpcodes 线性扫描字节码；未定义的字节被跳过，PUSH 立即数不足时返回 ErrInvalidPush。
func ParseOpcodes(code []byte) ([]Instruction, error) {
	var (
		instrs  []Instruction
		skipped int
	)
	it := NewInstructionIterator(code)
	for it.Next() {
		if !it.Op().IsDefined() {
			skipped++
			continue
		}
		instrs = append(instrs, Instruction{Op: it.Op(), PC: it.PC(), Data: it.Arg()})
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	if skipped > 0 {
		log.Debug("Skipped undefined opcodes", "count", skipped, "size", len(code))
	}
	return instrs, nil
}

// ParseOpcodesHex is like ParseOpcodes but takes the code as text: 0x
// prefixed or bare hex, falling back to base64.
// ParseOpcodesHex 接受文本形式的字节码：带 0x 前缀或不带的十六进制，否则按 base64 解析。
func ParseOpcodesHex(code string) ([]Instruction, error) {
	raw, err := hexutil.Resolve(code)
	if err != nil {
		return nil, err
	}
	return ParseOpcodes(raw)
}

// Function is an entry of the dispatch table: calldata whose first four bytes
// equal Selector jumps to Location.
// Function 是函数分发表中的一项：选择器与跳转目标。
type Function struct {
	Selector [4]byte
	Location uint64
}

// SelectorHex returns the selector as unprefixed hex.
func (f Function) SelectorHex() string { return hex.EncodeToString(f.Selector[:]) }

// Event is an event topic found in the code. Location is the offset of the
// PUSH32 carrying it.
// Event 是代码中找到的事件主题，Location 为携带它的 PUSH32 的偏移量。
type Event struct {
	Topic    common.Hash
	Location uint64
}

// matcher tests a single instruction of a pattern.
type matcher func(Instruction) bool

func isOp(op vm.OpCode) matcher {
	return func(ins Instruction) bool { return ins.Op == op }
}

// isPushOf matches a PUSH op whose immediate is exactly data.
func isPushOf(op vm.OpCode, data ...byte) matcher {
	return func(ins Instruction) bool {
		return ins.Op == op && string(ins.Data) == string(data)
	}
}

func isAnyPush(ins Instruction) bool { return ins.IsPush() }

// matchAt reports whether pattern matches instrs starting at i.
func matchAt(instrs []Instruction, i int, pattern []matcher) bool {
	if i < 0 || i+len(pattern) > len(instrs) {
		return false
	}
	for j, m := range pattern {
		if !m(instrs[i+j]) {
			return false
		}
	}
	return true
}

// dispatchPrologues are the instruction sequences that precede the selector
// comparisons, newest compiler first. The dispatch chain starts right after
// the matched sequence.
// dispatchPrologues 是选择器比较之前的前导指令序列，按编译器版本从新到旧排列。
var dispatchPrologues = []struct {
	name    string
	pattern []matcher
}{
	{
		// calldata size check, then the selector is shifted down by 224 bits
		name: "shr",
		pattern: []matcher{
			isOp(vm.JUMPDEST),
			isPushOf(vm.PUSH1, 0x04),
			isOp(vm.CALLDATASIZE),
			isOp(vm.LT),
			isAnyPush,
			isOp(vm.JUMPI),
			isPushOf(vm.PUSH1, 0x00),
			isOp(vm.CALLDATALOAD),
			isOp(vm.PUSH1),
			isOp(vm.SHR),
		},
	},
	{
		// 0.4 compilers divide by 2^224 and mask the selector
		name: "div",
		pattern: []matcher{
			isPushOf(vm.PUSH1, 0x04),
			isOp(vm.CALLDATASIZE),
			isOp(vm.LT),
			isAnyPush,
			isOp(vm.JUMPI),
			isPushOf(vm.PUSH1, 0x00),
			isOp(vm.CALLDATALOAD),
			isAnyPush,
			isOp(vm.SWAP1),
			isOp(vm.DIV),
			isOp(vm.PUSH4),
			isOp(vm.AND),
		},
	},
}

// dispatchCase is one selector comparison: DUP1 PUSH4 sel EQ PUSHx loc JUMPI.
var dispatchCase = []matcher{
	isOp(vm.DUP1),
	isOp(vm.PUSH4),
	isOp(vm.EQ),
	isAnyPush,
	isOp(vm.JUMPI),
}

// findDispatch returns the index of the first selector comparison, trying
// each prologue over the whole code before falling back to the next one.
func findDispatch(instrs []Instruction) (int, bool) {
	for _, prologue := range dispatchPrologues {
		for i := range instrs {
			if matchAt(instrs, i, prologue.pattern) {
				log.Trace("Found dispatch prologue", "kind", prologue.name, "pc", instrs[i].PC)
				return i + len(prologue.pattern), true
			}
		}
	}
	return 0, false
}

// ParseFunctions recovers the function dispatch table. It returns nil when no
// known prologue is present. The table ends at the first instruction that
// breaks the DUP1 PUSH4 EQ PUSHx JUMPI rhythm.
// ParseFunctions 恢复函数分发表；找不到已知前导序列时返回 nil。
func ParseFunctions(instrs []Instruction) []Function {
	i, ok := findDispatch(instrs)
	if !ok {
		return nil
	}
	var funcs []Function
	for ; matchAt(instrs, i, dispatchCase); i += len(dispatchCase) {
		loc := new(uint256.Int).SetBytes(instrs[i+3].Data)
		if !loc.IsUint64() {
			break
		}
		var fn Function
		copy(fn.Selector[:], instrs[i+1].Data)
		fn.Location = loc.Uint64()
		funcs = append(funcs, fn)
	}
	return funcs
}

// eventPattern is what solidity++ emits ahead of a log: the topic is pushed
// right after a JUMPDEST and a zero.
var eventPattern = []matcher{
	isOp(vm.JUMPDEST),
	isPushOf(vm.PUSH1, 0x00),
	isOp(vm.PUSH32),
}

// ParseEvents returns every event topic found in the code, in code order.
// ParseEvents 按代码顺序返回找到的所有事件主题。
func ParseEvents(instrs []Instruction) []Event {
	var events []Event
	for i := range instrs {
		if !matchAt(instrs, i, eventPattern) {
			continue
		}
		push := instrs[i+2]
		events = append(events, Event{
			Topic:    common.BytesToHash(push.Data),
			Location: push.PC,
		})
	}
	return events
}

// JumpDests returns the offsets of every JUMPDEST.
func JumpDests(instrs []Instruction) mapset.Set[uint64] {
	dests := mapset.NewThreadUnsafeSet[uint64]()
	for _, ins := range instrs {
		if ins.Op == vm.JUMPDEST {
			dests.Add(ins.PC)
		}
	}
	return dests
}

// StrayFunctions returns the functions whose location is not a JUMPDEST.
// A well formed dispatch table has none.
// StrayFunctions 返回跳转目标不是 JUMPDEST 的函数。
func StrayFunctions(funcs []Function, dests mapset.Set[uint64]) []Function {
	var stray []Function
	for _, fn := range funcs {
		if !dests.Contains(fn.Location) {
			stray = append(stray, fn)
		}
	}
	return stray
}
