// Copyright 2023 The go-ethereum Authors
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
	"context"
)

type executionFunc func(ctx context.Context, in *Interpreter, scope *ScopeContext) error

type operation struct {
	// execute is the operation function
	execute executionFunc
	// minStack tells how many stack items are required
	minStack int
	// halts indicates whether the operation should halt further execution
	halts bool
}

// JumpTable contains the vm opcodes supported at a given fork.
// Undefined and unsupported entries are nil.
// JumpTable 包含虚拟机支持的操作码，未支持的项为 nil。
type JumpTable [256]*operation

// Supports reports whether the opcode can be executed.
func (jt *JumpTable) Supports(op OpCode) bool {
	return jt[op] != nil
}

// MinStack returns the number of stack words an opcode consumes, and false
// for unsupported opcodes.
func (jt *JumpTable) MinStack(op OpCode) (int, bool) {
	if jt[op] == nil {
		return 0, false
	}
	return jt[op].minStack, true
}

// viteInstructionSet is built once and shared by every interpreter.
var viteInstructionSet = newViteInstructionSet()

// InstructionSet returns a copy of the instruction set.
func InstructionSet() JumpTable {
	return viteInstructionSet
}

func newViteInstructionSet() JumpTable {
	tbl := JumpTable{
		STOP:          {execute: opStop, halts: true},
		ADD:           {execute: opAdd, minStack: 2},
		MUL:           {execute: opMul, minStack: 2},
		SUB:           {execute: opSub, minStack: 2},
		DIV:           {execute: opDiv, minStack: 2},
		SDIV:          {execute: opSdiv, minStack: 2},
		MOD:           {execute: opMod, minStack: 2},
		SMOD:          {execute: opSmod, minStack: 2},
		ADDMOD:        {execute: opAddmod, minStack: 3},
		MULMOD:        {execute: opMulmod, minStack: 3},
		EXP:           {execute: opExp, minStack: 2},
		SIGNEXTEND:    {execute: opSignExtend, minStack: 2},
		LT:            {execute: opLt, minStack: 2},
		GT:            {execute: opGt, minStack: 2},
		SLT:           {execute: opSlt, minStack: 2},
		SGT:           {execute: opSgt, minStack: 2},
		EQ:            {execute: opEq, minStack: 2},
		ISZERO:        {execute: opIszero, minStack: 1},
		AND:           {execute: opAnd, minStack: 2},
		OR:            {execute: opOr, minStack: 2},
		XOR:           {execute: opXor, minStack: 2},
		NOT:           {execute: opNot, minStack: 1},
		BYTE:          {execute: opByte, minStack: 2},
		SHL:           {execute: opSHL, minStack: 2},
		SHR:           {execute: opSHR, minStack: 2},
		SAR:           {execute: opSAR, minStack: 2},
		SHA3:          {execute: opSha3, minStack: 2},
		BLAKE2B:       {execute: opBlake2b, minStack: 2},
		ADDRESS:       {execute: opAddress},
		BALANCE:       {execute: opBalance, minStack: 1},
		CALLER:        {execute: opCaller},
		CALLVALUE:     {execute: opCallValue},
		TIMESTAMP:     {execute: opTimestamp},
		HEIGHT:        {execute: opHeight},
		TOKENID:       {execute: opTokenId},
		ACCOUNTHEIGHT: {execute: opAccountHeight},
		PREVHASH:      {execute: opPrevHash},
		FROMHASH:      {execute: opFromHash},
		POP:           {execute: opPop, minStack: 1},
		MLOAD:         {execute: opMload, minStack: 1},
		MSTORE:        {execute: opMstore, minStack: 2},
		MSTORE8:       {execute: opMstore8, minStack: 2},
		PC:            {execute: opPc},
		MSIZE:         {execute: opMsize},
		JUMPDEST:      {execute: opJumpdest},
		RETURN:        {execute: opReturn, minStack: 2, halts: true},
	}
	for i := 0; i < 32; i++ {
		tbl[PUSH1+OpCode(i)] = &operation{execute: makePush(uint64(i + 1))}
	}
	for i := 1; i <= 16; i++ {
		tbl[DUP1+OpCode(i-1)] = &operation{execute: makeDup(i), minStack: i}
		tbl[SWAP1+OpCode(i-1)] = &operation{execute: makeSwap(i), minStack: i + 1}
	}
	return tbl
}
