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

package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeTable(t *testing.T) {
	tests := []struct {
		op   OpCode
		name string
	}{
		{0x00, "STOP"},
		{0x0b, "SIGNEXTEND"},
		{0x1d, "SAR"},
		{0x20, "SHA3"},
		{0x21, "BLAKE2B"},
		{0x3f, "EXTCODEHASH"},
		{0x43, "HEIGHT"},
		{0x46, "TOKENID"},
		{0x47, "ACCOUNTHEIGHT"},
		{0x48, "PREVHASH"},
		{0x49, "FROMHASH"},
		{0x4b, "RANDOM"},
		{0x5b, "JUMPDEST"},
		{0x60, "PUSH1"},
		{0x7f, "PUSH32"},
		{0x8f, "DUP16"},
		{0x9f, "SWAP16"},
		{0xa4, "LOG4"},
		{0xf2, "CALL2"},
		{0xfa, "STATICCALL"},
		{0xff, "SELFDESTRUCT"},
	}
	for i, test := range tests {
		assert.Equal(t, test.name, test.op.String(), "Test case %d", i)
		op, ok := StringToOp(test.name)
		assert.True(t, ok, "Test case %d", i)
		assert.Equal(t, test.op, op, "Test case %d", i)
		assert.True(t, test.op.IsDefined(), "Test case %d", i)
	}

	for _, undefined := range []OpCode{0x0c, 0x1e, 0x22, 0x4c, 0x5f, 0xa5, 0xf5, 0xfb} {
		assert.False(t, undefined.IsDefined())
		assert.Contains(t, undefined.String(), "not defined")
	}
	_, ok := StringToOp("PUSH0")
	assert.False(t, ok)
}

func TestPushSize(t *testing.T) {
	assert.False(t, JUMPDEST.IsPush())
	assert.Equal(t, 0, JUMPDEST.PushSize())
	assert.True(t, PUSH1.IsPush())
	assert.Equal(t, 1, PUSH1.PushSize())
	assert.Equal(t, 4, PUSH4.PushSize())
	assert.Equal(t, 32, PUSH32.PushSize())
	assert.False(t, DUP1.IsPush())
}

func TestInstructionSet(t *testing.T) {
	jt := InstructionSet()
	for _, op := range []OpCode{ADD, SAR, BLAKE2B, BALANCE, FROMHASH, PUSH32, DUP16, SWAP16, MSTORE8, RETURN} {
		assert.True(t, jt.Supports(op), "%v", op)
	}
	for _, op := range []OpCode{JUMP, JUMPI, SLOAD, SSTORE, CALL, CALL2, LOG0, ORIGIN, SEED, RANDOM, GAS} {
		assert.False(t, jt.Supports(op), "%v", op)
	}
	n, ok := jt.MinStack(SWAP16)
	assert.True(t, ok)
	assert.Equal(t, 17, n)
	n, ok = jt.MinStack(ADDMOD)
	assert.True(t, ok)
	assert.Equal(t, 3, n)
}
