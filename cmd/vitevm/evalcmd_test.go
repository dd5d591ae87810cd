// Copyright 2026 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitelabs/vitecore/core/vm"
)

func TestEval(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		// 1 + 2
		{[]string{"0x6001600201"}, "stack:\n   0: 0x3\n"},
		// the top of the stack is printed first
		{[]string{"--code", "0x6001600200"}, "stack:\n   0: 0x2\n   1: 0x1\n"},
		// CALLVALUE and HEIGHT read the block context
		{[]string{"--block.amount", "1000", "--block.height", "9", "0x3443"}, "stack:\n   0: 0x9\n   1: 0x3e8\n"},
		// off-chain the transactional context reads as zero
		{[]string{"--vm.offchain", "--block.amount", "1000", "0x34"}, "stack:\n   0: 0x0\n"},
		// MSTORE [0, 0x2a] then RETURN [0, 32]
		{[]string{"0x6000602a5260006020f3"}, "stack:\nreturn: 0x" + word("2a") + "\n"},
	}
	for i, tt := range tests {
		out, err := runVitevm(t, append([]string{"eval"}, tt.args...)...)
		require.NoError(t, err, "Test case %d", i)
		assert.Equal(t, tt.want, out, "Test case %d", i)
	}
}

func TestEvalMemory(t *testing.T) {
	out, err := runVitevm(t, "eval", "--memory", "0x6000602a52")
	require.NoError(t, err)
	assert.Equal(t, "stack:\nmemory:\n00000: "+word("2a")+"\n", out)
}

func TestEvalBalance(t *testing.T) {
	// PUSH10 <vite token id> BALANCE
	code := "0x695649544520544f4b454e31"
	out, err := runVitevm(t, "eval",
		"--block.to", testAccountAddr,
		"--balance", testAccountAddr+":"+testTokenId+":2vite",
		"--cache",
		code)
	require.NoError(t, err)
	assert.Equal(t, "stack:\n   0: 0x1bc16d674ec80000\n", out)

	// no balance configured reads as zero
	out, err = runVitevm(t, "eval", "--block.to", testAccountAddr, code)
	require.NoError(t, err)
	assert.Equal(t, "stack:\n   0: 0x0\n", out)

	_, err = runVitevm(t, "eval", "--balance", "vite_00:"+testTokenId+":1", code)
	assert.Error(t, err)
	_, err = runVitevm(t, "eval", "--balance", testAccountAddr+":"+testTokenId+":1.5", code)
	assert.Error(t, err)
}

func TestEvalAsm(t *testing.T) {
	file := writeTemp(t, "add.asm", "push 1\npush 2\nadd\n")
	out, err := runVitevm(t, "eval", "--asm", file)
	require.NoError(t, err)
	assert.Equal(t, "stack:\n   0: 0x3\n", out)

	file = writeTemp(t, "code.hex", "0x600a\n")
	out, err = runVitevm(t, "eval", "--codefile", file)
	require.NoError(t, err)
	assert.Equal(t, "stack:\n   0: 0xa\n", out)
}

func TestEvalErrors(t *testing.T) {
	// JUMP is not supported, the stack so far is still printed
	out, err := runVitevm(t, "eval", "0x600156")
	assert.True(t, errors.Is(err, vm.ErrUnsupportedOpcode), "%v", err)
	assert.Equal(t, "stack:\n   0: 0x1\n", out)
	assert.True(t, strings.Contains(err.Error(), "pc 2"), err.Error())

	_, err = runVitevm(t, "eval", "--vm.stacklimit", "1", "0x60016001")
	assert.True(t, errors.Is(err, vm.ErrStackOverflowBase), "%v", err)

	_, err = runVitevm(t, "eval", "0x01")
	assert.True(t, errors.Is(err, vm.ErrStackUnderflowBase), "%v", err)

	_, err = runVitevm(t, "eval")
	assert.Error(t, err)
	_, err = runVitevm(t, "eval", "--code", "0x00", "--asm", "x.asm")
	assert.Error(t, err)
	_, err = runVitevm(t, "eval", "--code", "0x00", "0x00")
	assert.Error(t, err)
	_, err = runVitevm(t, "eval", "--block.to", "vite_00", "0x00")
	assert.Error(t, err)
}
