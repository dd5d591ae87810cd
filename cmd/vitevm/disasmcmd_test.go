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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitelabs/vitecore/core/asm"
	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/core/vm/program"
)

func TestDisasm(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"0x6001600201"}, "00000: PUSH1 0x01\n00002: PUSH1 0x02\n00004: ADD\n"},
		{[]string{"6001"}, "00000: PUSH1 0x01\n"},
		{[]string{"YAE="}, "00000: PUSH1 0x01\n"},
		{[]string{"0x00", "0x6001"}, "== 0x00 ==\n00000: STOP\n== 0x6001 ==\n00000: PUSH1 0x01\n"},
		{[]string{"--jobs", "1", "0x01", "0x00"}, "== 0x01 ==\n00000: ADD\n== 0x00 ==\n00000: STOP\n"},
	}
	for i, tt := range tests {
		out, err := runVitevm(t, append([]string{"disasm"}, tt.args...)...)
		require.NoError(t, err, "Test case %d", i)
		assert.Equal(t, tt.want, out, "Test case %d", i)
	}
}

func TestDisasmFile(t *testing.T) {
	file := writeTemp(t, "code.hex", "0x6001\n")
	out, err := runVitevm(t, "disasm", file)
	require.NoError(t, err)
	assert.Equal(t, "00000: PUSH1 0x01\n", out)
}

func TestDisasmErrors(t *testing.T) {
	_, err := runVitevm(t, "disasm")
	assert.Error(t, err)

	// the decoded part is still printed
	out, err := runVitevm(t, "disasm", "0x600160")
	assert.True(t, errors.Is(err, asm.ErrInvalidPush), "%v", err)
	assert.Equal(t, "00000: PUSH1 0x01\n", out)

	_, err = runVitevm(t, "disasm", "not code!")
	assert.Error(t, err)
}

func TestDisasmFunctions(t *testing.T) {
	p := program.New().SelectorPrologue(0x40)
	p.SelectorCase(mustHex("aa65281f"), 0x99)
	p.SelectorCase(mustHex("01020304"), 0x9a)
	p.Op(vm.STOP)
	_, loc := p.EventTopic(mustHex("bdc9f643d4a1e763f49dd88533841eace69f1ffd5d2be3811e8741e7a547ff91"))
	abiFile := writeTemp(t, "contract.abi", testABI)

	out, err := runVitevm(t, "disasm", "--functions", "--abi", abiFile, p.Hex())
	require.NoError(t, err)
	want := "function aa65281f @00099 transfer(address,uint256)\n" +
		"function 01020304 @0009a\n" +
		fmt.Sprintf("event bdc9f643d4a1e763f49dd88533841eace69f1ffd5d2be3811e8741e7a547ff91 @%05x Deposit(address,tokenId,uint256)\n", loc)
	assert.Equal(t, want, out)

	// without an ABI nothing is named
	out, err = runVitevm(t, "disasm", "--functions", p.Hex())
	require.NoError(t, err)
	assert.Contains(t, out, "function aa65281f @00099\n")

	// no dispatcher at all
	out, err = runVitevm(t, "disasm", "--functions", "0x6001")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestReadCode(t *testing.T) {
	code, err := readCode(writeTemp(t, "code.b64", "YAE=\n"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x60, 0x01}, code)

	code, err = readCode("0x00")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, code)
}
