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

package abi

import (
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitelabs/vitecore/common"
)

const jsondata = `
[
	{"type":"constructor","inputs":[{"name":"owner","type":"address"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"notify","type":"bool"}]},
	{"type":"offchain","name":"getBalance","inputs":[{"name":"addr","type":"address"},{"name":"token","type":"tokenId"}],"outputs":[{"name":"balance","type":"uint256"}]},
	{"type":"event","name":"Deposit","inputs":[{"name":"from","type":"address","indexed":true},{"name":"token","type":"tokenId"},{"name":"amount","type":"uint256"}]},
	{"type":"fallback"}
]`

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestReader(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	assert.Len(t, abi.Methods, 2)
	assert.Len(t, abi.Offchains, 1)
	assert.Len(t, abi.Events, 1)
	assert.True(t, abi.HasFallback())
	assert.Len(t, abi.Constructor.Inputs, 1)

	transfer := abi.Methods["transfer"]
	assert.Equal(t, "transfer(address,uint256)", transfer.Sig)
	assert.Equal(t, mustHex("aa65281f"), transfer.ID)
	assert.Equal(t, "function transfer(address to, uint256 amount)", transfer.String())

	overloaded := abi.Methods["transfer0"]
	assert.Equal(t, "transfer", overloaded.RawName)
	assert.Equal(t, mustHex("6db19ec9"), overloaded.ID)

	getBalance := abi.Offchains["getBalance"]
	assert.True(t, getBalance.IsOffchain())
	assert.Equal(t, mustHex("e2644744"), getBalance.ID)

	deposit := abi.Events["Deposit"]
	assert.Equal(t, "Deposit(address,tokenId,uint256)", deposit.Sig)
	assert.Equal(t, "bdc9f643d4a1e763f49dd88533841eace69f1ffd5d2be3811e8741e7a547ff91", deposit.ID.Hex())
}

func TestReaderErrors(t *testing.T) {
	_, err := JSON(strings.NewReader(`[{"type":"fallback"},{"type":"fallback"}]`))
	assert.Error(t, err)
	_, err = JSON(strings.NewReader(`[{"type":"receive"}]`))
	assert.Error(t, err)
	_, err = JSON(strings.NewReader(`[{"type":"function","name":"f","inputs":[{"name":"x","type":"tuple"}]}]`))
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestPackAndUnpackCall(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	data, err := abi.Pack("transfer", testAccountAddr, big.NewInt(1000))
	require.NoError(t, err)
	require.Len(t, data, 4+64)
	assert.Equal(t, mustHex("aa65281f"), data[:4])
	assert.Equal(t, word("03e8"), data[36:])

	method, values, err := abi.UnpackCall(data)
	require.NoError(t, err)
	assert.Equal(t, "transfer", method.Name)
	require.Len(t, values, 2)
	assert.Equal(t, testAccountAddr, values[0])
	assert.Equal(t, "1000", FormatValue(values[1]))

	_, err = abi.Pack("transfer", testAccountAddr)
	assert.Error(t, err, "argument count mismatch")
	_, err = abi.Pack("missing")
	assert.Error(t, err)

	// the method id slice of the abi is never aliased by packed data
	data[0] = 0
	assert.Equal(t, mustHex("aa65281f"), abi.Methods["transfer"].ID)

	_, _, err = abi.UnpackCall(append(data[:4:4], 1, 2))
	assert.Error(t, err)
}

func TestMethodByIdAndEventByID(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	m, err := abi.MethodById(mustHex("e2644744ffff"))
	require.NoError(t, err)
	assert.Equal(t, "getBalance", m.Name)

	_, err = abi.MethodById(mustHex("e264"))
	assert.Error(t, err)
	_, err = abi.MethodById(mustHex("00000000"))
	assert.Error(t, err)

	e, err := abi.EventByID(common.BytesToHash(mustHex("bdc9f643d4a1e763f49dd88533841eace69f1ffd5d2be3811e8741e7a547ff91")))
	require.NoError(t, err)
	assert.Equal(t, "Deposit", e.Name)
	_, err = abi.EventByID(common.Hash{})
	assert.Error(t, err)
}

func TestUnpackEventData(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)

	data := append(word("5649544520544f4b454e"), word("0a")...)
	out := make(map[string]interface{})
	require.NoError(t, abi.UnpackIntoMap(out, "Deposit", data))
	assert.Equal(t, testTokenId, out["token"])
	assert.Equal(t, "10", FormatValue(out["amount"]))
	assert.NotContains(t, out, "from", "indexed inputs live in topics")

	decoded, err := abi.Events["Deposit"].DecodeData(data)
	require.NoError(t, err)
	assert.Equal(t, out, decoded)

	values, err := abi.Unpack("getBalance", word("01"))
	require.NoError(t, err)
	assert.Equal(t, "1", FormatValue(values[0]))
}

func TestNewEvent(t *testing.T) {
	abi, err := JSON(strings.NewReader(jsondata))
	require.NoError(t, err)
	deposit := abi.Events["Deposit"]
	assert.Equal(t, "event Deposit(address indexed from, tokenId token, uint256 amount)", deposit.String())
	assert.Len(t, deposit.Inputs.NonIndexed(), 2)

	addr, err := NewType("address")
	require.NoError(t, err)
	amount, err := NewType("uint256")
	require.NoError(t, err)
	ev := NewEvent("Paid", "Paid", true, Arguments{{Type: addr, Indexed: true}, {Type: amount}})
	assert.True(t, ev.Anonymous)
	assert.Equal(t, "Paid(address,uint256)", ev.Sig)
	assert.Equal(t, "event Paid(address indexed arg0, uint256 arg1)", ev.String())
	assert.Equal(t, "arg1", ev.Inputs[1].Name)
}

func TestParseSelector(t *testing.T) {
	m, err := ParseSelector("transfer(address,uint256)")
	require.NoError(t, err)
	assert.Equal(t, "transfer(address,uint256)", m.Sig)
	assert.Equal(t, mustHex("aa65281f"), m.ID)
	assert.Equal(t, "arg1", m.Inputs[1].Name)

	m, err = ParseSelector("ping()")
	require.NoError(t, err)
	assert.Empty(t, m.Inputs)

	m, err = ParseSelector("f(uint[2],boolean)")
	require.NoError(t, err)
	assert.Equal(t, "f(uint256[2],bool)", m.Sig)

	for _, bad := range []string{"", "f", "f(", "f(uint256", "f(uint256,)", "f((uint256))", "f(uint256)x", "f(uint[a])"} {
		_, err := ParseSelector(bad)
		assert.Error(t, err, "selector %q", bad)
	}
}

func TestResolveNameConflict(t *testing.T) {
	used := map[string]bool{"send": true, "send0": true}
	assert.Equal(t, "send1", ResolveNameConflict("send", func(s string) bool { return used[s] }))
	assert.Equal(t, "recv", ResolveNameConflict("recv", func(s string) bool { return used[s] }))
}
