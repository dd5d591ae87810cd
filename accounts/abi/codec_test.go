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
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitelabs/vitecore/common"
)

const (
	testAccountAddr  = "vite_00000000000000000000000000000000000000042d7ef71894"
	testContractAddr = "vite_0000000000000000000000000000000000000004d28108e76b"
	testTokenId      = "tti_5649544520544f4b454e6e40"
)

// word builds a 32 byte word from hex, left padded.
func word(h string) []byte {
	b, err := common.FromHex(h)
	if err != nil {
		panic(err)
	}
	return common.LeftPadBytes(b, 32)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		tag   string
		value interface{}
	}{
		{"uint8", big.NewInt(0)},
		{"uint8", big.NewInt(255)},
		{"uint256", new(big.Int).Set(common.MaxBig256)},
		{"uint64", new(big.Int).SetUint64(^uint64(0))},
		{"int8", big.NewInt(-127)},
		{"int8", big.NewInt(127)},
		{"int256", big.NewInt(-1)},
		{"int64", big.NewInt(-9000000000)},
		{"bytes1", []byte{0xff}},
		{"bytes3", []byte{1, 2, 3}},
		{"bytes32", bytes.Repeat([]byte{0xab}, 32)},
		{"tokenId", testTokenId},
		{"address", testAccountAddr},
		{"address", testContractAddr},
		{"bool", true},
		{"bool", false},
		{"null", nil},
		{"bytes", []byte{}},
		{"bytes", []byte("hi")},
		{"bytes", bytes.Repeat([]byte{7}, 32)},
		{"bytes", bytes.Repeat([]byte{7}, 33)},
		{"string", ""},
		{"string", "hi"},
		{"string", strings.Repeat("vite", 20)},
		{"string", "\xff\xfe"},
		{"uint16[]", []interface{}{big.NewInt(1), big.NewInt(65535)}},
		{"uint16[]", []interface{}{}},
		{"address[2]", []interface{}{testAccountAddr, testContractAddr}},
	}
	for i, tt := range tests {
		typ := MustNewType(tt.tag)
		enc, err := Encode(typ, tt.value)
		require.NoError(t, err, "Test case %d: %s", i, tt.tag)
		assert.Zero(t, len(enc)%32, "Test case %d: encoding must be word aligned", i)

		dec, rest, err := Decode(typ, enc)
		require.NoError(t, err, "Test case %d: %s", i, tt.tag)
		assert.Empty(t, rest, "Test case %d", i)
		assert.IsType(t, tt.value, dec, "Test case %d: %s", i, tt.tag)
		assert.Equal(t, FormatValue(tt.value), FormatValue(dec), "Test case %d: %s", i, tt.tag)

		reenc, err := Encode(typ, dec)
		require.NoError(t, err, "Test case %d", i)
		assert.Equal(t, enc, reenc, "Test case %d: re-encoding must reproduce the wire bytes", i)
	}
}

func TestDecodeLeftover(t *testing.T) {
	data := append(word("05"), word("06")...)
	v, rest, err := Decode(MustNewType("uint8"), data)
	require.NoError(t, err)
	assert.Equal(t, "5", FormatValue(v))
	assert.Equal(t, word("06"), rest)

	_, _, err = Decode(MustNewType("uint8"), make([]byte, 31))
	assert.True(t, errors.Is(err, ErrShortBuffer))
}

func TestUintRange(t *testing.T) {
	typ := MustNewType("uint8")
	_, err := Encode(typ, 255)
	assert.NoError(t, err)
	_, err = Encode(typ, 256)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	_, err = Encode(typ, -1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = Encode(MustNewType("uint256"), common.TT256())
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// decode does not range check the declared width
	v, _, err := Decode(typ, word("0100"))
	require.NoError(t, err)
	assert.Equal(t, "256", FormatValue(v))
}

func TestIntRange(t *testing.T) {
	typ := MustNewType("int8")
	for _, ok := range []int{127, -127, 0, 1, -1} {
		_, err := Encode(typ, ok)
		assert.NoError(t, err, "%d should fit int8", ok)
	}
	for _, bad := range []int{128, -128, 1000} {
		_, err := Encode(typ, bad)
		assert.True(t, errors.Is(err, ErrOutOfRange), "%d should not fit int8", bad)
	}

	enc, err := Encode(typ, -1)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xff}, 32), enc, "negative values are written as v + 2^256")

	enc, err = Encode(typ, -127)
	require.NoError(t, err)
	assert.Equal(t, byte(0x81), enc[31])
}

func TestFixedBytes(t *testing.T) {
	typ := MustNewType("bytes3")
	v, _, err := Decode(typ, word("010203"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, v)

	bad := word("010203")
	bad[0] = 1
	_, _, err = Decode(typ, bad)
	assert.True(t, errors.Is(err, ErrPadding))

	enc, err := Encode(typ, []byte{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, word("010203"), enc, "right aligned")

	_, err = Encode(typ, []byte{1, 2})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	enc, err = Encode(typ, "0x0a0b0c")
	require.NoError(t, err)
	assert.Equal(t, word("0a0b0c"), enc)
}

func TestAddressWord(t *testing.T) {
	typ := MustNewType("address")
	enc, err := Encode(typ, testContractAddr)
	require.NoError(t, err)
	assert.Equal(t, word("000000000000000000000000000000000000000401"), enc)

	enc2, err := Encode(typ, common.MustParseAddress(testContractAddr))
	require.NoError(t, err)
	assert.Equal(t, enc, enc2)

	v, _, err := Decode(typ, word("000000000000000000000000000000000000000400"))
	require.NoError(t, err)
	assert.Equal(t, testAccountAddr, v)

	// flag byte other than 0 or 1
	_, _, err = Decode(typ, word("000000000000000000000000000000000000000402"))
	assert.True(t, errors.Is(err, common.ErrInvalidFormat))

	padded := word("01")
	padded[10] = 1
	_, _, err = Decode(typ, padded)
	assert.True(t, errors.Is(err, ErrPadding))

	_, err = Encode(typ, "vite_00000000000000000000000000000000000000042d7ef71895")
	assert.True(t, errors.Is(err, common.ErrInvalidChecksum))
	_, err = Encode(typ, 42)
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestTokenIdWord(t *testing.T) {
	typ := MustNewType("tokenId")
	enc, err := Encode(typ, common.ViteTokenId)
	require.NoError(t, err)
	assert.Equal(t, word("5649544520544f4b454e"), enc)

	bad := common.CopyBytes(enc)
	bad[21] = 1
	_, _, err = Decode(typ, bad)
	assert.True(t, errors.Is(err, ErrPadding))
}

func TestBoolAndNull(t *testing.T) {
	v, _, err := Decode(MustNewType("bool"), word("0100000000"))
	require.NoError(t, err)
	assert.Equal(t, true, v, "any nonzero byte is true")

	enc, err := Encode(MustNewType("bool"), true)
	require.NoError(t, err)
	assert.Equal(t, word("01"), enc)

	_, _, err = Decode(MustNewType("null"), word("01"))
	assert.True(t, errors.Is(err, ErrNotNull))
	_, err = Encode(MustNewType("null"), 0)
	assert.True(t, errors.Is(err, ErrNotNull))
}

func TestStringFraming(t *testing.T) {
	typ := MustNewType("string")
	enc, err := Encode(typ, "hi")
	require.NoError(t, err)
	want := append(word("02"), common.RightPadBytes([]byte("hi"), 32)...)
	assert.Equal(t, want, enc)

	v, rest, err := Decode(typ, enc)
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
	assert.Empty(t, rest)

	_, _, err = Decode(typ, append(word("21"), make([]byte, 32)...))
	assert.True(t, errors.Is(err, ErrShortBuffer), "33 bytes announced, 64 needed")
}

func TestBytesFraming(t *testing.T) {
	typ := MustNewType("bytes")
	enc, err := Encode(typ, []byte("hi"))
	require.NoError(t, err)
	want := append(word("20"), word("02")...)
	want = append(want, common.RightPadBytes([]byte("hi"), 32)...)
	assert.Equal(t, want, enc, "count word, size word, padded payload")

	enc, err = Encode(typ, []byte{})
	require.NoError(t, err)
	assert.Equal(t, make([]byte, 64), enc)

	tests := []struct {
		data []byte
		err  error
	}{
		{append(append(word("21"), word("02")...), make([]byte, 64)...), ErrInvalidCount},
		{append(append(word("40"), word("02")...), make([]byte, 64)...), ErrInvalidCount},
		{append(append(word("20"), word("21")...), make([]byte, 32)...), ErrInvalidCount},
		{append(word("20"), word("02")...), ErrShortBuffer},
		{word("20"), ErrShortBuffer},
	}
	for i, tt := range tests {
		_, _, err := Decode(typ, tt.data)
		assert.True(t, errors.Is(err, tt.err), "Test case %d: got %v, want %v", i, err, tt.err)
	}

	// leftover starts after the count bytes
	data := append(common.CopyBytes(want), word("ff")...)
	_, rest, err := Decode(typ, data)
	require.NoError(t, err)
	assert.Equal(t, word("ff"), rest)
}

func TestArrays(t *testing.T) {
	enc, err := Encode(MustNewType("uint8[]"), []byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, append(append(word("02"), word("01")...), word("02")...), enc)

	enc, err = Encode(MustNewType("uint8[2]"), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, append(word("01"), word("02")...), enc)

	_, err = Encode(MustNewType("uint8[2]"), []int{1})
	assert.True(t, errors.Is(err, ErrInvalidValue))
	_, err = Encode(MustNewType("uint8[]"), []int{1, 300})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	// length word larger than the remaining words
	_, _, err = Decode(MustNewType("uint8[]"), append(word("03"), word("01")...))
	assert.True(t, errors.Is(err, ErrShortBuffer))
}
