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
	"errors"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitelabs/vitecore/common"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		want string // FormatValue of the parsed value
	}{
		{"uint256", "1000", "1000"},
		{"uint256", "1e18", "1000000000000000000"},
		{"uint256", "0xff", "255"},
		{"int8", "-5", "-5"},
		{"int64", "-0x10", "-16"},
		{"bytes2", "0x0102", "0x0102"},
		{"bytes", "AQI=", "0x0102"},
		{"bool", "true", "true"},
		{"null", "null", "null"},
		{"string", "hello", "hello"},
		{"address", testContractAddr, testContractAddr},
		{"tokenId", testTokenId, testTokenId},
		{"uint8[]", `[1, "2", 3]`, "[1, 2, 3]"},
		{"address[1]", `["` + testAccountAddr + `"]`, "[" + testAccountAddr + "]"},
	}
	for i, tt := range tests {
		v, err := ParseValue(MustNewType(tt.tag), tt.text)
		require.NoError(t, err, "Test case %d: %s %s", i, tt.tag, tt.text)
		assert.Equal(t, tt.want, FormatValue(v), "Test case %d", i)

		_, err = Encode(MustNewType(tt.tag), v)
		assert.NoError(t, err, "Test case %d: parsed values must be encodable", i)
	}
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		tag  string
		text string
		err  error
	}{
		{"uint256", "1.5", ErrInvalidValue},
		{"uint256", "abc", ErrInvalidValue},
		{"uint256", "0xzz", ErrInvalidValue},
		{"bool", "maybe", ErrInvalidValue},
		{"null", "0", ErrNotNull},
		{"address", "vite_1234", common.ErrInvalidFormat},
		{"tokenId", "tti_5649544520544f4b454e6e41", common.ErrInvalidChecksum},
		{"uint8[]", "1,2", ErrInvalidValue},
		{"uint8[]", `["x"]`, ErrInvalidValue},
	}
	for i, tt := range tests {
		_, err := ParseValue(MustNewType(tt.tag), tt.text)
		assert.True(t, errors.Is(err, tt.err), "Test case %d: got %v, want %v", i, err, tt.err)
	}
}

func TestEncodeIntegerInputs(t *testing.T) {
	typ := MustNewType("uint64")
	want := word("2a")
	for i, v := range []interface{}{
		42, int8(42), int64(42), uint(42), uint8(42), uint32(42), uint64(42),
		big.NewInt(42), *big.NewInt(42), uint256.NewInt(42), decimal.NewFromInt(42), "42", "0x2a", "4.2e1",
	} {
		enc, err := Encode(typ, v)
		require.NoError(t, err, "Test case %d: %T", i, v)
		assert.Equal(t, want, enc, "Test case %d: %T", i, v)
	}
	_, err := Encode(typ, 4.2)
	assert.True(t, errors.Is(err, ErrInvalidValue), "floats are rejected")
	_, err = Encode(typ, (*big.Int)(nil))
	assert.True(t, errors.Is(err, ErrInvalidValue))
	_, err = Encode(typ, decimal.RequireFromString("4.2"))
	assert.True(t, errors.Is(err, ErrInvalidValue))
}

func TestAmounts(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"1", "1"},
		{"1 VITE", "1000000000000000000"},
		{"1.5vite", "1500000000000000000"},
		{"25 attov", "25"},
		{"0.000000000000000001 vite", "1"},
	}
	for i, tt := range tests {
		v, err := ParseAmount(tt.text)
		require.NoError(t, err, "Test case %d", i)
		assert.Equal(t, tt.want, v.String(), "Test case %d", i)
	}
	for _, bad := range []string{"0.5", "-1", "1e-19 vite", "lots"} {
		_, err := ParseAmount(bad)
		assert.True(t, errors.Is(err, ErrInvalidValue), "amount %q", bad)
	}
	assert.Equal(t, "1.5 VITE", FormatAmount(big.NewInt(1500000000000000000)))
}

func TestArgumentCodec(t *testing.T) {
	arg, err := NewArgument("amount", "uint8")
	require.NoError(t, err)

	enc, err := EncodeArgument(7, arg)
	require.NoError(t, err)
	assert.Equal(t, word("07"), enc, "no framing is added")

	v, err := DecodeArgument(enc, arg)
	require.NoError(t, err)
	assert.Equal(t, "7", FormatValue(v))

	_, err = DecodeArgument(append(enc, word("00")...), arg)
	assert.True(t, errors.Is(err, ErrTrailingData))

	_, err = DecodeArgument(enc[:16], arg)
	assert.True(t, errors.Is(err, ErrShortBuffer))

	args := Arguments{arg, {Name: "ok", Type: MustNewType("bool")}}
	enc, err = args.Encode(1, true)
	require.NoError(t, err)
	values, err := args.Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "true"}, []string{FormatValue(values[0]), FormatValue(values[1])})
	assert.Equal(t, []string{"uint8", "bool"}, args.Types())

	_, err = args.Decode(append(enc, 0))
	assert.True(t, errors.Is(err, ErrTrailingData))

	var parsed Argument
	require.NoError(t, parsed.UnmarshalJSON([]byte(`{"name":"to","type":"address","indexed":true}`)))
	assert.Equal(t, "to", parsed.Name)
	assert.True(t, parsed.Indexed)
	assert.Equal(t, AddressTy, parsed.Type.T)
}
