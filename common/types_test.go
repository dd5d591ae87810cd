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

package common

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccountAddr  = "vite_00000000000000000000000000000000000000042d7ef71894"
	testContractAddr = "vite_0000000000000000000000000000000000000004d28108e76b"
)

func TestComputeChecksum(t *testing.T) {
	assert.Len(t, ComputeChecksum([]byte("vite"), 5), 5)
	assert.Len(t, ComputeChecksum(nil, 2), 2)

	var core [AddressCoreLength]byte
	core[AddressCoreLength-1] = 4
	assert.Equal(t, "2d7ef71894", Bytes2Hex(ComputeChecksum(core[:], AddressChecksumLength)))
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		text string
		want AddressType
	}{
		{testAccountAddr, AccountAddress},
		{testContractAddr, ContractAddress},
		// flipped last checksum nibble
		{"vite_00000000000000000000000000000000000000042d7ef71895", InvalidAddress},
		// upper case hex is rejected by the pattern
		{"vite_0000000000000000000000000000000000000004D28108E76B", InvalidAddress},
		{"vite_0000000000000000000000000000000000000004d28108e7", InvalidAddress},
		{"tti_5649544520544f4b454e6e40", InvalidAddress},
		{"", InvalidAddress},
	}
	for i, tt := range tests {
		assert.Equal(t, tt.want, ValidateAddress(tt.text), "Test case %d: %s", i, tt.text)
	}
}

func TestEncodeAddress(t *testing.T) {
	var core [AddressCoreLength]byte
	core[AddressCoreLength-1] = 4

	assert.Equal(t, testAccountAddr, EncodeAddress(core, false))
	assert.Equal(t, testContractAddr, EncodeAddress(core, true))

	// encoding then validating returns the kind that was encoded
	for _, contract := range []bool{false, true} {
		core := [AddressCoreLength]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}
		want := AccountAddress
		if contract {
			want = ContractAddress
		}
		assert.Equal(t, want, ValidateAddress(EncodeAddress(core, contract)))
	}
}

func TestParseAddress(t *testing.T) {
	a, err := ParseAddress(testContractAddr)
	require.NoError(t, err)
	assert.True(t, a.IsContract())
	assert.Equal(t, byte(4), a[AddressCoreLength-1])
	assert.Equal(t, testContractAddr, a.String())

	a, err = ParseAddress(testAccountAddr)
	require.NoError(t, err)
	assert.False(t, a.IsContract())

	_, err = ParseAddress("vite_00000000000000000000000000000000000000042d7ef71895")
	assert.True(t, errors.Is(err, ErrInvalidChecksum))

	_, err = ParseAddress("vite_xyz")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestBytesToAddress(t *testing.T) {
	raw := make([]byte, AddressLength)
	raw[AddressCoreLength] = 1
	a, err := BytesToAddress(raw)
	require.NoError(t, err)
	assert.True(t, a.IsContract())

	raw[AddressCoreLength] = 2
	_, err = BytesToAddress(raw)
	assert.True(t, errors.Is(err, ErrInvalidFormat), "flag byte must be 0 or 1")

	_, err = BytesToAddress(raw[:20])
	assert.True(t, errors.Is(err, ErrInvalidFormat))

	a, err = HexToAddress("0x000000000000000000000000000000000000000401")
	require.NoError(t, err)
	assert.Equal(t, testContractAddr, a.String())
}

func TestTokenId(t *testing.T) {
	assert.True(t, IsValidTokenId("tti_5649544520544f4b454e6e40"))
	assert.False(t, IsValidTokenId("tti_5649544520544f4b454e6e41"))
	assert.False(t, IsValidTokenId("tti_5649544520544f4b454e"))
	assert.Equal(t, "VITE TOKEN", string(ViteTokenId[:]))
	assert.Equal(t, "tti_5649544520544f4b454e6e40", EncodeTokenId(ViteTokenId))

	for _, id := range []TokenId{UsdtTokenId, BtcTokenId, EthTokenId} {
		parsed, err := ParseTokenId(id.String())
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}

	_, err := ParseTokenId("tti_5649544520544f4b454e6e41")
	assert.True(t, errors.Is(err, ErrInvalidChecksum))
	_, err = ParseTokenId("vite_00")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestTextMarshalling(t *testing.T) {
	type record struct {
		Addr  Address
		Token TokenId
		Hash  Hash
	}
	in := record{
		Addr:  MustParseAddress(testContractAddr),
		Token: ViteTokenId,
		Hash:  BytesToHash([]byte{1}),
	}
	blob, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(blob), testContractAddr)
	assert.Contains(t, string(blob), "tti_5649544520544f4b454e6e40")

	var out record
	require.NoError(t, json.Unmarshal(blob, &out))
	assert.Equal(t, in, out)
}

func TestHashMarshalText(t *testing.T) {
	tests := []Hash{{}, BytesToHash([]byte{0x11, 0x22}), BytesToHash(make([]byte, 32))}
	for i, h := range tests {
		text, err := h.MarshalText()
		require.NoError(t, err, "Test case %d", i)
		assert.Equal(t, "0x"+h.Hex(), string(text), "Test case %d", i)

		var out Hash
		require.NoError(t, out.UnmarshalText(text), "Test case %d", i)
		assert.Equal(t, h, out, "Test case %d", i)
	}
	// the unprefixed form is still accepted
	var out Hash
	require.NoError(t, out.UnmarshalText([]byte(BytesToHash([]byte{7}).Hex())))
	assert.Equal(t, BytesToHash([]byte{7}), out)
}

func TestHash(t *testing.T) {
	h := BytesToHash([]byte{1, 2})
	assert.Equal(t, byte(2), h[31])
	assert.Equal(t, byte(1), h[30])

	long := make([]byte, 40)
	long[39] = 9
	assert.Equal(t, byte(9), BytesToHash(long)[31], "cropped from the left")

	parsed, err := HexToHash("0x" + h.Hex())
	require.NoError(t, err)
	assert.Equal(t, h, parsed)
	_, err = HexToHash("0x01")
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}
