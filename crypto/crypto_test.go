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

package crypto

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vitelabs/vitecore/common"
)

// These tests are sanity checks.
// They should ensure that we don't e.g. use Sha3-224 instead of Sha3-256
// and that the sha3 library uses keccak-f permutation.
func TestKeccak256Hash(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hex.DecodeString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := Keccak256Hash(in); return h[:] }, msg, exp)

	empty, _ := hex.DecodeString("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	checkhash(t, "Sha3-256-empty", func(in []byte) []byte { return Keccak256(in) }, nil, empty)
}

func TestKeccak256Hasher(t *testing.T) {
	msg := []byte("abc")
	exp, _ := hex.DecodeString("4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45")
	hasher := NewKeccakState()
	checkhash(t, "Sha3-256-array", func(in []byte) []byte { h := HashData(hasher, in); return h[:] }, msg, exp)
}

func TestBlake2b256(t *testing.T) {
	exp, _ := hex.DecodeString("bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319")
	checkhash(t, "Blake2b-256", func(in []byte) []byte { return Blake2b256(in) }, []byte("abc"), exp)

	empty, _ := hex.DecodeString("0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")
	h := Blake2b256Hash()
	assert.Equal(t, empty, h[:])

	// split input hashes like the concatenation
	assert.Equal(t, Blake2b256([]byte("abc")), Blake2b256([]byte("a"), []byte("bc")))
	assert.Len(t, Blake2b(5, []byte("abc")), 5)
}

func TestPubkeyToAddress(t *testing.T) {
	pub := ed25519.PublicKey(bytes.Repeat([]byte{1}, ed25519.PublicKeySize))
	addr := PubkeyToAddress(pub)
	assert.False(t, addr.IsContract())
	assert.Equal(t, "vite_fa5c47912cc22dce628071b48d2386bd511656e3a2e5f80e93", addr.String())
}

func TestCreateContractAddress(t *testing.T) {
	creator := common.MustParseAddress("vite_00000000000000000000000000000000000000042d7ef71894")
	addr := CreateContractAddress(creator, 1, common.Hash{})
	assert.True(t, addr.IsContract())
	assert.Equal(t, "vite_66c6b147a7a76912509c8ea888236d78c08073ee9bd9d9803a", addr.String())
	assert.Equal(t, common.ContractAddress, common.ValidateAddress(addr.String()))

	other := CreateContractAddress(creator, 2, common.Hash{})
	assert.NotEqual(t, addr, other, "height is part of the preimage")
}

func checkhash(t *testing.T, name string, f func([]byte) []byte, msg, exp []byte) {
	sum := f(msg)
	if !bytes.Equal(exp, sum) {
		t.Fatalf("hash %s mismatch: want: %x have: %x", name, exp, sum)
	}
}
