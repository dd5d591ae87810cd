// Copyright 2014 The go-ethereum Authors
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
	"crypto/ed25519"
	"encoding/binary"
	"hash"

	"github.com/vitelabs/vitecore/common"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Vite 使用 BLAKE2b 作为主要哈希算法：
// - 地址由公钥的 20 字节 BLAKE2b 摘要加 1 字节合约标志构成。
// - 区块哈希、方法选择器和事件签名均为 32 字节 BLAKE2b 摘要。
// Keccak-256 仅保留给兼容 EVM 的 SHA3 指令。

// DigestLength sets the signature digest exact length
// DigestLength 设置签名摘要的确切长度
const DigestLength = 32

// KeccakState wraps sha3.state. In addition to the usual hash methods, it also supports
// Read to get a variable amount of data from the hash state. Read is faster than Sum
// because it doesn't copy the internal state, but also modifies the internal state.
//
// KeccakState 封装了 sha3.state。除了通常的哈希方法外，它还支持 Read 方法，
// 以从哈希状态中获取可变数量的数据。
type KeccakState interface {
	hash.Hash
	Read([]byte) (int, error)
}

// NewKeccakState creates a new KeccakState
// NewKeccakState 创建一个新的 KeccakState
func NewKeccakState() KeccakState {
	return sha3.NewLegacyKeccak256().(KeccakState)
}

// HashData hashes the provided data using the KeccakState and returns a 32 byte hash
// 使用 KeccakState 对提供的输入数据进行哈希计算，并返回一个 32 字节的哈希值
func HashData(kh KeccakState, data []byte) (h common.Hash) {
	kh.Reset()
	kh.Write(data)
	kh.Read(h[:])
	return h
}

// Keccak256 calculates and returns the Keccak256 hash of the input data.
// Keccak256 计算并返回输入数据的 Keccak256 哈希值。
func Keccak256(data ...[]byte) []byte {
	b := make([]byte, 32)
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(b)
	return b
}

// Keccak256Hash calculates and returns the Keccak256 hash of the input data,
// converting it to an internal Hash data structure.
func Keccak256Hash(data ...[]byte) (h common.Hash) {
	d := NewKeccakState()
	for _, b := range data {
		d.Write(b)
	}
	d.Read(h[:])
	return h
}

// NewBlake2b returns a BLAKE2b hasher producing size byte digests (1..64).
// NewBlake2b 返回输出 size 字节摘要的 BLAKE2b 哈希器。
func NewBlake2b(size int) hash.Hash {
	h, err := blake2b.New(size, nil)
	if err != nil {
		panic(err)
	}
	return h
}

// Blake2b calculates the size byte BLAKE2b digest of the concatenated input.
func Blake2b(size int, data ...[]byte) []byte {
	d := NewBlake2b(size)
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}

// Blake2b256 calculates the 32 byte BLAKE2b digest of the input data.
// Blake2b256 计算输入数据的 32 字节 BLAKE2b 摘要（区块哈希、方法签名、事件主题）。
func Blake2b256(data ...[]byte) []byte {
	return Blake2b(32, data...)
}

// Blake2b256Hash is like Blake2b256 but returns a Hash.
func Blake2b256Hash(data ...[]byte) (h common.Hash) {
	copy(h[:], Blake2b256(data...))
	return h
}

// PubkeyToAddress derives the account address of an ed25519 public key: the
// 20 byte BLAKE2b digest of the key followed by the account flag.
// PubkeyToAddress 由 ed25519 公钥推导账户地址：公钥的 20 字节 BLAKE2b 摘要 + 标志位 0x00。
func PubkeyToAddress(p ed25519.PublicKey) common.Address {
	var core [common.AddressCoreLength]byte
	copy(core[:], Blake2b(common.AddressCoreLength, p))
	return common.NewAddress(core, false)
}

// CreateContractAddress derives the address of a contract deployed by creator
// from the creator's account block at height whose previous hash is prevHash.
// CreateContractAddress 计算合约地址：
// blake2b-20(创建者原始地址 21 字节 || 高度 8 字节大端 || 前一区块哈希 32 字节)，标志位 0x01。
func CreateContractAddress(creator common.Address, height uint64, prevHash common.Hash) common.Address {
	var heightBuf [8]byte
	binary.BigEndian.PutUint64(heightBuf[:], height)

	var core [common.AddressCoreLength]byte
	copy(core[:], Blake2b(common.AddressCoreLength, creator[:], heightBuf[:], prevHash[:]))
	return common.NewAddress(core, true)
}
