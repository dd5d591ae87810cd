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
	"math/big"

	"github.com/holiman/uint256"
)

// Common big integers often used
var (
	Big0   = big.NewInt(0)
	Big1   = big.NewInt(1)
	Big2   = big.NewInt(2)
	Big3   = big.NewInt(3)
	Big32  = big.NewInt(32)
	Big256 = big.NewInt(256)
	Big257 = big.NewInt(257)

	U2560 = uint256.NewInt(0)
)

var (
	// tt256 is 2^256, the modulus of the word arithmetic
	tt256 = new(big.Int).Lsh(Big1, 256)
	// MaxBig256 is 2^256-1, the largest value a word can hold
	MaxBig256 = new(big.Int).Sub(tt256, Big1)
	// tt128 is 2^128, the signed boundary used by the vite instruction set
	tt128 = new(big.Int).Lsh(Big1, 128)
)

// TT256 returns a fresh copy of 2^256.
func TT256() *big.Int { return new(big.Int).Set(tt256) }

// TT128 returns a fresh copy of 2^128.
func TT128() *big.Int { return new(big.Int).Set(tt128) }

// BigPow returns a ** b as a big integer.
func BigPow(a, b int64) *big.Int {
	r := big.NewInt(a)
	return r.Exp(r, big.NewInt(b), nil)
}

// U256 encodes x as a 256 bit two's complement number. It mutates and returns x.
// U256 将 x 编码为 256 位二进制补码数，会修改并返回 x。
func U256(x *big.Int) *big.Int {
	return x.And(x, MaxBig256)
}

// S256 interprets x as a two's complement number.
// x must not exceed 256 bits (the result is undefined if it does) and is not modified.
//
//	S256(0)        = 0
//	S256(1)        = 1
//	S256(2**255)   = -2**255
//	S256(2**256-1) = -1
func S256(x *big.Int) *big.Int {
	if x.Cmp(new(big.Int).Rsh(tt256, 1)) < 0 {
		return x
	}
	return new(big.Int).Sub(x, tt256)
}

// PaddedBigBytes encodes a big integer as a big-endian byte slice. The length
// of the slice is at least n bytes.
func PaddedBigBytes(bigint *big.Int, n int) []byte {
	return LeftPadBytes(bigint.Bytes(), n)
}

// Uint256FromBig converts b into a word, reporting whether it fit.
// Uint256FromBig 将 b 转换为 256 位字，返回是否溢出。
func Uint256FromBig(b *big.Int) (*uint256.Int, bool) {
	if b.Sign() < 0 {
		return nil, true
	}
	return uint256.FromBig(b)
}

// ParseBig256 parses s as a 256 bit integer in decimal or 0x prefixed hex.
// Leading zeros are accepted, an empty string parses as zero.
// ParseBig256 解析十进制或 0x 前缀十六进制的 256 位整数。
func ParseBig256(s string) (*big.Int, bool) {
	if s == "" {
		return new(big.Int), true
	}
	var (
		bigint *big.Int
		ok     bool
	)
	if Has0xPrefix(s) {
		bigint, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		bigint, ok = new(big.Int).SetString(s, 10)
	}
	if ok && bigint.BitLen() > 256 {
		bigint, ok = nil, false
	}
	return bigint, ok
}
