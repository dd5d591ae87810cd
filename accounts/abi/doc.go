// Copyright 2015 The go-ethereum Authors
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

// Package abi implements the Vite ABI (Application Binary Interface).
//
// Every fixed-size value occupies one 32 byte big-endian word: integers of
// 8 to 256 bits, bytes1 to bytes32, tokenId (10 bytes), address (20 byte
// hash and a contract flag byte), bool and null. The two dynamic types are
// framed differently: bytes carries a count word (the length rounded up to
// 32) and a size word before its padded payload, string carries only its size
// word. Signed integers accept the symmetric range [-(2^(N-1)-1), 2^(N-1)-1].
//
// Method ids are the first 4 bytes of the blake2b-256 digest of the method
// signature; event ids are the full digest.
//
// abi 包实现了 Vite 的 ABI（应用二进制接口）。
//
// 所有定长值占用一个 32 字节大端字；bytes 与 string 的帧格式不同，
// bytes 带有计数字和长度字，string 只有长度字。有符号整数的取值范围是对称的。
// 方法 ID 为签名 blake2b-256 摘要的前 4 字节，事件 ID 为完整摘要。
package abi
