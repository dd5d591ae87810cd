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

package params

const (
	StackLimit uint64 = 1024 // Maximum size of VM stack allowed.
	// StackLimit 是 VM 栈允许的最大大小。

	WordSize = 32 // Size in bytes of a VM word and of an ABI wire word.
	// WordSize 是 VM 字和 ABI 编码字的字节大小。

	MaxPushSize = 32 // Largest immediate carried by PUSH32.
	// MaxPushSize 是 PUSH32 携带的最大立即数长度。

	MethodIdLength = 4 // Leading bytes of the blake2b-256 signature digest used as method selector.
	// MethodIdLength 是方法选择器的长度，取签名 blake2b-256 摘要的前 4 字节。

	EventTopicLength = 32 // An event topic is the full blake2b-256 signature digest.
	// EventTopicLength 是事件主题的长度，即完整的 blake2b-256 摘要。

	SignedBoundaryBits = 128 // Words at or above 2^128 are read as negative by SDIV, SMOD, SLT and SGT.
	// SignedBoundaryBits：SDIV、SMOD、SLT、SGT 将大于等于 2^128 的字视为负数。

	MaxMemorySize = 32 * 1024 * 1024 // Upper bound of the linear VM memory, offsets past it fail.
	// MaxMemorySize 是虚拟机线性内存的上限，超出的偏移量会报错。

	DefaultBalanceCacheSize = 32 * 1024 * 1024 // Bytes of fastcache backing the cached balance provider.
	// DefaultBalanceCacheSize 是余额缓存的默认字节数。
)
