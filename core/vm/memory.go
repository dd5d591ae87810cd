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

package vm

import (
	"sync"

	"github.com/holiman/uint256"

	"github.com/vitelabs/vitecore/params"
)

// memoryPool 是用于重用 Memory 实例的同步池，以减少内存分配开销。
var memoryPool = sync.Pool{
	New: func() any {
		return &Memory{}
	},
}

// Memory implements a simple byte addressable memory for the vm. It grows on
// demand, always to a multiple of 32 bytes, and zero fills new space.
// Memory 实现了虚拟机的线性内存模型，按需以 32 字节为单位扩展并以零填充。
type Memory struct {
	store []byte // 存储实际内存数据的字节切片
}

// NewMemory returns a new memory model.
// NewMemory 返回一个新的内存模型。
func NewMemory() *Memory {
	return memoryPool.Get().(*Memory)
}

// Free returns the memory to the pool.
// Free 将内存返回到池中。
func (m *Memory) Free() {
	// To reduce peak allocation, return only smaller memory instances to the pool.
	// 为了减少峰值分配，仅将较小的内存实例返回到池中。
	const maxBufferSize = 16 << 10
	if cap(m.store) <= maxBufferSize {
		m.store = m.store[:0]
		memoryPool.Put(m)
	}
}

// region validates offset and size and returns them as native integers,
// resizing the store so the region is addressable.
func (m *Memory) region(offset, size uint64) (uint64, uint64, error) {
	if size == 0 {
		return offset, 0, nil
	}
	if offset > params.MaxMemorySize || size > params.MaxMemorySize || offset+size > params.MaxMemorySize {
		return 0, 0, ErrMemoryOverflow
	}
	m.Resize(offset + size)
	return offset, size, nil
}

// Read returns a copy of size bytes starting at offset, growing the memory
// when the region lies past its end.
// Read 返回从 offset 开始的 size 字节副本，必要时扩展内存。
func (m *Memory) Read(offset, size uint64) ([]byte, error) {
	offset, size, err := m.region(offset, size)
	if err != nil || size == 0 {
		return []byte{}, err
	}
	cpy := make([]byte, size)
	copy(cpy, m.store[offset:offset+size])
	return cpy, nil
}

// Write copies data into memory at offset.
// Write 将 data 写入 offset 处。
func (m *Memory) Write(offset uint64, data []byte) error {
	offset, size, err := m.region(offset, uint64(len(data)))
	if err != nil || size == 0 {
		return err
	}
	copy(m.store[offset:offset+size], data)
	return nil
}

// Set32 sets the 32 bytes starting at offset to the value of val, left-padded with zeroes to
// 32 bytes.
// Set32 将从 offset 开始的 32 个字节设置为 val 的值，左侧用零填充至 32 字节。
func (m *Memory) Set32(offset uint64, val *uint256.Int) error {
	offset, _, err := m.region(offset, 32)
	if err != nil {
		return err
	}
	val.PutUint256(m.store[offset:])
	return nil
}

// SetByte stores a single byte at offset.
func (m *Memory) SetByte(offset uint64, b byte) error {
	offset, _, err := m.region(offset, 1)
	if err != nil {
		return err
	}
	m.store[offset] = b
	return nil
}

// Resize grows the memory to hold at least size bytes, rounded up to a
// whole number of words. It never shrinks.
// Resize 将内存扩展到至少 size 字节（向上取整到 32 字节）。
func (m *Memory) Resize(size uint64) {
	size = (size + 31) / 32 * 32
	if uint64(m.Len()) < size {
		m.store = append(m.store, make([]byte, size-uint64(m.Len()))...)
	}
}

// Len returns the length of the backing slice
// Len 返回底层切片的长度。
func (m *Memory) Len() int {
	return len(m.store)
}

// Data returns the backing slice
// Data 返回底层切片。
func (m *Memory) Data() []byte {
	return m.store
}
