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

package vm

import (
	"math/big"
	"strings"
	"sync"

	"github.com/holiman/uint256"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/params"
)

var stackPool = sync.Pool{ // 栈对象池
	New: func() interface{} {
		return &Stack{data: make([]uint256.Int, 0, 16)} // 创建初始容量为16的栈
	},
}

// Stack is an object for basic stack operations over 256-bit words. Unlike
// the raw stack of a gas metered machine it checks its own bounds, so every
// operation that can fail returns an error instead of relying on a jump table
// pre-check.
// Stack 是 256 位字的操作数栈。每个可能失败的操作都自行检查边界并返回错误。
type Stack struct {
	data  []uint256.Int // 栈数据，栈顶在末尾
	limit int           // 最大高度
}

// NewStack returns an empty stack holding at most maxHeight words. A zero or
// negative height selects params.StackLimit.
// NewStack 返回一个空栈；maxHeight <= 0 时使用默认上限 1024。
func NewStack(maxHeight int) *Stack {
	if maxHeight <= 0 {
		maxHeight = int(params.StackLimit)
	}
	st := stackPool.Get().(*Stack)
	st.limit = maxHeight
	return st
}

// ReturnStack hands the stack back to the pool. The stack must not be used
// afterwards.
// ReturnStack 将栈归还对象池，之后不可再使用。
func ReturnStack(s *Stack) {
	s.data = s.data[:0]
	stackPool.Put(s)
}

// Data returns the underlying uint256.Int array, bottom first.
// Data 返回底层的uint256.Int数组。
func (st *Stack) Data() []uint256.Int {
	return st.data
}

// Len returns the number of words on the stack.
func (st *Stack) Len() int {
	return len(st.data)
}

// Limit returns the maximum height of the stack.
func (st *Stack) Limit() int {
	return st.limit
}

// Push places a copy of d on top of the stack.
// Push 将 d 的副本压入栈顶，栈满时返回 ErrStackOverflow。
func (st *Stack) Push(d *uint256.Int) error {
	if len(st.data) >= st.limit {
		return &ErrStackOverflow{stackLen: len(st.data), limit: st.limit}
	}
	st.data = append(st.data, *d)
	return nil
}

// PushBig pushes an arbitrary precision integer. Negative values and values
// of 2^256 or more are rejected with ErrOutOfRange.
// PushBig 压入任意精度整数；负数或 >= 2^256 的值返回 ErrOutOfRange。
func (st *Stack) PushBig(b *big.Int) error {
	if b == nil || b.Sign() < 0 {
		return ErrOutOfRange
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return ErrOutOfRange
	}
	return st.Push(v)
}

// Pop removes and returns the top word.
func (st *Stack) Pop() (uint256.Int, error) {
	if len(st.data) == 0 {
		return uint256.Int{}, &ErrStackUnderflow{stackLen: 0, required: 1}
	}
	ret := st.data[len(st.data)-1]      // 获取栈顶元素
	st.data = st.data[:len(st.data)-1] // 移除栈顶元素
	return ret, nil
}

// PopN removes the top n words and returns them in the order they were
// pushed: for a stack built by pushing a then b, PopN(2) returns [a, b].
// PopN 弹出栈顶 n 个元素，并按压栈顺序返回（先压入的在前）。
func (st *Stack) PopN(n int) ([]uint256.Int, error) {
	if err := st.Require(n); err != nil {
		return nil, err
	}
	if n <= 0 {
		return []uint256.Int{}, nil
	}
	start := len(st.data) - n
	ret := make([]uint256.Int, n)
	copy(ret, st.data[start:])
	st.data = st.data[:start]
	return ret, nil
}

// Require fails with ErrStackUnderflow unless at least n words are present.
func (st *Stack) Require(n int) error {
	if len(st.data) < n {
		return &ErrStackUnderflow{stackLen: len(st.data), required: n}
	}
	return nil
}

// Dup pushes a copy of the n'th word from the top, 1-indexed: Dup(1)
// duplicates the top.
// Dup 复制从栈顶数起第 n 个元素（从 1 开始）到栈顶。
func (st *Stack) Dup(n int) error {
	if n <= 0 {
		return &ErrStackUnderflow{stackLen: len(st.data), required: 1}
	}
	if err := st.Require(n); err != nil {
		return err
	}
	v := st.data[len(st.data)-n]
	return st.Push(&v)
}

// Swap exchanges the top word with the word n positions below it: Swap(1)
// exchanges the two top words.
// Swap 交换栈顶元素与其下方第 n 个元素。
func (st *Stack) Swap(n int) error {
	if n <= 0 {
		return &ErrStackUnderflow{stackLen: len(st.data), required: 2}
	}
	if err := st.Require(n + 1); err != nil {
		return err
	}
	head := len(st.data) - 1
	st.data[head], st.data[head-n] = st.data[head-n], st.data[head]
	return nil
}

// Peek returns the top word without removing it. The stack must not be empty.
func (st *Stack) Peek() *uint256.Int {
	return &st.data[len(st.data)-1]
}

// Back returns the n'th item in stack, counted from the top starting at zero.
// Back 返回栈中的第n个元素（栈顶为 0）。
func (st *Stack) Back(n int) *uint256.Int {
	return &st.data[len(st.data)-n-1]
}

// String renders every word as 0x-prefixed 32-byte hex, bottom first,
// separated by ", ".
func (st *Stack) String() string {
	words := make([]string, len(st.data))
	for i := range st.data {
		b := st.data[i].Bytes32()
		words[i] = "0x" + common.Bytes2Hex(b[:])
	}
	return strings.Join(words, ", ")
}
