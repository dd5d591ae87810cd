// Copyright 2016 The go-ethereum Authors
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
	"fmt"
)

var (
	// ErrShortBuffer is returned when fewer bytes remain than a word or a
	// declared length requires.
	// ErrShortBuffer 在剩余字节不足一个字或声明的长度时返回。
	ErrShortBuffer = errors.New("abi: short buffer")

	// ErrPadding is returned when a zero padding region holds nonzero bytes.
	// ErrPadding 在填充区域包含非零字节时返回。
	ErrPadding = errors.New("abi: nonzero padding")

	// ErrOutOfRange is returned when a value does not fit the declared width of its type.
	// ErrOutOfRange 在值超出类型声明宽度时返回。
	ErrOutOfRange = errors.New("abi: value out of range")

	// ErrInvalidCount is returned when the count header of a bytes value is not a
	// multiple of 32 or does not match its size word.
	// ErrInvalidCount 在 bytes 的计数头不是 32 的倍数或与长度字不匹配时返回。
	ErrInvalidCount = errors.New("abi: invalid count")

	// ErrTrailingData is returned when a decode leaves input unconsumed.
	// ErrTrailingData 在解码后仍有未消费的输入时返回。
	ErrTrailingData = errors.New("abi: trailing data")

	// ErrNotNull is returned when a null word is not all zero, or a non-nil value
	// is encoded as null.
	ErrNotNull = errors.New("abi: not null")

	// ErrUnsupportedType is returned for type tags the codec does not know.
	ErrUnsupportedType = errors.New("abi: unsupported type")

	// ErrInvalidValue is returned when a Go value cannot be converted to the
	// representation its type expects.
	// ErrInvalidValue 在 Go 值无法转换为类型所需的表示时返回。
	ErrInvalidValue = errors.New("abi: invalid value")
)

// typeErr wraps err with the type it was raised for.
func typeErr(t Type, err error) error {
	return fmt.Errorf("%w (type %s)", err, t)
}

// rangeErr reports a value outside the range of t.
func rangeErr(t Type, v interface{}) error {
	return fmt.Errorf("%w: %v does not fit %s", ErrOutOfRange, v, t)
}

// valueErr reports a Go value of the wrong kind for t.
func valueErr(t Type, v interface{}) error {
	return fmt.Errorf("%w: cannot use %T as %s", ErrInvalidValue, v, t)
}
