// Copyright 2017 The go-ethereum Authors
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
	"fmt"
	"math/big"

	"github.com/vitelabs/vitecore/common"
)

// readWord splits the first word off data.
// readWord 从 data 中取出第一个 32 字节字。
func readWord(t Type, data []byte) ([]byte, []byte, error) {
	if len(data) < wordSize {
		return nil, nil, fmt.Errorf("%w: %s needs %d bytes, have %d", ErrShortBuffer, t, wordSize, len(data))
	}
	return data[:wordSize], data[wordSize:], nil
}

// readLength reads a length header and bounds it by the bytes that remain.
func readLength(t Type, word []byte, remaining int) (int, error) {
	l := new(big.Int).SetBytes(word)
	if !l.IsUint64() || l.Uint64() > uint64(remaining) {
		return 0, fmt.Errorf("%w: %s announces %s bytes, have %d", ErrShortBuffer, t, l, remaining)
	}
	return int(l.Uint64()), nil
}

// checkPadding requires the leading n bytes of word to be zero.
func checkPadding(t Type, word []byte, n int) error {
	if !common.IsZeroBytes(word[:n]) {
		return fmt.Errorf("%w: %s expects %d leading zero bytes", ErrPadding, t, n)
	}
	return nil
}

// Decode reads one value of type t from the front of data and returns it
// together with the bytes that follow it.
// Decode 从 data 开头读取一个类型为 t 的值，并返回值和剩余字节。
func Decode(t Type, data []byte) (interface{}, []byte, error) {
	switch t.T {
	case SliceTy, ArrayTy:
		return unpackArray(t, data)
	case BytesTy:
		return unpackBytes(t, data)
	case StringTy:
		return unpackString(t, data)
	}

	word, rest, err := readWord(t, data)
	if err != nil {
		return nil, nil, err
	}
	switch t.T {
	case UintTy:
		return new(big.Int).SetBytes(word), rest, nil

	case IntTy:
		v := new(big.Int).SetBytes(word)
		limit := new(big.Int).Sub(new(big.Int).Lsh(common.Big1, uint(t.Size-1)), common.Big1)
		if v.Cmp(limit) > 0 {
			v.Sub(v, common.TT256())
		}
		return v, rest, nil

	case FixedBytesTy:
		if err := checkPadding(t, word, wordSize-t.Size); err != nil {
			return nil, nil, err
		}
		return common.CopyBytes(word[wordSize-t.Size:]), rest, nil

	case TokenIdTy:
		if err := checkPadding(t, word, wordSize-common.TokenIdLength); err != nil {
			return nil, nil, err
		}
		var id common.TokenId
		copy(id[:], word[wordSize-common.TokenIdLength:])
		return id.String(), rest, nil

	case AddressTy:
		if err := checkPadding(t, word, wordSize-common.AddressLength); err != nil {
			return nil, nil, err
		}
		addr, err := common.BytesToAddress(word[wordSize-common.AddressLength:])
		if err != nil {
			return nil, nil, typeErr(t, err)
		}
		return addr.String(), rest, nil

	case BoolTy:
		return !common.IsZeroBytes(word), rest, nil

	case NullTy:
		if !common.IsZeroBytes(word) {
			return nil, nil, fmt.Errorf("%w: nonzero word", ErrNotNull)
		}
		return nil, rest, nil
	}
	return nil, nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
}

// unpackBytes reads count word, size word and count bytes of padded payload.
// The count must be the size rounded up to a multiple of 32.
// unpackBytes 读取计数字、长度字以及 count 字节的填充数据；count 必须等于长度向上取整到 32 的倍数。
func unpackBytes(t Type, data []byte) (interface{}, []byte, error) {
	countWord, rest, err := readWord(t, data)
	if err != nil {
		return nil, nil, err
	}
	if countWord[wordSize-1]%wordSize != 0 {
		return nil, nil, fmt.Errorf("%w: count %s is not a multiple of 32", ErrInvalidCount, new(big.Int).SetBytes(countWord))
	}
	sizeWord, rest, err := readWord(t, rest)
	if err != nil {
		return nil, nil, err
	}
	count, err := readLength(t, countWord, len(rest))
	if err != nil {
		return nil, nil, err
	}
	size, err := readLength(t, sizeWord, count)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: size exceeds count %d", ErrInvalidCount, count)
	}
	if roundUp32(size) != count {
		return nil, nil, fmt.Errorf("%w: count %d does not frame size %d", ErrInvalidCount, count, size)
	}
	return common.CopyBytes(rest[:size]), rest[count:], nil
}

// unpackString reads a size word followed by the payload padded to 32 bytes.
// unpackString 读取长度字以及填充到 32 字节倍数的数据。
func unpackString(t Type, data []byte) (interface{}, []byte, error) {
	sizeWord, rest, err := readWord(t, data)
	if err != nil {
		return nil, nil, err
	}
	size, err := readLength(t, sizeWord, len(rest))
	if err != nil {
		return nil, nil, err
	}
	padded := roundUp32(size)
	if padded > len(rest) {
		return nil, nil, fmt.Errorf("%w: %s needs %d padded bytes, have %d", ErrShortBuffer, t, padded, len(rest))
	}
	return string(rest[:size]), rest[padded:], nil
}

// unpackArray reads T[N] as N consecutive elements and T[] as a length word
// followed by that many elements.
func unpackArray(t Type, data []byte) (interface{}, []byte, error) {
	n := t.Size
	rest := data
	if t.T == SliceTy {
		word, r, err := readWord(t, data)
		if err != nil {
			return nil, nil, err
		}
		// 每个元素至少占用一个字
		maxElems := len(r) / (wordSize * t.Elem.wordCount())
		n, err = readLength(t, word, maxElems)
		if err != nil {
			return nil, nil, err
		}
		rest = r
	}
	out := make([]interface{}, n)
	for i := 0; i < n; i++ {
		v, r, err := Decode(*t.Elem, rest)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = v
		rest = r
	}
	return out, rest, nil
}
