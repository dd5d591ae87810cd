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
	"fmt"
	"math/big"
	"reflect"

	"github.com/vitelabs/vitecore/common"
)

// 编码规则：
// 所有定长类型恰好占用一个 32 字节字（定长数组占用 N 个字）。
// bytes 编码为 计数字（长度向上取整到 32 的倍数）+ 长度字 + 填充后的数据；
// string 编码为 长度字 + 填充后的数据。两者的不对称是链上格式的一部分，必须保持。

const wordSize = 32

// packNum packs a non-negative word value, or a negative one already shifted
// by 2^256, as a left padded big-endian word.
// packNum 将数值打包为左填充的大端 32 字节字。
func packNum(v *big.Int) []byte {
	return common.PaddedBigBytes(v, wordSize)
}

// packLength packs a length header word.
func packLength(l int) []byte {
	return packNum(new(big.Int).SetUint64(uint64(l)))
}

// roundUp32 rounds l up to the next multiple of 32 (0 stays 0).
func roundUp32(l int) int {
	return (l + wordSize - 1) / wordSize * wordSize
}

// Encode packs v according to t. No framing is added around the value.
// Encode 根据类型 t 编码 v，不附加额外的帧。
func Encode(t Type, v interface{}) ([]byte, error) {
	switch t.T {
	case UintTy:
		n, err := toBigInt(t, v)
		if err != nil {
			return nil, err
		}
		if n.Sign() < 0 || n.BitLen() > t.Size {
			return nil, rangeErr(t, n)
		}
		return packNum(n), nil

	case IntTy:
		n, err := toBigInt(t, v)
		if err != nil {
			return nil, err
		}
		// 有符号范围是对称的：[-(2^(N-1)-1), 2^(N-1)-1]
		limit := new(big.Int).Sub(new(big.Int).Lsh(common.Big1, uint(t.Size-1)), common.Big1)
		if n.CmpAbs(limit) > 0 {
			return nil, rangeErr(t, n)
		}
		if n.Sign() < 0 {
			n = new(big.Int).Add(n, common.TT256())
		}
		return packNum(n), nil

	case FixedBytesTy:
		b, err := toBytes(t, v)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, rangeErr(t, fmt.Sprintf("length %d", len(b)))
		}
		return common.LeftPadBytes(b, wordSize), nil

	case TokenIdTy:
		var id common.TokenId
		switch tv := v.(type) {
		case common.TokenId:
			id = tv
		case *common.TokenId:
			id = *tv
		case string:
			parsed, err := common.ParseTokenId(tv)
			if err != nil {
				return nil, typeErr(t, err)
			}
			id = parsed
		default:
			return nil, valueErr(t, v)
		}
		return common.LeftPadBytes(id[:], wordSize), nil

	case AddressTy:
		var addr common.Address
		switch tv := v.(type) {
		case common.Address:
			addr = tv
		case *common.Address:
			addr = *tv
		case string:
			parsed, err := common.ParseAddress(tv)
			if err != nil {
				return nil, typeErr(t, err)
			}
			addr = parsed
		default:
			return nil, valueErr(t, v)
		}
		return common.LeftPadBytes(addr[:], wordSize), nil

	case BoolTy:
		b, ok := v.(bool)
		if !ok {
			return nil, valueErr(t, v)
		}
		if b {
			return packNum(common.Big1), nil
		}
		return packNum(common.Big0), nil

	case NullTy:
		if v != nil {
			return nil, fmt.Errorf("%w: got %T", ErrNotNull, v)
		}
		return make([]byte, wordSize), nil

	case BytesTy:
		b, err := toBytes(t, v)
		if err != nil {
			return nil, err
		}
		count := roundUp32(len(b))
		out := make([]byte, 0, 2*wordSize+count)
		out = append(out, packLength(count)...)
		out = append(out, packLength(len(b))...)
		return append(out, common.RightPadBytes(b, count)...), nil

	case StringTy:
		s, ok := v.(string)
		if !ok {
			return nil, valueErr(t, v)
		}
		out := packLength(len(s))
		return append(out, common.RightPadBytes([]byte(s), roundUp32(len(s)))...), nil

	case SliceTy, ArrayTy:
		return packArray(t, v)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
}

// packArray packs T[N] as N element words and T[] as a length word followed
// by the element words.
// packArray 将 T[N] 编码为 N 个元素字，T[] 编码为长度字加元素字。
func packArray(t Type, v interface{}) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, valueErr(t, v)
	}
	n := rv.Len()
	if t.T == ArrayTy && n != t.Size {
		return nil, fmt.Errorf("%w: %s expects %d elements, got %d", ErrInvalidValue, t, t.Size, n)
	}
	var out []byte
	if t.T == SliceTy {
		out = packLength(n)
	}
	for i := 0; i < n; i++ {
		enc, err := Encode(*t.Elem, rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, enc...)
	}
	return out, nil
}
