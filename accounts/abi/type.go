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

package abi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	UintTy byte = iota
	IntTy
	FixedBytesTy
	TokenIdTy
	AddressTy
	BoolTy
	NullTy
	BytesTy
	StringTy
	SliceTy
	ArrayTy
)

// Type is the parsed form of an ABI type tag. Primitive kinds carry their
// size (bits for integers, bytes for bytesK); array forms carry their element.
// Type 是 ABI 类型标签的解析形式。基本类型携带大小（整数为位数，bytesK 为字节数），数组类型携带元素类型。
type Type struct {
	Elem *Type // 数组元素类型
	Size int   // 整数位宽、bytesK 的字节数或定长数组的长度
	T    byte  // 类型枚举

	stringKind string // canonical tag, e.g. uint256 or address[2] 规范标签
}

var (
	// typeRegex parses the abi sub types
	// typeRegex 解析 ABI 子类型
	typeRegex = regexp.MustCompile("^([a-zA-Z]+)([0-9]+)?$")

	// arrayRegex grabs the trailing array suffix
	// arrayRegex 获取末尾的数组后缀
	arrayRegex = regexp.MustCompile(`^(.*)\[([0-9]*)\]$`)
)

// NewType parses a type tag such as uint8, bytes32, address, tokenId, bool,
// string, uint64[] or address[3].
// NewType 解析类型标签。
func NewType(t string) (typ Type, err error) {
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, fmt.Errorf("%w: unbalanced brackets in %q", ErrUnsupportedType, t)
	}
	if m := arrayRegex.FindStringSubmatch(t); m != nil {
		elem, err := NewType(m[1])
		if err != nil {
			return Type{}, err
		}
		if elem.T == SliceTy || elem.T == ArrayTy {
			return Type{}, fmt.Errorf("%w: nested array %q", ErrUnsupportedType, t)
		}
		// 动态类型元素没有固定宽度，无法逐字拼接
		if elem.IsDynamic() {
			return Type{}, fmt.Errorf("%w: array of dynamic type %q", ErrUnsupportedType, t)
		}
		typ.Elem = &elem
		if m[2] == "" {
			typ.T = SliceTy
			typ.stringKind = elem.stringKind + "[]"
			return typ, nil
		}
		typ.T = ArrayTy
		typ.Size, err = strconv.Atoi(m[2])
		if err != nil || typ.Size == 0 {
			return Type{}, fmt.Errorf("%w: invalid array length in %q", ErrUnsupportedType, t)
		}
		typ.stringKind = fmt.Sprintf("%s[%d]", elem.stringKind, typ.Size)
		return typ, nil
	}

	matches := typeRegex.FindStringSubmatch(t)
	if matches == nil {
		return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
	}
	kind, sizeStr := matches[1], matches[2]

	var varSize int
	if sizeStr != "" {
		varSize, err = strconv.Atoi(sizeStr)
		if err != nil {
			return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
		}
	}
	switch kind {
	case "uint", "int":
		if sizeStr == "" {
			varSize = 256
		}
		if varSize == 0 || varSize > 256 || varSize%8 != 0 {
			return Type{}, fmt.Errorf("%w: invalid integer width in %q", ErrUnsupportedType, t)
		}
		typ.Size = varSize
		if kind == "uint" {
			typ.T = UintTy
		} else {
			typ.T = IntTy
		}
		typ.stringKind = kind + strconv.Itoa(varSize)
	case "bytes":
		if sizeStr == "" {
			typ.T = BytesTy
			typ.stringKind = "bytes"
			break
		}
		if varSize == 0 || varSize > 32 {
			return Type{}, fmt.Errorf("%w: invalid bytes width in %q", ErrUnsupportedType, t)
		}
		typ.T = FixedBytesTy
		typ.Size = varSize
		typ.stringKind = "bytes" + strconv.Itoa(varSize)
	default:
		if sizeStr != "" {
			return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
		}
		switch kind {
		case "address":
			typ.T = AddressTy
		case "tokenId":
			typ.T = TokenIdTy
		case "bool", "boolean":
			typ.T = BoolTy
			kind = "bool"
		case "null":
			typ.T = NullTy
		case "string":
			typ.T = StringTy
		default:
			return Type{}, fmt.Errorf("%w: %q", ErrUnsupportedType, t)
		}
		typ.stringKind = kind
	}
	return typ, nil
}

// MustNewType is like NewType but panics on error. Intended for package
// level type tables.
func MustNewType(t string) Type {
	typ, err := NewType(t)
	if err != nil {
		panic(err)
	}
	return typ
}

// String implements Stringer.
func (t Type) String() (out string) {
	return t.stringKind
}

// Equal reports whether t and other denote the same tag.
func (t Type) Equal(other Type) bool {
	return t.stringKind == other.stringKind
}

// IsDynamic reports whether the encoded length of a value depends on the value.
// IsDynamic 判断编码长度是否取决于值本身。
func (t Type) IsDynamic() bool {
	return t.T == BytesTy || t.T == StringTy || t.T == SliceTy
}

// wordCount returns the number of words a value of a static type occupies.
func (t Type) wordCount() int {
	if t.T == ArrayTy {
		return t.Size * t.Elem.wordCount()
	}
	return 1
}
