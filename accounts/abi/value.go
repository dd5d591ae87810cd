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

package abi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/common/hexutil"
	"github.com/vitelabs/vitecore/params"
)

// 值的表示：整数在内部使用 *big.Int，仅在边界（命令行、JSON）处使用十进制字符串。

// toBigInt converts the Go integer representations accepted by Encode.
// toBigInt 转换 Encode 接受的各种 Go 整数表示。
func toBigInt(t Type, v interface{}) (*big.Int, error) {
	switch n := v.(type) {
	case *big.Int:
		if n == nil {
			return nil, valueErr(t, v)
		}
		return n, nil
	case big.Int:
		return &n, nil
	case *uint256.Int:
		if n == nil {
			return nil, valueErr(t, v)
		}
		return n.ToBig(), nil
	case decimal.Decimal:
		if !n.IsInteger() {
			return nil, fmt.Errorf("%w: %s is not an integer", ErrInvalidValue, n)
		}
		return n.BigInt(), nil
	case string:
		return parseInteger(n)
	case int:
		return big.NewInt(int64(n)), nil
	case int8:
		return big.NewInt(int64(n)), nil
	case int16:
		return big.NewInt(int64(n)), nil
	case int32:
		return big.NewInt(int64(n)), nil
	case int64:
		return big.NewInt(n), nil
	case uint:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(n)), nil
	case uint64:
		return new(big.Int).SetUint64(n), nil
	}
	return nil, valueErr(t, v)
}

// parseInteger parses 0x-prefixed hex or a decimal literal. Decimal literals
// may use exponent notation (1e18) as long as the value is integral.
// parseInteger 解析 0x 十六进制或十进制整数；十进制支持指数表示法，但值必须为整数。
func parseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	neg := strings.HasPrefix(s, "-")
	unsigned := strings.TrimPrefix(s, "-")
	if common.Has0xPrefix(unsigned) {
		n, ok := new(big.Int).SetString(unsigned[2:], 16)
		if !ok {
			return nil, fmt.Errorf("%w: invalid hex integer %q", ErrInvalidValue, s)
		}
		if neg {
			n.Neg(n)
		}
		return n, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid integer %q", ErrInvalidValue, s)
	}
	if !d.IsInteger() {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, s)
	}
	return d.BigInt(), nil
}

// toBytes converts the byte representations accepted by Encode. Strings are
// resolved as 0x hex, bare hex or base64.
func toBytes(t Type, v interface{}) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case common.Hash:
		return b[:], nil
	case string:
		out, err := hexutil.Resolve(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		return out, nil
	}
	return nil, valueErr(t, v)
}

// ParseValue parses the text form of a value of type t, as given on the
// command line or in JSON. Arrays are written as JSON arrays.
// ParseValue 解析类型 t 的文本形式的值；数组使用 JSON 数组表示。
func ParseValue(t Type, s string) (interface{}, error) {
	switch t.T {
	case UintTy, IntTy:
		return parseInteger(s)
	case FixedBytesTy, BytesTy:
		return toBytes(t, s)
	case AddressTy:
		if _, err := common.ParseAddress(s); err != nil {
			return nil, err
		}
		return s, nil
	case TokenIdTy:
		if _, err := common.ParseTokenId(s); err != nil {
			return nil, err
		}
		return s, nil
	case BoolTy:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid bool %q", ErrInvalidValue, s)
		}
		return b, nil
	case NullTy:
		if s != "" && s != "null" {
			return nil, fmt.Errorf("%w: %q", ErrNotNull, s)
		}
		return nil, nil
	case StringTy:
		return s, nil
	case SliceTy, ArrayTy:
		dec := json.NewDecoder(strings.NewReader(s))
		dec.UseNumber()
		var elems []interface{}
		if err := dec.Decode(&elems); err != nil {
			return nil, fmt.Errorf("%w: %s expects a JSON array: %v", ErrInvalidValue, t, err)
		}
		out := make([]interface{}, len(elems))
		for i, e := range elems {
			v, err := ParseValue(*t.Elem, fmt.Sprint(e))
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			out[i] = v
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, t)
}

// FormatValue renders a decoded value: integers in decimal, byte strings as
// 0x hex, arrays in brackets.
// FormatValue 渲染解码后的值：整数为十进制，字节为 0x 十六进制，数组使用方括号。
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case *big.Int:
		return x.String()
	case []byte:
		return hexutil.Encode(x)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	case []interface{}:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(FormatValue(e))
		}
		buf.WriteByte(']')
		return buf.String()
	}
	return fmt.Sprint(v)
}

// ParseAmount parses a token amount. A "vite" suffix (any case) scales the
// number by the 18 decimals of VITE, otherwise the value is taken in attov.
// ParseAmount 解析代币数量；带 vite 后缀时按 18 位小数换算，否则按 attov 计。
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	shift := int32(0)
	if lower := strings.ToLower(s); strings.HasSuffix(lower, "vite") {
		s = strings.TrimSpace(s[:len(s)-len("vite")])
		shift = params.ViteDecimals
	} else if strings.HasSuffix(lower, "attov") {
		s = strings.TrimSpace(s[:len(s)-len("attov")])
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid amount %q", ErrInvalidValue, s)
	}
	d = d.Shift(shift)
	if !d.IsInteger() || d.IsNegative() {
		return nil, fmt.Errorf("%w: amount %q is not a whole number of attov", ErrInvalidValue, s)
	}
	return d.BigInt(), nil
}

// FormatAmount renders an attov amount in VITE.
func FormatAmount(attov *big.Int) string {
	return decimal.NewFromBigInt(attov, -params.ViteDecimals).String() + " VITE"
}
