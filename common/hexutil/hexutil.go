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

/*
Package hexutil implements hex encoding with 0x prefix, and resolves the
byte-buffer arguments accepted at the command line and in ABI JSON.

Encoding rules: all byte slices are encoded as lower-case hex with a 0x prefix.
Buffers given without a prefix are read as hex when they are well-formed hex and
as standard base64 otherwise.
*/
package hexutil

import (
	"encoding/base64"
	"encoding/hex"
	"regexp"
)

// Errors
var (
	ErrEmptyString   = &decError{"empty hex string"}
	ErrSyntax        = &decError{"invalid hex string"}
	ErrMissingPrefix = &decError{"hex string without 0x prefix"}
	ErrOddLength     = &decError{"hex string of odd length"}
	ErrInvalidBuffer = &decError{"neither hex nor base64"}
)

type decError struct{ msg string }

func (err decError) Error() string { return err.msg }

// hexRegex matches whole byte pairs of lower-case hex, the form produced by Encode.
// hexRegex 匹配成对的小写十六进制字符。
var hexRegex = regexp.MustCompile(`^([0-9a-f]{2})+$`)

// Decode decodes a hex string with 0x prefix.
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, ErrEmptyString
	}
	if !has0xPrefix(input) {
		return nil, ErrMissingPrefix
	}
	b, err := hex.DecodeString(input[2:])
	if err != nil {
		err = mapError(err)
	}
	return b, err
}

// MustDecode decodes a hex string with 0x prefix. It panics for invalid input.
func MustDecode(input string) []byte {
	dec, err := Decode(input)
	if err != nil {
		panic(err)
	}
	return dec
}

// Encode encodes b as a hex string with 0x prefix.
func Encode(b []byte) string {
	enc := make([]byte, len(b)*2+2)
	copy(enc, "0x")
	hex.Encode(enc[2:], b)
	return string(enc)
}

// IsValidHex reports whether s is non-empty, lower-case hex of even length, without prefix.
func IsValidHex(s string) bool {
	return hexRegex.MatchString(s)
}

// IsValidHash reports whether s is the unprefixed hex form of a 32 byte hash.
func IsValidHash(s string) bool {
	return len(s) == 64 && IsValidHex(s)
}

// Resolve turns a buffer argument into bytes.
// A 0x prefix forces hex. Without it the input is read as hex when it is
// well-formed hex, and as standard base64 otherwise.
// Resolve 将缓冲区参数转换为字节：0x 前缀强制十六进制，否则先尝试十六进制再尝试 base64。
func Resolve(input string) ([]byte, error) {
	if has0xPrefix(input) {
		b, err := hex.DecodeString(input[2:])
		if err != nil {
			return nil, mapError(err)
		}
		return b, nil
	}
	if input == "" {
		return []byte{}, nil
	}
	if b, err := hex.DecodeString(input); err == nil {
		return b, nil
	}
	b, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return nil, ErrInvalidBuffer
	}
	return b, nil
}

func has0xPrefix(input string) bool {
	return len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X')
}

func mapError(err error) error {
	if _, ok := err.(hex.InvalidByteError); ok {
		return ErrSyntax
	}
	if err == hex.ErrLength {
		return ErrOddLength
	}
	return err
}
