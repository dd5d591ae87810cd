// Copyright 2022 The go-ethereum Authors
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
	"strings"
)

// isDigit checks if the given byte is a digit (0-9).
// isDigit 检查给定字节是否为数字字符（0-9）。
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha checks if the given byte is an alphabet character (a-z or A-Z).
// isAlpha 检查给定字节是否为字母字符（a-z 或 A-Z）。
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentifierSymbol checks if the given byte is a valid identifier symbol ($ or _).
func isIdentifierSymbol(c byte) bool {
	return c == '$' || c == '_'
}

// parseToken parses a token from the unescapedSelector string based on whether it's an identifier.
// parseToken 从 unescapedSelector 字符串中解析一个标记，基于它是否是标识符。
func parseToken(unescapedSelector string, isIdent bool) (string, string, error) {
	if len(unescapedSelector) == 0 {
		return "", "", errors.New("empty token")
	}
	firstChar := unescapedSelector[0]
	position := 1
	if !(isAlpha(firstChar) || (isIdent && isIdentifierSymbol(firstChar))) {
		return "", "", fmt.Errorf("invalid token start: %c", firstChar)
	}
	for position < len(unescapedSelector) {
		char := unescapedSelector[position]
		if !(isAlpha(char) || isDigit(char) || (isIdent && isIdentifierSymbol(char))) {
			break
		}
		position++
	}
	return unescapedSelector[:position], unescapedSelector[position:], nil
}

// parseElementaryType parses an elementary type (e.g., uint256, address[2]) from the unescapedSelector string.
// parseElementaryType 解析一个基本类型及其数组后缀。
func parseElementaryType(unescapedSelector string) (string, string, error) {
	parsedType, rest, err := parseToken(unescapedSelector, false)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse elementary type: %v", err)
	}
	// handle arrays 处理数组类型
	for len(rest) > 0 && rest[0] == '[' {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", "", fmt.Errorf("failed to parse array: expected ']' in %q", rest)
		}
		for _, c := range []byte(rest[1:end]) {
			if !isDigit(c) {
				return "", "", fmt.Errorf("failed to parse array: unexpected %c", c)
			}
		}
		parsedType += rest[:end+1]
		rest = rest[end+1:]
	}
	return parsedType, rest, nil
}

// ParseSelector parses a method signature such as transfer(address,uint256)
// into a Method whose inputs are named arg0, arg1 and so on. Tuples are not
// part of the ledger ABI and are rejected.
// ParseSelector 将方法签名解析为 Method，输入参数依次命名为 arg0、arg1 等。
func ParseSelector(unescapedSelector string) (Method, error) {
	name, rest, err := parseToken(unescapedSelector, true)
	if err != nil {
		return Method{}, fmt.Errorf("failed to parse selector '%s': %v", unescapedSelector, err)
	}
	if len(rest) == 0 || rest[0] != '(' {
		return Method{}, fmt.Errorf("failed to parse selector '%s': expected '('", unescapedSelector)
	}
	rest = rest[1:]

	var inputs Arguments
	for len(rest) > 0 && rest[0] != ')' {
		if len(inputs) > 0 {
			if rest[0] != ',' {
				return Method{}, fmt.Errorf("failed to parse selector '%s': expected ',', got %q", unescapedSelector, rest)
			}
			rest = rest[1:]
		}
		var tag string
		tag, rest, err = parseElementaryType(rest)
		if err != nil {
			return Method{}, fmt.Errorf("failed to parse selector '%s': %v", unescapedSelector, err)
		}
		arg, err := NewArgument(fmt.Sprintf("arg%d", len(inputs)), tag)
		if err != nil {
			return Method{}, fmt.Errorf("failed to parse selector '%s': %w", unescapedSelector, err)
		}
		inputs = append(inputs, arg)
	}
	// 确保解析完毕后没有剩余字符串
	if rest != ")" {
		return Method{}, fmt.Errorf("failed to parse selector '%s': unexpected string '%s'", unescapedSelector, rest)
	}
	return NewMethod(name, name, Function, inputs, nil), nil
}
