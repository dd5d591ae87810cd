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

package asm

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// stateFn is used through the lifetime of the lexer to parse the different
// values at the current state.
// stateFn 在词法分析器的生命周期中用于解析当前状态下的不同值
type stateFn func(*lexer) stateFn

// token is emitted when the lexer has discovered a new parsable token.
type token struct {
	typ    tokenType // 标记类型
	lineno int       // 行号
	text   string    // 标记文本
}

// tokenType are the different types the lexer is able to parse and return.
type tokenType int

const (
	eof         tokenType = iota // end of file 文件结束
	lineEnd                      // emitted when a line ends 行结束
	invalid                      // any character the lexer does not understand 无法识别的字符
	element                      // opcode or directive name 操作码或指令名
	label                        // label reference, @name 标签引用
	labelDef                     // label definition, name: 标签定义
	number                       // decimal or 0x hex number 数字
	stringValue                  // double quoted string 字符串
)

func (t tokenType) String() string {
	switch t {
	case eof:
		return "EOF"
	case lineEnd:
		return "end of line"
	case element:
		return "element"
	case label:
		return "label"
	case labelDef:
		return "label definition"
	case number:
		return "number"
	case stringValue:
		return "string"
	default:
		return "invalid"
	}
}

const (
	decimalNumbers = "1234567890"
	hexNumbers     = decimalNumbers + "aAbBcCdDeEfF"
)

// lexer turns assembly source into tokens for the compiler. Lexing is
// synchronous: the whole source is tokenized up front.
// lexer 将汇编源码同步地切分为标记。
type lexer struct {
	input  string  // 程序源码
	tokens []token // 已发出的标记

	lineno            int // 当前行号
	start, pos, width int // 当前标记的起止位置
}

// lex tokenizes source. The result always ends with an eof token.
func lex(source []byte) []token {
	l := &lexer{input: string(source)}
	for state := stateFn(lexLine); state != nil; {
		state = state(l)
	}
	l.emit(lineEnd)
	l.emit(eof)
	return l.tokens
}

// next returns the next rune in the program's source.
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return 0
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

// backup steps back over the last rune read by next.
func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// ignore drops the text read so far.
func (l *lexer) ignore() {
	l.start = l.pos
}

// accept consumes the next rune if it is in valid.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes runes for as long as they are in valid.
func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// acceptWhile consumes runes for as long as ok holds.
func (l *lexer) acceptWhile(ok func(rune) bool) {
	for r := l.next(); r != 0 && ok(r); r = l.next() {
	}
	l.backup()
}

func (l *lexer) emit(t tokenType) {
	l.tokens = append(l.tokens, token{t, l.lineno, l.input[l.start:l.pos]})
	l.start = l.pos
}

func isIdent(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// lexLine is state function for lexing lines
// lexLine 是用于词法分析行的状态函数
func lexLine(l *lexer) stateFn {
	for {
		switch r := l.next(); {
		case r == 0 && l.pos >= len(l.input):
			return nil
		case r == '\n':
			l.emit(lineEnd)
			l.lineno++
		case r == ';' && l.peek() == ';':
			l.acceptWhile(func(r rune) bool { return r != '\n' })
			l.ignore()
		case unicode.IsSpace(r):
			l.ignore()
		case unicode.IsLetter(r) || r == '_':
			return lexElement
		case unicode.IsDigit(r):
			return lexNumber
		case r == '@':
			l.ignore()
			l.acceptWhile(isIdent)
			l.emit(label)
		case r == '"':
			return lexString
		default:
			l.emit(invalid)
			return nil
		}
	}
}

func lexString(l *lexer) stateFn {
	l.acceptWhile(func(r rune) bool { return r != '"' && r != '\n' })
	if !l.accept("\"") {
		l.emit(invalid)
		return nil
	}
	l.emit(stringValue)
	return lexLine
}

func lexNumber(l *lexer) stateFn {
	acceptance := decimalNumbers
	if l.accept("xX") {
		acceptance = hexNumbers
	}
	l.acceptRun(acceptance)
	l.emit(number)
	return lexLine
}

func lexElement(l *lexer) stateFn {
	l.acceptWhile(isIdent)
	if l.peek() == ':' {
		l.emit(labelDef)
		l.accept(":")
		l.ignore()
	} else {
		l.emit(element)
	}
	return lexLine
}
