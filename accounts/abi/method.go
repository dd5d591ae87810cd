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
	"fmt"
	"strings"

	"github.com/vitelabs/vitecore/crypto"
	"github.com/vitelabs/vitecore/params"
)

// FunctionType represents different types of functions a contract might have.
// FunctionType 表示合约可能拥有的函数类型。
type FunctionType int

const (
	// Constructor represents the constructor of the contract.
	// The constructor function is called while deploying a contract.
	Constructor FunctionType = iota
	// Fallback represents the fallback function.
	// This function is executed if no other function matches the given function
	// signature.
	Fallback
	// Function represents a normal function.
	Function
	// Offchain represents a read-only getter executed off-chain against
	// contract state, without a send block.
	// Offchain 表示链下执行的只读查询函数，不产生发送块。
	Offchain
)

func (t FunctionType) String() string {
	switch t {
	case Constructor:
		return "constructor"
	case Fallback:
		return "fallback"
	case Offchain:
		return "offchain"
	default:
		return "function"
	}
}

// Method represents a callable given a `Name`, its kind and its arguments.
// Method 表示一个可调用的函数，具有名称、输入和输出参数。
type Method struct {
	// Name is the method name used for internal representation. It's derived from
	// the raw name and a suffix will be added in the case of a function overload.
	//
	// e.g.
	// These are two functions that have the same name:
	// * foo(int,int)
	// * foo(uint,uint)
	// The method name of the first one will be resolved as foo while the second one
	// will be resolved as foo0.
	// Name 是内部使用的方法名；发生重载时在原始名称后追加数字后缀。
	Name    string
	RawName string // RawName is the raw method name parsed from ABI

	// Type indicates whether the method is a normal function, an off-chain
	// getter, the constructor or the fallback.
	Type FunctionType

	Inputs  Arguments
	Outputs Arguments
	str     string

	// Sig returns the methods string signature according to the ABI spec.
	// e.g.		function foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	// Sig 是方法的规范签名字符串。
	Sig string

	// ID returns the canonical representation of the method's signature used by the
	// abi definition to identify method names and types: the first 4 bytes of
	// the blake2b-256 digest of Sig.
	// ID 是 Sig 的 blake2b-256 摘要的前 4 字节。
	ID []byte
}

// NewMethod creates a new Method.
// A method should always be created using NewMethod.
// It also precomputes the sig representation and the string representation
// of the method.
// NewMethod 创建一个新的 Method，并预计算签名和字符串表示。
func NewMethod(name string, rawName string, funType FunctionType, inputs Arguments, outputs Arguments) Method {
	var (
		types       = make([]string, len(inputs))
		inputNames  = make([]string, len(inputs))
		outputNames = make([]string, len(outputs))
	)
	for i, input := range inputs {
		inputNames[i] = fmt.Sprintf("%v %v", input.Type, input.Name)
		types[i] = input.Type.String()
	}
	for i, output := range outputs {
		outputNames[i] = output.Type.String()
		if len(output.Name) > 0 {
			outputNames[i] += fmt.Sprintf(" %v", output.Name)
		}
	}
	// calculate the signature and method id. Note only function
	// has meaningful signature and id.
	// 计算签名和方法 ID；只有普通函数和链下函数有意义的签名和 ID。
	var (
		sig string
		id  []byte
	)
	if funType == Function || funType == Offchain {
		sig = fmt.Sprintf("%v(%v)", rawName, strings.Join(types, ","))
		id = crypto.Blake2b256([]byte(sig))[:params.MethodIdLength]
	}
	var str string
	switch funType {
	case Fallback:
		str = fmt.Sprintf("fallback(%v)", strings.Join(inputNames, ", "))
	case Constructor:
		str = fmt.Sprintf("constructor(%v)", strings.Join(inputNames, ", "))
	default:
		str = fmt.Sprintf("%v %v(%v)", funType, rawName, strings.Join(inputNames, ", "))
		if len(outputs) > 0 {
			str += fmt.Sprintf(" returns(%v)", strings.Join(outputNames, ", "))
		}
	}
	return Method{
		Name:    name,
		RawName: rawName,
		Type:    funType,
		Inputs:  inputs,
		Outputs: outputs,
		str:     str,
		Sig:     sig,
		ID:      id,
	}
}

// String returns the human readable declaration of the method.
func (method Method) String() string {
	return method.str
}

// IsOffchain reports whether the method is an off-chain getter.
func (method Method) IsOffchain() bool {
	return method.Type == Offchain
}
