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
	"encoding/json"
	"fmt"
)

// Argument holds the name of the argument and the corresponding type.
// Argument 结构体保存参数的名称和对应的类型。
type Argument struct {
	Name    string
	Type    Type
	Indexed bool // indexed is only used by events (仅适用于事件)
}

type Arguments []Argument

type ArgumentMarshaling struct {
	Name    string
	Type    string
	Indexed bool
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 方法实现了 json.Unmarshaler 接口。
func (argument *Argument) UnmarshalJSON(data []byte) error {
	var arg ArgumentMarshaling
	err := json.Unmarshal(data, &arg)
	if err != nil {
		return fmt.Errorf("argument json err: %v", err)
	}
	argument.Type, err = NewType(arg.Type)
	if err != nil {
		return err
	}
	argument.Name = arg.Name
	argument.Indexed = arg.Indexed
	return nil
}

// NewArgument builds an argument from a name and a type tag.
func NewArgument(name, tag string) (Argument, error) {
	typ, err := NewType(tag)
	if err != nil {
		return Argument{}, err
	}
	return Argument{Name: name, Type: typ}, nil
}

// DecodeArgument decodes exactly one value of arg's type from raw. Unlike the
// primitive decoders it fails when any bytes are left over.
// DecodeArgument 从 raw 中解码恰好一个值；与基本解码器不同，有剩余字节时报错。
func DecodeArgument(raw []byte, arg Argument) (interface{}, error) {
	codec, err := DefaultRegistry().LookupType(arg.Type)
	if err != nil {
		return nil, err
	}
	v, rest, err := codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("argument %q: %w: %d bytes", arg.Name, ErrTrailingData, len(rest))
	}
	return v, nil
}

// EncodeArgument encodes value as arg's type, without any framing.
// EncodeArgument 按 arg 的类型编码 value，不附加帧。
func EncodeArgument(value interface{}, arg Argument) ([]byte, error) {
	codec, err := DefaultRegistry().LookupType(arg.Type)
	if err != nil {
		return nil, err
	}
	out, err := codec.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
	}
	return out, nil
}

// NonIndexed returns the arguments with indexed arguments filtered out.
// NonIndexed 方法返回过滤掉索引参数后的参数列表。
func (arguments Arguments) NonIndexed() Arguments {
	var ret []Argument
	for _, arg := range arguments {
		if !arg.Indexed {
			ret = append(ret, arg)
		}
	}
	return ret
}

// Decode decodes the arguments one after another, each consuming its words,
// and fails if bytes remain after the last one.
// Decode 依次解码各参数，最后仍有剩余字节时报错。
func (arguments Arguments) Decode(data []byte) ([]interface{}, error) {
	registry := DefaultRegistry()
	values := make([]interface{}, 0, len(arguments))
	rest := data
	for _, arg := range arguments {
		codec, err := registry.LookupType(arg.Type)
		if err != nil {
			return nil, err
		}
		var v interface{}
		v, rest, err = codec.Decode(rest)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
		values = append(values, v)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingData, len(rest))
	}
	return values, nil
}

// Encode concatenates the encodings of args.
// Encode 拼接各参数的编码。
func (arguments Arguments) Encode(args ...interface{}) ([]byte, error) {
	if len(args) != len(arguments) {
		return nil, fmt.Errorf("argument count mismatch: got %d for %d", len(args), len(arguments))
	}
	var ret []byte
	for i, arg := range arguments {
		enc, err := EncodeArgument(args[i], arg)
		if err != nil {
			return nil, err
		}
		ret = append(ret, enc...)
	}
	return ret, nil
}

// DecodeIntoMap decodes the arguments into a mapping of argument name to value.
func (arguments Arguments) DecodeIntoMap(v map[string]interface{}, data []byte) error {
	values, err := arguments.Decode(data)
	if err != nil {
		return err
	}
	for i, arg := range arguments {
		v[arg.Name] = values[i]
	}
	return nil
}

// Types returns the canonical tags of the arguments.
func (arguments Arguments) Types() []string {
	types := make([]string, len(arguments))
	for i, arg := range arguments {
		types[i] = arg.Type.String()
	}
	return types
}
