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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/params"
)

// The ABI holds information about a contract's context and available
// invocable methods. It will allow you to type check function calls and
// packs data accordingly.
// ABI 包含有关合约上下文和可用可调用方法的信息。它将允许您对函数调用进行类型检查并相应地打包数据。
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Offchains   map[string]Method
	Events      map[string]Event

	Fallback Method
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 返回解析后的 ABI 接口，如果失败则返回错误。
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// Pack the given method name to conform the ABI. Method call's data
// will consist of method_id, args0, arg1, ... argN. Method id consists
// of 4 bytes and arguments are all 32 bytes aligned.
// Pack 将给定的方法名称打包以符合 ABI：方法 ID（4 字节）后跟各参数的编码。
func (abi ABI) Pack(name string, args ...interface{}) ([]byte, error) {
	if name == "" {
		return abi.Constructor.Inputs.Encode(args...)
	}
	method, exist := abi.Methods[name]
	if !exist {
		method, exist = abi.Offchains[name]
	}
	if !exist {
		return nil, fmt.Errorf("method '%s' not found", name)
	}
	arguments, err := method.Inputs.Encode(args...)
	if err != nil {
		return nil, err
	}
	return append(common.CopyBytes(method.ID), arguments...), nil
}

func (abi ABI) getArguments(name string) (Arguments, error) {
	// since there can't be naming collisions with contracts and events,
	// we need to decide whether we're calling a method or an event
	// 方法和事件之间不会有命名冲突，需要判断是方法还是事件
	if method, ok := abi.Methods[name]; ok {
		return method.Outputs, nil
	}
	if method, ok := abi.Offchains[name]; ok {
		return method.Outputs, nil
	}
	if event, ok := abi.Events[name]; ok {
		return event.Inputs.NonIndexed(), nil
	}
	return nil, fmt.Errorf("abi: could not locate named method or event: %s", name)
}

// Unpack decodes the outputs of a method, or the data of an event, by name.
// Unpack 按名称解码方法的输出或事件的数据。
func (abi ABI) Unpack(name string, data []byte) ([]interface{}, error) {
	args, err := abi.getArguments(name)
	if err != nil {
		return nil, err
	}
	return args.Decode(data)
}

// UnpackIntoMap unpacks a log or output into the provided map[string]interface{}.
// UnpackIntoMap 将日志或输出解包到提供的 map[string]interface{} 中。
func (abi ABI) UnpackIntoMap(v map[string]interface{}, name string, data []byte) (err error) {
	args, err := abi.getArguments(name)
	if err != nil {
		return err
	}
	return args.DecodeIntoMap(v, data)
}

// UnpackCall splits call data into its method and decoded inputs.
// UnpackCall 将调用数据拆分为方法和解码后的输入参数。
func (abi ABI) UnpackCall(data []byte) (*Method, []interface{}, error) {
	method, err := abi.MethodById(data)
	if err != nil {
		return nil, nil, err
	}
	values, err := method.Inputs.Decode(data[params.MethodIdLength:])
	if err != nil {
		return nil, nil, err
	}
	return method, values, nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现 json.Unmarshaler 接口。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type    string
		Name    string
		Inputs  []Argument
		Outputs []Argument

		// Event relevant indicator represents the event is
		// declared as anonymous.
		// 与事件相关的指示器，表示事件被声明为匿名的。
		Anonymous bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Offchains = make(map[string]Method)
	abi.Events = make(map[string]Event)
	for _, field := range fields {
		switch field.Type {
		case "constructor":
			abi.Constructor = NewMethod("", "", Constructor, field.Inputs, nil)
		case "function", "":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(name, field.Name, Function, field.Inputs, field.Outputs)
		case "offchain":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Offchains[s]; return ok })
			abi.Offchains[name] = NewMethod(name, field.Name, Offchain, field.Inputs, field.Outputs)
		case "fallback":
			if abi.HasFallback() {
				return errors.New("only single fallback is allowed")
			}
			abi.Fallback = NewMethod("", "", Fallback, nil, nil)
		case "event":
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(name, field.Name, field.Anonymous, field.Inputs)
		default:
			return fmt.Errorf("abi: could not recognize type %v of field %v", field.Type, field.Name)
		}
	}
	return nil
}

// MethodById looks up a method or off-chain getter by the 4-byte id,
// returns nil if none found.
// MethodById 通过 4 字节 ID 查找方法，如果未找到则返回 nil。
func (abi *ABI) MethodById(sigdata []byte) (*Method, error) {
	if len(sigdata) < params.MethodIdLength {
		return nil, fmt.Errorf("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	for _, methods := range []map[string]Method{abi.Methods, abi.Offchains} {
		for _, method := range methods {
			if bytes.Equal(method.ID, sigdata[:params.MethodIdLength]) {
				return &method, nil
			}
		}
	}
	return nil, fmt.Errorf("no method with id: %#x", sigdata[:params.MethodIdLength])
}

// EventByID looks an event up by its topic hash in the
// ABI and returns nil if none found.
// EventByID 通过主题哈希在 ABI 中查找事件，如果未找到则返回 nil。
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	for _, event := range abi.Events {
		if event.ID == topic {
			return &event, nil
		}
	}
	return nil, fmt.Errorf("no event with id: %#x", topic.Bytes())
}

// HasFallback returns an indicator whether a fallback function is included.
// HasFallback 返回一个指示器，指示是否包含回退函数。
func (abi *ABI) HasFallback() bool {
	return abi.Fallback.Type == Fallback
}
