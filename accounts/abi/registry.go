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
	"strconv"
	"sync"
)

// Codec is the encoder and decoder of one type tag.
// Codec 是某个类型标签的编码器和解码器。
type Codec struct {
	Type Type
}

// Encode packs v as a value of the codec's type.
func (c *Codec) Encode(v interface{}) ([]byte, error) {
	return Encode(c.Type, v)
}

// Decode unpacks one value from the front of data and returns the leftover.
func (c *Codec) Decode(data []byte) (interface{}, []byte, error) {
	return Decode(c.Type, data)
}

// Registry maps canonical type tags to their codecs. It is filled once at
// construction and only read afterwards, so it is safe for concurrent use.
// Registry 将规范类型标签映射到编解码器；构造后只读，可安全并发使用。
type Registry struct {
	codecs map[string]*Codec
}

// NewRegistry builds the table of every primitive type tag: uint8..uint256,
// int8..int256, bytes1..bytes32, tokenId, address, bool, null, bytes and string.
func NewRegistry() *Registry {
	r := &Registry{codecs: make(map[string]*Codec, 2*32+32+6)}
	add := func(tag string) {
		typ := MustNewType(tag)
		r.codecs[typ.String()] = &Codec{Type: typ}
	}
	for bits := 8; bits <= 256; bits += 8 {
		add("uint" + strconv.Itoa(bits))
		add("int" + strconv.Itoa(bits))
	}
	for size := 1; size <= 32; size++ {
		add("bytes" + strconv.Itoa(size))
	}
	for _, tag := range []string{"tokenId", "address", "bool", "null", "bytes", "string"} {
		add(tag)
	}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// DefaultRegistry returns the process wide registry, built on first use.
// DefaultRegistry 返回进程级注册表，首次使用时构建。
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Lookup returns the codec of a type tag. Aliases such as uint, int and
// boolean resolve to their canonical tag. Array tags over registered
// element types yield a codec that is built for the call and not stored.
// Lookup 返回类型标签的编解码器；数组标签按需构造，不写回注册表。
func (r *Registry) Lookup(tag string) (*Codec, error) {
	if c, ok := r.codecs[tag]; ok {
		return c, nil
	}
	typ, err := NewType(tag)
	if err != nil {
		return nil, err
	}
	return r.LookupType(typ)
}

// LookupType returns the codec of a parsed type.
func (r *Registry) LookupType(typ Type) (*Codec, error) {
	if c, ok := r.codecs[typ.String()]; ok {
		return c, nil
	}
	if typ.Elem != nil {
		if _, ok := r.codecs[typ.Elem.String()]; ok {
			return &Codec{Type: typ}, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
}

// Len returns the number of registered primitive tags.
func (r *Registry) Len() int {
	return len(r.codecs)
}
