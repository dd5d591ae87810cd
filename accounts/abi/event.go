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
	"strings"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/crypto"
)

// Event describes a contract event. Emitting one appends a vm log to the
// receive block: the first topic is ID unless the event is anonymous, indexed
// inputs follow as further topics and the other inputs are encoded in the
// log data.
// Event 描述合约事件。触发时在接收块中追加一条 vm log：非匿名事件的第一个
// topic 为 ID，indexed 参数依次作为后续 topic，其余参数编码在 data 中。
type Event struct {
	// Name is unique within the ABI. Overloads of RawName get a numeric suffix.
	Name      string
	RawName   string // 名称原文，不带重载后缀
	Anonymous bool
	Inputs    Arguments
	str       string

	// Sig is the canonical signature, e.g. "Deposit(address,tokenId,uint256)".
	Sig string

	// ID is the blake2b-256 digest of Sig.
	// ID 是 Sig 的 blake2b-256 摘要。
	ID common.Hash
}

// NewEvent builds an Event, naming unnamed inputs arg0, arg1... by position.
func NewEvent(name, rawName string, anonymous bool, inputs Arguments) Event {
	params := make([]string, len(inputs))
	for i := range inputs {
		if inputs[i].Name == "" {
			inputs[i].Name = fmt.Sprintf("arg%d", i)
		}
		decl := inputs[i].Type.String()
		if inputs[i].Indexed {
			decl += " indexed"
		}
		params[i] = decl + " " + inputs[i].Name
	}
	sig := rawName + "(" + strings.Join(inputs.Types(), ",") + ")"

	return Event{
		Name:      name,
		RawName:   rawName,
		Anonymous: anonymous,
		Inputs:    inputs,
		str:       "event " + rawName + "(" + strings.Join(params, ", ") + ")",
		Sig:       sig,
		ID:        crypto.Blake2b256Hash([]byte(sig)),
	}
}

// String returns the string representation of the event.
// String 返回事件的字符串表示形式。
func (e Event) String() string {
	return e.str
}

// DecodeData decodes the non-indexed inputs carried in the data of a log.
// DecodeData 解码日志数据中的非索引参数。
func (e Event) DecodeData(data []byte) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	if err := e.Inputs.NonIndexed().DecodeIntoMap(out, data); err != nil {
		return nil, fmt.Errorf("event %s: %w", e.Name, err)
	}
	return out, nil
}
