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

package vm

import (
	"context"
	"math/big"
	"sync"

	"github.com/VictoriaMetrics/fastcache"
	"golang.org/x/sync/singleflight"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/log"
	"github.com/vitelabs/vitecore/params"
)

// DataProvider supplies the ledger state the vm cannot compute itself.
// DataProvider 提供虚拟机无法自行计算的账本状态。
type DataProvider interface {
	// GetBalance returns the balance of token held by addr. It may block,
	// and must honour ctx cancellation.
	GetBalance(ctx context.Context, addr common.Address, token common.TokenId) (*big.Int, error)
}

// BlockContext provides the vm with the account block being executed.
// Fields that are not known may be left zero.
// BlockContext 描述正在执行的账户块，未知字段可以为零值。
type BlockContext struct {
	ToAddress     common.Address // 合约自身地址（ADDRESS、BALANCE）
	FromAddress   common.Address // 发送方地址（CALLER）
	Amount        *big.Int       // 转入金额（CALLVALUE）
	TokenId       common.TokenId // 转入代币（TOKENID）
	Height        uint64         // 快照高度（HEIGHT）
	AccountHeight uint64         // 账户链高度（ACCOUNTHEIGHT）
	PrevHash      common.Hash    // 上一个账户块哈希（PREVHASH）
	FromHash      common.Hash    // 发送块哈希（FROMHASH）
	Timestamp     uint64         // 时间戳（TIMESTAMP）
}

// StaticProvider is an in-memory DataProvider. Unknown balances are zero.
// StaticProvider 是内存中的数据提供者，未设置的余额为零。
type StaticProvider struct {
	lock     sync.RWMutex
	balances map[common.Address]map[common.TokenId]*big.Int
}

// NewStaticProvider creates an empty static provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{balances: make(map[common.Address]map[common.TokenId]*big.Int)}
}

// SetBalance records the balance of token held by addr.
func (p *StaticProvider) SetBalance(addr common.Address, token common.TokenId, amount *big.Int) {
	p.lock.Lock()
	defer p.lock.Unlock()

	tokens, ok := p.balances[addr]
	if !ok {
		tokens = make(map[common.TokenId]*big.Int)
		p.balances[addr] = tokens
	}
	tokens[token] = new(big.Int).Set(amount)
}

// GetBalance implements DataProvider.
func (p *StaticProvider) GetBalance(ctx context.Context, addr common.Address, token common.TokenId) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.lock.RLock()
	defer p.lock.RUnlock()

	if b, ok := p.balances[addr][token]; ok {
		return new(big.Int).Set(b), nil
	}
	return new(big.Int), nil
}

// CachedProvider wraps another DataProvider with a GC friendly balance cache.
// Concurrent lookups of the same balance are collapsed into a single call to
// the backing provider, which keeps the values of the first caller's context
// but not its cancellation. Errors are never cached.
// CachedProvider 为底层数据提供者加上余额缓存；相同余额的并发查询合并为一次调用，错误不缓存。
type CachedProvider struct {
	backend DataProvider
	cache   *fastcache.Cache   // 余额缓存，键为地址加代币 ID
	group   singleflight.Group // 合并并发查询
}

// NewCachedProvider creates a caching provider in front of backend. A cache
// size of zero selects params.DefaultBalanceCacheSize.
func NewCachedProvider(backend DataProvider, cacheSize int) *CachedProvider {
	if cacheSize <= 0 {
		cacheSize = params.DefaultBalanceCacheSize
	}
	return &CachedProvider{
		backend: backend,
		cache:   fastcache.New(cacheSize),
	}
}

func balanceKey(addr common.Address, token common.TokenId) []byte {
	key := make([]byte, 0, common.AddressLength+common.TokenIdLength)
	key = append(key, addr[:]...)
	return append(key, token[:]...)
}

// GetBalance implements DataProvider.
func (p *CachedProvider) GetBalance(ctx context.Context, addr common.Address, token common.TokenId) (*big.Int, error) {
	key := balanceKey(addr, token)
	if enc, ok := p.cache.HasGet(nil, key); ok {
		return new(big.Int).SetBytes(enc), nil
	}
	// The shared lookup outlives any single caller: cancelling one waiter
	// only abandons that waiter, the others still get the result.
	// 共享查询不受单个调用者取消的影响，取消只让该调用者提前返回。
	flight := context.WithoutCancel(ctx)
	ch := p.group.DoChan(string(key), func() (interface{}, error) {
		balance, err := p.backend.GetBalance(flight, addr, token)
		if err != nil {
			return nil, err
		}
		p.cache.Set(key, balance.Bytes())
		return balance, nil
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		log.Trace("Balance cache miss", "address", addr, "token", token, "shared", res.Shared, "err", res.Err)
		if res.Err != nil {
			return nil, res.Err
		}
		// callers sharing a flight must not alias one big.Int
		return new(big.Int).Set(res.Val.(*big.Int)), nil
	}
}

// Invalidate drops the cached balance of token held by addr.
func (p *CachedProvider) Invalidate(addr common.Address, token common.TokenId) {
	p.cache.Del(balanceKey(addr, token))
}

// Reset drops every cached balance.
func (p *CachedProvider) Reset() {
	p.cache.Reset()
}
