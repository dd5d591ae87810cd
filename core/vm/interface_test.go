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

package vm

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitelabs/vitecore/common"
)

type countingProvider struct {
	calls   atomic.Int32
	backend DataProvider
	err     error
}

func (p *countingProvider) GetBalance(ctx context.Context, addr common.Address, token common.TokenId) (*big.Int, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return p.backend.GetBalance(ctx, addr, token)
}

// blockingProvider holds every lookup until release is closed.
type blockingProvider struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (p *blockingProvider) GetBalance(ctx context.Context, addr common.Address, token common.TokenId) (*big.Int, error) {
	p.once.Do(func() { close(p.started) })
	<-p.release
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return big.NewInt(42), nil
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider()
	amount := big.NewInt(100)
	p.SetBalance(testAccount, common.ViteTokenId, amount)
	amount.SetInt64(1) // stored value is a copy

	b, err := p.GetBalance(context.Background(), testAccount, common.ViteTokenId)
	require.NoError(t, err)
	assert.Equal(t, "100", b.String())

	b, err = p.GetBalance(context.Background(), testContract, common.ViteTokenId)
	require.NoError(t, err)
	assert.Equal(t, "0", b.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.GetBalance(ctx, testAccount, common.ViteTokenId)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCachedProvider(t *testing.T) {
	static := NewStaticProvider()
	static.SetBalance(testAccount, common.ViteTokenId, big.NewInt(7))
	backend := &countingProvider{backend: static}
	p := NewCachedProvider(backend, 0)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b, err := p.GetBalance(ctx, testAccount, common.ViteTokenId)
		require.NoError(t, err)
		assert.Equal(t, "7", b.String())
	}
	assert.Equal(t, int32(1), backend.calls.Load())

	// zero balances are cached as well
	for i := 0; i < 2; i++ {
		b, err := p.GetBalance(ctx, testAccount, common.UsdtTokenId)
		require.NoError(t, err)
		assert.Equal(t, "0", b.String())
	}
	assert.Equal(t, int32(2), backend.calls.Load())

	static.SetBalance(testAccount, common.ViteTokenId, big.NewInt(8))
	p.Invalidate(testAccount, common.ViteTokenId)
	b, err := p.GetBalance(ctx, testAccount, common.ViteTokenId)
	require.NoError(t, err)
	assert.Equal(t, "8", b.String())
	assert.Equal(t, int32(3), backend.calls.Load())

	p.Reset()
	_, err = p.GetBalance(ctx, testAccount, common.UsdtTokenId)
	require.NoError(t, err)
	assert.Equal(t, int32(4), backend.calls.Load())
}

func TestCachedProviderErrors(t *testing.T) {
	failure := errors.New("backend down")
	backend := &countingProvider{backend: NewStaticProvider(), err: failure}
	p := NewCachedProvider(backend, 1024*1024)

	for i := 0; i < 2; i++ {
		_, err := p.GetBalance(context.Background(), testAccount, common.ViteTokenId)
		assert.True(t, errors.Is(err, failure))
	}
	assert.Equal(t, int32(2), backend.calls.Load(), "errors must not be cached")
}

func TestCachedProviderConcurrent(t *testing.T) {
	static := NewStaticProvider()
	static.SetBalance(testContract, common.ViteTokenId, big.NewInt(1e18))
	p := NewCachedProvider(static, 0)

	var wg sync.WaitGroup
	results := make([]*big.Int, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b, err := p.GetBalance(context.Background(), testContract, common.ViteTokenId)
			if err == nil {
				results[i] = b
			}
		}(i)
	}
	wg.Wait()
	for i, b := range results {
		require.NotNil(t, b, "Test case %d", i)
		assert.Equal(t, "1000000000000000000", b.String(), "Test case %d", i)
	}
	// every caller owns its result
	results[0].SetInt64(0)
	assert.Equal(t, "1000000000000000000", results[1].String())
}

func TestCachedProviderCancelledWaiter(t *testing.T) {
	backend := &blockingProvider{started: make(chan struct{}), release: make(chan struct{})}
	p := NewCachedProvider(backend, 0)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := p.GetBalance(ctx, testContract, common.ViteTokenId)
		first <- err
	}()
	<-backend.started

	type result struct {
		balance *big.Int
		err     error
	}
	second := make(chan result, 1)
	go func() {
		b, err := p.GetBalance(context.Background(), testContract, common.ViteTokenId)
		second <- result{b, err}
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(backend.release)
	res := <-second
	require.NoError(t, res.err)
	assert.Equal(t, "42", res.balance.String())

	// the detached lookup still filled the cache
	b, err := p.GetBalance(context.Background(), testContract, common.ViteTokenId)
	require.NoError(t, err)
	assert.Equal(t, "42", b.String())
}
