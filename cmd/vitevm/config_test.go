// Copyright 2026 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"context"
	"math/big"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/params"
)

const testConfig = `
[VM]
StackLimit = 16
Offchain = true

[Block]
ToAddress = "vite_00000000000000000000000000000000000000042d7ef71894"
Height = 7

[[Balances]]
Address = "vite_00000000000000000000000000000000000000042d7ef71894"
TokenId = "tti_5649544520544f4b454e6e40"
Amount = "1vite"

[Cache]
Enabled = true
Size = 1048576
`

func TestLoadConfig(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, loadConfig(writeTemp(t, "vitevm.toml", testConfig), &cfg))

	assert.Equal(t, 16, cfg.VM.StackLimit)
	assert.True(t, cfg.VM.Offchain)
	assert.Equal(t, common.MustParseAddress(testAccountAddr), cfg.Block.ToAddress)
	assert.Equal(t, uint64(7), cfg.Block.Height)
	// fields missing from the file keep their defaults
	assert.Equal(t, common.ViteTokenId, cfg.Block.TokenId)
	require.Len(t, cfg.Balances, 1)
	assert.Equal(t, "1vite", cfg.Balances[0].Amount)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 1048576, cfg.Cache.Size)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"[VM]\nGasLimit = 1\n", "field 'GasLimit' is not defined in vm.Config"},
		{"[Block]\nToAddress = \"vite_00\"\n", "invalid format"},
		{"[VM]\nStackLimit = \"x\"\n", "vitevm.toml, line 2"},
	}
	for i, tt := range tests {
		cfg := defaultConfig()
		err := loadConfig(writeTemp(t, "vitevm.toml", tt.content), &cfg)
		require.Error(t, err, "Test case %d", i)
		assert.Contains(t, err.Error(), tt.want, "Test case %d", i)
	}
	cfg := defaultConfig()
	assert.True(t, os.IsNotExist(loadConfig("missing.toml", &cfg)))
}

func TestMakeProvider(t *testing.T) {
	addr := common.MustParseAddress(testAccountAddr)
	for i, cached := range []bool{false, true} {
		cfg := defaultConfig()
		cfg.Balances = []balanceConfig{{Address: addr, TokenId: common.ViteTokenId, Amount: "1.5vite"}}
		cfg.Cache.Enabled = cached

		provider, err := makeProvider(&cfg)
		require.NoError(t, err, "Test case %d", i)
		_, isCached := provider.(*vm.CachedProvider)
		assert.Equal(t, cached, isCached, "Test case %d", i)

		balance, err := provider.GetBalance(context.Background(), addr, common.ViteTokenId)
		require.NoError(t, err, "Test case %d", i)
		want, _ := new(big.Int).SetString("1500000000000000000", 10)
		assert.Equal(t, want, balance, "Test case %d", i)
	}

	cfg := defaultConfig()
	cfg.Balances = []balanceConfig{{Address: addr, Amount: "-1"}}
	_, err := makeProvider(&cfg)
	assert.Error(t, err)
}

func TestParseBalance(t *testing.T) {
	b, err := parseBalance(testAccountAddr + ":" + testTokenId + ":10")
	require.NoError(t, err)
	assert.Equal(t, balanceConfig{
		Address: common.MustParseAddress(testAccountAddr),
		TokenId: common.ViteTokenId,
		Amount:  "10",
	}, b)

	for i, text := range []string{"", testAccountAddr, testAccountAddr + ":" + testTokenId, "a:b:c", testAccountAddr + ":tti_00:1"} {
		_, err := parseBalance(text)
		assert.Error(t, err, "Test case %d", i)
	}
}

func TestDumpConfig(t *testing.T) {
	file := writeTemp(t, "vitevm.toml", testConfig)
	prevHash := strings.Repeat("12", 32)
	out, err := runVitevm(t, "--config", file, "dumpconfig", "--vm.stacklimit", "32", "--block.height", "8", "--block.prevhash", prevHash)
	require.NoError(t, err)
	assert.Contains(t, out, `PrevHash = "0x`+prevHash+`"`)
	assert.Contains(t, out, `FromHash = "0x`+strings.Repeat("0", 64)+`"`)
	assert.Contains(t, out, "# vitevm ")
	assert.Contains(t, out, "StackLimit = 32")
	assert.Contains(t, out, "Offchain = true")
	assert.Contains(t, out, "Height = 8")
	assert.Contains(t, out, testTokenId)
	assert.NotContains(t, out, "# Note: add [[Balances]]")

	// the dump loads back
	dumped := writeTemp(t, "dumped.toml", out)
	cfg := defaultConfig()
	require.NoError(t, loadConfig(dumped, &cfg))
	assert.Equal(t, 32, cfg.VM.StackLimit)
	assert.Equal(t, uint64(8), cfg.Block.Height)
	wantHash, err := common.HexToHash(prevHash)
	require.NoError(t, err)
	assert.Equal(t, wantHash, cfg.Block.PrevHash)

	out, err = runVitevm(t, "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "# Note: add [[Balances]]")
	assert.Contains(t, out, "StackLimit = "+big.NewInt(int64(params.StackLimit)).String())

	_, err = runVitevm(t, "--config", "missing.toml", "dumpconfig")
	assert.Error(t, err)
}
