// Copyright 2017 The go-ethereum Authors
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
	"bufio"
	"errors"
	"fmt"
	"math/big"
	"os"
	"reflect"
	"strings"
	"unicode"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/accounts/abi"
	"github.com/vitelabs/vitecore/cmd/utils"
	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/internal/flags"
	"github.com/vitelabs/vitecore/internal/version"
	"github.com/vitelabs/vitecore/log"
	"github.com/vitelabs/vitecore/params"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Flags:       utils.VMFlags,
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}

	configFileFlag = &cli.StringFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.MiscCategory,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// balanceConfig seeds one balance of the static data provider. Amount is
// given in attov, or in VITE with a "vite" suffix.
// balanceConfig 为静态数据提供者设置一个余额；Amount 以 attov 计，带 vite 后缀时以 VITE 计。
type balanceConfig struct {
	Address common.Address
	TokenId common.TokenId
	Amount  string
}

type cacheConfig struct {
	Enabled bool
	Size    int
}

type vitevmConfig struct {
	VM       vm.Config
	Block    vm.BlockContext
	Balances []balanceConfig `toml:",omitempty"`
	Cache    cacheConfig
}

func loadConfig(file string, cfg *vitevmConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func defaultConfig() vitevmConfig {
	return vitevmConfig{
		VM: vm.Config{
			StackLimit: int(params.StackLimit),
		},
		Block: vm.BlockContext{
			Amount:  new(big.Int),
			TokenId: common.ViteTokenId,
		},
		Cache: cacheConfig{
			Size: params.DefaultBalanceCacheSize,
		},
	}
}

// loadBaseConfig loads the vitevmConfig based on the given command line
// parameters and config file. Flags take precedence over the file.
// loadBaseConfig 根据命令行参数和配置文件加载配置，命令行标志优先于文件。
func loadBaseConfig(ctx *cli.Context) (vitevmConfig, error) {
	// Load defaults
	cfg := defaultConfig()

	// Load config file.
	if file := ctx.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
	}
	if cfg.Block.Amount == nil {
		cfg.Block.Amount = new(big.Int)
	}

	// Apply flags.
	utils.SetVMConfig(ctx, &cfg.VM)
	if err := utils.SetBlockContext(ctx, &cfg.Block); err != nil {
		return cfg, err
	}
	if ctx.IsSet(utils.CacheFlag.Name) {
		cfg.Cache.Enabled = ctx.Bool(utils.CacheFlag.Name)
	}
	if ctx.IsSet(utils.CacheSizeFlag.Name) {
		cfg.Cache.Size = ctx.Int(utils.CacheSizeFlag.Name)
	}
	return cfg, nil
}

// parseBalance reads the ADDRESS:TOKEN:AMOUNT form of --balance.
func parseBalance(s string) (balanceConfig, error) {
	var b balanceConfig
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return b, fmt.Errorf("invalid balance %q, want ADDRESS:TOKEN:AMOUNT", s)
	}
	if err := b.Address.UnmarshalText([]byte(parts[0])); err != nil {
		return b, err
	}
	if err := b.TokenId.UnmarshalText([]byte(parts[1])); err != nil {
		return b, err
	}
	b.Amount = parts[2]
	return b, nil
}

// makeProvider builds the data provider serving BALANCE: the configured
// balances, behind a fastcache backed cache when enabled.
// makeProvider 构建为 BALANCE 提供数据的提供者：配置的余额，启用时外加缓存。
func makeProvider(cfg *vitevmConfig) (vm.DataProvider, error) {
	static := vm.NewStaticProvider()
	for _, b := range cfg.Balances {
		amount, err := abi.ParseAmount(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("balance of %v: %w", b.Address, err)
		}
		static.SetBalance(b.Address, b.TokenId, amount)
	}
	if !cfg.Cache.Enabled {
		return static, nil
	}
	log.Debug("Caching balance lookups", "size", cfg.Cache.Size)
	return vm.NewCachedProvider(static, cfg.Cache.Size), nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	comment := ""

	if len(cfg.Balances) == 0 {
		comment += "# Note: add [[Balances]] tables to seed the static data provider\n\n"
	}

	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	fmt.Fprintf(dump, "# %s %s\n", clientIdentifier, version.Current())
	dump.Write([]byte(comment))
	dump.Write(out)

	return nil
}
