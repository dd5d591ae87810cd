// Copyright 2015 The go-ethereum Authors
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

// Package utils contains the flags and helpers shared by the vitevm commands.
package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/internal/flags"
	"github.com/vitelabs/vitecore/params"
)

var (
	// Virtual machine settings
	StackLimitFlag = &cli.IntFlag{
		Name:     "vm.stacklimit",
		Usage:    "Maximum operand stack height",
		Value:    int(params.StackLimit),
		Category: flags.VMCategory,
	}
	OffchainFlag = &cli.BoolFlag{
		Name:     "vm.offchain",
		Usage:    "Run as an off-chain query: transactional context reads as zero",
		Category: flags.VMCategory,
	}
	VMDebugFlag = &cli.BoolFlag{
		Name:     "vm.debug",
		Usage:    "Log every executed instruction at trace level",
		Category: flags.VMCategory,
	}

	// Block context of eval
	ToAddressFlag = &cli.StringFlag{
		Name:     "block.to",
		Usage:    "Address of the executing contract (vite_...)",
		Category: flags.BlockCategory,
	}
	FromAddressFlag = &cli.StringFlag{
		Name:     "block.from",
		Usage:    "Address of the sender (vite_...)",
		Category: flags.BlockCategory,
	}
	AmountFlag = &flags.BigFlag{
		Name:     "block.amount",
		Usage:    "Transferred amount in the smallest token unit",
		Category: flags.BlockCategory,
	}
	TokenIdFlag = &cli.StringFlag{
		Name:     "block.token",
		Usage:    "Transferred token id (tti_...)",
		Category: flags.BlockCategory,
	}
	HeightFlag = &cli.Uint64Flag{
		Name:     "block.height",
		Usage:    "Snapshot chain height",
		Category: flags.BlockCategory,
	}
	AccountHeightFlag = &cli.Uint64Flag{
		Name:     "block.accountheight",
		Usage:    "Account chain height of the executing block",
		Category: flags.BlockCategory,
	}
	PrevHashFlag = &cli.StringFlag{
		Name:     "block.prevhash",
		Usage:    "Hash of the previous account block (hex)",
		Category: flags.BlockCategory,
	}
	FromHashFlag = &cli.StringFlag{
		Name:     "block.fromhash",
		Usage:    "Hash of the send block being received (hex)",
		Category: flags.BlockCategory,
	}
	TimestampFlag = &cli.Uint64Flag{
		Name:     "block.timestamp",
		Usage:    "Snapshot timestamp in seconds",
		Category: flags.BlockCategory,
	}

	// Balance cache
	CacheFlag = &cli.BoolFlag{
		Name:     "cache",
		Usage:    "Serve balance lookups through an in-memory cache",
		Category: flags.CacheCategory,
	}
	CacheSizeFlag = &cli.IntFlag{
		Name:     "cache.size",
		Usage:    "Size of the balance cache in bytes",
		Value:    params.DefaultBalanceCacheSize,
		Category: flags.CacheCategory,
	}
)

// VMFlags are the flags accepted by every command that runs bytecode.
var VMFlags = []cli.Flag{
	StackLimitFlag,
	OffchainFlag,
	VMDebugFlag,
	ToAddressFlag,
	FromAddressFlag,
	AmountFlag,
	TokenIdFlag,
	HeightFlag,
	AccountHeightFlag,
	PrevHashFlag,
	FromHashFlag,
	TimestampFlag,
	CacheFlag,
	CacheSizeFlag,
}

// SetVMConfig applies the vm flags that were set on the command line.
// SetVMConfig 将命令行上设置的虚拟机标志应用到 cfg。
func SetVMConfig(ctx *cli.Context, cfg *vm.Config) {
	if ctx.IsSet(StackLimitFlag.Name) {
		cfg.StackLimit = ctx.Int(StackLimitFlag.Name)
	}
	if ctx.IsSet(OffchainFlag.Name) {
		cfg.Offchain = ctx.Bool(OffchainFlag.Name)
	}
	if ctx.IsSet(VMDebugFlag.Name) {
		cfg.Debug = ctx.Bool(VMDebugFlag.Name)
	}
}

// SetBlockContext applies the block context flags that were set on the
// command line.
// SetBlockContext 将命令行上设置的区块上下文标志应用到 block。
func SetBlockContext(ctx *cli.Context, block *vm.BlockContext) error {
	var err error
	if ctx.IsSet(ToAddressFlag.Name) {
		if block.ToAddress, err = common.ParseAddress(ctx.String(ToAddressFlag.Name)); err != nil {
			return fmt.Errorf("--%s: %w", ToAddressFlag.Name, err)
		}
	}
	if ctx.IsSet(FromAddressFlag.Name) {
		if block.FromAddress, err = common.ParseAddress(ctx.String(FromAddressFlag.Name)); err != nil {
			return fmt.Errorf("--%s: %w", FromAddressFlag.Name, err)
		}
	}
	if ctx.IsSet(AmountFlag.Name) {
		block.Amount = flags.GlobalBig(ctx, AmountFlag.Name)
	}
	if ctx.IsSet(TokenIdFlag.Name) {
		if block.TokenId, err = common.ParseTokenId(ctx.String(TokenIdFlag.Name)); err != nil {
			return fmt.Errorf("--%s: %w", TokenIdFlag.Name, err)
		}
	}
	if ctx.IsSet(HeightFlag.Name) {
		block.Height = ctx.Uint64(HeightFlag.Name)
	}
	if ctx.IsSet(AccountHeightFlag.Name) {
		block.AccountHeight = ctx.Uint64(AccountHeightFlag.Name)
	}
	if ctx.IsSet(PrevHashFlag.Name) {
		if block.PrevHash, err = common.HexToHash(ctx.String(PrevHashFlag.Name)); err != nil {
			return fmt.Errorf("--%s: %w", PrevHashFlag.Name, err)
		}
	}
	if ctx.IsSet(FromHashFlag.Name) {
		if block.FromHash, err = common.HexToHash(ctx.String(FromHashFlag.Name)); err != nil {
			return fmt.Errorf("--%s: %w", FromHashFlag.Name, err)
		}
	}
	if ctx.IsSet(TimestampFlag.Name) {
		block.Timestamp = ctx.Uint64(TimestampFlag.Name)
	}
	return nil
}

// Fatalf formats a message to standard error and exits the program.
// The message is also printed to standard output if standard error
// is redirected to a different file.
// Fatalf 将错误信息写到标准错误并退出程序。
func Fatalf(format string, args ...interface{}) {
	w := io.MultiWriter(os.Stdout, os.Stderr)
	if runtime.GOOS == "windows" {
		// The SameFile check below doesn't work on Windows.
		// stdout is unlikely to get redirected though, so just print there.
		w = os.Stdout
	} else {
		outf, _ := os.Stdout.Stat()
		errf, _ := os.Stderr.Stat()
		if outf != nil && errf != nil && os.SameFile(outf, errf) {
			w = os.Stderr
		}
	}
	fmt.Fprintf(w, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
