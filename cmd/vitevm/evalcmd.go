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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/cmd/utils"
	"github.com/vitelabs/vitecore/common/hexutil"
	"github.com/vitelabs/vitecore/core/asm"
	"github.com/vitelabs/vitecore/core/vm"
	"github.com/vitelabs/vitecore/internal/flags"
	"github.com/vitelabs/vitecore/log"
)

var (
	codeFlag = &cli.StringFlag{
		Name:     "code",
		Usage:    "Bytecode to run (hex or base64)",
		Category: flags.VMCategory,
	}
	codeFileFlag = &cli.StringFlag{
		Name:     "codefile",
		Usage:    "File holding the bytecode to run (hex or base64)",
		Category: flags.VMCategory,
	}
	asmFileFlag = &cli.StringFlag{
		Name:     "asm",
		Usage:    "Assembly source file to compile and run",
		Category: flags.VMCategory,
	}
	balanceFlag = &cli.StringSliceFlag{
		Name:     "balance",
		Usage:    "Balance served to BALANCE, as ADDRESS:TOKEN:AMOUNT (repeatable)",
		Category: flags.BlockCategory,
	}
	memoryFlag = &cli.BoolFlag{
		Name:     "memory",
		Usage:    "Print the memory after the run",
		Category: flags.VMCategory,
	}
	timeoutFlag = &cli.DurationFlag{
		Name:     "timeout",
		Usage:    "Abort the run after this long (0 disables)",
		Category: flags.VMCategory,
	}

	evalCommand = &cli.Command{
		Action:    evalCmd,
		Name:      "eval",
		Usage:     "Run straight-line bytecode and print the resulting stack",
		ArgsUsage: "<code>",
		Flags: append([]cli.Flag{
			codeFlag,
			codeFileFlag,
			asmFileFlag,
			balanceFlag,
			memoryFlag,
			timeoutFlag,
		}, utils.VMFlags...),
		Description: `
The eval command runs code from its first byte until STOP, RETURN or the end of
the code, then prints the operand stack top first, the return data and, with
--memory, the memory. Jumps are not supported.`,
	}
)

// evalCode returns the code selected by the positional argument, --code,
// --codefile or --asm.
// evalCode 返回位置参数、--code、--codefile 或 --asm 指定的代码。
func evalCode(ctx *cli.Context) ([]byte, error) {
	if err := flags.CheckExclusive(ctx, codeFlag, codeFileFlag, asmFileFlag); err != nil {
		return nil, err
	}
	switch {
	case ctx.IsSet(asmFileFlag.Name):
		src, err := os.ReadFile(ctx.String(asmFileFlag.Name))
		if err != nil {
			return nil, err
		}
		return asm.Assemble(src)
	case ctx.IsSet(codeFileFlag.Name):
		content, err := os.ReadFile(ctx.String(codeFileFlag.Name))
		if err != nil {
			return nil, err
		}
		return hexutil.Resolve(strings.TrimSpace(string(content)))
	case ctx.IsSet(codeFlag.Name):
		return hexutil.Resolve(ctx.String(codeFlag.Name))
	case ctx.NArg() == 1:
		return hexutil.Resolve(ctx.Args().First())
	}
	return nil, errors.New("missing code: give it as argument, --code, --codefile or --asm")
}

func evalCmd(ctx *cli.Context) error {
	if ctx.NArg() > 0 && (ctx.IsSet(codeFlag.Name) || ctx.IsSet(codeFileFlag.Name) || ctx.IsSet(asmFileFlag.Name)) {
		return errors.New("code given both as argument and flag")
	}
	code, err := evalCode(ctx)
	if err != nil {
		return err
	}
	cfg, err := loadBaseConfig(ctx)
	if err != nil {
		return err
	}
	for _, text := range ctx.StringSlice(balanceFlag.Name) {
		b, err := parseBalance(text)
		if err != nil {
			return fmt.Errorf("--%s: %w", balanceFlag.Name, err)
		}
		cfg.Balances = append(cfg.Balances, b)
	}
	provider, err := makeProvider(&cfg)
	if err != nil {
		return err
	}

	runCtx := ctx.Context
	if runCtx == nil {
		runCtx = context.Background()
	}
	if timeout := ctx.Duration(timeoutFlag.Name); timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, timeout)
		defer cancel()
	}

	var (
		in    = vm.NewInterpreter(cfg.VM, cfg.Block, provider)
		scope = in.NewScope(code)
		start = time.Now()
	)
	defer scope.Release()

	ret, runErr := in.RunScope(runCtx, scope)
	log.Info("Executed code", "size", len(code), "pc", scope.PC, "stack", len(scope.StackData()), "elapsed", time.Since(start), "err", runErr)

	// The stack is printed on failure too, it shows how far the run got.
	w := ctx.App.Writer
	stack := scope.StackData()
	fmt.Fprintln(w, "stack:")
	for i := len(stack) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%4d: %s\n", len(stack)-1-i, stack[i].Hex())
	}
	if ret != nil {
		fmt.Fprintln(w, "return:", hexutil.Encode(ret))
	}
	if ctx.Bool(memoryFlag.Name) {
		printMemory(w, scope.MemoryData())
	}
	if runErr != nil {
		return fmt.Errorf("execution failed at pc %d: %w", scope.PC, runErr)
	}
	return nil
}

// printMemory writes memory as rows of 32 byte words.
func printMemory(w io.Writer, mem []byte) {
	fmt.Fprintln(w, "memory:")
	for off := 0; off < len(mem); off += 32 {
		end := min(off+32, len(mem))
		fmt.Fprintf(w, "%05x: %x\n", off, mem[off:end])
	}
}
