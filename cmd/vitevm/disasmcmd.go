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
	"bytes"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vitelabs/vitecore/accounts/abi"
	"github.com/vitelabs/vitecore/common/hexutil"
	"github.com/vitelabs/vitecore/core/asm"
	"github.com/vitelabs/vitecore/internal/flags"
	"github.com/vitelabs/vitecore/log"
)

var (
	abiFileFlag = &cli.StringFlag{
		Name:     "abi",
		Usage:    "JSON ABI file used to name selectors and event topics",
		Category: flags.ABICategory,
	}
	functionsFlag = &cli.BoolFlag{
		Name:  "functions",
		Usage: "Print the recovered dispatch table and event topics instead of the listing",
	}
	jobsFlag = &cli.IntFlag{
		Name:  "jobs",
		Usage: "Number of inputs disassembled in parallel",
		Value: runtime.NumCPU(),
	}

	disasmCommand = &cli.Command{
		Action:    disasmCmd,
		Name:      "disasm",
		Usage:     "Disassemble contract bytecode",
		ArgsUsage: "<file|code>...",
		Flags: []cli.Flag{
			abiFileFlag,
			functionsFlag,
			jobsFlag,
		},
		Description: `
The disasm command prints the instructions of each argument. An argument is
read as a file when one exists under that name, otherwise it is taken as the
code itself: 0x prefixed or bare hex, or base64.`,
	}
)

// readCode loads the code named by arg: a file holding hex or base64 text,
// or the text itself.
// readCode 读取 arg 指定的字节码：文件内容或参数本身（十六进制或 base64）。
func readCode(arg string) ([]byte, error) {
	text := arg
	if content, err := os.ReadFile(arg); err == nil {
		text = string(content)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	return hexutil.Resolve(strings.TrimSpace(text))
}

// loadABI reads the JSON ABI named by --abi, if any.
func loadABI(ctx *cli.Context) (*abi.ABI, error) {
	file := ctx.String(abiFileFlag.Name)
	if file == "" {
		return nil, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	parsed, err := abi.JSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return &parsed, nil
}

func disasmCmd(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errors.New("missing code: give at least one file or hex string")
	}
	contract, err := loadABI(ctx)
	if err != nil {
		return err
	}
	var (
		args    = ctx.Args().Slice()
		outputs = make([]bytes.Buffer, len(args))
		g       errgroup.Group
	)
	g.SetLimit(max(ctx.Int(jobsFlag.Name), 1))
	for i, arg := range args {
		g.Go(func() error {
			code, err := readCode(arg)
			if err != nil {
				return fmt.Errorf("%s: %w", shortArg(arg), err)
			}
			if ctx.Bool(functionsFlag.Name) {
				return printFunctions(&outputs[i], code, contract)
			}
			// A truncated PUSH still leaves the lines decoded so far worth printing.
			if err := asm.PrintDisassembled(&outputs[i], code); err != nil {
				return fmt.Errorf("%s: %w", shortArg(arg), err)
			}
			return nil
		})
	}
	err = g.Wait()

	// Print in argument order, whatever order the jobs finished in.
	for i, arg := range args {
		if len(args) > 1 {
			fmt.Fprintf(ctx.App.Writer, "== %s ==\n", shortArg(arg))
		}
		ctx.App.Writer.Write(outputs[i].Bytes())
	}
	return err
}

// printFunctions writes the dispatch table and the event topics of code,
// naming them from the ABI when one is loaded.
// printFunctions 输出 code 的函数分发表和事件主题；加载了 ABI 时给出名称。
func printFunctions(w *bytes.Buffer, code []byte, contract *abi.ABI) error {
	instrs, err := asm.ParseOpcodes(code)
	if err != nil {
		return err
	}
	funcs := asm.ParseFunctions(instrs)
	if funcs == nil {
		log.Info("No dispatch table found", "size", len(code))
	}
	for _, fn := range funcs {
		name := ""
		if contract != nil {
			if m, err := contract.MethodById(fn.Selector[:]); err == nil {
				name = m.Sig
			}
		}
		fmt.Fprintln(w, strings.TrimSpace(fmt.Sprintf("function %s @%05x %s", fn.SelectorHex(), fn.Location, name)))
	}
	for _, ev := range asm.ParseEvents(instrs) {
		name := ""
		if contract != nil {
			if e, err := contract.EventByID(ev.Topic); err == nil {
				name = e.Sig
			}
		}
		fmt.Fprintln(w, strings.TrimSpace(fmt.Sprintf("event %s @%05x %s", ev.Topic.Hex(), ev.Location, name)))
	}
	for _, fn := range asm.StrayFunctions(funcs, asm.JumpDests(instrs)) {
		log.Warn("Dispatch target is not a JUMPDEST", "selector", fn.SelectorHex(), "location", fn.Location)
	}
	return nil
}

// shortArg shortens inline code for messages.
func shortArg(arg string) string {
	if len(arg) > 24 {
		return arg[:21] + "..."
	}
	return arg
}
