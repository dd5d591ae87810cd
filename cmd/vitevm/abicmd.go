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
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/accounts/abi"
	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/common/hexutil"
	"github.com/vitelabs/vitecore/internal/flags"
)

var (
	typeFlag = &cli.StringSliceFlag{
		Name:     "type",
		Aliases:  []string{"t"},
		Usage:    "Type tag of the next value, repeated once per value (e.g. uint256, address, bytes32[2])",
		Category: flags.ABICategory,
	}
	abiRequiredFlag = &cli.StringFlag{
		Name:     abiFileFlag.Name,
		Usage:    abiFileFlag.Usage,
		Category: flags.ABICategory,
		Required: true,
	}

	abiCommand = &cli.Command{
		Name:  "abi",
		Usage: "Encode and decode ABI values",
		Subcommands: []*cli.Command{
			{
				Action:    abiEncode,
				Name:      "encode",
				Usage:     "Encode values of the given types",
				ArgsUsage: "<value>...",
				Flags:     []cli.Flag{typeFlag},
				Description: `
Encodes one value per --type flag, in order. Integers are decimal, or hex
with a 0x prefix. Byte strings are hex. Arrays are JSON arrays.`,
			},
			{
				Action:    abiDecode,
				Name:      "decode",
				Usage:     "Decode data holding values of the given types",
				ArgsUsage: "<data>",
				Flags:     []cli.Flag{typeFlag},
			},
			{
				Action:    abiPack,
				Name:      "pack",
				Usage:     "Build the call data of a contract method",
				ArgsUsage: "<method> <value>...",
				Flags:     []cli.Flag{abiRequiredFlag},
				Description: `
Prefixes the encoded arguments with the 4 byte method id. An empty method name
packs the constructor arguments, without an id.`,
			},
			{
				Action:    abiSelector,
				Name:      "selector",
				Usage:     "Compute the method id of a signature, optionally packing a call",
				ArgsUsage: "<signature> [value...]",
				Description: `
Prints the canonical signature and its 4 byte id, e.g. for
"transfer(address,uint)". Given values, prints the call data instead.`,
			},
			{
				Action:    abiUnpack,
				Name:      "unpack",
				Usage:     "Decode the call data of a contract method",
				ArgsUsage: "<data>",
				Flags:     []cli.Flag{abiRequiredFlag},
			},
		},
	}
)

// typeArguments builds unnamed arguments from the --type flags.
func typeArguments(ctx *cli.Context) (abi.Arguments, error) {
	tags := ctx.StringSlice(typeFlag.Name)
	if len(tags) == 0 {
		return nil, errors.New("missing --type")
	}
	args := make(abi.Arguments, len(tags))
	for i, tag := range tags {
		arg, err := abi.NewArgument(fmt.Sprintf("arg%d", i), tag)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

// parseValues parses the text form of one value per argument.
// parseValues 按参数类型逐个解析文本形式的值。
func parseValues(args abi.Arguments, texts []string) ([]interface{}, error) {
	if len(texts) != len(args) {
		return nil, fmt.Errorf("got %d values for %d types", len(texts), len(args))
	}
	values := make([]interface{}, len(texts))
	for i, text := range texts {
		v, err := abi.ParseValue(args[i].Type, text)
		if err != nil {
			return nil, fmt.Errorf("value %d (%s): %w", i, args[i].Type, err)
		}
		values[i] = v
	}
	return values, nil
}

func printValues(ctx *cli.Context, args abi.Arguments, values []interface{}) {
	for i, v := range values {
		fmt.Fprintf(ctx.App.Writer, "%s: %s\n", args[i].Type, abi.FormatValue(v))
	}
}

func abiEncode(ctx *cli.Context) error {
	args, err := typeArguments(ctx)
	if err != nil {
		return err
	}
	values, err := parseValues(args, ctx.Args().Slice())
	if err != nil {
		return err
	}
	data, err := args.Encode(values...)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return nil
}

func abiDecode(ctx *cli.Context) error {
	args, err := typeArguments(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one data argument")
	}
	data, err := hexutil.Resolve(ctx.Args().First())
	if err != nil {
		return err
	}
	values, err := args.Decode(data)
	if err != nil {
		return err
	}
	printValues(ctx, args, values)
	return nil
}

func abiPack(ctx *cli.Context) error {
	contract, err := loadABI(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() < 1 {
		return errors.New("missing method name")
	}
	name := ctx.Args().First()
	var inputs abi.Arguments
	if name == "" {
		inputs = contract.Constructor.Inputs
	} else if m, ok := contract.Methods[name]; ok {
		inputs = m.Inputs
	} else if m, ok := contract.Offchains[name]; ok {
		inputs = m.Inputs
	} else {
		return fmt.Errorf("method '%s' not found", name)
	}
	values, err := parseValues(inputs, ctx.Args().Tail())
	if err != nil {
		return err
	}
	data, err := contract.Pack(name, values...)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return nil
}

func abiUnpack(ctx *cli.Context) error {
	contract, err := loadABI(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one data argument")
	}
	data, err := hexutil.Resolve(ctx.Args().First())
	if err != nil {
		return err
	}
	method, values, err := contract.UnpackCall(data)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, method.Sig)
	printValues(ctx, method.Inputs, values)
	return nil
}

func abiSelector(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return errors.New("missing signature")
	}
	method, err := abi.ParseSelector(ctx.Args().First())
	if err != nil {
		return err
	}
	if ctx.NArg() == 1 {
		fmt.Fprintln(ctx.App.Writer, method.Sig)
		fmt.Fprintln(ctx.App.Writer, hexutil.Encode(method.ID))
		return nil
	}
	values, err := parseValues(method.Inputs, ctx.Args().Tail())
	if err != nil {
		return err
	}
	data, err := method.Inputs.Encode(values...)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(append(common.CopyBytes(method.ID), data...)))
	return nil
}
