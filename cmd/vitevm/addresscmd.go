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

	"github.com/vitelabs/vitecore/common"
	"github.com/vitelabs/vitecore/common/hexutil"
	"github.com/vitelabs/vitecore/crypto"
)

var (
	creatorFlag = &cli.StringFlag{
		Name:     "creator",
		Usage:    "Address of the account deploying the contract",
		Required: true,
	}
	creatorHeightFlag = &cli.Uint64Flag{
		Name:     "height",
		Usage:    "Account chain height of the create block",
		Required: true,
	}
	creatorPrevHashFlag = &cli.StringFlag{
		Name:  "prevhash",
		Usage: "Hash of the block preceding the create block (hex)",
	}

	addressCommand = &cli.Command{
		Name:  "address",
		Usage: "Inspect addresses and token ids",
		Subcommands: []*cli.Command{
			{
				Action:    addressValidate,
				Name:      "validate",
				Usage:     "Check the checksum of an address",
				ArgsUsage: "<vite_address>",
				Description: `
Prints "address" for an account, "contract" for a contract address and fails
with "invalid" otherwise.`,
			},
			{
				Action: addressContract,
				Name:   "contract",
				Usage:  "Derive the address of a contract created by an account block",
				Flags: []cli.Flag{
					creatorFlag,
					creatorHeightFlag,
					creatorPrevHashFlag,
				},
			},
			{
				Action:    addressToken,
				Name:      "token",
				Usage:     "Check a token id and print its original bytes",
				ArgsUsage: "<tti_id>",
			},
		},
	}
)

var errInvalidAddress = errors.New("invalid address")

func addressValidate(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one address")
	}
	text := ctx.Args().First()
	typ := common.ValidateAddress(text)
	if typ == common.InvalidAddress {
		return fmt.Errorf("%w: %s", errInvalidAddress, text)
	}
	addr, err := common.ParseAddress(text)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, typ)
	fmt.Fprintln(ctx.App.Writer, "original:", hexutil.Encode(addr.Bytes()))
	return nil
}

func addressContract(ctx *cli.Context) error {
	creator, err := common.ParseAddress(ctx.String(creatorFlag.Name))
	if err != nil {
		return fmt.Errorf("--%s: %w", creatorFlag.Name, err)
	}
	var prevHash common.Hash
	if ctx.IsSet(creatorPrevHashFlag.Name) {
		if prevHash, err = common.HexToHash(ctx.String(creatorPrevHashFlag.Name)); err != nil {
			return fmt.Errorf("--%s: %w", creatorPrevHashFlag.Name, err)
		}
	}
	addr := crypto.CreateContractAddress(creator, ctx.Uint64(creatorHeightFlag.Name), prevHash)
	fmt.Fprintln(ctx.App.Writer, addr)
	return nil
}

func addressToken(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return errors.New("expected exactly one token id")
	}
	id, err := common.ParseTokenId(ctx.Args().First())
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(id.Bytes()))
	return nil
}
