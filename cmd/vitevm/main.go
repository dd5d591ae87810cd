// Copyright 2014 The go-ethereum Authors
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

// vitevm is a command-line toolbox for Vite contract bytecode and ABI data.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/cmd/utils"
	"github.com/vitelabs/vitecore/internal/debug"
	"github.com/vitelabs/vitecore/internal/flags"
)

const (
	clientIdentifier = "vitevm" // Client identifier printed by dumpconfig
)

var app = newApp()

// newApp builds the command tree. Tests build their own instance to run
// commands in-process.
// newApp 构建命令树；测试会构建自己的实例以在进程内运行命令。
func newApp() *cli.App {
	app := flags.NewApp("the vite virtual machine toolbox")
	app.Flags = append([]cli.Flag{configFileFlag}, debug.Flags...)
	app.Commands = []*cli.Command{
		// See disasmcmd.go:
		disasmCommand,
		// See abicmd.go:
		abiCommand,
		// See addresscmd.go:
		addressCommand,
		// See evalcmd.go:
		evalCommand,
		// See config.go:
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		utils.Fatalf("%v", err)
	}
}
