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
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/log"
)

const (
	testAccountAddr = "vite_00000000000000000000000000000000000000042d7ef71894"
	testTokenId     = "tti_5649544520544f4b454e6e40"
)

const testABI = `
[
	{"type":"constructor","inputs":[{"name":"owner","type":"address"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"notify","type":"bool"}]},
	{"type":"event","name":"Deposit","inputs":[{"name":"from","type":"address","indexed":true},{"name":"token","type":"tokenId"},{"name":"amount","type":"uint256"}]}
]`

// runVitevm runs the command line in-process and returns what it printed.
func runVitevm(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		log.SetDefault(log.NewLogger(log.DiscardHandler()))
	})
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"vitevm", "--verbosity", "0"}, args...))
	return out.String(), err
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))
	return file
}

func word(h string) string {
	return strings.Repeat("0", 64-len(h)) + h
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
