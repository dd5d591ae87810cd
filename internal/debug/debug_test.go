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

package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/vitelabs/vitecore/log"
)

func runSetup(t *testing.T, action func(), args ...string) error {
	t.Helper()
	t.Cleanup(func() {
		Exit()
		log.SetDefault(log.NewLogger(log.DiscardHandler()))
	})
	app := &cli.App{
		Flags:  Flags,
		Before: Setup,
		Action: func(*cli.Context) error {
			action()
			return nil
		},
	}
	return app.Run(append([]string{"vitevm"}, args...))
}

func TestSetupLogFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "vitevm.log")
	err := runSetup(t, func() {
		log.Debug("filtered out")
		log.Info("Executed", "pc", 7)
	}, "--log.file", file, "--log.format", "logfmt", "--verbosity", "3")
	require.NoError(t, err)
	Exit()

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=Executed")
	assert.Contains(t, string(content), "pc=7")
	assert.NotContains(t, string(content), "filtered out")
}

func TestSetupVmodule(t *testing.T) {
	file := filepath.Join(t.TempDir(), "vitevm.log")
	err := runSetup(t, func() {
		log.Trace("from the test file")
	}, "--log.file", file, "--log.format", "json", "--verbosity", "1", "--log.vmodule", "debug_test.go=5")
	require.NoError(t, err)
	Exit()

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"from the test file"`)
}

func TestSetupErrors(t *testing.T) {
	tests := [][]string{
		{"--log.format", "yaml"},
		{"--log.vmodule", "vm.go"},
	}
	for i, args := range tests {
		err := runSetup(t, func() {}, args...)
		assert.Error(t, err, "Test case %d", i)
	}
}

func TestHandlerProfiles(t *testing.T) {
	file := filepath.Join(t.TempDir(), "cpu.prof")
	require.NoError(t, Handler.StartCPUProfile(file))
	assert.Error(t, Handler.StartCPUProfile(file))
	require.NoError(t, Handler.StopCPUProfile())
	assert.Error(t, Handler.StopCPUProfile())
	assert.FileExists(t, file)

	mem := filepath.Join(t.TempDir(), "mem.prof")
	require.NoError(t, Handler.WriteMemProfile(mem))
	assert.FileExists(t, mem)
	assert.NotZero(t, Handler.MemStats().Sys)
}

func TestSetupMemProfile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "mem.prof")
	err := runSetup(t, func() {}, "--pprof.memprofile", file)
	require.NoError(t, err)
	assert.NoFileExists(t, file)

	Exit()
	assert.FileExists(t, file)
}
