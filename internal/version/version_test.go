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

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCommit(t *testing.T) {
	v := WithCommit("0123456789abcdef", "20261015")
	assert.True(t, strings.HasPrefix(v, Semantic), "version %s should start with %s", v, Semantic)
	assert.Contains(t, v, "-01234567")
	assert.Contains(t, v, "-20261015")

	assert.Equal(t, WithMeta, WithCommit("short", ""), "short commits are ignored")
}

func TestBuildInfoVCS(t *testing.T) {
	info := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "deadbeef"},
		{Key: "vcs.time", Value: "2026-10-15T08:00:00Z"},
		{Key: "vcs.modified", Value: "true"},
	}}
	vcs, ok := buildInfoVCS(info)
	assert.True(t, ok)
	assert.Equal(t, VCSInfo{Commit: "deadbeef", Date: "20261015", Dirty: true}, vcs)

	_, ok = buildInfoVCS(&debug.BuildInfo{})
	assert.False(t, ok)
}

func TestCurrent(t *testing.T) {
	b := Current()
	assert.True(t, strings.HasPrefix(b.String(), b.Version+" "), b.String())
	assert.Contains(t, b.String(), runtime.GOOS+"/"+runtime.GOARCH)

	b = Build{VCSInfo: VCSInfo{Dirty: true}, Version: "0.3.0", GoVersion: "go1.23.4", Platform: "linux/amd64"}
	assert.Equal(t, "0.3.0-dirty go1.23.4 linux/amd64", b.String())
}
