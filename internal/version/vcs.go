// Copyright 2022 The go-ethereum Authors
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
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

const (
	govcsTimeLayout = "2006-01-02T15:04:05Z" // vcs.time as stamped by the go tool
	ourTimeLayout   = "20060102"             // 版本字符串中的日期格式 YYYYMMDD
)

// Release builds may stamp these through -ldflags "-X", they win over the
// VCS information embedded by the go tool.
// 发布构建可以通过 -ldflags "-X" 设置，优先于 go 工具嵌入的 VCS 信息。
var gitCommit, gitDate string

// VCSInfo represents the git repository state.
// VCSInfo 表示 git 仓库的状态。
type VCSInfo struct {
	Commit string // head commit hash
	Date   string // commit time in YYYYMMDD format
	Dirty  bool   // 工作区有未提交的修改
}

// VCS returns version control information of the current executable.
// It reports false for binaries built outside of the vitecore module.
// VCS 返回当前可执行文件的版本控制信息；非本模块构建的二进制返回 false。
func VCS() (VCSInfo, bool) {
	if gitCommit != "" {
		return VCSInfo{Commit: gitCommit, Date: gitDate}, true
	}
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Path != ourPath {
		return VCSInfo{}, false
	}
	return buildInfoVCS(info)
}

func buildInfoVCS(info *debug.BuildInfo) (s VCSInfo, ok bool) {
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			s.Commit = v.Value
		case "vcs.modified":
			s.Dirty = v.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(govcsTimeLayout, v.Value); err == nil {
				s.Date = t.Format(ourTimeLayout)
			}
		}
	}
	return s, s.Commit != "" && s.Date != ""
}

// Build identifies the running binary: its version, the source it was built
// from and the toolchain and platform it was built for.
// Build 标识正在运行的二进制：版本、源码状态、工具链和平台。
type Build struct {
	VCSInfo
	Version   string
	GoVersion string
	Platform  string
}

// Current returns the build information of the running binary.
func Current() Build {
	vcs, _ := VCS()
	return Build{
		VCSInfo:   vcs,
		Version:   WithCommit(vcs.Commit, vcs.Date),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

func (b Build) String() string {
	s := b.Version
	if b.Dirty {
		s += "-dirty"
	}
	return fmt.Sprintf("%s %s %s", s, b.GoVersion, b.Platform)
}
