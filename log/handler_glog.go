// Copyright 2017 The go-ethereum Authors
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

package log

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
)

// errVmoduleSyntax is returned when a user vmodule pattern is invalid.
var errVmoduleSyntax = errors.New("expect comma-separated list of filename=N")

// GlogHandler is a log handler that mimics the filtering features of Google's
// glog logger: a global verbosity ceiling which can be raised per file or
// package with vmodule patterns.
// GlogHandler 模仿 glog 的过滤功能：全局详细级别，可以按文件或包通过 vmodule 规则提升。
type GlogHandler struct {
	origin slog.Handler

	level    atomic.Int32 // 全局日志级别
	override atomic.Bool  // 是否存在 vmodule 规则

	patterns  []pattern
	siteCache map[uintptr]slog.Level // 调用点到级别的缓存
	lock      sync.RWMutex           // protects patterns and siteCache
}

// NewGlogHandler wraps h with glog style filtering.
func NewGlogHandler(h slog.Handler) *GlogHandler {
	return &GlogHandler{
		origin:    h,
		siteCache: make(map[uintptr]slog.Level),
	}
}

// pattern is one vmodule rule: files matching the expression log at level.
type pattern struct {
	pattern *regexp.Regexp
	level   slog.Level
}

// Verbosity sets the global verbosity ceiling.
func (h *GlogHandler) Verbosity(level slog.Level) {
	h.level.Store(int32(level))
}

// Vmodule sets the per file verbosity rules.
//
// The ruleset is a comma separated list of pattern=N, where the pattern is a
// literal file name or a path and N is a verbosity from 0 to 5:
//
//	interpreter.go=5   trace in every file named interpreter.go
//	asm=4              debug in every file of packages whose path ends in asm
//	core/*=4           debug in every file below a core directory
//
// Vmodule 设置按文件的详细级别规则，格式为逗号分隔的 pattern=N。
func (h *GlogHandler) Vmodule(ruleset string) error {
	var filter []pattern
	for _, rule := range strings.Split(ruleset, ",") {
		if len(rule) == 0 {
			continue
		}
		parts := strings.Split(rule, "=")
		if len(parts) != 2 {
			return errVmoduleSyntax
		}
		parts[0] = strings.TrimSpace(parts[0])
		parts[1] = strings.TrimSpace(parts[1])
		if len(parts[0]) == 0 || len(parts[1]) == 0 {
			return errVmoduleSyntax
		}
		l, err := strconv.Atoi(parts[1])
		if err != nil {
			return errVmoduleSyntax
		}
		level := FromLegacyLevel(l)
		if level == LevelCrit {
			continue // crit is always emitted
		}
		matcher := ".*"
		for _, comp := range strings.Split(parts[0], "/") {
			if comp == "*" {
				matcher += "(/.*)?"
			} else if comp != "" {
				matcher += "/" + regexp.QuoteMeta(comp)
			}
		}
		if !strings.HasSuffix(parts[0], ".go") {
			matcher += "/[^/]+\\.go"
		}
		filter = append(filter, pattern{regexp.MustCompile(matcher + "$"), level})
	}
	h.lock.Lock()
	defer h.lock.Unlock()

	h.patterns = filter
	h.siteCache = make(map[uintptr]slog.Level)
	h.override.Store(len(filter) != 0)
	return nil
}

// Enabled implements slog.Handler. With vmodule rules in place every level
// is let through to Handle, which decides per call site.
func (h *GlogHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.override.Load() || slog.Level(h.level.Load()) <= lvl
}

func (h *GlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.lock.RLock()
	siteCache := maps.Clone(h.siteCache)
	patterns := append([]pattern{}, h.patterns...)
	h.lock.RUnlock()

	res := &GlogHandler{
		origin:    h.origin.WithAttrs(attrs),
		patterns:  patterns,
		siteCache: siteCache,
	}
	res.level.Store(h.level.Load())
	res.override.Store(h.override.Load())
	return res
}

// WithGroup is not supported and returns the handler unchanged.
func (h *GlogHandler) WithGroup(name string) slog.Handler {
	return h
}

// Handle implements slog.Handler. Records pass when they reach the global
// level, or the level of the first vmodule rule matching their call site.
// Handle 先检查全局级别，再按调用点匹配 vmodule 规则。
func (h *GlogHandler) Handle(ctx context.Context, r slog.Record) error {
	if slog.Level(h.level.Load()) <= r.Level {
		return h.origin.Handle(ctx, r)
	}
	h.lock.RLock()
	lvl, ok := h.siteCache[r.PC]
	h.lock.RUnlock()

	if !ok {
		h.lock.Lock()
		frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
		for _, rule := range h.patterns {
			if rule.pattern.MatchString(fmt.Sprintf("+%s", frame.File)) {
				lvl, ok = rule.level, true
				break
			}
		}
		if !ok {
			// no rule matched, only records at or above crit get through
			lvl = LevelCrit
		}
		h.siteCache[r.PC] = lvl
		h.lock.Unlock()
	}
	if lvl <= r.Level {
		return h.origin.Handle(ctx, r)
	}
	return nil
}
