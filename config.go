// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package compat

import (
	"log/slog"
	"runtime"
	"strconv"

	"github.com/wdamron/compat/report"
)

// Config controls a checking session. The zero value is ready to use.
type Config struct {
	// Logger receives malformed-term failures at error level and session progress at debug
	// level. The default is slog.Default().
	Logger *slog.Logger
	// Workers bounds the number of judgments decided in parallel by Env.CheckAll.
	// The default is runtime.GOMAXPROCS(0).
	Workers int
	// DocBase prefixes the error code in the header of each report.
	DocBase string
	// ListGuards counts list types as guards when checking aliases for contractiveness.
	// By default only tuple and function types guard a recursive reference.
	ListGuards bool
	// AllActualBranches reports every failing member of a union on the actual side of a
	// judgment, rather than only the first.
	AllActualBranches bool
	// Trace logs each step of each judgment at debug level.
	Trace bool
}

func setConfigDefaults(cfg *Config) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	switch {
	case cfg.Workers == 0:
		cfg.Workers = runtime.GOMAXPROCS(0)
	case cfg.Workers < 0:
		panic("bad Workers " + strconv.Itoa(cfg.Workers))
	}
	if cfg.DocBase == "" {
		cfg.DocBase = report.DefaultDocBase
	}
}
