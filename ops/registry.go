// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/stride-ml/stride/dispatch"
	"github.com/stride-ml/stride/internal/ops"
)

// Table returns the process-wide dispatch table, building it on first use
// with every available backend registered.
func Table() *dispatch.Table {
	return ops.Table()
}

// SetTable replaces the process-wide table. Passing nil restores the
// default on next use.
//
// Example:
//
//	tbl := dispatch.NewTable()
//	cpu.New().Register(tbl)
//	ops.SetTable(tbl)
func SetTable(t *dispatch.Table) {
	ops.SetTable(t)
}
