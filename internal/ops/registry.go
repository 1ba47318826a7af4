// Package ops implements the elementwise operation facade: every public
// operation in its three forms, derived from one write-into-output
// primitive, plus the per-operation dtype domain rules and the
// complex-to-real result policy.
package ops

import (
	"sync"

	"github.com/stride-ml/stride/internal/backend/cpu"
	"github.com/stride-ml/stride/internal/dispatch"
)

var (
	tableMu sync.RWMutex
	table   *dispatch.Table
)

// Table returns the process-wide dispatch table, building it on first use
// with every available backend registered.
func Table() *dispatch.Table {
	tableMu.RLock()
	t := table
	tableMu.RUnlock()
	if t != nil {
		return t
	}

	tableMu.Lock()
	defer tableMu.Unlock()
	if table == nil {
		table = buildDefault()
	}
	return table
}

// SetTable replaces the process-wide table. Tests use this to inject
// custom kernels; passing nil restores the default on next use.
func SetTable(t *dispatch.Table) {
	tableMu.Lock()
	defer tableMu.Unlock()
	table = t
}

func buildDefault() *dispatch.Table {
	t := dispatch.NewTable()
	cpu.New().Register(t)
	registerAccelerators(t)
	return t
}
