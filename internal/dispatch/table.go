// Package dispatch routes elementwise operations to device kernels. A Table
// maps (operation, device) pairs to kernels; backends register their kernels
// during setup and the operation facade looks them up per call.
package dispatch

import (
	"fmt"
	"sort"
	"sync"

	"github.com/stride-ml/stride/internal/logger"
	"github.com/stride-ml/stride/internal/tensor"
)

// Kernel executes a validated plan. The plan carries the operands and their
// stride tables; args carries scalar parameters such as clamp bounds or the
// polygamma order.
type Kernel func(p *tensor.Plan, args ...tensor.Scalar) error

type key struct {
	op     Op
	device tensor.Device
}

// Table is an explicit kernel registry. Registration happens while a
// backend wires itself up; lookups afterwards are concurrent and
// read-mostly.
type Table struct {
	mu      sync.RWMutex
	kernels map[key]Kernel
	log     logger.Logger
}

// Option configures a Table.
type Option func(*Table)

// WithLogger attaches a logger that records registrations at debug level.
func WithLogger(log logger.Logger) Option {
	return func(t *Table) { t.log = log }
}

// NewTable creates an empty dispatch table.
func NewTable(opts ...Option) *Table {
	t := &Table{kernels: make(map[key]Kernel)}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Register adds a kernel for (op, device). Registering the same pair twice
// is a wiring bug and panics.
func (t *Table) Register(op Op, device tensor.Device, k Kernel) {
	if k == nil {
		panic(fmt.Sprintf("dispatch: nil kernel for %s on %s", op, device))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	kk := key{op: op, device: device}
	if _, exists := t.kernels[kk]; exists {
		panic(fmt.Sprintf("dispatch: duplicate kernel for %s on %s", op, device))
	}
	t.kernels[kk] = k
	if t.log != nil {
		t.log.Debug("registered kernel", "op", string(op), "device", device.String())
	}
}

// Lookup returns the kernel registered for (op, device).
func (t *Table) Lookup(op Op, device tensor.Device) (Kernel, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	k, ok := t.kernels[key{op: op, device: device}]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not implemented for %s", tensor.ErrUnsupportedDevice, op, device)
	}
	return k, nil
}

// Ops returns every operation with at least one kernel, sorted.
func (t *Table) Ops() []Op {
	t.mu.RLock()
	defer t.mu.RUnlock()
	seen := make(map[Op]bool)
	var ops []Op
	for k := range t.kernels {
		if !seen[k.op] {
			seen[k.op] = true
			ops = append(ops, k.op)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

// Devices returns the devices holding a kernel for op, sorted.
func (t *Table) Devices(op Op) []tensor.Device {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var devices []tensor.Device
	for k := range t.kernels {
		if k.op == op {
			devices = append(devices, k.device)
		}
	}
	sort.Slice(devices, func(i, j int) bool { return devices[i] < devices[j] })
	return devices
}

// Len returns the number of registered (op, device) pairs.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.kernels)
}
