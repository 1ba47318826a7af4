// Copyright 2025 The Stride Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dispatch exposes the kernel registry that routes elementwise
// operations to device backends.
//
// A Table maps (operation, device) pairs to kernels. The library wires a
// default table with the CPU backend registered; callers that bring their
// own kernels build a fresh table, register against it, and install it
// with ops.SetTable:
//
//	tbl := dispatch.NewTable()
//	cpu.New().Register(tbl)
//	myBackend.Register(tbl)
//	ops.SetTable(tbl)
package dispatch

import (
	"github.com/stride-ml/stride/internal/dispatch"
)

// Op identifies an elementwise operation independent of device and dtype.
type Op = dispatch.Op

// Kernel executes a validated plan. The plan carries the operands and their
// stride tables; args carries scalar parameters such as clamp bounds or the
// polygamma order.
type Kernel = dispatch.Kernel

// Table is an explicit kernel registry. Registration happens while a
// backend wires itself up; lookups afterwards are concurrent and
// read-mostly.
type Table = dispatch.Table

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return dispatch.NewTable()
}

// Operations understood by the library. Backends register kernels for the
// subset they implement.
const (
	OpAbs        = dispatch.OpAbs
	OpAcos       = dispatch.OpAcos
	OpAcosh      = dispatch.OpAcosh
	OpAngle      = dispatch.OpAngle
	OpAsin       = dispatch.OpAsin
	OpAsinh      = dispatch.OpAsinh
	OpAtan       = dispatch.OpAtan
	OpAtanh      = dispatch.OpAtanh
	OpBitwiseNot = dispatch.OpBitwiseNot
	OpCeil       = dispatch.OpCeil
	OpClamp      = dispatch.OpClamp
	OpClampMax   = dispatch.OpClampMax
	OpClampMin   = dispatch.OpClampMin
	OpConj       = dispatch.OpConj
	OpCos        = dispatch.OpCos
	OpCosh       = dispatch.OpCosh
	OpDigamma    = dispatch.OpDigamma
	OpErf        = dispatch.OpErf
	OpErfc       = dispatch.OpErfc
	OpErfinv     = dispatch.OpErfinv
	OpExp        = dispatch.OpExp
	OpExpm1      = dispatch.OpExpm1
	OpFloor      = dispatch.OpFloor
	OpFrac       = dispatch.OpFrac
	OpLgamma     = dispatch.OpLgamma
	OpLog        = dispatch.OpLog
	OpLog10      = dispatch.OpLog10
	OpLog1p      = dispatch.OpLog1p
	OpLog2       = dispatch.OpLog2
	OpLogicalNot = dispatch.OpLogicalNot
	OpNeg        = dispatch.OpNeg
	OpPolygamma  = dispatch.OpPolygamma
	OpReciprocal = dispatch.OpReciprocal
	OpRound      = dispatch.OpRound
	OpRsqrt      = dispatch.OpRsqrt
	OpSigmoid    = dispatch.OpSigmoid
	OpSign       = dispatch.OpSign
	OpSin        = dispatch.OpSin
	OpSinh       = dispatch.OpSinh
	OpSqrt       = dispatch.OpSqrt
	OpTan        = dispatch.OpTan
	OpTanh       = dispatch.OpTanh
	OpTrunc      = dispatch.OpTrunc
)

// Support operations the composed forms are built from.
const (
	OpAdd  = dispatch.OpAdd
	OpCopy = dispatch.OpCopy
	OpMul  = dispatch.OpMul
)
