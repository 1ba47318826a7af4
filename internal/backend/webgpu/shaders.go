//go:build windows

package webgpu

import "github.com/stride-ml/stride/internal/dispatch"

// workgroupSize is the number of threads per workgroup. It matches the
// @workgroup_size attribute baked into every shader below.
const workgroupSize = 256

// unaryShaderTemplate is the shared skeleton for elementwise unary shaders.
// The placeholder receives a WGSL expression over the input value v.
const unaryShaderTemplate = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        let v = input[idx];
        result[idx] = %s;
    }
}
`

// binaryShaderTemplate is the skeleton for elementwise binary shaders. The
// placeholder receives the WGSL infix operator.
const binaryShaderTemplate = `
@group(0) @binding(0) var<storage, read> a: array<f32>;
@group(0) @binding(1) var<storage, read> b: array<f32>;
@group(0) @binding(2) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        result[idx] = a[idx] %s b[idx];
    }
}
`

// clampShader limits each element to the enabled bounds. Explicit
// comparisons instead of the min/max builtins keep NaN inputs untouched.
const clampShader = `
@group(0) @binding(0) var<storage, read> input: array<f32>;
@group(0) @binding(1) var<storage, read_write> result: array<f32>;

struct Params {
    size: u32,
    lo: f32,
    hi: f32,
    use_lo: u32,
    use_hi: u32,
}
@group(0) @binding(2) var<uniform> params: Params;

@compute @workgroup_size(256)
fn main(@builtin(global_invocation_id) global_id: vec3<u32>) {
    let idx = global_id.x;
    if (idx < params.size) {
        var v = input[idx];
        if (params.use_lo == 1u && v < params.lo) {
            v = params.lo;
        }
        if (params.use_hi == 1u && v > params.hi) {
            v = params.hi;
        }
        result[idx] = v;
    }
}
`

// unaryExprs maps each GPU-supported operation to its WGSL expression over
// the input value v. WGSL round() already rounds ties to even, and sign is
// wrapped in a select so NaN propagates instead of collapsing to zero.
var unaryExprs = map[dispatch.Op]string{
	dispatch.OpAbs:        "abs(v)",
	dispatch.OpAcos:       "acos(v)",
	dispatch.OpAcosh:      "acosh(v)",
	dispatch.OpAsin:       "asin(v)",
	dispatch.OpAsinh:      "asinh(v)",
	dispatch.OpAtan:       "atan(v)",
	dispatch.OpAtanh:      "atanh(v)",
	dispatch.OpCeil:       "ceil(v)",
	dispatch.OpCos:        "cos(v)",
	dispatch.OpCosh:       "cosh(v)",
	dispatch.OpExp:        "exp(v)",
	dispatch.OpFloor:      "floor(v)",
	dispatch.OpFrac:       "v - trunc(v)",
	dispatch.OpLog:        "log(v)",
	dispatch.OpLog2:       "log2(v)",
	dispatch.OpNeg:        "-v",
	dispatch.OpReciprocal: "1.0 / v",
	dispatch.OpRound:      "round(v)",
	dispatch.OpRsqrt:      "inverseSqrt(v)",
	dispatch.OpSigmoid:    "1.0 / (1.0 + exp(-v))",
	dispatch.OpSign:       "select(sign(v), v, v != v)",
	dispatch.OpSin:        "sin(v)",
	dispatch.OpSinh:       "sinh(v)",
	dispatch.OpSqrt:       "sqrt(v)",
	dispatch.OpTan:        "tan(v)",
	dispatch.OpTanh:       "tanh(v)",
	dispatch.OpTrunc:      "trunc(v)",
}
