package dispatch

// Op identifies an elementwise operation independent of device and dtype.
type Op string

// Public operations.
const (
	OpAbs        Op = "abs"
	OpAcos       Op = "acos"
	OpAcosh      Op = "acosh"
	OpAngle      Op = "angle"
	OpAsin       Op = "asin"
	OpAsinh      Op = "asinh"
	OpAtan       Op = "atan"
	OpAtanh      Op = "atanh"
	OpBitwiseNot Op = "bitwise_not"
	OpCeil       Op = "ceil"
	OpClamp      Op = "clamp"
	OpClampMax   Op = "clamp_max"
	OpClampMin   Op = "clamp_min"
	OpConj       Op = "conj"
	OpCos        Op = "cos"
	OpCosh       Op = "cosh"
	OpDigamma    Op = "digamma"
	OpErf        Op = "erf"
	OpErfc       Op = "erfc"
	OpErfinv     Op = "erfinv"
	OpExp        Op = "exp"
	OpExpm1      Op = "expm1"
	OpFloor      Op = "floor"
	OpFrac       Op = "frac"
	OpLgamma     Op = "lgamma"
	OpLog        Op = "log"
	OpLog10      Op = "log10"
	OpLog1p      Op = "log1p"
	OpLog2       Op = "log2"
	OpLogicalNot Op = "logical_not"
	OpNeg        Op = "neg"
	OpPolygamma  Op = "polygamma"
	OpReciprocal Op = "reciprocal"
	OpRound      Op = "round"
	OpRsqrt      Op = "rsqrt"
	OpSigmoid    Op = "sigmoid"
	OpSign       Op = "sign"
	OpSin        Op = "sin"
	OpSinh       Op = "sinh"
	OpSqrt       Op = "sqrt"
	OpTan        Op = "tan"
	OpTanh       Op = "tanh"
	OpTrunc      Op = "trunc"
)

// Support operations the composed forms are built from.
const (
	OpAdd  Op = "add"
	OpCopy Op = "copy_cast"
	OpMul  Op = "mul"
)
