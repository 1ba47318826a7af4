package tensor

import "errors"

// Validation failures surfaced by plan building and the operation facade.
// Every one of them is detected before a kernel runs, so a failed call
// leaves its destination array untouched.
var (
	// ErrShapeMismatch reports operand shapes that cannot broadcast
	// together, or a requested output whose shape cannot hold the
	// broadcast result.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrUnsafeAliasing reports an output that partially overlaps an input
	// in memory, where kernel writes could clobber input elements that
	// have not been read yet.
	ErrUnsafeAliasing = errors.New("unsafe memory aliasing")

	// ErrUnsupportedDtype reports an element type outside the domain of an
	// operation.
	ErrUnsupportedDtype = errors.New("unsupported dtype")

	// ErrUnsupportedDevice reports a device with no registered kernel for
	// an operation, or operands spread across different devices.
	ErrUnsupportedDevice = errors.New("unsupported device")

	// ErrUnsupportedLayout reports an output layout kernels cannot safely
	// write, such as a broadcast view where one memory location backs many
	// indices.
	ErrUnsupportedLayout = errors.New("unsupported layout")

	// ErrInvalidCast reports a result dtype that cannot represent the
	// values an operation produces, per CanCast.
	ErrInvalidCast = errors.New("invalid cast")

	// ErrInvalidArgument reports a scalar argument outside the accepted
	// range of an operation.
	ErrInvalidArgument = errors.New("invalid argument")
)
