package ops

import (
	"fmt"

	"github.com/stride-ml/stride/internal/tensor"
)

// domain restricts an operation to the dtype classes its kernels accept.
// Violations surface before dispatch, so a failed call never touches its
// output.
type domain int

const (
	anyDtype domain = iota
	floatingOnly
	floatingOrComplex
	realOnly       // everything except complex
	realExceptBool // everything except complex and bool
	numericOnly    // everything except bool
	integerOrBool
)

func checkDomain(op string, dt tensor.DataType, d domain) error {
	ok := true
	switch d {
	case floatingOnly:
		ok = dt.IsFloating()
	case floatingOrComplex:
		ok = dt.IsFloating() || dt.IsComplex()
	case realOnly:
		ok = !dt.IsComplex()
	case realExceptBool:
		ok = !dt.IsComplex() && dt != tensor.Bool
	case numericOnly:
		ok = dt != tensor.Bool
	case integerOrBool:
		ok = dt.IsInteger() || dt == tensor.Bool
	}
	if !ok {
		return fmt.Errorf("%w: %s is not supported for %s", tensor.ErrUnsupportedDtype, op, dt)
	}
	return nil
}
