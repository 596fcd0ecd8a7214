package fixedpoint

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

var (
	ErrOverflow       = errors.New("value overflow")
	ErrUnderflow      = errors.New("value underflow")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNegative       = errors.New("value is negative")
	errExponentRange  = errors.New("exponent out of range")
)

// Arithmetic is the minimal capability a numeric type must provide to
// participate in the [SafeAdd], [SafeSub], [SafeMul], [SafeQuo] and
// [TryAddAssign], [TrySubAssign], [TryMulAssign], [TryQuoAssign]
// function set.
// Each method reports false instead of overflowing or dividing by zero.
//
// [Fp32], [Number], [Number128], [Uint192], and [Int128] all satisfy
// Arithmetic of themselves.
type Arithmetic[T any] interface {
	CheckedAdd(T) (T, bool)
	CheckedSub(T) (T, bool)
	CheckedMul(T) (T, bool)
	CheckedQuo(T) (T, bool)
}

// SafeAdd returns x + y, or [ErrOverflow] carrying both operands if the
// sum is not representable.
func SafeAdd[T Arithmetic[T]](x, y T) (T, error) {
	z, ok := x.CheckedAdd(y)
	if !ok {
		return z, fmt.Errorf("%v + %v: %w", x, y, ErrOverflow)
	}
	return z, nil
}

// SafeSub returns x - y, or [ErrUnderflow] carrying both operands if the
// difference is not representable.
func SafeSub[T Arithmetic[T]](x, y T) (T, error) {
	z, ok := x.CheckedSub(y)
	if !ok {
		return z, fmt.Errorf("%v - %v: %w", x, y, ErrUnderflow)
	}
	return z, nil
}

// SafeMul returns x * y, or [ErrOverflow] carrying both operands if the
// product is not representable.
func SafeMul[T Arithmetic[T]](x, y T) (T, error) {
	z, ok := x.CheckedMul(y)
	if !ok {
		return z, fmt.Errorf("%v * %v: %w", x, y, ErrOverflow)
	}
	return z, nil
}

// SafeQuo returns x / y, or [ErrDivisionByZero] carrying both operands
// if the quotient cannot be computed.
func SafeQuo[T Arithmetic[T]](x, y T) (T, error) {
	z, ok := x.CheckedQuo(y)
	if !ok {
		return z, fmt.Errorf("%v / %v: %w", x, y, ErrDivisionByZero)
	}
	return z, nil
}

// TryAddAssign sets *x to *x + y.
// On failure *x is left unchanged and [ErrOverflow] is returned.
func TryAddAssign[T Arithmetic[T]](x *T, y T) error {
	z, ok := (*x).CheckedAdd(y)
	if !ok {
		return fmt.Errorf("%v + %v: %w", *x, y, ErrOverflow)
	}
	*x = z
	return nil
}

// TrySubAssign sets *x to *x - y.
// On failure *x is left unchanged and [ErrUnderflow] is returned.
func TrySubAssign[T Arithmetic[T]](x *T, y T) error {
	z, ok := (*x).CheckedSub(y)
	if !ok {
		return fmt.Errorf("%v - %v: %w", *x, y, ErrUnderflow)
	}
	*x = z
	return nil
}

// TryMulAssign sets *x to *x * y.
// On failure *x is left unchanged and [ErrOverflow] is returned.
func TryMulAssign[T Arithmetic[T]](x *T, y T) error {
	z, ok := (*x).CheckedMul(y)
	if !ok {
		return fmt.Errorf("%v * %v: %w", *x, y, ErrOverflow)
	}
	*x = z
	return nil
}

// TryQuoAssign sets *x to *x / y.
// On failure *x is left unchanged and [ErrDivisionByZero] is returned.
func TryQuoAssign[T Arithmetic[T]](x *T, y T) error {
	z, ok := (*x).CheckedQuo(y)
	if !ok {
		return fmt.Errorf("%v / %v: %w", *x, y, ErrDivisionByZero)
	}
	*x = z
	return nil
}

// CheckedAdd calculates x + y and checks overflow.
// It covers plain integer widths supplied by the embedding environment,
// such as token amounts held in uint64 account fields.
func CheckedAdd[T constraints.Unsigned](x, y T) (z T, ok bool) {
	z = x + y
	if z < x {
		return 0, false
	}
	return z, true
}

// CheckedSub calculates x - y and checks underflow.
func CheckedSub[T constraints.Unsigned](x, y T) (z T, ok bool) {
	if y > x {
		return 0, false
	}
	return x - y, true
}

// CheckedMul calculates x * y and checks overflow.
func CheckedMul[T constraints.Unsigned](x, y T) (z T, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// CheckedQuo calculates x / y and checks division by zero.
func CheckedQuo[T constraints.Unsigned](x, y T) (z T, ok bool) {
	if y == 0 {
		return 0, false
	}
	return x / y, true
}
