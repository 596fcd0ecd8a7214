package fixedpoint

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is an unsigned decimal with 50 binary fractional digits,
// backed by a 192-bit integer.
// It targets rate and accrual math where products of large balances
// and small factors must not lose the fractional tail.
//
// Number is immutable and safe for concurrent use by multiple
// goroutines.
type Number struct {
	raw Uint192
}

// The wire layout is exactly three 64-bit limbs.
const (
	_ = 24 - unsafe.Sizeof(Number{})
	_ = unsafe.Sizeof(Number{}) - 24
)

const (
	// numberFrac is the number of binary fractional digits.
	numberFrac = 50

	// numberDigits is the longest decimal fraction the 2^-50 grid can
	// round-trip through [Number.String].
	numberDigits = 14

	// BpsExponent is the decimal exponent of one basis point.
	BpsExponent = -4
)

var (
	NumberZero = Number{}
	NumberOne  = Number{raw: Uint192{l0: 1 << numberFrac}}
	NumberMax  = Number{raw: maxUint192}
	NumberMin  = Number{}
)

var pow10w = [...]uint64{
	1,                      // 10^0
	10,                     // 10^1
	100,                    // 10^2
	1_000,                  // 10^3
	10_000,                 // 10^4
	100_000,                // 10^5
	1_000_000,              // 10^6
	10_000_000,             // 10^7
	100_000_000,            // 10^8
	1_000_000_000,          // 10^9
	10_000_000_000,         // 10^10
	100_000_000_000,        // 10^11
	1_000_000_000_000,      // 10^12
	10_000_000_000_000,     // 10^13
	100_000_000_000_000,    // 10^14
	1_000_000_000_000_000,  // 10^15
	10_000_000_000_000_000, // 10^16
}

// tenPow returns 10^e for e in [0, 16].
//
// tenPow panics if e is out of range, as such an exponent cannot come
// from a valid decimal conversion.
func tenPow(e int) Uint192 {
	if e < 0 || e >= len(pow10w) {
		panic(fmt.Sprintf("tenPow(%v) failed: %v", e, errExponentRange))
	}
	return Uint192{l0: pow10w[e]}
}

// abs returns |e| for a decimal exponent.
func absExp(e int) int {
	if e < 0 {
		return -e
	}
	return e
}

// NumberFrom converts an unsigned integer to a (possibly wider)
// Number.
// The conversion never fails.
func NumberFrom[T constraints.Unsigned](v T) Number {
	return Number{raw: Uint192{l0: uint64(v)}.shl(numberFrac)}
}

// NumberFromDecimal converts a decimal coefficient and exponent to a
// (possibly wider) Number.
// NumberFromDecimal(15, -1) is 1.5, NumberFromDecimal(3, 2) is 300.
//
// NumberFromDecimal panics if the magnitude of exponent exceeds 16 or
// if the scaled value does not fit the 192-bit backing.
func NumberFromDecimal[T constraints.Unsigned](v T, exponent int) Number {
	return NumberFromUint192(Uint192{l0: uint64(v)}, exponent)
}

// NumberFromUint192 converts a wide decimal coefficient and exponent
// to a Number.
//
// NumberFromUint192 panics if the magnitude of exponent exceeds 16 or
// if the scaled value does not fit the 192-bit backing.
func NumberFromUint192(v Uint192, exponent int) Number {
	prec := tenPow(absExp(exponent))
	expanded, ok := v.shlChecked(numberFrac)
	if !ok {
		panic(fmt.Sprintf("NumberFromUint192(%v, %v) failed: %v", v, exponent, ErrOverflow))
	}
	if exponent < 0 {
		q, _ := expanded.quoRem(prec)
		return Number{raw: q}
	}
	z, ok := expanded.CheckedMul(prec)
	if !ok {
		panic(fmt.Sprintf("NumberFromUint192(%v, %v) failed: %v", v, exponent, ErrOverflow))
	}
	return Number{raw: z}
}

// NumberFromBps converts basis points to a Number.
func NumberFromBps(bps uint16) Number {
	return NumberFromDecimal(bps, BpsExponent)
}

// NumberFromBits reconstructs a Number from the native byte form
// produced by [Number.Bits].
func NumberFromBits(b [24]byte) Number {
	return Number{raw: Uint192{
		l0: binary.NativeEndian.Uint64(b[0:8]),
		l1: binary.NativeEndian.Uint64(b[8:16]),
		l2: binary.NativeEndian.Uint64(b[16:24]),
	}}
}

// Bits returns x in native byte order, least significant limb first.
func (x Number) Bits() [24]byte {
	var b [24]byte
	binary.NativeEndian.PutUint64(b[0:8], x.raw.l0)
	binary.NativeEndian.PutUint64(b[8:16], x.raw.l1)
	binary.NativeEndian.PutUint64(b[16:24], x.raw.l2)
	return b
}

// Raw returns the scaled 192-bit backing value.
func (x Number) Raw() Uint192 {
	return x.raw
}

// AsDecimal converts x to a decimal coefficient with the given
// exponent, rounding half up on the scale grid.
// For exponents down to -14 it inverts [NumberFromUint192]: converting
// a coefficient in and back out at the same exponent returns the
// coefficient unchanged, as the deficit left by the construction floor
// stays under 10^14/2^50, below one half.
// At -15 and -16 the deficit can exceed one half and the coefficient
// grid outruns the 2^-50 grid, so the round trip is lossy there.
//
// AsDecimal panics if the magnitude of exponent exceeds 16 or if the
// rescaled value does not fit the 192-bit backing.
func (x Number) AsDecimal(exponent int) Uint192 {
	prec := tenPow(absExp(exponent))
	var v Uint192
	if exponent < 0 {
		var ok bool
		v, ok = x.raw.CheckedMul(prec)
		if !ok {
			panic(fmt.Sprintf("%q.AsDecimal(%v) failed: %v", x, exponent, ErrOverflow))
		}
	} else {
		v, _ = x.raw.quoRem(prec)
	}
	q := v.shr(numberFrac)
	if v.l0&(1<<numberFrac-1) >= 1<<(numberFrac-1) {
		q = q.add(Uint192{l0: 1})
	}
	return q
}

// target returns the numerator and divisor whose quotient is x scaled
// to integer units of 10^exponent.
func (x Number) target(exponent int) (n, d Uint192, ok bool) {
	n = x.raw
	d = Uint192{l0: 1}.shl(numberFrac)
	if exponent < 0 {
		n, ok = n.CheckedMul(tenPow(-exponent))
		if !ok {
			return Uint192{}, Uint192{}, false
		}
	} else {
		d, ok = tenPow(exponent).shlChecked(numberFrac)
		if !ok {
			return Uint192{}, Uint192{}, false
		}
	}
	return n, d, true
}

// AsUint64 converts x to integer units of 10^exponent, truncating
// towards zero.
//
// AsUint64 panics if the result does not fit in a uint64.
func (x Number) AsUint64(exponent int) uint64 {
	n, d, ok := x.target(exponent)
	if !ok {
		panic(fmt.Sprintf("%q.AsUint64(%v) failed: %v", x, exponent, ErrOverflow))
	}
	q, _ := n.quoRem(d)
	v, ok := q.Uint64()
	if !ok {
		panic(fmt.Sprintf("%q.AsUint64(%v) failed: %v", x, exponent, ErrOverflow))
	}
	return v
}

// AsUint64Ceil converts x to integer units of 10^exponent, rounding
// away from zero.
// Exact multiples are unchanged.
//
// AsUint64Ceil panics if the result does not fit in a uint64.
func (x Number) AsUint64Ceil(exponent int) uint64 {
	n, d, ok := x.target(exponent)
	if !ok {
		panic(fmt.Sprintf("%q.AsUint64Ceil(%v) failed: %v", x, exponent, ErrOverflow))
	}
	q, r := n.quoRem(d)
	if !r.IsZero() {
		q, ok = q.CheckedAdd(Uint192{l0: 1})
		if !ok {
			panic(fmt.Sprintf("%q.AsUint64Ceil(%v) failed: %v", x, exponent, ErrOverflow))
		}
	}
	v, ok := q.Uint64()
	if !ok {
		panic(fmt.Sprintf("%q.AsUint64Ceil(%v) failed: %v", x, exponent, ErrOverflow))
	}
	return v
}

// AsUint64Rounded converts x to integer units of 10^exponent, rounding
// half away from zero.
//
// AsUint64Rounded panics if the result does not fit in a uint64.
func (x Number) AsUint64Rounded(exponent int) uint64 {
	n, d, ok := x.target(exponent)
	if !ok {
		panic(fmt.Sprintf("%q.AsUint64Rounded(%v) failed: %v", x, exponent, ErrOverflow))
	}
	q, r := n.quoRem(d)
	if r.Cmp(d.shr(1)) >= 0 {
		q, ok = q.CheckedAdd(Uint192{l0: 1})
		if !ok {
			panic(fmt.Sprintf("%q.AsUint64Rounded(%v) failed: %v", x, exponent, ErrOverflow))
		}
	}
	v, ok := q.Uint64()
	if !ok {
		panic(fmt.Sprintf("%q.AsUint64Rounded(%v) failed: %v", x, exponent, ErrOverflow))
	}
	return v
}

// Add calculates x + y.
//
// Add panics if the sum does not fit the 192-bit backing.
func (x Number) Add(y Number) Number {
	z, ok := x.CheckedAdd(y)
	if !ok {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Sub calculates x - y.
//
// Sub panics if y > x.
func (x Number) Sub(y Number) Number {
	z, ok := x.CheckedSub(y)
	if !ok {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", x, y, ErrUnderflow))
	}
	return z
}

// Mul calculates x * y.
//
// Mul panics if the scaled product does not fit the 192-bit backing.
func (x Number) Mul(y Number) Number {
	z, ok := x.CheckedMul(y)
	if !ok {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Quo calculates x / y, truncating towards zero on the scale grid.
//
// Quo panics if y is zero or if the pre-scaled dividend does not fit
// the 192-bit backing.
func (x Number) Quo(y Number) Number {
	if y.IsZero() {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", x, y, ErrDivisionByZero))
	}
	z, ok := x.CheckedQuo(y)
	if !ok {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Mul64 calculates x * y for a plain integer y.
//
// Mul64 panics if the product does not fit the 192-bit backing.
func (x Number) Mul64(y uint64) Number {
	z, ok := x.raw.CheckedMul(Uint192{l0: y})
	if !ok {
		panic(fmt.Sprintf("%q.Mul64(%v) failed: %v", x, y, ErrOverflow))
	}
	return Number{raw: z}
}

// Quo64 calculates x / y for a plain integer y.
//
// Quo64 panics if y is zero.
func (x Number) Quo64(y uint64) Number {
	if y == 0 {
		panic(fmt.Sprintf("%q.Quo64(%v) failed: %v", x, y, ErrDivisionByZero))
	}
	q, _ := x.raw.quoRem64(y)
	return Number{raw: q}
}

// AddAssign sets *x to *x + y, panicking like [Number.Add].
func (x *Number) AddAssign(y Number) {
	*x = x.Add(y)
}

// SubAssign sets *x to *x - y, panicking like [Number.Sub].
func (x *Number) SubAssign(y Number) {
	*x = x.Sub(y)
}

// MulAssign sets *x to *x * y, panicking like [Number.Mul].
func (x *Number) MulAssign(y Number) {
	*x = x.Mul(y)
}

// QuoAssign sets *x to *x / y, panicking like [Number.Quo].
func (x *Number) QuoAssign(y Number) {
	*x = x.Quo(y)
}

// CheckedAdd calculates x + y and checks overflow.
func (x Number) CheckedAdd(y Number) (z Number, ok bool) {
	r, ok := x.raw.CheckedAdd(y.raw)
	return Number{raw: r}, ok
}

// CheckedSub calculates x - y and checks underflow.
func (x Number) CheckedSub(y Number) (z Number, ok bool) {
	r, ok := x.raw.CheckedSub(y.raw)
	return Number{raw: r}, ok
}

// CheckedMul calculates x * y and checks overflow of the scaled
// product.
func (x Number) CheckedMul(y Number) (z Number, ok bool) {
	r, ok := x.raw.CheckedMul(y.raw)
	if !ok {
		return Number{}, false
	}
	return Number{raw: r.shr(numberFrac)}, true
}

// CheckedQuo calculates x / y and checks division by zero and overflow
// of the pre-scaled dividend.
func (x Number) CheckedQuo(y Number) (z Number, ok bool) {
	if y.IsZero() {
		return Number{}, false
	}
	n, ok := x.raw.shlChecked(numberFrac)
	if !ok {
		return Number{}, false
	}
	q, _ := n.quoRem(y.raw)
	return Number{raw: q}, true
}

// SaturatingAdd calculates x + y, clamping to [NumberMax] on overflow.
func (x Number) SaturatingAdd(y Number) Number {
	return Number{raw: x.raw.saturatingAdd(y.raw)}
}

// SaturatingSub calculates x - y, clamping to [NumberMin] on
// underflow.
func (x Number) SaturatingSub(y Number) Number {
	return Number{raw: x.raw.saturatingSub(y.raw)}
}

// SaturatingMul calculates x * y, clamping to [NumberMax] when the
// scaled product overflows.
func (x Number) SaturatingMul(y Number) Number {
	r, ok := x.raw.CheckedMul(y.raw)
	if !ok {
		return NumberMax
	}
	return Number{raw: r.shr(numberFrac)}
}

// Pow raises the raw backing of x to the raw backing of e.
// Both operands carry the 2^50 scale, so e is useful only when
// assembled from a raw value.
//
// Pow panics if the result does not fit the 192-bit backing.
func (x Number) Pow(e Number) Number {
	z, ok := x.raw.pow(e.raw)
	if !ok {
		panic(fmt.Sprintf("%q.Pow(%q) failed: %v", x, e, ErrOverflow))
	}
	return Number{raw: z}
}

// Sum adds the given values, panicking like [Number.Add].
// Sum of no values is [NumberZero].
func Sum(xs ...Number) Number {
	z := NumberZero
	for _, x := range xs {
		z = z.Add(x)
	}
	return z
}

// IsZero returns true if x == 0.
func (x Number) IsZero() bool {
	return x.raw.IsZero()
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Number) Cmp(y Number) int {
	return x.raw.Cmp(y.raw)
}

// String implements the [fmt.Stringer] interface.
// The fraction is rendered to at most 14 decimal digits, rounding half
// up, with trailing zeros removed.
// 14 digits recover every decimal fraction the scale grid can hold, as
// the grid spacing of 2^-50 is finer than half of 10^-14.
func (x Number) String() string {
	return string(x.appendText(make([]byte, 0, 73)))
}

func (x Number) appendText(b []byte) []byte {
	ip := x.raw.shr(numberFrac)
	rem := x.raw.l0 & (1<<numberFrac - 1)
	// Scale the fraction to 14 decimal digits, rounding half up.
	hi, lo := bits.Mul64(rem, pow10w[numberDigits])
	lo, carry := bits.Add64(lo, 1<<(numberFrac-1), 0)
	frac := (hi+carry)<<(64-numberFrac) | lo>>numberFrac
	if frac == pow10w[numberDigits] {
		frac = 0
		ip = ip.add(Uint192{l0: 1})
	}
	var digits [numberDigits]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte(frac%10) + '0'
		frac /= 10
	}
	n := len(digits)
	for n > 1 && digits[n-1] == '0' {
		n--
	}
	b = append(b, ip.String()...)
	b = append(b, '.')
	return append(b, digits[:n]...)
}
