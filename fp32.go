package fixedpoint

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Fp32 is an unsigned fixed-point number with 32 binary fractional
// digits, backed by a 128-bit integer.
// The scale leaves 96 bits for the integer part, so products of two
// 64-bit wire values never overflow.
//
// Fp32 is immutable and safe for concurrent use by multiple goroutines.
type Fp32 struct {
	raw uint128
}

// The wire layout is exactly two 64-bit limbs.
const (
	_ = 16 - unsafe.Sizeof(Fp32{})
	_ = unsafe.Sizeof(Fp32{}) - 16
)

// fp32Frac is the number of binary fractional digits.
const fp32Frac = 32

var (
	Fp32Zero = Fp32{}
	Fp32One  = Fp32{raw: uint128{lo: 1 << fp32Frac}}
	Fp32Max  = Fp32{raw: maxUint128}
	Fp32Min  = Fp32{}
)

// Fp32From converts an unsigned integer to a (possibly wider) Fp32.
// The conversion never fails.
func Fp32From[T constraints.Unsigned](n T) Fp32 {
	return Fp32{raw: uint128{lo: uint64(n)}.shl(fp32Frac)}
}

// Fp32FromRaw assembles an Fp32 from the high and low halves of an
// already scaled 128-bit value.
func Fp32FromRaw(hi, lo uint64) Fp32 {
	return Fp32{raw: uint128{lo: lo, hi: hi}}
}

// Fp32FromBits64 widens a 64-bit wire value that already carries the
// 2^32 scale.
// The conversion never fails.
func Fp32FromBits64(fp uint64) Fp32 {
	return Fp32{raw: uint128{lo: fp}}
}

// Fp32FromBits reconstructs an Fp32 from the native byte form produced
// by [Fp32.Bits].
func Fp32FromBits(b [16]byte) Fp32 {
	return Fp32{raw: uint128{
		lo: binary.NativeEndian.Uint64(b[0:8]),
		hi: binary.NativeEndian.Uint64(b[8:16]),
	}}
}

// Bits returns x in native byte order, low half first.
func (x Fp32) Bits() [16]byte {
	var b [16]byte
	binary.NativeEndian.PutUint64(b[0:8], x.raw.lo)
	binary.NativeEndian.PutUint64(b[8:16], x.raw.hi)
	return b
}

// RawBits returns the high and low halves of the scaled backing value.
func (x Fp32) RawBits() (hi, lo uint64) {
	return x.raw.hi, x.raw.lo
}

// Bits64 narrows x to the 64-bit wire form, keeping the 2^32 scale.
// The second return value is false if the scaled value does not fit.
func (x Fp32) Bits64() (uint64, bool) {
	if x.raw.hi != 0 {
		return 0, false
	}
	return x.raw.lo, true
}

// AsUint64 truncates x to an integer.
// The second return value is false if the integer part does not fit in
// a uint64.
func (x Fp32) AsUint64() (uint64, bool) {
	q := x.raw.shr(fp32Frac)
	if q.hi != 0 {
		return 0, false
	}
	return q.lo, true
}

// AsUint64Ceil rounds x up to an integer.
// Exact integers are unchanged.
// The second return value is false if the result does not fit in a
// uint64.
func (x Fp32) AsUint64Ceil() (uint64, bool) {
	inc := uint64(-uint32(x.raw.lo))
	t, ok := x.raw.addChecked(uint128{lo: inc})
	if !ok {
		return 0, false
	}
	q := t.shr(fp32Frac)
	if q.hi != 0 {
		return 0, false
	}
	return q.lo, true
}

// Add calculates x + y, wrapping around the 128-bit backing on
// overflow.
func (x Fp32) Add(y Fp32) Fp32 {
	return Fp32{raw: x.raw.add(y.raw)}
}

// Sub calculates x - y, wrapping around the 128-bit backing on
// underflow.
func (x Fp32) Sub(y Fp32) Fp32 {
	return Fp32{raw: x.raw.sub(y.raw)}
}

// Mul calculates x * y.
//
// Mul panics if the product does not fit the 128-bit backing.
func (x Fp32) Mul(y Fp32) Fp32 {
	z, ok := x.CheckedMul(y)
	if !ok {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Quo calculates x / y.
//
// Quo panics if y is zero or if the pre-scaled dividend does not fit
// the 128-bit backing.
func (x Fp32) Quo(y Fp32) Fp32 {
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
// No scale adjustment is needed because y carries no fraction.
//
// Mul64 panics if the product does not fit the 128-bit backing.
func (x Fp32) Mul64(y uint64) Fp32 {
	z, ok := x.raw.mulChecked(uint128{lo: y})
	if !ok {
		panic(fmt.Sprintf("%q.Mul64(%v) failed: %v", x, y, ErrOverflow))
	}
	return Fp32{raw: z}
}

// Quo64 calculates x / y for a plain integer y.
//
// Quo64 panics if y is zero.
func (x Fp32) Quo64(y uint64) Fp32 {
	if y == 0 {
		panic(fmt.Sprintf("%q.Quo64(%v) failed: %v", x, y, ErrDivisionByZero))
	}
	q, _ := x.raw.quoRem64(y)
	return Fp32{raw: q}
}

// MulAsUint64 calculates x * y for a plain integer y and truncates the
// product to an integer.
// The second return value is false if the product or the truncated
// result does not fit.
func (x Fp32) MulAsUint64(y uint64) (uint64, bool) {
	p, ok := x.raw.mulChecked(uint128{lo: y})
	if !ok {
		return 0, false
	}
	q := p.shr(fp32Frac)
	if q.hi != 0 {
		return 0, false
	}
	return q.lo, true
}

// QuoAsUint64 calculates x / y for a plain integer y and truncates the
// quotient to an integer.
// The second return value is false if y is zero or the truncated
// result does not fit.
func (x Fp32) QuoAsUint64(y uint64) (uint64, bool) {
	if y == 0 {
		return 0, false
	}
	q, _ := x.raw.quoRem64(y)
	q = q.shr(fp32Frac)
	if q.hi != 0 {
		return 0, false
	}
	return q.lo, true
}

// AddAssign sets *x to *x + y, wrapping on overflow.
func (x *Fp32) AddAssign(y Fp32) {
	*x = x.Add(y)
}

// SubAssign sets *x to *x - y, wrapping on underflow.
func (x *Fp32) SubAssign(y Fp32) {
	*x = x.Sub(y)
}

// MulAssign sets *x to *x * y, panicking like [Fp32.Mul].
func (x *Fp32) MulAssign(y Fp32) {
	*x = x.Mul(y)
}

// QuoAssign sets *x to *x / y, panicking like [Fp32.Quo].
func (x *Fp32) QuoAssign(y Fp32) {
	*x = x.Quo(y)
}

// CheckedAdd calculates x + y and checks overflow.
func (x Fp32) CheckedAdd(y Fp32) (z Fp32, ok bool) {
	r, ok := x.raw.addChecked(y.raw)
	return Fp32{raw: r}, ok
}

// CheckedSub calculates x - y and checks underflow.
func (x Fp32) CheckedSub(y Fp32) (z Fp32, ok bool) {
	r, ok := x.raw.subChecked(y.raw)
	return Fp32{raw: r}, ok
}

// CheckedMul calculates x * y and checks overflow.
func (x Fp32) CheckedMul(y Fp32) (z Fp32, ok bool) {
	r, ok := x.raw.mulChecked(y.raw)
	if !ok {
		return Fp32{}, false
	}
	return Fp32{raw: r.shr(fp32Frac)}, true
}

// CheckedQuo calculates x / y and checks division by zero and overflow
// of the pre-scaled dividend.
func (x Fp32) CheckedQuo(y Fp32) (z Fp32, ok bool) {
	if y.IsZero() {
		return Fp32{}, false
	}
	n, ok := x.raw.shlChecked(fp32Frac)
	if !ok {
		return Fp32{}, false
	}
	q, _ := n.quoRem(y.raw)
	return Fp32{raw: q}, true
}

// IsZero returns true if x == 0.
func (x Fp32) IsZero() bool {
	return x.raw.isZero()
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Fp32) Cmp(y Fp32) int {
	return x.raw.cmp(y.raw)
}

// String implements the [fmt.Stringer] interface.
// The fraction is rendered to at most 9 decimal digits, rounding half
// up, with trailing zeros removed.
func (x Fp32) String() string {
	ip := x.raw.shr(fp32Frac)
	// Scale the 32-bit fraction to 9 decimal digits, rounding half up.
	frac := (uint64(uint32(x.raw.lo))*1_000_000_000 + 1<<(fp32Frac-1)) >> fp32Frac
	if frac == 1_000_000_000 {
		frac = 0
		ip = ip.add(uint128{lo: 1})
	}
	var digits [9]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte(frac%10) + '0'
		frac /= 10
	}
	n := len(digits)
	for n > 1 && digits[n-1] == '0' {
		n--
	}
	return ip.string() + "." + string(digits[:n])
}
