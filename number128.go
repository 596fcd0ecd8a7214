package fixedpoint

import (
	"encoding/binary"
	"fmt"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number128 is a signed decimal with 10 decimal fractional digits,
// backed by a 128-bit integer.
// Unlike [Number] it can carry deficits, so it suits balances and
// deltas that may legitimately go negative.
//
// Number128 is immutable and safe for concurrent use by multiple
// goroutines.
type Number128 struct {
	raw Int128
}

// The wire layout is exactly two 64-bit limbs.
const (
	_ = 16 - unsafe.Sizeof(Number128{})
	_ = unsafe.Sizeof(Number128{}) - 16
)

const (
	// number128Digits is the number of decimal fractional digits.
	number128Digits = 10

	// number128One is the scaled representation of 1.
	number128One = 10_000_000_000
)

var (
	Number128Zero = Number128{}
	Number128One  = Number128{raw: Int128{lo: number128One}}
	Number128Max  = Number128{raw: maxInt128}
	Number128Min  = Number128{raw: minInt128}
)

var pow10s = [...]int64{
	1,                 // 10^0
	10,                // 10^1
	100,               // 10^2
	1_000,             // 10^3
	10_000,            // 10^4
	100_000,           // 10^5
	1_000_000,         // 10^6
	10_000_000,        // 10^7
	100_000_000,       // 10^8
	1_000_000_000,     // 10^9
	10_000_000_000,    // 10^10
	100_000_000_000,   // 10^11
	1_000_000_000_000, // 10^12
}

// tenPowSigned returns 10^e for e in [0, 12].
//
// tenPowSigned panics if e is out of range, as such an exponent cannot
// come from a valid decimal conversion.
func tenPowSigned(e int) Int128 {
	if e < 0 || e >= len(pow10s) {
		panic(fmt.Sprintf("tenPowSigned(%v) failed: %v", e, errExponentRange))
	}
	return Int128From64(pow10s[e])
}

// Number128FromDecimal converts a decimal coefficient and exponent to
// a (possibly wider) Number128.
// Number128FromDecimal(15, -1) is 1.5, Number128FromDecimal(-3, 2) is
// -300.
//
// Number128FromDecimal panics if exponent is outside [-22, 2] or if
// the scaled value does not fit the 128-bit backing.
func Number128FromDecimal[T constraints.Signed](v T, exponent int) Number128 {
	return Number128FromDecimal128(Int128From64(int64(v)), exponent)
}

// Number128FromDecimal128 converts a wide decimal coefficient and
// exponent to a Number128.
//
// Number128FromDecimal128 panics if exponent is outside [-22, 2] or if
// the scaled value does not fit the 128-bit backing.
func Number128FromDecimal128(v Int128, exponent int) Number128 {
	extra := number128Digits + exponent
	prec := tenPowSigned(absExp(extra))
	if extra < 0 {
		q, _, _ := v.quoRem(prec)
		return Number128{raw: q}
	}
	z, ok := v.CheckedMul(prec)
	if !ok {
		panic(fmt.Sprintf("Number128FromDecimal128(%v, %v) failed: %v", v, exponent, ErrOverflow))
	}
	return Number128{raw: z}
}

// Number128FromBps converts basis points to a Number128.
func Number128FromBps(bps uint16) Number128 {
	return Number128FromDecimal(int64(bps), BpsExponent)
}

// Number128FromRaw wraps an already scaled 128-bit value.
func Number128FromRaw(v Int128) Number128 {
	return Number128{raw: v}
}

// Number128FromBits reconstructs a Number128 from the native byte form
// produced by [Number128.Bits].
func Number128FromBits(b [16]byte) Number128 {
	return Number128{raw: Int128{
		lo: binary.NativeEndian.Uint64(b[0:8]),
		hi: int64(binary.NativeEndian.Uint64(b[8:16])),
	}}
}

// Bits returns x in native byte order, low limb first.
func (x Number128) Bits() [16]byte {
	var b [16]byte
	binary.NativeEndian.PutUint64(b[0:8], x.raw.lo)
	binary.NativeEndian.PutUint64(b[8:16], uint64(x.raw.hi))
	return b
}

// Raw returns the scaled 128-bit backing value.
func (x Number128) Raw() Int128 {
	return x.raw
}

// AsUint64 converts x to integer units of 10^exponent, truncating
// towards zero.
//
// AsUint64 panics if the result does not fit in a uint64 or if x is
// negative.
func (x Number128) AsUint64(exponent int) uint64 {
	extra := number128Digits + exponent
	prec := tenPowSigned(absExp(extra))
	var t Int128
	if extra < 0 {
		var ok bool
		t, ok = x.raw.CheckedMul(prec)
		if !ok {
			panic(fmt.Sprintf("%q.AsUint64(%v) failed: %v", x, exponent, ErrOverflow))
		}
	} else {
		t, _, _ = x.raw.quoRem(prec)
	}
	switch {
	case t.hi > 0:
		panic(fmt.Sprintf("%q.AsUint64(%v) failed: %v", x, exponent, ErrOverflow))
	case t.hi < 0:
		panic(fmt.Sprintf("%q.AsUint64(%v) failed: %v", x, exponent, ErrNegative))
	}
	return t.lo
}

// AsFloat64 converts x to the nearest float64.
// The conversion is exact for up to 15 significant decimal digits and
// loses precision towards the range extremes.
func (x Number128) AsFloat64() float64 {
	mag := x.raw.abs()
	f := float64(mag.hi)*0x1p64 + float64(mag.lo)
	if x.raw.Sign() < 0 {
		f = -f
	}
	return f / 1e10
}

// Add calculates x + y.
//
// Add panics if the sum does not fit the 128-bit backing.
func (x Number128) Add(y Number128) Number128 {
	z, ok := x.CheckedAdd(y)
	if !ok {
		panic(fmt.Sprintf("%q.Add(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Sub calculates x - y.
//
// Sub panics if the difference does not fit the 128-bit backing.
func (x Number128) Sub(y Number128) Number128 {
	z, ok := x.CheckedSub(y)
	if !ok {
		panic(fmt.Sprintf("%q.Sub(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Mul calculates x * y.
//
// Mul panics if the scaled product does not fit the 128-bit backing.
func (x Number128) Mul(y Number128) Number128 {
	z, ok := x.CheckedMul(y)
	if !ok {
		panic(fmt.Sprintf("%q.Mul(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Quo calculates x / y, truncating towards zero on the scale grid.
//
// Quo panics if y is zero or if the pre-scaled dividend does not fit
// the 128-bit backing.
func (x Number128) Quo(y Number128) Number128 {
	if y.IsZero() {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", x, y, ErrDivisionByZero))
	}
	z, ok := x.CheckedQuo(y)
	if !ok {
		panic(fmt.Sprintf("%q.Quo(%q) failed: %v", x, y, ErrOverflow))
	}
	return z
}

// Neg calculates -x.
//
// Neg panics at [Number128Min], whose negation is not representable.
func (x Number128) Neg() Number128 {
	z, ok := x.raw.Neg()
	if !ok {
		panic(fmt.Sprintf("%q.Neg() failed: %v", x, ErrOverflow))
	}
	return Number128{raw: z}
}

// Mul64 calculates x * y for a plain integer y.
//
// Mul64 panics if the product does not fit the 128-bit backing.
func (x Number128) Mul64(y int64) Number128 {
	z, ok := x.raw.CheckedMul(Int128From64(y))
	if !ok {
		panic(fmt.Sprintf("%q.Mul64(%v) failed: %v", x, y, ErrOverflow))
	}
	return Number128{raw: z}
}

// Quo64 calculates x / y for a plain integer y, truncating towards
// zero.
//
// Quo64 panics if y is zero or at [Number128Min] divided by -1.
func (x Number128) Quo64(y int64) Number128 {
	if y == 0 {
		panic(fmt.Sprintf("%q.Quo64(%v) failed: %v", x, y, ErrDivisionByZero))
	}
	z, ok := x.raw.CheckedQuo(Int128From64(y))
	if !ok {
		panic(fmt.Sprintf("%q.Quo64(%v) failed: %v", x, y, ErrOverflow))
	}
	return Number128{raw: z}
}

// AddAssign sets *x to *x + y, panicking like [Number128.Add].
func (x *Number128) AddAssign(y Number128) {
	*x = x.Add(y)
}

// SubAssign sets *x to *x - y, panicking like [Number128.Sub].
func (x *Number128) SubAssign(y Number128) {
	*x = x.Sub(y)
}

// MulAssign sets *x to *x * y, panicking like [Number128.Mul].
func (x *Number128) MulAssign(y Number128) {
	*x = x.Mul(y)
}

// QuoAssign sets *x to *x / y, panicking like [Number128.Quo].
func (x *Number128) QuoAssign(y Number128) {
	*x = x.Quo(y)
}

// CheckedAdd calculates x + y and checks overflow.
func (x Number128) CheckedAdd(y Number128) (z Number128, ok bool) {
	r, ok := x.raw.CheckedAdd(y.raw)
	return Number128{raw: r}, ok
}

// CheckedSub calculates x - y and checks overflow.
func (x Number128) CheckedSub(y Number128) (z Number128, ok bool) {
	r, ok := x.raw.CheckedSub(y.raw)
	return Number128{raw: r}, ok
}

// CheckedMul calculates x * y and checks overflow of the scaled
// product.
func (x Number128) CheckedMul(y Number128) (z Number128, ok bool) {
	p, ok := x.raw.CheckedMul(y.raw)
	if !ok {
		return Number128{}, false
	}
	q, _, ok := p.quoRem(Int128From64(number128One))
	return Number128{raw: q}, ok
}

// CheckedQuo calculates x / y and checks division by zero and overflow
// of the pre-scaled dividend.
func (x Number128) CheckedQuo(y Number128) (z Number128, ok bool) {
	if y.IsZero() {
		return Number128{}, false
	}
	n, ok := x.raw.CheckedMul(Int128From64(number128One))
	if !ok {
		return Number128{}, false
	}
	q, _, ok := n.quoRem(y.raw)
	return Number128{raw: q}, ok
}

// IsZero returns true if x == 0.
func (x Number128) IsZero() bool {
	return x.raw.IsZero()
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Number128) Sign() int {
	return x.raw.Sign()
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Number128) Cmp(y Number128) int {
	return x.raw.Cmp(y.raw)
}

// String implements the [fmt.Stringer] interface.
// The fraction is exact, zero padded to 10 digits with trailing zeros
// removed.
func (x Number128) String() string {
	mag := x.raw.abs()
	ip, rem := mag.quoRem64(number128One)
	var digits [number128Digits]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte(rem%10) + '0'
		rem /= 10
	}
	n := len(digits)
	for n > 1 && digits[n-1] == '0' {
		n--
	}
	s := ip.string() + "." + string(digits[:n])
	if x.raw.Sign() < 0 {
		return "-" + s
	}
	return s
}
