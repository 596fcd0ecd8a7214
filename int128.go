package fixedpoint

import "math/bits"

// Int128 is a signed 128-bit integer in two's complement form,
// composed of a low unsigned limb and a high signed limb.
// It backs [Number128] and is exposed so that callers can construct
// and inspect raw scaled values.
type Int128 struct {
	lo uint64
	hi int64
}

var (
	minInt128 = Int128{lo: 0, hi: -1 << 63}
	maxInt128 = Int128{lo: ^uint64(0), hi: 1<<63 - 1}
)

// Int128From64 returns an Int128 equal to v.
func Int128From64(v int64) Int128 {
	return Int128{lo: uint64(v), hi: v >> 63}
}

// Int128FromRaw assembles an Int128 from its high and low limbs.
func Int128FromRaw(hi int64, lo uint64) Int128 {
	return Int128{lo: lo, hi: hi}
}

// Int64 narrows x to an int64.
// The second return value is false if x does not fit.
func (x Int128) Int64() (int64, bool) {
	v := int64(x.lo)
	if x.hi != v>>63 {
		return 0, false
	}
	return v, true
}

// IsZero returns true if x == 0.
func (x Int128) IsZero() bool {
	return x.lo == 0 && x.hi == 0
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int128) Sign() int {
	switch {
	case x.hi < 0:
		return -1
	case x.IsZero():
		return 0
	}
	return 1
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// Neg calculates -x and checks overflow.
// The only value without a representable negation is the minimum.
func (x Int128) Neg() (z Int128, ok bool) {
	if x == minInt128 {
		return Int128{}, false
	}
	lo, borrow := bits.Sub64(0, x.lo, 0)
	hi := -x.hi - int64(borrow)
	return Int128{lo: lo, hi: hi}, true
}

// abs returns |x| as an unsigned value.
// The magnitude of the minimum is representable this way.
func (x Int128) abs() uint128 {
	if x.hi >= 0 {
		return uint128{lo: x.lo, hi: uint64(x.hi)}
	}
	lo, borrow := bits.Sub64(0, x.lo, 0)
	hi := uint64(-x.hi) - borrow
	return uint128{lo: lo, hi: hi}
}

// int128FromSignMag converts a sign and magnitude pair to two's
// complement form and checks that the value is representable.
func int128FromSignMag(neg bool, mag uint128) (z Int128, ok bool) {
	if neg {
		if mag.cmp(minInt128.abs()) > 0 {
			return Int128{}, false
		}
		lo, borrow := bits.Sub64(0, mag.lo, 0)
		hi := -int64(mag.hi) - int64(borrow)
		return Int128{lo: lo, hi: hi}, true
	}
	if mag.hi > uint64(maxInt128.hi) {
		return Int128{}, false
	}
	return Int128{lo: mag.lo, hi: int64(mag.hi)}, true
}

// CheckedAdd calculates x + y and checks overflow.
func (x Int128) CheckedAdd(y Int128) (z Int128, ok bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi := x.hi + y.hi + int64(carry)
	z = Int128{lo: lo, hi: hi}
	// Overflow flips the sign of a same-signed sum.
	if (x.hi < 0) == (y.hi < 0) && (z.hi < 0) != (x.hi < 0) {
		return Int128{}, false
	}
	return z, true
}

// CheckedSub calculates x - y and checks overflow.
func (x Int128) CheckedSub(y Int128) (z Int128, ok bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi := x.hi - y.hi - int64(borrow)
	z = Int128{lo: lo, hi: hi}
	if (x.hi < 0) != (y.hi < 0) && (z.hi < 0) != (x.hi < 0) {
		return Int128{}, false
	}
	return z, true
}

// CheckedMul calculates x * y and checks overflow.
func (x Int128) CheckedMul(y Int128) (z Int128, ok bool) {
	mag, ok := x.abs().mulChecked(y.abs())
	if !ok {
		return Int128{}, false
	}
	return int128FromSignMag(x.Sign()*y.Sign() < 0, mag)
}

// CheckedQuo calculates x / y truncated towards zero and checks
// division by zero and overflow.
func (x Int128) CheckedQuo(y Int128) (z Int128, ok bool) {
	if y.IsZero() {
		return Int128{}, false
	}
	mag, _ := x.abs().quoRem(y.abs())
	return int128FromSignMag(x.Sign()*y.Sign() < 0, mag)
}

// quoRem calculates q = x / y truncated towards zero and r = x - y * q.
// The divisor must not be zero.
func (x Int128) quoRem(y Int128) (q, r Int128, ok bool) {
	qm, rm := x.abs().quoRem(y.abs())
	q, ok = int128FromSignMag(x.Sign()*y.Sign() < 0, qm)
	if !ok {
		return Int128{}, Int128{}, false
	}
	r, ok = int128FromSignMag(x.Sign() < 0, rm)
	return q, r, ok
}

// String returns the decimal representation of x.
func (x Int128) String() string {
	if x.Sign() < 0 {
		return "-" + x.abs().string()
	}
	return x.abs().string()
}
