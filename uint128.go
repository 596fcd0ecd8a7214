package fixedpoint

import "math/bits"

// uint128 is an unsigned 128-bit integer split into two 64-bit limbs.
type uint128 struct {
	lo, hi uint64
}

var maxUint128 = uint128{lo: ^uint64(0), hi: ^uint64(0)}

func (x uint128) isZero() bool {
	return x.lo|x.hi == 0
}

func (x uint128) cmp(y uint128) int {
	switch {
	case x.hi != y.hi:
		if x.hi < y.hi {
			return -1
		}
		return 1
	case x.lo != y.lo:
		if x.lo < y.lo {
			return -1
		}
		return 1
	}
	return 0
}

// add calculates x + y, wrapping around on overflow.
func (x uint128) add(y uint128) uint128 {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, _ := bits.Add64(x.hi, y.hi, carry)
	return uint128{lo: lo, hi: hi}
}

// addChecked calculates x + y and checks overflow.
func (x uint128) addChecked(y uint128) (z uint128, ok bool) {
	lo, carry := bits.Add64(x.lo, y.lo, 0)
	hi, carry := bits.Add64(x.hi, y.hi, carry)
	return uint128{lo: lo, hi: hi}, carry == 0
}

// sub calculates x - y, wrapping around on underflow.
func (x uint128) sub(y uint128) uint128 {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, _ := bits.Sub64(x.hi, y.hi, borrow)
	return uint128{lo: lo, hi: hi}
}

// subChecked calculates x - y and checks underflow.
func (x uint128) subChecked(y uint128) (z uint128, ok bool) {
	lo, borrow := bits.Sub64(x.lo, y.lo, 0)
	hi, borrow := bits.Sub64(x.hi, y.hi, borrow)
	return uint128{lo: lo, hi: hi}, borrow == 0
}

// mul calculates x * y modulo 2^128.
func (x uint128) mul(y uint128) uint128 {
	hi, lo := bits.Mul64(x.lo, y.lo)
	hi += x.hi*y.lo + x.lo*y.hi
	return uint128{lo: lo, hi: hi}
}

// mulChecked calculates x * y and checks overflow.
func (x uint128) mulChecked(y uint128) (z uint128, ok bool) {
	if x.hi != 0 && y.hi != 0 {
		return uint128{}, false
	}
	c1, m1 := bits.Mul64(x.hi, y.lo)
	c2, m2 := bits.Mul64(x.lo, y.hi)
	if c1 != 0 || c2 != 0 {
		return uint128{}, false
	}
	hi, lo := bits.Mul64(x.lo, y.lo)
	var carry uint64
	hi, carry = bits.Add64(hi, m1, 0)
	if carry != 0 {
		return uint128{}, false
	}
	hi, carry = bits.Add64(hi, m2, 0)
	if carry != 0 {
		return uint128{}, false
	}
	return uint128{lo: lo, hi: hi}, true
}

// mul64 calculates x * y modulo 2^128.
func (x uint128) mul64(y uint64) uint128 {
	hi, lo := bits.Mul64(x.lo, y)
	hi += x.hi * y
	return uint128{lo: lo, hi: hi}
}

// shl calculates x * 2^n modulo 2^128.
func (x uint128) shl(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{hi: x.lo << (n - 64)}
	default:
		return uint128{lo: x.lo << n, hi: x.hi<<n | x.lo>>(64-n)}
	}
}

// shlChecked calculates x * 2^n and checks overflow.
func (x uint128) shlChecked(n uint) (z uint128, ok bool) {
	if !x.shr(128 - n).isZero() {
		return uint128{}, false
	}
	return x.shl(n), true
}

// shr calculates ⌊x / 2^n⌋.
func (x uint128) shr(n uint) uint128 {
	switch {
	case n >= 128:
		return uint128{}
	case n >= 64:
		return uint128{lo: x.hi >> (n - 64)}
	default:
		return uint128{lo: x.lo>>n | x.hi<<(64-n), hi: x.hi >> n}
	}
}

// quoRem64 calculates q = ⌊x / y⌋, r = x - y * q.
// The divisor must not be zero.
func (x uint128) quoRem64(y uint64) (q uint128, r uint64) {
	if x.hi < y {
		q.lo, r = bits.Div64(x.hi, x.lo, y)
		return q, r
	}
	q.hi, r = bits.Div64(0, x.hi, y)
	q.lo, r = bits.Div64(r, x.lo, y)
	return q, r
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// The divisor must not be zero.
func (x uint128) quoRem(y uint128) (q, r uint128) {
	if y.hi == 0 {
		var r64 uint64
		q, r64 = x.quoRem64(y.lo)
		return q, uint128{lo: r64}
	}
	// One estimation step against the normalized high limb, then at most
	// one correction.
	n := uint(bits.LeadingZeros64(y.hi))
	v := y.shl(n)
	u := x.shr(1)
	tq, _ := bits.Div64(u.hi, u.lo, v.hi)
	tq >>= 63 - n
	if tq != 0 {
		tq--
	}
	q = uint128{lo: tq}
	r = x.sub(y.mul64(tq))
	if r.cmp(y) >= 0 {
		q = q.add(uint128{lo: 1})
		r = r.sub(y)
	}
	return q, r
}

// string returns the decimal representation of x.
func (x uint128) string() string {
	if x.isZero() {
		return "0"
	}
	var buf [39]byte
	pos := len(buf)
	for !x.isZero() {
		var r uint64
		x, r = x.quoRem64(10)
		pos--
		buf[pos] = byte(r) + '0'
	}
	return string(buf[pos:])
}
