package fixedpoint

import "math/bits"

// Uint192 is an unsigned 192-bit integer composed of three 64-bit
// limbs, ordered from least to most significant.
// It backs [Number] and is exposed so that callers can hold and compare
// wide integer results of [Number.AsDecimal] without narrowing.
type Uint192 struct {
	l0, l1, l2 uint64
}

var maxUint192 = Uint192{l0: ^uint64(0), l1: ^uint64(0), l2: ^uint64(0)}

// Uint192From64 returns a Uint192 equal to v.
func Uint192From64(v uint64) Uint192 {
	return Uint192{l0: v}
}

// Uint192FromRaw assembles a Uint192 from raw limbs, least significant
// first.
func Uint192FromRaw(l0, l1, l2 uint64) Uint192 {
	return Uint192{l0: l0, l1: l1, l2: l2}
}

// Uint64 narrows x to a uint64.
// The second return value is false if x does not fit.
func (x Uint192) Uint64() (uint64, bool) {
	if x.l1|x.l2 != 0 {
		return 0, false
	}
	return x.l0, true
}

// IsZero returns true if x == 0.
func (x Uint192) IsZero() bool {
	return x.l0|x.l1|x.l2 == 0
}

// Cmp compares x and y and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Uint192) Cmp(y Uint192) int {
	xs := [3]uint64{x.l2, x.l1, x.l0}
	ys := [3]uint64{y.l2, y.l1, y.l0}
	for i := 0; i < 3; i++ {
		switch {
		case xs[i] < ys[i]:
			return -1
		case xs[i] > ys[i]:
			return 1
		}
	}
	return 0
}

// CheckedAdd calculates x + y and checks overflow.
func (x Uint192) CheckedAdd(y Uint192) (z Uint192, ok bool) {
	var carry uint64
	z.l0, carry = bits.Add64(x.l0, y.l0, 0)
	z.l1, carry = bits.Add64(x.l1, y.l1, carry)
	z.l2, carry = bits.Add64(x.l2, y.l2, carry)
	return z, carry == 0
}

// CheckedSub calculates x - y and checks underflow.
func (x Uint192) CheckedSub(y Uint192) (z Uint192, ok bool) {
	var borrow uint64
	z.l0, borrow = bits.Sub64(x.l0, y.l0, 0)
	z.l1, borrow = bits.Sub64(x.l1, y.l1, borrow)
	z.l2, borrow = bits.Sub64(x.l2, y.l2, borrow)
	return z, borrow == 0
}

// CheckedMul calculates x * y and checks overflow.
func (x Uint192) CheckedMul(y Uint192) (z Uint192, ok bool) {
	p := x.mulFull(y)
	if p[3]|p[4]|p[5] != 0 {
		return Uint192{}, false
	}
	return Uint192{l0: p[0], l1: p[1], l2: p[2]}, true
}

// CheckedQuo calculates ⌊x / y⌋ and checks division by zero.
func (x Uint192) CheckedQuo(y Uint192) (z Uint192, ok bool) {
	if y.IsZero() {
		return Uint192{}, false
	}
	z, _ = x.quoRem(y)
	return z, true
}

// add calculates x + y, wrapping around on overflow.
func (x Uint192) add(y Uint192) Uint192 {
	z, _ := x.CheckedAdd(y)
	return z
}

// sub calculates x - y, wrapping around on underflow.
func (x Uint192) sub(y Uint192) Uint192 {
	z, _ := x.CheckedSub(y)
	return z
}

// saturatingAdd calculates x + y, clamping to the maximum on overflow.
func (x Uint192) saturatingAdd(y Uint192) Uint192 {
	z, ok := x.CheckedAdd(y)
	if !ok {
		return maxUint192
	}
	return z
}

// saturatingSub calculates x - y, clamping to zero on underflow.
func (x Uint192) saturatingSub(y Uint192) Uint192 {
	z, ok := x.CheckedSub(y)
	if !ok {
		return Uint192{}
	}
	return z
}

// saturatingMul calculates x * y, clamping to the maximum on overflow.
func (x Uint192) saturatingMul(y Uint192) Uint192 {
	z, ok := x.CheckedMul(y)
	if !ok {
		return maxUint192
	}
	return z
}

// mulFull calculates the 384-bit product of x and y, least significant
// limb first.
func (x Uint192) mulFull(y Uint192) (p [6]uint64) {
	xs := [3]uint64{x.l0, x.l1, x.l2}
	ys := [3]uint64{y.l0, y.l1, y.l2}
	for i := 0; i < 3; i++ {
		var carry uint64
		for j := 0; j < 3; j++ {
			hi, lo := bits.Mul64(xs[i], ys[j])
			var c uint64
			lo, c = bits.Add64(lo, p[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			p[i+j] = lo
			carry = hi
		}
		p[i+3] = carry
	}
	return p
}

// mul64 calculates x * y modulo 2^192.
func (x Uint192) mul64(y uint64) (z Uint192) {
	var c1, c2 uint64
	c1, z.l0 = bits.Mul64(x.l0, y)
	c2, z.l1 = bits.Mul64(x.l1, y)
	var carry uint64
	z.l1, carry = bits.Add64(z.l1, c1, 0)
	z.l2 = x.l2*y + c2 + carry
	return z
}

// shl calculates x * 2^n modulo 2^192.
func (x Uint192) shl(n uint) Uint192 {
	switch {
	case n >= 192:
		return Uint192{}
	case n >= 128:
		return Uint192{l2: x.l0 << (n - 128)}
	case n >= 64:
		return Uint192{l1: x.l0 << (n - 64), l2: x.l1<<(n-64) | x.l0>>(128-n)}
	default:
		return Uint192{
			l0: x.l0 << n,
			l1: x.l1<<n | x.l0>>(64-n),
			l2: x.l2<<n | x.l1>>(64-n),
		}
	}
}

// shlChecked calculates x * 2^n and checks overflow.
func (x Uint192) shlChecked(n uint) (z Uint192, ok bool) {
	if !x.shr(192 - n).IsZero() {
		return Uint192{}, false
	}
	return x.shl(n), true
}

// shr calculates ⌊x / 2^n⌋.
func (x Uint192) shr(n uint) Uint192 {
	switch {
	case n >= 192:
		return Uint192{}
	case n >= 128:
		return Uint192{l0: x.l2 >> (n - 128)}
	case n >= 64:
		return Uint192{l0: x.l1>>(n-64) | x.l2<<(128-n), l1: x.l2 >> (n - 64)}
	default:
		return Uint192{
			l0: x.l0>>n | x.l1<<(64-n),
			l1: x.l1>>n | x.l2<<(64-n),
			l2: x.l2 >> n,
		}
	}
}

// bitLen returns the number of bits required to represent x.
func (x Uint192) bitLen() int {
	switch {
	case x.l2 != 0:
		return 128 + bits.Len64(x.l2)
	case x.l1 != 0:
		return 64 + bits.Len64(x.l1)
	}
	return bits.Len64(x.l0)
}

// quoRem64 calculates q = ⌊x / y⌋, r = x - y * q.
// The divisor must not be zero.
func (x Uint192) quoRem64(y uint64) (q Uint192, r uint64) {
	q.l2, r = bits.Div64(0, x.l2, y)
	q.l1, r = bits.Div64(r, x.l1, y)
	q.l0, r = bits.Div64(r, x.l0, y)
	return q, r
}

// quoRem calculates q = ⌊x / y⌋, r = x - y * q.
// The divisor must not be zero.
func (x Uint192) quoRem(y Uint192) (q, r Uint192) {
	// Special case: single-limb divisor
	if y.l1|y.l2 == 0 {
		var r64 uint64
		q, r64 = x.quoRem64(y.l0)
		return q, Uint192{l0: r64}
	}
	// General case: restoring division, one bit per step
	if x.Cmp(y) < 0 {
		return Uint192{}, x
	}
	shift := x.bitLen() - y.bitLen()
	d := y.shl(uint(shift))
	r = x
	for ; shift >= 0; shift-- {
		q = q.shl(1)
		if r.Cmp(d) >= 0 {
			r = r.sub(d)
			q.l0 |= 1
		}
		d = d.shr(1)
	}
	return q, r
}

// pow calculates x^e by binary exponentiation and checks overflow.
func (x Uint192) pow(e Uint192) (z Uint192, ok bool) {
	z = Uint192{l0: 1}
	base := x
	for !e.IsZero() {
		if e.l0&1 == 1 {
			z, ok = z.CheckedMul(base)
			if !ok {
				return Uint192{}, false
			}
		}
		e = e.shr(1)
		if e.IsZero() {
			break
		}
		base, ok = base.CheckedMul(base)
		if !ok {
			return Uint192{}, false
		}
	}
	return z, true
}

// String returns the decimal representation of x.
func (x Uint192) String() string {
	if x.IsZero() {
		return "0"
	}
	var buf [58]byte
	pos := len(buf)
	for !x.IsZero() {
		var r uint64
		x, r = x.quoRem64(10)
		pos--
		buf[pos] = byte(r) + '0'
	}
	return string(buf[pos:])
}
