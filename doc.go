/*
Package fixedpoint implements immutable fixed-point numbers for
transactional financial systems that settle integer token amounts but
accrue interest and fees at sub-token resolution.

# Representation

The package provides three value types, each a thin struct around an
unexported backing integer:

  - [Fp32]: an unsigned number with 32 binary fractional digits in a
    128-bit backing. Products of two 64-bit wire values always fit.
  - [Number]: an unsigned number with 50 binary fractional digits in a
    192-bit backing, converted to and from decimal coefficients with
    exponents in [-16, 16].
  - [Number128]: a signed number with 10 decimal fractional digits in a
    128-bit backing. The only type of the three that can go negative.

The numerical value is always Backing / Scale, where the scale is a
fixed per-type constant (2^32, 2^50, and 10^10 respectively). There is
exactly one representation per value, so == compares values.

The backing integers [Uint192] and [Int128] are exported for callers
that move raw scaled values across program boundaries.

# Operations

Arithmetic is spelled out as methods, never operators: Add, Sub, Mul,
Quo, with scalar variants Mul64 and Quo64 and in-place variants
AddAssign through QuoAssign. Multiplication descales the full-width
product; division pre-scales the dividend before the integer divide, so
the quotient keeps the type's full fractional resolution and truncates
towards zero on the scale grid.

Conversions back to integers come in truncating (AsUint64), ceiling
(AsUint64Ceil), and half-up (AsUint64Rounded) flavors. Basis points
enter through [NumberFromBps] and [Number128FromBps].

# Errors

Failures split into two kinds:

  - Recoverable narrowings return (value, ok). A false result means the
    value does not fit the requested width and the caller chooses what
    to do.
  - Invariant violations panic: overflow of a backing integer, division
    by zero, and decimal exponents outside a type's table. These
    indicate a programming error in the caller, not bad data.

The generic [SafeAdd], [SafeSub], [SafeMul], [SafeQuo] and
[TryAddAssign] through [TryQuoAssign] functions convert the checked
forms into errors wrapping [ErrOverflow], [ErrUnderflow], and
[ErrDivisionByZero] for callers that prefer explicit control flow.
They accept any type implementing [Arithmetic].

# Serialization

Every type has an explicit fixed-width byte form in native byte order,
[Fp32.Bits], [Number.Bits], [Number128.Bits], with matching
reconstruction functions. String renders the canonical minimal decimal
form: the integer part, a point, and the shortest fraction that reads
back to the same value.
*/
package fixedpoint
