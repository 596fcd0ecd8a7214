package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := SafeAdd(NumberOne, NumberOne)
		require.NoError(t, err)
		assert.Equal(t, NumberFrom(uint64(2)), got)

		got128, err := SafeAdd(Number128One, Number128One.Neg())
		require.NoError(t, err)
		assert.Equal(t, Number128Zero, got128)
	})
	t.Run("error", func(t *testing.T) {
		_, err := SafeAdd(NumberMax, NumberOne)
		require.ErrorIs(t, err, ErrOverflow)

		_, err = SafeAdd(Number128Max, Number128One)
		require.ErrorIs(t, err, ErrOverflow)

		_, err = SafeAdd(maxUint192, Uint192From64(1))
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestSafeSub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := SafeSub(NumberFrom(uint64(5)), NumberFrom(uint64(3)))
		require.NoError(t, err)
		assert.Equal(t, NumberFrom(uint64(2)), got)
	})
	t.Run("error", func(t *testing.T) {
		_, err := SafeSub(NumberZero, NumberOne)
		require.ErrorIs(t, err, ErrUnderflow)
	})
}

func TestSafeMul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := SafeMul(NumberFromDecimal(uint64(15), -1), NumberFrom(uint64(2)))
		require.NoError(t, err)
		assert.Equal(t, NumberFrom(uint64(3)), got)

		gotFp, err := SafeMul(Fp32From(uint64(6)), Fp32From(uint64(7)))
		require.NoError(t, err)
		assert.Equal(t, Fp32From(uint64(42)), gotFp)
	})
	t.Run("error", func(t *testing.T) {
		_, err := SafeMul(NumberMax, NumberMax)
		require.ErrorIs(t, err, ErrOverflow)

		_, err = SafeMul(minInt128, Int128From64(-1))
		require.ErrorIs(t, err, ErrOverflow)
	})
}

func TestSafeQuo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, err := SafeQuo(NumberFrom(uint64(42)), NumberFrom(uint64(6)))
		require.NoError(t, err)
		assert.Equal(t, NumberFrom(uint64(7)), got)
	})
	t.Run("error", func(t *testing.T) {
		_, err := SafeQuo(NumberOne, NumberZero)
		require.ErrorIs(t, err, ErrDivisionByZero)

		_, err = SafeQuo(Number128One, Number128Zero)
		require.ErrorIs(t, err, ErrDivisionByZero)

		_, err = SafeQuo(Fp32One, Fp32Zero)
		require.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestTryAssign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		x := NumberFrom(uint64(101))
		require.NoError(t, TryAddAssign(&x, NumberFrom(uint64(2))))
		assert.Equal(t, NumberFrom(uint64(103)), x)

		require.NoError(t, TrySubAssign(&x, NumberFrom(uint64(3))))
		assert.Equal(t, NumberFrom(uint64(100)), x)

		require.NoError(t, TryMulAssign(&x, NumberFrom(uint64(2))))
		assert.Equal(t, NumberFrom(uint64(200)), x)

		require.NoError(t, TryQuoAssign(&x, NumberFrom(uint64(8))))
		assert.Equal(t, NumberFrom(uint64(25)), x)
	})
	t.Run("error", func(t *testing.T) {
		x := NumberMax
		require.ErrorIs(t, TryAddAssign(&x, NumberOne), ErrOverflow)
		assert.Equal(t, NumberMax, x, "failed TryAddAssign must not mutate")

		y := Number128Min
		require.ErrorIs(t, TrySubAssign(&y, Number128One), ErrUnderflow)
		assert.Equal(t, Number128Min, y, "failed TrySubAssign must not mutate")

		z := NumberOne
		require.ErrorIs(t, TryQuoAssign(&z, NumberZero), ErrDivisionByZero)
		assert.Equal(t, NumberOne, z, "failed TryQuoAssign must not mutate")

		w := NumberMax
		require.ErrorIs(t, TryMulAssign(&w, NumberMax), ErrOverflow)
		assert.Equal(t, NumberMax, w, "failed TryMulAssign must not mutate")
	})
}

func TestCheckedAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, ok := CheckedAdd(uint64(2), uint64(3))
		require.True(t, ok)
		assert.Equal(t, uint64(5), got)
	})
	t.Run("error", func(t *testing.T) {
		_, ok := CheckedAdd(^uint64(0), uint64(1))
		assert.False(t, ok)

		_, ok = CheckedAdd(uint8(255), uint8(1))
		assert.False(t, ok)
	})
}

func TestCheckedSub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, ok := CheckedSub(uint64(5), uint64(3))
		require.True(t, ok)
		assert.Equal(t, uint64(2), got)
	})
	t.Run("error", func(t *testing.T) {
		_, ok := CheckedSub(uint64(3), uint64(5))
		assert.False(t, ok)
	})
}

func TestCheckedMul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, ok := CheckedMul(uint64(6), uint64(7))
		require.True(t, ok)
		assert.Equal(t, uint64(42), got)

		got, ok = CheckedMul(^uint64(0), uint64(0))
		require.True(t, ok)
		assert.Equal(t, uint64(0), got)
	})
	t.Run("error", func(t *testing.T) {
		_, ok := CheckedMul(^uint64(0), uint64(2))
		assert.False(t, ok)
	})
}

func TestCheckedQuo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		got, ok := CheckedQuo(uint64(42), uint64(6))
		require.True(t, ok)
		assert.Equal(t, uint64(7), got)
	})
	t.Run("error", func(t *testing.T) {
		_, ok := CheckedQuo(uint64(1), uint64(0))
		assert.False(t, ok)
	})
}

func TestArithmetic_Implementations(t *testing.T) {
	// Compile-time checks that the whole family plugs into the generic
	// helpers.
	var _ Arithmetic[Fp32] = Fp32{}
	var _ Arithmetic[Number] = Number{}
	var _ Arithmetic[Number128] = Number128{}
	var _ Arithmetic[Uint192] = Uint192{}
	var _ Arithmetic[Int128] = Int128{}
}
