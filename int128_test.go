package fixedpoint

import "testing"

func TestInt128From64(t *testing.T) {
	tests := []struct {
		v    int64
		want Int128
	}{
		{0, Int128{}},
		{1, Int128FromRaw(0, 1)},
		{-1, Int128FromRaw(-1, ^uint64(0))},
		{-9223372036854775808, Int128FromRaw(-1, 1<<63)},
		{9223372036854775807, Int128FromRaw(0, 1<<63-1)},
	}
	for _, tt := range tests {
		got := Int128From64(tt.v)
		if got != tt.want {
			t.Errorf("Int128From64(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestInt128_Int64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []int64{0, 1, -1, 9223372036854775807, -9223372036854775808}
		for _, v := range tests {
			got, ok := Int128From64(v).Int64()
			if !ok {
				t.Errorf("Int128From64(%v).Int64() failed", v)
				continue
			}
			if got != v {
				t.Errorf("Int128From64(%v).Int64() = %v, want %v", v, got, v)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := []Int128{
			Int128FromRaw(1, 0),
			Int128FromRaw(0, 1<<63),
			Int128FromRaw(-2, ^uint64(0)),
			minInt128,
			maxInt128,
		}
		for _, x := range tests {
			if _, ok := x.Int64(); ok {
				t.Errorf("%v.Int64() did not fail", x)
			}
		}
	})
}

func TestInt128_Sign(t *testing.T) {
	tests := []struct {
		x    Int128
		want int
	}{
		{Int128{}, 0},
		{Int128From64(1), 1},
		{Int128From64(-1), -1},
		{minInt128, -1},
		{maxInt128, 1},
	}
	for _, tt := range tests {
		if got := tt.x.Sign(); got != tt.want {
			t.Errorf("%v.Sign() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestInt128_Cmp(t *testing.T) {
	tests := []struct {
		x, y Int128
		want int
	}{
		{Int128{}, Int128{}, 0},
		{Int128From64(1), Int128From64(2), -1},
		{Int128From64(-1), Int128From64(1), -1},
		{Int128From64(-1), Int128From64(-2), 1},
		{minInt128, maxInt128, -1},
		{maxInt128, minInt128, 1},
	}
	for _, tt := range tests {
		if got := tt.x.Cmp(tt.y); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInt128_Neg(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, want Int128
		}{
			{Int128{}, Int128{}},
			{Int128From64(1), Int128From64(-1)},
			{Int128From64(-42), Int128From64(42)},
			{maxInt128, Int128FromRaw(-1<<63, 1)},
		}
		for _, tt := range tests {
			got, ok := tt.x.Neg()
			if !ok {
				t.Errorf("%v.Neg() failed", tt.x)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Neg() = %v, want %v", tt.x, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		if _, ok := minInt128.Neg(); ok {
			t.Errorf("minInt128.Neg() did not fail")
		}
	})
}

func TestInt128_CheckedAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want Int128
		}{
			{Int128From64(2), Int128From64(3), Int128From64(5)},
			{Int128From64(-2), Int128From64(3), Int128From64(1)},
			{Int128From64(2), Int128From64(-3), Int128From64(-1)},
			{Int128FromRaw(0, ^uint64(0)), Int128From64(1), Int128FromRaw(1, 0)},
			{minInt128, maxInt128, Int128From64(-1)},
		}
		for _, tt := range tests {
			got, ok := tt.x.CheckedAdd(tt.y)
			if !ok {
				t.Errorf("%v.CheckedAdd(%v) failed", tt.x, tt.y)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.CheckedAdd(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x, y Int128
		}{
			{maxInt128, Int128From64(1)},
			{minInt128, Int128From64(-1)},
		}
		for _, tt := range tests {
			if _, ok := tt.x.CheckedAdd(tt.y); ok {
				t.Errorf("%v.CheckedAdd(%v) did not fail", tt.x, tt.y)
			}
		}
	})
}

func TestInt128_CheckedSub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want Int128
		}{
			{Int128From64(5), Int128From64(3), Int128From64(2)},
			{Int128From64(3), Int128From64(5), Int128From64(-2)},
			{Int128FromRaw(1, 0), Int128From64(1), Int128FromRaw(0, ^uint64(0))},
		}
		for _, tt := range tests {
			got, ok := tt.x.CheckedSub(tt.y)
			if !ok {
				t.Errorf("%v.CheckedSub(%v) failed", tt.x, tt.y)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.CheckedSub(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x, y Int128
		}{
			{minInt128, Int128From64(1)},
			{maxInt128, Int128From64(-1)},
		}
		for _, tt := range tests {
			if _, ok := tt.x.CheckedSub(tt.y); ok {
				t.Errorf("%v.CheckedSub(%v) did not fail", tt.x, tt.y)
			}
		}
	})
}

func TestInt128_CheckedMul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want Int128
		}{
			{Int128From64(6), Int128From64(7), Int128From64(42)},
			{Int128From64(-6), Int128From64(7), Int128From64(-42)},
			{Int128From64(-6), Int128From64(-7), Int128From64(42)},
			{Int128From64(1 << 62), Int128From64(4), Int128FromRaw(1, 0)},
			{minInt128, Int128From64(1), minInt128},
		}
		for _, tt := range tests {
			got, ok := tt.x.CheckedMul(tt.y)
			if !ok {
				t.Errorf("%v.CheckedMul(%v) failed", tt.x, tt.y)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.CheckedMul(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x, y Int128
		}{
			{maxInt128, Int128From64(2)},
			{minInt128, Int128From64(-1)},
			{minInt128, Int128From64(2)},
		}
		for _, tt := range tests {
			if _, ok := tt.x.CheckedMul(tt.y); ok {
				t.Errorf("%v.CheckedMul(%v) did not fail", tt.x, tt.y)
			}
		}
	})
}

func TestInt128_CheckedQuo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want Int128
		}{
			{Int128From64(42), Int128From64(6), Int128From64(7)},
			{Int128From64(-42), Int128From64(6), Int128From64(-7)},
			{Int128From64(42), Int128From64(-6), Int128From64(-7)},
			{Int128From64(-42), Int128From64(-6), Int128From64(7)},
			{Int128From64(-7), Int128From64(2), Int128From64(-3)},
			{Int128From64(7), Int128From64(-2), Int128From64(-3)},
			{minInt128, Int128From64(1), minInt128},
		}
		for _, tt := range tests {
			got, ok := tt.x.CheckedQuo(tt.y)
			if !ok {
				t.Errorf("%v.CheckedQuo(%v) failed", tt.x, tt.y)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.CheckedQuo(%v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		}
	})
	t.Run("error", func(t *testing.T) {
		tests := []struct {
			x, y Int128
		}{
			{Int128From64(1), Int128{}},
			{minInt128, Int128From64(-1)},
		}
		for _, tt := range tests {
			if _, ok := tt.x.CheckedQuo(tt.y); ok {
				t.Errorf("%v.CheckedQuo(%v) did not fail", tt.x, tt.y)
			}
		}
	})
}

func TestInt128_String(t *testing.T) {
	tests := []struct {
		x    Int128
		want string
	}{
		{Int128{}, "0"},
		{Int128From64(42), "42"},
		{Int128From64(-42), "-42"},
		{maxInt128, "170141183460469231731687303715884105727"},
		{minInt128, "-170141183460469231731687303715884105728"},
	}
	for _, tt := range tests {
		if got := tt.x.String(); got != tt.want {
			t.Errorf("Int128.String() = %q, want %q", got, tt.want)
		}
	}
}
