package fixedpoint

import "testing"

func TestScalarBasicOps(t *testing.T) {
	a := FromFloat64(2.5)
	b := FromFloat64(1.5)

	if got, want := a.Add(b), FromFloat64(4.0); got != want {
		t.Errorf("Add: got %v, want %v", got, want)
	}
	if got, want := a.Sub(b), FromFloat64(1.0); got != want {
		t.Errorf("Sub: got %v, want %v", got, want)
	}
	if got, want := a.Mul(b), FromFloat64(3.75); got != want {
		t.Errorf("Mul: got %v, want %v", got, want)
	}
}

func TestScalarDivRoundTrip(t *testing.T) {
	for _, a := range []Scalar{FromFloat64(1), FromFloat64(7), FromFloat64(0.25), FromFloat64(-3.5)} {
		for _, b := range []Scalar{FromFloat64(1), FromFloat64(2), FromFloat64(5), FromFloat64(-4)} {
			got := a.Mul(b).Div(b)
			if got != a {
				t.Errorf("(%v*%v)/%v = %v, want %v", a, b, b, got, a)
			}
		}
	}
}

func TestScalarDeterminism(t *testing.T) {
	a := FromFloat64(1.234)
	b := FromFloat64(5.678)

	r1 := a.Mul(b).Add(a).Div(b)
	r2 := a.Mul(b).Add(a).Div(b)
	if r1.Bits() != r2.Bits() {
		t.Fatalf("repeated evaluation diverged: %d != %d", r1.Bits(), r2.Bits())
	}
}

func TestScalarAdditionAssociative(t *testing.T) {
	values := []Scalar{FromFloat64(1), FromFloat64(-2), FromFloat64(3.5), FromFloat64(-0.25)}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				left := a.Add(b).Add(c)
				right := a.Add(b.Add(c))
				if left != right {
					t.Errorf("(%v+%v)+%v = %v, %v+(%v+%v) = %v", a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestScalarSqrt(t *testing.T) {
	for x := int32(0); x < 256; x++ {
		s := FromFloat64(float64(x))
		root := s.Mul(s).Sqrt()
		diff := root.Sub(s).Abs()
		if diff > Scalar(1) {
			t.Errorf("sqrt(%d^2) = %v, want within 1 encoding unit of %v", x, root, s)
		}
	}
}

func TestScalarSqrtNonPositive(t *testing.T) {
	if got := Zero.Sqrt(); got != Zero {
		t.Errorf("sqrt(0) = %v, want 0", got)
	}
	if got := FromFloat64(-4).Sqrt(); got != Zero {
		t.Errorf("sqrt(-4) = %v, want 0", got)
	}
}

func TestScalarAbsMin(t *testing.T) {
	min := Scalar(-2147483648)
	if got := min.Abs(); got != min {
		t.Errorf("Abs(MinInt32) = %v, want %v (documented wrap)", got, min)
	}
}

func TestScalarTruncToInt(t *testing.T) {
	cases := []struct {
		in   Scalar
		want int32
	}{
		{FromFloat64(0.3), 0},
		{FromFloat64(-0.3), 0},
		{FromFloat64(1.9), 1},
		{FromFloat64(-1.9), -1},
		{FromFloat64(2.0), 2},
	}
	for _, c := range cases {
		if got := c.in.TruncToInt(); got != c.want {
			t.Errorf("TruncToInt(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
