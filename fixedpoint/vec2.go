package fixedpoint

// Vec2 is an ordered pair of fixed-point scalars. All linear operators act
// componentwise; the naming here (Add/Sub/Dot/Normalized/Perp/Lerp) follows
// the conventional vector-math method idiom but every operand is a Scalar,
// never a float.
type Vec2 struct {
	X, Y Scalar
}

// ZeroVec2 is the additive identity.
var ZeroVec2 = Vec2{X: Zero, Y: Zero}

// NewVec2 builds a Vec2 from two scalars.
func NewVec2(x, y Scalar) Vec2 {
	return Vec2{X: x, Y: y}
}

// Vec2FromFloat64 converts a pair of float64s at the data-entry boundary.
func Vec2FromFloat64(x, y float64) Vec2 {
	return Vec2{X: FromFloat64(x), Y: FromFloat64(y)}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X.Add(b.X), Y: a.Y.Add(b.Y)}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X.Sub(b.X), Y: a.Y.Sub(b.Y)}
}

func (a Vec2) Neg() Vec2 {
	return Vec2{X: a.X.Neg(), Y: a.Y.Neg()}
}

// Scale multiplies both components by a scalar.
func (a Vec2) Scale(s Scalar) Vec2 {
	return Vec2{X: a.X.Mul(s), Y: a.Y.Mul(s)}
}

// Divide divides both components by a scalar. The caller must ensure s != 0.
func (a Vec2) Divide(s Scalar) Vec2 {
	return Vec2{X: a.X.Div(s), Y: a.Y.Div(s)}
}

// Dot computes a.x*b.x + a.y*b.y, with both products evaluated before the
// sum as the spec's operand-evaluation-order rule requires.
func (a Vec2) Dot(b Vec2) Scalar {
	px := a.X.Mul(b.X)
	py := a.Y.Mul(b.Y)
	return px.Add(py)
}

func (a Vec2) MagnitudeSquared() Scalar {
	return a.Dot(a)
}

func (a Vec2) Magnitude() Scalar {
	return a.MagnitudeSquared().Sqrt()
}

// Normalized returns a/|a|, or a unchanged if the magnitude is not strictly
// positive (avoids division by zero deterministically rather than panicking).
func (a Vec2) Normalized() Vec2 {
	mag := a.Magnitude()
	if mag > Zero {
		return a.Divide(mag)
	}
	return a
}

// Perp rotates the vector 90 degrees counter-clockwise: (x,y) -> (-y,x).
func (a Vec2) Perp() Vec2 {
	return Vec2{X: a.Y.Neg(), Y: a.X}
}

// Lerp computes a + (b-a)*t.
func (a Vec2) Lerp(b Vec2, t Scalar) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}
