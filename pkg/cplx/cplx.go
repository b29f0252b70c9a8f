// Package cplx implements complex arithmetic over a two-component value type.
//
// The package exists instead of the standard library's math/cmplx because the
// shader companion routine library (pkg/glsl.Prelude) must mirror these exact
// formulas: a point evaluated on the host and the same point shaded on the
// rendering device have to agree up to floating rounding. Branch conventions
// and singular cases are therefore fixed here:
//   - Inverse of zero yields the infinite sentinel (+Inf, +Inf), never a fault.
//   - Log, Pow and Sqrt use the principal branch, argument in (-pi, pi].
//   - Pow with a zero base returns zero without consulting the exponent.
package cplx

import "math"

// Complex is an immutable complex value. All operations return new values.
type Complex struct {
	Re float64
	Im float64
}

// Zero is the additive identity.
var Zero = Complex{}

// Inf is the infinite sentinel returned for the inverse of zero.
var Inf = Complex{math.Inf(1), math.Inf(1)}

// New creates a complex value from its real and imaginary parts.
func New(re, im float64) Complex {
	return Complex{Re: re, Im: im}
}

// Real creates a complex value with a zero imaginary part.
func Real(re float64) Complex {
	return Complex{Re: re}
}

// IsZero reports whether both components are exactly zero.
func (z Complex) IsZero() bool {
	return z.Re == 0 && z.Im == 0
}

// IsInf reports whether either component is infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.Re, 0) || math.IsInf(z.Im, 0)
}

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{z.Re + w.Re, z.Im + w.Im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{z.Re - w.Re, z.Im - w.Im}
}

// Mul returns z * w by the distributive rule.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		z.Re*w.Re - z.Im*w.Im,
		z.Re*w.Im + z.Im*w.Re,
	}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{-z.Re, -z.Im}
}

// Abs2 returns the squared magnitude of z.
func (z Complex) Abs2() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Abs returns the magnitude of z.
func (z Complex) Abs() float64 {
	return math.Hypot(z.Re, z.Im)
}

// Arg returns the argument of z, the principal value in (-pi, pi].
func (z Complex) Arg() float64 {
	return math.Atan2(z.Im, z.Re)
}

// Inv returns 1/z as the conjugate divided by the squared magnitude.
// Inv of zero is the infinite sentinel.
func (z Complex) Inv() Complex {
	d := z.Abs2()
	if d == 0 {
		return Inf
	}
	return Complex{z.Re / d, -z.Im / d}
}

// Div returns z / w, computed as z * Inv(w). Division by zero yields the
// infinite sentinel directly; routing it through Mul would turn the
// sentinel into NaN via 0 * Inf.
func (z Complex) Div(w Complex) Complex {
	if w.IsZero() {
		return Inf
	}
	return z.Mul(w.Inv())
}

// Exp returns e**z.
func (z Complex) Exp() Complex {
	m := math.Exp(z.Re)
	return Complex{m * math.Cos(z.Im), m * math.Sin(z.Im)}
}

// Log returns the principal natural logarithm of z: ln of the magnitude as
// the real part, the argument as the imaginary part.
func (z Complex) Log() Complex {
	return Complex{math.Log(z.Abs()), z.Arg()}
}

// Pow returns z**p via the polar form of exp(p*log(z)):
//
//	mag = |z|**p.Re * e**(-p.Im * arg(z))
//	ang = p.Re * arg(z) + p.Im * ln|z|
//
// A zero base returns zero without consulting the exponent. That is a
// deliberate special case shared with the shader routine library, not a
// general mathematical rule.
func (z Complex) Pow(p Complex) Complex {
	if z.IsZero() {
		return Zero
	}
	r := z.Abs()
	t := z.Arg()
	mag := math.Pow(r, p.Re) * math.Exp(-p.Im*t)
	ang := p.Re*t + p.Im*math.Log(r)
	return Complex{mag * math.Cos(ang), mag * math.Sin(ang)}
}

// Sqrt returns the principal square root of z, as z**(1/2).
func (z Complex) Sqrt() Complex {
	return z.Pow(Complex{Re: 0.5})
}

// Sin returns the sine of z via the hyperbolic angle-addition identity.
func (z Complex) Sin() Complex {
	return Complex{
		math.Sin(z.Re) * math.Cosh(z.Im),
		math.Cos(z.Re) * math.Sinh(z.Im),
	}
}

// Cos returns the cosine of z via the hyperbolic angle-addition identity.
func (z Complex) Cos() Complex {
	return Complex{
		math.Cos(z.Re) * math.Cosh(z.Im),
		-math.Sin(z.Re) * math.Sinh(z.Im),
	}
}

// Sinh returns the hyperbolic sine of z.
func (z Complex) Sinh() Complex {
	return Complex{
		math.Sinh(z.Re) * math.Cos(z.Im),
		math.Cosh(z.Re) * math.Sin(z.Im),
	}
}

// Cosh returns the hyperbolic cosine of z.
func (z Complex) Cosh() Complex {
	return Complex{
		math.Cosh(z.Re) * math.Cos(z.Im),
		math.Sinh(z.Re) * math.Sin(z.Im),
	}
}
