package glsl

// Prelude is the companion complex arithmetic routine library assumed by
// the emitted function body. Formulas mirror pkg/cplx: division by zero
// produces infinities rather than faulting, log and pow use the principal
// branch, and pow of a zero base is zero regardless of the exponent.
const Prelude = `vec2 c_add(vec2 a, vec2 b) {
    return a + b;
}

vec2 c_sub(vec2 a, vec2 b) {
    return a - b;
}

vec2 c_mul(vec2 a, vec2 b) {
    return vec2(a.x * b.x - a.y * b.y, a.x * b.y + a.y * b.x);
}

vec2 c_inv(vec2 a) {
    float d = dot(a, a);
    if (d == 0.0) {
        return vec2(1.0e38, 1.0e38);
    }
    return vec2(a.x, -a.y) / d;
}

vec2 c_div(vec2 a, vec2 b) {
    if (b == vec2(0.0)) {
        return vec2(1.0e38, 1.0e38);
    }
    return c_mul(a, c_inv(b));
}

vec2 c_exp(vec2 a) {
    return exp(a.x) * vec2(cos(a.y), sin(a.y));
}

vec2 c_log(vec2 a) {
    return vec2(log(length(a)), atan(a.y, a.x));
}

vec2 c_pow(vec2 a, vec2 b) {
    if (a == vec2(0.0)) {
        return vec2(0.0);
    }
    float r = length(a);
    float t = atan(a.y, a.x);
    float m = pow(r, b.x) * exp(-b.y * t);
    float ang = b.x * t + b.y * log(r);
    return m * vec2(cos(ang), sin(ang));
}

vec2 c_sqrt(vec2 a) {
    return c_pow(a, vec2(0.5, 0.0));
}

vec2 c_sin(vec2 a) {
    return vec2(sin(a.x) * cosh(a.y), cos(a.x) * sinh(a.y));
}

vec2 c_cos(vec2 a) {
    return vec2(cos(a.x) * cosh(a.y), -sin(a.x) * sinh(a.y));
}

vec2 c_sinh(vec2 a) {
    return vec2(sinh(a.x) * cos(a.y), cosh(a.x) * sin(a.y));
}

vec2 c_cosh(vec2 a) {
    return vec2(cosh(a.x) * cos(a.y), sinh(a.x) * sin(a.y));
}
`
