package main

import (
	"image"
	"image/color"
	"math"

	"github.com/helicoid/zplot"
	"github.com/helicoid/zplot/pkg/cplx"
)

// render produces a domain-colored image of the program's function over the
// square [-halfRange, halfRange] of the complex plane: hue follows the
// argument of the function value, lightness its magnitude. Singularities
// (infinite values) come out white and undefined points dark gray, so every
// pixel of the plane gets a color.
func render(prog *zplot.Program, width, height int, halfRange float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		im := halfRange - 2*halfRange*float64(py)/float64(height-1)
		for px := 0; px < width; px++ {
			re := -halfRange + 2*halfRange*float64(px)/float64(width-1)
			w := prog.Evaluate(cplx.New(re, im))
			img.SetRGBA(px, py, domainColor(w))
		}
	}
	return img
}

// domainColor maps one function value to a pixel color.
func domainColor(w cplx.Complex) color.RGBA {
	if math.IsNaN(w.Re) || math.IsNaN(w.Im) {
		return color.RGBA{64, 64, 64, 255}
	}
	if w.IsInf() {
		return color.RGBA{255, 255, 255, 255}
	}

	hue := (w.Arg() + math.Pi) / (2 * math.Pi)
	mag := w.Abs()
	light := 1 - 1/(1+mag) // 0 at zeros, toward 1 near poles
	return hsl(hue, 1, light)
}

// hsl converts hue/saturation/lightness in [0,1] to an opaque RGBA color.
func hsl(h, s, l float64) color.RGBA {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}
	return color.RGBA{
		R: uint8(math.Round(r * 255)),
		G: uint8(math.Round(g * 255)),
		B: uint8(math.Round(b * 255)),
		A: 255,
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
