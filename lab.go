package axon

import colorful "github.com/lucasb-eyer/go-colorful"

// Lab is a point in CIE-Lab color space (D65 illuminant). Euclidean
// distance between two Lab points approximates the perceived difference
// between the corresponding colors far better than distance in raw RGB,
// which is what makes a 240-entry palette look acceptable.
type Lab struct {
	L, A, B float64
}

// rgbToLab converts an 8-bit sRGB triple to CIE-Lab. The conversion is
// pure and deterministic: sRGB gamma expansion, linear RGB to XYZ under
// D65, then the XYZ to Lab nonlinearity.
func rgbToLab(c RGB) Lab {
	l, a, b := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Lab()
	// go-colorful scales Lab down by 100; restore conventional units.
	return Lab{L: l * 100, A: a * 100, B: b * 100}
}

// distSq returns the squared Euclidean distance between two Lab points.
func (p Lab) distSq(q Lab) float64 {
	dl := p.L - q.L
	da := p.A - q.A
	db := p.B - q.B
	return dl*dl + da*da + db*db
}
