package axon

import "github.com/axon-term/axon/imageutil"

// Posterize reduces each color channel to levels discrete values by
// binning into equal-width ranges and re-centering every pixel at its
// bin midpoint. A level count of 0 is the identity transform, as is
// 256 (one value per bin). The input image is never modified.
//
// Posterization runs before dithering and quantization; it deliberately
// coarsens the input to produce a flatter, more stylized render.
func Posterize(img *imageutil.RGBAImage, levels int) (*imageutil.RGBAImage, error) {
	if levels < 0 || levels > 256 {
		return nil, configErrorf("posterize level", "%d not in [0,256]", levels)
	}
	if levels == 0 {
		return img, nil
	}

	binWidth := 256 / levels
	half := binWidth / 2
	var table [256]uint8
	for v := 0; v < 256; v++ {
		t := v/binWidth*binWidth + half
		if t > 255 {
			// Level counts that do not divide 256 leave a short top bin.
			t = 255
		}
		table[v] = uint8(t)
	}

	width, height := img.Width(), img.Height()
	out := imageutil.NewRGBAImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := img.GetRGB(x, y)
			out.SetRGB(x, y, imageutil.RGB{
				R: table[p.R],
				G: table[p.G],
				B: table[p.B],
			})
		}
	}
	return out, nil
}
