package frame

import (
	"fmt"
	"image"
	"image/color"
)

// RGB packs img into tightly packed 8-bit RGB triplets, row by row.
func RGB(img image.Image) []byte {
	b := img.Bounds()
	pix := make([]byte, 0, 3*b.Dx()*b.Dy())
	switch src := img.(type) {
	case *image.YCbCr:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				yy := src.Y[src.YOffset(x, y)]
				ci := src.COffset(x, y)
				r, g, bb := color.YCbCrToRGB(yy, src.Cb[ci], src.Cr[ci])
				pix = append(pix, r, g, bb)
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				pix = append(pix, c.R, c.G, c.B)
			}
		}
	}
	return pix
}

// RGBA expands packed RGB triplets into an opaque *image.RGBA.
func RGBA(pix []byte, width, height int) (*image.RGBA, error) {
	size := 3 * width * height
	if size > len(pix) {
		return nil, fmt.Errorf("frame length (%d) less than expected (%d)", len(pix), size)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < size; i, j = i+3, j+4 {
		img.Pix[j] = pix[i]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 0xFF
	}
	return img, nil
}
