package frame

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
)

func decodeMJPEG(frame []byte, width, height int) (image.Image, error) {
	img, err := jpeg.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("decoded size %dx%d does not match %dx%d", b.Dx(), b.Dy(), width, height)
	}
	return img, nil
}
