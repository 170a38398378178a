package frame

import (
	"fmt"
	"image"
)

type Decoder interface {
	Decode(frame []byte, width, height int) (image.Image, error)
}

// decoderFunc is a proxy type for Decoder
type decoderFunc func(frame []byte, width, height int) (image.Image, error)

func (f decoderFunc) Decode(frame []byte, width, height int) (image.Image, error) {
	return f(frame, width, height)
}

func NewDecoder(f Format) (Decoder, error) {
	switch f {
	case FormatYUYV:
		return decoderFunc(decodeYUYV), nil
	case FormatMJPEG:
		return decoderFunc(decodeMJPEG), nil
	default:
		return nil, fmt.Errorf("%w: %s is not supported", ErrUnknownFormat, f)
	}
}
