package frame

import (
	"image"
	"reflect"
	"testing"
)

func TestDecodeYUYV(t *testing.T) {
	const (
		width  = 2
		height = 2
	)
	input := []byte{
		// Y    Cb     Y    Cr
		0x01, 0x82, 0x03, 0x84,
		0x05, 0x86, 0x07, 0x88,
	}
	expected := &image.YCbCr{
		Y:              []byte{0x01, 0x03, 0x05, 0x07},
		YStride:        width,
		Cb:             []byte{0x82, 0x86},
		Cr:             []byte{0x84, 0x88},
		CStride:        width / 2,
		SubsampleRatio: image.YCbCrSubsampleRatio422,
		Rect:           image.Rect(0, 0, width, height),
	}

	img, err := decodeYUYV(input, width, height)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(expected, img) {
		t.Errorf("Wrong decode result,\nexpected:\n%+v\ngot:\n%+v", expected, img)
	}
}

func TestDecodeYUYVShortFrame(t *testing.T) {
	if _, err := decodeYUYV([]byte{0x01, 0x82}, 2, 2); err == nil {
		t.Fatal("Expected an error for a truncated frame")
	}
}
