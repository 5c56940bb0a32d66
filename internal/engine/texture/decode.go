package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Scene textures are flat image files; jpeg/png cover the stock set and
	// the x/image decoders pick up bmp/tiff drop-ins.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// channelCount reports how many color channels the decoded image carries.
// Only 3-channel (RGB) and 4-channel (RGBA) layouts are uploadable.
func channelCount(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.Alpha, *image.Alpha16:
		return 1
	case *image.CMYK:
		return 0 // not an RGB layout
	case *image.YCbCr, *image.NYCbCrA:
		return 3
	default:
		// RGBA, NRGBA, their 64-bit variants, paletted RGB
		return 4
	}
}

// decodeFile decodes an image file and returns it as RGBA pixels flipped
// vertically, since GL's UV origin is bottom-left while image files start
// at the top-left row.
func decodeFile(path string) (*image.RGBA, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding image: %w", err)
	}

	channels := channelCount(img)
	if channels != 3 && channels != 4 {
		return nil, channels, fmt.Errorf("unsupported image with %d channels", channels)
	}

	return flipToRGBA(img), channels, nil
}

// flipToRGBA converts any decoded image to tightly packed RGBA with rows
// in bottom-to-top order.
func flipToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	rowSize := rgba.Stride
	flipped := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rowSize : y*rowSize+rowSize]
		dst := flipped.Pix[(h-1-y)*rowSize:]
		copy(dst, src)
	}
	return flipped
}
