package quality

import (
	"bufio"
	"fmt"
	"io"
)

// WritePBM plots the points (xs[i], ys[i]) as a plain (P1) PBM image of
// width x height pixels. Set pixels are black; y grows downward.
func WritePBM(w io.Writer, xs, ys []float32, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d x coordinates, %d y coordinates", ErrDimensionMismatch, len(xs), len(ys))
	}

	image := make([]bool, width*height)
	for i := range xs {
		px := int(xs[i] * float32(width-1))
		py := int(ys[i] * float32(height-1))
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		image[py*width+px] = true
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P1\n%d %d\n", width, height)

	// Plain PBM lines should not exceed 70 characters.
	const lineLen = 70
	for i, set := range image {
		if set {
			bw.WriteByte('1')
		} else {
			bw.WriteByte('0')
		}
		if (i+1)%lineLen == 0 || i == len(image)-1 {
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}
