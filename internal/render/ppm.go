package render

import (
	"fmt"
	"io"
)

// WritePPM streams an RGB pixel buffer as a binary PPM (P6) image. pix must
// hold width*height*3 bytes.
func WritePPM(w io.Writer, pix []byte, width, height int) error {
	if len(pix) != width*height*3 {
		return fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d", len(pix), width*height*3, width, height)
	}
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	_, err := w.Write(pix)
	return err
}
