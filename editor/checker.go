package editor

import "github.com/phanxgames/sprig"

// newCheckerboard builds a size x size texture of cell x cell squares
// alternating between two greys.
func newCheckerboard(size, cell int) *sprig.Texture2D {
	tex := sprig.NewTexture2D(size, size)
	tex.SetData(checkerPixels(size, cell))
	return tex
}

func checkerPixels(size, cell int) []byte {
	pix := make([]byte, 4*size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := byte(0x60)
			if (x/cell+y/cell)%2 == 0 {
				v = 0xc0
			}
			i := 4 * (y*size + x)
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xff
		}
	}
	return pix
}
