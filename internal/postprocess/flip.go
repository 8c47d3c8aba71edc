package postprocess

import "image"

// Flip mirrors img in place, horizontally and/or vertically, and returns it.
func Flip(img *image.NRGBA, horizontal, vertical bool) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if horizontal {
		for y := 0; y < h; y++ {
			row := img.Pix[y*img.Stride : y*img.Stride+w*4]
			for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
				for k := 0; k < 4; k++ {
					row[l*4+k], row[r*4+k] = row[r*4+k], row[l*4+k]
				}
			}
		}
	}
	if vertical {
		tmp := make([]uint8, w*4)
		for t, bt := 0, h-1; t < bt; t, bt = t+1, bt-1 {
			top := img.Pix[t*img.Stride : t*img.Stride+w*4]
			bot := img.Pix[bt*img.Stride : bt*img.Stride+w*4]
			copy(tmp, top)
			copy(top, bot)
			copy(bot, tmp)
		}
	}
	return img
}
