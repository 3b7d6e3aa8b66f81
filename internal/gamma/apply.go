package gamma

import "image"

// Apply writes the corrected form of src into dst, one table lookup per
// byte. dst and src may alias; they must be the same length.
func (t *LUT) Apply(dst, src []byte) {
	for i, p := range src {
		dst[i] = t[p]
	}
}

// ApplyGray corrects an 8-bit grayscale frame in place. This is the
// viewer's whole per-frame gamma pass: no exponentiation, one lookup
// per pixel.
func (t *LUT) ApplyGray(img *image.Gray) {
	t.Apply(img.Pix, img.Pix)
}
