// Package palette extracts representative colors from images.
//
// An image is rasterized into a small fixed-size buffer ([Rasterize]),
// reduced to a handful of swatches by a [Generator] (the default is
// [MedianCut]), and the swatches are classified into lightness/saturation
// targets such as dark-vibrant or light-muted. [SelectBestColor] then
// picks a single color from the result.
//
//	img, err := palette.Decode(r)
//	if err != nil {
//		return err
//	}
//	p, err := palette.NewMedianCut(16).Generate(palette.Rasterize(img, 112))
//	if err != nil {
//		return err
//	}
//	best := palette.SelectBestColor(p, 0)
package palette
