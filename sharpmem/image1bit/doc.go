// Package image1bit provides a 1-bit image format matching the line memory
// of Sharp memory LCDs.
//
// Pixels are stored row by row, eight horizontally adjacent pixels per byte.
// The most significant bit of a byte is the leftmost pixel, and a set bit is
// a white (On) pixel, so a row can be shifted out to the panel MSB first
// without any conversion.
//
// Memory layout example for an 8-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7
//	Values: 1 1 0 1 0 0 0 1
//	Byte:   0xD1
//
// Example usage:
//
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 160, 68))
//	img.Fill(image1bit.On)
//	img.SetBit(10, 20, image1bit.Off)
//	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
package image1bit
