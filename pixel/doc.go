// Package pixel implements the RGB565 color model and word-packed images of
// 16-bit parallel TFT controllers.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces. Image pixels are kept as the 16-bit words that are
// sent on the bus, so a whole buffer can be streamed without conversion.
package pixel
