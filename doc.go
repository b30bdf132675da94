// Package axon converts raster images into 256-color ANSI text rendered
// with Unicode half-block characters. Each character cell encodes two
// vertically stacked pixels: the top pixel as the foreground color and the
// bottom pixel as the background color, doubling the vertical resolution
// of a text terminal.
//
// The quantization engine maps arbitrary RGB colors onto the fixed
// 256-entry terminal palette using a precomputed lookup table built over
// CIE-Lab distances, with optional posterization, error-diffusion or
// ordered dithering, and palette restriction through remap tables.
package axon
