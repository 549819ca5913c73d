// Package bpx provides a pure-Go in-memory pixel buffer with 24 pixel
// encodings, per-pixel blending, procedural generation, geometric drawing
// primitives and whole-image transforms.
//
// This is a pragmatic library focused on correctness and portability rather
// than performance. File decoding goes through the standard image registry
// (PNG, JPEG, GIF, BMP, TGA, Radiance HDR, PSD, PNM) and resampling of 8-bit
// layouts is delegated to github.com/nfnt/resize.
package bpx
