package canvas

import "github.com/disintegration/imaging"

// Whole-image transforms. Each one builds a new image and swaps it in.

func (b *Buffer) FlipHorizontal() { b.swap(imaging.FlipH(b.img)) }

func (b *Buffer) FlipVertical() { b.swap(imaging.FlipV(b.img)) }

// Rotate90 turns the image 90 degrees clockwise: (x, y) moves to
// (h-1-y, x) and the dimensions swap.
func (b *Buffer) Rotate90() { b.swap(imaging.Rotate270(b.img)) }

func (b *Buffer) Rotate180() { b.swap(imaging.Rotate180(b.img)) }

// InvertColors replaces each channel v with 255-v, keeping alpha.
func (b *Buffer) InvertColors() { b.swap(imaging.Invert(b.img)) }
