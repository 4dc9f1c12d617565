package canvas

import (
	"image"
	"image/color"
)

// DefaultFringeThreshold is the number of filled 4-neighbours an unfilled
// pixel needs before the cleanup pass absorbs it.
const DefaultFringeThreshold = 2

// FillOptions tunes FloodFill.
type FillOptions struct {
	// FringeThreshold overrides DefaultFringeThreshold when positive.
	// A negative value disables the cleanup pass.
	FringeThreshold int
}

func (o FillOptions) threshold() int {
	if o.FringeThreshold == 0 {
		return DefaultFringeThreshold
	}
	return o.FringeThreshold
}

// FloodFill replaces the 4-connected region of pixels matching the color
// at (x, y) with fill, then absorbs the antialiasing fringe around the
// region. It returns the number of pixels changed. A seed outside the
// buffer, or a seed already equal to fill, changes nothing.
func (b *Buffer) FloodFill(x, y int, fill color.NRGBA, opts FillOptions) int {
	if !b.inBounds(x, y) {
		return 0
	}
	target := b.img.NRGBAAt(x, y)
	if target == fill {
		return 0
	}

	w, h := b.Width(), b.Height()
	img := b.img
	visited := make([]bool, w*h)
	matches := func(px, py int) bool {
		return img.NRGBAAt(px, py) == target
	}

	changed := 0
	stack := []image.Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		px, py := p.X, p.Y
		if visited[py*w+px] || !matches(px, py) {
			continue
		}
		for px > 0 && !visited[py*w+px-1] && matches(px-1, py) {
			px--
		}

		above, below := false, false
		for ; px < w; px++ {
			i := py*w + px
			if visited[i] || !matches(px, py) {
				break
			}
			visited[i] = true
			img.SetNRGBA(px, py, fill)
			changed++

			if py > 0 {
				open := !visited[i-w] && matches(px, py-1)
				if open && !above {
					stack = append(stack, image.Point{X: px, Y: py - 1})
				}
				above = open
			}
			if py < h-1 {
				open := !visited[i+w] && matches(px, py+1)
				if open && !below {
					stack = append(stack, image.Point{X: px, Y: py + 1})
				}
				below = open
			}
		}
	}

	if t := opts.threshold(); t > 0 {
		changed += absorbFringe(img, visited, w, h, fill, t)
	}
	return changed
}

// absorbFringe recolors unfilled pixels that touch at least threshold
// filled pixels. Neighbour counts only consider the main fill, so the
// pass does not cascade.
func absorbFringe(img *image.NRGBA, filled []bool, w, h int, fill color.NRGBA, threshold int) int {
	changed := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			if filled[i] {
				continue
			}
			n := 0
			if x > 0 && filled[i-1] {
				n++
			}
			if x < w-1 && filled[i+1] {
				n++
			}
			if y > 0 && filled[i-w] {
				n++
			}
			if y < h-1 && filled[i+w] {
				n++
			}
			if n >= threshold && img.NRGBAAt(x, y) != fill {
				img.SetNRGBA(x, y, fill)
				changed++
			}
		}
	}
	return changed
}
