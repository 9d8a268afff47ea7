package main

// canvas is a braille micro-pixel buffer: every terminal cell carries a 2×4
// grid of dots, giving an effective resolution of 2w×4h on a w×h cell area.
type canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell braille dot mask
}

func newCanvas(w, h int) *canvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, m: m}
}

// set turns on the micro-pixel at (mx, my). Out-of-range coordinates are
// clipped.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	// Braille dot numbering puts the fourth row in the high bits.
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.m[cy][cx] |= bit
}

// line draws a micro-pixel line with Bresenham's algorithm.
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rows renders the buffer as one rune row per cell row. Empty cells become
// spaces, not blank braille, so overlays can detect them.
func (c *canvas) rows() [][]rune {
	out := make([][]rune, c.h)
	for y := range out {
		row := make([]rune, c.w)
		for x := range row {
			if mask := c.m[y][x]; mask != 0 {
				row[x] = rune(0x2800 + int(mask))
			} else {
				row[x] = ' '
			}
		}
		out[y] = row
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
