package projectile

import "github.com/smasonuk/gosieray"

// Plot draws each position onto c with the y axis pointing up, so y = 0
// lands on the bottom row. Positions that fall outside the canvas are
// skipped. It returns how many positions were drawn.
func Plot(c *gosieray.Canvas, trail []gosieray.Tuple, col gosieray.Color) int {
	drawn := 0
	for _, pos := range trail {
		x := int(pos.X)
		y := c.Height() - 1 - int(pos.Y)
		if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
			continue
		}
		c.WritePixel(x, y, col)
		drawn++
	}
	return drawn
}
