package generate

import "robo-rebellion/internal/gamemap"

// carveCorridor digs an L-shaped tunnel between random points of a and b:
// horizontal along a's row first, then vertical along b's column.
func (g *generator) carveCorridor(a, b *Room) {
	rng := g.cfg.Rand
	pa := gamemap.Point{X: a.X + rng.Intn(a.W), Y: a.Y + rng.Intn(a.H)}
	pb := gamemap.Point{X: b.X + rng.Intn(b.W), Y: b.Y + rng.Intn(b.H)}
	elbow := gamemap.Point{X: pb.X, Y: pa.Y}

	half := g.cfg.CorridorWidth / 2
	carveH(g.grid, pa.X, pb.X, pa.Y, half)
	carveV(g.grid, pa.Y, pb.Y, pb.X, half)

	g.corridors = append(g.corridors, Corridor{
		Points: [3]gamemap.Point{pa, elbow, pb},
		Width:  g.cfg.CorridorWidth,
	})
}

// carveH tags row y from x1 to x2 as corridor, widened by half cells above
// and below. Cells outside the grid are skipped. Room cells on the path are
// overwritten.
func carveH(grid *gamemap.Grid, x1, x2, y, half int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for h := 0; h <= half; h++ {
		for x := x1; x <= x2; x++ {
			if grid.InBounds(x, y+h) {
				grid.Set(x, y+h, gamemap.CellCorridor)
			}
			if h > 0 && grid.InBounds(x, y-h) {
				grid.Set(x, y-h, gamemap.CellCorridor)
			}
		}
	}
}

// carveV is carveH for column x.
func carveV(grid *gamemap.Grid, y1, y2, x, half int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for h := 0; h <= half; h++ {
		for y := y1; y <= y2; y++ {
			if grid.InBounds(x+h, y) {
				grid.Set(x+h, y, gamemap.CellCorridor)
			}
			if h > 0 && grid.InBounds(x-h, y) {
				grid.Set(x-h, y, gamemap.CellCorridor)
			}
		}
	}
}
