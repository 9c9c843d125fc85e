package minesweeper

import "github.com/vovakirdan/tui-mines/internal/core"

// placeMines scatters g.mines mines uniformly at random over every cell
// except avoid, then computes adjacency counts.
//
// Uses rejection sampling: draw a random (row, col), retry when it is the
// avoided cell or already holds a mine. Terminates because Validate
// guarantees mines < width*height.
func (g *Game) placeMines(avoid core.Coord) {
	placed := 0
	for placed < g.mines {
		c := core.C(g.rng.Intn(g.height), g.rng.Intn(g.width))
		if c == avoid {
			continue
		}
		cl := g.at(c)
		if cl.mine {
			continue
		}
		cl.mine = true
		placed++
	}

	g.computeAdjacency()
	g.logger.Debug("mines placed", "count", placed, "avoid", avoid.String())
}

// computeAdjacency sets the adjacent-mine count of every non-mine cell.
func (g *Game) computeAdjacency() {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := core.C(row, col)
			cl := g.at(c)
			if cl.mine {
				cl.adjacent = 0
				continue
			}
			var count uint8
			c.Neighbors(g.height, g.width, func(n core.Coord) {
				if g.at(n).mine {
					count++
				}
			})
			cl.adjacent = count
		}
	}
}
