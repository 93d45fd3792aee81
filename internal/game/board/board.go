package board

// Standard board dimensions. X runs 0..Width-1, Y runs 0..Height-1.
const (
	Width  = 100
	Height = 90
)

// Board holds the quad grid, row-major.
type Board struct {
	W, H  int
	Quads [][]Quad // indexed [y][x]
}

// New creates an empty board of the given dimensions.
func New(w, h int) *Board {
	quads := make([][]Quad, h)
	for y := range quads {
		quads[y] = make([]Quad, w)
		for x := range quads[y] {
			quads[y][x].X = x
			quads[y][x].Y = y
		}
	}
	return &Board{W: w, H: h, Quads: quads}
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// QuadAt returns the quad at (x, y), or nil when out of bounds.
func (b *Board) QuadAt(x, y int) *Quad {
	if !b.InBounds(x, y) {
		return nil
	}
	return &b.Quads[y][x]
}

// AdjacentQuads returns the up-to-eight neighbours of (x, y).
func (b *Board) AdjacentQuads(x, y int) []*Quad {
	quads := make([]*Quad, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if q := b.QuadAt(x+dx, y+dy); q != nil {
				quads = append(quads, q)
			}
		}
	}
	return quads
}
