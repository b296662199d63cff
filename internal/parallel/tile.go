package parallel

// Tile dimensions. 64x64 keeps a tile's pixels inside L1 and gives the
// scheduler enough jobs to balance uneven per-tile cost.
const (
	TileWidth  = 64
	TileHeight = 64
)

// Tile is one rectangular render job in pixel coordinates. X, Y is the
// top-left corner; W, H are clipped at the frame edges, so edge tiles
// may be smaller than the full tile size.
type Tile struct {
	X, Y int
	W, H int
}

// Partition splits a w by h frame into tiles in row-major order.
// Together the tiles cover every pixel exactly once; a non-positive
// dimension yields no tiles.
func Partition(w, h int) []Tile {
	if w <= 0 || h <= 0 {
		return nil
	}
	cols := (w + TileWidth - 1) / TileWidth
	rows := (h + TileHeight - 1) / TileHeight

	tiles := make([]Tile, 0, cols*rows)
	for ty := 0; ty < rows; ty++ {
		for tx := 0; tx < cols; tx++ {
			t := Tile{
				X: tx * TileWidth,
				Y: ty * TileHeight,
				W: TileWidth,
				H: TileHeight,
			}
			if t.X+t.W > w {
				t.W = w - t.X
			}
			if t.Y+t.H > h {
				t.H = h - t.Y
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}
