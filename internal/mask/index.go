package mask

// Index maps mask pixels to dense unknown ids.
//
// Ids follow a row-major scan (y outer, x inner), so the first inside pixel
// from the top-left gets id 0. The same Index must drive both system
// assembly and write-back.
type Index struct {
	width, height int
	ids           []int // flattened mask coordinate -> id, -1 when outside
	pos           []int // id -> flattened mask coordinate
}

// NewIndex enumerates the inside pixels of c.
func NewIndex(c *Classifier) *Index {
	idx := &Index{
		width:  c.Width(),
		height: c.Height(),
		ids:    make([]int, c.Width()*c.Height()),
	}
	next := 0
	for y := range idx.height {
		for x := range idx.width {
			at := idx.width*y + x
			if !c.IsMask(x, y) {
				idx.ids[at] = -1
				continue
			}
			idx.ids[at] = next
			idx.pos = append(idx.pos, at)
			next++
		}
	}
	return idx
}

// Len returns the number of unknowns.
func (idx *Index) Len() int { return len(idx.pos) }

// ID returns the unknown id of (x, y), or -1 if the pixel is not an unknown.
func (idx *Index) ID(x, y int) int {
	if x < 0 || y < 0 || x >= idx.width || y >= idx.height {
		return -1
	}
	return idx.ids[idx.width*y+x]
}

// Pos returns the mask-local coordinate of unknown id.
func (idx *Index) Pos(id int) (x, y int) {
	at := idx.pos[id]
	return at % idx.width, at / idx.width
}
