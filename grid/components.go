package grid

// Label assigns every passable cell the id of its connected region under
// dirs, numbering regions 0,1,… in row-major order of their first cell.
// Walls get -1. It returns the labels (row-major) and the region count.
//
// Time:   O(Rows·Cols·len(dirs)).
// Memory: O(Rows·Cols).
func (g *Grid) Label(dirs []Offset) (labels []int, count int) {
	labels = make([]int, len(g.Cells))
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, len(g.Cells))
	for i0, cell := range g.Cells {
		if cell == Wall || labels[i0] >= 0 {
			continue
		}
		labels[i0] = count
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ur, uc := u/g.Cols, u%g.Cols
			for _, d := range dirs {
				vr, vc := ur+d.DR, uc+d.DC
				if !g.InBounds(vr, vc) {
					continue
				}
				v := g.index(vr, vc)
				if g.Cells[v] == Wall || labels[v] >= 0 {
					continue
				}
				labels[v] = count
				queue = append(queue, v)
			}
		}
		count++
	}

	return labels, count
}

// Components returns the cells of each region found by Label, in label
// order; cells within a region are in row-major order.
func (g *Grid) Components(dirs []Offset) [][]Pos {
	labels, count := g.Label(dirs)
	comps := make([][]Pos, count)
	for i, id := range labels {
		if id >= 0 {
			comps[id] = append(comps[id], Pos{R: i / g.Cols, C: i % g.Cols})
		}
	}

	return comps
}

// Connected reports whether b can be reached from a moving by dirs through
// passable cells. Walls and out-of-bounds endpoints are never connected.
func (g *Grid) Connected(a, b Pos, dirs []Offset) bool {
	if !g.Passable(a) || !g.Passable(b) {
		return false
	}
	labels, _ := g.Label(dirs)

	return labels[g.index(a.R, a.C)] == labels[g.index(b.R, b.C)]
}
