package triangulate

// Strip builds the side wall of an extruded ring. The ring's vertices are
// expected duplicated and interleaved starting at base: near copy at
// base+2j, far copy at base+2j+1. Each edge j -> j+1 becomes two triangles;
// the last edge wraps back to the first pair.
func Strip(count int, base uint32) []uint32 {
	if count < 2 {
		return nil
	}
	indices := make([]uint32, 0, count*6)
	for j := 0; j < count; j++ {
		near := base + uint32(2*j)
		next := near + 2
		if j == count-1 {
			next = base
		}
		indices = append(indices,
			near, next, near+1,
			next, next+1, near+1,
		)
	}
	return indices
}
