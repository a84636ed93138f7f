package optics

// Neighbors returns the indices of every point within epsSq (already
// squared) of point p, including p itself, in storage order. The scan is
// linear (O(n·d)) — no spatial index is used, per the engine's design: the
// core tolerates an O(n·d) scan per call and accepts no acceleration
// structure in exchange for the simplicity of an exact, deterministic scan.
func Neighbors(ps *PointStore, p int, epsSq float64) []int {
	query := ps.Get(p)
	var result []int
	for q := 0; q < ps.Len(); q++ {
		if SquaredDistance(query, ps.Get(q)) <= epsSq {
			result = append(result, q)
		}
	}
	return result
}
