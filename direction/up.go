package direction

// up holds, for each direction d, the three directions that make up
// UP(d) = DIR \ {d, -d} restricted to the "up-half" — the three
// directions whose shared face with d's own axis bundle sits above d.
//
// The table is built from two anchor rows (UP(xy) and its negation
// UP(-xy)), then completed by the lattice's three-fold x→y→z→x axis
// symmetry. It is a fixed, precomputed lookup: every find_sweep_edges
// call indexes into it rather than recomputing the geometry.
var up = [numDirections][3]Direction{
	XYZ:    {XY, XZ, YZ},
	NegXYZ: {NegXY, NegXZ, NegYZ},
	XY:     {XYZ, NegXZ, NegYZ},
	NegXY:  {NegXYZ, XZ, YZ},
	YZ:     {XYZ, NegXY, NegXZ},
	NegYZ:  {NegXYZ, XY, XZ},
	XZ:     {XYZ, NegYZ, NegXY},
	NegXZ:  {NegXYZ, YZ, XY},
}

// Up returns the three up-directions for d: the up-half of DIR \ {d,-d}.
func Up(d Direction) [3]Direction {
	return up[d]
}

// Down returns the three directions in DIR \ {d,-d} that are not in
// UP(d) — the mirror image of UP(d) across the vertex.
func Down(d Direction) [3]Direction {
	return up[d.Opposite()]
}

// DownHalf returns the four directions strictly in the "down-half" of d:
// everything in DIR except d itself and the three members of UP(d).
// checkExtremalVertex inspects exactly these four edges.
func DownHalf(d Direction) [4]Direction {
	upSet := up[d]
	var out [4]Direction
	i := 0
	for _, cand := range All() {
		if cand == d || cand == upSet[0] || cand == upSet[1] || cand == upSet[2] {
			continue
		}
		out[i] = cand
		i++
	}
	return out
}
