// Package sweep implements the per-vertex decoding rule the sweep decoder
// applies once for every vertex of a Lattice, for one fixed "up" direction.
// It is pure with respect to Code: every function here takes a syndrome
// snapshot and a Lattice and returns which single face qubit (if any) the
// caller should toggle, so code.Code can drive a full sweep without this
// package importing code back.
package sweep

import (
	"math/rand"

	"github.com/sweeplattice/sweepdecoder/direction"
	"github.com/sweeplattice/sweepdecoder/lattice"
)

// FindSweepEdges returns the subset of UP(d) that v admits a real edge
// along and whose syndrome bit is set, in UP(d)'s fixed order. Its length
// is always bounded by how many of UP(d)'s three directions v actually
// admits an edge along: three for a full vertex, fewer for a half vertex.
func FindSweepEdges(lat *lattice.Lattice, syndrome []bool, v int, d direction.Direction) []direction.Direction {
	up := direction.Up(d)
	out := make([]direction.Direction, 0, 3)
	for _, u := range up {
		if e, ok := lat.EdgeIndex(v, u); ok && syndrome[e] {
			out = append(out, u)
		}
	}
	return out
}

// CheckExtremalVertex reports whether v has zero syndrome on every edge in
// d's down-half: -d and the three members of UP(-d). Geometrically, there
// is no syndrome strictly below v with respect to d. Missing edges (a half
// vertex's absent directions, or a bounded lattice's boundary) trivially
// count as zero.
func CheckExtremalVertex(lat *lattice.Lattice, syndrome []bool, v int, d direction.Direction) bool {
	for _, u := range direction.DownHalf(d) {
		if e, ok := lat.EdgeIndex(v, u); ok && syndrome[e] {
			return false
		}
	}
	return true
}

// availableUp returns the subset of UP(d) that v admits a real edge along,
// in UP(d)'s fixed order. A full vertex of a toric lattice returns all
// three (a full vertex on a bounded lattice's boundary may return fewer);
// a half vertex returns one or two, depending only on d, since both half
// vertex kinds connect along the same four directions.
func availableUp(lat *lattice.Lattice, v int, d direction.Direction) []direction.Direction {
	up := direction.Up(d)
	out := make([]direction.Direction, 0, 3)
	for _, u := range up {
		if _, ok := lat.EdgeIndex(v, u); ok {
			out = append(out, u)
		}
	}
	return out
}

// halfVertexPartner gives, for each direction a half vertex admits, the
// other admitted direction it validly pairs with to span a rhombic face.
// Every half vertex, type 1 or type 2, admits the same four directions
// (see halfDirs in lattice/geometry.go), so one table serves both kinds.
var halfVertexPartner = map[direction.Direction]direction.Direction{
	direction.XYZ:    direction.NegYZ,
	direction.NegYZ:  direction.XYZ,
	direction.NegXYZ: direction.YZ,
	direction.YZ:     direction.NegXYZ,
}

// realPartner returns the direction u pairs with to span a rhombic face,
// per halfVertexPartner. u must be one of a half vertex's four real
// directions.
func realPartner(u direction.Direction) (direction.Direction, bool) {
	w, ok := halfVertexPartner[u]
	return w, ok
}

// Rule applies the sweep engine's per-vertex decoding rule at v for
// direction d against the given syndrome, returning the id of the single
// face qubit to toggle, if any. It dispatches on how many of UP(d)'s three
// directions v actually admits an edge along: three selects the
// full-vertex table, fewer selects the half-vertex table.
func Rule(lat *lattice.Lattice, syndrome []bool, v int, d direction.Direction, greedy bool, rng *rand.Rand) (qubit int, ok bool) {
	avail := availableUp(lat, v, d)
	switch len(avail) {
	case 3:
		return fullVertexRule(lat, syndrome, v, d, greedy, rng)
	case 0:
		return 0, false
	default:
		return halfVertexRule(lat, syndrome, v, d, greedy)
	}
}

// fullVertexRule implements spec.md §4.3's full-vertex table: |S|=0 does
// nothing; |S|=1 toggles the face spanning the other two up-directions
// (gated on CheckExtremalVertex in greedy mode); |S|=2 toggles the face
// the two syndrome directions span; |S|=3 toggles exactly one of the three
// candidate faces, chosen uniformly at random.
func fullVertexRule(lat *lattice.Lattice, syndrome []bool, v int, d direction.Direction, greedy bool, rng *rand.Rand) (int, bool) {
	up := direction.Up(d)
	u1, u2, u3 := up[0], up[1], up[2]
	s := FindSweepEdges(lat, syndrome, v, d)

	f12, _ := lat.FaceQubit(v, u1, u2)
	f13, _ := lat.FaceQubit(v, u1, u3)
	f23, _ := lat.FaceQubit(v, u2, u3)

	switch len(s) {
	case 0:
		return 0, false
	case 1:
		if greedy && !CheckExtremalVertex(lat, syndrome, v, d) {
			return 0, false
		}
		switch s[0] {
		case u1:
			return f23, true
		case u2:
			return f13, true
		default:
			return f12, true
		}
	case 2:
		has := func(u direction.Direction) bool { return s[0] == u || s[1] == u }
		switch {
		case has(u1) && has(u2):
			return f12, true
		case has(u1) && has(u3):
			return f13, true
		default:
			return f23, true
		}
	default: // 3
		switch rng.Intn(3) {
		case 0:
			return f12, true
		case 1:
			return f13, true
		default:
			return f23, true
		}
	}
}

// halfVertexRule implements spec.md §4.3's half-vertex table. A half
// vertex admits only one or two of UP(d)'s three directions as real edges
// (the rest are absent outright, not merely zero-syndrome), so the table
// collapses to two cases: |S|=0 does nothing; |S|=1 toggles the face the
// lone syndrome direction spans with its fixed partner (see
// halfVertexPartner); |S|=2 toggles the face the two syndrome directions
// span directly, since both are already real edges of v and any two
// members of one UP(d) triple always validly pair.
func halfVertexRule(lat *lattice.Lattice, syndrome []bool, v int, d direction.Direction, greedy bool) (int, bool) {
	s := FindSweepEdges(lat, syndrome, v, d)

	switch len(s) {
	case 0:
		return 0, false
	case 1:
		if greedy && !CheckExtremalVertex(lat, syndrome, v, d) {
			return 0, false
		}
		w, ok := realPartner(s[0])
		if !ok {
			return 0, false
		}
		q, err := lat.FaceQubit(v, s[0], w)
		if err != nil {
			return 0, false
		}
		return q, true
	case 2:
		q, err := lat.FaceQubit(v, s[0], s[1])
		if err != nil {
			return 0, false
		}
		return q, true
	default:
		return 0, false
	}
}
