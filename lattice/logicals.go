package lattice

import "github.com/sweeplattice/sweepdecoder/direction"

// axisPairs are the three UP(xyz) pairs, each picking out the face-qubit
// chain that runs along one cardinal axis through the lattice of full
// vertices: (xy, xz) along x, (xy, yz) along y, (xz, yz) along z.
var axisPairs = [3][2]direction.Direction{
	{direction.XY, direction.XZ},
	{direction.XY, direction.YZ},
	{direction.XZ, direction.YZ},
}

// buildLogicals collects one representative logical Z operator per
// independent non-contractible loop: a chain of face qubits running the
// full length of the lattice along a cardinal axis through full vertices
// at the origin's two other coordinates. Toric lattices have three such
// axes (and hence three independent logicals); bounded lattices, having no
// wraparound, expose just one.
func buildLogicals(lat *Lattice, toric bool) [][]int {
	count := 1
	if toric {
		count = 3
	}
	out := make([][]int, 0, count)
	for axis := 0; axis < count; axis++ {
		out = append(out, logicalAlongAxis(lat, axis))
	}
	return out
}

func logicalAlongAxis(lat *Lattice, axis int) []int {
	l := lat.l
	d1, d2 := axisPairs[axis][0], axisPairs[axis][1]
	qubits := make([]int, 0, l)
	seen := map[int]bool{}
	for i := 0; i < l; i++ {
		var x, y, z int
		switch axis {
		case 0:
			x, y, z = i, 0, 0
		case 1:
			x, y, z = 0, i, 0
		case 2:
			x, y, z = 0, 0, i
		}
		v := coordIndex(x, y, z, l)
		q, err := lat.FaceQubit(v, d1, d2)
		if err != nil || seen[q] {
			continue
		}
		seen[q] = true
		qubits = append(qubits, q)
	}
	return qubits
}
