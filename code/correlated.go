package code

import "github.com/sweeplattice/sweepdecoder/lattice"

// BuildCorrelatedIndices returns the qubit-id pairs a correlated data-error
// pass additionally flips together: for every edge shared by two or more
// rhombic faces, every distinct pair of qubits on that edge is paired
// exactly once. It is a pure, deterministic function of the lattice, as
// spec.md §4.2 requires of the correlation callback — the same lattice
// always yields the same pairing, independent of any trial's state.
func BuildCorrelatedIndices(lat *lattice.Lattice) [][2]int {
	seen := map[[2]int]bool{}
	var out [][2]int
	for e := 0; e < lat.EdgeCount(); e++ {
		faces := lat.EdgeFaces(e)
		for i := 0; i < len(faces); i++ {
			for j := i + 1; j < len(faces); j++ {
				a, b := faces[i], faces[j]
				if a > b {
					a, b = b, a
				}
				key := [2]int{a, b}
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}
