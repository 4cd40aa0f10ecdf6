package lattice

import "github.com/sweeplattice/sweepdecoder/direction"

// NewRhombicToric builds the periodic rhombic lattice of linear size L:
// L³ full vertices (eight edges each, four to other full vertices and
// four to half vertices) plus L³ half vertices (four edges each, all to
// full vertices), split by checkerboard parity into L³/2 of each half
// kind. Every full vertex uses the same four directions to reach a half
// vertex and the same four to reach another full vertex — see
// halfBoundDirs/skeletonBoundDirs and halfDirs in geometry.go. A half
// vertex's checkerboard kind (HalfVertexType1 vs HalfVertexType2) tracks
// which coordinate parity it sits at; it does not change which four
// directions it admits a real edge along.
func NewRhombicToric(l int) (*Lattice, error) {
	return buildRhombic(l, true)
}

// NewRhombicBounded builds the open-boundary rhombic lattice of linear
// size L: the same vertex layout as NewRhombicToric, but edges that would
// cross a face of the L×L×L box are simply absent instead of wrapping.
func NewRhombicBounded(l int) (*Lattice, error) {
	return buildRhombic(l, false)
}

// NewCubicToric builds the periodic cubic lattice of linear size L: L³
// vertices, each with all eight directions connecting directly to another
// vertex (no half vertices — every vertex is a FullVertex).
func NewCubicToric(l int) (*Lattice, error) {
	return buildCubic(l, true)
}

// NewCubicBounded builds the open-boundary cubic lattice of linear size L.
func NewCubicBounded(l int) (*Lattice, error) {
	return buildCubic(l, false)
}

func validateSize(l int) error {
	if l < 4 || l%2 != 0 {
		return ErrInvalidSize
	}
	return nil
}

func buildCubic(l int, toric bool) (*Lattice, error) {
	if err := validateSize(l); err != nil {
		return nil, err
	}
	n := l * l * l
	lat := &Lattice{
		l:           l,
		vertexCount: n,
		kind:        make([]VertexKind, n),
		coord:       make([][3]int, n),
		edges:       make([][8]int, n),
		neighb:      make([][8]int, n),
		faceQubit:   map[edgePair]int{},
	}
	if toric {
		lat.variant = CubicToric
	} else {
		lat.variant = CubicBounded
	}
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				v := coordIndex(x, y, z, l)
				lat.coord[v] = [3]int{x, y, z}
				lat.kind[v] = FullVertex
				for i := range lat.edges[v] {
					lat.edges[v][i] = none
					lat.neighb[v][i] = none
				}
			}
		}
	}

	edgeID := 0
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				v := coordIndex(x, y, z, l)
				for _, d := range direction.All() {
					if lat.edges[v][d] != none {
						continue // already assigned from the opposite endpoint
					}
					nx, ny, nz, ok := step(x, y, z, l, d, toric)
					if !ok {
						continue
					}
					w := coordIndex(nx, ny, nz, l)
					lat.edges[v][d] = edgeID
					lat.neighb[v][d] = w
					lat.edges[w][d.Opposite()] = edgeID
					lat.neighb[w][d.Opposite()] = v
					edgeID++
				}
			}
		}
	}
	lat.edgeCount = edgeID
	lat.edgeFaces = make([][]int, edgeID)

	discoverFaces(lat)
	lat.logicalZ = buildLogicals(lat, toric)
	return lat, nil
}

func buildRhombic(l int, toric bool) (*Lattice, error) {
	if err := validateSize(l); err != nil {
		return nil, err
	}
	full := l * l * l
	n := 2 * full
	lat := &Lattice{
		l:           l,
		vertexCount: n,
		kind:        make([]VertexKind, n),
		coord:       make([][3]int, n),
		edges:       make([][8]int, n),
		neighb:      make([][8]int, n),
		faceQubit:   map[edgePair]int{},
	}
	if toric {
		lat.variant = RhombicToric
	} else {
		lat.variant = RhombicBounded
	}

	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				fv := coordIndex(x, y, z, l)
				lat.coord[fv] = [3]int{x, y, z}
				lat.kind[fv] = FullVertex

				hv := full + coordIndex(x, y, z, l)
				lat.coord[hv] = [3]int{x, y, z}
				if (x+y+z)%2 == 0 {
					lat.kind[hv] = HalfVertexType2
				} else {
					lat.kind[hv] = HalfVertexType1
				}

				for i := range lat.edges[fv] {
					lat.edges[fv][i] = none
					lat.neighb[fv][i] = none
					lat.edges[hv][i] = none
					lat.neighb[hv][i] = none
				}
			}
		}
	}

	edgeID := 0
	// Full-full skeleton edges: skeletonBoundDirs is the same four
	// directions for every full vertex and is closed under Opposite, so
	// two full vertices joined by such an edge always agree on using it.
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				v := coordIndex(x, y, z, l)
				for _, d := range skeletonBoundDirs() {
					if lat.edges[v][d] != none {
						continue
					}
					nx, ny, nz, ok := step(x, y, z, l, d, toric)
					if !ok {
						continue
					}
					w := coordIndex(nx, ny, nz, l)
					lat.edges[v][d] = edgeID
					lat.neighb[v][d] = w
					lat.edges[w][d.Opposite()] = edgeID
					lat.neighb[w][d.Opposite()] = v
					edgeID++
				}
			}
		}
	}
	// Full-half edges: walk from the full side, direction in the
	// (parity-independent) half-bound set. Whichever half vertex is at
	// the far end, it admits d.Opposite() — halfBoundDirs is the full set
	// every half vertex carries, regardless of kind.
	for x := 0; x < l; x++ {
		for y := 0; y < l; y++ {
			for z := 0; z < l; z++ {
				fv := coordIndex(x, y, z, l)
				for _, d := range halfBoundDirs() {
					nx, ny, nz, ok := step(x, y, z, l, d, toric)
					if !ok {
						continue
					}
					hv := full + coordIndex(nx, ny, nz, l)
					lat.edges[fv][d] = edgeID
					lat.neighb[fv][d] = hv
					lat.edges[hv][d.Opposite()] = edgeID
					lat.neighb[hv][d.Opposite()] = fv
					edgeID++
				}
			}
		}
	}
	lat.edgeCount = edgeID
	lat.edgeFaces = make([][]int, edgeID)

	discoverFaces(lat)
	lat.logicalZ = buildLogicals(lat, toric)
	return lat, nil
}

// discoverFaces walks every vertex's admitted directions, records one
// qubit id per distinct face it finds via makePair, and assigns fresh
// sequential ids as new faces are discovered. A face is reachable from
// more than one of its corners, so the faceQubit map is consulted (not
// blindly overwritten) to keep a single id per face.
func discoverFaces(lat *Lattice) {
	nextID := 0
	for v := 0; v < lat.vertexCount; v++ {
		for _, d1 := range direction.All() {
			if _, ok := lat.EdgeIndex(v, d1); !ok {
				continue
			}
			for _, d2 := range direction.All() {
				if d2 <= d1 {
					continue
				}
				if _, ok := lat.EdgeIndex(v, d2); !ok {
					continue
				}
				if !isValidFacePair(d1, d2) {
					continue
				}
				key := makePair(v, d1, d2)
				if _, seen := lat.faceQubit[key]; seen {
					continue
				}
				id := nextID
				nextID++
				lat.faceQubit[key] = id
				registerFaceEdges(lat, v, d1, d2, id)
				mirrorFaceQubit(lat, v, d1, d2, id)
			}
		}
	}
	lat.faceCount = nextID
}

// registerFaceEdges records qubit id as incident to every edge bounding
// the face spanned by (v, d1, d2): the two edges leaving v, and the two
// closing edges at the face's other two corners (when they exist — a
// bounded lattice may clip the far corner).
func registerFaceEdges(lat *Lattice, v int, d1, d2 direction.Direction, id int) {
	addEdgeFace := func(e int, ok bool) {
		if !ok {
			return
		}
		for _, existing := range lat.edgeFaces[e] {
			if existing == id {
				return
			}
		}
		lat.edgeFaces[e] = append(lat.edgeFaces[e], id)
	}

	e1, ok1 := lat.EdgeIndex(v, d1)
	addEdgeFace(e1, ok1)
	e2, ok2 := lat.EdgeIndex(v, d2)
	addEdgeFace(e2, ok2)

	if v1, ok := lat.Neighbor(v, d1); ok {
		e3, ok3 := lat.EdgeIndex(v1, d2)
		addEdgeFace(e3, ok3)
	}
	if v2, ok := lat.Neighbor(v, d2); ok {
		e4, ok4 := lat.EdgeIndex(v2, d1)
		addEdgeFace(e4, ok4)
	}
}

// mirrorFaceQubit registers the same qubit id under the keys reachable
// from the face's other corners, so FaceQubit returns a consistent answer
// regardless of which corner vertex it's queried from.
func mirrorFaceQubit(lat *Lattice, v int, d1, d2 direction.Direction, id int) {
	if v1, ok := lat.Neighbor(v, d1); ok {
		key := makePair(v1, d1.Opposite(), d2)
		if _, seen := lat.faceQubit[key]; !seen {
			if _, ok2 := lat.EdgeIndex(v1, d1.Opposite()); ok2 {
				if _, ok3 := lat.EdgeIndex(v1, d2); ok3 {
					lat.faceQubit[key] = id
				}
			}
		}
		if v3, ok := lat.Neighbor(v1, d2); ok {
			key := makePair(v3, d1.Opposite(), d2.Opposite())
			if _, seen := lat.faceQubit[key]; !seen {
				if _, ok2 := lat.EdgeIndex(v3, d1.Opposite()); ok2 {
					lat.faceQubit[key] = id
				}
			}
		}
	}
	if v2, ok := lat.Neighbor(v, d2); ok {
		key := makePair(v2, d1, d2.Opposite())
		if _, seen := lat.faceQubit[key]; !seen {
			if _, ok2 := lat.EdgeIndex(v2, d2.Opposite()); ok2 {
				if _, ok3 := lat.EdgeIndex(v2, d1); ok3 {
					lat.faceQubit[key] = id
				}
			}
		}
	}
}
