// Package lattice builds the four vertex/edge/face index tables the sweep
// engine walks: rhombic and cubic lattices, each in a toric (periodic) and
// a bounded (open-boundary) variant. Every query (VertexKindOf, EdgeIndex,
// Neighbor, FaceQubit, FaceVertices) is a precomputed array or map lookup
// populated once at construction, baking coordinate arithmetic into flat
// index tables up front rather than recomputing geometry on every call.
package lattice

import "github.com/sweeplattice/sweepdecoder/direction"

// Variant identifies one of the four lattice families.
type Variant uint8

const (
	RhombicToric Variant = iota
	RhombicBounded
	CubicToric
	CubicBounded
)

// String returns the variant's canonical name.
func (v Variant) String() string {
	switch v {
	case RhombicToric:
		return "rhombic_toric"
	case RhombicBounded:
		return "rhombic_boundaries"
	case CubicToric:
		return "cubic_toric"
	case CubicBounded:
		return "cubic_boundaries"
	default:
		return "unknown_variant"
	}
}

// VertexKind classifies a vertex by its local edge structure. Full
// vertices carry all eight directions; half vertices carry four, and come
// in two checkerboard-distinguished kinds specific to the rhombic family.
type VertexKind uint8

const (
	FullVertex VertexKind = iota
	HalfVertexType1
	HalfVertexType2
)

func (k VertexKind) String() string {
	switch k {
	case FullVertex:
		return "full"
	case HalfVertexType1:
		return "half_type1"
	case HalfVertexType2:
		return "half_type2"
	default:
		return "unknown_kind"
	}
}

// none marks an absent edge or neighbor (boundary of a bounded lattice, or
// a direction a half vertex doesn't admit).
const none = -1

// edgePair is an unordered, canonicalized pair of directions keyed on a
// vertex; it is the map key face lookups and face discovery use.
type edgePair struct {
	v      int
	d1, d2 direction.Direction
}

func makePair(v int, d1, d2 direction.Direction) edgePair {
	if d1 > d2 {
		d1, d2 = d2, d1
	}
	return edgePair{v: v, d1: d1, d2: d2}
}

// Lattice is a fully precomputed vertex/edge/face index table for one
// variant at one size L.
type Lattice struct {
	variant Variant
	l       int

	vertexCount int
	edgeCount   int
	faceCount   int

	kind   []VertexKind
	coord  [][3]int // (x, y, z) per vertex, for debugging and VertexCoord
	edges  [][8]int // edges[v][d] = edge id or none
	neighb [][8]int // neighb[v][d] = vertex id or none

	faceQubit map[edgePair]int
	edgeFaces [][]int // edge id -> incident qubit ids
	logicalZ  [][]int
}

// L returns the lattice's linear size.
func (lat *Lattice) L() int { return lat.l }

// Variant returns the lattice's variant.
func (lat *Lattice) Variant() Variant { return lat.variant }

// VertexCount returns the total number of vertices.
func (lat *Lattice) VertexCount() int { return lat.vertexCount }

// EdgeCount returns the total number of edges (the qubit-free syndrome
// bits; the size of the syndrome bitset).
func (lat *Lattice) EdgeCount() int { return lat.edgeCount }

// FaceCount returns the total number of faces (the size of the error and
// correction bitsets — one qubit per rhombic face).
func (lat *Lattice) FaceCount() int { return lat.faceCount }

// EdgeFaces returns the qubit ids of every face incident to edge e. An
// interior edge is shared by multiple rhombic faces; a boundary edge on a
// bounded lattice may belong to just one.
func (lat *Lattice) EdgeFaces(e int) []int { return lat.edgeFaces[e] }

// VertexKindOf reports v's kind.
func (lat *Lattice) VertexKindOf(v int) VertexKind { return lat.kind[v] }

// VertexCoord returns v's (x, y, z) grid coordinate.
func (lat *Lattice) VertexCoord(v int) [3]int { return lat.coord[v] }

// EdgeIndex returns the edge id for the edge leaving v in direction d, or
// (0, false) if v has no edge in that direction.
func (lat *Lattice) EdgeIndex(v int, d direction.Direction) (int, bool) {
	e := lat.edges[v][d]
	if e == none {
		return 0, false
	}
	return e, true
}

// Neighbor returns the vertex reached from v by the edge in direction d,
// or (0, false) if that edge doesn't exist.
func (lat *Lattice) Neighbor(v int, d direction.Direction) (int, bool) {
	n := lat.neighb[v][d]
	if n == none {
		return 0, false
	}
	return n, true
}

// FaceQubit returns the qubit id of the rhombic face spanned by directions
// d1 and d2 at vertex v, or ErrInvalidDirections if v is not a corner of
// such a face (d1 and d2 are equal or opposite, or no face with those two
// edges at v was registered during construction). A face answers to every
// one of its corners, each with the two edge directions leaving that
// corner.
func (lat *Lattice) FaceQubit(v int, d1, d2 direction.Direction) (int, error) {
	if d1 == d2 || d1 == d2.Opposite() {
		return 0, ErrInvalidDirections
	}
	q, ok := lat.faceQubit[makePair(v, d1, d2)]
	if !ok {
		return 0, ErrInvalidDirections
	}
	return q, nil
}

// FaceVertices returns the (up to) four vertices bounding the rhombic face
// spanned by directions d1 and d2 at vertex v: v itself, its two direct
// neighbors along d1 and d2, and the vertex diagonally opposite v on the
// face. A bounded lattice may clip the far corner; callers should check
// the returned count.
func (lat *Lattice) FaceVertices(v int, d1, d2 direction.Direction) ([4]int, int, error) {
	if _, err := lat.FaceQubit(v, d1, d2); err != nil {
		return [4]int{}, 0, err
	}
	out := [4]int{v, 0, 0, 0}
	n := 1
	v1, ok1 := lat.Neighbor(v, d1)
	v2, ok2 := lat.Neighbor(v, d2)
	if ok1 {
		out[n] = v1
		n++
	}
	if ok2 {
		out[n] = v2
		n++
	}
	if ok1 {
		if v3, ok3 := lat.Neighbor(v1, d2); ok3 {
			out[n] = v3
			n++
		}
	}
	return out, n, nil
}

// LogicalZ returns the k-th logical operator's qubit support (k in
// [0, LogicalZCount()), toric variants expose 3, bounded variants 1).
func (lat *Lattice) LogicalZ(k int) []int {
	return lat.logicalZ[k]
}

// LogicalZCount returns how many independent logical operators this
// lattice exposes.
func (lat *Lattice) LogicalZCount() int { return len(lat.logicalZ) }
