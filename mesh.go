package main

// incNode is one link in a vertex's singly-linked incidence list of
// candidate Pairs. Splicing two vertices' lists together on a merge
// only needs forward traversal and an O(1) tail concatenation — see
// Vertex.spliceIncidenceFrom — so there is no prev pointer; per spec
// §9's design note, an append-then-walk approach here would be O(n^2)
// across the whole simplification, which this avoids.
type incNode struct {
	pair *Pair
	next *incNode
}

// Vertex is a point in the mesh plus everything the simplification
// engine threads through it: its accumulated error quadric, its
// union-find parent link, and the head/tail of its incidence list of
// candidate Pairs (spec §3's "ownership handle into its set of
// incident Pairs").
type Vertex struct {
	Position Vec3
	Quadric  Quadric

	// Union-find: Parent == own index means this vertex is a
	// representative (root); any other value means it has been
	// merged away and is retired. Rank is updated by mergeInto but
	// does not decide which root survives.
	Parent int
	Rank   int

	index int // this vertex's own index into Mesh.Vertices

	incHead, incTail *incNode
}

// appendPair registers p on v's incidence list in O(1).
func (v *Vertex) appendPair(p *Pair) {
	n := &incNode{pair: p}
	if v.incHead == nil {
		v.incHead = n
	} else {
		v.incTail.next = n
	}
	v.incTail = n
}

// spliceIncidenceFrom concatenates other's incidence list onto v's in
// O(1), per spec §4.G step 3 of vertex merge ("splice b's pair-
// incidence list onto a's").
func (v *Vertex) spliceIncidenceFrom(other *Vertex) {
	if other.incHead == nil {
		return
	}
	if v.incHead == nil {
		v.incHead = other.incHead
	} else {
		v.incTail.next = other.incHead
	}
	v.incTail = other.incTail
	other.incHead, other.incTail = nil, nil
}

// Face is an ordered triple of vertex indices into a Mesh, fixed at
// load time. Faces are never deleted; which of their three vertices
// are still distinct representatives is only resolved at dump time.
type Face struct {
	V0, V1, V2 int
}

// Mesh is the append-only vertex arena plus face list the
// simplification engine operates on. Vertex storage is reserved up
// front (see NewMesh) so that Face indices, and any *Vertex taken
// during construction, stay valid for the mesh's whole lifetime —
// spec §4.B forbids vertex-storage reallocation once faces reference
// it.
type Mesh struct {
	Vertices []Vertex
	Faces    []Face
}

// NewMesh allocates a mesh with vertex storage reserved for
// vertexCapacity vertices.
func NewMesh(vertexCapacity int) *Mesh {
	return &Mesh{
		Vertices: make([]Vertex, 0, vertexCapacity),
	}
}

// AddVertex appends a new vertex at position p and returns its index.
// Reallocation here would invalidate every *Vertex already handed out,
// so callers must size the mesh's capacity up front via NewMesh.
func (m *Mesh) AddVertex(p Vec3) int {
	if len(m.Vertices) == cap(m.Vertices) {
		panic("mesh: vertex storage would reallocate; NewMesh was not sized for this many vertices")
	}
	idx := len(m.Vertices)
	m.Vertices = append(m.Vertices, Vertex{Position: p, index: idx, Parent: idx})
	return idx
}

// AddFace appends a triangle referencing three vertex indices.
func (m *Mesh) AddFace(v0, v1, v2 int) {
	m.Faces = append(m.Faces, Face{V0: v0, V1: v1, V2: v2})
}

// Vertex returns a pointer to vertex i. Stable for the mesh's lifetime.
func (m *Mesh) Vertex(i int) *Vertex {
	return &m.Vertices[i]
}
