package main

// Pair is a candidate contraction between two distinct vertex
// representatives. index is the back-pointer container/heap needs to
// do O(log n) erase/update on an already-heapified item — the
// authoritative "where am I in the heap" field spec §3 requires.
type Pair struct {
	A, B  int // vertex indices (not necessarily representatives once stale)
	Opt   Vec3
	Error float64
	Valid bool
	index int
}

// newPair constructs a Pair between vertices a and b of mesh m,
// registers it on both endpoints' incidence lists, and computes its
// initial (opt, error) via computeOptimal. Grounded on
// original_source/mesh.cpp's Pair::Pair constructor.
func newPair(m *Mesh, a, b int) *Pair {
	p := &Pair{A: a, B: b, Valid: true}
	va, vb := m.Vertex(a), m.Vertex(b)
	va.appendPair(p)
	vb.appendPair(p)
	p.Opt, p.Error = computeOptimal(va.Position, vb.Position, va.Quadric.Add(vb.Quadric))
	return p
}

// computeOptimal solves for the position minimizing Q over all of
// space given endpoints v1, v2 and their summed quadric Q, per spec
// §4.D. Ported from original_source/
// mesh.cpp's compute_optimal: primary path inverts the quadric's
// augmented 4x4 matrix and reads off its last column; on inversion
// failure, falls back to the best of {v1, v2, midpoint} with the
// exact tie-break tree the spec names (strict '<', v1 before mid,
// v2 before mid).
func computeOptimal(v1, v2 Vec3, q Quadric) (Vec3, float64) {
	if inv, ok := q.AsMatrix4().Invert(); ok {
		opt := inv.Col3(3)
		return opt, q.Eval(opt)
	}

	mid := Midpoint(v1, v2)
	e1, e2, eMid := q.Eval(v1), q.Eval(v2), q.Eval(mid)
	if e1 < e2 {
		if e1 < eMid {
			return v1, e1
		}
		return mid, eMid
	}
	if e2 < eMid {
		return v2, e2
	}
	return mid, eMid
}

// UpdateVertex replaces endpoint x with y wherever this pair
// references it, and recomputes (opt, error) from the new endpoints'
// combined quadric. If the pair has collapsed onto a single vertex
// (y == the pair's other endpoint), it is invalidated and erased from
// h instead. Ported from original_source/mesh.cpp's
// Pair::updateVertex.
func (p *Pair) UpdateVertex(m *Mesh, x, y int, h *PairHeap) {
	if p.A == x {
		p.A = y
	}
	if p.B == x {
		p.B = y
	}
	if p.A == p.B {
		p.Valid = false
		h.Erase(p)
		return
	}
	va, vb := m.Vertex(p.A), m.Vertex(p.B)
	p.Opt, p.Error = computeOptimal(va.Position, vb.Position, va.Quadric.Add(vb.Quadric))
	h.Update(p)
}
