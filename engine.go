package main

import (
	"sort"

	"github.com/rs/zerolog/log"
)

// pairKey is a normalized (min,max) vertex-index key used to
// deduplicate candidate pairs, both at initial seeding and when
// detecting duplicate edges produced by a merge.
type pairKey struct{ lo, hi int }

func normKey(a, b int) pairKey {
	if a < b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// Config carries the engine's tunable parameters, assembled by main
// from flag-parsed CLI arguments. Grounded on the teacher's plain-
// struct EngineConfig pattern (no config-file layer; spec §6's CLI
// surface is the only configuration source).
type Config struct {
	Ratios       []float64
	Epsilon      float64
	Precision    int
	OutputPrefix string
}

// buildQuadrics accumulates each face's plane quadric onto its three
// vertices. Ported from original_source/mesh.cpp's Face constructor:
// compute the (compensated) cross product of two edge vectors,
// normalize, and skip the face with a Warn log (spec §7
// DegenerateFace) if any component of the result is not a finite
// normal number. A zero component counts as degenerate, so a face
// whose normal lies in a coordinate plane also contributes nothing.
func buildQuadrics(m *Mesh) {
	for _, f := range m.Faces {
		p1, p2, p3 := m.Vertex(f.V0).Position, m.Vertex(f.V1).Position, m.Vertex(f.V2).Position
		norm := Normalized(Cross(p2.Sub(p1), p3.Sub(p1)))
		if !isFiniteNormal(norm.X()) || !isFiniteNormal(norm.Y()) || !isFiniteNormal(norm.Z()) {
			log.Warn().Ints("face", []int{f.V0, f.V1, f.V2}).Msg("degenerate face, contributes no quadric")
			continue
		}
		a, b, c := norm.X(), norm.Y(), norm.Z()
		d := -Dot(p1, norm)
		kp := planeQuadric(a, b, c, d)
		m.Vertex(f.V0).Quadric = m.Vertex(f.V0).Quadric.Add(kp)
		m.Vertex(f.V1).Quadric = m.Vertex(f.V1).Quadric.Add(kp)
		m.Vertex(f.V2).Quadric = m.Vertex(f.V2).Quadric.Add(kp)
	}
}

// buildInitialPairs seeds the deduplicated candidate-pair set from
// topological edges and, if epsilon > 0, proximity pairs found via a
// KD-tree radius search, per spec §4.G step 2.
func buildInitialPairs(m *Mesh, epsilon float64) []*Pair {
	selected := make(map[pairKey]bool)
	var pairs []*Pair

	addPair := func(a, b int) {
		if a == b {
			return
		}
		k := normKey(a, b)
		if selected[k] {
			return
		}
		selected[k] = true
		pairs = append(pairs, newPair(m, a, b))
	}

	for _, f := range m.Faces {
		addPair(f.V0, f.V1)
		addPair(f.V1, f.V2)
		addPair(f.V2, f.V0)
	}

	if epsilon > 0 {
		pts := make([]kdPoint, len(m.Vertices))
		for i := range m.Vertices {
			pts[i] = kdPoint{pos: m.Vertices[i].Position, idx: i}
		}
		tree := BuildKDTree(pts)
		for i := range m.Vertices {
			for _, j := range tree.RadiusSearch(m.Vertices[i].Position, epsilon) {
				addPair(i, j)
			}
		}
	}

	return pairs
}

// merge folds loser into survivor: position/quadric update, union-find,
// incidence-list splice, and incident-pair fix-up with duplicate
// detection. Ported from original_source/mesh.cpp's Point::merge,
// minus its face-relinking loop (Face has no back-pointer to update
// here; dump-time dedup/degeneracy checks read through repr instead).
func merge(m *Mesh, survivor, loser int, pos Vec3, h *PairHeap) {
	sv, lv := m.Vertex(survivor), m.Vertex(loser)
	sv.Position = pos
	sv.Quadric = sv.Quadric.Add(lv.Quadric)

	m.mergeInto(survivor, loser)
	sv.spliceIncidenceFrom(lv)

	changed := make(map[pairKey]bool)
	for n := sv.incHead; n != nil; n = n.next {
		p := n.pair
		if !p.Valid {
			continue
		}
		p.UpdateVertex(m, loser, survivor, h)
		if !p.Valid {
			continue
		}
		k := normKey(p.A, p.B)
		if changed[k] {
			p.Valid = false
			h.Erase(p)
		} else {
			changed[k] = true
		}
	}
}

// Simplify runs the contraction engine over mesh m for every ratio in
// cfg.Ratios (processed largest-first per spec §4.G), invoking emit
// once per ratio with the mesh at that point. m is mutated in place;
// emit must not retain Mesh pointers across calls if it intends to
// snapshot, since later ratios keep contracting the same mesh.
func Simplify(m *Mesh, cfg Config, emit func(ratio float64, m *Mesh) error) error {
	buildQuadrics(m)
	pairs := buildInitialPairs(m, cfg.Epsilon)
	h := NewPairHeap(pairs)

	initial := len(m.Vertices)
	survivors := initial

	ratios := append([]float64(nil), cfg.Ratios...)
	sort.Sort(sort.Reverse(sort.Float64Slice(ratios)))

	for _, r := range ratios {
		target := int(float64(initial) * r)
		for survivors > target {
			if h.Len() == 0 {
				log.Debug().Int("survivors", survivors).Msg("heap exhausted before reaching target ratio")
				break
			}
			p := h.Top()
			if !p.Valid {
				h.Erase(p)
				continue
			}
			merge(m, p.A, p.B, p.Opt, h)
			survivors--
		}
		log.Info().Float64("ratio", r).Int("survivors", survivors).Msg("ratio reached")
		if err := emit(r, m); err != nil {
			return err
		}
	}
	return nil
}
