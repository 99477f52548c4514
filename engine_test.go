package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func liveVertexCount(m *Mesh) int {
	n := 0
	for i := range m.Vertices {
		if !m.retired(i) {
			n++
		}
	}
	return n
}

// S1: unit tetrahedron at ratio 0.75 collapses to a triangle.
func TestSimplifyUnitTetrahedron(t *testing.T) {
	m := NewMesh(4)
	v1 := m.AddVertex(NewVec3(0, 0, 0))
	v2 := m.AddVertex(NewVec3(1, 0, 0))
	v3 := m.AddVertex(NewVec3(0, 1, 0))
	v4 := m.AddVertex(NewVec3(0, 0, 1))
	m.AddFace(v1, v2, v3)
	m.AddFace(v1, v2, v4)
	m.AddFace(v1, v3, v4)
	m.AddFace(v2, v3, v4)

	var final *Mesh
	err := Simplify(m, Config{Ratios: []float64{0.75}, Precision: 8}, func(ratio float64, mesh *Mesh) error {
		final = mesh
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, liveVertexCount(final))
}

// S3: a face with two equal vertex indices contributes no quadric.
func TestBuildQuadricsSkipsDegenerateFace(t *testing.T) {
	m := NewMesh(3)
	v1 := m.AddVertex(NewVec3(0, 0, 0))
	v2 := m.AddVertex(NewVec3(1, 0, 0))
	m.AddFace(v1, v2, v2)
	buildQuadrics(m)
	assert.Equal(t, Quadric{}, m.Vertex(v1).Quadric)
	assert.Equal(t, Quadric{}, m.Vertex(v2).Quadric)
}

// S2: two disjoint "triangles" close enough to merge via proximity pairing.
func TestSimplifyProximityPairing(t *testing.T) {
	m := NewMesh(6)
	a1 := m.AddVertex(NewVec3(0, 0, 0))
	a2 := m.AddVertex(NewVec3(1, 0, 0))
	a3 := m.AddVertex(NewVec3(0, 1, 0))
	b1 := m.AddVertex(NewVec3(0, 0, 0.01))
	b2 := m.AddVertex(NewVec3(-1, 0, 0.01))
	b3 := m.AddVertex(NewVec3(0, -1, 0.01))
	m.AddFace(a1, a2, a3)
	m.AddFace(b1, b2, b3)

	var final *Mesh
	err := Simplify(m, Config{Ratios: []float64{0.5}, Epsilon: 0.05, Precision: 8}, func(ratio float64, mesh *Mesh) error {
		final = mesh
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, liveVertexCount(final))
}

// S4: ratios processed largest-first, survivor counts non-increasing
// and bounded by ratio * initial count.
func TestSimplifyMultiRatioMonotonic(t *testing.T) {
	const n = 50
	m := NewMesh(n)
	idx := make([]int, n)
	for i := 0; i < n; i++ {
		idx[i] = m.AddVertex(NewVec3(float64(i), 0, 0))
	}
	for i := 0; i+2 < n; i++ {
		m.AddFace(idx[i], idx[i+1], idx[i+2])
	}

	var counts []int
	err := Simplify(m, Config{Ratios: []float64{0.2, 0.8, 0.5}, Precision: 8}, func(ratio float64, mesh *Mesh) error {
		counts = append(counts, liveVertexCount(mesh))
		return nil
	})
	require.NoError(t, err)
	require.Len(t, counts, 3)
	// emitted in largest-first order: 0.8, 0.5, 0.2
	assert.LessOrEqual(t, counts[0], int(0.8*n))
	assert.LessOrEqual(t, counts[1], int(0.5*n))
	assert.LessOrEqual(t, counts[2], int(0.2*n))
	assert.True(t, counts[0] >= counts[1] && counts[1] >= counts[2])
}

// Property 6: simplifying at ratio 1.0 with epsilon 0 performs no
// contractions, so a dump/reload round trip preserves vertex and
// triangle counts.
func TestSimplifyRatioOneIsRoundTripIdentity(t *testing.T) {
	m := NewMesh(4)
	v1 := m.AddVertex(NewVec3(0, 0, 0))
	v2 := m.AddVertex(NewVec3(1, 0, 0))
	v3 := m.AddVertex(NewVec3(0, 1, 0))
	v4 := m.AddVertex(NewVec3(0, 0, 1))
	m.AddFace(v1, v2, v3)
	m.AddFace(v1, v2, v4)
	m.AddFace(v1, v3, v4)
	m.AddFace(v2, v3, v4)

	outPath := t.TempDir() + "/out.obj"
	require.NoError(t, Simplify(m, Config{Ratios: []float64{1.0}, Precision: 8}, func(ratio float64, mesh *Mesh) error {
		return DumpOBJ(outPath, mesh, 8)
	}))

	reloaded, err := LoadOBJ(outPath)
	require.NoError(t, err)
	assert.Equal(t, 4, len(reloaded.Vertices))
	assert.Equal(t, 4, len(reloaded.Faces))

	// Re-simplifying the round-tripped mesh at ratio 1.0 again must
	// still perform no contractions.
	require.NoError(t, Simplify(reloaded, Config{Ratios: []float64{1.0}, Precision: 8}, func(float64, *Mesh) error { return nil }))
	assert.Equal(t, 4, liveVertexCount(reloaded))
}
