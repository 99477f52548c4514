package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeOptimalInvertiblePrefersMinimum(t *testing.T) {
	// Three orthogonal planes (x=1, y=1, z=0) meet in the single point
	// (1,1,0), which the inversion path returns with zero error; here
	// it coincides with the midpoint of v1 and v2.
	q := planeQuadric(1, 0, 0, -1).Add(planeQuadric(0, 1, 0, -1)).Add(planeQuadric(0, 0, 1, 0))
	v1 := NewVec3(0, 0, 0)
	v2 := NewVec3(2, 2, 0)
	opt, errVal := computeOptimal(v1, v2, q)
	assert.InDelta(t, 1.0, opt.X(), 1e-9)
	assert.InDelta(t, 1.0, opt.Y(), 1e-9)
	assert.InDelta(t, 0.0, opt.Z(), 1e-9)
	assert.InDelta(t, 0.0, errVal, 1e-9)
}

func TestComputeOptimalSingularFallsBackToBestCandidate(t *testing.T) {
	var q Quadric // zero quadric: singular matrix, every point has error 0
	v1 := NewVec3(0, 0, 0)
	v2 := NewVec3(4, 0, 0)
	opt, errVal := computeOptimal(v1, v2, q)
	assert.InDelta(t, 0.0, errVal, 1e-12)
	// all three candidates tie at error 0; the tie-break tree falls
	// through to the midpoint whenever neither v1 nor v2 is strictly better.
	assert.Equal(t, Midpoint(v1, v2), opt)
}

func TestNewPairRegistersOnBothIncidenceLists(t *testing.T) {
	m := NewMesh(2)
	a := m.AddVertex(NewVec3(0, 0, 0))
	b := m.AddVertex(NewVec3(1, 0, 0))
	p := newPair(m, a, b)

	require.NotNil(t, m.Vertex(a).incHead)
	require.NotNil(t, m.Vertex(b).incHead)
	assert.Same(t, p, m.Vertex(a).incHead.pair)
	assert.Same(t, p, m.Vertex(b).incHead.pair)
	assert.True(t, p.Valid)
}

func TestUpdateVertexInvalidatesSelfLoop(t *testing.T) {
	m := NewMesh(3)
	a := m.AddVertex(NewVec3(0, 0, 0))
	b := m.AddVertex(NewVec3(1, 0, 0))
	c := m.AddVertex(NewVec3(0, 1, 0))

	p := newPair(m, a, b)
	other := newPair(m, b, c)
	h := NewPairHeap([]*Pair{p, other})

	// Replacing b with a collapses {a,b} onto {a,a}.
	p.UpdateVertex(m, b, a, h)
	assert.False(t, p.Valid)
	assert.Equal(t, 1, h.Len())
}

func TestUpdateVertexRecomputesOnRewire(t *testing.T) {
	m := NewMesh(3)
	a := m.AddVertex(NewVec3(0, 0, 0))
	b := m.AddVertex(NewVec3(1, 0, 0))
	c := m.AddVertex(NewVec3(5, 0, 0))

	p := newPair(m, a, b)
	h := NewPairHeap([]*Pair{p})

	p.UpdateVertex(m, b, c, h)
	assert.True(t, p.Valid)
	assert.Equal(t, c, p.B)
	assert.InDelta(t, 2.5, p.Opt.X(), 1e-9)
}
