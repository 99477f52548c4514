package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// LoadOBJ reads the OBJ subset spec §6 names: `v x y z` vertices and
// `f v1[/vt1] v2[/vt2] ...` polygons, fan-triangulated. `/vt` and
// `/vn` fields are parsed past but discarded — this engine carries no
// texture/normal data. Any other line is skipped. Grounded on the
// teacher's obj_loader.go (bufio.Scanner line loop, strings.Fields
// tokenizing, parseFaceVertex slash-splitting), with the
// material/texture branches removed since spec's non-goals exclude
// texture/UV/normal preservation.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot open %s: %v", ErrInputMalformed, path, err)
	}
	defer file.Close()

	var positions []Vec3
	type rawFace struct{ vs []int }
	var faces []rawFace

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "v":
			if len(parts) < 4 {
				return nil, fmt.Errorf("%w: line %d: invalid vertex definition", ErrInputMalformed, lineNum)
			}
			x, err1 := strconv.ParseFloat(parts[1], 64)
			y, err2 := strconv.ParseFloat(parts[2], 64)
			z, err3 := strconv.ParseFloat(parts[3], 64)
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("%w: line %d: non-numeric vertex coordinate", ErrInputMalformed, lineNum)
			}
			positions = append(positions, NewVec3(x, y, z))

		case "f":
			if len(parts) < 4 {
				return nil, fmt.Errorf("%w: line %d: face must have at least 3 vertices", ErrInputMalformed, lineNum)
			}
			vs := make([]int, 0, len(parts)-1)
			for i := 1; i < len(parts); i++ {
				idx, err := parseFaceVertex(parts[i])
				if err != nil {
					return nil, fmt.Errorf("%w: line %d: %v", ErrInputMalformed, lineNum, err)
				}
				if idx < 1 || idx > len(positions) {
					return nil, fmt.Errorf("%w: line %d: vertex index %d out of range", ErrInputMalformed, lineNum, idx)
				}
				vs = append(vs, idx-1)
			}
			faces = append(faces, rawFace{vs: vs})

		default:
			continue
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("%w: no vertices found", ErrInputMalformed)
	}

	m := NewMesh(len(positions))
	for _, p := range positions {
		m.AddVertex(p)
	}
	for _, f := range faces {
		for i := 1; i < len(f.vs)-1; i++ {
			m.AddFace(f.vs[0], f.vs[i], f.vs[i+1])
		}
	}
	return m, nil
}

// parseFaceVertex extracts the leading vertex index from a face-vertex
// token of the form v, v/vt, v/vt/vn, or v//vn, discarding everything
// after the first slash.
func parseFaceVertex(s string) (int, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q", s)
	}
	return idx, nil
}

// DumpOBJ writes the surviving mesh to path at the given significant-
// digit precision. A vertex is useful (and gets a line) iff it is its
// own representative and incident to at least one surviving face, per
// original_source/mesh.cpp's Point::useful(); vertices are numbered in
// original insertion order. Faces are emitted once their representative
// triple is distinct and not already emitted, deduplicated by sorted
// triple, per spec §6.
func DumpOBJ(path string, m *Mesh, precision int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: cannot create %s: %v", ErrIOFailure, path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	defer w.Flush()

	repr := make([]int, len(m.Vertices))
	useful := make([]bool, len(m.Vertices))
	type triple [3]int
	emitted := make(map[triple]bool)
	var liveFaces []Face

	for i := range m.Vertices {
		repr[i] = m.repr(i)
	}
	for _, f := range m.Faces {
		r0, r1, r2 := repr[f.V0], repr[f.V1], repr[f.V2]
		if r0 == r1 || r1 == r2 || r2 == r0 {
			continue
		}
		t := sortedTriple(r0, r1, r2)
		if emitted[t] {
			continue
		}
		emitted[t] = true
		useful[r0], useful[r1], useful[r2] = true, true, true
		liveFaces = append(liveFaces, Face{V0: r0, V1: r1, V2: r2})
	}

	number := make([]int, len(m.Vertices))
	n := 0
	for i := range m.Vertices {
		if !useful[i] {
			continue
		}
		n++
		number[i] = n
		x, y, z := m.Vertices[i].Position.X(), m.Vertices[i].Position.Y(), m.Vertices[i].Position.Z()
		if _, err := fmt.Fprintf(w, "v %s %s %s\n",
			formatFloat(x, precision), formatFloat(y, precision), formatFloat(z, precision)); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}
	for _, f := range liveFaces {
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", number[f.V0], number[f.V1], number[f.V2]); err != nil {
			return fmt.Errorf("%w: %v", ErrIOFailure, err)
		}
	}

	log.Debug().Str("path", path).Int("vertices", n).Int("faces", len(liveFaces)).Msg("wrote mesh")
	return nil
}

func sortedTriple(a, b, c int) [3]int {
	t := [3]int{a, b, c}
	sort.Ints(t[:])
	return t
}

// formatFloat renders x with precision significant decimal digits,
// the Go analogue of original_source/mesh.cpp's std::setprecision.
func formatFloat(x float64, precision int) string {
	return strconv.FormatFloat(x, 'g', precision, 64)
}
