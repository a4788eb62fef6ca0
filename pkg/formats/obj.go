package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/softraster/pkg/math"
)

// OBJ format errors.
var (
	ErrMeshIO           = errors.New("mesh i/o failure")
	ErrMalformedVertex  = errors.New("malformed vertex")
	ErrInvalidFaceIndex = errors.New("invalid face index")
	ErrDegenerateFace   = errors.New("face has fewer than 3 vertices")
	ErrEmptyMesh        = errors.New("mesh has no vertices or no faces")
)

// ParseError describes a failed mesh load. Kind is one of the OBJ format
// errors above; Cause holds the underlying error, if any.
type ParseError struct {
	Path  string
	Line  int // 1-based, 0 when the error is not tied to a line
	Kind  error
	Cause error
}

// Error implements error.
func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	b.WriteString(e.Kind.Error())
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Triangle holds three 0-based indices into Mesh.Vertices.
type Triangle [3]int

// Mesh is an indexed triangle mesh. Both slices are non-empty and every
// index in Faces is less than len(Vertices). A Mesh is read-only after load.
type Mesh struct {
	Vertices []math.Vec3
	Faces    []Triangle
}

// Bounds returns the axis-aligned bounding box of the vertices.
func (m *Mesh) Bounds() math.AABB {
	return math.BoundsOf(m.Vertices)
}

// LoadOBJ reads and parses a mesh file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Kind: ErrMeshIO, Cause: err}
	}
	defer f.Close()

	m, err := ParseOBJ(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return m, nil
}

// ParseOBJ parses the v/f subset of the Wavefront OBJ format.
//
// Only the position sub-field of each face token is used. Polygons with more
// than three corners are fan-triangulated around their first corner, which is
// only correct for convex planar polygons.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, &ParseError{Line: lineNo, Kind: ErrMalformedVertex, Cause: err}
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			idx, err := parseFaceIndices(fields[1:], len(m.Vertices))
			if err != nil {
				return nil, &ParseError{Line: lineNo, Kind: ErrInvalidFaceIndex, Cause: err}
			}
			if len(idx) < 3 {
				return nil, &ParseError{
					Line:  lineNo,
					Kind:  ErrDegenerateFace,
					Cause: fmt.Errorf("got %d indices", len(idx)),
				}
			}
			m.Faces = appendFan(m.Faces, idx)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Line: lineNo, Kind: ErrMeshIO, Cause: err}
	}

	if len(m.Vertices) == 0 || len(m.Faces) == 0 {
		return nil, &ParseError{
			Kind:  ErrEmptyMesh,
			Cause: fmt.Errorf("%d vertices, %d faces", len(m.Vertices), len(m.Faces)),
		}
	}
	return m, nil
}

func parseVertex(tokens []string) (math.Vec3, error) {
	if len(tokens) < 3 {
		return math.Vec3{}, fmt.Errorf("expected 3 coordinates, got %d", len(tokens))
	}
	var xyz [3]float32
	for i := range xyz {
		f, err := strconv.ParseFloat(tokens[i], 32)
		if err != nil {
			return math.Vec3{}, err
		}
		xyz[i] = float32(f)
	}
	return math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}

// parseFaceIndices resolves face tokens against the n vertices seen so far.
func parseFaceIndices(tokens []string, n int) ([]int, error) {
	idx := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		pos, _, _ := strings.Cut(tok, "/")
		k, err := strconv.Atoi(pos)
		if err != nil {
			return nil, fmt.Errorf("token %q: %w", tok, err)
		}

		i := k - 1
		if k < 0 {
			i = n + k
		}
		if k == 0 || i < 0 || i >= n {
			return nil, fmt.Errorf("token %q: index out of range with %d vertices", tok, n)
		}
		idx = append(idx, i)
	}
	return idx, nil
}

// appendFan emits (i0, it, it+1) for every t in 1..len(idx)-2.
func appendFan(faces []Triangle, idx []int) []Triangle {
	for t := 1; t+1 < len(idx); t++ {
		faces = append(faces, Triangle{idx[0], idx[t], idx[t+1]})
	}
	return faces
}
