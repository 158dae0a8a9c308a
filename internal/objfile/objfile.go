// Package objfile parses a Wavefront-OBJ-flavored text mesh format into
// vertices, normals, and named groups of triangles, following the loader
// style of gazed-vu/load.Obj but restricted to the subset this ray tracer
// understands: v, vn, f (plain or v/t/n with fan triangulation), and g.
package objfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
	"github.com/ashcolecarr/go-raytracer/internal/shape"
)

// ErrVertexOutOfRange is wrapped into the error returned by resolving a face
// record whose vertex or normal index falls outside the parsed table. Parse
// itself never returns this error: per the ParseIgnored policy, such a face
// record is silently skipped and counted in Result.Ignored.
var ErrVertexOutOfRange = errors.New("objfile: vertex or normal index out of range")

// Result is everything Parse recovers from an OBJ stream: the 1-indexed
// vertex and normal tables (index 0 is an unused placeholder, so table
// indices line up with OBJ's 1-based face references), one Group per `g`
// directive (plus an initial default group for faces preceding any `g`),
// and a count of lines that could not be interpreted.
type Result struct {
	Vertices []prim.Tuple
	Normals  []prim.Tuple
	Groups   []*shape.Shape
	Ignored  int
}

// Parse reads r as an OBJ-flavored mesh description.
func Parse(r io.Reader) (*Result, error) {
	res := &Result{
		Vertices: []prim.Tuple{{}},
		Normals:  []prim.Tuple{{}},
		Groups:   []*shape.Shape{shape.NewGroup()},
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			res.Ignored++
			continue
		}

		switch fields[0] {
		case "v":
			p, ok := parsePoint(fields[1:])
			if !ok {
				res.Ignored++
				continue
			}
			res.Vertices = append(res.Vertices, p)
		case "vn":
			n, ok := parsePoint(fields[1:])
			if !ok {
				res.Ignored++
				continue
			}
			n = prim.NewVector(n.X, n.Y, n.Z)
			res.Normals = append(res.Normals, n)
		case "f":
			if !res.addFace(fields[1:]) {
				res.Ignored++
			}
		case "g":
			res.Groups = append(res.Groups, shape.NewGroup())
		default:
			res.Ignored++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objfile: reading input: %w", err)
	}

	return res, nil
}

func parsePoint(fields []string) (prim.Tuple, bool) {
	if len(fields) < 3 {
		return prim.Tuple{}, false
	}
	var xyz [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return prim.Tuple{}, false
		}
		xyz[i] = v
	}
	return prim.NewPoint(xyz[0], xyz[1], xyz[2]), true
}

// faceVertex is one slash-delimited face record: a vertex index, and
// (optionally) a normal index, texture indices being ignored entirely.
type faceVertex struct {
	vertexIndex int
	normalIndex int
	hasNormal   bool
}

func parseFaceVertex(tok string) (faceVertex, error) {
	parts := strings.Split(tok, "/")
	vIdx, err := strconv.Atoi(parts[0])
	if err != nil {
		return faceVertex{}, fmt.Errorf("objfile: bad vertex index %q: %w", parts[0], err)
	}

	fv := faceVertex{vertexIndex: vIdx}
	if len(parts) == 3 && parts[2] != "" {
		nIdx, err := strconv.Atoi(parts[2])
		if err != nil {
			return faceVertex{}, fmt.Errorf("objfile: bad normal index %q: %w", parts[2], err)
		}
		fv.normalIndex = nIdx
		fv.hasNormal = true
	}
	return fv, nil
}

func (r *Result) resolveVertex(idx int) (prim.Tuple, error) {
	if idx < 1 || idx >= len(r.Vertices) {
		return prim.Tuple{}, fmt.Errorf("%w: vertex index %d", ErrVertexOutOfRange, idx)
	}
	return r.Vertices[idx], nil
}

func (r *Result) resolveNormal(idx int) (prim.Tuple, error) {
	if idx < 1 || idx >= len(r.Normals) {
		return prim.Tuple{}, fmt.Errorf("%w: normal index %d", ErrVertexOutOfRange, idx)
	}
	return r.Normals[idx], nil
}

// addFace parses a face's vertex records, fan-triangulates polygons with
// more than 3 vertices, and adds the resulting Triangle or SmoothTriangle
// shapes to the current (last) group. It reports false if the whole record
// had to be skipped.
func (r *Result) addFace(tokens []string) bool {
	if len(tokens) < 3 {
		return false
	}

	fvs := make([]faceVertex, 0, len(tokens))
	for _, tok := range tokens {
		fv, err := parseFaceVertex(tok)
		if err != nil {
			return false
		}
		fvs = append(fvs, fv)
	}

	points := make([]prim.Tuple, len(fvs))
	normals := make([]prim.Tuple, len(fvs))
	hasNormals := fvs[0].hasNormal
	for i, fv := range fvs {
		p, err := r.resolveVertex(fv.vertexIndex)
		if err != nil {
			return false
		}
		points[i] = p

		if fv.hasNormal != hasNormals {
			// Mixed smooth/flat vertices on one face: not representable,
			// skip the record.
			return false
		}
		if fv.hasNormal {
			n, err := r.resolveNormal(fv.normalIndex)
			if err != nil {
				return false
			}
			normals[i] = n
		}
	}

	group := r.Groups[len(r.Groups)-1]
	for k := 1; k < len(points)-1; k++ {
		if hasNormals {
			group.AddChild(shape.NewSmoothTriangle(
				points[0], points[k], points[k+1],
				normals[0], normals[k], normals[k+1],
			))
		} else {
			group.AddChild(shape.NewTriangle(points[0], points[k], points[k+1]))
		}
	}
	return true
}

// ToGroup wraps every group Parse produced (including the default group
// holding any faces that preceded the first `g` directive) under one
// top-level Group, suitable for adding directly to a World's object list.
func ToGroup(res *Result) *shape.Shape {
	main := shape.NewGroup()
	for _, g := range res.Groups {
		main.AddChild(g)
	}
	return main
}
