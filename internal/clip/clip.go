// Package clip applies brush outlines to block ring sets with polygon
// boolean operations under the non-zero fill rule.
package clip

import (
	"errors"
	"fmt"
	"strings"

	"dig2d/internal/geom"
	"dig2d/internal/profiling"

	clipper "github.com/ctessum/go.clipper"
)

// Op is the effect a brush has on terrain material.
type Op int

const (
	// Subtract removes material under the brush.
	Subtract Op = iota
	// Add fills material under the brush, limited to the owning block's cell.
	Add
)

func (o Op) String() string {
	switch o {
	case Subtract:
		return "sub"
	case Add:
		return "add"
	default:
		return "unknown"
	}
}

// ParseOp accepts the config spellings "sub"/"subtract" and "add"/"fill".
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sub", "subtract", "dig":
		return Subtract, nil
	case "add", "fill":
		return Add, nil
	}
	return Subtract, fmt.Errorf("clip: unknown op %q", s)
}

// ErrInvariant reports a boolean result that breaks the ring set contract.
// The caller must not store such a result.
var ErrInvariant = errors.New("clip: result violates ring invariant")

// Apply runs op against subject. cell is the owning block's square and is
// only used by Add.
func Apply(op Op, subject geom.Polygons, brush, cell geom.Ring) (geom.Polygons, error) {
	switch op {
	case Subtract:
		return Dig(subject, brush)
	case Add:
		return Fill(subject, brush, cell)
	default:
		return nil, fmt.Errorf("clip: unsupported op %d", op)
	}
}

// Dig returns subject minus brush.
func Dig(subject geom.Polygons, brush geom.Ring) (geom.Polygons, error) {
	defer profiling.Track("clip.Dig")()
	if brush.SignedArea2() == 0 {
		return subject.Clone(), nil
	}
	out, err := execute(clipper.CtDifference, subject, geom.Polygons{brush})
	if err != nil {
		return nil, err
	}
	return validate(out)
}

// Fill returns (subject ∪ brush) ∩ cell. The intersection keeps filled
// material inside the block that owns it.
func Fill(subject geom.Polygons, brush, cell geom.Ring) (geom.Polygons, error) {
	defer profiling.Track("clip.Fill")()
	if brush.SignedArea2() == 0 {
		return subject.Clone(), nil
	}
	union, err := execute(clipper.CtUnion, subject, geom.Polygons{brush})
	if err != nil {
		return nil, err
	}
	out, err := execute(clipper.CtIntersection, union, geom.Polygons{cell})
	if err != nil {
		return nil, err
	}
	return validate(out)
}

func execute(ct clipper.ClipType, subject, clip geom.Polygons) (geom.Polygons, error) {
	c := clipper.NewClipper(0)
	if len(subject) > 0 {
		c.AddPaths(toPaths(subject), clipper.PtSubject, true)
	}
	c.AddPaths(toPaths(clip), clipper.PtClip, true)
	solution, ok := c.Execute1(ct, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil, fmt.Errorf("%w: boolean engine refused %v", ErrInvariant, ct)
	}
	return fromPaths(solution), nil
}

func toPaths(ps geom.Polygons) clipper.Paths {
	paths := make(clipper.Paths, 0, len(ps))
	for _, r := range ps {
		if len(r) < 3 {
			continue
		}
		path := make(clipper.Path, len(r))
		for i, p := range r {
			path[i] = clipper.NewIntPointFromFloat(float64(p.X), float64(p.Y))
		}
		paths = append(paths, path)
	}
	return paths
}

func fromPaths(paths clipper.Paths) geom.Polygons {
	out := make(geom.Polygons, 0, len(paths))
	for _, path := range paths {
		r := make(geom.Ring, len(path))
		for i, p := range path {
			r[i] = geom.Point{X: int64(p.X), Y: int64(p.Y)}
		}
		out = append(out, r)
	}
	return out
}

// validate drops collapsed rings and checks the contract every stored ring
// set must keep: the largest ring is wound counter-clockwise, so outer rings
// and holes carry opposite signs.
func validate(ps geom.Polygons) (geom.Polygons, error) {
	out := ps[:0]
	var largest int64
	for _, r := range ps {
		a := r.SignedArea2()
		if len(r) < 3 || a == 0 {
			continue
		}
		if abs(a) > abs(largest) {
			largest = a
		}
		out = append(out, r)
	}
	if largest < 0 {
		return nil, fmt.Errorf("%w: outermost ring is clockwise", ErrInvariant)
	}
	return out, nil
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
