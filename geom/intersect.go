package geom

import (
	"math"
	"slices"

	"github.com/echoflaresat/segcross/vectors"
)

// Epsilon is the machine epsilon for float64 (2^-52). It is the default
// threshold for the degenerate and parallel checks.
const Epsilon = 0x1p-52

// Reason says how Classify decided.
type Reason int

const (
	// Hit means the segments meet.
	Hit Reason = iota
	// Degenerate means at least one segment has (near) zero length.
	Degenerate
	// Parallel means the direction vectors are linearly dependent.
	// Collinear overlapping segments end up here too.
	Parallel
	// OutOfRange means the closest points of the two lines fall outside a segment.
	OutOfRange
	// Skew means the closest points lie on both segments but do not coincide.
	Skew
)

func (r Reason) String() string {
	switch r {
	case Hit:
		return "hit"
	case Degenerate:
		return "degenerate"
	case Parallel:
		return "parallel"
	case OutOfRange:
		return "out of range"
	case Skew:
		return "skew"
	}
	return "unknown"
}

// Options tunes the numeric checks.
type Options struct {
	// Epsilon bounds the squared segment lengths and the Gram determinant
	// from below. Zero means the package Epsilon.
	Epsilon float64

	// Tolerance is the largest distance between the two closest points that
	// still counts as an intersection. Zero (or negative) requires the points
	// to be exactly equal, which rejects most crossings whose coordinates are
	// not exactly representable.
	Tolerance float64

	// CrossedParameters applies the two solved line parameters the other way
	// round: the first solution moves along seg2 and the second along seg1.
	// Crossings whose parameters differ then come out as Skew, which is how
	// earlier releases behaved. Crossings at equal parameters are unaffected.
	CrossedParameters bool
}

func (o Options) epsilon() float64 {
	if o.Epsilon <= 0 {
		return Epsilon
	}
	return o.Epsilon
}

// Result is the full outcome of Classify.
type Result struct {
	Reason Reason

	// Point is the intersection on seg1. Only meaningful for Hit.
	Point vectors.Vec3

	// S and T are the line parameters of the closest points, along seg1
	// from its start and along seg2 from its start. Zero for Degenerate and Parallel.
	S, T float64

	// Gap is the distance between the closest points. Set for Hit and Skew.
	Gap float64
}

// Hit reports whether the segments intersect.
func (r Result) Hit() bool {
	return r.Reason == Hit
}

// Intersect returns the point where seg1 and seg2 meet. The closest points
// of the two lines must be exactly equal; use IntersectWithin to allow for
// rounding.
func Intersect(seg1, seg2 Segment) (vectors.Vec3, bool) {
	res := Classify(seg1, seg2, Options{})
	return res.Point, res.Hit()
}

// IntersectWithin is Intersect with the closest points allowed to be up to
// tolerance apart.
func IntersectWithin(seg1, seg2 Segment, tolerance float64) (vectors.Vec3, bool) {
	res := Classify(seg1, seg2, Options{Tolerance: tolerance})
	return res.Point, res.Hit()
}

// Classify finds the closest points of the lines through seg1 and seg2 by
// solving the 2x2 normal equations, then checks that both points lie on
// their segments and coincide.
//
// The pair is always solved in the same order, so swapping seg1 and seg2
// swaps S and T and leaves everything else bit for bit identical.
//
// Parallel and collinear segments never intersect, even when they overlap.
func Classify(seg1, seg2 Segment, opts Options) Result {
	if !segmentLess(seg2, seg1) {
		res, _ := solve(seg1, seg2, opts)
		return res
	}

	res, onSeg1 := solve(seg2, seg1, opts)
	res.S, res.T = res.T, res.S
	if res.Hit() {
		res.Point = onSeg1
	}
	return res
}

// segmentLess orders segments lexicographically by Start, then End.
func segmentLess(a, b Segment) bool {
	ka := [6]float64{a.Start.X, a.Start.Y, a.Start.Z, a.End.X, a.End.Y, a.End.Z}
	kb := [6]float64{b.Start.X, b.Start.Y, b.Start.Z, b.End.X, b.End.Y, b.End.Z}
	return slices.Compare(ka[:], kb[:]) < 0
}

// solve runs the gates for seg1 against seg2. Besides the result it returns
// the closest point on seg2, which is zero unless the range check passed.
func solve(seg1, seg2 Segment, opts Options) (Result, vectors.Vec3) {
	eps := opts.epsilon()

	p1 := seg1.Start
	p3 := seg2.Start

	d1 := seg1.End.Sub(p1)
	d2 := seg2.End.Sub(p3)

	d2121 := d1.Dot(d1)
	d4343 := d2.Dot(d2)
	if d2121 < eps || d4343 < eps {
		return Result{Reason: Degenerate}, vectors.Vec3{}
	}

	r := p1.Sub(p3)

	d4321 := d1.Dot(d2)
	d1321 := d1.Dot(r)
	d1343 := d2.Dot(r)

	// Gram determinant of d1, d2
	denom := d2121*d4343 - d4321*d4321
	if math.Abs(denom) < eps {
		return Result{Reason: Parallel}, vectors.Vec3{}
	}

	s := (d1343*d4321 - d1321*d4343) / denom
	t := (d1343 + s*d4321) / d4343
	if opts.CrossedParameters {
		s, t = t, s
	}

	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Result{Reason: OutOfRange, S: s, T: t}, vectors.Vec3{}
	}

	intersection := p1.Add(d1.Scale(s))
	check := p3.Add(d2.Scale(t))

	res := Result{
		Reason: Skew,
		S:      s,
		T:      t,
		Gap:    vectors.Distance(intersection, check),
	}
	if coincide(intersection, check, res.Gap, opts.Tolerance) {
		res.Reason = Hit
		res.Point = intersection
	}
	return res, check
}

func coincide(a, b vectors.Vec3, gap, tolerance float64) bool {
	if tolerance <= 0 {
		return a.Equal(b)
	}
	return gap <= tolerance
}
