package vectors

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrMalformedVector is returned by Parse for input that is not three comma separated numbers.
var ErrMalformedVector = errors.New("malformed vector")

// Vec3 is a simple 3D vector with float64 components.
// It is used for points and free vectors alike.
type Vec3 struct {
	X, Y, Z float64
}

// New returns the vector (x, y, z).
func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v * s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Equal reports whether all three components compare equal with ==.
// There is no tolerance: 0.1+0.2 is not Equal to 0.3, and NaN is never Equal to anything.
func (v Vec3) Equal(o Vec3) bool {
	return v.X == o.X && v.Y == o.Y && v.Z == o.Z
}

// Norm returns the Euclidean length ||v||.
func (v Vec3) Norm() float64 {
	return r3.Norm(v.R3())
}

// R3 converts v to a gonum vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// String formats v as "(X, Y, Z)" using the shortest representation
// that round-trips each component.
func (v Vec3) String() string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(formatFloat(v.X))
	b.WriteString(", ")
	b.WriteString(formatFloat(v.Y))
	b.WriteString(", ")
	b.WriteString(formatFloat(v.Z))
	b.WriteByte(')')
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Distance returns the Euclidean distance between v1 and v2.
func Distance(v1, v2 Vec3) float64 {
	return r3.Norm(r3.Sub(v1.R3(), v2.R3()))
}

// Parse reads a vector written as "x,y,z". Surrounding parentheses and
// whitespace are accepted, so the output of String parses back.
func Parse(s string) (Vec3, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 3 {
		return Vec3{}, errors.Wrapf(ErrMalformedVector, "%q: want 3 components, got %d", s, len(parts))
	}

	var c [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Vec3{}, errors.Wrapf(ErrMalformedVector, "%q: component %d: %v", s, i, err)
		}
		c[i] = f
	}
	return Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
}
