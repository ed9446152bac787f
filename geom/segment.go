package geom

import (
	"strings"

	"github.com/echoflaresat/segcross/vectors"
	"github.com/pkg/errors"
)

// ErrMalformedSegment is returned by ParseSegment when the input is not two
// vectors separated by a colon.
var ErrMalformedSegment = errors.New("malformed segment")

// Segment is the directed segment from Start to End.
// A zero-length segment is allowed here and rejected by Intersect.
type Segment struct {
	Start vectors.Vec3
	End   vectors.Vec3
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end vectors.Vec3) Segment {
	return Segment{Start: start, End: end}
}

// Direction returns End - Start.
func (s Segment) Direction() vectors.Vec3 {
	return s.End.Sub(s.Start)
}

// PointAt returns Start + Direction*t. t in [0,1] stays on the segment.
func (s Segment) PointAt(t float64) vectors.Vec3 {
	return s.Start.Add(s.Direction().Scale(t))
}

func (s Segment) String() string {
	return s.Start.String() + " -> " + s.End.String()
}

// ParseSegment reads "x,y,z:x,y,z" (start, then end).
func ParseSegment(str string) (Segment, error) {
	parts := strings.Split(str, ":")
	if len(parts) != 2 {
		return Segment{}, errors.Wrapf(ErrMalformedSegment, "%q: want start:end", str)
	}

	start, err := vectors.Parse(parts[0])
	if err != nil {
		return Segment{}, errors.Wrapf(ErrMalformedSegment, "start: %v", err)
	}
	end, err := vectors.Parse(parts[1])
	if err != nil {
		return Segment{}, errors.Wrapf(ErrMalformedSegment, "end: %v", err)
	}
	return NewSegment(start, end), nil
}
