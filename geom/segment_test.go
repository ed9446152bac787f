package geom

import (
	"testing"

	"github.com/echoflaresat/segcross/vectors"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment(t *testing.T) {
	s := seg(1, 2, 3, 3, 2, -1)

	assert.Equal(t, vectors.New(2, 0, -4), s.Direction())
	assert.Equal(t, s.Start, s.PointAt(0))
	assert.Equal(t, s.End, s.PointAt(1))
	assert.Equal(t, vectors.New(2, 2, 1), s.PointAt(0.5))
	assert.Equal(t, "(1, 2, 3) -> (3, 2, -1)", s.String())
}

func TestParseSegment(t *testing.T) {
	s, err := ParseSegment("0,0,0:-1,-1,-1")
	require.NoError(t, err)
	assert.Equal(t, seg(0, 0, 0, -1, -1, -1), s)

	s, err = ParseSegment(" (-1, 0, 0) : (0, -1, -1) ")
	require.NoError(t, err)
	assert.Equal(t, seg(-1, 0, 0, 0, -1, -1), s)
}

func TestParseSegmentMalformed(t *testing.T) {
	for _, in := range []string{"", "0,0,0", "0,0,0:1,1,1:2,2,2", "0,0:1,1,1", "0,0,0:x,1,1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseSegment(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedSegment), "got %v", err)
		})
	}
}
