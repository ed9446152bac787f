package vectors

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(-4, 0.5, 10)

	assert.Equal(t, New(-3, 2.5, 13), a.Add(b))
	assert.Equal(t, New(5, 1.5, -7), a.Sub(b))
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
	assert.Equal(t, -4+1+30.0, a.Dot(b))

	// operands are values and stay untouched
	assert.Equal(t, New(1, 2, 3), a)
	assert.Equal(t, New(-4, 0.5, 10), b)
}

func TestEqualIsExact(t *testing.T) {
	assert.True(t, New(1, 2, 3).Equal(New(1, 2, 3)))
	assert.True(t, New(0, 0, 0).Equal(New(math.Copysign(0, -1), 0, 0)))
	x, y := 0.1, 0.2
	assert.False(t, New(x+y, 0, 0).Equal(New(0.3, 0, 0)))
	assert.False(t, New(1, 2, 3).Equal(New(1, 2, math.Nextafter(3, 4))))

	nan := New(math.NaN(), 0, 0)
	assert.False(t, nan.Equal(nan))
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Vec3
		want string
	}{
		{New(0, 0, 0), "(0, 0, 0)"},
		{New(-0.5, -0.5, -0.5), "(-0.5, -0.5, -0.5)"},
		{New(1, 1, 1), "(1, 1, 1)"},
		{New(0.1, 2.25, -3e21), "(0.1, 2.25, -3e+21)"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.v.String())
		})
	}
}

func TestNormAndDistance(t *testing.T) {
	assert.Equal(t, 5.0, New(3, 4, 0).Norm())
	assert.Equal(t, 0.0, Vec3{}.Norm())
	assert.Equal(t, 3.0, Distance(New(1, 1, 1), New(1, 1, 4)))
	assert.Equal(t, Distance(New(1, 2, 3), New(-1, 0, 2)), Distance(New(-1, 0, 2), New(1, 2, 3)))
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Vec3
	}{
		{"0,0,0", New(0, 0, 0)},
		{" -1, 0.5 ,2 ", New(-1, 0.5, 2)},
		{"(-0.5, -0.5, -0.5)", New(-0.5, -0.5, -0.5)},
		{"1e3,2,3", New(1000, 2, 3)},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			v, err := Parse(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, v)
		})
	}

	v := New(0.1, -7.25, 3e-9)
	parsed, err := Parse(v.String())
	require.NoError(t, err)
	assert.True(t, v.Equal(parsed))
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{"", "1,2", "1,2,3,4", "a,b,c", "1,,3"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedVector), "got %v", err)
		})
	}
}
