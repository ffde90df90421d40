package mtl

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitMaterialCount(t *testing.T) {
	input := "newmtl a\nnewmtl b\nnewmtl c\n"

	lib, err := Parse([]byte(input), &Limits{MaxMaterialCount: 3})
	require.NoError(t, err)
	assert.Len(t, lib.Materials, 3)

	lib, err = Parse([]byte(input), &Limits{MaxMaterialCount: 2})
	assert.ErrorIs(t, err, ErrLimit)
	assert.Nil(t, lib)
}

func TestLimitMaterialCountFiresAtDeclaration(t *testing.T) {
	// The limiter must reject exactly the (N+1)-th declaration, not before:
	// the inner handler sees the first N materials and nothing after.
	inner := &recordHandler{}
	h := newLimitHandler(inner, Limits{MaxMaterialCount: 2})
	err := Scan(strings.NewReader("newmtl a\nKd 1 0 0\nnewmtl b\nnewmtl c\nKd 0 1 0\n"), h)

	require.ErrorIs(t, err, ErrLimit)
	assert.Equal(t, []string{`newmtl "a"`, "Kd 1 0 0", `newmtl "b"`}, inner.events)
}

func TestLimitNameLength(t *testing.T) {
	_, err := Parse([]byte("newmtl verylongname\n"), &Limits{MaxNameLength: 8})
	assert.ErrorIs(t, err, ErrLimit)

	_, err = Parse([]byte("newmtl short\n"), &Limits{MaxNameLength: 8})
	assert.NoError(t, err)
}

func TestLimitTextureFilenameLength(t *testing.T) {
	_, err := Parse([]byte("newmtl a\nmap_Kd averylongfilename.png\n"), &Limits{MaxTextureFilenameLength: 10})
	assert.ErrorIs(t, err, ErrLimit)
}

func TestLimitCommentLength(t *testing.T) {
	_, err := Parse([]byte("# a rather long comment line\nnewmtl a\n"), &Limits{MaxCommentLength: 5})
	assert.ErrorIs(t, err, ErrLimit)
}

func TestLimitNumberMagnitude(t *testing.T) {
	_, err := Parse([]byte("newmtl a\nNs 100000\n"), &Limits{MaxNumberMagnitude: 1000})
	assert.ErrorIs(t, err, ErrLimit)

	_, err = Parse([]byte("newmtl a\nKd -5 0 0\n"), &Limits{MaxNumberMagnitude: 2})
	assert.ErrorIs(t, err, ErrLimit)

	_, err = Parse([]byte("newmtl a\nNs 999\nKd 1 1 1\n"), &Limits{MaxNumberMagnitude: 1000})
	assert.NoError(t, err)
}

func TestLimitsTransparentWhenSatisfied(t *testing.T) {
	data := []byte(`newmtl brick
Kd 0.8 0.2 0.1
map_Kd brick.png
newmtl glass
d 0.2
`)
	plain, err := Parse(data, nil)
	require.NoError(t, err)

	// Zero-valued limits and generous limits both behave as no wrapper.
	limited, err := Parse(data, &Limits{})
	require.NoError(t, err)
	assert.Equal(t, plain, limited)

	limited, err = Parse(data, &Limits{
		MaxMaterialCount:         100,
		MaxNameLength:            100,
		MaxTextureFilenameLength: 100,
		MaxCommentLength:         100,
		MaxNumberMagnitude:       100,
	})
	require.NoError(t, err)
	assert.Equal(t, plain, limited)
}

func TestLimitDistinguishableFromCorrupt(t *testing.T) {
	_, err := Parse([]byte("newmtl a\nnewmtl b\n"), &Limits{MaxMaterialCount: 1})
	assert.ErrorIs(t, err, ErrLimit)
	assert.False(t, errors.Is(err, ErrCorrupt))

	_, err = Parse([]byte("Kd 1 1 1\n"), &Limits{MaxMaterialCount: 1})
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.False(t, errors.Is(err, ErrLimit))
}
