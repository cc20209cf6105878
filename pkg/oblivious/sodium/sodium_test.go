package sodium_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nthparty/oblivious-go/internal/bindings"
	"github.com/nthparty/oblivious-go/pkg/oblivious/logging"
	"github.com/nthparty/oblivious-go/pkg/oblivious/sodium"
)

const samples = 256

func TestMain(m *testing.M) {
	if _, err := bindings.Open(context.Background(), bindings.Config{Logger: logging.Discard()}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func point(t *testing.T) []byte {
	t.Helper()
	p, err := sodium.Pnt(nil)
	require.NoError(t, err)
	return p
}

func scalar(t *testing.T) []byte {
	t.Helper()
	s, ok := sodium.Scl(nil)
	require.True(t, ok)
	return s
}

func TestRnd(t *testing.T) {
	for range samples {
		s := sodium.Rnd()
		require.Len(t, s, sodium.ScalarSize)
		_, ok := sodium.Scl(s)
		require.True(t, ok)
	}
}

func TestSclNone(t *testing.T) {
	for range samples {
		s, ok := sodium.Scl(nil)
		require.True(t, ok)
		require.Len(t, s, sodium.ScalarSize)
		_, ok = sodium.Scl(s)
		require.True(t, ok)
	}
}

func TestSclRejects(t *testing.T) {
	order, err := sodium.FromHex("edd3f55c1a631258d69cf7a2def9de1400000000000000000000000000000010")
	require.NoError(t, err)

	cases := map[string][]byte{
		"zero":      make([]byte, sodium.ScalarSize),
		"order":     order,
		"short":     make([]byte, 31),
		"empty":     {},
		"too wide":  make([]byte, 65),
		"wide zero": make([]byte, 64),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			s, ok := sodium.Scl(in)
			assert.False(t, ok)
			assert.Nil(t, s)
		})
	}
}

func TestSclReducesWideInput(t *testing.T) {
	wide := make([]byte, 40)
	wide[0] = 7
	s, ok := sodium.Scl(wide)
	require.True(t, ok)
	require.Len(t, s, sodium.ScalarSize)
	assert.Equal(t, byte(7), s[0])

	s, ok = sodium.Scl(sodium.Hash("wide"))
	require.True(t, ok)
	require.Len(t, s, sodium.ScalarSize)
}

func TestSclCopiesInput(t *testing.T) {
	in := sodium.Rnd()
	s, ok := sodium.Scl(in)
	require.True(t, ok)
	in[0] ^= 0xff
	assert.False(t, sodium.Equal(in, s))
}

func TestPntNone(t *testing.T) {
	for range samples {
		p := point(t)
		require.Len(t, p, sodium.PointSize)
		require.True(t, sodium.Valid(p))
	}
}

func TestPntDeterministic(t *testing.T) {
	seed := sodium.Hash("seed")
	p1, err := sodium.Pnt(seed)
	require.NoError(t, err)
	p2, err := sodium.Pnt(seed)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)

	_, err = sodium.Pnt(seed[:32])
	assert.ErrorIs(t, err, sodium.ErrWrongLength)
}

func TestHash(t *testing.T) {
	assert.Len(t, sodium.Hash(""), sodium.HashSize)
	assert.Equal(t, sodium.Hash("abc"), sodium.Hash([]byte("abc")))
	assert.Equal(t,
		"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a"+
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		sodium.ToHex(sodium.Hash("abc")))
}

func TestMulRejectsInvalidPoint(t *testing.T) {
	bad := make([]byte, sodium.PointSize)
	for i := range bad {
		bad[i] = 0xff
	}
	_, err := sodium.Mul(scalar(t), bad)
	assert.ErrorIs(t, err, sodium.ErrInvalidPoint)
	assert.False(t, sodium.Valid(bad))
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b []byte
		want int
	}{
		{"equal", []byte{1, 2, 3}, []byte{1, 2, 3}, 0},
		{"less in high byte", []byte{9, 0, 1}, []byte{0, 0, 2}, -1},
		{"greater in high byte", []byte{0, 0, 2}, []byte{9, 0, 1}, 1},
		{"greater in low byte", []byte{2, 5, 5}, []byte{1, 5, 5}, 1},
		{"less in low byte", []byte{1, 5, 5}, []byte{2, 5, 5}, -1},
		{"empty", []byte{}, []byte{}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sodium.Compare(tc.a, tc.b)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := sodium.Compare([]byte{1}, []byte{1, 2})
	assert.ErrorIs(t, err, sodium.ErrWrongLength)
}

func TestCompareZeroIsSmallest(t *testing.T) {
	zero := make([]byte, sodium.ScalarSize)
	for range samples {
		c, err := sodium.Compare(sodium.Rnd(), zero)
		require.NoError(t, err)
		require.Equal(t, 1, c)
	}
}
