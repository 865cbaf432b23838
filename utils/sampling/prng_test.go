package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/polyeval/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	t.Run("PRNG", func(t *testing.T) {

		key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
			0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		require.Equal(t, key, Ha.Key())

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
	})

	t.Run("Seeded", func(t *testing.T) {

		Ha, err := sampling.NewSeededPRNG("polyeval")
		require.NoError(t, err)
		Hb, err := sampling.NewSeededPRNG("polyeval")
		require.NoError(t, err)
		Hc, err := sampling.NewSeededPRNG("horner")
		require.NoError(t, err)

		require.Len(t, Ha.Key(), 32)
		require.Equal(t, Ha.Key(), Hb.Key())
		require.NotEqual(t, Ha.Key(), Hc.Key())

		require.Equal(t,
			sampling.RandFloat64Slice(Ha, 16, -1, 1),
			sampling.RandFloat64Slice(Hb, 16, -1, 1))
	})
}

func TestRandFloat64(t *testing.T) {

	prng, err := sampling.NewSeededPRNG(t.Name())
	require.NoError(t, err)

	for _, v := range sampling.RandFloat64Slice(prng, 1024, -2, 3) {
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)
	}

	require.Empty(t, sampling.RandFloat64Slice(prng, 0, 0, 1))
	require.Panics(t, func() { sampling.RandFloat64Slice(prng, -1, 0, 1) })
}

func TestRandInt(t *testing.T) {

	prng, err := sampling.NewSeededPRNG(t.Name())
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < 1024; i++ {
		v := sampling.RandInt(prng, 1, 4)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	require.Len(t, seen, 4)

	require.Equal(t, 7, sampling.RandInt(prng, 7, 7))
	require.Panics(t, func() { sampling.RandInt(prng, 2, 1) })
}
