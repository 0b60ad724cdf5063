package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("identical strings score 1", func(t *testing.T) {
		require.Equal(t, 1.0, Score("豬肉絲", "豬肉絲"))
		require.Equal(t, 1.0, Score("whole milk", "whole milk"))
	})

	t.Run("score is bounded", func(t *testing.T) {
		pairs := [][2]string{
			{"豬肉絲", "牛腱"},
			{"a", "zzzzzzzz"},
			{"台灣鯛魚片", "鯛魚"},
			{"whole milk", "milk whole"},
		}
		for _, p := range pairs {
			s := Score(p[0], p[1])
			require.GreaterOrEqual(t, s, 0.0, "%v", p)
			require.LessOrEqual(t, s, 1.0, "%v", p)
		}
	})

	t.Run("token reorder scores 1 via token sort", func(t *testing.T) {
		require.Equal(t, 1.0, Score("milk whole", "whole milk"))
	})

	t.Run("substring containment scores 1 via partial ratio", func(t *testing.T) {
		require.Equal(t, 1.0, Score("豬肉", "豬肉絲"))
		require.Equal(t, 1.0, Score("冷凍豬肉絲特選", "豬肉絲"))
	})

	t.Run("best of the three measures wins", func(t *testing.T) {
		// plain ratio between these is low, partial ratio carries it
		partial := Score("鯛魚", "台灣鯛魚片")
		plain := ratio("鯛魚", "台灣鯛魚片")
		require.Greater(t, partial, plain)
	})

	t.Run("deterministic", func(t *testing.T) {
		a := Score("豬梅花肉片", "豬五花肉片")
		b := Score("豬梅花肉片", "豬五花肉片")
		require.Equal(t, a, b)
	})

	t.Run("dissimilar strings score low", func(t *testing.T) {
		require.Less(t, Score("蘋果", "工業用螺絲刀"), 0.4)
	})
}

func TestTokenSort(t *testing.T) {
	require.Equal(t, "milk whole", tokenSort("whole  milk"))
	require.Equal(t, "", tokenSort(""))
}

func TestPartialRatio(t *testing.T) {
	require.Equal(t, 1.0, partialRatio("", ""))
	require.Equal(t, 0.0, partialRatio("", "abc"))
	require.Equal(t, 1.0, partialRatio("abc", "xxabcxx"))
}
