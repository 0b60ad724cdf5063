package fileio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadRows(t *testing.T) {
	t.Run("plain utf-8 csv", func(t *testing.T) {
		rows, err := ReadRows(strings.NewReader("品號,品名,單位,幣別\nJ009030,豬肉絲,斤,NTD\n"), "products_list.csv")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, []string{"品號", "品名", "單位", "幣別"}, rows[0])
		require.Equal(t, []string{"J009030", "豬肉絲", "斤", "NTD"}, rows[1])
	})

	t.Run("utf-8 BOM is stripped", func(t *testing.T) {
		rows, err := ReadRows(strings.NewReader("\uFEFFa,b,c,d\n1,2,3,4\n"), "x.csv")
		require.NoError(t, err)
		require.Equal(t, "a", rows[0][0])
	})

	t.Run("ragged rows keep their own width", func(t *testing.T) {
		rows, err := ReadRows(strings.NewReader("a,b,c,d\n1,2\n1,2,3,4,5\n"), "x.csv")
		require.NoError(t, err)
		require.Len(t, rows[1], 2)
		require.Len(t, rows[2], 5)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ReadRows(strings.NewReader("x"), "catalog.pdf")
		require.Error(t, err)
	})
}
