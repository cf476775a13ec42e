package splitter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.csv")
	scenes := []Scene{
		{Index: 1, StartFrame: 0, EndFrame: 100},
		{Index: 2, StartFrame: 100, EndFrame: 200},
	}

	require.NoError(t, WriteStats(path, scenes, 25.0))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, statsHeader, rows[0])
	assert.Equal(t, []string{"1", "0", "100", "100", "0.000", "4.000"}, rows[1])
	assert.Equal(t, []string{"2", "100", "200", "100", "4.000", "8.000"}, rows[2])
}

func TestWriteStatsHeaderOnlyForNoScenes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.csv")

	require.NoError(t, WriteStats(path, nil, 25.0))

	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, statsHeader, rows[0])
}

func TestWriteStatsUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "scenes.csv")

	err := WriteStats(path, nil, 25.0)
	assert.ErrorIs(t, err, ErrStatsWrite)
	assert.ErrorContains(t, err, path)
}
