package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func writeGzip(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return p
}

func TestLoadCSV(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		wantRows int
		wantCols int
		wantErr  string
	}{
		{
			name:     "happy path",
			csv:      "Team,Seed,Division,Odds\nKansas,1,Midwest,6\nAustin Peay,16,Midwest,5000\n",
			wantRows: 2,
			wantCols: 4,
		},
		{
			name:     "headers only",
			csv:      "Team,Seed,Division,Odds\n",
			wantRows: 0,
		},
		{
			name:     "blank lines are skipped",
			csv:      "Team,Seed,Division,Odds\nKansas,1,Midwest,6\n,,,\n",
			wantRows: 1,
			wantCols: 4,
		},
		{
			name:    "mismatched column count",
			csv:     "Team,Seed\nok,1\nbad\n",
			wantErr: "wrong number of fields",
		},
		{
			name:    "empty file",
			csv:     "",
			wantErr: "no header row",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, t.TempDir(), "teams.csv", tt.csv)

			rows, err := LoadCSV(path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Len(t, rows, tt.wantRows)
			if tt.wantRows > 0 {
				assert.Len(t, rows[0], tt.wantCols)
			}
		})
	}
}

func TestLoadCSV_NormalizesHeadersAndValues(t *testing.T) {
	path := writeCSV(t, t.TempDir(), "teams.csv", "\ufeffTEAM, Seed ,Division,Odds\n  Kansas ,1, Midwest,6.5\n")

	rows, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"team": "Kansas", "seed": "1", "division": "Midwest", "odds": "6.5"}, rows[0])
}

func TestLoadCSV_Gzip(t *testing.T) {
	path := writeGzip(t, t.TempDir(), "teams.csv.gz", "Team,Seed,Division,Odds\nKansas,1,Midwest,6\n")

	rows, err := LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Kansas", rows[0]["team"])
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
