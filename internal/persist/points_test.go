package persist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFile(t *testing.T) {
	entries, err := Load(filepath.Join(t.TempDir(), PointsFileName))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var malformed *MalformedDataError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, path, malformed.Path)
}

func TestLoad_MissingRoisKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"points": []}`), 0o644))

	_, err := Load(path)

	var malformed *MalformedDataError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Reason, "rois")
}

func TestLoad_Entries(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	content := `{
    "rois": [
        {"z": 1, "id": 0, "pos": [50, 60]},
        {"z": 3, "id": 1, "pos": [12.5, 7.25]}
    ]
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := Load(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Z: 1, ID: 0, Pos: [2]float64{50, 60}}, entries[0])
	assert.Equal(t, Entry{Z: 3, ID: 1, Pos: [2]float64{12.5, 7.25}}, entries[1])
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	entries := []Entry{
		{Z: 0, ID: 0, Pos: [2]float64{10, 20}},
		{Z: 2, ID: 1, Pos: [2]float64{300.5, 12}},
	}

	require.NoError(t, Save(path, entries))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}

func TestSave_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	entries := []Entry{{Z: 1, ID: 0, Pos: [2]float64{50, 60}}}

	require.NoError(t, Save(path, entries))
	first, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, Save(path, first))
	second, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSave_StableFieldOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	require.NoError(t, Save(path, []Entry{{Z: 1, ID: 0, Pos: [2]float64{50, 60}}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	s := string(data)
	zAt := strings.Index(s, `"z"`)
	idAt := strings.Index(s, `"id"`)
	posAt := strings.Index(s, `"pos"`)
	require.True(t, zAt >= 0 && idAt >= 0 && posAt >= 0)
	assert.Less(t, zAt, idAt)
	assert.Less(t, idAt, posAt)
}

func TestSave_EmptyEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rois"`)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestSave_Overwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), PointsFileName)
	require.NoError(t, Save(path, []Entry{{Z: 0, ID: 0, Pos: [2]float64{1, 2}}}))
	require.NoError(t, Save(path, []Entry{{Z: 5, ID: 1, Pos: [2]float64{3, 4}}}))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 5, loaded[0].Z)
}

func TestSave_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, PointsFileName)
	require.NoError(t, Save(path, []Entry{{Z: 0, ID: 0, Pos: [2]float64{1, 2}}}))

	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, names, 1)
	assert.Equal(t, PointsFileName, names[0].Name())
}
