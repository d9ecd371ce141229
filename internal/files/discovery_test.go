package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestFindExcelFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b_line.xlsx")
	touch(t, dir, "a_line.xlsx")
	touch(t, dir, "UPPER.XLSX")
	touch(t, dir, "~$a_line.xlsx")
	touch(t, dir, "notes.txt")
	touch(t, dir, "old.xls")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.xlsx"), 0o755))

	found, err := FindExcelFiles(dir)
	require.NoError(t, err)

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = f.Name
	}
	assert.Equal(t, []string{"UPPER.XLSX", "a_line.xlsx", "b_line.xlsx"}, names)

	for _, f := range found {
		assert.Equal(t, filepath.Join(dir, f.Name), f.Path)
		assert.Equal(t, int64(1), f.Size)
	}
}

func TestFindExcelFilesEmptyDir(t *testing.T) {
	found, err := FindExcelFiles(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFindExcelFilesMissingDir(t *testing.T) {
	_, err := FindExcelFiles(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read directory")
}
