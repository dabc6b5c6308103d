package extract

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

func TestListStatementsSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.pdf")
	touch(t, dir, "a.pdf")
	touch(t, dir, "notes.txt")
	touch(t, dir, "C.PDF")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.pdf"), 0o755))

	got, err := ListStatements(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "C.PDF"),
		filepath.Join(dir, "a.pdf"),
		filepath.Join(dir, "b.pdf"),
	}
	assert.Equal(t, want, got)
}

func TestListStatementsEmptyDir(t *testing.T) {
	got, err := ListStatements(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListStatementsMissingDir(t *testing.T) {
	_, err := ListStatements(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
