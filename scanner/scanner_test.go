package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	write("b.sir", "module b")
	write("a.sir", "module a")
	write("notes.txt", "irrelevant")
	write(filepath.Join("nested", "c.sir"), "module c")

	files, err := New(dir, ".sir").Scan()
	require.NoError(t, err)
	require.Len(t, files, 3)

	// path order, nested files included
	assert.Equal(t, filepath.Join(dir, "a.sir"), files[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.sir"), files[1].Path)
	assert.Equal(t, filepath.Join(dir, "nested", "c.sir"), files[2].Path)
	assert.Equal(t, int64(len("module a")), files[0].Size)
}

func TestScanNoExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "anything.txt"), []byte("x"), 0o644))

	files, err := New(dir).Scan()
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := New("no/such/dir", ".sir").Scan()
	assert.Error(t, err)
}
