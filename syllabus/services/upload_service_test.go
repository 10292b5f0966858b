package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFolder(t *testing.T) {
	t.Run("missing folder is an error", func(t *testing.T) {
		_, err := ScanFolder(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("empty folder returns no files", func(t *testing.T) {
		pdfs, err := ScanFolder(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, pdfs)
	})

	t.Run("finds only pdf files sorted by name", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"zebra.pdf", "alpha.PDF", "notes.txt", "image.png"} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
		}
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

		pdfs, err := ScanFolder(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha.PDF", "zebra.pdf"}, pdfs)
	})

	t.Run("file path instead of folder is an error", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "syllabus.pdf")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := ScanFolder(file)
		assert.Error(t, err)
	})
}
