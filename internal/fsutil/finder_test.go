package fsutil

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/pwchain/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectFiles(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"b.hcl":        "",
		"a.hcl":        "",
		"notes.txt":    "",
		"nested/c.hcl": "",
	})

	t.Run("directory is walked in lexical order", func(t *testing.T) {
		got, err := CollectFiles(".hcl", root)
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(root, "a.hcl"),
			filepath.Join(root, "b.hcl"),
			filepath.Join(root, "nested", "c.hcl"),
		}, got)
	})

	t.Run("argument order wins and duplicates are dropped", func(t *testing.T) {
		b := filepath.Join(root, "b.hcl")
		got, err := CollectFiles(".hcl", b, root)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, b, got[0])
	})

	t.Run("file without extension is skipped", func(t *testing.T) {
		got, err := CollectFiles(".hcl", filepath.Join(root, "notes.txt"))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := CollectFiles(".hcl", filepath.Join(root, "missing"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir(), "")
	})
}
