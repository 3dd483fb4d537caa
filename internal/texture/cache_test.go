package texture

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soft-raster/internal/imageio"
	"soft-raster/internal/raster"
)

func writeTestTexture(t *testing.T, dir, name string) {
	t.Helper()
	buf := raster.NewBuffer(2, 2)
	buf.Clear(raster.Color{1, 0, 1, 1})
	require.NoError(t, imageio.Save(filepath.Join(dir, name), buf))
}

func TestIndexAndResolve(t *testing.T) {
	dir := t.TempDir()
	writeTestTexture(t, dir, "Stone.png")
	writeTestTexture(t, dir, "grass.png")

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())

	// Lookup is case-insensitive and ignores path prefixes and extensions.
	path, ok := idx.ResolvePath("textures\\stone.jpg")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "Stone.png"), path)

	_, ok = idx.ResolvePath("missing")
	assert.False(t, ok)
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	writeTestTexture(t, dir, "checker.png")

	c := NewCache(BuildIndex(dir))

	buf := c.Resolve("checker")
	require.NotNil(t, buf)
	assert.Equal(t, 2, buf.Width)

	// Second resolve returns the cached buffer.
	assert.Same(t, buf, c.Resolve("checker"))

	assert.Nil(t, c.Resolve("missing"))
}
