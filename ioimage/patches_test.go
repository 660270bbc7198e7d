package ioimage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emer/v1stdp/config"
)

func writeRawPatches(t *testing.T, nPatches int) string {
	t.Helper()
	patchPixels := config.PATCHSIZE * config.PATCHSIZE
	buf := make([]byte, nPatches*patchPixels)
	for i := range buf {
		buf[i] = byte(int8(i % 7 - 3))
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "images.bin")
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestLoadPatchesDropsLastPatch(t *testing.T) {
	path := writeRawPatches(t, 5)
	patches, err := LoadPatches(path)
	require.NoError(t, err)
	assert.Len(t, patches, 4)
	assert.Len(t, patches[0], config.PATCHSIZE*config.PATCHSIZE)
}

func TestLoadPatchesTooSmallErrors(t *testing.T) {
	path := writeRawPatches(t, 0)
	_, err := LoadPatches(path)
	assert.Error(t, err)
}

func TestLoadPatchesPreservesSignedValues(t *testing.T) {
	path := writeRawPatches(t, 2)
	patches, err := LoadPatches(path)
	require.NoError(t, err)
	assert.Equal(t, -3.0, patches[0][0])
}
