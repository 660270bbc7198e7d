// Package ioimage loads the raw image-patch corpus the LGN encoder draws
// stimuli from.
package ioimage

import (
	"fmt"
	"os"

	"github.com/emer/v1stdp/config"
)

// LoadPatches reads path as a flat stream of signed 8-bit samples, column-
// major, config.PATCHSIZE*config.PATCHSIZE pixels per patch, and splits it
// into patches. Following the reference, the last whole patch in the file
// is discarded; trailing bytes that do not make up a whole patch are
// ignored.
func LoadPatches(path string) ([][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ioimage: reading %s: %w", path, err)
	}

	patchPixels := config.PATCHSIZE * config.PATCHSIZE
	total := len(raw) / patchPixels
	n := total - 1
	if n <= 0 {
		return nil, fmt.Errorf("ioimage: %s has only %d bytes, not enough for a single patch of %d pixels", path, len(raw), patchPixels)
	}

	patches := make([][]float64, n)
	for p := 0; p < n; p++ {
		patch := make([]float64, patchPixels)
		base := p * patchPixels
		for i := 0; i < patchPixels; i++ {
			patch[i] = float64(int8(raw[base+i]))
		}
		patches[p] = patch
	}
	return patches, nil
}
