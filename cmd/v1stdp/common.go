package main

import (
	"fmt"

	"github.com/emer/v1stdp/ioimage"
)

// loadPatchesRanged loads the patch corpus at path and narrows it to
// imageRange patches, following the reference's --image-range semantics: 0
// uses every patch, a positive N keeps only the last N patches of the file,
// and a negative -N keeps every patch except the last N.
func loadPatchesRanged(path string, imageRange int) ([][]float64, error) {
	patches, err := ioimage.LoadPatches(path)
	if err != nil {
		return nil, err
	}
	switch {
	case imageRange == 0:
		return patches, nil
	case imageRange > 0:
		if imageRange > len(patches) {
			return nil, fmt.Errorf("--image-range %d exceeds corpus size %d", imageRange, len(patches))
		}
		return patches[len(patches)-imageRange:], nil
	default:
		n := len(patches) + imageRange
		if n <= 0 {
			return nil, fmt.Errorf("--image-range %d leaves nothing from corpus size %d", imageRange, len(patches))
		}
		return patches[:n], nil
	}
}
