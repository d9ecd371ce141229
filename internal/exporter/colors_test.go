package exporter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaterialColorFormat(t *testing.T) {
	hexColor := regexp.MustCompile(`^[0-9A-F]{6}$`)
	for i := 0; i < 32; i++ {
		assert.Regexp(t, hexColor, MaterialColor(i))
	}
}

func TestMaterialColorStable(t *testing.T) {
	for i := 0; i < 8; i++ {
		assert.Equal(t, MaterialColor(i), MaterialColor(i))
	}
}

func TestMaterialColorDistinctForSmallIndexes(t *testing.T) {
	seen := make(map[string]int)
	for i := 0; i < 16; i++ {
		c := MaterialColor(i)
		prev, dup := seen[c]
		assert.False(t, dup, "index %d repeats color of index %d", i, prev)
		seen[c] = i
	}
}
