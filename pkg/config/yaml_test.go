package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFile_ParsesAndBuilds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	doc := `
algorithm: nsga2
popSize: 50
numGenerations: 100
numObjectives: 2
numConstraints: 0
bounds:
  - l: -5
    h: 5
  - l: -5
    h: 5
`
	assert.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	f, err := LoadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "nsga2", f.Algorithm)
	assert.Equal(t, 50, f.PopSize)
	assert.Len(t, f.Bounds, 2)

	op, err := f.Build()
	assert.NoError(t, err)
	assert.NotNil(t, op)
}

func TestFile_Build_UnknownAlgorithm(t *testing.T) {
	f := &File{Algorithm: "bogus", PopSize: 1, NumGenerations: 1, NumObjectives: 1}
	_, err := f.Build()
	assert.Error(t, err)
}
