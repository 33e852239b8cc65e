package runs

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRunID(t *testing.T) {
	assert := assert.New(t)
	assert.Regexp(regexp.MustCompile(`^[a-z]+-[a-z]+$`), GenerateRunName())
	assert.Regexp(regexp.MustCompile(`^[a-z]+-[a-z]+-\d{8}-\d{6}\.\d{3}$`), GenerateRunID())
}

func TestCreateRunDirectory(t *testing.T) {
	assert := assert.New(t)
	base := filepath.Join(t.TempDir(), "runs")

	run, err := CreateRunDirectory(base)
	require.NoError(t, err)
	assert.True(filepath.IsAbs(run.Path))
	assert.DirExists(run.Path)
	assert.Equal(filepath.Join(run.Path, "card.png"), run.GetFilePath("card.png"))

	target, err := os.Readlink(filepath.Join(base, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(run.ID, target)
}

func TestCopyConfigFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "card.yaml")
	require.NoError(t, os.WriteFile(src, []byte("blur:\n  radius: 4\n"), 0644))

	run, err := CreateRunDirectory(filepath.Join(dir, "runs"))
	require.NoError(t, err)
	require.NoError(t, run.CopyConfigFile(src))

	data, err := os.ReadFile(run.GetFilePath("card.yaml"))
	require.NoError(t, err)
	assert.Equal("blur:\n  radius: 4\n", string(data))

	assert.Error(run.CopyConfigFile(filepath.Join(dir, "missing.yaml")))
}
