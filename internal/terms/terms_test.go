package terms

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	list := Default()
	require.Len(t, list, 76)
	require.Equal(t, "bronze mastery chain link Aegis Keep Damage", list[0])
	require.Equal(t, "Water aspect core", list[len(list)-1])

	list[0] = "mutated"
	require.Equal(t, "bronze mastery chain link Aegis Keep Damage", Default()[0])
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "terms.yaml")
	content := "terms:\n  - Fire aspect core\n  - \"  \"\n  - \" Void aspect core \"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	list, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Fire aspect core", "Void aspect core"}, list)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("terms: []\n"), 0644))
	_, err = LoadFile(empty)
	require.ErrorContains(t, err, "no search terms")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("terms: [unclosed\n"), 0644))
	_, err = LoadFile(broken)
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	list, err := Resolve("")
	require.NoError(t, err)
	require.Equal(t, Default(), list)
}
