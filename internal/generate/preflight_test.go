package generate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.csv")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", inputHash(path))
	assert.Equal(t, "", inputHash(""))
	assert.Equal(t, "", inputHash(filepath.Join(t.TempDir(), "missing.csv")))
}
