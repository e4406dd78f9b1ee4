package generate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/bpagen/internal/config"
	"github.com/gyeh/bpagen/internal/generate"
	"github.com/gyeh/bpagen/internal/model"
)

func TestWriteTemplates_RoundTrip(t *testing.T) {
	for _, m := range model.AllModes {
		t.Run(m.Label, func(t *testing.T) {
			dir := t.TempDir()
			paths, err := generate.WriteTemplates(dir, m, ';')
			require.NoError(t, err)
			require.Len(t, paths, 2)

			data, err := os.ReadFile(paths[1])
			require.NoError(t, err)
			first := strings.SplitN(string(data), "\n", 2)[0]
			assert.True(t, strings.HasPrefix(first, "cnes;competencia;"))

			cfg := &config.Config{
				Mode:       m.Name,
				HeaderPath: paths[0],
				DataPath:   paths[1],
				Delimiter:  ";",
				OutDir:     filepath.Join(dir, "out"),
			}
			require.NoError(t, cfg.Validate())

			summary, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
			require.NoError(t, err)
			assert.Equal(t, 1, summary.DetailLines)
			assert.Equal(t, m, summary.Mode)
		})
	}
}

func TestWriteTemplates_UnknownMode(t *testing.T) {
	_, err := generate.WriteTemplates(t.TempDir(), model.Mode{Name: "X"}, ',')
	assert.Error(t, err)
}
