package generate_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/bpagen/internal/config"
	"github.com/gyeh/bpagen/internal/generate"
	"github.com/gyeh/bpagen/internal/model"
	"github.com/gyeh/bpagen/internal/normalize"
	"github.com/gyeh/bpagen/internal/source"
)

const headerCSV = "year_month,org_name,org_acronym,cgc_cpf,dest_name,dest_type\n" +
	"202401,UBS CENTRAL,UBSC,12345678000199,SECRETARIA SAUDE,1\n"

const consolidatedCSV = "cnes,competencia,cbo,folha,sequencial,procedimento,idade,quantidade\n" +
	"1234567,202401,225125,1,1,0301010010,30,5\n" +
	"1234567,202401,225125,1,2,0301010010,45,2\n" +
	"\n" +
	"1234567,202401,225125,1,3,0301010010,-5,1\n"

const individualCSV = "cnes;competencia;cns_profissional;cbo;data_atendimento;folha;sequencial;procedimento;cns_paciente;sexo;codigo_municipio;cid;idade;quantidade;nome_paciente;data_nascimento\n" +
	"1234567;202401;123456789012345;225125;15/01/2024;1;1;0301010010;987654321098765;f;355030;Z000;30;1;JOSÉ DA SILVA;1994-03-02\n"

func writeInputs(t *testing.T, header, data string) (dir, headerPath, dataPath string) {
	t.Helper()
	dir = t.TempDir()
	headerPath = filepath.Join(dir, "header.csv")
	dataPath = filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(headerPath, []byte(header), 0o644))
	require.NoError(t, os.WriteFile(dataPath, []byte(data), 0o644))
	return dir, headerPath, dataPath
}

func newConfig(t *testing.T, mode, headerPath, dataPath string) *config.Config {
	t.Helper()
	cfg := &config.Config{
		Mode:       mode,
		HeaderPath: headerPath,
		DataPath:   dataPath,
		OutDir:     filepath.Join(t.TempDir(), "out"),
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func outputFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_Consolidated(t *testing.T) {
	_, h, d := writeInputs(t, headerCSV, consolidatedCSV)
	cfg := newConfig(t, "c", h, d)

	summary, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.DetailLines)
	assert.Equal(t, 48, summary.DetailWidth)
	assert.Equal(t, 130, summary.HeaderWidth)
	assert.NotEmpty(t, summary.RunID)
	assert.True(t, strings.HasPrefix(filepath.Base(summary.OutputPath), "BPA_C_"))

	data, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	assert.EqualValues(t, len(data), summary.Bytes)

	sha, err := normalize.FileHash(summary.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, sha, summary.OutputSHA256)

	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, summary.DetailLines+1)
	assert.True(t, strings.HasPrefix(lines[0], "01#BPA#202401000003000003"))
	assert.Equal(t, summary.HeaderLine, lines[0])
	for _, l := range lines[1:] {
		assert.Len(t, l, 48)
		assert.True(t, strings.HasPrefix(l, "02"))
	}
	assert.Equal(t, "0-5", lines[3][36:39])
	assert.Equal(t, []string{filepath.Base(summary.OutputPath)}, outputFiles(t, cfg.OutDir))
}

func TestRun_IndividualLatin1(t *testing.T) {
	_, h, d := writeInputs(t, headerCSV, individualCSV)
	cfg := newConfig(t, "bpa-i", h, d)
	cfg.Delimiter = ";"
	cfg.OutputEncoding = "ISO-8859-1"
	cfg.OutputPath = filepath.Join(t.TempDir(), "custom.txt")

	summary, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.OutputPath, summary.OutputPath)
	assert.Equal(t, 1, summary.DetailLines)

	data, err := os.ReadFile(summary.OutputPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	// One byte per rune in Latin-1.
	assert.Len(t, lines[1], 338)
	assert.Contains(t, lines[1], "JOS\xc9 DA SILVA")
	assert.Contains(t, lines[1], "20240115")
	assert.Contains(t, lines[1], "19940302")
}

func TestRun_DryRun(t *testing.T) {
	_, h, d := writeInputs(t, headerCSV, consolidatedCSV)
	cfg := newConfig(t, "c", h, d)
	cfg.DryRun = true

	summary, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 3, summary.DetailLines)
	assert.Empty(t, summary.OutputPath)
	assert.Empty(t, outputFiles(t, cfg.OutDir))
}

func TestRun_MissingFieldWritesNothing(t *testing.T) {
	data := "cnes,competencia,cbo,folha,sequencial,procedimento,idade\n" +
		"1234567,202401,225125,1,1,0301010010,30\n"
	_, h, d := writeInputs(t, headerCSV, data)
	cfg := newConfig(t, "c", h, d)

	_, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	require.Error(t, err)

	var pe *generate.PipelineError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, generate.PhaseEncode, pe.Phase)

	var re *generate.RowError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 1, re.Row)

	var mf *model.MissingFieldError
	require.True(t, errors.As(err, &mf))
	assert.Equal(t, []string{model.ColQuantidade}, mf.Fields)
	assert.Empty(t, outputFiles(t, cfg.OutDir))
}

func TestRun_BadDateReportsRow(t *testing.T) {
	data := individualCSV + strings.Replace(strings.SplitN(individualCSV, "\n", 2)[1], "15/01/2024", "not-a-date", 1)
	_, h, d := writeInputs(t, headerCSV, data)
	cfg := newConfig(t, "i", h, d)
	cfg.Delimiter = ";"

	_, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	var de *model.DateParseError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, model.ColDataAtendimento, de.Field)

	var re *generate.RowError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 2, re.Row)
	assert.Empty(t, outputFiles(t, cfg.OutDir))
}

func TestRun_HeaderErrors(t *testing.T) {
	_, h, d := writeInputs(t, "year_month\n", consolidatedCSV)
	cfg := newConfig(t, "c", h, d)
	_, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	var pe *generate.PipelineError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, generate.PhasePreflight, pe.Phase)
	var re *source.ReadError
	assert.True(t, errors.As(err, &re))

	_, h, d = writeInputs(t, "year_month,org_name\n202401,UBS\n", consolidatedCSV)
	cfg = newConfig(t, "c", h, d)
	_, err = generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	var mf *model.MissingFieldError
	assert.True(t, errors.As(err, &mf))
}

func TestRun_MissingDataFile(t *testing.T) {
	dir, h, _ := writeInputs(t, headerCSV, consolidatedCSV)
	cfg := newConfig(t, "c", h, filepath.Join(dir, "nope.csv"))

	// Debug level turns on input hashing; it must not change the error.
	log := zerolog.New(io.Discard).Level(zerolog.DebugLevel)
	_, err := generate.Run(t.Context(), nil, log, cfg)

	var pe *generate.PipelineError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, generate.PhaseEncode, pe.Phase)
	var re *source.ReadError
	assert.True(t, errors.As(err, &re))
}

func TestRun_DebugLoggingHashesInputs(t *testing.T) {
	_, h, d := writeInputs(t, headerCSV, consolidatedCSV)
	cfg := newConfig(t, "c", h, d)

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	_, err := generate.Run(t.Context(), nil, log, cfg)
	require.NoError(t, err)

	sha, err := normalize.FileHash(d)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"data_sha256":"`+sha+`"`)
}

func TestRun_EmptyDataFile(t *testing.T) {
	_, h, d := writeInputs(t, headerCSV, "cnes,competencia\n")
	cfg := newConfig(t, "c", h, d)
	summary, err := generate.Run(t.Context(), nil, zerolog.Nop(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.DetailLines)
	assert.True(t, strings.HasPrefix(summary.HeaderLine, "01#BPA#202401000000000000"))
}

func TestOutputName(t *testing.T) {
	ts := time.Date(2024, 1, 15, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, "BPA_C_20240115_090503.txt", generate.OutputName(model.Consolidated, ts))
	assert.Equal(t, "BPA_I_20240115_090503.txt", generate.OutputName(model.Individualized, ts))
	assert.Equal(t, filepath.Join("out", "BPA_I_20240115_090503.txt"), generate.OutputPath("out", model.Individualized, ts))
}
